package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestService_Add(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	svc := NewService(mockRepo)
	ctx := context.Background()

	t.Run("starts with full availability", func(t *testing.T) {
		mockRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, b *Book) error {
				assert.Equal(t, 3, b.AvailableCopies)
				b.ID = 1
				return nil
			})

		b := Book{ISBN: "978-1-4920-7721-1", Title: "Learning Go", TotalCopies: 3}
		err := svc.Add(ctx, &b)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), b.ID)
	})

	t.Run("rejects zero copies", func(t *testing.T) {
		b := Book{ISBN: "978-1-4920-7721-1", Title: "Learning Go"}
		err := svc.Add(ctx, &b)
		assert.True(t, errors.Is(err, ErrInvalidCopies))
	})
}

func TestService_Search(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	svc := NewService(mockRepo)
	ctx := context.Background()

	t.Run("trims the query", func(t *testing.T) {
		mockRepo.EXPECT().Search(ctx, "tolkien").Return([]Book{{ID: 1}}, nil)

		books, err := svc.Search(ctx, "  tolkien ")
		assert.NoError(t, err)
		assert.Len(t, books, 1)
	})

	t.Run("empty query lists everything", func(t *testing.T) {
		mockRepo.EXPECT().ListAll(ctx).Return([]Book{{ID: 1}, {ID: 2}}, nil)

		books, err := svc.Search(ctx, "   ")
		assert.NoError(t, err)
		assert.Len(t, books, 2)
	})
}

func TestService_GetByISBN(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	svc := NewService(mockRepo)
	ctx := context.Background()

	t.Run("not found maps through", func(t *testing.T) {
		mockRepo.EXPECT().GetByISBN(ctx, "000").Return(Book{}, ErrNotFound)

		_, err := svc.GetByISBN(ctx, "000")
		assert.True(t, errors.Is(err, ErrNotFound))
	})
}

func TestService_SetTotalCopies(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	svc := NewService(mockRepo)
	ctx := context.Background()

	t.Run("rejects totals below one", func(t *testing.T) {
		ok, err := svc.SetTotalCopies(ctx, 1, 0)
		assert.False(t, ok)
		assert.True(t, errors.Is(err, ErrInvalidCopies))
	})

	t.Run("delegates valid totals", func(t *testing.T) {
		mockRepo.EXPECT().SetTotalCopies(ctx, int64(1), 4).Return(true, nil)

		ok, err := svc.SetTotalCopies(ctx, 1, 4)
		assert.NoError(t, err)
		assert.True(t, ok)
	})
}
