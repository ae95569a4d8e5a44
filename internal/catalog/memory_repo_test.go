package catalog

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedBook(t *testing.T, repo *MemoryRepo, copies int) Book {
	t.Helper()
	b := Book{
		ISBN:            "978-0-13-468599-1",
		Title:           "The Go Programming Language",
		Author:          "Donovan, Kernighan",
		TotalCopies:     copies,
		AvailableCopies: copies,
	}
	require.NoError(t, repo.Create(context.Background(), &b))
	return b
}

func TestMemoryRepo_ReserveCopy(t *testing.T) {
	ctx := context.Background()

	t.Run("decrements while copies remain", func(t *testing.T) {
		repo := NewMemoryRepo()
		b := seedBook(t, repo, 2)

		ok, err := repo.ReserveCopy(ctx, b.ID)
		require.NoError(t, err)
		assert.True(t, ok)

		got, err := repo.GetByID(ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, got.AvailableCopies)
	})

	t.Run("fails at zero without touching the counter", func(t *testing.T) {
		repo := NewMemoryRepo()
		b := seedBook(t, repo, 1)

		ok, err := repo.ReserveCopy(ctx, b.ID)
		require.NoError(t, err)
		require.True(t, ok)

		ok, err = repo.ReserveCopy(ctx, b.ID)
		require.NoError(t, err)
		assert.False(t, ok)

		got, err := repo.GetByID(ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, got.AvailableCopies)
	})

	t.Run("unknown book", func(t *testing.T) {
		repo := NewMemoryRepo()
		ok, err := repo.ReserveCopy(ctx, 404)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestMemoryRepo_ReleaseCopy_Clamped(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepo()
	b := seedBook(t, repo, 2)

	// Nothing is out, so a release must not push past total_copies.
	ok, err := repo.ReleaseCopy(ctx, b.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	got, err := repo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.AvailableCopies)
}

// With k copies and N > k concurrent reservations, exactly k must win.
func TestMemoryRepo_ReserveCopy_Concurrent(t *testing.T) {
	const (
		copies  = 3
		callers = 50
	)
	ctx := context.Background()
	repo := NewMemoryRepo()
	b := seedBook(t, repo, copies)

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		wins int
	)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := repo.ReserveCopy(ctx, b.ID)
			assert.NoError(t, err)
			if ok {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, copies, wins)

	got, err := repo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.AvailableCopies)
	assert.Equal(t, copies, got.TotalCopies)
}

func TestMemoryRepo_SetTotalCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepo()
	b := seedBook(t, repo, 3)

	// Two copies out on loan.
	for i := 0; i < 2; i++ {
		ok, err := repo.ReserveCopy(ctx, b.ID)
		require.NoError(t, err)
		require.True(t, ok)
	}

	t.Run("cannot shrink below copies out", func(t *testing.T) {
		ok, err := repo.SetTotalCopies(ctx, b.ID, 1)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("grow keeps outstanding loans", func(t *testing.T) {
		ok, err := repo.SetTotalCopies(ctx, b.ID, 5)
		require.NoError(t, err)
		require.True(t, ok)

		got, err := repo.GetByID(ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, 5, got.TotalCopies)
		assert.Equal(t, 3, got.AvailableCopies)
	})
}
