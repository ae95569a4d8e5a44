package loan

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"libcirc/internal/testutil"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func newHandlerFixture(t *testing.T) (*HTTPHandler, *MockRepository, *MockCopyStore, *MockFineLedger) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	mockRepo := NewMockRepository(ctrl)
	mockCopies := NewMockCopyStore(ctrl)
	mockFines := NewMockFineLedger(ctrl)
	return NewHTTPHandler(NewService(mockRepo, mockCopies, mockFines)), mockRepo, mockCopies, mockFines
}

func TestHTTPHandler_Issue(t *testing.T) {
	handler, mockRepo, mockCopies, _ := newHandlerFixture(t)

	body := map[string]interface{}{
		"book_id":    testutil.TestBook.ID,
		"reader_id":  testutil.TestReader.ID,
		"issue_date": "2026-08-30",
		"due_date":   "2026-09-13",
	}

	t.Run("success", func(t *testing.T) {
		mockCopies.EXPECT().ReserveCopy(gomock.Any(), testutil.TestBook.ID).Return(true, nil)
		mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		w := httptest.NewRecorder()
		r := testutil.NewRequest(http.MethodPost, "/v1/loans", body)

		handler.Issue(w, r)

		resp := testutil.RecordHTTPResponse(w)
		testutil.AssertResponseCode(t, resp.Code, http.StatusCreated)
	})

	t.Run("no copies", func(t *testing.T) {
		mockCopies.EXPECT().ReserveCopy(gomock.Any(), testutil.TestBook.ID).Return(false, nil)

		w := httptest.NewRecorder()
		r := testutil.NewRequest(http.MethodPost, "/v1/loans", body)

		handler.Issue(w, r)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "NO_COPIES")
	})

	t.Run("due before issue", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := testutil.NewRequest(http.MethodPost, "/v1/loans", map[string]interface{}{
			"book_id":    testutil.TestBook.ID,
			"reader_id":  testutil.TestReader.ID,
			"issue_date": "2026-09-13",
			"due_date":   "2026-08-30",
		})

		handler.Issue(w, r)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("bad date format", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := testutil.NewRequest(http.MethodPost, "/v1/loans", map[string]interface{}{
			"book_id":    testutil.TestBook.ID,
			"reader_id":  testutil.TestReader.ID,
			"issue_date": "today",
			"due_date":   "2026-09-13",
		})

		handler.Issue(w, r)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestHTTPHandler_IssueSelfService(t *testing.T) {
	handler, mockRepo, mockCopies, _ := newHandlerFixture(t)

	mockCopies.EXPECT().ReserveCopy(gomock.Any(), testutil.TestBook.ID).Return(true, nil)
	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, l *Loan) error {
			assert.Equal(t, SelfServiceNote, l.Notes)
			assert.Nil(t, l.LibrarianID)
			return nil
		})

	w := httptest.NewRecorder()
	r := testutil.NewRequest(http.MethodPost, "/v1/loans/self-service", map[string]interface{}{
		"book_id":    testutil.TestBook.ID,
		"reader_id":  testutil.TestReader.ID,
		"issue_date": "2026-08-30",
		"due_date":   "2026-09-13",
	})

	handler.IssueSelfService(w, r)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHTTPHandler_Return(t *testing.T) {
	handler, mockRepo, mockCopies, _ := newHandlerFixture(t)

	t.Run("success", func(t *testing.T) {
		mockRepo.EXPECT().GetByID(gomock.Any(), int64(3)).
			Return(Loan{ID: 3, BookID: testutil.TestBook.ID, Status: StatusIssued, DueDate: futureDate()}, nil)
		mockRepo.EXPECT().MarkReturned(gomock.Any(), int64(3), gomock.Any()).Return(true, nil)
		mockCopies.EXPECT().ReleaseCopy(gomock.Any(), testutil.TestBook.ID).Return(true, nil)

		w := httptest.NewRecorder()
		r := testutil.NewRequest(http.MethodPost, "/v1/loans/3/return", nil)
		r.SetPathValue("id", "3")

		handler.Return(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("unknown loan", func(t *testing.T) {
		mockRepo.EXPECT().GetByID(gomock.Any(), int64(404)).Return(Loan{}, ErrNotFound)

		w := httptest.NewRecorder()
		r := testutil.NewRequest(http.MethodPost, "/v1/loans/404/return", nil)
		r.SetPathValue("id", "404")

		handler.Return(w, r)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func futureDate() time.Time {
	return time.Now().AddDate(0, 0, 14)
}

func TestHTTPHandler_ActiveByReader(t *testing.T) {
	handler, mockRepo, _, _ := newHandlerFixture(t)

	mockRepo.EXPECT().ListActiveByReader(gomock.Any(), testutil.TestReader.ID).
		Return([]Loan{{ID: 1}, {ID: 2}}, nil)

	w := httptest.NewRecorder()
	r := testutil.NewRequest(http.MethodGet, "/v1/readers/42/loans", nil)
	r.SetPathValue("id", "42")

	handler.ActiveByReader(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":2`)
}

func TestHTTPHandler_ActiveForBook(t *testing.T) {
	handler, mockRepo, _, _ := newHandlerFixture(t)

	t.Run("no open loan", func(t *testing.T) {
		mockRepo.EXPECT().GetActiveForBook(gomock.Any(), int64(1)).Return(Loan{}, ErrNotFound)

		w := httptest.NewRecorder()
		r := testutil.NewRequest(http.MethodGet, "/v1/books/1/loan", nil)
		r.SetPathValue("id", "1")

		handler.ActiveForBook(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHTTPHandler_Dashboard(t *testing.T) {
	handler, mockRepo, _, _ := newHandlerFixture(t)

	t.Run("default window", func(t *testing.T) {
		mockRepo.EXPECT().CountStats(gomock.Any(), 3).Return(Stats{Active: 4, Overdue: 1}, nil)

		w := httptest.NewRecorder()
		r := testutil.NewRequest(http.MethodGet, "/v1/loans/stats", nil)

		handler.Dashboard(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("custom window", func(t *testing.T) {
		mockRepo.EXPECT().CountStats(gomock.Any(), 7).Return(Stats{}, nil)

		w := httptest.NewRecorder()
		r := testutil.NewRequest(http.MethodGet, "/v1/loans/stats?due_within=7", nil)

		handler.Dashboard(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("repo error", func(t *testing.T) {
		mockRepo.EXPECT().CountStats(gomock.Any(), 3).Return(Stats{}, errors.New("db error"))

		w := httptest.NewRecorder()
		r := testutil.NewRequest(http.MethodGet, "/v1/loans/stats", nil)

		handler.Dashboard(w, r)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
