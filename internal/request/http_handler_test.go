package request

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"libcirc/internal/catalog"
	"libcirc/internal/testutil"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func newHandlerFixture(t *testing.T) (*HTTPHandler, *MockRepository, *MockBookDirectory) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	mockRepo := NewMockRepository(ctrl)
	mockBooks := NewMockBookDirectory(ctrl)
	return NewHTTPHandler(NewService(mockRepo, mockBooks)), mockRepo, mockBooks
}

func TestHTTPHandler_Create(t *testing.T) {
	handler, mockRepo, mockBooks := newHandlerFixture(t)

	t.Run("success", func(t *testing.T) {
		mockBooks.EXPECT().GetByID(gomock.Any(), testutil.TestBook.ID).Return(testutil.TestBook, nil)
		mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		w := httptest.NewRecorder()
		r := testutil.NewRequest(http.MethodPost, "/v1/requests", map[string]interface{}{
			"book_id":      testutil.TestBook.ID,
			"reader_id":    testutil.TestReader.ID,
			"request_type": "ISSUE",
		})

		handler.Create(w, r)

		resp := testutil.RecordHTTPResponse(w)
		testutil.AssertResponseCode(t, resp.Code, http.StatusCreated)
	})

	t.Run("unknown book", func(t *testing.T) {
		mockBooks.EXPECT().GetByID(gomock.Any(), int64(999)).Return(catalog.Book{}, catalog.ErrNotFound)

		w := httptest.NewRecorder()
		r := testutil.NewRequest(http.MethodPost, "/v1/requests", map[string]interface{}{
			"book_id":      999,
			"reader_id":    testutil.TestReader.ID,
			"request_type": "ISSUE",
		})

		handler.Create(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("bad request type", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := testutil.NewRequest(http.MethodPost, "/v1/requests", map[string]interface{}{
			"book_id":      testutil.TestBook.ID,
			"reader_id":    testutil.TestReader.ID,
			"request_type": "BORROW",
		})

		handler.Create(w, r)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestHTTPHandler_Approve(t *testing.T) {
	handler, mockRepo, _ := newHandlerFixture(t)

	t.Run("success", func(t *testing.T) {
		mockRepo.EXPECT().Resolve(gomock.Any(), int64(5), gomock.Any()).Return(true, nil)

		w := httptest.NewRecorder()
		r := testutil.NewRequest(http.MethodPost, "/v1/requests/5/approve", map[string]interface{}{
			"librarian_id": testutil.TestLibrarian.ID,
		})
		r.SetPathValue("id", "5")

		handler.Approve(w, r)

		resp := testutil.RecordHTTPResponse(w)
		testutil.AssertResponseCode(t, resp.Code, http.StatusOK)
	})

	t.Run("already resolved", func(t *testing.T) {
		mockRepo.EXPECT().Resolve(gomock.Any(), int64(5), gomock.Any()).Return(false, nil)

		w := httptest.NewRecorder()
		r := testutil.NewRequest(http.MethodPost, "/v1/requests/5/approve", map[string]interface{}{
			"librarian_id": testutil.TestLibrarian.ID,
		})
		r.SetPathValue("id", "5")

		handler.Approve(w, r)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("missing librarian", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := testutil.NewRequest(http.MethodPost, "/v1/requests/5/approve", map[string]interface{}{})
		r.SetPathValue("id", "5")

		handler.Approve(w, r)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestHTTPHandler_Hold(t *testing.T) {
	handler, mockRepo, _ := newHandlerFixture(t)

	t.Run("success", func(t *testing.T) {
		mockRepo.EXPECT().Resolve(gomock.Any(), int64(5), gomock.Any()).Return(true, nil)

		w := httptest.NewRecorder()
		r := testutil.NewRequest(http.MethodPost, "/v1/requests/5/hold", map[string]interface{}{
			"librarian_id": testutil.TestLibrarian.ID,
			"hold_until":   "2026-09-15",
		})
		r.SetPathValue("id", "5")

		handler.Hold(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("bad hold date", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := testutil.NewRequest(http.MethodPost, "/v1/requests/5/hold", map[string]interface{}{
			"librarian_id": testutil.TestLibrarian.ID,
			"hold_until":   "next week",
		})
		r.SetPathValue("id", "5")

		handler.Hold(w, r)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestHTTPHandler_Pending(t *testing.T) {
	handler, mockRepo, _ := newHandlerFixture(t)

	mockRepo.EXPECT().ListPending(gomock.Any()).Return([]Request{
		{ID: 1, Status: StatusPending},
		{ID: 2, Status: StatusPending},
	}, nil)

	w := httptest.NewRecorder()
	r := testutil.NewRequest(http.MethodGet, "/v1/requests/pending", nil)

	handler.Pending(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":2`)
}

func TestHTTPHandler_ByID(t *testing.T) {
	handler, mockRepo, _ := newHandlerFixture(t)

	t.Run("not found", func(t *testing.T) {
		mockRepo.EXPECT().GetByID(gomock.Any(), int64(404)).Return(Request{}, ErrNotFound)

		w := httptest.NewRecorder()
		r := testutil.NewRequest(http.MethodGet, "/v1/requests/404", nil)
		r.SetPathValue("id", "404")

		handler.ByID(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
