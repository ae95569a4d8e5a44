package loan

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"libcirc/internal/httpx"
)

type HTTPHandler struct {
	svc *Service
}

func NewHTTPHandler(svc *Service) *HTTPHandler {
	return &HTTPHandler{svc: svc}
}

type issuePayload struct {
	BookID      int64  `json:"book_id" validate:"required"`
	ReaderID    int64  `json:"reader_id" validate:"required"`
	LibrarianID *int64 `json:"librarian_id"`
	IssueDate   string `json:"issue_date" validate:"required"`
	DueDate     string `json:"due_date" validate:"required"`
	Notes       string `json:"notes"`
}

// Issue handles POST /v1/loans.
func (h *HTTPHandler) Issue(w http.ResponseWriter, r *http.Request) {
	var payload issuePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid JSON body", nil)
		return
	}
	if details := httpx.ValidateStruct(payload); details != nil {
		httpx.JSONError(w, r, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", details)
		return
	}

	issueDate, dueDate, ok := parseLoanDates(w, r, payload.IssueDate, payload.DueDate)
	if !ok {
		return
	}

	h.finishIssue(w, r, IssueParams{
		BookID:      payload.BookID,
		ReaderID:    payload.ReaderID,
		LibrarianID: payload.LibrarianID,
		IssueDate:   issueDate,
		DueDate:     dueDate,
		Notes:       payload.Notes,
	})
}

type selfServicePayload struct {
	BookID    int64  `json:"book_id" validate:"required"`
	ReaderID  int64  `json:"reader_id" validate:"required"`
	IssueDate string `json:"issue_date" validate:"required"`
	DueDate   string `json:"due_date" validate:"required"`
}

// IssueSelfService handles POST /v1/loans/self-service.
func (h *HTTPHandler) IssueSelfService(w http.ResponseWriter, r *http.Request) {
	var payload selfServicePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid JSON body", nil)
		return
	}
	if details := httpx.ValidateStruct(payload); details != nil {
		httpx.JSONError(w, r, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", details)
		return
	}

	issueDate, dueDate, ok := parseLoanDates(w, r, payload.IssueDate, payload.DueDate)
	if !ok {
		return
	}

	h.finishIssue(w, r, IssueParams{
		BookID:    payload.BookID,
		ReaderID:  payload.ReaderID,
		IssueDate: issueDate,
		DueDate:   dueDate,
		Notes:     SelfServiceNote,
	})
}

func (h *HTTPHandler) finishIssue(w http.ResponseWriter, r *http.Request, p IssueParams) {
	ok, err := h.svc.Issue(r.Context(), p)
	if err != nil {
		if errors.Is(err, ErrInvalidPeriod) {
			httpx.JSONError(w, r, http.StatusUnprocessableEntity, "VALIDATION_ERROR", err.Error(), nil)
			return
		}
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	if !ok {
		httpx.JSONError(w, r, http.StatusConflict, "NO_COPIES", "No copies available", nil)
		return
	}
	httpx.JSONSuccessCreated(w, r, map[string]interface{}{"issued": true})
}

// Return handles POST /v1/loans/{id}/return.
func (h *HTTPHandler) Return(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid loan id", nil)
		return
	}

	ok, err := h.svc.Return(r.Context(), id)
	if err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	if !ok {
		httpx.JSONError(w, r, http.StatusConflict, "CONFLICT", "Loan not open", nil)
		return
	}
	httpx.JSONSuccess(w, r, map[string]interface{}{"returned": true}, nil)
}

// ActiveByReader handles GET /v1/readers/{id}/loans.
func (h *HTTPHandler) ActiveByReader(w http.ResponseWriter, r *http.Request) {
	h.listByReader(w, r, h.svc.ActiveByReader)
}

// HistoryByReader handles GET /v1/readers/{id}/loans/history.
func (h *HTTPHandler) HistoryByReader(w http.ResponseWriter, r *http.Request) {
	h.listByReader(w, r, h.svc.HistoryByReader)
}

func (h *HTTPHandler) listByReader(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, readerID int64) ([]Loan, error)) {
	readerID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid reader id", nil)
		return
	}

	loans, err := fn(r.Context(), readerID)
	if err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccess(w, r, loans, map[string]interface{}{"count": len(loans)})
}

// ActiveForBook handles GET /v1/books/{id}/loan.
func (h *HTTPHandler) ActiveForBook(w http.ResponseWriter, r *http.Request) {
	bookID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid book id", nil)
		return
	}

	l, err := h.svc.ActiveForBook(r.Context(), bookID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "No open loan for this book", nil)
			return
		}
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccess(w, r, l, nil)
}

// Dashboard handles GET /v1/loans/stats?due_within=N.
func (h *HTTPHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	dueWithin, _ := strconv.Atoi(r.URL.Query().Get("due_within"))
	if dueWithin <= 0 {
		dueWithin = 3
	}

	stats, err := h.svc.Dashboard(r.Context(), dueWithin)
	if err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccess(w, r, stats, nil)
}

func parseLoanDates(w http.ResponseWriter, r *http.Request, issue, due string) (time.Time, time.Time, bool) {
	issueDate, err := time.Parse("2006-01-02", issue)
	if err != nil {
		httpx.JSONError(w, r, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "issue_date must be YYYY-MM-DD", nil)
		return time.Time{}, time.Time{}, false
	}
	dueDate, err := time.Parse("2006-01-02", due)
	if err != nil {
		httpx.JSONError(w, r, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "due_date must be YYYY-MM-DD", nil)
		return time.Time{}, time.Time{}, false
	}
	return issueDate, dueDate, true
}
