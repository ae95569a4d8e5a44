package fine

import (
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

// Quote handles GET /v1/fines/quote?due_date=YYYY-MM-DD. It prices the
// running fine of a still-open loan without writing anything.
func (h *HTTPHandler) Quote(w http.ResponseWriter, r *http.Request) {
	dueDate, err := time.Parse("2006-01-02", r.URL.Query().Get("due_date"))
	if err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "due_date must be YYYY-MM-DD", nil)
		return
	}

	httpx.JSONSuccess(w, r, map[string]interface{}{
		"due_date": dueDate.Format("2006-01-02"),
		"amount":   ForDueDate(dueDate),
	}, nil)
}

type recordPayload struct {
	LoanID   int64 `json:"loan_id" validate:"required"`
	ReaderID int64 `json:"reader_id" validate:"required"`
	Amount   int64 `json:"amount" validate:"required,min=0"`
}

// Record handles POST /v1/fines.
func (h *HTTPHandler) Record(w http.ResponseWriter, r *http.Request) {
	var payload recordPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid JSON body", nil)
		return
	}
	if details := httpx.ValidateStruct(payload); details != nil {
		httpx.JSONError(w, r, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", details)
		return
	}

	if err := h.svc.RecordFine(r.Context(), payload.LoanID, payload.ReaderID, payload.Amount); err != nil {
		if errors.Is(err, ErrNegativeAmount) {
			httpx.JSONError(w, r, http.StatusUnprocessableEntity, "VALIDATION_ERROR", err.Error(), nil)
			return
		}
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccessCreated(w, r, map[string]interface{}{"recorded": true})
}

// Pay handles POST /v1/fines/{id}/pay.
func (h *HTTPHandler) Pay(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid fine id", nil)
		return
	}

	ok, err := h.svc.Pay(r.Context(), id)
	if err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	if !ok {
		httpx.JSONError(w, r, http.StatusConflict, "CONFLICT", "Fine not open", nil)
		return
	}
	httpx.JSONSuccess(w, r, map[string]interface{}{"paid": true}, nil)
}

// ByID handles GET /v1/fines/{id}.
func (h *HTTPHandler) ByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid fine id", nil)
		return
	}

	f, err := h.svc.ByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Fine not found", nil)
			return
		}
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccess(w, r, f, nil)
}

// Remove handles DELETE /v1/fines/{id}. Administrative correction, not part
// of the payment flow.
func (h *HTTPHandler) Remove(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid fine id", nil)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Fine not found", nil)
			return
		}
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccess(w, r, map[string]interface{}{"deleted": true}, nil)
}

// ByReader handles GET /v1/readers/{id}/fines. ?status=unpaid narrows to
// open fines.
func (h *HTTPHandler) ByReader(w http.ResponseWriter, r *http.Request) {
	readerID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid reader id", nil)
		return
	}

	var fines []Fine
	if r.URL.Query().Get("status") == "unpaid" {
		fines, err = h.svc.UnpaidByReader(r.Context(), readerID)
	} else {
		fines, err = h.svc.AllByReader(r.Context(), readerID)
	}
	if err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccess(w, r, fines, map[string]interface{}{"count": len(fines)})
}

// TotalByReader handles GET /v1/readers/{id}/fines/total.
func (h *HTTPHandler) TotalByReader(w http.ResponseWriter, r *http.Request) {
	readerID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid reader id", nil)
		return
	}

	total, err := h.svc.TotalUnpaidByReader(r.Context(), readerID)
	if err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccess(w, r, map[string]interface{}{"total_unpaid": total}, nil)
}
