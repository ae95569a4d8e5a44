package request

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"libcirc/internal/catalog"
	"libcirc/internal/httpx"
)

type HTTPHandler struct {
	svc *Service
}

func NewHTTPHandler(svc *Service) *HTTPHandler {
	return &HTTPHandler{svc: svc}
}

type createPayload struct {
	BookID   int64  `json:"book_id" validate:"required"`
	ReaderID int64  `json:"reader_id" validate:"required"`
	Type     string `json:"request_type" validate:"required,oneof=ISSUE RE_ISSUE"`
}

// Create handles POST /v1/requests.
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload createPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid JSON body", nil)
		return
	}
	if details := httpx.ValidateStruct(payload); details != nil {
		httpx.JSONError(w, r, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", details)
		return
	}

	req, err := h.svc.Create(r.Context(), payload.BookID, payload.ReaderID, Type(payload.Type))
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrNotFound):
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
		case errors.Is(err, ErrInvalidType):
			httpx.JSONError(w, r, http.StatusUnprocessableEntity, "VALIDATION_ERROR", err.Error(), nil)
		default:
			httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		}
		return
	}
	httpx.JSONSuccessCreated(w, r, req)
}

// Pending handles GET /v1/requests/pending.
func (h *HTTPHandler) Pending(w http.ResponseWriter, r *http.Request) {
	requests, err := h.svc.Pending(r.Context())
	if err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccess(w, r, requests, map[string]interface{}{"count": len(requests)})
}

// ByID handles GET /v1/requests/{id}.
func (h *HTTPHandler) ByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request id", nil)
		return
	}

	req, err := h.svc.ByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Request not found", nil)
			return
		}
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccess(w, r, req, nil)
}

type resolvePayload struct {
	LibrarianID int64  `json:"librarian_id" validate:"required"`
	Reason      string `json:"reason"`
	HoldUntil   string `json:"hold_until"`
}

// Approve handles POST /v1/requests/{id}/approve.
func (h *HTTPHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.resolve(w, r, func(ctx *http.Request, id int64, p resolvePayload) (bool, error) {
		return h.svc.Approve(ctx.Context(), id, p.LibrarianID)
	})
}

// Reject handles POST /v1/requests/{id}/reject.
func (h *HTTPHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.resolve(w, r, func(ctx *http.Request, id int64, p resolvePayload) (bool, error) {
		return h.svc.Reject(ctx.Context(), id, p.LibrarianID, p.Reason)
	})
}

// Hold handles POST /v1/requests/{id}/hold.
func (h *HTTPHandler) Hold(w http.ResponseWriter, r *http.Request) {
	h.resolve(w, r, func(ctx *http.Request, id int64, p resolvePayload) (bool, error) {
		holdUntil, err := time.Parse("2006-01-02", p.HoldUntil)
		if err != nil {
			return false, errInvalidHoldDate
		}
		return h.svc.Hold(ctx.Context(), id, p.LibrarianID, holdUntil)
	})
}

var errInvalidHoldDate = errors.New("hold_until must be YYYY-MM-DD")

func (h *HTTPHandler) resolve(w http.ResponseWriter, r *http.Request, fn func(*http.Request, int64, resolvePayload) (bool, error)) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request id", nil)
		return
	}

	var payload resolvePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid JSON body", nil)
		return
	}
	if details := httpx.ValidateStruct(payload); details != nil {
		httpx.JSONError(w, r, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", details)
		return
	}

	ok, err := fn(r, id, payload)
	if err != nil {
		if errors.Is(err, errInvalidHoldDate) {
			httpx.JSONError(w, r, http.StatusUnprocessableEntity, "VALIDATION_ERROR", err.Error(), nil)
			return
		}
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	if !ok {
		httpx.JSONError(w, r, http.StatusConflict, "CONFLICT", "Request already resolved", nil)
		return
	}
	httpx.JSONSuccess(w, r, map[string]interface{}{"resolved": true}, nil)
}
