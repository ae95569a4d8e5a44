package catalog

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

type createBookPayload struct {
	ISBN          string `json:"isbn" validate:"required,isbn"`
	Title         string `json:"title" validate:"required"`
	Author        string `json:"author" validate:"required"`
	Publisher     string `json:"publisher"`
	Category      string `json:"category"`
	PublishedDate string `json:"published_date"`
	TotalCopies   int    `json:"total_copies" validate:"required,min=1"`
}

// Create handles POST /v1/books.
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload createBookPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid JSON body", nil)
		return
	}
	if details := httpx.ValidateStruct(payload); details != nil {
		httpx.JSONError(w, r, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", details)
		return
	}

	var published time.Time
	if payload.PublishedDate != "" {
		var err error
		published, err = time.Parse("2006-01-02", payload.PublishedDate)
		if err != nil {
			httpx.JSONError(w, r, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "published_date must be YYYY-MM-DD", nil)
			return
		}
	}

	b := Book{
		ISBN:          payload.ISBN,
		Title:         payload.Title,
		Author:        payload.Author,
		Publisher:     payload.Publisher,
		Category:      payload.Category,
		PublishedDate: published,
		TotalCopies:   payload.TotalCopies,
	}
	if err := h.svc.Add(r.Context(), &b); err != nil {
		if errors.Is(err, ErrInvalidCopies) {
			httpx.JSONError(w, r, http.StatusUnprocessableEntity, "VALIDATION_ERROR", err.Error(), nil)
			return
		}
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccessCreated(w, r, b)
}

// List handles GET /v1/books. Supports ?q= search and ?available=true.
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var (
		books []Book
		err   error
	)
	switch {
	case query.Get("available") == "true":
		books, err = h.svc.ListAvailable(r.Context())
	case query.Get("q") != "":
		books, err = h.svc.Search(r.Context(), query.Get("q"))
	default:
		books, err = h.svc.ListAll(r.Context())
	}
	if err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSONSuccess(w, r, books, map[string]interface{}{"count": len(books)})
}

// GetByISBN handles GET /v1/books/{isbn}.
func (h *HTTPHandler) GetByISBN(w http.ResponseWriter, r *http.Request) {
	isbn := r.PathValue("isbn")
	if isbn == "" {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "ISBN is required", nil)
		return
	}

	book, err := h.svc.GetByISBN(r.Context(), isbn)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
			return
		}
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccess(w, r, book, nil)
}

// Stats handles GET /v1/books/stats.
func (h *HTTPHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Stats(r.Context())
	if err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccess(w, r, stats, nil)
}

// SetCopies handles PATCH /v1/books/{id}/copies.
func (h *HTTPHandler) SetCopies(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid book id", nil)
		return
	}

	var payload struct {
		TotalCopies int `json:"total_copies" validate:"required,min=1"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid JSON body", nil)
		return
	}
	if details := httpx.ValidateStruct(payload); details != nil {
		httpx.JSONError(w, r, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", details)
		return
	}

	ok, err := h.svc.SetTotalCopies(r.Context(), id, payload.TotalCopies)
	if err != nil {
		if errors.Is(err, ErrInvalidCopies) {
			httpx.JSONError(w, r, http.StatusUnprocessableEntity, "VALIDATION_ERROR", err.Error(), nil)
			return
		}
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	if !ok {
		httpx.JSONError(w, r, http.StatusConflict, "CONFLICT", "Total would drop below copies currently on loan", nil)
		return
	}
	httpx.JSONSuccess(w, r, map[string]interface{}{"updated": true}, nil)
}
