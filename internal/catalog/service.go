package catalog

import (
	"context"
	"strings"
)

// Service provides catalog business logic.
type Service struct {
	repo Repository
}

// NewService creates a new catalog service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Add registers a new title. Copy counters start full.
func (s *Service) Add(ctx context.Context, b *Book) error {
	if b.TotalCopies < 1 {
		return ErrInvalidCopies
	}
	b.AvailableCopies = b.TotalCopies
	return s.repo.Create(ctx, b)
}

// GetByID returns a book by its surrogate id.
func (s *Service) GetByID(ctx context.Context, id int64) (Book, error) {
	return s.repo.GetByID(ctx, id)
}

// GetByISBN returns a book by its ISBN.
func (s *Service) GetByISBN(ctx context.Context, isbn string) (Book, error) {
	return s.repo.GetByISBN(ctx, strings.TrimSpace(isbn))
}

// Search matches the query against isbn, title, author, publisher and category.
func (s *Service) Search(ctx context.Context, q string) ([]Book, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return s.repo.ListAll(ctx)
	}
	return s.repo.Search(ctx, q)
}

// ListAll returns the whole catalog.
func (s *Service) ListAll(ctx context.Context) ([]Book, error) {
	return s.repo.ListAll(ctx)
}

// ListAvailable returns titles with at least one free copy.
func (s *Service) ListAvailable(ctx context.Context) ([]Book, error) {
	return s.repo.ListAvailable(ctx)
}

// Stats returns catalog-wide counters.
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	return s.repo.Stats(ctx)
}

// ReserveCopy takes one copy out of circulation for a new loan. Returns
// false when no copy is free; that is a normal outcome, not an error.
func (s *Service) ReserveCopy(ctx context.Context, bookID int64) (bool, error) {
	return s.repo.ReserveCopy(ctx, bookID)
}

// ReleaseCopy puts a copy back after a return. The counter is clamped at
// total_copies, so a stray double release cannot inflate availability.
func (s *Service) ReleaseCopy(ctx context.Context, bookID int64) (bool, error) {
	return s.repo.ReleaseCopy(ctx, bookID)
}

// SetTotalCopies adjusts the size of a title's copy pool. Shrinking below
// the number of copies currently out on loan is rejected by the store.
func (s *Service) SetTotalCopies(ctx context.Context, bookID int64, total int) (bool, error) {
	if total < 1 {
		return false, ErrInvalidCopies
	}
	return s.repo.SetTotalCopies(ctx, bookID, total)
}
