package request

import (
	"context"
	"fmt"
	"time"
)

// Service owns the request state machine.
type Service struct {
	repo  Repository
	books BookDirectory
}

// NewService creates a new request service.
func NewService(repo Repository, books BookDirectory) *Service {
	return &Service{repo: repo, books: books}
}

// Create records a PENDING request. The book must exist; duplicate pending
// requests from the same reader are allowed to coexist.
func (s *Service) Create(ctx context.Context, bookID, readerID int64, reqType Type) (Request, error) {
	if !reqType.Valid() {
		return Request{}, ErrInvalidType
	}
	if _, err := s.books.GetByID(ctx, bookID); err != nil {
		return Request{}, fmt.Errorf("create request: %w", err)
	}

	r := Request{
		BookID:    bookID,
		ReaderID:  readerID,
		Type:      reqType,
		Status:    StatusPending,
		CreatedAt: time.Now(),
	}
	if err := s.repo.Create(ctx, &r); err != nil {
		return Request{}, err
	}
	return r, nil
}

// Approve marks a request APPROVED. It records the decision only; issuing
// the loan and touching copy counts is a separate, explicit step.
// Returns false if the request was already resolved.
func (s *Service) Approve(ctx context.Context, id, librarianID int64) (bool, error) {
	return s.repo.Resolve(ctx, id, Resolution{
		Status:      StatusApproved,
		LibrarianID: librarianID,
		ResolvedAt:  time.Now(),
	})
}

// Reject marks a request REJECTED with a reason in the notes.
func (s *Service) Reject(ctx context.Context, id, librarianID int64, reason string) (bool, error) {
	if reason == "" {
		reason = DefaultRejectReason
	}
	return s.repo.Resolve(ctx, id, Resolution{
		Status:      StatusRejected,
		LibrarianID: librarianID,
		ResolvedAt:  time.Now(),
		Notes:       reason,
	})
}

// Hold parks a request until the given date. A held request can still be
// approved or rejected later.
func (s *Service) Hold(ctx context.Context, id, librarianID int64, holdUntil time.Time) (bool, error) {
	return s.repo.Resolve(ctx, id, Resolution{
		Status:      StatusOnHold,
		LibrarianID: librarianID,
		ResolvedAt:  time.Now(),
		HoldUntil:   &holdUntil,
	})
}

// Pending returns the librarian triage queue, oldest first.
func (s *Service) Pending(ctx context.Context) ([]Request, error) {
	return s.repo.ListPending(ctx)
}

// ByID returns a single request.
func (s *Service) ByID(ctx context.Context, id int64) (Request, error) {
	return s.repo.GetByID(ctx, id)
}
