package loan

import (
	"context"
	"errors"
	"fmt"
	"time"

	"libcirc/internal/fine"
)

// Service bridges approved requests to physical loans and closes them on
// return.
type Service struct {
	repo   Repository
	copies CopyStore
	fines  FineLedger
}

// NewService creates a new loan service.
func NewService(repo Repository, copies CopyStore, fines FineLedger) *Service {
	return &Service{repo: repo, copies: copies, fines: fines}
}

// Issue opens a loan. The copy is reserved before the loan row is written;
// reversing that order could leave a loan with no backing copy. Returns
// false when no copy is available.
func (s *Service) Issue(ctx context.Context, p IssueParams) (bool, error) {
	if p.DueDate.Before(p.IssueDate) {
		return false, ErrInvalidPeriod
	}

	reserved, err := s.copies.ReserveCopy(ctx, p.BookID)
	if err != nil {
		return false, fmt.Errorf("reserve copy: %w", err)
	}
	if !reserved {
		return false, nil
	}

	l := Loan{
		BookID:      p.BookID,
		ReaderID:    p.ReaderID,
		LibrarianID: p.LibrarianID,
		IssueDate:   dateOnly(p.IssueDate),
		DueDate:     dateOnly(p.DueDate),
		Status:      StatusIssued,
		Notes:       p.Notes,
	}
	if err := s.repo.Create(ctx, &l); err != nil {
		// Put the copy back so a failed write does not shrink availability.
		if _, relErr := s.copies.ReleaseCopy(ctx, p.BookID); relErr != nil {
			return false, fmt.Errorf("create loan: %w (copy release also failed: %v)", err, relErr)
		}
		return false, fmt.Errorf("create loan: %w", err)
	}
	return true, nil
}

// IssueSelfService opens a kiosk loan with no mediating librarian.
func (s *Service) IssueSelfService(ctx context.Context, bookID, readerID int64, issueDate, dueDate time.Time) (bool, error) {
	return s.Issue(ctx, IssueParams{
		BookID:    bookID,
		ReaderID:  readerID,
		IssueDate: issueDate,
		DueDate:   dueDate,
		Notes:     SelfServiceNote,
	})
}

// Return closes a loan, releases the copy and records any overdue fine.
// The fine is computed against the actual return date, not the clock at
// whatever later moment this runs. Returns false for an unknown or already
// returned loan, and releases nothing in that case.
func (s *Service) Return(ctx context.Context, loanID int64) (bool, error) {
	l, err := s.repo.GetByID(ctx, loanID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	returnDate := dateOnly(time.Now())
	closed, err := s.repo.MarkReturned(ctx, loanID, returnDate)
	if err != nil {
		return false, fmt.Errorf("mark returned: %w", err)
	}
	if !closed {
		return false, nil
	}

	if _, err := s.copies.ReleaseCopy(ctx, l.BookID); err != nil {
		return false, fmt.Errorf("release copy: %w", err)
	}

	if amount := fine.Calculate(l.DueDate, returnDate); amount > 0 {
		if err := s.fines.RecordFine(ctx, l.ID, l.ReaderID, amount); err != nil {
			return false, fmt.Errorf("record fine: %w", err)
		}
	}
	return true, nil
}

// ActiveByReader returns the loans a reader currently has out.
func (s *Service) ActiveByReader(ctx context.Context, readerID int64) ([]Loan, error) {
	return s.repo.ListActiveByReader(ctx, readerID)
}

// HistoryByReader returns a reader's closed loans, most recent return first.
func (s *Service) HistoryByReader(ctx context.Context, readerID int64) ([]Loan, error) {
	return s.repo.ListHistoryByReader(ctx, readerID)
}

// ActiveForBook returns the open loan on a book, if any.
func (s *Service) ActiveForBook(ctx context.Context, bookID int64) (Loan, error) {
	return s.repo.GetActiveForBook(ctx, bookID)
}

// Dashboard returns circulation counters; dueSoonDays bounds the "due soon"
// window.
func (s *Service) Dashboard(ctx context.Context, dueSoonDays int) (Stats, error) {
	if dueSoonDays < 0 {
		dueSoonDays = 0
	}
	return s.repo.CountStats(ctx, dueSoonDays)
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
