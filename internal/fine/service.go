package fine

import (
	"context"
	"time"
)

// Service provides the fine ledger business logic.
type Service struct {
	repo Repository
}

// NewService creates a new fine ledger service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// RecordFine opens an UNPAID ledger entry for a loan.
func (s *Service) RecordFine(ctx context.Context, loanID, readerID, amount int64) error {
	if amount < 0 {
		return ErrNegativeAmount
	}
	f := Fine{
		LoanID:      loanID,
		ReaderID:    readerID,
		Amount:      amount,
		Status:      StatusUnpaid,
		CreatedDate: dateOnly(time.Now()),
	}
	return s.repo.Create(ctx, &f)
}

// Pay settles a fine. Returns false if the fine does not exist or is
// already PAID.
func (s *Service) Pay(ctx context.Context, fineID int64) (bool, error) {
	return s.repo.MarkPaid(ctx, fineID, dateOnly(time.Now()))
}

// ByID returns a single ledger entry.
func (s *Service) ByID(ctx context.Context, id int64) (Fine, error) {
	return s.repo.GetByID(ctx, id)
}

// AllByReader returns every fine ever recorded against a reader.
func (s *Service) AllByReader(ctx context.Context, readerID int64) ([]Fine, error) {
	return s.repo.ListByReader(ctx, readerID)
}

// UnpaidByReader returns the reader's open fines.
func (s *Service) UnpaidByReader(ctx context.Context, readerID int64) ([]Fine, error) {
	return s.repo.ListUnpaidByReader(ctx, readerID)
}

// TotalUnpaidByReader sums the reader's open fines, zero when there are none.
func (s *Service) TotalUnpaidByReader(ctx context.Context, readerID int64) (int64, error) {
	return s.repo.SumUnpaidByReader(ctx, readerID)
}

// Delete removes a ledger entry. Administrative escape hatch, not part of
// the normal lifecycle.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
