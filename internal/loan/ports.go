package loan

import (
	"context"
	"time"
)

// Repository defines the contract for loan storage. MarkReturned is guarded
// on the ISSUED status so a loan can close at most once.
type Repository interface {
	Create(ctx context.Context, l *Loan) error
	GetByID(ctx context.Context, id int64) (Loan, error)
	MarkReturned(ctx context.Context, id int64, returnDate time.Time) (bool, error)
	ListActiveByReader(ctx context.Context, readerID int64) ([]Loan, error)
	ListHistoryByReader(ctx context.Context, readerID int64) ([]Loan, error)
	GetActiveForBook(ctx context.Context, bookID int64) (Loan, error)
	CountStats(ctx context.Context, dueSoonDays int) (Stats, error)
}

// CopyStore is the slice of the catalog the loan engine needs: the two
// atomic copy-counter operations.
type CopyStore interface {
	ReserveCopy(ctx context.Context, bookID int64) (bool, error)
	ReleaseCopy(ctx context.Context, bookID int64) (bool, error)
}

// FineLedger records the penalty computed when a loan closes late.
type FineLedger interface {
	RecordFine(ctx context.Context, loanID, readerID, amount int64) error
}
