package fine

import (
	"context"
	"time"
)

// Repository defines the contract for fine ledger storage.
type Repository interface {
	Create(ctx context.Context, f *Fine) error
	MarkPaid(ctx context.Context, fineID int64, paidDate time.Time) (bool, error)
	GetByID(ctx context.Context, id int64) (Fine, error)
	ListByReader(ctx context.Context, readerID int64) ([]Fine, error)
	ListUnpaidByReader(ctx context.Context, readerID int64) ([]Fine, error)
	SumUnpaidByReader(ctx context.Context, readerID int64) (int64, error)
	Delete(ctx context.Context, id int64) error
}
