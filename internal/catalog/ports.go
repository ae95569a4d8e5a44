package catalog

import (
	"context"
)

// Repository defines the contract for catalog storage.
//
// ReserveCopy and ReleaseCopy are conditional updates: the availability check
// and the counter mutation must happen in one statement so that two
// concurrent issuances cannot both pass the check against a stale count.
type Repository interface {
	Create(ctx context.Context, b *Book) error
	GetByID(ctx context.Context, id int64) (Book, error)
	GetByISBN(ctx context.Context, isbn string) (Book, error)
	Search(ctx context.Context, q string) ([]Book, error)
	ListAll(ctx context.Context) ([]Book, error)
	ListAvailable(ctx context.Context) ([]Book, error)
	Stats(ctx context.Context) (Stats, error)
	ReserveCopy(ctx context.Context, bookID int64) (bool, error)
	ReleaseCopy(ctx context.Context, bookID int64) (bool, error)
	SetTotalCopies(ctx context.Context, bookID int64, total int) (bool, error)
}
