package request

import (
	"context"

	"libcirc/internal/catalog"
)

// Repository defines the contract for request storage. Resolve must apply
// its guard and the field updates in one statement: it succeeds only while
// the row is still in a resolvable state.
type Repository interface {
	Create(ctx context.Context, r *Request) error
	GetByID(ctx context.Context, id int64) (Request, error)
	ListPending(ctx context.Context) ([]Request, error)
	Resolve(ctx context.Context, id int64, res Resolution) (bool, error)
}

// BookDirectory is the slice of the catalog the request engine needs.
type BookDirectory interface {
	GetByID(ctx context.Context, id int64) (catalog.Book, error)
}
