package request

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const requestColumns = `id, book_id, reader_id, request_type, status, hold_until,
	librarian_id, notes, created_at, resolved_at`

type PostgresRepo struct {
	db *pgxpool.Pool
}

func NewPostgresRepo(db *pgxpool.Pool) *PostgresRepo {
	return &PostgresRepo{db: db}
}

func (r *PostgresRepo) Create(ctx context.Context, req *Request) error {
	const query = `
		INSERT INTO book_requests (book_id, reader_id, request_type, status, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	return r.db.QueryRow(ctx, query,
		req.BookID, req.ReaderID, req.Type, req.Status, req.Notes, req.CreatedAt,
	).Scan(&req.ID)
}

func (r *PostgresRepo) GetByID(ctx context.Context, id int64) (Request, error) {
	var req Request
	err := r.db.QueryRow(ctx, `SELECT `+requestColumns+` FROM book_requests WHERE id = $1`, id).Scan(
		&req.ID, &req.BookID, &req.ReaderID, &req.Type, &req.Status, &req.HoldUntil,
		&req.LibrarianID, &req.Notes, &req.CreatedAt, &req.ResolvedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Request{}, ErrNotFound
		}
		return Request{}, err
	}
	return req, nil
}

// ListPending returns the triage queue in FIFO order.
func (r *PostgresRepo) ListPending(ctx context.Context) ([]Request, error) {
	const query = `
		SELECT ` + requestColumns + `
		FROM book_requests
		WHERE status = 'PENDING'
		ORDER BY created_at ASC, id ASC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Request
	for rows.Next() {
		var req Request
		if err := rows.Scan(
			&req.ID, &req.BookID, &req.ReaderID, &req.Type, &req.Status, &req.HoldUntil,
			&req.LibrarianID, &req.Notes, &req.CreatedAt, &req.ResolvedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, req)
	}
	return out, rows.Err()
}

// Resolve writes status, librarian, resolved_at, notes and hold_until in a
// single guarded UPDATE. Only PENDING and ON_HOLD rows are resolvable, so a
// double approve/reject reports false instead of overwriting the first
// decision.
func (r *PostgresRepo) Resolve(ctx context.Context, id int64, res Resolution) (bool, error) {
	const query = `
		UPDATE book_requests
		SET status = $2,
		    librarian_id = $3,
		    resolved_at = $4,
		    notes = CASE WHEN $5 <> '' THEN $5 ELSE notes END,
		    hold_until = $6
		WHERE id = $1 AND status IN ('PENDING', 'ON_HOLD')`
	tag, err := r.db.Exec(ctx, query,
		id, res.Status, res.LibrarianID, res.ResolvedAt, res.Notes, res.HoldUntil,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
