package catalog

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const bookColumns = `id, isbn, title, author, publisher, category, published_date,
	total_copies, available_copies, created_at, updated_at`

type PostgresRepo struct {
	db *pgxpool.Pool
}

func NewPostgresRepo(db *pgxpool.Pool) *PostgresRepo {
	return &PostgresRepo{db: db}
}

func (r *PostgresRepo) Create(ctx context.Context, b *Book) error {
	const query = `
		INSERT INTO books (isbn, title, author, publisher, category, published_date,
		                   total_copies, available_copies, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING id, created_at, updated_at`
	return r.db.QueryRow(ctx, query,
		b.ISBN, b.Title, b.Author, b.Publisher, b.Category, b.PublishedDate,
		b.TotalCopies, b.AvailableCopies,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
}

func (r *PostgresRepo) GetByID(ctx context.Context, id int64) (Book, error) {
	return r.get(ctx, `SELECT `+bookColumns+` FROM books WHERE id = $1`, id)
}

func (r *PostgresRepo) GetByISBN(ctx context.Context, isbn string) (Book, error) {
	return r.get(ctx, `SELECT `+bookColumns+` FROM books WHERE isbn = $1`, isbn)
}

func (r *PostgresRepo) Search(ctx context.Context, q string) ([]Book, error) {
	const query = `
		SELECT ` + bookColumns + `
		FROM books
		WHERE isbn ILIKE $1 OR title ILIKE $1 OR author ILIKE $1
		   OR publisher ILIKE $1 OR category ILIKE $1
		ORDER BY title ASC`
	return r.list(ctx, query, "%"+q+"%")
}

func (r *PostgresRepo) ListAll(ctx context.Context) ([]Book, error) {
	return r.list(ctx, `SELECT `+bookColumns+` FROM books ORDER BY title ASC`)
}

func (r *PostgresRepo) ListAvailable(ctx context.Context) ([]Book, error) {
	return r.list(ctx, `SELECT `+bookColumns+` FROM books WHERE available_copies > 0 ORDER BY title ASC`)
}

func (r *PostgresRepo) Stats(ctx context.Context) (Stats, error) {
	const query = `
		SELECT COUNT(*),
		       COALESCE(SUM(total_copies), 0),
		       COALESCE(SUM(available_copies), 0)
		FROM books`
	var st Stats
	err := r.db.QueryRow(ctx, query).Scan(&st.TotalBooks, &st.TotalCopies, &st.AvailableCopies)
	return st, err
}

// ReserveCopy is a single guarded UPDATE: the availability check and the
// decrement cannot be separated, so concurrent issuances never oversell the
// last copy.
func (r *PostgresRepo) ReserveCopy(ctx context.Context, bookID int64) (bool, error) {
	const query = `
		UPDATE books
		SET available_copies = available_copies - 1, updated_at = NOW()
		WHERE id = $1 AND available_copies > 0`
	tag, err := r.db.Exec(ctx, query, bookID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// ReleaseCopy increments the counter, clamped at total_copies.
func (r *PostgresRepo) ReleaseCopy(ctx context.Context, bookID int64) (bool, error) {
	const query = `
		UPDATE books
		SET available_copies = available_copies + 1, updated_at = NOW()
		WHERE id = $1 AND available_copies < total_copies`
	tag, err := r.db.Exec(ctx, query, bookID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// SetTotalCopies resizes the pool, keeping available_copies consistent with
// the number of copies currently out. Rejected when the new total is smaller
// than the number out on loan.
func (r *PostgresRepo) SetTotalCopies(ctx context.Context, bookID int64, total int) (bool, error) {
	const query = `
		UPDATE books
		SET available_copies = $2 - (total_copies - available_copies),
		    total_copies = $2,
		    updated_at = NOW()
		WHERE id = $1 AND total_copies - available_copies <= $2`
	tag, err := r.db.Exec(ctx, query, bookID, total)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *PostgresRepo) get(ctx context.Context, query string, arg any) (Book, error) {
	var b Book
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&b.ID, &b.ISBN, &b.Title, &b.Author, &b.Publisher, &b.Category, &b.PublishedDate,
		&b.TotalCopies, &b.AvailableCopies, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Book{}, ErrNotFound
		}
		return Book{}, err
	}
	return b, nil
}

func (r *PostgresRepo) list(ctx context.Context, query string, args ...any) ([]Book, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Book
	for rows.Next() {
		var b Book
		if err := rows.Scan(
			&b.ID, &b.ISBN, &b.Title, &b.Author, &b.Publisher, &b.Category, &b.PublishedDate,
			&b.TotalCopies, &b.AvailableCopies, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
