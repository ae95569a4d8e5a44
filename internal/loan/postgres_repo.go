package loan

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const loanColumns = `id, book_id, reader_id, librarian_id, issue_date, due_date,
	return_date, status, notes`

type PostgresRepo struct {
	db *pgxpool.Pool
}

func NewPostgresRepo(db *pgxpool.Pool) *PostgresRepo {
	return &PostgresRepo{db: db}
}

func (r *PostgresRepo) Create(ctx context.Context, l *Loan) error {
	const query = `
		INSERT INTO loans (book_id, reader_id, librarian_id, issue_date, due_date, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	return r.db.QueryRow(ctx, query,
		l.BookID, l.ReaderID, l.LibrarianID, l.IssueDate, l.DueDate, l.Status, l.Notes,
	).Scan(&l.ID)
}

func (r *PostgresRepo) GetByID(ctx context.Context, id int64) (Loan, error) {
	return r.get(ctx, `SELECT `+loanColumns+` FROM loans WHERE id = $1`, id)
}

// MarkReturned closes the loan only while it is still ISSUED, so a second
// return of the same loan reports false instead of releasing another copy.
func (r *PostgresRepo) MarkReturned(ctx context.Context, id int64, returnDate time.Time) (bool, error) {
	const query = `
		UPDATE loans
		SET status = $2, return_date = $3
		WHERE id = $1 AND status = $4`
	tag, err := r.db.Exec(ctx, query, id, StatusReturned, returnDate, StatusIssued)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *PostgresRepo) ListActiveByReader(ctx context.Context, readerID int64) ([]Loan, error) {
	const query = `
		SELECT ` + loanColumns + `
		FROM loans
		WHERE reader_id = $1 AND status = 'ISSUED'
		ORDER BY due_date ASC, id ASC`
	return r.list(ctx, query, readerID)
}

func (r *PostgresRepo) ListHistoryByReader(ctx context.Context, readerID int64) ([]Loan, error) {
	const query = `
		SELECT ` + loanColumns + `
		FROM loans
		WHERE reader_id = $1 AND status = 'RETURNED'
		ORDER BY return_date DESC, id DESC`
	return r.list(ctx, query, readerID)
}

func (r *PostgresRepo) GetActiveForBook(ctx context.Context, bookID int64) (Loan, error) {
	const query = `
		SELECT ` + loanColumns + `
		FROM loans
		WHERE book_id = $1 AND status = 'ISSUED'
		ORDER BY issue_date DESC, id DESC
		LIMIT 1`
	return r.get(ctx, query, bookID)
}

func (r *PostgresRepo) CountStats(ctx context.Context, dueSoonDays int) (Stats, error) {
	const query = `
		SELECT
			COUNT(*) FILTER (WHERE status = 'ISSUED'),
			COUNT(*) FILTER (WHERE status = 'ISSUED'
				AND due_date >= CURRENT_DATE
				AND due_date <= CURRENT_DATE + $1::int),
			COUNT(*) FILTER (WHERE status = 'ISSUED' AND due_date < CURRENT_DATE),
			COUNT(*) FILTER (WHERE status = 'RETURNED')
		FROM loans`
	var st Stats
	err := r.db.QueryRow(ctx, query, dueSoonDays).Scan(&st.Active, &st.DueSoon, &st.Overdue, &st.Returned)
	return st, err
}

func (r *PostgresRepo) get(ctx context.Context, query string, arg any) (Loan, error) {
	var l Loan
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&l.ID, &l.BookID, &l.ReaderID, &l.LibrarianID, &l.IssueDate, &l.DueDate,
		&l.ReturnDate, &l.Status, &l.Notes,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Loan{}, ErrNotFound
		}
		return Loan{}, err
	}
	return l, nil
}

func (r *PostgresRepo) list(ctx context.Context, query string, args ...any) ([]Loan, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Loan
	for rows.Next() {
		var l Loan
		if err := rows.Scan(
			&l.ID, &l.BookID, &l.ReaderID, &l.LibrarianID, &l.IssueDate, &l.DueDate,
			&l.ReturnDate, &l.Status, &l.Notes,
		); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}
