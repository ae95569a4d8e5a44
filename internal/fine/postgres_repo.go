package fine

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepo struct {
	db *pgxpool.Pool
}

func NewPostgresRepo(db *pgxpool.Pool) *PostgresRepo {
	return &PostgresRepo{db: db}
}

func (r *PostgresRepo) Create(ctx context.Context, f *Fine) error {
	const query = `
		INSERT INTO fines (loan_id, reader_id, amount, status, created_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	return r.db.QueryRow(ctx, query,
		f.LoanID, f.ReaderID, f.Amount, f.Status, f.CreatedDate,
	).Scan(&f.ID)
}

func (r *PostgresRepo) MarkPaid(ctx context.Context, fineID int64, paidDate time.Time) (bool, error) {
	const query = `
		UPDATE fines
		SET status = $1, paid_date = $2
		WHERE id = $3 AND status = $4`
	tag, err := r.db.Exec(ctx, query, StatusPaid, paidDate, fineID, StatusUnpaid)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *PostgresRepo) GetByID(ctx context.Context, id int64) (Fine, error) {
	const query = `
		SELECT id, loan_id, reader_id, amount, status, created_date, paid_date
		FROM fines
		WHERE id = $1`
	var f Fine
	err := r.db.QueryRow(ctx, query, id).Scan(
		&f.ID, &f.LoanID, &f.ReaderID, &f.Amount, &f.Status, &f.CreatedDate, &f.PaidDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Fine{}, ErrNotFound
		}
		return Fine{}, err
	}
	return f, nil
}

func (r *PostgresRepo) ListByReader(ctx context.Context, readerID int64) ([]Fine, error) {
	const query = `
		SELECT id, loan_id, reader_id, amount, status, created_date, paid_date
		FROM fines
		WHERE reader_id = $1
		ORDER BY created_date DESC, id DESC`
	return r.list(ctx, query, readerID)
}

func (r *PostgresRepo) ListUnpaidByReader(ctx context.Context, readerID int64) ([]Fine, error) {
	const query = `
		SELECT id, loan_id, reader_id, amount, status, created_date, paid_date
		FROM fines
		WHERE reader_id = $1 AND status = 'UNPAID'
		ORDER BY created_date DESC, id DESC`
	return r.list(ctx, query, readerID)
}

func (r *PostgresRepo) SumUnpaidByReader(ctx context.Context, readerID int64) (int64, error) {
	const query = `
		SELECT COALESCE(SUM(amount), 0)
		FROM fines
		WHERE reader_id = $1 AND status = 'UNPAID'`
	var total int64
	if err := r.db.QueryRow(ctx, query, readerID).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func (r *PostgresRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM fines WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepo) list(ctx context.Context, query string, args ...any) ([]Fine, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Fine
	for rows.Next() {
		var f Fine
		if err := rows.Scan(
			&f.ID, &f.LoanID, &f.ReaderID, &f.Amount, &f.Status, &f.CreatedDate, &f.PaidDate,
		); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}
