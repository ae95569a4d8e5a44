package fine

import (
	"errors"
	"time"
)

// Status of a fine ledger entry.
type Status string

const (
	StatusUnpaid Status = "UNPAID"
	StatusPaid   Status = "PAID"
)

// Fine is one ledger entry owed by a reader for a late loan.
type Fine struct {
	ID          int64      `json:"id"`
	LoanID      int64      `json:"loan_id"`
	ReaderID    int64      `json:"reader_id"`
	Amount      int64      `json:"amount"`
	Status      Status     `json:"status"`
	CreatedDate time.Time  `json:"created_date"`
	PaidDate    *time.Time `json:"paid_date,omitempty"`
}

var (
	ErrNotFound       = errors.New("fine not found")
	ErrNegativeAmount = errors.New("fine amount must not be negative")
)
