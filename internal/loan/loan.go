package loan

import (
	"errors"
	"time"
)

// Status of a loan. ISSUED is initial, RETURNED is terminal. There is no
// renewal transition; a renewal is a fresh issue.
type Status string

const (
	StatusIssued   Status = "ISSUED"
	StatusReturned Status = "RETURNED"
)

// SelfServiceNote marks loans a reader issued to themselves at a kiosk.
const SelfServiceNote = "Self-Service"

// Loan records one copy of a book being out with a reader.
type Loan struct {
	ID          int64      `json:"id"`
	BookID      int64      `json:"book_id"`
	ReaderID    int64      `json:"reader_id"`
	LibrarianID *int64     `json:"librarian_id,omitempty"`
	IssueDate   time.Time  `json:"issue_date"`
	DueDate     time.Time  `json:"due_date"`
	ReturnDate  *time.Time `json:"return_date,omitempty"`
	Status      Status     `json:"status"`
	Notes       string     `json:"notes,omitempty"`
}

// IssueParams carries everything needed to open a loan.
type IssueParams struct {
	BookID      int64
	ReaderID    int64
	LibrarianID *int64
	IssueDate   time.Time
	DueDate     time.Time
	Notes       string
}

// Stats are the dashboard counters.
type Stats struct {
	Active   int `json:"active"`
	DueSoon  int `json:"due_soon"`
	Overdue  int `json:"overdue"`
	Returned int `json:"returned"`
}

var (
	ErrNotFound      = errors.New("loan not found")
	ErrInvalidPeriod = errors.New("due date must not precede issue date")
)
