package request

import (
	"errors"
	"time"
)

// Type distinguishes a first borrow from a re-borrow of the same title.
type Type string

const (
	TypeIssue   Type = "ISSUE"
	TypeReIssue Type = "RE_ISSUE"
)

// Status of a borrow request. PENDING is the only initial state. APPROVED
// and REJECTED are terminal; ON_HOLD parks a request for later follow-up
// and stays resolvable.
type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
	StatusOnHold   Status = "ON_HOLD"
)

// CanResolve reports whether a librarian may still act on a request in
// this state. Re-resolving an APPROVED or REJECTED request is an error,
// not an overwrite.
func (s Status) CanResolve() bool {
	return s == StatusPending || s == StatusOnHold
}

// Valid reports whether t is a known request type.
func (t Type) Valid() bool {
	return t == TypeIssue || t == TypeReIssue
}

// DefaultRejectReason is recorded when a librarian rejects without a note.
const DefaultRejectReason = "No reason provided"

// Request is a reader's ask to borrow a book, kept forever as audit trail.
type Request struct {
	ID          int64      `json:"id"`
	BookID      int64      `json:"book_id"`
	ReaderID    int64      `json:"reader_id"`
	Type        Type       `json:"request_type"`
	Status      Status     `json:"status"`
	HoldUntil   *time.Time `json:"hold_until,omitempty"`
	LibrarianID *int64     `json:"librarian_id,omitempty"`
	Notes       string     `json:"notes,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	ResolvedAt  *time.Time `json:"resolved_at,omitempty"`
}

// Resolution is the full set of fields a resolving librarian writes in one
// step. Partial resolutions do not exist.
type Resolution struct {
	Status      Status
	LibrarianID int64
	ResolvedAt  time.Time
	Notes       string
	HoldUntil   *time.Time
}

var (
	ErrNotFound    = errors.New("request not found")
	ErrInvalidType = errors.New("unknown request type")
)
