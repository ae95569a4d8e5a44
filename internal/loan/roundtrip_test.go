package loan

import (
	"context"
	"testing"
	"time"

	"libcirc/internal/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLoanRepo keeps loans in a map; enough state to drive the service
// through a full issue/return cycle against a real copy counter.
type fakeLoanRepo struct {
	nextID int64
	loans  map[int64]*Loan
}

func newFakeLoanRepo() *fakeLoanRepo {
	return &fakeLoanRepo{nextID: 1, loans: make(map[int64]*Loan)}
}

func (f *fakeLoanRepo) Create(_ context.Context, l *Loan) error {
	l.ID = f.nextID
	f.nextID++
	cp := *l
	f.loans[l.ID] = &cp
	return nil
}

func (f *fakeLoanRepo) GetByID(_ context.Context, id int64) (Loan, error) {
	l, ok := f.loans[id]
	if !ok {
		return Loan{}, ErrNotFound
	}
	return *l, nil
}

func (f *fakeLoanRepo) MarkReturned(_ context.Context, id int64, returnDate time.Time) (bool, error) {
	l, ok := f.loans[id]
	if !ok || l.Status != StatusIssued {
		return false, nil
	}
	l.Status = StatusReturned
	l.ReturnDate = &returnDate
	return true, nil
}

func (f *fakeLoanRepo) ListActiveByReader(_ context.Context, readerID int64) ([]Loan, error) {
	var out []Loan
	for _, l := range f.loans {
		if l.ReaderID == readerID && l.Status == StatusIssued {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (f *fakeLoanRepo) ListHistoryByReader(_ context.Context, readerID int64) ([]Loan, error) {
	var out []Loan
	for _, l := range f.loans {
		if l.ReaderID == readerID && l.Status == StatusReturned {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (f *fakeLoanRepo) GetActiveForBook(_ context.Context, bookID int64) (Loan, error) {
	for _, l := range f.loans {
		if l.BookID == bookID && l.Status == StatusIssued {
			return *l, nil
		}
	}
	return Loan{}, ErrNotFound
}

func (f *fakeLoanRepo) CountStats(_ context.Context, _ int) (Stats, error) {
	var st Stats
	for _, l := range f.loans {
		if l.Status == StatusIssued {
			st.Active++
		} else {
			st.Returned++
		}
	}
	return st, nil
}

type recordingLedger struct {
	loanID, readerID, amount int64
	calls                    int
}

func (r *recordingLedger) RecordFine(_ context.Context, loanID, readerID, amount int64) error {
	r.loanID, r.readerID, r.amount = loanID, readerID, amount
	r.calls++
	return nil
}

// Issue then return restores availability to its pre-issue value, and a
// loan returned 12 days past due records a 2500 fine: 500 for days 1-5,
// 1000 for days 6-10, and 500 each for the two days beyond ten.
func TestCirculationRoundTrip(t *testing.T) {
	ctx := context.Background()

	books := catalog.NewMemoryRepo()
	catalogSvc := catalog.NewService(books)
	b := catalog.Book{ISBN: "ISBN-1", Title: "Dune", TotalCopies: 2}
	require.NoError(t, catalogSvc.Add(ctx, &b))

	loanRepo := newFakeLoanRepo()
	ledger := &recordingLedger{}
	svc := NewService(loanRepo, catalogSvc, ledger)

	librarian := int64(9)
	issueDate := time.Now().AddDate(0, 0, -26)
	dueDate := time.Now().AddDate(0, 0, -12)

	ok, err := svc.Issue(ctx, IssueParams{
		BookID:      b.ID,
		ReaderID:    3,
		LibrarianID: &librarian,
		IssueDate:   issueDate,
		DueDate:     dueDate,
	})
	require.NoError(t, err)
	require.True(t, ok)

	got, err := catalogSvc.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.AvailableCopies)

	active, err := svc.ActiveForBook(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusIssued, active.Status)

	ok, err = svc.Return(ctx, active.ID)
	require.NoError(t, err)
	require.True(t, ok)

	got, err = catalogSvc.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.AvailableCopies)

	assert.Equal(t, 1, ledger.calls)
	assert.Equal(t, active.ID, ledger.loanID)
	assert.Equal(t, int64(3), ledger.readerID)
	assert.Equal(t, int64(2500), ledger.amount)

	// Second return of the same loan is refused and releases nothing.
	ok, err = svc.Return(ctx, active.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	got, err = catalogSvc.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.AvailableCopies)
	assert.Equal(t, 1, ledger.calls)
}
