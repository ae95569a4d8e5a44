package catalog

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"
)

// MemoryRepo is an in-memory Repository. It honors the same conditional
// update contract as the Postgres store: the availability check and the
// counter mutation happen under one lock acquisition.
type MemoryRepo struct {
	mu     sync.Mutex
	nextID int64
	books  map[int64]*Book
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{nextID: 1, books: make(map[int64]*Book)}
}

func (r *MemoryRepo) Create(_ context.Context, b *Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b.ID = r.nextID
	r.nextID++
	now := time.Now()
	b.CreatedAt = now
	b.UpdatedAt = now
	cp := *b
	r.books[b.ID] = &cp
	return nil
}

func (r *MemoryRepo) GetByID(_ context.Context, id int64) (Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.books[id]
	if !ok {
		return Book{}, ErrNotFound
	}
	return *b, nil
}

func (r *MemoryRepo) GetByISBN(_ context.Context, isbn string) (Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.books {
		if b.ISBN == isbn {
			return *b, nil
		}
	}
	return Book{}, ErrNotFound
}

func (r *MemoryRepo) Search(_ context.Context, q string) ([]Book, error) {
	q = strings.ToLower(q)
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Book
	for _, b := range r.books {
		haystack := strings.ToLower(b.ISBN + " " + b.Title + " " + b.Author + " " + b.Publisher + " " + b.Category)
		if strings.Contains(haystack, q) {
			out = append(out, *b)
		}
	}
	sortByTitle(out)
	return out, nil
}

func (r *MemoryRepo) ListAll(_ context.Context) ([]Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Book, 0, len(r.books))
	for _, b := range r.books {
		out = append(out, *b)
	}
	sortByTitle(out)
	return out, nil
}

func (r *MemoryRepo) ListAvailable(_ context.Context) ([]Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Book
	for _, b := range r.books {
		if b.AvailableCopies > 0 {
			out = append(out, *b)
		}
	}
	sortByTitle(out)
	return out, nil
}

func (r *MemoryRepo) Stats(_ context.Context) (Stats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var st Stats
	for _, b := range r.books {
		st.TotalBooks++
		st.TotalCopies += b.TotalCopies
		st.AvailableCopies += b.AvailableCopies
	}
	return st, nil
}

func (r *MemoryRepo) ReserveCopy(_ context.Context, bookID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.books[bookID]
	if !ok || b.AvailableCopies <= 0 {
		return false, nil
	}
	b.AvailableCopies--
	b.UpdatedAt = time.Now()
	return true, nil
}

func (r *MemoryRepo) ReleaseCopy(_ context.Context, bookID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.books[bookID]
	if !ok || b.AvailableCopies >= b.TotalCopies {
		return false, nil
	}
	b.AvailableCopies++
	b.UpdatedAt = time.Now()
	return true, nil
}

func (r *MemoryRepo) SetTotalCopies(_ context.Context, bookID int64, total int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.books[bookID]
	if !ok {
		return false, nil
	}
	out := b.TotalCopies - b.AvailableCopies
	if out > total {
		return false, nil
	}
	b.TotalCopies = total
	b.AvailableCopies = total - out
	b.UpdatedAt = time.Now()
	return true, nil
}

func sortByTitle(books []Book) {
	sort.Slice(books, func(i, j int) bool { return books[i].Title < books[j].Title })
}
