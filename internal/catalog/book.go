package catalog

import (
	"errors"
	"time"
)

// Book is one catalog title with a finite number of lendable copies.
type Book struct {
	ID              int64     `json:"id"`
	ISBN            string    `json:"isbn"`
	Title           string    `json:"title"`
	Author          string    `json:"author"`
	Publisher       string    `json:"publisher"`
	Category        string    `json:"category"`
	PublishedDate   time.Time `json:"published_date"`
	TotalCopies     int       `json:"total_copies"`
	AvailableCopies int       `json:"available_copies"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Stats summarizes the catalog for the dashboard.
type Stats struct {
	TotalBooks      int `json:"total_books"`
	TotalCopies     int `json:"total_copies"`
	AvailableCopies int `json:"available_copies"`
}

var (
	ErrNotFound      = errors.New("book not found")
	ErrInvalidCopies = errors.New("total copies must be at least 1")
)
