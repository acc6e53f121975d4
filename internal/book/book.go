package book

import (
	"strings"
	"time"
)

// Book represents a book record on the shelf.
type Book struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Year       int       `json:"year"`
	Author     string    `json:"author"`
	Summary    string    `json:"summary"`
	Publisher  string    `json:"publisher"`
	PageCount  int       `json:"pageCount"`
	ReadPage   int       `json:"readPage"`
	Finished   bool      `json:"finished"`
	Reading    bool      `json:"reading"`
	InsertedAt time.Time `json:"insertedAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Summary is the reduced view of a book returned by list queries.
type Summary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Publisher string `json:"publisher"`
}

func (b Book) summary() Summary {
	return Summary{ID: b.ID, Name: b.Name, Publisher: b.Publisher}
}

// NewBook holds the fields accepted when adding a book.
type NewBook struct {
	Name      string
	Year      int
	Author    string
	Summary   string
	Publisher string
	PageCount int
	ReadPage  int
	Reading   bool
}

// Patch holds the fields of an update. Nil fields keep their stored value.
type Patch struct {
	Name      *string
	Year      *int
	Author    *string
	Summary   *string
	Publisher *string
	PageCount *int
	ReadPage  *int
	Reading   *bool
}

func (p Patch) apply(b *Book) {
	if p.Name != nil {
		b.Name = *p.Name
	}
	if p.Year != nil {
		b.Year = *p.Year
	}
	if p.Author != nil {
		b.Author = *p.Author
	}
	if p.Summary != nil {
		b.Summary = *p.Summary
	}
	if p.Publisher != nil {
		b.Publisher = *p.Publisher
	}
	if p.PageCount != nil {
		b.PageCount = *p.PageCount
	}
	if p.ReadPage != nil {
		b.ReadPage = *p.ReadPage
	}
	if p.Reading != nil {
		b.Reading = *p.Reading
	}
}

// Filter narrows a list query. Nil or empty fields are not applied.
type Filter struct {
	Reading  *bool
	Finished *bool
	Name     string
}

func (f Filter) match(b Book) bool {
	if f.Reading != nil && b.Reading != *f.Reading {
		return false
	}
	if f.Finished != nil && b.Finished != *f.Finished {
		return false
	}
	if f.Name != "" && !strings.Contains(strings.ToLower(b.Name), strings.ToLower(f.Name)) {
		return false
	}
	return true
}
