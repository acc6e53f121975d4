package book

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Service provides book-related business logic.
type Service struct {
	repo  Repository
	now   func() time.Time
	newID func() string
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the time source used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithIDGenerator overrides how new book ids are generated.
func WithIDGenerator(newID func() string) Option {
	return func(s *Service) { s.newID = newID }
}

// NewService creates a new book service.
func NewService(repo Repository, opts ...Option) *Service {
	s := &Service{
		repo:  repo,
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add validates in and stores it as a new book, returning its id.
func (s *Service) Add(ctx context.Context, in NewBook) (string, error) {
	const op = "book.Add"

	if reason := check(in.Name, in.ReadPage, in.PageCount); reason != ReasonNone {
		return "", invalid(op, reason)
	}

	now := s.now()
	b := Book{
		ID:         s.newID(),
		Name:       in.Name,
		Year:       in.Year,
		Author:     in.Author,
		Summary:    in.Summary,
		Publisher:  in.Publisher,
		PageCount:  in.PageCount,
		ReadPage:   in.ReadPage,
		Reading:    in.Reading,
		Finished:   in.ReadPage == in.PageCount,
		InsertedAt: now,
		UpdatedAt:  now,
	}
	if err := s.repo.Insert(ctx, b); err != nil {
		return "", &Error{Op: op, Kind: KindInternal, Err: err}
	}
	return b.ID, nil
}

// List returns the books matching f in insertion order.
func (s *Service) List(ctx context.Context, f Filter) ([]Summary, error) {
	books, err := s.repo.List(ctx)
	if err != nil {
		return nil, &Error{Op: "book.List", Kind: KindInternal, Err: err}
	}
	out := make([]Summary, 0, len(books))
	for _, b := range books {
		if f.match(b) {
			out = append(out, b.summary())
		}
	}
	return out, nil
}

// Get returns the book with the given id. The boolean is false when no
// such book exists.
func (s *Service) Get(ctx context.Context, id string) (Book, bool, error) {
	b, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Book{}, false, nil
		}
		return Book{}, false, &Error{Op: "book.Get", Kind: KindInternal, Err: err}
	}
	return b, true, nil
}

// Update merges p over the stored book and returns the result. finished
// is recomputed from the merged page counts.
func (s *Service) Update(ctx context.Context, id string, p Patch) (Book, error) {
	const op = "book.Update"

	updated, err := s.repo.Update(ctx, id, func(b *Book) error {
		p.apply(b)
		if reason := check(b.Name, b.ReadPage, b.PageCount); reason != ReasonNone {
			return invalid(op, reason)
		}
		b.Finished = b.ReadPage == b.PageCount
		if now := s.now(); now.After(b.UpdatedAt) {
			b.UpdatedAt = now
		}
		return nil
	})
	if err != nil {
		return Book{}, wrap(op, err)
	}
	return updated, nil
}

// Delete removes the book with the given id.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return wrap("book.Delete", err)
	}
	return nil
}

func check(name string, readPage, pageCount int) Reason {
	if name == "" {
		return ReasonNameRequired
	}
	if readPage > pageCount {
		return ReasonReadPageExceedsPageCount
	}
	return ReasonNone
}

func wrap(op string, err error) error {
	var e *Error
	switch {
	case errors.As(err, &e):
		return err
	case errors.Is(err, ErrNotFound):
		return notFound(op)
	default:
		return &Error{Op: op, Kind: KindInternal, Err: fmt.Errorf("repository: %w", err)}
	}
}
