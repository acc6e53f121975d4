package book

import (
	"context"
	"slices"
	"sync"
)

// Store is an in-memory Repository. It keeps books keyed by id and
// remembers insertion order for listing.
type Store struct {
	mu    sync.RWMutex
	books map[string]Book
	order []string
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{books: make(map[string]Book)}
}

func (s *Store) Insert(_ context.Context, b Book) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.books[b.ID]; exists {
		return ErrDuplicateID
	}
	s.books[b.ID] = b
	s.order = append(s.order, b.ID)
	return nil
}

// List returns a copy of every book in insertion order.
func (s *Store) List(_ context.Context) ([]Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Book, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.books[id])
	}
	return out, nil
}

func (s *Store) Get(_ context.Context, id string) (Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.books[id]
	if !ok {
		return Book{}, ErrNotFound
	}
	return b, nil
}

func (s *Store) Update(_ context.Context, id string, mutate func(*Book) error) (Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.books[id]
	if !ok {
		return Book{}, ErrNotFound
	}
	if err := mutate(&b); err != nil {
		return Book{}, err
	}
	b.ID = id
	s.books[id] = b
	return b, nil
}

func (s *Store) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.books[id]; !ok {
		return ErrNotFound
	}
	delete(s.books, id)
	if i := slices.Index(s.order, id); i >= 0 {
		s.order = slices.Delete(s.order, i, i+1)
	}
	return nil
}

// Len returns the number of stored books.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.books)
}
