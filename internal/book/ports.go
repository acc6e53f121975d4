package book

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mock_repository_test.go -package=book

// Repository defines the contract for book storage.
type Repository interface {
	Insert(ctx context.Context, b Book) error
	List(ctx context.Context) ([]Book, error)
	Get(ctx context.Context, id string) (Book, error)
	// Update applies mutate to the stored book atomically. If mutate
	// returns an error the stored book is left unchanged.
	Update(ctx context.Context, id string, mutate func(*Book) error) (Book, error)
	Delete(ctx context.Context, id string) error
}
