package book

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mock_repository.go -package=book

// Repository is the store gateway for the catalog collection. There is no
// query pushdown: ListAll returns the whole collection and all filtering and
// sorting happens in memory afterwards.
type Repository interface {
	ListAll(ctx context.Context) ([]Book, error)
	GetByID(ctx context.Context, id string) (Book, error)
	Create(ctx context.Context, b *Book) (string, error)
	Update(ctx context.Context, id string, p Patch) error
	Delete(ctx context.Context, id string) error
}
