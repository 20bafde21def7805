package ports

import (
	"context"

	"github.com/accubooks/accounting-system/internal/core/domain"
)

// ProductRepository defines persistence for the product collection.
type ProductRepository interface {
	List(ctx context.Context) ([]domain.Product, error)
	// FindByID returns domain.ErrProductNotFound for unknown ids.
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	// Save upserts by ID.
	Save(ctx context.Context, p *domain.Product) error
	Delete(ctx context.Context, id string) error
	ReplaceAll(ctx context.Context, products []domain.Product) error
}

// StockHistoryRepository is the append-only movement trail. Entries are never
// mutated or removed.
type StockHistoryRepository interface {
	Append(ctx context.Context, entry *domain.StockHistory) error
	// List returns up to limit entries, newest first, optionally filtered to
	// a single product when productID is non-empty.
	List(ctx context.Context, productID string, limit int) ([]domain.StockHistory, error)
}
