package ports

import (
	"context"

	"github.com/accubooks/accounting-system/internal/core/domain"
)

// AdjustStockInput carries one stock movement. QuantityChange is a delta for
// in/out/return and the absolute target quantity for adjustment.
type AdjustStockInput struct {
	ProductID      string
	QuantityChange int
	MovementType   domain.MovementType
	Reference      string
	Notes          string
}

// CreateProductInput carries the fields for a new product.
type CreateProductInput struct {
	Name              string
	SKU               string
	Category          string
	Quantity          int
	Unit              string
	CostPrice         float64
	SellingPrice      float64
	ReorderPoint      int
	LowStockThreshold int
	Supplier          string
	Location          string
}

// UpdateProductInput carries mutable product fields; nil pointers are left
// untouched. Quantity is deliberately absent — quantity changes go through
// AdjustStock so the movement trail stays complete.
type UpdateProductInput struct {
	Name              *string
	SKU               *string
	Category          *string
	Unit              *string
	CostPrice         *float64
	SellingPrice      *float64
	ReorderPoint      *int
	LowStockThreshold *int
	Supplier          *string
	Location          *string
	IsActive          *bool
}

// InventoryService is the stock-ledger use-case surface.
type InventoryService interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	CreateProduct(ctx context.Context, input CreateProductInput) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id string, input UpdateProductInput) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error

	// AdjustStock applies one movement and appends a history entry. The
	// returned product carries the new quantity.
	AdjustStock(ctx context.Context, input AdjustStockInput) (*domain.Product, error)
	// Alerts recomputes derived stock alerts over all active products.
	Alerts(ctx context.Context) ([]domain.StockAlert, error)
	// History returns up to 100 movement entries, newest first, optionally
	// filtered by product.
	History(ctx context.Context, productID string) ([]domain.StockHistory, error)
}
