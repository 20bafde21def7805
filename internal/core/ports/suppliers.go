package ports

import (
	"context"

	"github.com/accubooks/accounting-system/internal/core/domain"
)

// SupplierRepository persists the supplier collection wholesale through the
// KV facade, like the books collections.
type SupplierRepository interface {
	Suppliers(ctx context.Context) ([]domain.Supplier, error)
	SaveSupplier(ctx context.Context, s *domain.Supplier) error
	DeleteSupplier(ctx context.Context, id string) error
}

// RecordSupplierTransactionInput is one purchase or return against a
// supplier. Total is derived by the service, not supplied by the caller.
type RecordSupplierTransactionInput struct {
	ProductID   string
	ProductName string
	Quantity    int
	UnitPrice   float64
	Type        string // "purchase" | "return"
}

// SupplierService is CRUD over the supplier collection plus transaction
// recording, which appends to the embedded history and maintains the
// running purchase total.
type SupplierService interface {
	ListSuppliers(ctx context.Context) ([]domain.Supplier, error)
	SaveSupplier(ctx context.Context, s domain.Supplier) (*domain.Supplier, error)
	DeleteSupplier(ctx context.Context, id string) error
	RecordTransaction(ctx context.Context, supplierID string, in RecordSupplierTransactionInput) (*domain.Supplier, error)
}
