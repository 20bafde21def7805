package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/accubooks/accounting-system/internal/core/domain"
	"github.com/accubooks/accounting-system/internal/core/ports"
)

// SupplierService is CRUD over the supplier collection plus purchase
// recording. Suppliers are stored as whole documents with their transaction
// history embedded; the running purchase total is updated on every recorded
// transaction, a return subtracts from it.
type SupplierService struct {
	repo ports.SupplierRepository
	log  zerolog.Logger
}

func NewSupplierService(repo ports.SupplierRepository, log zerolog.Logger) *SupplierService {
	return &SupplierService{repo: repo, log: log}
}

func (s *SupplierService) ListSuppliers(ctx context.Context) ([]domain.Supplier, error) {
	return s.repo.Suppliers(ctx)
}

func (s *SupplierService) SaveSupplier(ctx context.Context, sup domain.Supplier) (*domain.Supplier, error) {
	if sup.Name == "" || sup.Email == "" {
		return nil, domain.ErrInvalidInput
	}
	if sup.ID == "" {
		sup.ID = uuid.NewString()
		sup.CreatedAt = time.Now().UTC()
		sup.Status = "active"
	}
	if err := s.repo.SaveSupplier(ctx, &sup); err != nil {
		return nil, err
	}
	return &sup, nil
}

func (s *SupplierService) DeleteSupplier(ctx context.Context, id string) error {
	return s.repo.DeleteSupplier(ctx, id)
}

// RecordTransaction appends one purchase or return to the supplier's history
// and adjusts the running total. The line total is always derived from
// quantity and unit price.
func (s *SupplierService) RecordTransaction(ctx context.Context, supplierID string, in ports.RecordSupplierTransactionInput) (*domain.Supplier, error) {
	if in.ProductName == "" || in.Quantity <= 0 || in.UnitPrice <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.Type != "purchase" && in.Type != "return" {
		return nil, domain.ErrInvalidInput
	}

	suppliers, err := s.repo.Suppliers(ctx)
	if err != nil {
		return nil, err
	}
	var sup *domain.Supplier
	for i := range suppliers {
		if suppliers[i].ID == supplierID {
			sup = &suppliers[i]
			break
		}
	}
	if sup == nil {
		return nil, domain.ErrSupplierNotFound
	}

	tx := domain.SupplierTransaction{
		ID:          uuid.NewString(),
		Date:        time.Now().UTC().Format(time.RFC3339),
		ProductID:   in.ProductID,
		ProductName: in.ProductName,
		Quantity:    in.Quantity,
		UnitPrice:   in.UnitPrice,
		Total:       float64(in.Quantity) * in.UnitPrice,
		Type:        in.Type,
	}
	sup.Transactions = append(sup.Transactions, tx)
	if in.Type == "purchase" {
		sup.TotalPurchases += tx.Total
	} else {
		sup.TotalPurchases -= tx.Total
	}

	if err := s.repo.SaveSupplier(ctx, sup); err != nil {
		return nil, err
	}
	s.log.Info().
		Str("supplier_id", sup.ID).
		Str("type", tx.Type).
		Float64("total", tx.Total).
		Msg("supplier transaction recorded")
	return sup, nil
}
