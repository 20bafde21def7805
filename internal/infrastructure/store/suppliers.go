package store

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/accubooks/accounting-system/internal/core/domain"
	"github.com/accubooks/accounting-system/internal/core/ports"
)

// SupplierStore persists the supplier collection under its own facade key,
// separate from the books collections. It is not part of the backup payload.
type SupplierStore struct {
	kv  ports.KV
	log zerolog.Logger
}

func NewSupplierStore(kv ports.KV, log zerolog.Logger) *SupplierStore {
	return &SupplierStore{kv: kv, log: log}
}

func (s *SupplierStore) Suppliers(ctx context.Context) ([]domain.Supplier, error) {
	var list []domain.Supplier
	if err := s.kv.Get(ctx, keySuppliers, &list); err != nil {
		s.log.Warn().Err(err).Str("key", keySuppliers).Msg("collection unavailable; using default")
	}
	return list, nil
}

func (s *SupplierStore) SaveSupplier(ctx context.Context, sup *domain.Supplier) error {
	list, _ := s.Suppliers(ctx)
	return s.kv.Set(ctx, keySuppliers, upsert(list, *sup, func(x domain.Supplier) string { return x.ID }))
}

func (s *SupplierStore) DeleteSupplier(ctx context.Context, id string) error {
	list, _ := s.Suppliers(ctx)
	return s.kv.Set(ctx, keySuppliers, remove(list, id, func(x domain.Supplier) string { return x.ID }))
}
