package store

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/accubooks/accounting-system/internal/core/domain"
	"github.com/accubooks/accounting-system/internal/core/ports"
)

// ProductStore persists the product collection under one facade key.
type ProductStore struct {
	kv  ports.KV
	log zerolog.Logger
}

func NewProductStore(kv ports.KV, log zerolog.Logger) *ProductStore {
	return &ProductStore{kv: kv, log: log}
}

func (s *ProductStore) List(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := s.kv.Get(ctx, keyProducts, &products); err != nil {
		s.log.Warn().Err(err).Msg("product collection unavailable; using default")
	}
	return products, nil
}

func (s *ProductStore) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	products, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == id {
			p := products[i]
			return &p, nil
		}
	}
	return nil, domain.ErrProductNotFound
}

func (s *ProductStore) Save(ctx context.Context, product *domain.Product) error {
	products, err := s.List(ctx)
	if err != nil {
		return err
	}
	replaced := false
	for i := range products {
		if products[i].ID == product.ID {
			products[i] = *product
			replaced = true
			break
		}
	}
	if !replaced {
		products = append(products, *product)
	}
	return s.kv.Set(ctx, keyProducts, products)
}

func (s *ProductStore) Delete(ctx context.Context, id string) error {
	products, err := s.List(ctx)
	if err != nil {
		return err
	}
	kept := products[:0]
	for _, p := range products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	return s.kv.Set(ctx, keyProducts, kept)
}

func (s *ProductStore) ReplaceAll(ctx context.Context, products []domain.Product) error {
	return s.kv.Set(ctx, keyProducts, products)
}
