package store

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/accubooks/accounting-system/internal/core/domain"
	"github.com/accubooks/accounting-system/internal/core/ports"
)

// StockHistoryStore keeps the append-only movement trail. Entries are stored
// newest-first so reads come back in display order without sorting.
type StockHistoryStore struct {
	kv  ports.KV
	log zerolog.Logger
}

func NewStockHistoryStore(kv ports.KV, log zerolog.Logger) *StockHistoryStore {
	return &StockHistoryStore{kv: kv, log: log}
}

// Append prepends the entry. Existing entries are never touched.
func (s *StockHistoryStore) Append(ctx context.Context, entry *domain.StockHistory) error {
	var entries []domain.StockHistory
	if err := s.kv.Get(ctx, keyStockHistory, &entries); err != nil {
		s.log.Warn().Err(err).Msg("stock history unavailable; starting a fresh trail")
	}
	entries = append([]domain.StockHistory{*entry}, entries...)
	return s.kv.Set(ctx, keyStockHistory, entries)
}

// List returns up to limit entries, newest first, optionally filtered to one
// product.
func (s *StockHistoryStore) List(ctx context.Context, productID string, limit int) ([]domain.StockHistory, error) {
	var entries []domain.StockHistory
	if err := s.kv.Get(ctx, keyStockHistory, &entries); err != nil {
		s.log.Warn().Err(err).Msg("stock history unavailable; using default")
	}

	out := make([]domain.StockHistory, 0, limit)
	for _, e := range entries {
		if productID != "" && e.ProductID != productID {
			continue
		}
		out = append(out, e)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}
