package store

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/accubooks/accounting-system/internal/core/domain"
	"github.com/accubooks/accounting-system/internal/core/ports"
)

// BooksStore persists the accounting collections, one facade key each.
type BooksStore struct {
	kv  ports.KV
	log zerolog.Logger
}

func NewBooksStore(kv ports.KV, log zerolog.Logger) *BooksStore {
	return &BooksStore{kv: kv, log: log}
}

func (s *BooksStore) Transactions(ctx context.Context) ([]domain.Transaction, error) {
	var list []domain.Transaction
	s.load(ctx, keyTransactions, &list)
	return list, nil
}

func (s *BooksStore) SaveTransaction(ctx context.Context, t *domain.Transaction) error {
	list, _ := s.Transactions(ctx)
	return s.kv.Set(ctx, keyTransactions, upsert(list, *t, func(x domain.Transaction) string { return x.ID }))
}

func (s *BooksStore) DeleteTransaction(ctx context.Context, id string) error {
	list, _ := s.Transactions(ctx)
	return s.kv.Set(ctx, keyTransactions, remove(list, id, func(x domain.Transaction) string { return x.ID }))
}

func (s *BooksStore) ReplaceTransactions(ctx context.Context, list []domain.Transaction) error {
	return s.kv.Set(ctx, keyTransactions, list)
}

func (s *BooksStore) Clients(ctx context.Context) ([]domain.Client, error) {
	var list []domain.Client
	s.load(ctx, keyClients, &list)
	return list, nil
}

func (s *BooksStore) SaveClient(ctx context.Context, c *domain.Client) error {
	list, _ := s.Clients(ctx)
	return s.kv.Set(ctx, keyClients, upsert(list, *c, func(x domain.Client) string { return x.ID }))
}

func (s *BooksStore) DeleteClient(ctx context.Context, id string) error {
	list, _ := s.Clients(ctx)
	return s.kv.Set(ctx, keyClients, remove(list, id, func(x domain.Client) string { return x.ID }))
}

func (s *BooksStore) ReplaceClients(ctx context.Context, list []domain.Client) error {
	return s.kv.Set(ctx, keyClients, list)
}

func (s *BooksStore) Invoices(ctx context.Context) ([]domain.Invoice, error) {
	var list []domain.Invoice
	s.load(ctx, keyInvoices, &list)
	return list, nil
}

func (s *BooksStore) SaveInvoice(ctx context.Context, i *domain.Invoice) error {
	list, _ := s.Invoices(ctx)
	return s.kv.Set(ctx, keyInvoices, upsert(list, *i, func(x domain.Invoice) string { return x.ID }))
}

func (s *BooksStore) DeleteInvoice(ctx context.Context, id string) error {
	list, _ := s.Invoices(ctx)
	return s.kv.Set(ctx, keyInvoices, remove(list, id, func(x domain.Invoice) string { return x.ID }))
}

func (s *BooksStore) ReplaceInvoices(ctx context.Context, list []domain.Invoice) error {
	return s.kv.Set(ctx, keyInvoices, list)
}

func (s *BooksStore) Accounts(ctx context.Context) ([]domain.Account, error) {
	var list []domain.Account
	s.load(ctx, keyAccounts, &list)
	return list, nil
}

func (s *BooksStore) SaveAccount(ctx context.Context, a *domain.Account) error {
	list, _ := s.Accounts(ctx)
	return s.kv.Set(ctx, keyAccounts, upsert(list, *a, func(x domain.Account) string { return x.ID }))
}

func (s *BooksStore) DeleteAccount(ctx context.Context, id string) error {
	list, _ := s.Accounts(ctx)
	return s.kv.Set(ctx, keyAccounts, remove(list, id, func(x domain.Account) string { return x.ID }))
}

func (s *BooksStore) ReplaceAccounts(ctx context.Context, list []domain.Account) error {
	return s.kv.Set(ctx, keyAccounts, list)
}

func (s *BooksStore) CompanySettings(ctx context.Context) (domain.CompanySettings, error) {
	settings := defaultCompanySettings()
	s.load(ctx, keyCompanySettings, &settings)
	return settings, nil
}

func (s *BooksStore) SaveCompanySettings(ctx context.Context, settings domain.CompanySettings) error {
	return s.kv.Set(ctx, keyCompanySettings, settings)
}

func defaultCompanySettings() domain.CompanySettings {
	return domain.CompanySettings{
		Name:     "AccuBooks",
		Currency: "PKR",
		Timezone: "Asia/Karachi",
	}
}

// load degrades facade failures to the caller default with a warning.
func (s *BooksStore) load(ctx context.Context, key string, dest any) {
	if err := s.kv.Get(ctx, key, dest); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("collection unavailable; using default")
	}
}

func upsert[T any](list []T, item T, id func(T) string) []T {
	for i := range list {
		if id(list[i]) == id(item) {
			list[i] = item
			return list
		}
	}
	return append(list, item)
}

func remove[T any](list []T, target string, id func(T) string) []T {
	kept := list[:0]
	for _, item := range list {
		if id(item) != target {
			kept = append(kept, item)
		}
	}
	return kept
}
