package ports

import (
	"context"

	"github.com/accubooks/accounting-system/internal/core/domain"
)

// BooksRepository persists the accounting collections. Each collection is
// read and written wholesale through the KV facade; Save* upserts by ID and
// Delete* removes by ID with no tombstone.
type BooksRepository interface {
	Transactions(ctx context.Context) ([]domain.Transaction, error)
	SaveTransaction(ctx context.Context, t *domain.Transaction) error
	DeleteTransaction(ctx context.Context, id string) error
	ReplaceTransactions(ctx context.Context, list []domain.Transaction) error

	Clients(ctx context.Context) ([]domain.Client, error)
	SaveClient(ctx context.Context, c *domain.Client) error
	DeleteClient(ctx context.Context, id string) error
	ReplaceClients(ctx context.Context, list []domain.Client) error

	Invoices(ctx context.Context) ([]domain.Invoice, error)
	SaveInvoice(ctx context.Context, i *domain.Invoice) error
	DeleteInvoice(ctx context.Context, id string) error
	ReplaceInvoices(ctx context.Context, list []domain.Invoice) error

	Accounts(ctx context.Context) ([]domain.Account, error)
	SaveAccount(ctx context.Context, a *domain.Account) error
	DeleteAccount(ctx context.Context, id string) error
	ReplaceAccounts(ctx context.Context, list []domain.Account) error

	CompanySettings(ctx context.Context) (domain.CompanySettings, error)
	SaveCompanySettings(ctx context.Context, s domain.CompanySettings) error
}

// BooksService is the accounting use-case surface: CRUD over the books
// collections plus the derived dashboard aggregate.
type BooksService interface {
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
	SaveTransaction(ctx context.Context, t domain.Transaction) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, id string) error

	ListClients(ctx context.Context) ([]domain.Client, error)
	SaveClient(ctx context.Context, c domain.Client) (*domain.Client, error)
	DeleteClient(ctx context.Context, id string) error

	ListInvoices(ctx context.Context) ([]domain.Invoice, error)
	SaveInvoice(ctx context.Context, i domain.Invoice) (*domain.Invoice, error)
	DeleteInvoice(ctx context.Context, id string) error

	ListAccounts(ctx context.Context) ([]domain.Account, error)
	SaveAccount(ctx context.Context, a domain.Account) (*domain.Account, error)
	DeleteAccount(ctx context.Context, id string) error

	CompanySettings(ctx context.Context) (domain.CompanySettings, error)
	SaveCompanySettings(ctx context.Context, s domain.CompanySettings) error

	DashboardStats(ctx context.Context) (domain.DashboardStats, error)
}
