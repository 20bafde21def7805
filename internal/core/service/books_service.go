package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/accubooks/accounting-system/internal/core/domain"
	"github.com/accubooks/accounting-system/internal/core/ports"
)

// BooksService is CRUD over the accounting collections plus the dashboard
// aggregate. Every write is a wholesale read-modify-write of one collection
// through the repository.
type BooksService struct {
	repo ports.BooksRepository
	log  zerolog.Logger
}

func NewBooksService(repo ports.BooksRepository, log zerolog.Logger) *BooksService {
	return &BooksService{repo: repo, log: log}
}

func (s *BooksService) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	return s.repo.Transactions(ctx)
}

func (s *BooksService) SaveTransaction(ctx context.Context, t domain.Transaction) (*domain.Transaction, error) {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if err := s.repo.SaveTransaction(ctx, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *BooksService) DeleteTransaction(ctx context.Context, id string) error {
	return s.repo.DeleteTransaction(ctx, id)
}

func (s *BooksService) ListClients(ctx context.Context) ([]domain.Client, error) {
	return s.repo.Clients(ctx)
}

func (s *BooksService) SaveClient(ctx context.Context, c domain.Client) (*domain.Client, error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
		c.CreatedAt = time.Now().UTC()
	}
	if err := s.repo.SaveClient(ctx, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *BooksService) DeleteClient(ctx context.Context, id string) error {
	return s.repo.DeleteClient(ctx, id)
}

func (s *BooksService) ListInvoices(ctx context.Context) ([]domain.Invoice, error) {
	return s.repo.Invoices(ctx)
}

func (s *BooksService) SaveInvoice(ctx context.Context, i domain.Invoice) (*domain.Invoice, error) {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	if err := s.repo.SaveInvoice(ctx, &i); err != nil {
		return nil, err
	}
	return &i, nil
}

func (s *BooksService) DeleteInvoice(ctx context.Context, id string) error {
	return s.repo.DeleteInvoice(ctx, id)
}

func (s *BooksService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	return s.repo.Accounts(ctx)
}

func (s *BooksService) SaveAccount(ctx context.Context, a domain.Account) (*domain.Account, error) {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if err := s.repo.SaveAccount(ctx, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *BooksService) DeleteAccount(ctx context.Context, id string) error {
	return s.repo.DeleteAccount(ctx, id)
}

func (s *BooksService) CompanySettings(ctx context.Context) (domain.CompanySettings, error) {
	return s.repo.CompanySettings(ctx)
}

func (s *BooksService) SaveCompanySettings(ctx context.Context, settings domain.CompanySettings) error {
	return s.repo.SaveCompanySettings(ctx, settings)
}

// DashboardStats aggregates the books. Payables, the cash fallback and the
// period-change percentages are placeholder figures carried over from the
// dashboard design; they are not derived from the collections yet.
func (s *BooksService) DashboardStats(ctx context.Context) (domain.DashboardStats, error) {
	transactions, err := s.repo.Transactions(ctx)
	if err != nil {
		return domain.DashboardStats{}, err
	}
	invoices, err := s.repo.Invoices(ctx)
	if err != nil {
		return domain.DashboardStats{}, err
	}
	accounts, err := s.repo.Accounts(ctx)
	if err != nil {
		return domain.DashboardStats{}, err
	}

	var revenue, expenses float64
	for _, t := range transactions {
		if t.Status != "completed" {
			continue
		}
		switch t.Type {
		case "income":
			revenue += t.Amount
		case "expense":
			expenses += t.Amount
		}
	}

	var receivable float64
	for _, i := range invoices {
		if i.Status == "sent" || i.Status == "overdue" {
			receivable += i.Total
		}
	}

	var cash float64
	for _, a := range accounts {
		if a.Type == "asset" && strings.Contains(strings.ToLower(a.Name), "cash") {
			cash += a.Balance
		}
	}
	if cash == 0 {
		cash = 125000
	}

	return domain.DashboardStats{
		TotalRevenue:       revenue,
		TotalExpenses:      expenses,
		NetIncome:          revenue - expenses,
		AccountsReceivable: receivable,
		AccountsPayable:    15000,
		CashBalance:        cash,
		RevenueChange:      12.5,
		ExpenseChange:      -3.2,
	}, nil
}
