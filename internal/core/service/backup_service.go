package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog"

	"github.com/accubooks/accounting-system/internal/core/domain"
	"github.com/accubooks/accounting-system/internal/core/ports"
)

const backupVersion = "1.0.0"

const backupSecurityNote = "User passwords are not included in exports. Users will need to reset passwords after import."

// BackupService exports the dataset as one JSON document and restores named
// collections wholesale from a user-supplied snapshot.
type BackupService struct {
	books ports.BooksRepository
	users ports.UserRepository
	log   zerolog.Logger
}

func NewBackupService(books ports.BooksRepository, users ports.UserRepository, log zerolog.Logger) *BackupService {
	return &BackupService{books: books, users: users, log: log}
}

func (s *BackupService) Export(ctx context.Context) (*ports.Backup, error) {
	transactions, err := s.books.Transactions(ctx)
	if err != nil {
		return nil, err
	}
	clients, err := s.books.Clients(ctx)
	if err != nil {
		return nil, err
	}
	invoices, err := s.books.Invoices(ctx)
	if err != nil {
		return nil, err
	}
	accounts, err := s.books.Accounts(ctx)
	if err != nil {
		return nil, err
	}
	settings, err := s.books.CompanySettings(ctx)
	if err != nil {
		return nil, err
	}
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}

	exported := make([]ports.BackupUser, 0, len(users))
	for _, u := range users {
		exported = append(exported, ports.BackupUser{
			ID:        u.ID,
			Username:  u.Username,
			Role:      u.Role,
			Name:      u.Name,
			Email:     u.Email,
			CreatedAt: u.CreatedAt.Format(time.RFC3339),
			IsActive:  u.IsActive,
		})
	}

	return &ports.Backup{
		Transactions:    transactions,
		Clients:         clients,
		Invoices:        invoices,
		Accounts:        accounts,
		CompanySettings: &settings,
		Users:           exported,
		ExportedAt:      time.Now().UTC().Format(time.RFC3339),
		Version:         backupVersion,
		SecurityNote:    backupSecurityNote,
	}, nil
}

// importPayload distinguishes "collection absent" (nil) from "collection
// present but empty", so absent collections are left alone.
type importPayload struct {
	Transactions    []domain.Transaction    `json:"transactions"`
	Clients         []domain.Client         `json:"clients"`
	Invoices        []domain.Invoice        `json:"invoices"`
	Accounts        []domain.Account        `json:"accounts"`
	CompanySettings *domain.CompanySettings `json:"companySettings"`
	Users           []ports.BackupUser      `json:"users"`
}

// Import overwrites present collections wholesale. The only validation is the
// top-level JSON parse; there is no merge and no per-record checking.
func (s *BackupService) Import(ctx context.Context, raw []byte) error {
	var payload importPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return domain.ErrImportParse
	}

	if payload.Transactions != nil {
		if err := s.books.ReplaceTransactions(ctx, payload.Transactions); err != nil {
			return err
		}
	}
	if payload.Clients != nil {
		if err := s.books.ReplaceClients(ctx, payload.Clients); err != nil {
			return err
		}
	}
	if payload.Invoices != nil {
		if err := s.books.ReplaceInvoices(ctx, payload.Invoices); err != nil {
			return err
		}
	}
	if payload.Accounts != nil {
		if err := s.books.ReplaceAccounts(ctx, payload.Accounts); err != nil {
			return err
		}
	}
	if payload.CompanySettings != nil {
		if err := s.books.SaveCompanySettings(ctx, *payload.CompanySettings); err != nil {
			return err
		}
	}
	if payload.Users != nil {
		users := make([]domain.User, 0, len(payload.Users))
		for _, u := range payload.Users {
			createdAt, _ := time.Parse(time.RFC3339, u.CreatedAt)
			// Imported users arrive without credentials and need a
			// password reset before they can log in.
			users = append(users, domain.User{
				ID:        u.ID,
				Username:  u.Username,
				Role:      u.Role,
				Name:      u.Name,
				Email:     u.Email,
				CreatedAt: createdAt,
				IsActive:  u.IsActive,
			})
		}
		if err := s.users.ReplaceAll(ctx, users); err != nil {
			return err
		}
	}

	s.log.Info().Msg("backup imported")
	return nil
}
