package ports

import (
	"context"

	"github.com/accubooks/accounting-system/internal/core/domain"
)

// BackupUser is the exported user view. The password and salt fields do not
// exist here at all, so a snapshot can never leak a credential.
type BackupUser struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	CreatedAt string `json:"createdAt"`
	IsActive  bool   `json:"isActive"`
}

// Backup is the whole-dataset JSON snapshot.
type Backup struct {
	Transactions    []domain.Transaction    `json:"transactions"`
	Clients         []domain.Client         `json:"clients"`
	Invoices        []domain.Invoice        `json:"invoices"`
	Accounts        []domain.Account        `json:"accounts"`
	CompanySettings *domain.CompanySettings `json:"companySettings,omitempty"`
	Users           []BackupUser            `json:"users"`
	ExportedAt      string                  `json:"exportedAt"`
	Version         string                  `json:"version"`
	SecurityNote    string                  `json:"securityNote,omitempty"`
}

// BackupService exports the dataset and restores it wholesale. Import
// performs a top-level parse check only: present collections overwrite the
// stored ones, absent collections are left alone, nothing is merged.
type BackupService interface {
	Export(ctx context.Context) (*Backup, error)
	Import(ctx context.Context, raw []byte) error
}
