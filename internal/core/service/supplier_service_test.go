package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/accubooks/accounting-system/internal/core/domain"
	"github.com/accubooks/accounting-system/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Stub
// ---------------------------------------------------------------------------

type stubSupplierRepo struct {
	suppliers []domain.Supplier
	saveErr   error
	saved     []domain.Supplier
}

func (r *stubSupplierRepo) Suppliers(_ context.Context) ([]domain.Supplier, error) {
	return r.suppliers, nil
}

func (r *stubSupplierRepo) SaveSupplier(_ context.Context, s *domain.Supplier) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saved = append(r.saved, *s)
	for i := range r.suppliers {
		if r.suppliers[i].ID == s.ID {
			r.suppliers[i] = *s
			return nil
		}
	}
	r.suppliers = append(r.suppliers, *s)
	return nil
}

func (r *stubSupplierRepo) DeleteSupplier(_ context.Context, id string) error {
	out := r.suppliers[:0]
	for _, s := range r.suppliers {
		if s.ID != id {
			out = append(out, s)
		}
	}
	r.suppliers = out
	return nil
}

func testSupplier(id string) domain.Supplier {
	return domain.Supplier{
		ID:             id,
		Name:           "Steel Traders",
		Email:          "sales@steeltraders.pk",
		Status:         "active",
		TotalPurchases: 1000,
	}
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestSaveSupplier_NewGetsDefaults(t *testing.T) {
	repo := &stubSupplierRepo{}
	svc := NewSupplierService(repo, zerolog.Nop())

	saved, err := svc.SaveSupplier(context.Background(), domain.Supplier{
		Name:  "Steel Traders",
		Email: "sales@steeltraders.pk",
	})
	if err != nil {
		t.Fatalf("SaveSupplier: %v", err)
	}
	if saved.ID == "" {
		t.Error("expected a generated ID")
	}
	if saved.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
	if saved.Status != "active" {
		t.Errorf("Status = %q, want active", saved.Status)
	}
	if saved.TotalPurchases != 0 {
		t.Errorf("TotalPurchases = %v, want 0", saved.TotalPurchases)
	}
}

func TestSaveSupplier_ExistingKeepsIdentity(t *testing.T) {
	repo := &stubSupplierRepo{suppliers: []domain.Supplier{testSupplier("sup-1")}}
	svc := NewSupplierService(repo, zerolog.Nop())

	updated := testSupplier("sup-1")
	updated.Phone = "+923001234567"
	saved, err := svc.SaveSupplier(context.Background(), updated)
	if err != nil {
		t.Fatalf("SaveSupplier: %v", err)
	}
	if saved.ID != "sup-1" {
		t.Errorf("ID = %q, want sup-1", saved.ID)
	}
	if len(repo.suppliers) != 1 {
		t.Fatalf("expected upsert, got %d suppliers", len(repo.suppliers))
	}
	if repo.suppliers[0].Phone != "+923001234567" {
		t.Errorf("Phone = %q, want updated value", repo.suppliers[0].Phone)
	}
}

func TestSaveSupplier_RequiresNameAndEmail(t *testing.T) {
	svc := NewSupplierService(&stubSupplierRepo{}, zerolog.Nop())

	cases := []domain.Supplier{
		{Email: "sales@steeltraders.pk"},
		{Name: "Steel Traders"},
	}
	for _, in := range cases {
		if _, err := svc.SaveSupplier(context.Background(), in); !errors.Is(err, domain.ErrInvalidInput) {
			t.Errorf("SaveSupplier(%+v) = %v, want ErrInvalidInput", in, err)
		}
	}
}

func TestRecordTransaction_PurchaseUpdatesTotals(t *testing.T) {
	repo := &stubSupplierRepo{suppliers: []domain.Supplier{testSupplier("sup-1")}}
	svc := NewSupplierService(repo, zerolog.Nop())

	sup, err := svc.RecordTransaction(context.Background(), "sup-1", ports.RecordSupplierTransactionInput{
		ProductID:   "prod-1",
		ProductName: "Rebar",
		Quantity:    4,
		UnitPrice:   250,
		Type:        "purchase",
	})
	if err != nil {
		t.Fatalf("RecordTransaction: %v", err)
	}
	if sup.TotalPurchases != 2000 {
		t.Errorf("TotalPurchases = %v, want 2000", sup.TotalPurchases)
	}
	if len(sup.Transactions) != 1 {
		t.Fatalf("expected 1 transaction, got %d", len(sup.Transactions))
	}
	tx := sup.Transactions[0]
	if tx.Total != 1000 {
		t.Errorf("Total = %v, want 1000", tx.Total)
	}
	if tx.ID == "" || tx.Date == "" {
		t.Error("expected generated ID and date")
	}
	if tx.ProductID != "prod-1" || tx.ProductName != "Rebar" {
		t.Errorf("product fields not carried: %+v", tx)
	}
	if len(repo.saved) != 1 {
		t.Fatalf("expected the supplier to be persisted, saves = %d", len(repo.saved))
	}
}

func TestRecordTransaction_ReturnSubtracts(t *testing.T) {
	repo := &stubSupplierRepo{suppliers: []domain.Supplier{testSupplier("sup-1")}}
	svc := NewSupplierService(repo, zerolog.Nop())

	sup, err := svc.RecordTransaction(context.Background(), "sup-1", ports.RecordSupplierTransactionInput{
		ProductName: "Rebar",
		Quantity:    2,
		UnitPrice:   100,
		Type:        "return",
	})
	if err != nil {
		t.Fatalf("RecordTransaction: %v", err)
	}
	if sup.TotalPurchases != 800 {
		t.Errorf("TotalPurchases = %v, want 800", sup.TotalPurchases)
	}
}

func TestRecordTransaction_RejectsBadInput(t *testing.T) {
	repo := &stubSupplierRepo{suppliers: []domain.Supplier{testSupplier("sup-1")}}
	svc := NewSupplierService(repo, zerolog.Nop())

	cases := []ports.RecordSupplierTransactionInput{
		{ProductName: "", Quantity: 1, UnitPrice: 10, Type: "purchase"},
		{ProductName: "Rebar", Quantity: 0, UnitPrice: 10, Type: "purchase"},
		{ProductName: "Rebar", Quantity: 1, UnitPrice: 0, Type: "purchase"},
		{ProductName: "Rebar", Quantity: 1, UnitPrice: 10, Type: "refund"},
	}
	for _, in := range cases {
		if _, err := svc.RecordTransaction(context.Background(), "sup-1", in); !errors.Is(err, domain.ErrInvalidInput) {
			t.Errorf("RecordTransaction(%+v) = %v, want ErrInvalidInput", in, err)
		}
	}
	if len(repo.saved) != 0 {
		t.Errorf("rejected input must not persist, saves = %d", len(repo.saved))
	}
}

func TestRecordTransaction_UnknownSupplier(t *testing.T) {
	svc := NewSupplierService(&stubSupplierRepo{}, zerolog.Nop())

	_, err := svc.RecordTransaction(context.Background(), "ghost", ports.RecordSupplierTransactionInput{
		ProductName: "Rebar",
		Quantity:    1,
		UnitPrice:   10,
		Type:        "purchase",
	})
	if !errors.Is(err, domain.ErrSupplierNotFound) {
		t.Errorf("err = %v, want ErrSupplierNotFound", err)
	}
}
