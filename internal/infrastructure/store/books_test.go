package store

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/accubooks/accounting-system/internal/core/domain"
)

func TestBooksStore_TransactionUpsert(t *testing.T) {
	kv := newFakeKV()
	s := NewBooksStore(kv, zerolog.Nop())
	ctx := context.Background()

	if err := s.SaveTransaction(ctx, &domain.Transaction{ID: "t1", Amount: 100}); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if err := s.SaveTransaction(ctx, &domain.Transaction{ID: "t1", Amount: 250}); err != nil {
		t.Fatalf("second save failed: %v", err)
	}
	if err := s.SaveTransaction(ctx, &domain.Transaction{ID: "t2", Amount: 50}); err != nil {
		t.Fatalf("third save failed: %v", err)
	}

	list, _ := s.Transactions(ctx)
	if len(list) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(list))
	}
	if list[0].ID != "t1" || list[0].Amount != 250 {
		t.Errorf("upsert must replace in place: %+v", list[0])
	}

	if err := s.DeleteTransaction(ctx, "t1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	list, _ = s.Transactions(ctx)
	if len(list) != 1 || list[0].ID != "t2" {
		t.Errorf("expected only t2 left, got %+v", list)
	}
}

func TestBooksStore_CompanySettingsDefault(t *testing.T) {
	s := NewBooksStore(newFakeKV(), zerolog.Nop())

	settings, err := s.CompanySettings(context.Background())
	if err != nil {
		t.Fatalf("settings failed: %v", err)
	}
	if settings.Name != "AccuBooks" || settings.Currency != "PKR" || settings.Timezone != "Asia/Karachi" {
		t.Errorf("unexpected defaults: %+v", settings)
	}
}

func TestBooksStore_CompanySettingsRoundTrip(t *testing.T) {
	s := NewBooksStore(newFakeKV(), zerolog.Nop())
	ctx := context.Background()

	want := domain.CompanySettings{Name: "Ahmad Traders", Currency: "PKR", Timezone: "Asia/Karachi", TaxID: "NTN-1"}
	if err := s.SaveCompanySettings(ctx, want); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, _ := s.CompanySettings(ctx)
	if got != want {
		t.Errorf("settings did not round-trip: %+v", got)
	}
}
