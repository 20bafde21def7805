package store

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/accubooks/accounting-system/internal/core/domain"
)

func TestSupplierStore_UpsertAndDelete(t *testing.T) {
	kv := newFakeKV()
	s := NewSupplierStore(kv, zerolog.Nop())
	ctx := context.Background()

	if err := s.SaveSupplier(ctx, &domain.Supplier{ID: "s1", Name: "Steel Traders"}); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if err := s.SaveSupplier(ctx, &domain.Supplier{ID: "s1", Name: "Steel Traders Ltd"}); err != nil {
		t.Fatalf("second save failed: %v", err)
	}
	if err := s.SaveSupplier(ctx, &domain.Supplier{ID: "s2", Name: "Paint Depot"}); err != nil {
		t.Fatalf("third save failed: %v", err)
	}

	list, _ := s.Suppliers(ctx)
	if len(list) != 2 {
		t.Fatalf("expected 2 suppliers, got %d", len(list))
	}
	if list[0].ID != "s1" || list[0].Name != "Steel Traders Ltd" {
		t.Errorf("upsert must replace in place: %+v", list[0])
	}

	if err := s.DeleteSupplier(ctx, "s1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	list, _ = s.Suppliers(ctx)
	if len(list) != 1 || list[0].ID != "s2" {
		t.Errorf("expected only s2 left, got %+v", list)
	}
}

func TestSupplierStore_OwnKeySeparateFromBooks(t *testing.T) {
	kv := newFakeKV()
	s := NewSupplierStore(kv, zerolog.Nop())
	ctx := context.Background()

	if err := s.SaveSupplier(ctx, &domain.Supplier{ID: "s1", Name: "Steel Traders"}); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if _, ok := kv.data[keySuppliers]; !ok {
		t.Fatalf("expected write under %q, set keys: %v", keySuppliers, kv.setKeys)
	}
}

func TestSupplierStore_TransactionsSurviveRoundtrip(t *testing.T) {
	kv := newFakeKV()
	s := NewSupplierStore(kv, zerolog.Nop())
	ctx := context.Background()

	sup := &domain.Supplier{
		ID:             "s1",
		Name:           "Steel Traders",
		TotalPurchases: 1500,
		Transactions: []domain.SupplierTransaction{
			{ID: "tx1", ProductName: "Rebar", Quantity: 3, UnitPrice: 500, Total: 1500, Type: "purchase"},
		},
	}
	if err := s.SaveSupplier(ctx, sup); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	list, _ := s.Suppliers(ctx)
	if len(list) != 1 || len(list[0].Transactions) != 1 {
		t.Fatalf("expected embedded history to survive, got %+v", list)
	}
	if list[0].Transactions[0].Total != 1500 || list[0].TotalPurchases != 1500 {
		t.Errorf("totals lost in roundtrip: %+v", list[0])
	}
}
