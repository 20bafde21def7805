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
// Stubs
// ---------------------------------------------------------------------------

type stubProductRepo struct {
	byID    map[string]*domain.Product
	saveErr error
	saved   []domain.Product
}

func newStubProductRepo(products ...*domain.Product) *stubProductRepo {
	r := &stubProductRepo{byID: make(map[string]*domain.Product)}
	for _, p := range products {
		r.byID[p.ID] = p
	}
	return r
}

func (r *stubProductRepo) List(_ context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id string) (*domain.Product, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *stubProductRepo) Save(_ context.Context, p *domain.Product) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	cp := *p
	r.byID[p.ID] = &cp
	r.saved = append(r.saved, cp)
	return nil
}

func (r *stubProductRepo) Delete(_ context.Context, id string) error {
	delete(r.byID, id)
	return nil
}

func (r *stubProductRepo) ReplaceAll(_ context.Context, products []domain.Product) error {
	r.byID = make(map[string]*domain.Product, len(products))
	for i := range products {
		r.byID[products[i].ID] = &products[i]
	}
	return nil
}

type stubHistoryRepo struct {
	appendErr error
	entries   []domain.StockHistory
}

func (r *stubHistoryRepo) Append(_ context.Context, entry *domain.StockHistory) error {
	if r.appendErr != nil {
		return r.appendErr
	}
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *stubHistoryRepo) List(_ context.Context, productID string, limit int) ([]domain.StockHistory, error) {
	var out []domain.StockHistory
	for _, e := range r.entries {
		if productID != "" && e.ProductID != productID {
			continue
		}
		out = append(out, e)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func seededProduct(id string, qty int) *domain.Product {
	return &domain.Product{
		ID:                id,
		Name:              "Widget",
		Quantity:          qty,
		Unit:              "pcs",
		ReorderPoint:      10,
		LowStockThreshold: 5,
		IsActive:          true,
	}
}

func newInventorySvc(repo *stubProductRepo, history *stubHistoryRepo) *InventoryService {
	return NewInventoryService(repo, history, zerolog.Nop())
}

// ---------------------------------------------------------------------------
// AdjustStock
// ---------------------------------------------------------------------------

func TestAdjustStock_OutMovement(t *testing.T) {
	repo := newStubProductRepo(seededProduct("p1", 10))
	history := &stubHistoryRepo{}
	svc := newInventorySvc(repo, history)

	product, err := svc.AdjustStock(context.Background(), ports.AdjustStockInput{
		ProductID:      "p1",
		QuantityChange: 3,
		MovementType:   domain.MovementOut,
		Reference:      "SO-1001",
	})
	if err != nil {
		t.Fatalf("expected success, got: %v", err)
	}
	if product.Quantity != 7 {
		t.Errorf("expected quantity 7, got %d", product.Quantity)
	}

	if len(history.entries) != 1 {
		t.Fatalf("expected one history entry, got %d", len(history.entries))
	}
	e := history.entries[0]
	if e.PreviousQuantity != 10 || e.NewQuantity != 7 || e.QuantityChange != -3 {
		t.Errorf("history entry does not balance: prev=%d change=%d new=%d",
			e.PreviousQuantity, e.QuantityChange, e.NewQuantity)
	}
	if e.Reference != "SO-1001" {
		t.Errorf("expected reference carried through, got %q", e.Reference)
	}
}

func TestAdjustStock_NegativeStockRejected(t *testing.T) {
	repo := newStubProductRepo(seededProduct("p1", 10))
	history := &stubHistoryRepo{}
	svc := newInventorySvc(repo, history)

	_, err := svc.AdjustStock(context.Background(), ports.AdjustStockInput{
		ProductID:      "p1",
		QuantityChange: 12,
		MovementType:   domain.MovementOut,
	})
	if !errors.Is(err, domain.ErrNegativeStock) {
		t.Fatalf("expected ErrNegativeStock, got: %v", err)
	}

	if repo.byID["p1"].Quantity != 10 {
		t.Errorf("quantity must be unchanged after rejection, got %d", repo.byID["p1"].Quantity)
	}
	if len(history.entries) != 0 {
		t.Errorf("no history entry may be written on rejection")
	}
}

func TestAdjustStock_AdjustmentRecordsEffectiveDelta(t *testing.T) {
	repo := newStubProductRepo(seededProduct("p1", 10))
	history := &stubHistoryRepo{}
	svc := newInventorySvc(repo, history)

	product, err := svc.AdjustStock(context.Background(), ports.AdjustStockInput{
		ProductID:      "p1",
		QuantityChange: 25,
		MovementType:   domain.MovementAdjustment,
		Notes:          "stocktake",
	})
	if err != nil {
		t.Fatalf("expected success, got: %v", err)
	}
	if product.Quantity != 25 {
		t.Errorf("adjustment must set the absolute target, got %d", product.Quantity)
	}

	e := history.entries[0]
	// The input was 25 (a target); the recorded change is the delta so the
	// trail still balances.
	if e.QuantityChange != 15 {
		t.Errorf("expected recorded delta 15, got %d", e.QuantityChange)
	}
	if e.PreviousQuantity+e.QuantityChange != e.NewQuantity {
		t.Errorf("history entry does not balance")
	}
}

func TestAdjustStock_InMovementWithNegativeInput(t *testing.T) {
	repo := newStubProductRepo(seededProduct("p1", 10))
	history := &stubHistoryRepo{}
	svc := newInventorySvc(repo, history)

	product, err := svc.AdjustStock(context.Background(), ports.AdjustStockInput{
		ProductID:      "p1",
		QuantityChange: -5,
		MovementType:   domain.MovementIn,
	})
	if err != nil {
		t.Fatalf("expected success, got: %v", err)
	}
	if product.Quantity != 15 {
		t.Errorf("in must add the absolute value, got %d", product.Quantity)
	}
	if history.entries[0].QuantityChange != 5 {
		t.Errorf("recorded change must be the effective delta, got %d", history.entries[0].QuantityChange)
	}
}

func TestAdjustStock_HistoryFailureNonFatal(t *testing.T) {
	repo := newStubProductRepo(seededProduct("p1", 10))
	history := &stubHistoryRepo{appendErr: errors.New("kv down")}
	svc := newInventorySvc(repo, history)

	product, err := svc.AdjustStock(context.Background(), ports.AdjustStockInput{
		ProductID:      "p1",
		QuantityChange: 3,
		MovementType:   domain.MovementOut,
	})
	if err != nil {
		t.Fatalf("a history failure must not fail the movement, got: %v", err)
	}
	if product.Quantity != 7 {
		t.Errorf("the quantity change must stand, got %d", product.Quantity)
	}
	if repo.byID["p1"].Quantity != 7 {
		t.Errorf("the persisted quantity must stand")
	}
}

func TestAdjustStock_UnknownProduct(t *testing.T) {
	svc := newInventorySvc(newStubProductRepo(), &stubHistoryRepo{})

	_, err := svc.AdjustStock(context.Background(), ports.AdjustStockInput{
		ProductID:    "ghost",
		MovementType: domain.MovementIn,
	})
	if !errors.Is(err, domain.ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound, got: %v", err)
	}
}

func TestAdjustStock_MovedCallbackFires(t *testing.T) {
	repo := newStubProductRepo(seededProduct("p1", 10))
	svc := newInventorySvc(repo, &stubHistoryRepo{})

	var moved []string
	svc.Moved = func(movementType string) { moved = append(moved, movementType) }

	if _, err := svc.AdjustStock(context.Background(), ports.AdjustStockInput{
		ProductID:      "p1",
		QuantityChange: 1,
		MovementType:   domain.MovementReturn,
	}); err != nil {
		t.Fatalf("adjust failed: %v", err)
	}
	if len(moved) != 1 || moved[0] != "return" {
		t.Errorf("expected one 'return' callback, got %v", moved)
	}
}

// ---------------------------------------------------------------------------
// Alerts and history
// ---------------------------------------------------------------------------

func TestAlerts_DerivedFromCurrentQuantities(t *testing.T) {
	empty := seededProduct("p1", 0)
	low := seededProduct("p2", 4)
	repo := newStubProductRepo(empty, low)
	svc := newInventorySvc(repo, &stubHistoryRepo{})

	alerts, err := svc.Alerts(context.Background())
	if err != nil {
		t.Fatalf("alerts failed: %v", err)
	}
	if len(alerts) != 2 {
		t.Fatalf("expected two alerts, got %d", len(alerts))
	}

	// Same data, same result.
	again, _ := svc.Alerts(context.Background())
	if len(again) != 2 {
		t.Errorf("alerts must be a pure recomputation")
	}
}

func TestHistory_FiltersByProduct(t *testing.T) {
	history := &stubHistoryRepo{entries: []domain.StockHistory{
		{ID: "h1", ProductID: "p1"},
		{ID: "h2", ProductID: "p2"},
		{ID: "h3", ProductID: "p1"},
	}}
	svc := newInventorySvc(newStubProductRepo(), history)

	entries, err := svc.History(context.Background(), "p1")
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("expected two p1 entries, got %d", len(entries))
	}
}

// ---------------------------------------------------------------------------
// Product CRUD
// ---------------------------------------------------------------------------

func TestCreateProduct_Defaults(t *testing.T) {
	repo := newStubProductRepo()
	svc := newInventorySvc(repo, &stubHistoryRepo{})

	product, err := svc.CreateProduct(context.Background(), ports.CreateProductInput{
		Name: "Widget", Unit: "pcs", Quantity: 3,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if product.ID == "" {
		t.Errorf("expected a generated id")
	}
	if !product.IsActive {
		t.Errorf("new products start active")
	}
	if product.CreatedAt.IsZero() || product.UpdatedAt.IsZero() {
		t.Errorf("timestamps must be set")
	}
}

func TestUpdateProduct_PartialAndQuantityImmutable(t *testing.T) {
	p := seededProduct("p1", 10)
	repo := newStubProductRepo(p)
	svc := newInventorySvc(repo, &stubHistoryRepo{})

	name := "Gadget"
	updated, err := svc.UpdateProduct(context.Background(), "p1", ports.UpdateProductInput{Name: &name})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Name != "Gadget" {
		t.Errorf("expected name updated")
	}
	if updated.Quantity != 10 {
		t.Errorf("an update must never touch the quantity, got %d", updated.Quantity)
	}
	if updated.Unit != "pcs" {
		t.Errorf("absent fields must be untouched")
	}
}
