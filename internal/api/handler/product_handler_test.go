package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/accubooks/accounting-system/internal/core/domain"
	"github.com/accubooks/accounting-system/internal/core/ports"
)

type stubInventoryService struct {
	product   *domain.Product
	adjustErr error
	adjusted  []ports.AdjustStockInput
}

func (s *stubInventoryService) ListProducts(_ context.Context) ([]domain.Product, error) {
	if s.product == nil {
		return nil, nil
	}
	return []domain.Product{*s.product}, nil
}

func (s *stubInventoryService) CreateProduct(_ context.Context, in ports.CreateProductInput) (*domain.Product, error) {
	return &domain.Product{ID: "p-new", Name: in.Name, Unit: in.Unit, IsActive: true}, nil
}

func (s *stubInventoryService) UpdateProduct(_ context.Context, id string, _ ports.UpdateProductInput) (*domain.Product, error) {
	if s.product == nil || s.product.ID != id {
		return nil, domain.ErrProductNotFound
	}
	return s.product, nil
}

func (s *stubInventoryService) DeleteProduct(_ context.Context, _ string) error { return nil }

func (s *stubInventoryService) AdjustStock(_ context.Context, in ports.AdjustStockInput) (*domain.Product, error) {
	if s.adjustErr != nil {
		return nil, s.adjustErr
	}
	s.adjusted = append(s.adjusted, in)
	return s.product, nil
}

func (s *stubInventoryService) Alerts(_ context.Context) ([]domain.StockAlert, error) {
	return nil, nil
}

func (s *stubInventoryService) History(_ context.Context, _ string) ([]domain.StockHistory, error) {
	return nil, nil
}

func adjustContext(t *testing.T, body string) (echo.Context, *stubInventoryService, *ProductHandler) {
	t.Helper()
	svc := &stubInventoryService{product: &domain.Product{ID: "p1", Quantity: 7}}
	h := NewProductHandler(svc)
	c, _ := newTestContext(t, http.MethodPost, "/v1/products/p1/adjust", body)
	c.SetParamNames("id")
	c.SetParamValues("p1")
	return c, svc, h
}

func TestProductHandler_Adjust_OK(t *testing.T) {
	c, svc, h := adjustContext(t, `{"quantity_change": 3, "movement_type": "out", "reference": "SO-1"}`)

	if err := h.Adjust(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if len(svc.adjusted) != 1 {
		t.Fatalf("expected one adjust call")
	}

	in := svc.adjusted[0]
	if in.ProductID != "p1" || in.QuantityChange != 3 || in.MovementType != domain.MovementOut {
		t.Errorf("unexpected input: %+v", in)
	}
	if in.Reference != "SO-1" {
		t.Errorf("reference must be carried through")
	}
}

func TestProductHandler_Adjust_UnknownMovementType(t *testing.T) {
	c, svc, h := adjustContext(t, `{"quantity_change": 3, "movement_type": "transfer"}`)

	if err := h.Adjust(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if len(svc.adjusted) != 0 {
		t.Errorf("an invalid movement type must never reach the service")
	}
}

func TestProductHandler_Adjust_NegativeStockSurfaced(t *testing.T) {
	svc := &stubInventoryService{adjustErr: domain.ErrNegativeStock}
	h := NewProductHandler(svc)
	c, _ := newTestContext(t, http.MethodPost, "/v1/products/p1/adjust",
		`{"quantity_change": 99, "movement_type": "out"}`)
	c.SetParamNames("id")
	c.SetParamValues("p1")

	err := h.Adjust(c)
	if !errors.Is(err, domain.ErrNegativeStock) {
		t.Fatalf("expected ErrNegativeStock surfaced, got: %v", err)
	}
}

func TestProductHandler_Create_RequiresNameAndUnit(t *testing.T) {
	h := NewProductHandler(&stubInventoryService{})
	c, rec := newTestContext(t, http.MethodPost, "/v1/products", `{"name": "Widget"}`)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for a missing unit, got %d", rec.Code)
	}
}
