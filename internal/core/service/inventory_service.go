package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/accubooks/accounting-system/internal/core/domain"
	"github.com/accubooks/accounting-system/internal/core/ports"
)

// historyFetchLimit caps the movement trail returned to callers.
const historyFetchLimit = 100

// InventoryService owns per-product quantity state and the append-only
// movement trail.
type InventoryService struct {
	products ports.ProductRepository
	history  ports.StockHistoryRepository
	log      zerolog.Logger

	// Moved is bumped after a successful adjustment, keyed by movement type.
	// Optional; left nil in tests.
	Moved func(movementType string)
}

func NewInventoryService(products ports.ProductRepository, history ports.StockHistoryRepository, log zerolog.Logger) *InventoryService {
	return &InventoryService{products: products, history: history, log: log}
}

// AdjustStock applies one stock movement: read, compute, write quantity, then
// append a history entry. The quantity write and the history append are two
// independent persistence calls with no transaction between them — a history
// failure is logged and the quantity mutation stands. Concurrent adjustments
// to the same product are last-writer-wins; the deployment is single-operator
// and the direct path deliberately adds no locking.
func (s *InventoryService) AdjustStock(ctx context.Context, in ports.AdjustStockInput) (*domain.Product, error) {
	product, err := s.products.FindByID(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}

	previous := product.Quantity
	newQuantity := in.MovementType.Apply(previous, in.QuantityChange)
	if newQuantity < 0 {
		return nil, domain.ErrNegativeStock
	}

	now := time.Now().UTC()
	product.Quantity = newQuantity
	product.UpdatedAt = now
	if err := s.products.Save(ctx, product); err != nil {
		return nil, err
	}

	// The recorded change is the effective signed delta, so that
	// new_quantity = previous_quantity + quantity_change holds for every
	// movement type, including the absolute-target "adjustment".
	entry := &domain.StockHistory{
		ID:               uuid.NewString(),
		ProductID:        product.ID,
		QuantityChange:   newQuantity - previous,
		PreviousQuantity: previous,
		NewQuantity:      newQuantity,
		MovementType:     in.MovementType,
		Reference:        in.Reference,
		Notes:            in.Notes,
		CreatedAt:        now,
	}
	if err := s.history.Append(ctx, entry); err != nil {
		s.log.Warn().Err(err).
			Str("product_id", product.ID).
			Str("movement_type", string(in.MovementType)).
			Msg("failed to record stock history; quantity change stands")
	}

	s.log.Info().
		Str("product_id", product.ID).
		Str("movement_type", string(in.MovementType)).
		Int("previous", previous).
		Int("new", newQuantity).
		Msg("stock adjusted")
	if s.Moved != nil {
		s.Moved(string(in.MovementType))
	}

	return product, nil
}

// Alerts recomputes derived alerts from current quantities. Nothing is
// persisted; two calls over the same data yield the same result.
func (s *InventoryService) Alerts(ctx context.Context) ([]domain.StockAlert, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}
	return domain.ComputeAlerts(products), nil
}

// History returns up to 100 movement entries, newest first.
func (s *InventoryService) History(ctx context.Context, productID string) ([]domain.StockHistory, error) {
	return s.history.List(ctx, productID, historyFetchLimit)
}

func (s *InventoryService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.products.List(ctx)
}

func (s *InventoryService) CreateProduct(ctx context.Context, in ports.CreateProductInput) (*domain.Product, error) {
	now := time.Now().UTC()
	product := &domain.Product{
		ID:                uuid.NewString(),
		Name:              in.Name,
		SKU:               in.SKU,
		Category:          in.Category,
		Quantity:          in.Quantity,
		Unit:              in.Unit,
		CostPrice:         in.CostPrice,
		SellingPrice:      in.SellingPrice,
		ReorderPoint:      in.ReorderPoint,
		LowStockThreshold: in.LowStockThreshold,
		Supplier:          in.Supplier,
		Location:          in.Location,
		IsActive:          true,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := s.products.Save(ctx, product); err != nil {
		return nil, err
	}
	s.log.Info().Str("product_id", product.ID).Str("name", product.Name).Msg("product created")
	return product, nil
}

func (s *InventoryService) UpdateProduct(ctx context.Context, id string, in ports.UpdateProductInput) (*domain.Product, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.SKU != nil {
		product.SKU = *in.SKU
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.Unit != nil {
		product.Unit = *in.Unit
	}
	if in.CostPrice != nil {
		product.CostPrice = *in.CostPrice
	}
	if in.SellingPrice != nil {
		product.SellingPrice = *in.SellingPrice
	}
	if in.ReorderPoint != nil {
		product.ReorderPoint = *in.ReorderPoint
	}
	if in.LowStockThreshold != nil {
		product.LowStockThreshold = *in.LowStockThreshold
	}
	if in.Supplier != nil {
		product.Supplier = *in.Supplier
	}
	if in.Location != nil {
		product.Location = *in.Location
	}
	if in.IsActive != nil {
		product.IsActive = *in.IsActive
	}
	product.UpdatedAt = time.Now().UTC()

	if err := s.products.Save(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *InventoryService) DeleteProduct(ctx context.Context, id string) error {
	return s.products.Delete(ctx, id)
}
