package domain

import (
	"fmt"
	"time"
)

// MovementType classifies a stock change and controls how the numeric input
// is interpreted.
type MovementType string

const (
	MovementIn         MovementType = "in"
	MovementOut        MovementType = "out"
	MovementAdjustment MovementType = "adjustment"
	MovementReturn     MovementType = "return"
)

// Valid reports whether m is one of the four known movement types.
func (m MovementType) Valid() bool {
	switch m {
	case MovementIn, MovementOut, MovementAdjustment, MovementReturn:
		return true
	}
	return false
}

// Apply computes the resulting quantity. "in" and "return" add the absolute
// value of change, "out" subtracts it. "adjustment" treats change as the
// absolute target quantity, not a delta — the one movement type whose input
// units differ from its recorded-delta semantics. That asymmetry is kept on
// purpose; unifying it would change behavior observed by existing callers.
func (m MovementType) Apply(previous, change int) int {
	switch m {
	case MovementIn, MovementReturn:
		return previous + abs(change)
	case MovementOut:
		return previous - abs(change)
	default:
		return change
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Product is the authoritative on-hand stock record for one item.
type Product struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	SKU               string    `json:"sku,omitempty"`
	Category          string    `json:"category,omitempty"`
	Quantity          int       `json:"quantity"`
	Unit              string    `json:"unit"`
	CostPrice         float64   `json:"cost_price"`
	SellingPrice      float64   `json:"selling_price"`
	ReorderPoint      int       `json:"reorder_point"`
	LowStockThreshold int       `json:"low_stock_threshold"`
	Supplier          string    `json:"supplier,omitempty"`
	Location          string    `json:"location,omitempty"`
	IsActive          bool      `json:"is_active"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// StockHistory is one append-only movement trail entry. Entries are never
// mutated or deleted. Invariant: NewQuantity = PreviousQuantity + QuantityChange.
type StockHistory struct {
	ID               string       `json:"id"`
	ProductID        string       `json:"product_id"`
	QuantityChange   int          `json:"quantity_change"`
	PreviousQuantity int          `json:"previous_quantity"`
	NewQuantity      int          `json:"new_quantity"`
	MovementType     MovementType `json:"movement_type"`
	Reference        string       `json:"reference,omitempty"`
	Notes            string       `json:"notes,omitempty"`
	CreatedAt        time.Time    `json:"created_at"`
}

// AlertType classifies a derived stock alert.
type AlertType string

const (
	AlertOutOfStock   AlertType = "out_of_stock"
	AlertLowStock     AlertType = "low_stock"
	AlertReorderPoint AlertType = "reorder_point"
)

// StockAlert is derived from current quantities on every fetch; it is never
// persisted.
type StockAlert struct {
	Product   Product   `json:"product"`
	AlertType AlertType `json:"alertType"`
	Message   string    `json:"message"`
}

// ComputeAlerts derives at most one alert per active product using
// first-match priority: out of stock, then low stock, then reorder point.
// Output follows input order; inactive products never alert. Pure function.
func ComputeAlerts(products []Product) []StockAlert {
	// Non-nil so an alert-free set serializes as [] rather than null.
	alerts := []StockAlert{}
	for _, p := range products {
		if !p.IsActive {
			continue
		}
		switch {
		case p.Quantity == 0:
			alerts = append(alerts, StockAlert{
				Product:   p,
				AlertType: AlertOutOfStock,
				Message:   fmt.Sprintf("%s is out of stock!", p.Name),
			})
		case p.Quantity <= p.LowStockThreshold:
			alerts = append(alerts, StockAlert{
				Product:   p,
				AlertType: AlertLowStock,
				Message:   fmt.Sprintf("%s is running low (%d %s left)", p.Name, p.Quantity, p.Unit),
			})
		case p.Quantity <= p.ReorderPoint:
			alerts = append(alerts, StockAlert{
				Product:   p,
				AlertType: AlertReorderPoint,
				Message:   fmt.Sprintf("%s has reached reorder point (%d %s)", p.Name, p.Quantity, p.Unit),
			})
		}
	}
	return alerts
}
