package handler

type createProductRequest struct {
	Name              string  `json:"name"     validate:"required"`
	SKU               string  `json:"sku"`
	Category          string  `json:"category"`
	Quantity          int     `json:"quantity" validate:"gte=0"`
	Unit              string  `json:"unit"     validate:"required"`
	CostPrice         float64 `json:"cost_price"          validate:"gte=0"`
	SellingPrice      float64 `json:"selling_price"       validate:"gte=0"`
	ReorderPoint      int     `json:"reorder_point"       validate:"gte=0"`
	LowStockThreshold int     `json:"low_stock_threshold" validate:"gte=0"`
	Supplier          string  `json:"supplier"`
	Location          string  `json:"location"`
}

type updateProductRequest struct {
	Name              *string  `json:"name"`
	SKU               *string  `json:"sku"`
	Category          *string  `json:"category"`
	Unit              *string  `json:"unit"`
	CostPrice         *float64 `json:"cost_price"          validate:"omitempty,gte=0"`
	SellingPrice      *float64 `json:"selling_price"       validate:"omitempty,gte=0"`
	ReorderPoint      *int     `json:"reorder_point"       validate:"omitempty,gte=0"`
	LowStockThreshold *int     `json:"low_stock_threshold" validate:"omitempty,gte=0"`
	Supplier          *string  `json:"supplier"`
	Location          *string  `json:"location"`
	IsActive          *bool    `json:"is_active"`
}

type adjustStockRequest struct {
	QuantityChange int    `json:"quantity_change"`
	MovementType   string `json:"movement_type" validate:"required,oneof=in out adjustment return"`
	Reference      string `json:"reference"`
	Notes          string `json:"notes"`
}
