package domain

import "time"

// Supplier is a vendor record with an embedded purchase history. The running
// totals are maintained by the service when a transaction is recorded, never
// recomputed from the history.
type Supplier struct {
	ID                 string                `json:"id"`
	Name               string                `json:"name"`
	Email              string                `json:"email"`
	Phone              string                `json:"phone"`
	Address            string                `json:"address"`
	Company            string                `json:"company,omitempty"`
	ContactPerson      string                `json:"contactPerson,omitempty"`
	TotalPurchases     float64               `json:"totalPurchases"`
	OutstandingBalance float64               `json:"outstandingBalance"`
	Status             string                `json:"status"` // "active" | "inactive"
	CreatedAt          time.Time             `json:"createdAt"`
	Notes              string                `json:"notes,omitempty"`
	Transactions       []SupplierTransaction `json:"transactions,omitempty"`
}

// SupplierTransaction is one purchase or return on a supplier's history.
// ProductID links to inventory when the goods are stocked; free-form entries
// carry the name only.
type SupplierTransaction struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"`
	ProductID   string  `json:"productId,omitempty"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	Total       float64 `json:"total"`
	Type        string  `json:"type"` // "purchase" | "return"
}
