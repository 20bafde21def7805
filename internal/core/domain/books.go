package domain

import "time"

// Transaction is a single income or expense entry in the books.
type Transaction struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Type        string  `json:"type"` // "income" | "expense"
	Category    string  `json:"category"`
	Account     string  `json:"account"`
	Status      string  `json:"status"` // "pending" | "completed" | "cancelled"
	Reference   string  `json:"reference,omitempty"`
}

// Account is a ledger account with a running balance.
type Account struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Type     string  `json:"type"` // asset | liability | equity | revenue | expense
	Balance  float64 `json:"balance"`
	Currency string  `json:"currency"`
	IsActive bool    `json:"isActive"`
}

// Client is a customer record with an embedded purchase history.
type Client struct {
	ID                 string              `json:"id"`
	Name               string              `json:"name"`
	Email              string              `json:"email"`
	Phone              string              `json:"phone"`
	Address            string              `json:"address"`
	Company            string              `json:"company,omitempty"`
	TotalRevenue       float64             `json:"totalRevenue"`
	OutstandingBalance float64             `json:"outstandingBalance"`
	Status             string              `json:"status"` // "active" | "inactive"
	CreatedAt          time.Time           `json:"createdAt"`
	Transactions       []ClientTransaction `json:"transactions,omitempty"`
}

// ClientTransaction is one sale or return on a client's purchase history.
type ClientTransaction struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"`
	ProductID   string  `json:"productId,omitempty"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	Total       float64 `json:"total"`
	Type        string  `json:"type"` // "sale" | "return"
}

// Invoice is a billing document issued to a client.
type Invoice struct {
	ID            string        `json:"id"`
	InvoiceNumber string        `json:"invoiceNumber"`
	ClientID      string        `json:"clientId"`
	ClientName    string        `json:"clientName"`
	Items         []InvoiceItem `json:"items"`
	Subtotal      float64       `json:"subtotal"`
	Tax           float64       `json:"tax"`
	Total         float64       `json:"total"`
	Status        string        `json:"status"` // draft | sent | paid | overdue | cancelled
	IssueDate     string        `json:"issueDate"`
	DueDate       string        `json:"dueDate"`
	PaidDate      string        `json:"paidDate,omitempty"`
}

// InvoiceItem is one line on an invoice.
type InvoiceItem struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	Rate        float64 `json:"rate"`
	Amount      float64 `json:"amount"`
}

// CompanySettings holds the business profile used for documents and display.
type CompanySettings struct {
	Name            string `json:"name"`
	Address         string `json:"address"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`
	Website         string `json:"website"`
	TaxID           string `json:"taxId"`
	Currency        string `json:"currency"`
	FiscalYearStart string `json:"fiscalYearStart"`
	Logo            string `json:"logo,omitempty"`
	Timezone        string `json:"timezone"`
}

// DashboardStats is the aggregate view rendered on the dashboard.
type DashboardStats struct {
	TotalRevenue       float64 `json:"totalRevenue"`
	TotalExpenses      float64 `json:"totalExpenses"`
	NetIncome          float64 `json:"netIncome"`
	AccountsReceivable float64 `json:"accountsReceivable"`
	AccountsPayable    float64 `json:"accountsPayable"`
	CashBalance        float64 `json:"cashBalance"`
	RevenueChange      float64 `json:"revenueChange"`
	ExpenseChange      float64 `json:"expenseChange"`
}
