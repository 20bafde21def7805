// Package store implements the local repositories on top of the KV
// persistence facade. Each entity collection lives wholesale under one fixed
// key; every write is a read-modify-write of the full collection. That is the
// deliberate storage model of a single-operator deployment, not an oversight.
package store

// Fixed facade keys, one per collection. The session token lives under its
// own namespace in the session store, not here.
const (
	keyUsers           = "accounting_users"
	keyAuth            = "accounting_auth"
	keyTransactions    = "accounting_transactions"
	keyClients         = "accounting_clients"
	keyInvoices        = "accounting_invoices"
	keyAccounts        = "accounting_accounts"
	keyCompanySettings = "accounting_company_settings"
	keySuppliers       = "accounting_suppliers"
	keyTheme           = "accounting_theme"
	keyProducts        = "accounting_products"
	keyStockHistory    = "accounting_stock_history"
)
