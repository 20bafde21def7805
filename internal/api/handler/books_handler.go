package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/accubooks/accounting-system/internal/core/domain"
	"github.com/accubooks/accounting-system/internal/core/ports"
)

// BooksHandler handles HTTP requests for the accounting collections. The
// collections are stored as whole documents, so requests bind straight to the
// domain types and upsert by ID.
type BooksHandler struct {
	service ports.BooksService
}

func NewBooksHandler(service ports.BooksService) *BooksHandler {
	return &BooksHandler{service: service}
}

// ListTransactions returns all transactions.
//
// @Summary      List transactions
// @Tags         books
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Transaction
// @Router       /v1/transactions [get]
func (h *BooksHandler) ListTransactions(c echo.Context) error {
	list, err := h.service.ListTransactions(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, list)
}

// SaveTransaction upserts a transaction. A missing ID creates a new entry.
//
// @Summary      Create or update a transaction
// @Tags         books
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      domain.Transaction  true  "Transaction document"
// @Success      200   {object}  domain.Transaction
// @Failure      400   {object}  map[string]string
// @Router       /v1/transactions [post]
func (h *BooksHandler) SaveTransaction(c echo.Context) error {
	var t domain.Transaction
	if err := c.Bind(&t); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}

	saved, err := h.service.SaveTransaction(c.Request().Context(), t)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, saved)
}

// DeleteTransaction removes a transaction by ID.
//
// @Summary      Delete a transaction
// @Tags         books
// @Security     BearerAuth
// @Param        id  path  string  true  "Transaction ID"
// @Success      204
// @Router       /v1/transactions/{id} [delete]
func (h *BooksHandler) DeleteTransaction(c echo.Context) error {
	if err := h.service.DeleteTransaction(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ListClients returns all clients.
//
// @Summary      List clients
// @Tags         books
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Client
// @Router       /v1/clients [get]
func (h *BooksHandler) ListClients(c echo.Context) error {
	list, err := h.service.ListClients(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, list)
}

// SaveClient upserts a client record.
//
// @Summary      Create or update a client
// @Tags         books
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      domain.Client  true  "Client document"
// @Success      200   {object}  domain.Client
// @Failure      400   {object}  map[string]string
// @Router       /v1/clients [post]
func (h *BooksHandler) SaveClient(c echo.Context) error {
	var cl domain.Client
	if err := c.Bind(&cl); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}

	saved, err := h.service.SaveClient(c.Request().Context(), cl)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, saved)
}

// DeleteClient removes a client by ID.
//
// @Summary      Delete a client
// @Tags         books
// @Security     BearerAuth
// @Param        id  path  string  true  "Client ID"
// @Success      204
// @Router       /v1/clients/{id} [delete]
func (h *BooksHandler) DeleteClient(c echo.Context) error {
	if err := h.service.DeleteClient(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ListInvoices returns all invoices.
//
// @Summary      List invoices
// @Tags         books
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Invoice
// @Router       /v1/invoices [get]
func (h *BooksHandler) ListInvoices(c echo.Context) error {
	list, err := h.service.ListInvoices(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, list)
}

// SaveInvoice upserts an invoice.
//
// @Summary      Create or update an invoice
// @Tags         books
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      domain.Invoice  true  "Invoice document"
// @Success      200   {object}  domain.Invoice
// @Failure      400   {object}  map[string]string
// @Router       /v1/invoices [post]
func (h *BooksHandler) SaveInvoice(c echo.Context) error {
	var inv domain.Invoice
	if err := c.Bind(&inv); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}

	saved, err := h.service.SaveInvoice(c.Request().Context(), inv)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, saved)
}

// DeleteInvoice removes an invoice by ID.
//
// @Summary      Delete an invoice
// @Tags         books
// @Security     BearerAuth
// @Param        id  path  string  true  "Invoice ID"
// @Success      204
// @Router       /v1/invoices/{id} [delete]
func (h *BooksHandler) DeleteInvoice(c echo.Context) error {
	if err := h.service.DeleteInvoice(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ListAccounts returns all ledger accounts.
//
// @Summary      List accounts
// @Tags         books
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Account
// @Router       /v1/accounts [get]
func (h *BooksHandler) ListAccounts(c echo.Context) error {
	list, err := h.service.ListAccounts(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, list)
}

// SaveAccount upserts a ledger account.
//
// @Summary      Create or update an account
// @Tags         books
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      domain.Account  true  "Account document"
// @Success      200   {object}  domain.Account
// @Failure      400   {object}  map[string]string
// @Router       /v1/accounts [post]
func (h *BooksHandler) SaveAccount(c echo.Context) error {
	var a domain.Account
	if err := c.Bind(&a); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}

	saved, err := h.service.SaveAccount(c.Request().Context(), a)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, saved)
}

// DeleteAccount removes a ledger account by ID.
//
// @Summary      Delete an account
// @Tags         books
// @Security     BearerAuth
// @Param        id  path  string  true  "Account ID"
// @Success      204
// @Router       /v1/accounts/{id} [delete]
func (h *BooksHandler) DeleteAccount(c echo.Context) error {
	if err := h.service.DeleteAccount(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// GetSettings returns the company settings, falling back to defaults.
//
// @Summary      Get company settings
// @Tags         books
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.CompanySettings
// @Router       /v1/settings [get]
func (h *BooksHandler) GetSettings(c echo.Context) error {
	settings, err := h.service.CompanySettings(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, settings)
}

// SaveSettings replaces the company settings wholesale.
//
// @Summary      Update company settings
// @Tags         books
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      domain.CompanySettings  true  "Settings document"
// @Success      200   {object}  domain.CompanySettings
// @Failure      400   {object}  map[string]string
// @Router       /v1/settings [put]
func (h *BooksHandler) SaveSettings(c echo.Context) error {
	var s domain.CompanySettings
	if err := c.Bind(&s); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}

	if err := h.service.SaveCompanySettings(c.Request().Context(), s); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, s)
}

// Dashboard returns the aggregate dashboard figures.
//
// @Summary      Dashboard statistics
// @Tags         books
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.DashboardStats
// @Router       /v1/dashboard [get]
func (h *BooksHandler) Dashboard(c echo.Context) error {
	stats, err := h.service.DashboardStats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}
