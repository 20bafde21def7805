package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/accubooks/accounting-system/internal/core/domain"
	"github.com/accubooks/accounting-system/internal/core/ports"
)

// SupplierHandler handles HTTP requests for the supplier collection.
// Suppliers are stored as whole documents like the books collections, so
// save requests bind straight to the domain type; recording a transaction
// goes through its own schema because the totals are derived server-side.
type SupplierHandler struct {
	service ports.SupplierService
}

func NewSupplierHandler(service ports.SupplierService) *SupplierHandler {
	return &SupplierHandler{service: service}
}

type supplierTransactionRequest struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName" validate:"required"`
	Quantity    int     `json:"quantity"    validate:"gte=1"`
	UnitPrice   float64 `json:"unitPrice"   validate:"required,gte=0"`
	Type        string  `json:"type"        validate:"required,oneof=purchase return"`
}

// List returns all suppliers with their embedded transaction history.
//
// @Summary      List suppliers
// @Tags         suppliers
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Supplier
// @Router       /v1/suppliers [get]
func (h *SupplierHandler) List(c echo.Context) error {
	list, err := h.service.ListSuppliers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, list)
}

// Save upserts a supplier. A missing ID creates a new entry.
//
// @Summary      Create or update a supplier
// @Tags         suppliers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      domain.Supplier  true  "Supplier document"
// @Success      200   {object}  domain.Supplier
// @Failure      400   {object}  map[string]string
// @Router       /v1/suppliers [post]
func (h *SupplierHandler) Save(c echo.Context) error {
	var sup domain.Supplier
	if err := c.Bind(&sup); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}

	saved, err := h.service.SaveSupplier(c.Request().Context(), sup)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, saved)
}

// Delete removes a supplier by ID.
//
// @Summary      Delete a supplier
// @Tags         suppliers
// @Security     BearerAuth
// @Param        id  path  string  true  "Supplier ID"
// @Success      204
// @Router       /v1/suppliers/{id} [delete]
func (h *SupplierHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteSupplier(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// RecordTransaction appends a purchase or return to a supplier's history.
//
// @Summary      Record a supplier transaction
// @Tags         suppliers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                      true  "Supplier ID"
// @Param        body  body      supplierTransactionRequest  true  "Transaction details"
// @Success      200   {object}  domain.Supplier
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/suppliers/{id}/transactions [post]
func (h *SupplierHandler) RecordTransaction(c echo.Context) error {
	var req supplierTransactionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	sup, err := h.service.RecordTransaction(c.Request().Context(), c.Param("id"), ports.RecordSupplierTransactionInput{
		ProductID:   req.ProductID,
		ProductName: req.ProductName,
		Quantity:    req.Quantity,
		UnitPrice:   req.UnitPrice,
		Type:        req.Type,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sup)
}
