package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/accubooks/accounting-system/internal/api/metrics"
	"github.com/accubooks/accounting-system/internal/core/domain"
	"github.com/accubooks/accounting-system/internal/core/ports"
)

// ProductHandler handles HTTP requests for the inventory surface.
type ProductHandler struct {
	service ports.InventoryService
}

func NewProductHandler(service ports.InventoryService) *ProductHandler {
	return &ProductHandler{service: service}
}

// List returns all products.
//
// @Summary      List products
// @Tags         inventory
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Product
// @Router       /v1/products [get]
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.service.ListProducts(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// Create adds a new product.
//
// @Summary      Create a product
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProductRequest  true  "Product details"
// @Success      201   {object}  domain.Product
// @Failure      400   {object}  map[string]string
// @Router       /v1/products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	product, err := h.service.CreateProduct(c.Request().Context(), ports.CreateProductInput{
		Name:              req.Name,
		SKU:               req.SKU,
		Category:          req.Category,
		Quantity:          req.Quantity,
		Unit:              req.Unit,
		CostPrice:         req.CostPrice,
		SellingPrice:      req.SellingPrice,
		ReorderPoint:      req.ReorderPoint,
		LowStockThreshold: req.LowStockThreshold,
		Supplier:          req.Supplier,
		Location:          req.Location,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, product)
}

// Update mutates an existing product. Quantity is not accepted here;
// quantity changes go through AdjustStock.
//
// @Summary      Update a product
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Product ID"
// @Param        body  body      updateProductRequest  true  "Fields to update"
// @Success      200   {object}  domain.Product
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/products/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	product, err := h.service.UpdateProduct(c.Request().Context(), c.Param("id"), ports.UpdateProductInput{
		Name:              req.Name,
		SKU:               req.SKU,
		Category:          req.Category,
		Unit:              req.Unit,
		CostPrice:         req.CostPrice,
		SellingPrice:      req.SellingPrice,
		ReorderPoint:      req.ReorderPoint,
		LowStockThreshold: req.LowStockThreshold,
		Supplier:          req.Supplier,
		Location:          req.Location,
		IsActive:          req.IsActive,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Delete removes a product. Its movement history is kept.
//
// @Summary      Delete a product
// @Tags         inventory
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Product ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /v1/products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteProduct(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Adjust applies one stock movement to a product.
//
// @Summary      Adjust product stock
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Product ID"
// @Param        body  body      adjustStockRequest  true  "Movement details"
// @Success      200   {object}  domain.Product
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/products/{id}/adjust [post]
func (h *ProductHandler) Adjust(c echo.Context) error {
	var req adjustStockRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	product, err := h.service.AdjustStock(c.Request().Context(), ports.AdjustStockInput{
		ProductID:      c.Param("id"),
		QuantityChange: req.QuantityChange,
		MovementType:   domain.MovementType(req.MovementType),
		Reference:      req.Reference,
		Notes:          req.Notes,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// History returns the movement trail, newest first, optionally filtered by
// product via the product_id query parameter.
//
// @Summary      List stock movements
// @Tags         inventory
// @Produce      json
// @Security     BearerAuth
// @Param        product_id  query    string  false  "Filter by product ID"
// @Success      200         {array}  domain.StockHistory
// @Router       /v1/stock/history [get]
func (h *ProductHandler) History(c echo.Context) error {
	entries, err := h.service.History(c.Request().Context(), c.QueryParam("product_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entries)
}

// Alerts recomputes and returns the current stock alerts.
//
// @Summary      List stock alerts
// @Tags         inventory
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.StockAlert
// @Router       /v1/stock/alerts [get]
func (h *ProductHandler) Alerts(c echo.Context) error {
	alerts, err := h.service.Alerts(c.Request().Context())
	if err != nil {
		return err
	}
	metrics.PublishStockAlerts(alerts)
	return c.JSON(http.StatusOK, alerts)
}
