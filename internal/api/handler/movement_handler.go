package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/accubooks/accounting-system/internal/core/domain"
	"github.com/accubooks/accounting-system/internal/core/ports"
)

// MovementDispatcher is the interface the handler uses to enqueue movements.
type MovementDispatcher interface {
	Enqueue(movement ports.AdjustStockInput)
	EnqueueBatch(movements []ports.AdjustStockInput)
}

type movementRequest struct {
	ProductID      string `json:"product_id"      validate:"required"`
	QuantityChange int    `json:"quantity_change"`
	MovementType   string `json:"movement_type"   validate:"required,oneof=in out adjustment return"`
	Reference      string `json:"reference"`
	Notes          string `json:"notes"`
}

type acceptedResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count,omitempty"`
}

// MovementHandler handles asynchronous stock movement ingestion. Unlike the
// synchronous adjust endpoint, movements posted here are applied in order per
// product by the dispatcher workers.
type MovementHandler struct {
	dispatcher MovementDispatcher
}

// NewMovementHandler creates a MovementHandler backed by the given dispatcher.
func NewMovementHandler(dispatcher MovementDispatcher) *MovementHandler {
	return &MovementHandler{dispatcher: dispatcher}
}

// Receive handles POST /v1/stock/movements — enqueues one movement, returns 202.
//
// @Summary      Ingest a single stock movement
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      movementRequest  true  "Stock movement"
// @Success      202   {object}  acceptedResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/stock/movements [post]
func (h *MovementHandler) Receive(c echo.Context) error {
	var req movementRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	h.dispatcher.Enqueue(toMovementInput(req))
	return c.JSON(http.StatusAccepted, acceptedResponse{Message: "movement accepted"})
}

// ReceiveBatch handles POST /v1/stock/movements/batch — enqueues a batch, returns 202.
//
// @Summary      Ingest a batch of stock movements
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      []movementRequest  true  "Array of stock movements"
// @Success      202   {object}  acceptedResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/stock/movements/batch [post]
func (h *MovementHandler) ReceiveBatch(c echo.Context) error {
	var reqs []movementRequest
	if err := c.Bind(&reqs); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if len(reqs) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "batch cannot be empty")
	}

	inputs := make([]ports.AdjustStockInput, 0, len(reqs))
	for i, req := range reqs {
		if err := c.Validate(&req); err != nil {
			return echo.NewHTTPError(http.StatusUnprocessableEntity,
				fmt.Sprintf("movement[%d]: %s", i, err.Error()))
		}
		inputs = append(inputs, toMovementInput(req))
	}

	h.dispatcher.EnqueueBatch(inputs)
	return c.JSON(http.StatusAccepted, acceptedResponse{
		Message: "movements accepted",
		Count:   len(inputs),
	})
}

// toMovementInput maps the HTTP request to the service DTO.
func toMovementInput(r movementRequest) ports.AdjustStockInput {
	return ports.AdjustStockInput{
		ProductID:      r.ProductID,
		QuantityChange: r.QuantityChange,
		MovementType:   domain.MovementType(r.MovementType),
		Reference:      r.Reference,
		Notes:          r.Notes,
	}
}
