package handlers

import (
	"errors"
	request "mecanica_parts/internal/adapter/http/dto/request"
	response "mecanica_parts/internal/adapter/http/dto/response"
	"mecanica_parts/internal/usecase"
	"mecanica_parts/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

var errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid order payload", http.StatusBadRequest)

// OrderHandler handles HTTP requests for repair orders and their scanned
// parts list.
type OrderHandler struct {
	orders usecase.IOrderUseCase
	scans  usecase.IScanUseCase
}

func NewOrderHandler(orders usecase.IOrderUseCase, scans usecase.IScanUseCase) *OrderHandler {
	return &OrderHandler{orders: orders, scans: scans}
}

// CreateOrder opens a new draft order for an order number.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var payload request.CreateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.orders.CreateOrder(c.Request.Context(), payload.OrderNumber)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromOrder(order))
}

// ListOrders resolves an exact order number when "number" is given,
// otherwise runs a substring search over "query".
func (h *OrderHandler) ListOrders(c *gin.Context) {
	if number := c.Query("number"); number != "" {
		order, err := h.orders.GetByNumber(c.Request.Context(), number)
		if err != nil {
			appErr := mapOrderError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.JSON(http.StatusOK, []response.OrderResponse{response.FromOrder(order)})
		return
	}

	orders, err := h.orders.Search(c.Request.Context(), c.Query("query"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrders(orders))
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.orders.GetByID(c.Request.Context(), c.Param("order_id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	if err := h.orders.DeleteOrder(c.Request.Context(), c.Param("order_id")); err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *OrderHandler) ListParts(c *gin.Context) {
	parts, err := h.orders.ListParts(c.Request.Context(), c.Param("order_id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromParts(parts))
}

// SetPartQuantity overrides a scanned part's quantity, e.g. after a
// miscount on the bench.
func (h *OrderHandler) SetPartQuantity(c *gin.Context) {
	var payload request.PartQuantityRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	part, err := h.scans.SetPartQuantity(c.Request.Context(), c.Param("order_id"), c.Param("barcode"), payload.Quantity)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPart(part))
}

func (h *OrderHandler) DeletePart(c *gin.Context) {
	if err := h.scans.DeletePart(c.Request.Context(), c.Param("order_id"), c.Param("barcode")); err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderNumber), errors.Is(err, usecase.ErrInvalidOrderID),
		errors.Is(err, usecase.ErrInvalidBarcode), errors.Is(err, usecase.ErrInvalidQuantity):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderAlreadyExists):
		return pkg.NewDomainErrorSimple("ORDER_ALREADY_EXISTS", "Order number already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPartNotFound):
		return pkg.NewDomainErrorSimple("PART_NOT_FOUND", "Part not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderFinalized):
		return pkg.NewDomainErrorSimple("ORDER_FINALIZED", "Order is already finalized", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
