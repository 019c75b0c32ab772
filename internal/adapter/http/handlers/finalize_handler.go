package handlers

import (
	"errors"
	"fmt"
	response "mecanica_parts/internal/adapter/http/dto/response"
	"mecanica_parts/internal/infrastructure/export"
	"mecanica_parts/internal/usecase"
	"mecanica_parts/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

// FinalizeHandler freezes draft orders into finalized snapshots and serves
// the finalized history, including file exports.
type FinalizeHandler struct {
	finalize usecase.IFinalizeUseCase
}

func NewFinalizeHandler(finalize usecase.IFinalizeUseCase) *FinalizeHandler {
	return &FinalizeHandler{finalize: finalize}
}

// FinalizeOrder flips the order to finalized and returns the snapshot
// entry. Fails when the order has no parts or still has unsynced scans.
func (h *FinalizeHandler) FinalizeOrder(c *gin.Context) {
	entry, err := h.finalize.Finalize(c.Request.Context(), c.Param("order_id"))
	if err != nil {
		appErr := mapFinalizeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromFinalizedEntry(entry))
}

func (h *FinalizeHandler) ListEntries(c *gin.Context) {
	entries, err := h.finalize.ListEntries(c.Request.Context())
	if err != nil {
		appErr := mapFinalizeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromFinalizedEntries(entries))
}

func (h *FinalizeHandler) GetEntry(c *gin.Context) {
	entry, err := h.finalize.GetEntry(c.Request.Context(), c.Param("entry_id"))
	if err != nil {
		appErr := mapFinalizeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromFinalizedEntry(entry))
}

func (h *FinalizeHandler) ListLines(c *gin.Context) {
	lines, err := h.finalize.ListLines(c.Request.Context(), c.Param("entry_id"))
	if err != nil {
		appErr := mapFinalizeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromFinalizedLines(lines))
}

// ExportEntry streams the snapshot as a downloadable file. Format defaults
// to xlsx; csv is the other supported value.
func (h *FinalizeHandler) ExportEntry(c *gin.Context) {
	format := c.DefaultQuery("format", "xlsx")
	if format != "xlsx" && format != "csv" {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_FORMAT", "Format must be xlsx or csv", http.StatusBadRequest).ToHTTPError())
		return
	}

	entryID := c.Param("entry_id")
	entry, err := h.finalize.GetEntry(c.Request.Context(), entryID)
	if err != nil {
		appErr := mapFinalizeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	lines, err := h.finalize.ListLines(c.Request.Context(), entryID)
	if err != nil {
		appErr := mapFinalizeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	filename := fmt.Sprintf("order-%s.%s", entry.OrderNumber, format)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if format == "csv" {
		c.Header("Content-Type", "text/csv")
		err = export.WriteCSV(c.Writer, entry, lines)
	} else {
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		err = export.WriteXLSX(c.Writer, entry, lines)
	}
	if err != nil {
		// Headers are already out; all we can do is drop the connection.
		c.Abort()
	}
}

func mapFinalizeError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrInvalidEntryID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEntryNotFound):
		return pkg.NewDomainErrorSimple("ENTRY_NOT_FOUND", "Finalized entry not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderFinalized):
		return pkg.NewDomainErrorSimple("ORDER_FINALIZED", "Order is already finalized", http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderEmpty):
		return pkg.NewDomainErrorSimple("ORDER_EMPTY", "Order has no scanned parts", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrQueueNotEmpty):
		return pkg.NewDomainErrorSimple("QUEUE_NOT_EMPTY", "Pending scans must be synced before finalizing", http.StatusConflict)
	case errors.Is(err, usecase.ErrStoreUnreachable):
		return pkg.NewDomainError("STORE_UNREACHABLE", "Record store unreachable", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
