package handlers

import (
	"context"
	"errors"
	request "mecanica_parts/internal/adapter/http/dto/request"
	response "mecanica_parts/internal/adapter/http/dto/response"
	"mecanica_parts/internal/scanner"
	"mecanica_parts/internal/usecase"
	"mecanica_parts/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

var errInvalidScanPayload = pkg.NewDomainErrorSimple("INVALID_SCAN_INPUT", "Invalid scan payload", http.StatusBadRequest)

// ScanHandler handles scan sessions, barcode commits and queue
// reconciliation. Manual entry and camera decodes share the same commit
// path in the use case.
type ScanHandler struct {
	scans   usecase.IScanUseCase
	sync    usecase.ISyncUseCase
	cameras *scanner.Manager
}

func NewScanHandler(scans usecase.IScanUseCase, sync usecase.ISyncUseCase, cameras *scanner.Manager) *ScanHandler {
	return &ScanHandler{scans: scans, sync: sync, cameras: cameras}
}

// StartSession opens a scanning session for the order. When a camera URL is
// supplied the MJPEG scan loop is started as well; without one the session
// accepts manual barcode entry only.
func (h *ScanHandler) StartSession(c *gin.Context) {
	orderID := c.Param("order_id")

	var payload request.StartSessionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidScanPayload.HTTPStatus, errInvalidScanPayload.ToHTTPError())
			return
		}
	}

	if err := h.scans.StartSession(c.Request.Context(), orderID); err != nil {
		appErr := mapScanError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if payload.CameraURL != "" {
		if h.cameras == nil {
			h.scans.EndSession(orderID)
			c.JSON(http.StatusConflict, pkg.NewDomainErrorSimple("CAMERA_DISABLED", "Camera scanning is not configured", http.StatusConflict).ToHTTPError())
			return
		}
		commit := func(ctx context.Context, barcode string) error {
			_, err := h.scans.Commit(ctx, orderID, barcode)
			return err
		}
		if err := h.cameras.Start(orderID, payload.CameraURL, commit); err != nil {
			h.scans.EndSession(orderID)
			appErr := mapScanError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}

	c.JSON(http.StatusCreated, response.SessionResponse{
		OrderID: orderID,
		State:   string(h.scans.SessionState(orderID)),
	})
}

// EndSession stops the camera loop, if any, and closes the session.
func (h *ScanHandler) EndSession(c *gin.Context) {
	orderID := c.Param("order_id")
	if h.cameras != nil {
		h.cameras.Stop(orderID)
	}
	h.scans.EndSession(orderID)
	c.Status(http.StatusNoContent)
}

func (h *ScanHandler) GetSession(c *gin.Context) {
	orderID := c.Param("order_id")
	c.JSON(http.StatusOK, response.SessionResponse{
		OrderID: orderID,
		State:   string(h.scans.SessionState(orderID)),
	})
}

// Scan commits a manually entered barcode against the order. The response
// status mirrors the commit resolution: committed, queued or rejected.
func (h *ScanHandler) Scan(c *gin.Context) {
	var payload request.ScanRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidScanPayload.HTTPStatus, errInvalidScanPayload.ToHTTPError())
		return
	}

	result, err := h.scans.Commit(c.Request.Context(), c.Param("order_id"), payload.Barcode)
	if err != nil {
		appErr := mapScanError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	status := http.StatusOK
	if result.Status == usecase.CommitQueued {
		status = http.StatusAccepted
	}
	c.JSON(status, response.FromCommitResult(result))
}

func (h *ScanHandler) ListPending(c *gin.Context) {
	pending, err := h.scans.PendingScans(c.Request.Context(), c.Param("order_id"))
	if err != nil {
		appErr := mapScanError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPendingScans(pending))
}

// SyncOrder runs one reconciliation pass over the order's pending scans.
func (h *ScanHandler) SyncOrder(c *gin.Context) {
	result, err := h.sync.Drain(c.Request.Context(), c.Param("order_id"))
	if err != nil {
		appErr := mapScanError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDrainResult(result))
}

// SyncAll runs one reconciliation pass for every order with pending scans.
func (h *ScanHandler) SyncAll(c *gin.Context) {
	results, err := h.sync.DrainAll(c.Request.Context())
	if err != nil {
		appErr := mapScanError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out := make(map[string]response.DrainResponse, len(results))
	for orderID, r := range results {
		out[orderID] = response.FromDrainResult(r)
	}
	c.JSON(http.StatusOK, out)
}

func mapScanError(err error) *pkg.AppError {
	var deviceErr *scanner.DeviceError
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrInvalidBarcode):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderFinalized):
		return pkg.NewDomainErrorSimple("ORDER_FINALIZED", "Order is already finalized", http.StatusConflict)
	case errors.Is(err, scanner.ErrSessionRunning):
		return pkg.NewDomainErrorSimple("SESSION_RUNNING", "A camera session is already running for this order", http.StatusConflict)
	case errors.As(err, &deviceErr):
		return pkg.NewDomainError("CAMERA_UNAVAILABLE", "Camera stream could not be opened", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
