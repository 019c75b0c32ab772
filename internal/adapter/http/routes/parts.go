package routes

import (
	"mecanica_parts/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders    = "/orders"
	PathFinalized = "/finalized"
	PathSync      = "/sync"
)

func addPartsRoutes(rg *gin.RouterGroup, orderHandler *handlers.OrderHandler, scanHandler *handlers.ScanHandler, finalizeHandler *handlers.FinalizeHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("", orderHandler.ListOrders)
		orders.GET("/:order_id", orderHandler.GetOrder)
		orders.DELETE("/:order_id", orderHandler.DeleteOrder)

		orders.GET("/:order_id/parts", orderHandler.ListParts)
		orders.PUT("/:order_id/parts/:barcode", orderHandler.SetPartQuantity)
		orders.DELETE("/:order_id/parts/:barcode", orderHandler.DeletePart)

		orders.POST("/:order_id/session", scanHandler.StartSession)
		orders.GET("/:order_id/session", scanHandler.GetSession)
		orders.DELETE("/:order_id/session", scanHandler.EndSession)
		orders.POST("/:order_id/scans", scanHandler.Scan)
		orders.GET("/:order_id/pending", scanHandler.ListPending)
		orders.POST("/:order_id/sync", scanHandler.SyncOrder)

		orders.POST("/:order_id/finalize", finalizeHandler.FinalizeOrder)
	}

	rg.POST(PathSync, scanHandler.SyncAll)

	finalized := rg.Group(PathFinalized)
	{
		finalized.GET("", finalizeHandler.ListEntries)
		finalized.GET("/:entry_id", finalizeHandler.GetEntry)
		finalized.GET("/:entry_id/lines", finalizeHandler.ListLines)
		finalized.GET("/:entry_id/export", finalizeHandler.ExportEntry)
	}
}
