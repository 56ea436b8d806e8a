package routes

import (
	"paintshop_lots/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathLots        = "/lots"
	PathStations    = "/stations"
	PathSettlements = "/settlements"
	PathHistory     = "/history"
	PathFeed        = "/feed"
)

func addLotRoutes(rg *gin.RouterGroup, lotHandler *handlers.LotHandler, schedulingHandler *handlers.SchedulingHandler) {
	lots := rg.Group(PathLots)
	{
		lots.POST("", lotHandler.CreateLot)
		lots.GET("/board", lotHandler.Board)
		lots.GET("/:id", lotHandler.GetLot)
		lots.PUT("/:id", lotHandler.UpdateLot)
		lots.DELETE("/:id", lotHandler.DeleteLot)

		lots.POST("/:id/status/:field", lotHandler.ToggleStatus)
		lots.PUT("/:id/schedule", lotHandler.Schedule)
		lots.DELETE("/:id/schedule", lotHandler.Unschedule)
		lots.PUT("/:id/painted", lotHandler.SetPainted)
		lots.POST("/:id/scan", lotHandler.ScanPainted)
		lots.PUT("/:id/promised", lotHandler.SetPromised)
		lots.GET("/:id/deliverable", lotHandler.CanDeliver)
		lots.POST("/:id/deliver", lotHandler.Deliver)
	}

	stations := rg.Group(PathStations)
	{
		stations.GET("", schedulingHandler.ListStations)
		stations.GET("/:station", schedulingHandler.GetStation)
		stations.PUT("/:station/order", schedulingHandler.Reorder)
	}
}

func addSettlementRoutes(rg *gin.RouterGroup, h *handlers.SettlementHandler) {
	settlements := rg.Group(PathSettlements)
	{
		settlements.GET("/:lot_id", h.GetPrompt)
		settlements.POST("/:lot_id/confirm", h.Confirm)
		settlements.POST("/:lot_id/cancel", h.Cancel)
		settlements.POST("/:lot_id/dismiss", h.Dismiss)
	}
}

func addHistoryRoutes(rg *gin.RouterGroup, h *handlers.HistoryHandler) {
	history := rg.Group(PathHistory)
	{
		history.GET("", h.ListHistory)
		history.GET("/by-month", h.HistoryByMonth)
		history.GET("/partial", h.ListPartialDeliveries)
		history.POST("/partial/:id/resolve", h.ResolvePartialDelivery)
		history.DELETE("/:id", h.DeleteHistory)
	}
}
