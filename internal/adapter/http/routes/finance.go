package routes

import (
	"paintshop_lots/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathFinance     = "/finance"
	PathObligations = "/obligations"
)

func addFinanceRoutes(rg *gin.RouterGroup, financeHandler *handlers.FinanceHandler, obligationHandler *handlers.ObligationHandler) {
	finance := rg.Group(PathFinance)
	{
		finance.POST("/records", financeHandler.CreateRecord)
		finance.GET("/records", financeHandler.ListRecords)
		finance.DELETE("/records/:source/:id", financeHandler.DeleteRecord)
		finance.GET("/report", financeHandler.Report)
		finance.GET("/report/export", financeHandler.ExportReport)
		finance.GET("/summary", financeHandler.Summary)
	}

	obligations := rg.Group(PathObligations)
	{
		obligations.POST("", obligationHandler.CreateObligation)
		obligations.GET("", obligationHandler.ListObligations)
		obligations.GET("/:id", obligationHandler.GetObligation)
		obligations.PUT("/:id", obligationHandler.UpdateObligation)
		obligations.POST("/:id/settle", obligationHandler.SettleObligation)
		obligations.DELETE("/:id", obligationHandler.DeleteObligation)
	}
}
