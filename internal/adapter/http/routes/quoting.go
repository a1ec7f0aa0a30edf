package routes

import (
	"net/http"

	"github.com/digilabhq/DCQuoting/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuote    = "/quote"
	PathDeposits = "/deposits"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func addQuoteRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler, depositHandler *handlers.DepositHandler) {
	quote := rg.Group(PathQuote)
	{
		quote.GET("", quoteHandler.GetQuote)
		quote.POST("/reset", quoteHandler.ResetQuote)
		quote.PUT("/client", quoteHandler.UpdateClient)
		quote.PUT("/settings", quoteHandler.UpdateSettings)
		quote.GET("/totals", quoteHandler.GetTotals)
		quote.GET("/document", quoteHandler.GetDocument)
		quote.GET("/snapshot", quoteHandler.DownloadSnapshot)
		quote.POST("/snapshot", quoteHandler.UploadSnapshot)

		quote.POST("/items/rooms", quoteHandler.AddRoom)
		quote.POST("/items/custom", quoteHandler.AddCustomItem)
		quote.DELETE("/items/:index", quoteHandler.RemoveItem)
		quote.PUT("/items/current", quoteHandler.SwitchItem)
		quote.PUT("/items/current/room", quoteHandler.UpdateRoom)
		quote.PUT("/items/current/room/addons/:key", quoteHandler.UpdateAddon)
		quote.PUT("/items/current/custom", quoteHandler.UpdateCustomItem)
	}

	deposits := rg.Group(PathDeposits)
	{
		deposits.POST("", depositHandler.CreateDeposit)
		deposits.GET("", depositHandler.ListDeposits)
	}
}
