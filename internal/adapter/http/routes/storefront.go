package routes

import (
	"growthbundles/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes = "/quotes"
	PathOrders = "/orders"
)

func addStorefrontRoutes(rg *gin.RouterGroup, orderHandler *handlers.OrderHandler, quoteHandler *handlers.QuoteHandler) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", quoteHandler.CreateQuote)
	}

	orders := rg.Group(PathOrders)
	{
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("/:bundle_id", orderHandler.GetOrder)
		orders.PATCH("/:bundle_id/customer", orderHandler.RecordCustomerInfo)
		orders.PATCH("/:bundle_id/agreement", orderHandler.RecordAgreement)
		orders.POST("/:bundle_id/payment-session", orderHandler.InitiatePayment)
		orders.POST("/:bundle_id/payment-confirmation", orderHandler.ConfirmPayment)
		orders.PATCH("/:bundle_id/abandon", orderHandler.Abandon)
		orders.PATCH("/:bundle_id/reject", orderHandler.Reject)
	}
}
