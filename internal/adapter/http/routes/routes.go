package routes

import (
	"log"
	"os"
	"strconv"

	_ "growthbundles/docs" // This will be auto-generated
	"growthbundles/internal/adapter/http/handlers"
	"growthbundles/internal/adapter/persistence/repository"
	"growthbundles/internal/domain/pricing"
	"growthbundles/internal/infrastructure/database"
	"growthbundles/internal/infrastructure/documents"
	"growthbundles/internal/infrastructure/export"
	"growthbundles/internal/infrastructure/payments"
	"growthbundles/internal/usecase"
	"growthbundles/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	orderRepo := repository.NewOrderDynamoRepository(ddb)
	catalog := pricing.DefaultCatalog()

	var paymentProvider interfaces.IPaymentSessionProvider
	mpProvider, err := payments.NewMercadoPagoSessionProvider(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago session provider not configured: %v", err)
	} else {
		paymentProvider = mpProvider
	}

	var docProvider interfaces.IDocumentProvider
	if p := documents.NewHTTPDocumentProvider(); p != nil {
		docProvider = p
	}

	var exporter interfaces.IOrderExporter
	if e := export.NewSheetExporter(); e != nil {
		exporter = e
	}

	orderUseCase := usecase.NewOrderUseCase(orderRepo, paymentProvider, docProvider, exporter, catalog)

	orderHandler := handlers.NewOrderHandler(orderUseCase)
	quoteHandler := handlers.NewQuoteHandler(catalog)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addStorefrontRoutes(v1, orderHandler, quoteHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
