package routes

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	_ "github.com/digilabhq/DCQuoting/docs" // This will be auto-generated
	"github.com/digilabhq/DCQuoting/internal/adapter/http/handlers"
	repository2 "github.com/digilabhq/DCQuoting/internal/adapter/persistence/repository"
	"github.com/digilabhq/DCQuoting/internal/domain/rates"
	"github.com/digilabhq/DCQuoting/internal/infrastructure/database"
	"github.com/digilabhq/DCQuoting/internal/infrastructure/payments"
	"github.com/digilabhq/DCQuoting/internal/usecase"
	"github.com/digilabhq/DCQuoting/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

const autosaveInterval = 30 * time.Second

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

	snapshotRepo := repository2.NewSnapshotDynamoRepository(ddb)
	depositRepo := repository2.NewDepositDynamoRepository(ddb)

	quoteUseCase := usecase.NewQuoteUseCase(rates.Load(), snapshotRepo)
	if err := quoteUseCase.LoadFromStorage(context.Background()); err != nil {
		log.Printf("[quote][routes] stored quote unusable, starting fresh: %v", err)
	}
	quoteUseCase.StartAutosave(context.Background(), autosaveInterval)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	depositUseCase := usecase.NewDepositUseCase(depositRepo, quoteUseCase, paymentGateway)

	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	depositHandler := handlers.NewDepositHandler(depositUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuoteRoutes(v1, quoteHandler, depositHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
