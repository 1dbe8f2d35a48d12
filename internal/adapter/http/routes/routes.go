package routes

import (
	"log"
	"os"
	"strconv"

	_ "visitme_reservas/docs" // This will be auto-generated
	"visitme_reservas/internal/adapter/http/handlers"
	repository2 "visitme_reservas/internal/adapter/persistence/repository"
	"visitme_reservas/internal/infrastructure/database"
	"visitme_reservas/internal/infrastructure/payments"
	"visitme_reservas/internal/infrastructure/session"
	"visitme_reservas/internal/usecase"
	"visitme_reservas/internal/usecase/interfaces"

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

	reservationRepo := repository2.NewReservationDynamoRepository(ddb)
	spaceRepo := repository2.NewCommonSpaceDynamoRepository(ddb)
	departmentRepo := repository2.NewDepartmentDynamoRepository(ddb)
	communityRepo := repository2.NewCommunityDynamoRepository(ddb)
	paymentRepo := repository2.NewReservationPaymentDynamoRepository(ddb)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	availabilityUseCase := usecase.NewAvailabilityUseCase(reservationRepo, communityRepo)
	eligibilityUseCase := usecase.NewEligibilityUseCase(reservationRepo, communityRepo)
	bookingUseCase := usecase.NewBookingUseCase(reservationRepo, communityRepo)
	cancellationUseCase := usecase.NewCancellationUseCase(reservationRepo, communityRepo)
	reservationUseCase := usecase.NewReservationUseCase(reservationRepo, spaceRepo, communityRepo)
	catalogUseCase := usecase.NewCatalogUseCase(spaceRepo, departmentRepo)
	paymentUseCase := usecase.NewReservationPaymentUseCase(paymentRepo, reservationRepo, paymentGateway)

	wizardController := usecase.NewWizardController(catalogUseCase, eligibilityUseCase, availabilityUseCase, bookingUseCase)

	catalogHandler := handlers.NewCatalogHandler(catalogUseCase)
	availabilityHandler := handlers.NewAvailabilityHandler(availabilityUseCase)
	reservationHandler := handlers.NewReservationHandler(reservationUseCase, bookingUseCase, cancellationUseCase, eligibilityUseCase, catalogUseCase)
	paymentHandler := handlers.NewReservationPaymentHandler(paymentUseCase)
	wizardHandler := handlers.NewWizardHandler(wizardController, session.NewStore())

	// Rutas públicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addReservationRoutes(v1, catalogHandler, availabilityHandler, reservationHandler, paymentHandler)
	addWizardRoutes(v1, wizardHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
