package main

import (
	_ "visitme_reservas/docs"
	"visitme_reservas/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           VisitMe Reservas API
// @version         1.0
// @description     Common space reservations (availability, booking wizard, payments) backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey ResidentID
// @in header
// @name X-Resident-ID
// @description Resident identity injected by the gateway after token validation.

func main() {
	routes.Run()
}
