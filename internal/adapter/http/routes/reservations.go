package routes

import (
	"visitme_reservas/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathSpaces       = "/spaces"
	PathDepartments  = "/departments"
	PathReservations = "/reservations"
	PathPayments     = "/payments"
)

func addReservationRoutes(
	rg *gin.RouterGroup,
	catalogHandler *handlers.CatalogHandler,
	availabilityHandler *handlers.AvailabilityHandler,
	reservationHandler *handlers.ReservationHandler,
	paymentHandler *handlers.ReservationPaymentHandler,
) {
	spaces := rg.Group(PathSpaces)
	{
		spaces.GET("", catalogHandler.ListSpaces)
		spaces.GET("/:space_id", catalogHandler.GetSpace)
		spaces.GET("/:space_id/availability", availabilityHandler.GetAvailability)
	}

	rg.GET(PathDepartments, catalogHandler.ListDepartments)

	reservations := rg.Group(PathReservations)
	{
		reservations.POST("", reservationHandler.CreateReservation)
		reservations.GET("", reservationHandler.ListReservations)
		reservations.GET("/:reservation_id", reservationHandler.GetReservation)
		reservations.GET("/:reservation_id/calendar", reservationHandler.ExportCalendar)
		reservations.PATCH("/:reservation_id/cancel", reservationHandler.CancelReservation)
	}

	payments := rg.Group(PathPayments)
	{
		payments.POST("/:reservation_id", paymentHandler.CreatePayment)
		payments.GET("/:reservation_id", paymentHandler.GetPayment)
	}
}
