package handlers

import (
	"errors"
	"net/http"

	"visitme_reservas/internal/adapter/calendar"
	request "visitme_reservas/internal/adapter/http/dto/request"
	response "visitme_reservas/internal/adapter/http/dto/response"
	"visitme_reservas/internal/usecase"
	"visitme_reservas/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidReservationPayload = pkg.NewDomainErrorSimple("INVALID_RESERVATION_INPUT", "Invalid reservation payload", http.StatusBadRequest)

// ReservationHandler is the direct reservation surface: create, list, detail,
// cancel and calendar export. Creation runs the same pipeline the wizard
// submit runs: cooldown gate, space lookup, cost quote, then the booking
// transaction.

type ReservationHandler struct {
	reservations usecase.IReservationUseCase
	booking      usecase.IBookingUseCase
	cancellation usecase.ICancellationUseCase
	eligibility  usecase.IEligibilityUseCase
	catalog      usecase.ICatalogUseCase
}

func NewReservationHandler(
	reservations usecase.IReservationUseCase,
	booking usecase.IBookingUseCase,
	cancellation usecase.ICancellationUseCase,
	eligibility usecase.IEligibilityUseCase,
	catalog usecase.ICatalogUseCase,
) *ReservationHandler {
	return &ReservationHandler{
		reservations: reservations,
		booking:      booking,
		cancellation: cancellation,
		eligibility:  eligibility,
		catalog:      catalog,
	}
}

// CreateReservation books a block. An active cooldown is not an error: the
// handler answers 200 with the cooldown payload and books nothing.
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	resident := residentID(c)
	if resident == "" {
		abortWith(c, errMissingResident)
		return
	}

	var payload request.CreateReservationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidReservationPayload)
		return
	}

	date, err := payload.ResolveDate()
	if err != nil {
		abortWith(c, errInvalidReservationPayload)
		return
	}
	block, err := payload.ResolveBlock()
	if err != nil {
		abortWith(c, errInvalidReservationPayload)
		return
	}

	ctx := c.Request.Context()

	cooldown, err := h.eligibility.CheckCooldown(ctx, payload.CommunityID, resident)
	if err != nil {
		abortWith(c, mapReservationError(err))
		return
	}
	if cooldown.Blocked {
		c.JSON(http.StatusOK, response.CooldownResponse{
			CooldownActive: true,
			RemainingDays:  cooldown.RemainingDays,
		})
		return
	}

	space, err := h.catalog.GetSpace(ctx, payload.CommunityID, payload.SpaceID)
	if err != nil {
		abortWith(c, mapReservationError(err))
		return
	}

	quote, err := h.eligibility.QuoteCost(ctx, payload.CommunityID, resident, space)
	if err != nil {
		abortWith(c, mapReservationError(err))
		return
	}

	reservation, err := h.booking.Book(ctx, usecase.BookingCommand{
		CommunityID:   payload.CommunityID,
		SpaceID:       space.ID,
		DepartmentID:  payload.DepartmentID,
		ResidentID:    resident,
		Date:          date,
		Block:         block,
		DurationHours: space.BlockDurationHours,
		CostApplied:   quote.CostApplied,
		IsGraceUse:    quote.IsGraceUse,
	})
	if err != nil {
		abortWith(c, mapReservationError(err))
		return
	}

	c.JSON(http.StatusCreated, response.FromReservation(reservation))
}

func (h *ReservationHandler) ListReservations(c *gin.Context) {
	resident := residentID(c)
	if resident == "" {
		abortWith(c, errMissingResident)
		return
	}

	reservations, err := h.reservations.ListByResident(c.Request.Context(), c.Query("community_id"), resident)
	if err != nil {
		abortWith(c, mapReservationError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromReservations(reservations))
}

func (h *ReservationHandler) GetReservation(c *gin.Context) {
	resident := residentID(c)
	if resident == "" {
		abortWith(c, errMissingResident)
		return
	}

	reservation, err := h.reservations.GetOwn(c.Request.Context(), c.Param("reservation_id"), resident)
	if err != nil {
		abortWith(c, mapReservationError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromReservation(reservation))
}

// CancelReservation requires a justification of at least five characters and
// refuses same-day or past cancellations.
func (h *ReservationHandler) CancelReservation(c *gin.Context) {
	resident := residentID(c)
	if resident == "" {
		abortWith(c, errMissingResident)
		return
	}

	var payload request.CancelReservationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidReservationPayload)
		return
	}

	reservation, err := h.cancellation.Cancel(c.Request.Context(), c.Param("reservation_id"), resident, payload.Reason)
	if err != nil {
		abortWith(c, mapReservationError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromReservation(reservation))
}

// ExportCalendar renders the reservation as a downloadable calendar event.
func (h *ReservationHandler) ExportCalendar(c *gin.Context) {
	resident := residentID(c)
	if resident == "" {
		abortWith(c, errMissingResident)
		return
	}

	event, err := h.reservations.CalendarEvent(c.Request.Context(), c.Param("reservation_id"), resident)
	if err != nil {
		abortWith(c, mapReservationError(err))
		return
	}

	body := calendar.Render(calendar.EventPayload{
		Summary:     event.Summary,
		Start:       event.Start,
		End:         event.End,
		Description: event.Description,
	})

	c.Header("Content-Disposition", `attachment; filename="reserva.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(body))
}

func mapReservationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBookingInput),
		errors.Is(err, usecase.ErrInvalidBlock),
		errors.Is(err, usecase.ErrDateInPast),
		errors.Is(err, usecase.ErrInvalidCommunityID),
		errors.Is(err, usecase.ErrInvalidSpaceID),
		errors.Is(err, usecase.ErrInvalidResidentID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrReasonTooShort):
		return pkg.NewDomainErrorSimple("REASON_TOO_SHORT", "Cancellation reason must have at least 5 characters", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSlotTaken):
		return pkg.NewDomainErrorSimple("SLOT_ALREADY_TAKEN", "The selected block was just taken", http.StatusConflict)
	case errors.Is(err, usecase.ErrAlreadyCancelled):
		return pkg.NewDomainErrorSimple("ALREADY_CANCELLED", "Reservation is already cancelled", http.StatusConflict)
	case errors.Is(err, usecase.ErrCancellationCutoff):
		return pkg.NewDomainErrorSimple("CANCELLATION_CUTOFF", "Reservations can only be cancelled before the reserved day", http.StatusConflict)
	case errors.Is(err, usecase.ErrSpaceNotFound):
		return pkg.NewDomainErrorSimple("SPACE_NOT_FOUND", "Common space not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrReservationNotFound):
		return pkg.NewDomainErrorSimple("RESERVATION_NOT_FOUND", "Reservation not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("UPSTREAM_ERROR", "An upstream error occurred", err, http.StatusBadGateway)
	}
}
