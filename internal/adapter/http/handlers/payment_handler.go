package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"strings"

	response "visitme_reservas/internal/adapter/http/dto/response"
	"visitme_reservas/internal/usecase"
	"visitme_reservas/pkg"

	"github.com/gin-gonic/gin"
)

// ReservationPaymentHandler handles payment collection for non-exempt
// reservations.

type ReservationPaymentHandler struct {
	usecase usecase.IReservationPaymentUseCase
}

func NewReservationPaymentHandler(uc usecase.IReservationPaymentUseCase) *ReservationPaymentHandler {
	return &ReservationPaymentHandler{usecase: uc}
}

// CreatePayment creates/approves a payment for the reservation in the path.
func (h *ReservationPaymentHandler) CreatePayment(c *gin.Context) {
	resident := residentID(c)
	if resident == "" {
		abortWith(c, errMissingResident)
		return
	}

	reservationID := c.Param("reservation_id")
	log.Printf("[payment][handler] create start reservation_id=%s", reservationID)
	mockMode := isPaymentGatewayMockEnabled()
	mpPayload, err := readMPPayload(c)
	if err != nil {
		if mockMode {
			log.Printf("[payment][handler] payload invalid in mock mode; fallback to empty payload reservation_id=%s err=%v", reservationID, err)
			mpPayload = json.RawMessage("{}")
		} else {
			log.Printf("[payment][handler] invalid payload reservation_id=%s err=%v", reservationID, err)
			abortWith(c, errInvalidPayload)
			return
		}
	}

	created, err := h.usecase.CreateAndApprove(c.Request.Context(), reservationID, resident, mpPayload)
	if err != nil {
		log.Printf("[payment][handler] create failed reservation_id=%s err=%v", reservationID, err)
		abortWith(c, mapReservationPaymentError(err))
		return
	}
	log.Printf("[payment][handler] create success reservation_id=%s payment_id=%s status=%s", reservationID, created.ID, created.Status)

	c.JSON(http.StatusOK, response.FromReservationPayment(created))
}

// GetPayment returns the latest payment for a reservation.
func (h *ReservationPaymentHandler) GetPayment(c *gin.Context) {
	resident := residentID(c)
	if resident == "" {
		abortWith(c, errMissingResident)
		return
	}

	reservationID := c.Param("reservation_id")

	payments, err := h.usecase.ListByReservation(c.Request.Context(), reservationID, resident)
	if err != nil {
		log.Printf("[payment][handler] get-by-reservation failed reservation_id=%s err=%v", reservationID, err)
		abortWith(c, mapReservationPaymentError(err))
		return
	}

	if len(payments) == 0 {
		abortWith(c, pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound))
		return
	}

	latest := payments[0]
	for _, p := range payments[1:] {
		if p.Date.After(latest.Date) {
			latest = p
		}
	}

	c.JSON(http.StatusOK, response.FromReservationPayment(latest))
}

func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			if len(strings.TrimSpace(string(wrapped))) == 0 || strings.TrimSpace(string(wrapped)) == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapReservationPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentPayload):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrReservationNotFound):
		return pkg.NewDomainErrorSimple("RESERVATION_NOT_FOUND", "Reservation not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrReservationNotChargeable):
		return pkg.NewDomainErrorSimple("RESERVATION_NOT_CHARGEABLE", "Reservation has no pending charge", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentGatewayDeclined):
		return pkg.NewDomainErrorSimple("PAYMENT_DECLINED", "Payment was declined by the provider", http.StatusPaymentRequired)
	default:
		return pkg.NewDomainError("UPSTREAM_ERROR", "An upstream error occurred", err, http.StatusBadGateway)
	}
}

func isPaymentGatewayMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("PAYMENT_GATEWAY_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}

	v = strings.ToLower(strings.TrimSpace(os.Getenv("MERCADOPAGO_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}

	return false
}
