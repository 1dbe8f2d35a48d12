package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"visitme_reservas/internal/domain/entities"
	"visitme_reservas/internal/usecase/interfaces"
)

var (
	ErrPaymentNotFound          = errors.New("reservation payment not found")
	ErrInvalidPaymentPayload    = errors.New("invalid payment payload")
	ErrReservationNotChargeable = errors.New("reservation is not chargeable")
	ErrPaymentGatewayDeclined   = errors.New("payment gateway declined the charge")
)

// IReservationPaymentUseCase charges a non-exempt reservation through the
// configured payment provider and records the outcome.
//
// Free and grace-exempt reservations are never chargeable; refunds after a
// cancellation are outside this service.

type IReservationPaymentUseCase interface {
	CreateAndApprove(ctx context.Context, reservationID, residentID string, payload json.RawMessage) (entities.ReservationPayment, error)
	ListByReservation(ctx context.Context, reservationID, residentID string) ([]entities.ReservationPayment, error)
}

type ReservationPaymentUseCase struct {
	payments     interfaces.IReservationPaymentRepository
	reservations interfaces.IReservationRepository
	gateway      interfaces.IPaymentGateway

	now func() time.Time
}

var _ IReservationPaymentUseCase = (*ReservationPaymentUseCase)(nil)

func NewReservationPaymentUseCase(payments interfaces.IReservationPaymentRepository, reservations interfaces.IReservationRepository, gateway interfaces.IPaymentGateway) *ReservationPaymentUseCase {
	return &ReservationPaymentUseCase{payments: payments, reservations: reservations, gateway: gateway, now: time.Now}
}

// CreateAndApprove loads the reservation, forces the charged amount to the
// cost recorded at booking time (the store is the source of truth, never the
// client payload), runs the provider call and persists the payment row.
func (u *ReservationPaymentUseCase) CreateAndApprove(ctx context.Context, reservationID, residentID string, payload json.RawMessage) (entities.ReservationPayment, error) {
	reservationID = strings.TrimSpace(reservationID)
	log.Printf("[payment][usecase] create-and-approve start reservation_id=%q payload_len=%d", reservationID, len(payload))
	if reservationID == "" {
		return entities.ReservationPayment{}, ErrReservationNotFound
	}
	if residentID == "" {
		return entities.ReservationPayment{}, ErrInvalidResidentID
	}
	if len(payload) == 0 {
		payload = json.RawMessage("{}")
	}
	if !json.Valid(payload) {
		log.Printf("[payment][usecase] invalid payload (not-json) reservation_id=%s", reservationID)
		return entities.ReservationPayment{}, ErrInvalidPaymentPayload
	}
	if u.gateway == nil {
		log.Printf("[payment][usecase] gateway not configured reservation_id=%s", reservationID)
		return entities.ReservationPayment{}, errors.New("payment gateway not configured")
	}

	r, err := u.reservations.GetByID(ctx, reservationID)
	if err != nil {
		log.Printf("[payment][usecase] failed loading reservation reservation_id=%s err=%v", reservationID, err)
		return entities.ReservationPayment{}, err
	}
	if r.ID == "" || r.ResidentID != residentID {
		return entities.ReservationPayment{}, ErrReservationNotFound
	}
	if r.Status == entities.ReservationStatusCancelado {
		return entities.ReservationPayment{}, ErrReservationNotChargeable
	}
	if r.CostApplied <= 0 {
		// Free space or grace-exempt booking.
		return entities.ReservationPayment{}, ErrReservationNotChargeable
	}

	var reqMap map[string]any
	if err := json.Unmarshal(payload, &reqMap); err != nil {
		return entities.ReservationPayment{}, ErrInvalidPaymentPayload
	}
	if reqMap == nil {
		reqMap = map[string]any{}
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = r.ID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Reserva espacio común %s", r.SpaceID)
	}
	// The source of truth for the amount is the reservation in the store.
	reqMap["transaction_amount"] = r.CostApplied
	if b, err := json.Marshal(reqMap); err == nil {
		payload = b
	}

	log.Printf("[payment][usecase] calling payment gateway reservation_id=%s amount=%.0f", r.ID, r.CostApplied)
	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		log.Printf("[payment][usecase] payment gateway failed reservation_id=%s err=%v", r.ID, err)
		return entities.ReservationPayment{}, err
	}
	status := entities.PaymentStatusAprobado
	if !strings.EqualFold(providerStatus, "approved") {
		status = entities.PaymentStatusRechazado
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[payment][usecase] provider response unmarshal failed reservation_id=%s err=%v", r.ID, err)
	}

	p := entities.ReservationPayment{
		ID:                 providerPaymentID,
		ReservationID:      r.ID,
		Amount:             r.CostApplied,
		Date:               u.now().UTC(),
		Status:             status,
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}

	created, err := u.payments.Create(ctx, p)
	if err != nil {
		log.Printf("[payment][usecase] payment repository create failed reservation_id=%s payment_id=%s err=%v", r.ID, p.ID, err)
		return entities.ReservationPayment{}, err
	}
	if created.Status != entities.PaymentStatusAprobado {
		log.Printf("[payment][usecase] charge declined reservation_id=%s payment_id=%s provider_status=%s", r.ID, created.ID, providerStatus)
		return created, ErrPaymentGatewayDeclined
	}
	log.Printf("[payment][usecase] create-and-approve success reservation_id=%s payment_id=%s", r.ID, created.ID)
	return created, nil
}

func (u *ReservationPaymentUseCase) ListByReservation(ctx context.Context, reservationID, residentID string) ([]entities.ReservationPayment, error) {
	reservationID = strings.TrimSpace(reservationID)
	if reservationID == "" || residentID == "" {
		return nil, ErrReservationNotFound
	}

	r, err := u.reservations.GetByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if r.ID == "" || r.ResidentID != residentID {
		return nil, ErrReservationNotFound
	}
	return u.payments.ListByReservationID(ctx, reservationID)
}
