package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus represents the payment processing outcome for a reservation
// charge. Grace-exempt and free reservations are never charged, so only
// non-exempt bookings ever get a payment row.

type PaymentStatus string

const (
	PaymentStatusPendiente PaymentStatus = "pendiente"
	PaymentStatusAprobado  PaymentStatus = "aprobado"
	PaymentStatusRechazado PaymentStatus = "rechazado"
)

// ReservationPayment is the charge recorded for a non-exempt reservation.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (reservation_id-index): reservation_id
//
// Provider payload:
//   - ProviderPayloadRaw keeps the original body (JSON) for audit.
//   - ProviderPayload is an optional parsed representation, useful for
//     debugging. Both are persisted because provider schemas vary.

type ReservationPayment struct {
	ID            string        `json:"id"`
	ReservationID string        `json:"reservation_id"`
	Amount        float64       `json:"amount"`
	Date          time.Time     `json:"date"`
	Status        PaymentStatus `json:"status"`

	ProviderPayloadRaw json.RawMessage        `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}
