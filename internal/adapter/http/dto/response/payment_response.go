package response

import (
	"time"

	"visitme_reservas/internal/domain/entities"
)

type ReservationPaymentResponse struct {
	ID            string    `json:"id"`
	ReservationID string    `json:"reservation_id"`
	Amount        float64   `json:"amount"`
	Date          time.Time `json:"date"`
	Status        string    `json:"status"`
}

func FromReservationPayment(p entities.ReservationPayment) ReservationPaymentResponse {
	return ReservationPaymentResponse{
		ID:            p.ID,
		ReservationID: p.ReservationID,
		Amount:        p.Amount,
		Date:          p.Date,
		Status:        string(p.Status),
	}
}

func FromReservationPayments(ps []entities.ReservationPayment) []ReservationPaymentResponse {
	out := make([]ReservationPaymentResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromReservationPayment(p))
	}
	return out
}
