package interfaces

import (
	"context"

	"visitme_reservas/internal/domain/entities"
)

// IReservationPaymentRepository abstracts DynamoDB persistence for
// ReservationPayment.

type IReservationPaymentRepository interface {
	Create(ctx context.Context, p entities.ReservationPayment) (entities.ReservationPayment, error)
	GetByID(ctx context.Context, id string) (entities.ReservationPayment, error)
	ListByReservationID(ctx context.Context, reservationID string) ([]entities.ReservationPayment, error)
}
