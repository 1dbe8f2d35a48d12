package usecase

import (
	"context"
	"errors"
	"testing"

	"visitme_reservas/internal/domain/entities"
	mock_interfaces "visitme_reservas/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestCancellationUseCase_Cancel(t *testing.T) {
	utcPolicy := entities.CommunityPolicy{CommunityID: "com-1", Timezone: "UTC"}

	t.Run("reason too short", func(t *testing.T) {
		uc := NewCancellationUseCase(nil, nil)
		_, err := uc.Cancel(context.Background(), "r-1", "res-1", "  no  ")
		if !errors.Is(err, ErrReasonTooShort) {
			t.Fatalf("expected ErrReasonTooShort, got %v", err)
		}
	})

	t.Run("reason length counts runes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIReservationRepository(ctrl)
		communities := mock_interfaces.NewMockICommunityRepository(ctrl)
		uc := NewCancellationUseCase(repo, communities)
		uc.now = fixedNow(t, "2026-03-10T10:00:00Z")

		existing := entities.Reservation{ID: "r-1", CommunityID: "com-1", ResidentID: "res-1", Date: mustDate(t, "2026-03-15"), Status: entities.ReservationStatusAgendado}
		repo.EXPECT().GetByID(gomock.Any(), "r-1").Return(existing, nil)
		communities.EXPECT().GetPolicy(gomock.Any(), "com-1").Return(utcPolicy, nil)
		repo.EXPECT().Cancel(gomock.Any(), "r-1", "res-1", "cañón").DoAndReturn(
			func(_ context.Context, _, _, reason string) (entities.Reservation, error) {
				r := existing
				r.Status = entities.ReservationStatusCancelado
				r.CancellationReason = reason
				return r, nil
			})

		// Five runes, six bytes.
		cancelled, err := uc.Cancel(context.Background(), "r-1", "res-1", "cañón")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cancelled.Status != entities.ReservationStatusCancelado {
			t.Fatalf("expected cancelado, got %s", cancelled.Status)
		}
	})

	t.Run("not owner reads as not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIReservationRepository(ctrl)
		uc := NewCancellationUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "r-1").Return(entities.Reservation{ID: "r-1", ResidentID: "someone-else"}, nil)

		_, err := uc.Cancel(context.Background(), "r-1", "res-1", "cambio de planes")
		if !errors.Is(err, ErrReservationNotFound) {
			t.Fatalf("expected ErrReservationNotFound, got %v", err)
		}
	})

	t.Run("already cancelled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIReservationRepository(ctrl)
		uc := NewCancellationUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "r-1").Return(entities.Reservation{ID: "r-1", ResidentID: "res-1", Status: entities.ReservationStatusCancelado}, nil)

		_, err := uc.Cancel(context.Background(), "r-1", "res-1", "cambio de planes")
		if !errors.Is(err, ErrAlreadyCancelled) {
			t.Fatalf("expected ErrAlreadyCancelled, got %v", err)
		}
	})

	t.Run("same-day cancellation refused", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIReservationRepository(ctrl)
		communities := mock_interfaces.NewMockICommunityRepository(ctrl)
		uc := NewCancellationUseCase(repo, communities)
		uc.now = fixedNow(t, "2026-03-15T07:00:00Z")

		repo.EXPECT().GetByID(gomock.Any(), "r-1").Return(entities.Reservation{ID: "r-1", CommunityID: "com-1", ResidentID: "res-1", Date: mustDate(t, "2026-03-15"), Status: entities.ReservationStatusAgendado}, nil)
		communities.EXPECT().GetPolicy(gomock.Any(), "com-1").Return(utcPolicy, nil)

		_, err := uc.Cancel(context.Background(), "r-1", "res-1", "cambio de planes")
		if !errors.Is(err, ErrCancellationCutoff) {
			t.Fatalf("expected ErrCancellationCutoff, got %v", err)
		}
	})

	t.Run("future reservation cancels", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIReservationRepository(ctrl)
		communities := mock_interfaces.NewMockICommunityRepository(ctrl)
		uc := NewCancellationUseCase(repo, communities)
		uc.now = fixedNow(t, "2026-03-14T23:00:00Z")

		existing := entities.Reservation{ID: "r-1", CommunityID: "com-1", ResidentID: "res-1", Date: mustDate(t, "2026-03-15"), Status: entities.ReservationStatusAgendado}
		repo.EXPECT().GetByID(gomock.Any(), "r-1").Return(existing, nil)
		communities.EXPECT().GetPolicy(gomock.Any(), "com-1").Return(utcPolicy, nil)
		repo.EXPECT().Cancel(gomock.Any(), "r-1", "res-1", "cambio de planes").DoAndReturn(
			func(_ context.Context, _, _, reason string) (entities.Reservation, error) {
				r := existing
				r.Status = entities.ReservationStatusCancelado
				r.CancellationReason = reason
				return r, nil
			})

		cancelled, err := uc.Cancel(context.Background(), "r-1", "res-1", "cambio de planes")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cancelled.CancellationReason != "cambio de planes" {
			t.Fatalf("expected reason recorded, got %+v", cancelled)
		}
	})

	t.Run("conditional write rejection reads as not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIReservationRepository(ctrl)
		communities := mock_interfaces.NewMockICommunityRepository(ctrl)
		uc := NewCancellationUseCase(repo, communities)
		uc.now = fixedNow(t, "2026-03-10T10:00:00Z")

		repo.EXPECT().GetByID(gomock.Any(), "r-1").Return(entities.Reservation{ID: "r-1", CommunityID: "com-1", ResidentID: "res-1", Date: mustDate(t, "2026-03-15"), Status: entities.ReservationStatusAgendado}, nil)
		communities.EXPECT().GetPolicy(gomock.Any(), "com-1").Return(utcPolicy, nil)
		repo.EXPECT().Cancel(gomock.Any(), "r-1", "res-1", "cambio de planes").Return(entities.Reservation{}, nil)

		_, err := uc.Cancel(context.Background(), "r-1", "res-1", "cambio de planes")
		if !errors.Is(err, ErrReservationNotFound) {
			t.Fatalf("expected ErrReservationNotFound, got %v", err)
		}
	})

	t.Run("write failure propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIReservationRepository(ctrl)
		communities := mock_interfaces.NewMockICommunityRepository(ctrl)
		uc := NewCancellationUseCase(repo, communities)
		uc.now = fixedNow(t, "2026-03-10T10:00:00Z")

		repo.EXPECT().GetByID(gomock.Any(), "r-1").Return(entities.Reservation{ID: "r-1", CommunityID: "com-1", ResidentID: "res-1", Date: mustDate(t, "2026-03-15"), Status: entities.ReservationStatusAgendado}, nil)
		communities.EXPECT().GetPolicy(gomock.Any(), "com-1").Return(utcPolicy, nil)
		repo.EXPECT().Cancel(gomock.Any(), "r-1", "res-1", "cambio de planes").Return(entities.Reservation{}, errors.New("db"))

		_, err := uc.Cancel(context.Background(), "r-1", "res-1", "cambio de planes")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}
