package usecase

import (
	"context"
	"errors"
	"testing"

	"visitme_reservas/internal/domain/entities"
	"visitme_reservas/internal/usecase/interfaces"
	mock_interfaces "visitme_reservas/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestBookingUseCase_Book(t *testing.T) {
	cmd := func(t *testing.T) BookingCommand {
		t.Helper()
		return BookingCommand{
			CommunityID:   "com-1",
			SpaceID:       "sp-1",
			DepartmentID:  "dep-1",
			ResidentID:    "res-1",
			Date:          mustDate(t, "2026-03-12"),
			Block:         entities.BlockMorning,
			DurationHours: 4,
			CostApplied:   25000,
		}
	}
	utcPolicy := entities.CommunityPolicy{CommunityID: "com-1", Timezone: "UTC"}

	t.Run("missing ids", func(t *testing.T) {
		uc := NewBookingUseCase(nil, nil)
		c := cmd(t)
		c.DepartmentID = ""
		_, err := uc.Book(context.Background(), c)
		if !errors.Is(err, ErrInvalidBookingInput) {
			t.Fatalf("expected ErrInvalidBookingInput, got %v", err)
		}
	})

	t.Run("invalid block", func(t *testing.T) {
		uc := NewBookingUseCase(nil, nil)
		c := cmd(t)
		c.Block = "noche"
		_, err := uc.Book(context.Background(), c)
		if !errors.Is(err, ErrInvalidBlock) {
			t.Fatalf("expected ErrInvalidBlock, got %v", err)
		}
	})

	t.Run("date in the past", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIReservationRepository(ctrl)
		communities := mock_interfaces.NewMockICommunityRepository(ctrl)
		uc := NewBookingUseCase(repo, communities)
		uc.now = fixedNow(t, "2026-03-13T10:00:00Z")

		communities.EXPECT().GetPolicy(gomock.Any(), "com-1").Return(utcPolicy, nil)

		_, err := uc.Book(context.Background(), cmd(t))
		if !errors.Is(err, ErrDateInPast) {
			t.Fatalf("expected ErrDateInPast, got %v", err)
		}
	})

	t.Run("today is bookable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIReservationRepository(ctrl)
		communities := mock_interfaces.NewMockICommunityRepository(ctrl)
		uc := NewBookingUseCase(repo, communities)
		uc.now = fixedNow(t, "2026-03-12T10:00:00Z")

		communities.EXPECT().GetPolicy(gomock.Any(), "com-1").Return(utcPolicy, nil)
		repo.EXPECT().FindActiveBySlot(gomock.Any(), "com-1", "sp-1", mustDate(t, "2026-03-12"), entities.BlockMorning).Return(entities.Reservation{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.Reservation) (entities.Reservation, error) { return r, nil })

		created, err := uc.Book(context.Background(), cmd(t))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.Status != entities.ReservationStatusAgendado {
			t.Fatalf("expected status agendado, got %s", created.Status)
		}
		if created.ID == "" || created.CreatedAt.IsZero() {
			t.Fatalf("expected generated id and created_at, got %+v", created)
		}
	})

	t.Run("conflict guard refuses a taken slot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIReservationRepository(ctrl)
		communities := mock_interfaces.NewMockICommunityRepository(ctrl)
		uc := NewBookingUseCase(repo, communities)
		uc.now = fixedNow(t, "2026-03-10T10:00:00Z")

		communities.EXPECT().GetPolicy(gomock.Any(), "com-1").Return(utcPolicy, nil)
		repo.EXPECT().FindActiveBySlot(gomock.Any(), "com-1", "sp-1", mustDate(t, "2026-03-12"), entities.BlockMorning).
			Return(entities.Reservation{ID: "other"}, nil)

		_, err := uc.Book(context.Background(), cmd(t))
		if !errors.Is(err, ErrSlotTaken) {
			t.Fatalf("expected ErrSlotTaken, got %v", err)
		}
	})

	t.Run("lost slot race maps to ErrSlotTaken", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIReservationRepository(ctrl)
		communities := mock_interfaces.NewMockICommunityRepository(ctrl)
		uc := NewBookingUseCase(repo, communities)
		uc.now = fixedNow(t, "2026-03-10T10:00:00Z")

		communities.EXPECT().GetPolicy(gomock.Any(), "com-1").Return(utcPolicy, nil)
		repo.EXPECT().FindActiveBySlot(gomock.Any(), "com-1", "sp-1", gomock.Any(), entities.BlockMorning).Return(entities.Reservation{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Reservation{}, interfaces.ErrSlotUnavailable)

		_, err := uc.Book(context.Background(), cmd(t))
		if !errors.Is(err, ErrSlotTaken) {
			t.Fatalf("expected ErrSlotTaken on lost race, got %v", err)
		}
	})

	t.Run("write failure propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIReservationRepository(ctrl)
		communities := mock_interfaces.NewMockICommunityRepository(ctrl)
		uc := NewBookingUseCase(repo, communities)
		uc.now = fixedNow(t, "2026-03-10T10:00:00Z")

		communities.EXPECT().GetPolicy(gomock.Any(), "com-1").Return(utcPolicy, nil)
		repo.EXPECT().FindActiveBySlot(gomock.Any(), "com-1", "sp-1", gomock.Any(), entities.BlockMorning).Return(entities.Reservation{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Reservation{}, errors.New("db"))

		_, err := uc.Book(context.Background(), cmd(t))
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("grace booking keeps the flag", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIReservationRepository(ctrl)
		communities := mock_interfaces.NewMockICommunityRepository(ctrl)
		uc := NewBookingUseCase(repo, communities)
		uc.now = fixedNow(t, "2026-03-10T10:00:00Z")

		c := cmd(t)
		c.CostApplied = 0
		c.IsGraceUse = true

		communities.EXPECT().GetPolicy(gomock.Any(), "com-1").Return(utcPolicy, nil)
		repo.EXPECT().FindActiveBySlot(gomock.Any(), "com-1", "sp-1", gomock.Any(), entities.BlockMorning).Return(entities.Reservation{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.Reservation) (entities.Reservation, error) { return r, nil })

		created, err := uc.Book(context.Background(), c)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.CostApplied != 0 || !created.IsGraceUse {
			t.Fatalf("expected free grace reservation, got %+v", created)
		}
	})
}
