package usecase

import (
	"context"
	"errors"
	"testing"

	"visitme_reservas/internal/domain/entities"
	"visitme_reservas/internal/domain/schedule"
	mock_interfaces "visitme_reservas/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestAvailabilityUseCase_GetUpcoming(t *testing.T) {
	utcPolicy := entities.CommunityPolicy{CommunityID: "com-1", Timezone: "UTC"}

	t.Run("invalid community id", func(t *testing.T) {
		uc := NewAvailabilityUseCase(nil, nil)
		_, err := uc.GetUpcoming(context.Background(), "", "sp-1")
		if !errors.Is(err, ErrInvalidCommunityID) {
			t.Fatalf("expected ErrInvalidCommunityID, got %v", err)
		}
	})

	t.Run("invalid space id", func(t *testing.T) {
		uc := NewAvailabilityUseCase(nil, nil)
		_, err := uc.GetUpcoming(context.Background(), "com-1", "")
		if !errors.Is(err, ErrInvalidSpaceID) {
			t.Fatalf("expected ErrInvalidSpaceID, got %v", err)
		}
	})

	t.Run("empty space yields an all-available window", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIReservationRepository(ctrl)
		communities := mock_interfaces.NewMockICommunityRepository(ctrl)
		uc := NewAvailabilityUseCase(repo, communities)
		uc.now = fixedNow(t, "2026-03-10T12:00:00Z")

		communities.EXPECT().GetPolicy(gomock.Any(), "com-1").Return(utcPolicy, nil)
		repo.EXPECT().ListForSpaceBetween(gomock.Any(), "com-1", "sp-1", mustDate(t, "2026-03-10"), mustDate(t, "2026-04-08")).Return(nil, nil)

		days, err := uc.GetUpcoming(context.Background(), "com-1", "sp-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(days) != schedule.WindowDays {
			t.Fatalf("expected %d days, got %d", schedule.WindowDays, len(days))
		}
		if !days[0].Date.Equal(mustDate(t, "2026-03-10")) {
			t.Fatalf("expected window to start today, got %s", schedule.FormatDate(days[0].Date))
		}
		for _, d := range days {
			if d.Status != entities.DayStatusAvailable {
				t.Fatalf("expected every day available, got %+v", d)
			}
		}
	})

	t.Run("tri-state derivation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIReservationRepository(ctrl)
		communities := mock_interfaces.NewMockICommunityRepository(ctrl)
		uc := NewAvailabilityUseCase(repo, communities)
		uc.now = fixedNow(t, "2026-03-10T12:00:00Z")

		rows := []entities.Reservation{
			{ID: "r-1", Date: mustDate(t, "2026-03-11"), Block: entities.BlockMorning, Status: entities.ReservationStatusAgendado},
			{ID: "r-2", Date: mustDate(t, "2026-03-12"), Block: entities.BlockMorning, Status: entities.ReservationStatusAgendado},
			{ID: "r-3", Date: mustDate(t, "2026-03-12"), Block: entities.BlockAfternoon, Status: entities.ReservationStatusActivo},
		}
		communities.EXPECT().GetPolicy(gomock.Any(), "com-1").Return(utcPolicy, nil)
		repo.EXPECT().ListForSpaceBetween(gomock.Any(), "com-1", "sp-1", gomock.Any(), gomock.Any()).Return(rows, nil)

		days, err := uc.GetUpcoming(context.Background(), "com-1", "sp-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if days[1].Status != entities.DayStatusPartial || !days[1].AMTaken || days[1].PMTaken {
			t.Fatalf("expected partial day with AM taken, got %+v", days[1])
		}
		if days[2].Status != entities.DayStatusFull {
			t.Fatalf("expected full day, got %+v", days[2])
		}
		if days[0].Status != entities.DayStatusAvailable {
			t.Fatalf("expected today available, got %+v", days[0])
		}
	})

	t.Run("unknown status rows are skipped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIReservationRepository(ctrl)
		communities := mock_interfaces.NewMockICommunityRepository(ctrl)
		uc := NewAvailabilityUseCase(repo, communities)
		uc.now = fixedNow(t, "2026-03-10T12:00:00Z")

		rows := []entities.Reservation{
			{ID: "r-1", Date: mustDate(t, "2026-03-11"), Block: entities.BlockMorning, Status: entities.ReservationStatus("misterioso")},
		}
		communities.EXPECT().GetPolicy(gomock.Any(), "com-1").Return(utcPolicy, nil)
		repo.EXPECT().ListForSpaceBetween(gomock.Any(), "com-1", "sp-1", gomock.Any(), gomock.Any()).Return(rows, nil)

		days, err := uc.GetUpcoming(context.Background(), "com-1", "sp-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if days[1].Status != entities.DayStatusAvailable {
			t.Fatalf("expected unknown-status row ignored, got %+v", days[1])
		}
	})

	t.Run("query failure yields no partial window", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIReservationRepository(ctrl)
		communities := mock_interfaces.NewMockICommunityRepository(ctrl)
		uc := NewAvailabilityUseCase(repo, communities)

		communities.EXPECT().GetPolicy(gomock.Any(), "com-1").Return(utcPolicy, nil)
		repo.EXPECT().ListForSpaceBetween(gomock.Any(), "com-1", "sp-1", gomock.Any(), gomock.Any()).Return(nil, errors.New("db"))

		days, err := uc.GetUpcoming(context.Background(), "com-1", "sp-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
		if days != nil {
			t.Fatalf("expected nil window on failure, got %d days", len(days))
		}
	})
}
