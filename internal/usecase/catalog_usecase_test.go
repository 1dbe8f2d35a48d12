package usecase

import (
	"context"
	"errors"
	"testing"

	"visitme_reservas/internal/domain/entities"
	mock_interfaces "visitme_reservas/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestCatalogUseCase_GetSpace(t *testing.T) {
	t.Run("blank space id", func(t *testing.T) {
		uc := NewCatalogUseCase(nil, nil)
		_, err := uc.GetSpace(context.Background(), "com-1", "   ")
		if !errors.Is(err, ErrSpaceNotFound) {
			t.Fatalf("expected ErrSpaceNotFound, got %v", err)
		}
	})

	t.Run("inactive space reads as not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		spaces := mock_interfaces.NewMockICommonSpaceRepository(ctrl)
		uc := NewCatalogUseCase(spaces, nil)

		spaces.EXPECT().GetByID(gomock.Any(), "sp-1").Return(entities.CommonSpace{ID: "sp-1", CommunityID: "com-1", Active: false}, nil)

		_, err := uc.GetSpace(context.Background(), "com-1", "sp-1")
		if !errors.Is(err, ErrSpaceNotFound) {
			t.Fatalf("expected ErrSpaceNotFound, got %v", err)
		}
	})

	t.Run("space of another community reads as not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		spaces := mock_interfaces.NewMockICommonSpaceRepository(ctrl)
		uc := NewCatalogUseCase(spaces, nil)

		spaces.EXPECT().GetByID(gomock.Any(), "sp-1").Return(entities.CommonSpace{ID: "sp-1", CommunityID: "com-2", Active: true}, nil)

		_, err := uc.GetSpace(context.Background(), "com-1", "sp-1")
		if !errors.Is(err, ErrSpaceNotFound) {
			t.Fatalf("expected ErrSpaceNotFound, got %v", err)
		}
	})

	t.Run("active space resolves", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		spaces := mock_interfaces.NewMockICommonSpaceRepository(ctrl)
		uc := NewCatalogUseCase(spaces, nil)

		spaces.EXPECT().GetByID(gomock.Any(), "sp-1").Return(entities.CommonSpace{ID: "sp-1", CommunityID: "com-1", Name: "Quincho", Active: true}, nil)

		s, err := uc.GetSpace(context.Background(), "com-1", "sp-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.Name != "Quincho" {
			t.Fatalf("expected Quincho, got %+v", s)
		}
	})
}

func TestCatalogUseCase_EligibleDepartments(t *testing.T) {
	t.Run("filters by eligibility flags", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		departments := mock_interfaces.NewMockIDepartmentRepository(ctrl)
		uc := NewCatalogUseCase(nil, departments)

		links := []entities.Department{
			{ID: "dep-1", Active: true, CanReserve: true},
			{ID: "dep-2", Active: true, CanReserve: false},
			{ID: "dep-3", Active: true, CanReserve: true, ReservationsBlocked: true},
			{ID: "dep-4", Active: false, CanReserve: true},
		}
		departments.EXPECT().ListByResident(gomock.Any(), "com-1", "res-1").Return(links, nil)

		eligible, err := uc.EligibleDepartments(context.Background(), "com-1", "res-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(eligible) != 1 || eligible[0].ID != "dep-1" {
			t.Fatalf("expected only dep-1, got %+v", eligible)
		}
	})

	t.Run("no links yields empty slice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		departments := mock_interfaces.NewMockIDepartmentRepository(ctrl)
		uc := NewCatalogUseCase(nil, departments)

		departments.EXPECT().ListByResident(gomock.Any(), "com-1", "res-1").Return(nil, nil)

		eligible, err := uc.EligibleDepartments(context.Background(), "com-1", "res-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(eligible) != 0 {
			t.Fatalf("expected empty, got %+v", eligible)
		}
	})
}
