package usecase

import (
	"context"
	"errors"
	"strings"

	"visitme_reservas/internal/domain/entities"
	"visitme_reservas/internal/usecase/interfaces"
)

var ErrSpaceNotFound = errors.New("common space not found")

// ICatalogUseCase serves the read-only catalog the wizard is built from:
// the community's reservable spaces and the resident's eligible departments.

type ICatalogUseCase interface {
	ListSpaces(ctx context.Context, communityID string) ([]entities.CommonSpace, error)
	GetSpace(ctx context.Context, communityID, spaceID string) (entities.CommonSpace, error)
	EligibleDepartments(ctx context.Context, communityID, residentID string) ([]entities.Department, error)
}

type CatalogUseCase struct {
	spaces      interfaces.ICommonSpaceRepository
	departments interfaces.IDepartmentRepository
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(spaces interfaces.ICommonSpaceRepository, departments interfaces.IDepartmentRepository) *CatalogUseCase {
	return &CatalogUseCase{spaces: spaces, departments: departments}
}

func (u *CatalogUseCase) ListSpaces(ctx context.Context, communityID string) ([]entities.CommonSpace, error) {
	if communityID == "" {
		return nil, ErrInvalidCommunityID
	}
	return u.spaces.ListActive(ctx, communityID)
}

// GetSpace resolves one active space of the community. Disabled spaces and
// spaces of other communities read as not found.
func (u *CatalogUseCase) GetSpace(ctx context.Context, communityID, spaceID string) (entities.CommonSpace, error) {
	spaceID = strings.TrimSpace(spaceID)
	if communityID == "" || spaceID == "" {
		return entities.CommonSpace{}, ErrSpaceNotFound
	}

	s, err := u.spaces.GetByID(ctx, spaceID)
	if err != nil {
		return entities.CommonSpace{}, err
	}
	if s.ID == "" || s.CommunityID != communityID || !s.Active {
		return entities.CommonSpace{}, ErrSpaceNotFound
	}
	return s, nil
}

// EligibleDepartments filters the resident's department links down to the
// ones whose flags currently allow reserving.
func (u *CatalogUseCase) EligibleDepartments(ctx context.Context, communityID, residentID string) ([]entities.Department, error) {
	if communityID == "" {
		return nil, ErrInvalidCommunityID
	}
	if residentID == "" {
		return nil, ErrInvalidResidentID
	}

	all, err := u.departments.ListByResident(ctx, communityID, residentID)
	if err != nil {
		return nil, err
	}
	eligible := make([]entities.Department, 0, len(all))
	for _, d := range all {
		if d.Eligible() {
			eligible = append(eligible, d)
		}
	}
	return eligible, nil
}
