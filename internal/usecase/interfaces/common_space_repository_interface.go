package interfaces

import (
	"context"

	"visitme_reservas/internal/domain/entities"
)

// ICommonSpaceRepository abstracts DynamoDB persistence for the common-space
// catalog. The catalog is read-only for this service; administration tooling
// owns the writes.

type ICommonSpaceRepository interface {
	GetByID(ctx context.Context, id string) (entities.CommonSpace, error)

	// ListActive returns the community's operable spaces.
	ListActive(ctx context.Context, communityID string) ([]entities.CommonSpace, error)
}
