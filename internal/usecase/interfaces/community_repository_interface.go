package interfaces

import (
	"context"

	"visitme_reservas/internal/domain/entities"
)

// ICommunityRepository abstracts the community policy lookup (cooldown
// length, grace-day allowance, timezone).

type ICommunityRepository interface {
	GetPolicy(ctx context.Context, communityID string) (entities.CommunityPolicy, error)
}
