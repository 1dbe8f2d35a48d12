package interfaces

import (
	"context"

	"visitme_reservas/internal/domain/entities"
)

// IDepartmentRepository abstracts the resident-to-unit membership query.

type IDepartmentRepository interface {
	// ListByResident returns the resident's active department links in a
	// community, including links whose flags currently forbid reserving;
	// eligibility filtering is the policy engine's business.
	ListByResident(ctx context.Context, communityID, residentID string) ([]entities.Department, error)
}
