package availability

import (
	"context"

	"coachdesk/models"
)

// AvailabilityService manages per-organization scheduling settings.
type AvailabilityService interface {
	// GetOrCreate returns the organization's availability record, lazily
	// creating the documented default schedule on first access. Idempotent.
	GetOrCreate(ctx context.Context, orgID string) (*models.Availability, error)
	Update(ctx context.Context, orgID string, upd models.AvailabilityUpdate) (*models.Availability, error)
	AddBlockedSlot(ctx context.Context, orgID string, slot models.BlockedSlot) (*models.Availability, error)
	RemoveBlockedSlot(ctx context.Context, orgID, blockID string) (*models.Availability, error)
}
