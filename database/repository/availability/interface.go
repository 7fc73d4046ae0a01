// File: database/repository/availability/interface.go
package availabilityRepo

import (
	"context"
	"fmt"

	"coachdesk/database"
	"coachdesk/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type AvailabilityRepository interface {
	GetByOrgID(ctx context.Context, orgID string) (*models.Availability, error)
	Create(ctx context.Context, av *models.Availability) error
	Update(ctx context.Context, av models.Availability) error
	AddBlockedSlot(ctx context.Context, orgID string, slot models.BlockedSlot) error
	RemoveBlockedSlot(ctx context.Context, orgID, blockID string) error
}

type mongoAvailabilityRepo struct {
	coll *mongo.Collection
}

// NewMongoAvailabilityRepo constructs a new MongoDB AvailabilityRepository.
func NewMongoAvailabilityRepo() AvailabilityRepository {
	db := database.MongoClient.Database("coachdesk")
	repo := &mongoAvailabilityRepo{
		coll: db.Collection("availability"),
	}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create availability indexes: %v\n", err)
	}
	return repo
}
