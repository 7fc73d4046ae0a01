// File: database/repository/event/interface.go
package eventRepo

import (
	"context"
	"fmt"
	"time"

	"coachdesk/database"
	"coachdesk/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type EventRepository interface {
	// Create inserts the event, assigning its ID and timestamps in place.
	Create(ctx context.Context, ev *models.Event) error
	GetByID(ctx context.Context, orgID, eventID string) (*models.Event, error)
	ListByOrg(ctx context.Context, orgID string, from, to time.Time) ([]models.Event, error)
	ListOccupying(ctx context.Context, orgID string, from, to time.Time) ([]models.Event, error)
	UpdateStatus(ctx context.Context, orgID, eventID, status string) error
}

type mongoEventRepo struct {
	coll *mongo.Collection
}

// NewMongoEventRepo constructs a new MongoDB EventRepository.
func NewMongoEventRepo() EventRepository {
	db := database.MongoClient.Database("coachdesk")
	repo := &mongoEventRepo{
		coll: db.Collection("events"),
	}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create event indexes: %v\n", err)
	}
	return repo
}
