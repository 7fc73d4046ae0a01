// File: database/repository/intake/interface.go
package intakeRepo

import (
	"context"
	"fmt"

	"coachdesk/database"
	"coachdesk/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type IntakeConfigRepository interface {
	// Create inserts the config, assigning its ID and timestamps in place.
	Create(ctx context.Context, cfg *models.IntakeConfig) error
	// GetByID looks up a config without an org filter; the funnel path is
	// unauthenticated and resolves the organization from the config itself.
	GetByID(ctx context.Context, configID string) (*models.IntakeConfig, error)
	ListByOrg(ctx context.Context, orgID string) ([]models.IntakeConfig, error)
	Update(ctx context.Context, cfg models.IntakeConfig) error
	Delete(ctx context.Context, orgID, configID string) error
}

type mongoIntakeConfigRepo struct {
	coll *mongo.Collection
}

// NewMongoIntakeConfigRepo constructs a new MongoDB IntakeConfigRepository.
func NewMongoIntakeConfigRepo() IntakeConfigRepository {
	db := database.MongoClient.Database("coachdesk")
	repo := &mongoIntakeConfigRepo{
		coll: db.Collection("intake_configs"),
	}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create intake config indexes: %v\n", err)
	}
	return repo
}
