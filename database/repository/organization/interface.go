// File: database/repository/organization/interface.go
package orgRepo

import (
	"context"
	"fmt"

	"coachdesk/database"
	"coachdesk/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type OrganizationRepository interface {
	// Create inserts the organization, assigning its ID and timestamps in place.
	Create(ctx context.Context, org *models.Organization) error
	GetByID(ctx context.Context, orgID string) (*models.Organization, error)
	GetByEmail(ctx context.Context, email string) (*models.Organization, error)
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.Organization, error)
	UpdateTokenHash(ctx context.Context, orgID, tokenHash string) error
}

type mongoOrgRepo struct {
	coll *mongo.Collection
}

// NewMongoOrgRepo constructs a new MongoDB OrganizationRepository.
func NewMongoOrgRepo() OrganizationRepository {
	db := database.MongoClient.Database("coachdesk")
	repo := &mongoOrgRepo{
		coll: db.Collection("organizations"),
	}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create organization indexes: %v\n", err)
	}
	return repo
}
