// File: database/repository/organization/crud.go
package orgRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"coachdesk/models"
)

func (r *mongoOrgRepo) Create(ctx context.Context, org *models.Organization) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if org.ID == "" {
		org.ID = uuid.New().String()
	}
	now := time.Now()
	org.CreatedAt = now
	org.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, org)
	return err
}

func (r *mongoOrgRepo) GetByID(ctx context.Context, orgID string) (*models.Organization, error) {
	return r.findOne(ctx, bson.M{"id": orgID})
}

func (r *mongoOrgRepo) GetByEmail(ctx context.Context, email string) (*models.Organization, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *mongoOrgRepo) GetByTokenHash(ctx context.Context, tokenHash string) (*models.Organization, error) {
	return r.findOne(ctx, bson.M{"tokenHash": tokenHash})
}

func (r *mongoOrgRepo) findOne(ctx context.Context, filter bson.M) (*models.Organization, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var org models.Organization
	if err := r.coll.FindOne(ctx, filter).Decode(&org); err != nil {
		return nil, err
	}
	return &org, nil
}

func (r *mongoOrgRepo) UpdateTokenHash(ctx context.Context, orgID, tokenHash string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": orgID}
	update := bson.M{"$set": bson.M{"tokenHash": tokenHash, "updatedAt": time.Now()}}
	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
