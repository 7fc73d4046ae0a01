// File: database/repository/intake/crud.go
package intakeRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"coachdesk/models"
)

func (r *mongoIntakeConfigRepo) Create(ctx context.Context, cfg *models.IntakeConfig) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if cfg.ID == "" {
		cfg.ID = uuid.New().String()
	}
	now := time.Now()
	cfg.CreatedAt = now
	cfg.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, cfg)
	return err
}

func (r *mongoIntakeConfigRepo) GetByID(ctx context.Context, configID string) (*models.IntakeConfig, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": configID}
	var cfg models.IntakeConfig
	if err := r.coll.FindOne(ctx, filter).Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (r *mongoIntakeConfigRepo) ListByOrg(ctx context.Context, orgID string) ([]models.IntakeConfig, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"orgId": orgID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var configs []models.IntakeConfig
	if err := cursor.All(ctx, &configs); err != nil {
		return nil, err
	}
	return configs, nil
}

func (r *mongoIntakeConfigRepo) Update(ctx context.Context, cfg models.IntakeConfig) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cfg.UpdatedAt = time.Now()
	filter := bson.M{"id": cfg.ID, "orgId": cfg.OrgID}
	res, err := r.coll.ReplaceOne(ctx, filter, cfg)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoIntakeConfigRepo) Delete(ctx context.Context, orgID, configID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": configID, "orgId": orgID}
	res, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
