// File: database/repository/availability/crud.go
package availabilityRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"coachdesk/models"
)

func (r *mongoAvailabilityRepo) GetByOrgID(ctx context.Context, orgID string) (*models.Availability, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"orgId": orgID}
	var av models.Availability
	if err := r.coll.FindOne(ctx, filter).Decode(&av); err != nil {
		return nil, err
	}
	return &av, nil
}

func (r *mongoAvailabilityRepo) Create(ctx context.Context, av *models.Availability) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, av)
	return err
}

func (r *mongoAvailabilityRepo) Update(ctx context.Context, av models.Availability) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	av.UpdatedAt = time.Now()
	filter := bson.M{"orgId": av.OrgID}
	res, err := r.coll.ReplaceOne(ctx, filter, av)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoAvailabilityRepo) AddBlockedSlot(ctx context.Context, orgID string, slot models.BlockedSlot) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"orgId": orgID}
	update := bson.M{
		"$push": bson.M{"blockedSlots": slot},
		"$set":  bson.M{"updatedAt": time.Now()},
	}
	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoAvailabilityRepo) RemoveBlockedSlot(ctx context.Context, orgID, blockID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"orgId": orgID}
	update := bson.M{
		"$pull": bson.M{"blockedSlots": bson.M{"id": blockID}},
		"$set":  bson.M{"updatedAt": time.Now()},
	}
	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
