// File: database/repository/event/crud.go
package eventRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"coachdesk/models"
)

func (r *mongoEventRepo) Create(ctx context.Context, ev *models.Event) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if ev.ID == "" {
		ev.ID = uuid.New().String()
	}
	now := time.Now()
	ev.CreatedAt = now
	ev.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, ev)
	return err
}

func (r *mongoEventRepo) GetByID(ctx context.Context, orgID, eventID string) (*models.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": eventID, "orgId": orgID}
	var ev models.Event
	if err := r.coll.FindOne(ctx, filter).Decode(&ev); err != nil {
		return nil, err
	}
	return &ev, nil
}

func (r *mongoEventRepo) ListByOrg(ctx context.Context, orgID string, from, to time.Time) ([]models.Event, error) {
	return r.list(ctx, bson.M{
		"orgId":         orgID,
		"startDateTime": bson.M{"$gte": from, "$lte": to},
	})
}

func (r *mongoEventRepo) ListOccupying(ctx context.Context, orgID string, from, to time.Time) ([]models.Event, error) {
	return r.list(ctx, bson.M{
		"orgId":         orgID,
		"status":        bson.M{"$in": models.OccupyingStatuses},
		"startDateTime": bson.M{"$gte": from, "$lte": to},
	})
}

func (r *mongoEventRepo) list(ctx context.Context, filter bson.M) ([]models.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "startDateTime", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var events []models.Event
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (r *mongoEventRepo) UpdateStatus(ctx context.Context, orgID, eventID, status string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": eventID, "orgId": orgID}
	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}}
	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
