package scheduleRepo

import (
	"context"
	"errors"
	"time"

	"swiftmove/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ListBlackouts returns all blackout dates sorted ascending.
func (r *mongoScheduleRepo) ListBlackouts(ctx context.Context) ([]models.BlackoutDate, error) {
	opts := options.Find().SetSort(bson.M{"date": 1})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var blackouts []models.BlackoutDate
	if err := cursor.All(ctx, &blackouts); err != nil {
		return nil, err
	}
	return blackouts, nil
}

// IsBlackout reports whether the given date is blacked out.
func (r *mongoScheduleRepo) IsBlackout(ctx context.Context, date string) (bool, error) {
	err := r.coll.FindOne(ctx, bson.M{"date": date}).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// CreateBlackout inserts a blackout date.
func (r *mongoScheduleRepo) CreateBlackout(ctx context.Context, blackout *models.BlackoutDate) error {
	if blackout.ID == "" {
		blackout.ID = uuid.New().String()
	}
	blackout.CreatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, blackout)
	return err
}

// DeleteBlackout removes a blackout date.
func (r *mongoScheduleRepo) DeleteBlackout(ctx context.Context, date string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"date": date})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("blackout date not found")
	}
	return nil
}
