package scheduleRepo

import (
	"context"

	"swiftmove/config"
	"swiftmove/database"
	"swiftmove/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ScheduleRepository stores blackout dates.
type ScheduleRepository interface {
	ListBlackouts(ctx context.Context) ([]models.BlackoutDate, error)
	IsBlackout(ctx context.Context, date string) (bool, error)
	CreateBlackout(ctx context.Context, blackout *models.BlackoutDate) error
	DeleteBlackout(ctx context.Context, date string) error
}

type mongoScheduleRepo struct {
	coll *mongo.Collection
}

// NewMongoScheduleRepo returns a ScheduleRepository backed by MongoDB.
func NewMongoScheduleRepo() ScheduleRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoScheduleRepo{
		coll: db.Collection("blackout_dates"),
	}
}
