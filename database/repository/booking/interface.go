package bookingRepo

import (
	"context"

	"swiftmove/config"
	"swiftmove/database"
	"swiftmove/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRepository persists and mutates booking records.
type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	GetByCheckoutSession(ctx context.Context, sessionID string) (*models.Booking, error)
	UpdatePricing(ctx context.Context, id string, pricing models.PricingState, promoCode string) error
	UpdateContact(ctx context.Context, id string, contact models.ContactInfo) error
	UpdateCheckout(ctx context.Context, id string, sessionID string, withHelper bool) error
	UpdatePaymentStatus(ctx context.Context, id string, status string) error
	ListByDate(ctx context.Context, date string) ([]models.Booking, error)
	List(ctx context.Context, limit int64) ([]models.Booking, error)
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo returns a BookingRepository backed by MongoDB.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoBookingRepo{
		coll: db.Collection("bookings"),
	}
}
