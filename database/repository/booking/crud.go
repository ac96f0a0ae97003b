package bookingRepo

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

// Create inserts a new booking, assigning an id if none is set.
func (r *mongoBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	if booking.ID == "" {
		booking.ID = uuid.New().String()
	}
	booking.CreatedAt = time.Now()
	booking.UpdatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, booking)
	return err
}

// GetByID returns a booking by its id.
func (r *mongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	var booking models.Booking
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&booking)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// GetByCheckoutSession returns the booking holding the given Stripe session id.
func (r *mongoBookingRepo) GetByCheckoutSession(ctx context.Context, sessionID string) (*models.Booking, error) {
	var booking models.Booking
	err := r.coll.FindOne(ctx, bson.M{"checkout_session_id": sessionID}).Decode(&booking)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// UpdatePricing writes the discounted prices. The original price fields are
// never touched here.
func (r *mongoBookingRepo) UpdatePricing(ctx context.Context, id string, pricing models.PricingState, promoCode string) error {
	update := bson.M{"$set": bson.M{
		"price":            pricing.CurrentPrice,
		"helper_price":     pricing.CurrentHelperPrice,
		"discount_percent": pricing.DiscountPercent,
		"promo_code":       promoCode,
		"updated_at":       time.Now(),
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateContact attaches contact info to the booking.
func (r *mongoBookingRepo) UpdateContact(ctx context.Context, id string, contact models.ContactInfo) error {
	update := bson.M{"$set": bson.M{
		"contact":    contact,
		"updated_at": time.Now(),
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateCheckout records the Stripe session id and marks the payment pending.
func (r *mongoBookingRepo) UpdateCheckout(ctx context.Context, id string, sessionID string, withHelper bool) error {
	update := bson.M{"$set": bson.M{
		"checkout_session_id": sessionID,
		"with_helper":         withHelper,
		"payment_status":      models.PaymentStatusPending,
		"updated_at":          time.Now(),
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdatePaymentStatus sets the booking's payment status.
func (r *mongoBookingRepo) UpdatePaymentStatus(ctx context.Context, id string, status string) error {
	update := bson.M{"$set": bson.M{
		"payment_status": status,
		"updated_at":     time.Now(),
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ListByDate returns all bookings scheduled for a calendar date.
func (r *mongoBookingRepo) ListByDate(ctx context.Context, date string) ([]models.Booking, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"date": date})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// List returns the most recent bookings, newest first.
func (r *mongoBookingRepo) List(ctx context.Context, limit int64) ([]models.Booking, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1}).SetLimit(limit)
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}
