package promoRepo

import (
	"context"
	"errors"
	"time"

	"swiftmove/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// GetByCode returns the promo code record for a normalized (uppercase) code.
func (r *mongoPromoRepo) GetByCode(ctx context.Context, code string) (*models.PromoCode, error) {
	var promo models.PromoCode
	err := r.coll.FindOne(ctx, bson.M{"code": code}).Decode(&promo)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &promo, nil
}

// IncrementRedemptions bumps the redemption counter for a code.
func (r *mongoPromoRepo) IncrementRedemptions(ctx context.Context, id string) error {
	update := bson.M{
		"$inc": bson.M{"redemptions": 1},
		"$set": bson.M{"updated_at": time.Now()},
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Create inserts a new promo code, normalizing it to uppercase.
func (r *mongoPromoRepo) Create(ctx context.Context, promo *models.PromoCode) error {
	if promo.ID == "" {
		promo.ID = uuid.New().String()
	}
	promo.Code = models.NormalizePromoCode(promo.Code)
	promo.CreatedAt = time.Now()
	promo.UpdatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, promo)
	return err
}
