package promoRepo

import (
	"context"

	"swiftmove/config"
	"swiftmove/database"
	"swiftmove/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// PromoRepository looks up and redeems promo codes.
type PromoRepository interface {
	GetByCode(ctx context.Context, code string) (*models.PromoCode, error)
	IncrementRedemptions(ctx context.Context, id string) error
	Create(ctx context.Context, promo *models.PromoCode) error
}

type mongoPromoRepo struct {
	coll *mongo.Collection
}

// NewMongoPromoRepo returns a PromoRepository backed by MongoDB.
func NewMongoPromoRepo() PromoRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoPromoRepo{
		coll: db.Collection("promo_codes"),
	}
}
