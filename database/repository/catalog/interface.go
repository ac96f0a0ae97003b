package catalogRepo

import (
	"context"

	"swiftmove/config"
	"swiftmove/database"
	"swiftmove/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// CatalogRepository stores the priced furniture/appliance catalog.
type CatalogRepository interface {
	List(ctx context.Context) ([]models.PriceItem, error)
	GetByName(ctx context.Context, name string) (*models.PriceItem, error)
	Upsert(ctx context.Context, item *models.PriceItem) error
	DeleteByID(ctx context.Context, id string) error
}

type mongoCatalogRepo struct {
	coll *mongo.Collection
}

// NewMongoCatalogRepo returns a CatalogRepository backed by MongoDB.
func NewMongoCatalogRepo() CatalogRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoCatalogRepo{
		coll: db.Collection("price_items"),
	}
}
