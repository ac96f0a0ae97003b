package catalogRepo

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

// List returns the full catalog sorted by name.
func (r *mongoCatalogRepo) List(ctx context.Context) ([]models.PriceItem, error) {
	opts := options.Find().SetSort(bson.M{"name": 1})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []models.PriceItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// GetByName returns one catalog item by its display name.
func (r *mongoCatalogRepo) GetByName(ctx context.Context, name string) (*models.PriceItem, error) {
	var item models.PriceItem
	err := r.coll.FindOne(ctx, bson.M{"name": name}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Upsert inserts or replaces a catalog item keyed by name.
func (r *mongoCatalogRepo) Upsert(ctx context.Context, item *models.PriceItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
		item.CreatedAt = time.Now()
	}
	item.UpdatedAt = time.Now()

	opts := options.Replace().SetUpsert(true)
	_, err := r.coll.ReplaceOne(ctx, bson.M{"name": item.Name}, item, opts)
	return err
}

// DeleteByID removes a catalog item.
func (r *mongoCatalogRepo) DeleteByID(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
