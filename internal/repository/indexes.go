package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
)

// EnsureIndexes creates the indexes every collection relies on: the unique
// email index backing signup's Conflict semantics, the unique per-user cart
// index, and the catalog/order query indexes.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexed := []interface{ CreateIndexes(context.Context) error }{
		&mongoUserRepository{collection: db.Collection("users")},
		&mongoProductRepository{collection: db.Collection("products")},
		&mongoCartRepository{collection: db.Collection("carts")},
		&mongoOrderRepository{collection: db.Collection("orders")},
	}

	for _, repo := range indexed {
		if err := repo.CreateIndexes(ctx); err != nil {
			return err
		}
	}

	return nil
}
