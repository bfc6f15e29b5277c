package cache

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Paulcode2/tfawe-backend/internal/domain"
)

type ProductCache interface {
	Get(ctx context.Context, id primitive.ObjectID) (*domain.Product, error)
	Set(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

var ErrCacheMiss = errors.New("cache miss")
