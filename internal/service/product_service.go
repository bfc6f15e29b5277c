package service

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/singleflight"

	"github.com/Paulcode2/tfawe-backend/internal/cache"
	"github.com/Paulcode2/tfawe-backend/internal/domain"
	"github.com/Paulcode2/tfawe-backend/internal/repository"
)

type ProductService struct {
	repo  repository.ProductRepository
	cache cache.ProductCache
	sfg   singleflight.Group // Prevents cache stampede
}

func NewProductService(repo repository.ProductRepository, cache cache.ProductCache) *ProductService {
	return &ProductService{
		repo:  repo,
		cache: cache,
	}
}

func (s *ProductService) List(ctx context.Context, filter repository.ProductFilter, page, limit int64) ([]domain.Product, int64, error) {
	products, total, err := s.repo.List(ctx, filter, page, limit)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing products")
		return nil, 0, err
	}

	return products, total, nil
}

func (s *ProductService) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Product, error) {
	// Use singleflight to prevent multiple concurrent cache misses for same key
	v, err, _ := s.sfg.Do(id.Hex(), func() (interface{}, error) {
		product, err := s.cache.Get(ctx, id)
		if err == nil {
			return product, nil // product is in cache
		}

		if !errors.Is(err, cache.ErrCacheMiss) {
			logger.Warn().Err(err).Msg("cache get error") // log cache error but continue
		}

		product, errGet := s.repo.GetByID(ctx, id)
		if errGet != nil {
			return nil, errGet
		}

		// set cache
		go func() {
			if errSet := s.cache.Set(context.Background(), product); errSet != nil {
				logger.Warn().Err(errSet).Msg("cache set error")
			}
		}()

		return product, nil
	})

	if err != nil {
		return nil, err
	}

	return v.(*domain.Product), nil
}

func (s *ProductService) Create(ctx context.Context, product *domain.Product) error {
	if err := s.repo.Create(ctx, product); err != nil {
		logger.Error().Err(err).Msg("Error creating product")
		return err
	}

	return nil
}

func (s *ProductService) Update(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	updated, err := s.repo.Update(ctx, product)
	if err != nil {
		if !errors.Is(err, repository.ErrProductNotFound) {
			logger.Error().Err(err).Msg("Error updating product")
		}
		return nil, err
	}

	s.invalidateCache(product.ID)
	return updated, nil
}

func (s *ProductService) Delete(ctx context.Context, id primitive.ObjectID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if !errors.Is(err, repository.ErrProductNotFound) {
			logger.Error().Err(err).Msg("Error deleting product")
		}
		return err
	}

	s.invalidateCache(id)
	return nil
}

func (s *ProductService) invalidateCache(id primitive.ObjectID) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := s.cache.Delete(ctx, id); err != nil {
		logger.Warn().Err(err).Msg("cache invalidate error")
	}
}
