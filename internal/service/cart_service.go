package service

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Paulcode2/tfawe-backend/internal/domain"
	"github.com/Paulcode2/tfawe-backend/internal/repository"
)

// CartService mutates the per-user item list. Every operation is keyed by
// the authenticated caller's own id; no cart is addressable by another user.
type CartService struct {
	carts    repository.CartRepository
	products repository.ProductRepository
}

func NewCartService(carts repository.CartRepository, products repository.ProductRepository) *CartService {
	return &CartService{carts: carts, products: products}
}

// Get returns the user's cart, creating an empty one on first access.
func (s *CartService) Get(ctx context.Context, userID primitive.ObjectID) (*domain.Cart, error) {
	cart, err := s.carts.Get(ctx, userID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, repository.ErrCartNotFound) {
		logger.Error().Err(err).Msg("Error getting cart")
		return nil, err
	}

	cart = &domain.Cart{UserID: userID, Items: []domain.CartItem{}}
	if err := s.carts.Upsert(ctx, cart); err != nil {
		logger.Error().Err(err).Msg("Error creating cart")
		return nil, err
	}

	return cart, nil
}

func (s *CartService) Add(ctx context.Context, userID, productID primitive.ObjectID, quantity int) (*domain.Cart, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, ErrProductUnavailable
		}
		logger.Error().Err(err).Msg("Error looking up product")
		return nil, err
	}
	if product.Stock < quantity {
		return nil, ErrProductUnavailable
	}

	item := domain.CartItem{ProductID: productID, Quantity: quantity}
	if err := s.carts.AddItem(ctx, userID, item); err != nil {
		logger.Error().Err(err).Msg("Error adding cart item")
		return nil, err
	}

	return s.carts.Get(ctx, userID)
}

// Remove deletes the matching line if present; removing an absent product
// is a no-op on the line list.
func (s *CartService) Remove(ctx context.Context, userID, productID primitive.ObjectID) (*domain.Cart, error) {
	if err := s.carts.RemoveItem(ctx, userID, productID); err != nil {
		if !errors.Is(err, repository.ErrCartNotFound) {
			logger.Error().Err(err).Msg("Error removing cart item")
		}
		return nil, err
	}

	return s.carts.Get(ctx, userID)
}

func (s *CartService) Clear(ctx context.Context, userID primitive.ObjectID) (*domain.Cart, error) {
	if err := s.carts.Clear(ctx, userID); err != nil {
		if !errors.Is(err, repository.ErrCartNotFound) {
			logger.Error().Err(err).Msg("Error clearing cart")
		}
		return nil, err
	}

	return s.carts.Get(ctx, userID)
}
