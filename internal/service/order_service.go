package service

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Paulcode2/tfawe-backend/internal/auth"
	"github.com/Paulcode2/tfawe-backend/internal/cache"
	"github.com/Paulcode2/tfawe-backend/internal/domain"
	"github.com/Paulcode2/tfawe-backend/internal/repository"
)

// OrderEvents receives order lifecycle notifications. Publishing is best
// effort; failures never fail the checkout.
type OrderEvents interface {
	OrderCreated(ctx context.Context, order *domain.Order)
	OrderStatusUpdated(ctx context.Context, order *domain.Order)
}

// OrderItemRequest is one requested line of a checkout.
type OrderItemRequest struct {
	ProductID primitive.ObjectID
	Quantity  int
}

// PlaceOrderRequest carries everything the checkout needs beyond the
// authenticated caller's id.
type PlaceOrderRequest struct {
	Items           []OrderItemRequest
	ShippingAddress string
	PaymentMethod   string
}

// OrderService runs the checkout workflow: validate and price the requested
// items against live products, persist the order, then apply side effects
// (atomic stock decrements, cart reset). A failed decrement compensates by
// restoring already-deducted stock and deleting the order, so no partially
// applied checkout survives.
type OrderService struct {
	orders   repository.OrderRepository
	products repository.ProductRepository
	carts    repository.CartRepository
	cache    cache.ProductCache
	payments PaymentProvider
	events   OrderEvents
}

func NewOrderService(
	orders repository.OrderRepository,
	products repository.ProductRepository,
	carts repository.CartRepository,
	productCache cache.ProductCache,
	payments PaymentProvider,
	events OrderEvents,
) *OrderService {
	return &OrderService{
		orders:   orders,
		products: products,
		carts:    carts,
		cache:    productCache,
		payments: payments,
		events:   events,
	}
}

func (s *OrderService) Place(ctx context.Context, userID primitive.ObjectID, req PlaceOrderRequest) (*domain.Order, error) {
	if len(req.Items) == 0 {
		return nil, ErrNoItems
	}
	if req.ShippingAddress == "" || req.PaymentMethod == "" {
		return nil, ErrMissingCheckoutFields
	}

	// Validate and price every line before any mutation. The stock read here
	// is advisory; the authoritative check is the conditional decrement below.
	items := make([]domain.OrderItem, 0, len(req.Items))
	var total float64
	for _, reqItem := range req.Items {
		if reqItem.Quantity < 1 {
			return nil, ErrInvalidQuantity
		}

		product, err := s.products.GetByID(ctx, reqItem.ProductID)
		if err != nil {
			if !errors.Is(err, repository.ErrProductNotFound) {
				logger.Error().Err(err).Msgf("Error looking up product %s", reqItem.ProductID.Hex())
			}
			return nil, err
		}

		if product.Stock < reqItem.Quantity {
			return nil, &InsufficientStockError{ProductName: product.Name, Available: product.Stock}
		}

		items = append(items, domain.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Quantity:  reqItem.Quantity,
			Image:     product.PrimaryImage(),
		})
		total += product.Price * float64(reqItem.Quantity)
	}

	paymentStatus, err := s.payments.Confirm(ctx, req.PaymentMethod, total)
	if err != nil {
		logger.Error().Err(err).Msg("Error confirming payment")
		return nil, err
	}

	order := &domain.Order{
		UserID:          userID,
		Items:           items,
		TotalAmount:     total,
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   req.PaymentMethod,
		PaymentStatus:   paymentStatus,
		Status:          domain.OrderProcessing,
	}

	if err := s.orders.Create(ctx, order); err != nil {
		logger.Error().Err(err).Msg("Error creating order")
		return nil, err
	}

	// Deduct inventory with a compare-and-decrement per line. A concurrent
	// checkout that drained the stock first makes the decrement fail, and
	// the whole order is compensated away.
	applied := make([]domain.OrderItem, 0, len(items))
	for _, item := range items {
		if err := s.products.DecrementStock(ctx, item.ProductID, item.Quantity); err != nil {
			s.compensate(order, applied)

			if errors.Is(err, repository.ErrInsufficientStock) {
				available := 0
				if p, readErr := s.products.GetByID(ctx, item.ProductID); readErr == nil {
					available = p.Stock
				}
				return nil, &InsufficientStockError{ProductName: item.Name, Available: available}
			}
			logger.Error().Err(err).Msgf("Error decrementing stock for product %s", item.ProductID.Hex())
			return nil, err
		}
		applied = append(applied, item)
		s.invalidateProduct(item.ProductID)
	}

	if err := s.carts.Clear(ctx, userID); err != nil && !errors.Is(err, repository.ErrCartNotFound) {
		// Order and inventory are already committed; an unreset cart is
		// recoverable by the user, so log and keep the order.
		logger.Warn().Err(err).Msgf("Error clearing cart for user %s", userID.Hex())
	}

	if s.events != nil {
		s.events.OrderCreated(ctx, order)
	}

	return order, nil
}

// compensate restores stock for already-decremented lines and removes the
// order document, rolling the checkout back to its pre-mutation state.
func (s *OrderService) compensate(order *domain.Order, applied []domain.OrderItem) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	for _, item := range applied {
		if err := s.products.IncrementStock(ctx, item.ProductID, item.Quantity); err != nil {
			logger.Error().Err(err).Msgf("Compensation failed to restore stock for product %s", item.ProductID.Hex())
		}
		s.invalidateProduct(item.ProductID)
	}

	if err := s.orders.Delete(ctx, order.ID); err != nil {
		logger.Error().Err(err).Msgf("Compensation failed to delete order %s", order.ID.Hex())
	}
}

func (s *OrderService) invalidateProduct(id primitive.ObjectID) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := s.cache.Delete(ctx, id); err != nil {
		logger.Warn().Err(err).Msg("cache invalidate error")
	}
}

func (s *OrderService) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]domain.Order, error) {
	orders, err := s.orders.ListByUser(ctx, userID)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing orders")
		return nil, err
	}

	return orders, nil
}

// GetByID enforces ownership: a non-admin caller may only read their own
// orders.
func (s *OrderService) GetByID(ctx context.Context, id primitive.ObjectID, ident *auth.Identity) (*domain.Order, error) {
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, repository.ErrOrderNotFound) {
			logger.Error().Err(err).Msg("Error getting order")
		}
		return nil, err
	}

	if order.UserID != ident.UserID && !ident.IsAdmin {
		return nil, ErrAccessDenied
	}

	return order, nil
}

func (s *OrderService) ListAll(ctx context.Context) ([]domain.Order, error) {
	orders, err := s.orders.ListAll(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing all orders")
		return nil, err
	}

	return orders, nil
}

func (s *OrderService) UpdateStatus(ctx context.Context, id primitive.ObjectID, status domain.OrderStatus) (*domain.Order, error) {
	if !domain.ValidOrderStatus(status) {
		return nil, ErrInvalidOrderStatus
	}

	order, err := s.orders.UpdateStatus(ctx, id, status)
	if err != nil {
		if !errors.Is(err, repository.ErrOrderNotFound) {
			logger.Error().Err(err).Msg("Error updating order status")
		}
		return nil, err
	}

	if s.events != nil {
		s.events.OrderStatusUpdated(ctx, order)
	}

	return order, nil
}
