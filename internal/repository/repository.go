package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Paulcode2/tfawe-backend/internal/domain"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrDuplicateEmail    = errors.New("email already in use")
	ErrProductNotFound   = errors.New("product not found")
	ErrCartNotFound      = errors.New("cart not found")
	ErrOrderNotFound     = errors.New("order not found")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// UserRepository defines the interface for user data operations.
// Consumers define these interfaces, not the MongoDB implementations.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
}

// ProductFilter narrows a catalog listing. Zero values mean "no filter".
type ProductFilter struct {
	Category string
	Search   string // case-insensitive substring match on name
}

type ProductRepository interface {
	List(ctx context.Context, filter ProductFilter, page, limit int64) ([]domain.Product, int64, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Product, error)
	Create(ctx context.Context, product *domain.Product) error
	Update(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id primitive.ObjectID) error

	// DecrementStock atomically decrements stock by qty only when the
	// remaining stock stays non-negative; returns ErrInsufficientStock
	// when a concurrent checkout already consumed it.
	DecrementStock(ctx context.Context, id primitive.ObjectID, qty int) error
	// IncrementStock returns stock to the pool (checkout compensation).
	IncrementStock(ctx context.Context, id primitive.ObjectID, qty int) error
}

type CartRepository interface {
	Get(ctx context.Context, userID primitive.ObjectID) (*domain.Cart, error)
	Upsert(ctx context.Context, cart *domain.Cart) error
	AddItem(ctx context.Context, userID primitive.ObjectID, item domain.CartItem) error
	RemoveItem(ctx context.Context, userID, productID primitive.ObjectID) error
	Clear(ctx context.Context, userID primitive.ObjectID) error
}

type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Order, error)
	ListByUser(ctx context.Context, userID primitive.ObjectID) ([]domain.Order, error)
	ListAll(ctx context.Context) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status domain.OrderStatus) (*domain.Order, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}
