package http

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Paulcode2/tfawe-backend/internal/auth"
	"github.com/Paulcode2/tfawe-backend/internal/domain"
	"github.com/Paulcode2/tfawe-backend/internal/repository"
	"github.com/Paulcode2/tfawe-backend/internal/service"
)

// Handler-side views of the services. The handlers define what they
// consume, which keeps them testable against small mocks.

type AuthService interface {
	Signup(ctx context.Context, name, email, password string) error
	Login(ctx context.Context, email, password string) (string, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
}

type ProductService interface {
	List(ctx context.Context, filter repository.ProductFilter, page, limit int64) ([]domain.Product, int64, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Product, error)
	Create(ctx context.Context, product *domain.Product) error
	Update(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type CartService interface {
	Get(ctx context.Context, userID primitive.ObjectID) (*domain.Cart, error)
	Add(ctx context.Context, userID, productID primitive.ObjectID, quantity int) (*domain.Cart, error)
	Remove(ctx context.Context, userID, productID primitive.ObjectID) (*domain.Cart, error)
	Clear(ctx context.Context, userID primitive.ObjectID) (*domain.Cart, error)
}

type OrderService interface {
	Place(ctx context.Context, userID primitive.ObjectID, req service.PlaceOrderRequest) (*domain.Order, error)
	ListByUser(ctx context.Context, userID primitive.ObjectID) ([]domain.Order, error)
	GetByID(ctx context.Context, id primitive.ObjectID, ident *auth.Identity) (*domain.Order, error)
	ListAll(ctx context.Context) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status domain.OrderStatus) (*domain.Order, error)
}
