package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Paulcode2/tfawe-backend/internal/auth"
	"github.com/Paulcode2/tfawe-backend/internal/domain"
	"github.com/Paulcode2/tfawe-backend/internal/repository"
	"github.com/Paulcode2/tfawe-backend/internal/service"
)

// Function-backed stubs for the handler-side service interfaces. A nil
// field means the test does not expect that call.

type stubAuthService struct {
	signup    func(ctx context.Context, name, email, password string) error
	login     func(ctx context.Context, email, password string) (string, error)
	listUsers func(ctx context.Context) ([]domain.User, error)
}

func (s *stubAuthService) Signup(ctx context.Context, name, email, password string) error {
	return s.signup(ctx, name, email, password)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, error) {
	return s.login(ctx, email, password)
}

func (s *stubAuthService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.listUsers(ctx)
}

type stubProductService struct {
	list    func(ctx context.Context, filter repository.ProductFilter, page, limit int64) ([]domain.Product, int64, error)
	getByID func(ctx context.Context, id primitive.ObjectID) (*domain.Product, error)
	create  func(ctx context.Context, product *domain.Product) error
	update  func(ctx context.Context, product *domain.Product) (*domain.Product, error)
	remove  func(ctx context.Context, id primitive.ObjectID) error
}

func (s *stubProductService) List(ctx context.Context, filter repository.ProductFilter, page, limit int64) ([]domain.Product, int64, error) {
	return s.list(ctx, filter, page, limit)
}

func (s *stubProductService) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Product, error) {
	return s.getByID(ctx, id)
}

func (s *stubProductService) Create(ctx context.Context, product *domain.Product) error {
	return s.create(ctx, product)
}

func (s *stubProductService) Update(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	return s.update(ctx, product)
}

func (s *stubProductService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.remove(ctx, id)
}

type stubCartService struct {
	get    func(ctx context.Context, userID primitive.ObjectID) (*domain.Cart, error)
	add    func(ctx context.Context, userID, productID primitive.ObjectID, quantity int) (*domain.Cart, error)
	remove func(ctx context.Context, userID, productID primitive.ObjectID) (*domain.Cart, error)
	clear  func(ctx context.Context, userID primitive.ObjectID) (*domain.Cart, error)
}

func (s *stubCartService) Get(ctx context.Context, userID primitive.ObjectID) (*domain.Cart, error) {
	return s.get(ctx, userID)
}

func (s *stubCartService) Add(ctx context.Context, userID, productID primitive.ObjectID, quantity int) (*domain.Cart, error) {
	return s.add(ctx, userID, productID, quantity)
}

func (s *stubCartService) Remove(ctx context.Context, userID, productID primitive.ObjectID) (*domain.Cart, error) {
	return s.remove(ctx, userID, productID)
}

func (s *stubCartService) Clear(ctx context.Context, userID primitive.ObjectID) (*domain.Cart, error) {
	return s.clear(ctx, userID)
}

type stubOrderService struct {
	place        func(ctx context.Context, userID primitive.ObjectID, req service.PlaceOrderRequest) (*domain.Order, error)
	listByUser   func(ctx context.Context, userID primitive.ObjectID) ([]domain.Order, error)
	getByID      func(ctx context.Context, id primitive.ObjectID, ident *auth.Identity) (*domain.Order, error)
	listAll      func(ctx context.Context) ([]domain.Order, error)
	updateStatus func(ctx context.Context, id primitive.ObjectID, status domain.OrderStatus) (*domain.Order, error)
}

func (s *stubOrderService) Place(ctx context.Context, userID primitive.ObjectID, req service.PlaceOrderRequest) (*domain.Order, error) {
	return s.place(ctx, userID, req)
}

func (s *stubOrderService) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]domain.Order, error) {
	return s.listByUser(ctx, userID)
}

func (s *stubOrderService) GetByID(ctx context.Context, id primitive.ObjectID, ident *auth.Identity) (*domain.Order, error) {
	return s.getByID(ctx, id, ident)
}

func (s *stubOrderService) ListAll(ctx context.Context) ([]domain.Order, error) {
	return s.listAll(ctx)
}

func (s *stubOrderService) UpdateStatus(ctx context.Context, id primitive.ObjectID, status domain.OrderStatus) (*domain.Order, error) {
	return s.updateStatus(ctx, id, status)
}

func newBody(s string) *strings.Reader {
	return strings.NewReader(s)
}

// withURLParam injects a chi route parameter the way the router would.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func authenticatedRequest(method, target, body string, ident *auth.Identity) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, newBody(body))
	}
	if ident != nil {
		req = req.WithContext(auth.WithIdentity(req.Context(), ident))
	}
	return req
}
