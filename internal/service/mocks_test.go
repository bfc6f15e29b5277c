package service

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Paulcode2/tfawe-backend/internal/cache"
	"github.com/Paulcode2/tfawe-backend/internal/domain"
	"github.com/Paulcode2/tfawe-backend/internal/repository"
)

type mockProductRepo struct {
	m        sync.Mutex
	products map[primitive.ObjectID]*domain.Product
	err      error
}

func newMockProductRepo(products ...*domain.Product) *mockProductRepo {
	repo := &mockProductRepo{products: make(map[primitive.ObjectID]*domain.Product)}
	for _, p := range products {
		repo.products[p.ID] = p
	}
	return repo
}

func (m *mockProductRepo) List(context.Context, repository.ProductFilter, int64, int64) ([]domain.Product, int64, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return nil, 0, m.err
	}
	out := make([]domain.Product, 0, len(m.products))
	for _, p := range m.products {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (m *mockProductRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Product, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	p, ok := m.products[id]
	if !ok {
		return nil, repository.ErrProductNotFound
	}
	copied := *p
	return &copied, nil
}

func (m *mockProductRepo) Create(_ context.Context, product *domain.Product) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return m.err
	}
	if product.ID.IsZero() {
		product.ID = primitive.NewObjectID()
	}
	m.products[product.ID] = product
	return nil
}

func (m *mockProductRepo) Update(_ context.Context, product *domain.Product) (*domain.Product, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	if _, ok := m.products[product.ID]; !ok {
		return nil, repository.ErrProductNotFound
	}
	m.products[product.ID] = product
	return product, nil
}

func (m *mockProductRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return m.err
	}
	if _, ok := m.products[id]; !ok {
		return repository.ErrProductNotFound
	}
	delete(m.products, id)
	return nil
}

// DecrementStock mirrors the conditional atomic update the Mongo
// implementation performs: check and decrement under one lock.
func (m *mockProductRepo) DecrementStock(_ context.Context, id primitive.ObjectID, qty int) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return m.err
	}
	p, ok := m.products[id]
	if !ok {
		return repository.ErrProductNotFound
	}
	if p.Stock < qty {
		return repository.ErrInsufficientStock
	}
	p.Stock -= qty
	return nil
}

func (m *mockProductRepo) IncrementStock(_ context.Context, id primitive.ObjectID, qty int) error {
	m.m.Lock()
	defer m.m.Unlock()
	p, ok := m.products[id]
	if !ok {
		return repository.ErrProductNotFound
	}
	p.Stock += qty
	return nil
}

func (m *mockProductRepo) stock(id primitive.ObjectID) int {
	m.m.Lock()
	defer m.m.Unlock()
	return m.products[id].Stock
}

type mockOrderRepo struct {
	m         sync.Mutex
	orders    map[primitive.ObjectID]*domain.Order
	createErr error
	err       error
}

func newMockOrderRepo() *mockOrderRepo {
	return &mockOrderRepo{orders: make(map[primitive.ObjectID]*domain.Order)}
}

func (m *mockOrderRepo) Create(_ context.Context, order *domain.Order) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.createErr != nil {
		return m.createErr
	}
	order.ID = primitive.NewObjectID()
	copied := *order
	m.orders[order.ID] = &copied
	return nil
}

func (m *mockOrderRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Order, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	o, ok := m.orders[id]
	if !ok {
		return nil, repository.ErrOrderNotFound
	}
	copied := *o
	return &copied, nil
}

func (m *mockOrderRepo) ListByUser(_ context.Context, userID primitive.ObjectID) ([]domain.Order, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	out := []domain.Order{}
	for _, o := range m.orders {
		if o.UserID == userID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (m *mockOrderRepo) ListAll(context.Context) ([]domain.Order, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	out := []domain.Order{}
	for _, o := range m.orders {
		out = append(out, *o)
	}
	return out, nil
}

func (m *mockOrderRepo) UpdateStatus(_ context.Context, id primitive.ObjectID, status domain.OrderStatus) (*domain.Order, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	o, ok := m.orders[id]
	if !ok {
		return nil, repository.ErrOrderNotFound
	}
	o.Status = status
	copied := *o
	return &copied, nil
}

func (m *mockOrderRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	m.m.Lock()
	defer m.m.Unlock()
	if _, ok := m.orders[id]; !ok {
		return repository.ErrOrderNotFound
	}
	delete(m.orders, id)
	return nil
}

func (m *mockOrderRepo) count() int {
	m.m.Lock()
	defer m.m.Unlock()
	return len(m.orders)
}

type mockCartRepo struct {
	m     sync.Mutex
	carts map[primitive.ObjectID]*domain.Cart
	err   error
}

func newMockCartRepo() *mockCartRepo {
	return &mockCartRepo{carts: make(map[primitive.ObjectID]*domain.Cart)}
}

func (m *mockCartRepo) Get(_ context.Context, userID primitive.ObjectID) (*domain.Cart, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	c, ok := m.carts[userID]
	if !ok {
		return nil, repository.ErrCartNotFound
	}
	copied := *c
	return &copied, nil
}

func (m *mockCartRepo) Upsert(_ context.Context, cart *domain.Cart) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return m.err
	}
	copied := *cart
	m.carts[cart.UserID] = &copied
	return nil
}

func (m *mockCartRepo) AddItem(_ context.Context, userID primitive.ObjectID, item domain.CartItem) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return m.err
	}
	c, ok := m.carts[userID]
	if !ok {
		c = &domain.Cart{UserID: userID}
		m.carts[userID] = c
	}
	for i := range c.Items {
		if c.Items[i].ProductID == item.ProductID {
			c.Items[i].Quantity += item.Quantity
			return nil
		}
	}
	c.Items = append(c.Items, item)
	return nil
}

func (m *mockCartRepo) RemoveItem(_ context.Context, userID, productID primitive.ObjectID) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return m.err
	}
	c, ok := m.carts[userID]
	if !ok {
		return repository.ErrCartNotFound
	}
	for i, item := range c.Items {
		if item.ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *mockCartRepo) Clear(_ context.Context, userID primitive.ObjectID) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return m.err
	}
	c, ok := m.carts[userID]
	if !ok {
		return repository.ErrCartNotFound
	}
	c.Items = []domain.CartItem{}
	return nil
}

func (m *mockCartRepo) items(userID primitive.ObjectID) []domain.CartItem {
	m.m.Lock()
	defer m.m.Unlock()
	if c, ok := m.carts[userID]; ok {
		return append([]domain.CartItem{}, c.Items...)
	}
	return nil
}

type mockUserRepo struct {
	m     sync.Mutex
	users map[string]*domain.User // keyed by email
	err   error
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*domain.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *domain.User) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return m.err
	}
	if _, ok := m.users[user.Email]; ok {
		return repository.ErrDuplicateEmail
	}
	user.ID = primitive.NewObjectID()
	copied := *user
	m.users[user.Email] = &copied
	return nil
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	u, ok := m.users[email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.User, error) {
	m.m.Lock()
	defer m.m.Unlock()
	for _, u := range m.users {
		if u.ID == id {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (m *mockUserRepo) List(context.Context) ([]domain.User, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	out := []domain.User{}
	for _, u := range m.users {
		out = append(out, *u)
	}
	return out, nil
}

type mockProductCache struct {
	m        sync.Mutex
	products map[primitive.ObjectID]*domain.Product
	err      error
}

func newMockProductCache() *mockProductCache {
	return &mockProductCache{products: make(map[primitive.ObjectID]*domain.Product)}
}

func (m *mockProductCache) Get(_ context.Context, id primitive.ObjectID) (*domain.Product, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	p, ok := m.products[id]
	if !ok {
		return nil, cache.ErrCacheMiss
	}
	return p, nil
}

func (m *mockProductCache) Set(_ context.Context, product *domain.Product) error {
	m.m.Lock()
	defer m.m.Unlock()
	m.products[product.ID] = product
	return m.err
}

func (m *mockProductCache) Delete(_ context.Context, id primitive.ObjectID) error {
	m.m.Lock()
	defer m.m.Unlock()
	delete(m.products, id)
	return m.err
}

func (m *mockProductCache) cached(id primitive.ObjectID) *domain.Product {
	m.m.Lock()
	defer m.m.Unlock()
	return m.products[id]
}

type mockEvents struct {
	m       sync.Mutex
	created []primitive.ObjectID
	updated []primitive.ObjectID
}

func (m *mockEvents) OrderCreated(_ context.Context, order *domain.Order) {
	m.m.Lock()
	defer m.m.Unlock()
	m.created = append(m.created, order.ID)
}

func (m *mockEvents) OrderStatusUpdated(_ context.Context, order *domain.Order) {
	m.m.Lock()
	defer m.m.Unlock()
	m.updated = append(m.updated, order.ID)
}
