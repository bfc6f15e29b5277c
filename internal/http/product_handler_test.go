package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Paulcode2/tfawe-backend/internal/domain"
	"github.com/Paulcode2/tfawe-backend/internal/repository"
)

func TestListProductsHandler(t *testing.T) {
	handler := NewProductHandler(&stubProductService{
		list: func(_ context.Context, filter repository.ProductFilter, page, limit int64) ([]domain.Product, int64, error) {
			assert.Equal(t, "phones", filter.Category)
			assert.Equal(t, "pro", filter.Search)
			assert.Equal(t, int64(2), page)
			assert.Equal(t, int64(5), limit)
			return []domain.Product{{Name: "phone"}}, 11, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/products?category=phones&search=pro&page=2&limit=5", nil)
	rec := httptest.NewRecorder()
	handler.List(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total":11`)
}

func TestListProductsDefaultsPaging(t *testing.T) {
	handler := NewProductHandler(&stubProductService{
		list: func(_ context.Context, _ repository.ProductFilter, page, limit int64) ([]domain.Product, int64, error) {
			assert.Equal(t, int64(1), page)
			assert.Equal(t, int64(10), limit)
			return nil, 0, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/products?page=-3&limit=abc", nil)
	rec := httptest.NewRecorder()
	handler.List(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetProductHandler(t *testing.T) {
	id := primitive.NewObjectID()

	t.Run("found", func(t *testing.T) {
		handler := NewProductHandler(&stubProductService{
			getByID: func(_ context.Context, got primitive.ObjectID) (*domain.Product, error) {
				assert.Equal(t, id, got)
				return &domain.Product{ID: id, Name: "phone"}, nil
			},
		})

		req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/products/"+id.Hex(), nil), "id", id.Hex())
		rec := httptest.NewRecorder()
		handler.GetByID(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"name":"phone"`)
	})

	t.Run("not found", func(t *testing.T) {
		handler := NewProductHandler(&stubProductService{
			getByID: func(context.Context, primitive.ObjectID) (*domain.Product, error) {
				return nil, repository.ErrProductNotFound
			},
		})

		req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/products/"+id.Hex(), nil), "id", id.Hex())
		rec := httptest.NewRecorder()
		handler.GetByID(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"message":"Product not found"}`, rec.Body.String())
	})

	t.Run("malformed id", func(t *testing.T) {
		handler := NewProductHandler(&stubProductService{})

		req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/products/xyz", nil), "id", "xyz")
		rec := httptest.NewRecorder()
		handler.GetByID(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"message":"Invalid product ID"}`, rec.Body.String())
	})
}

func TestCreateProductHandler(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		var created *domain.Product
		handler := NewProductHandler(&stubProductService{
			create: func(_ context.Context, p *domain.Product) error {
				created = p
				return nil
			},
		})

		body := `{"name":"phone","price":599.99,"stock":10,"image":"phone.jpg","category":"phones"}`
		req := httptest.NewRequest(http.MethodPost, "/api/products", newBody(body))
		rec := httptest.NewRecorder()
		handler.Create(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		require.NotNil(t, created)
		assert.Equal(t, "phone", created.Name)
		assert.Equal(t, []string{"phone.jpg"}, created.Image, "single image string should normalize to a slice")
		assert.Equal(t, 10, created.Stock)
	})

	t.Run("image array accepted", func(t *testing.T) {
		var created *domain.Product
		handler := NewProductHandler(&stubProductService{
			create: func(_ context.Context, p *domain.Product) error {
				created = p
				return nil
			},
		})

		body := `{"name":"phone","price":599.99,"stock":10,"image":["a.jpg","b.jpg"]}`
		req := httptest.NewRequest(http.MethodPost, "/api/products", newBody(body))
		rec := httptest.NewRecorder()
		handler.Create(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		require.NotNil(t, created)
		assert.Equal(t, []string{"a.jpg", "b.jpg"}, created.Image)
	})

	t.Run("invalid payloads rejected", func(t *testing.T) {
		bodies := []string{
			`{"price":599.99,"stock":10}`,          // no name
			`{"name":"phone","stock":10}`,          // no price
			`{"name":"phone","price":599.99}`,      // no stock
			`{"name":"phone","price":-1,"stock":10}`,
			`{"name":"phone","price":599.99,"stock":-1}`,
		}
		handler := NewProductHandler(&stubProductService{})

		for _, body := range bodies {
			req := httptest.NewRequest(http.MethodPost, "/api/products", newBody(body))
			rec := httptest.NewRecorder()
			handler.Create(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code, "body: %s", body)
			assert.JSONEq(t, `{"message":"Missing required fields or invalid stock value"}`, rec.Body.String())
		}
	})

	t.Run("zero price and zero stock allowed", func(t *testing.T) {
		handler := NewProductHandler(&stubProductService{
			create: func(context.Context, *domain.Product) error { return nil },
		})

		req := httptest.NewRequest(http.MethodPost, "/api/products", newBody(`{"name":"freebie","price":0,"stock":0}`))
		rec := httptest.NewRecorder()
		handler.Create(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})
}

func TestUpdateProductHandler(t *testing.T) {
	id := primitive.NewObjectID()
	handler := NewProductHandler(&stubProductService{
		update: func(_ context.Context, p *domain.Product) (*domain.Product, error) {
			assert.Equal(t, id, p.ID)
			return p, nil
		},
	})

	body := `{"name":"phone","price":549.99,"stock":8}`
	req := withURLParam(httptest.NewRequest(http.MethodPut, "/api/products/"+id.Hex(), newBody(body)), "id", id.Hex())
	rec := httptest.NewRecorder()
	handler.Update(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"price":549.99`)
}

func TestDeleteProductHandler(t *testing.T) {
	id := primitive.NewObjectID()
	handler := NewProductHandler(&stubProductService{
		remove: func(_ context.Context, got primitive.ObjectID) error {
			assert.Equal(t, id, got)
			return nil
		},
	})

	req := withURLParam(httptest.NewRequest(http.MethodDelete, "/api/products/"+id.Hex(), nil), "id", id.Hex())
	rec := httptest.NewRecorder()
	handler.Delete(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Product deleted"}`, rec.Body.String())
}
