package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Paulcode2/tfawe-backend/internal/domain"
	"github.com/Paulcode2/tfawe-backend/internal/repository"
)

type ProductHandler struct {
	productService ProductService
}

func NewProductHandler(productService ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// imageList accepts either a single string or an array of strings, so a
// client posting `"image": "a.jpg"` still ends up with a normalized slice.
type imageList []string

func (l *imageList) UnmarshalJSON(data []byte) error {
	var many []string
	if err := json.Unmarshal(data, &many); err == nil {
		*l = many
		return nil
	}

	var one string
	if err := json.Unmarshal(data, &one); err != nil {
		return err
	}
	*l = []string{one}
	return nil
}

type productRequestDTO struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       *float64  `json:"price"`
	Image       imageList `json:"image"`
	Stock       *int      `json:"stock"`
	Category    string    `json:"category"`
	SubCategory string    `json:"subCategory"`
	Accessories bool      `json:"accessories"`
	Bestseller  bool      `json:"bestseller"`
}

func (req *productRequestDTO) validate() bool {
	return req.Name != "" &&
		req.Price != nil && *req.Price >= 0 &&
		req.Stock != nil && *req.Stock >= 0
}

func (req *productRequestDTO) toDomain() *domain.Product {
	image := []string(req.Image)
	if image == nil {
		image = []string{}
	}
	return &domain.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		Image:       image,
		Stock:       *req.Stock,
		Category:    req.Category,
		SubCategory: req.SubCategory,
		Accessories: req.Accessories,
		Bestseller:  req.Bestseller,
	}
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	page := parseQueryInt(query.Get("page"), 1)
	limit := parseQueryInt(query.Get("limit"), 10)

	filter := repository.ProductFilter{
		Category: query.Get("category"),
		Search:   query.Get("search"),
	}

	products, total, err := h.productService.List(r.Context(), filter, page, limit)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"products": products,
		"total":    total,
	})
}

func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	product, err := h.productService.GetByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, product)
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req productRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if !req.validate() {
		respondMessage(w, http.StatusBadRequest, "Missing required fields or invalid stock value")
		return
	}

	product := req.toDomain()
	if err := h.productService.Create(r.Context(), product); err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, product)
}

func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	var req productRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if !req.validate() {
		respondMessage(w, http.StatusBadRequest, "Missing required fields or invalid stock value")
		return
	}

	product := req.toDomain()
	product.ID = id

	updated, err := h.productService.Update(r.Context(), product)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, updated)
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	if err := h.productService.Delete(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}

	respondMessage(w, http.StatusOK, "Product deleted")
}

func parseQueryInt(value string, fallback int64) int64 {
	if value == "" {
		return fallback
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
