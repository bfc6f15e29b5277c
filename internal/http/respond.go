package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/Paulcode2/tfawe-backend/internal/repository"
	"github.com/Paulcode2/tfawe-backend/internal/service"
)

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func respondMessage(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"message": message})
}

// respondServiceError maps an error coming out of the service layer to the
// HTTP taxonomy. Nothing crosses this boundary unmapped: anything unknown
// becomes an opaque 500.
func respondServiceError(w http.ResponseWriter, err error) {
	var stockErr *service.InsufficientStockError

	switch {
	case errors.As(err, &stockErr):
		respondMessage(w, http.StatusBadRequest,
			fmt.Sprintf("Insufficient stock for %s. Available: %d", stockErr.ProductName, stockErr.Available))

	case errors.Is(err, service.ErrMissingSignupFields):
		respondMessage(w, http.StatusBadRequest, "Name, email and password required")
	case errors.Is(err, service.ErrMissingLoginFields):
		respondMessage(w, http.StatusBadRequest, "Email and password required")
	case errors.Is(err, service.ErrNoItems):
		respondMessage(w, http.StatusBadRequest, "No items in order")
	case errors.Is(err, service.ErrMissingCheckoutFields):
		respondMessage(w, http.StatusBadRequest, "Shipping address and payment method required")
	case errors.Is(err, service.ErrInvalidQuantity):
		respondMessage(w, http.StatusBadRequest, "Quantity must be at least 1")
	case errors.Is(err, service.ErrProductUnavailable):
		respondMessage(w, http.StatusBadRequest, "Product unavailable or insufficient stock")
	case errors.Is(err, service.ErrInvalidOrderStatus):
		respondMessage(w, http.StatusBadRequest, "Invalid order status")

	case errors.Is(err, service.ErrInvalidCredentials):
		respondMessage(w, http.StatusUnauthorized, "Invalid credentials")

	case errors.Is(err, service.ErrAccessDenied):
		respondMessage(w, http.StatusForbidden, "Access denied")

	case errors.Is(err, repository.ErrProductNotFound):
		respondMessage(w, http.StatusNotFound, "Product not found")
	case errors.Is(err, repository.ErrOrderNotFound):
		respondMessage(w, http.StatusNotFound, "Order not found")
	case errors.Is(err, repository.ErrCartNotFound):
		respondMessage(w, http.StatusNotFound, "Cart not found")
	case errors.Is(err, repository.ErrUserNotFound):
		respondMessage(w, http.StatusNotFound, "User not found")

	case errors.Is(err, repository.ErrDuplicateEmail):
		respondMessage(w, http.StatusConflict, "Email already in use")

	default:
		respondMessage(w, http.StatusInternalServerError, "Internal server error")
	}
}
