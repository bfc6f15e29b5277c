package http

import "net/http"

// AdminHandler backs the admin panel's listings. Route-level RequireAdmin
// guards every endpoint here.
type AdminHandler struct {
	authService  AuthService
	orderService OrderService
}

func NewAdminHandler(authService AuthService, orderService OrderService) *AdminHandler {
	return &AdminHandler{authService: authService, orderService: orderService}
}

func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.authService.ListUsers(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, users)
}

func (h *AdminHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderService.ListAll(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, orders)
}
