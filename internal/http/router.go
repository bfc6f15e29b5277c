package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Paulcode2/tfawe-backend/internal/auth"
)

// RouterConfig bundles everything the route tree needs.
type RouterConfig struct {
	Auth      *AuthHandler
	Products  *ProductHandler
	Cart      *CartHandler
	Orders    *OrderHandler
	Admin     *AdminHandler
	Uploads   *UploadHandler
	UploadDir string

	Tokens         *auth.TokenManager
	RateLimiter    *RateLimiter
	CORSOrigins    []string
	RequestTimeout time.Duration
}

func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(CorrelationID)
	r.Use(middleware.Timeout(cfg.RequestTimeout))
	r.Use(middleware.Compress(5))
	r.Use(CORS(cfg.CORSOrigins))
	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Middleware)
	}

	authenticate := auth.Authenticate(cfg.Tokens)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Uploaded product images
	fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadDir)))
	r.Get("/uploads/*", fileServer.ServeHTTP)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", cfg.Auth.Signup)
			r.Post("/login", cfg.Auth.Login)
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", cfg.Products.List)
			r.Get("/{id}", cfg.Products.GetByID)

			r.Group(func(r chi.Router) {
				r.Use(authenticate, auth.RequireAdmin)
				r.Post("/", cfg.Products.Create)
				r.Post("/upload", cfg.Uploads.Upload)
				r.Put("/{id}", cfg.Products.Update)
				r.Delete("/{id}", cfg.Products.Delete)
			})
		})

		r.Route("/cart", func(r chi.Router) {
			r.Use(authenticate)
			r.Get("/", cfg.Cart.Get)
			r.Post("/add", cfg.Cart.Add)
			r.Post("/remove", cfg.Cart.Remove)
			r.Post("/clear", cfg.Cart.Clear)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Use(authenticate)
			r.Post("/", cfg.Orders.Place)
			r.Get("/", cfg.Orders.ListMine)

			r.Group(func(r chi.Router) {
				r.Use(auth.RequireAdmin)
				r.Get("/admin/all", cfg.Orders.ListAll)
				r.Put("/{id}/status", cfg.Orders.UpdateStatus)
			})

			r.Get("/{id}", cfg.Orders.GetByID)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(authenticate, auth.RequireAdmin)
			r.Get("/users", cfg.Admin.ListUsers)
			r.Get("/orders", cfg.Admin.ListOrders)
		})
	})

	return r
}
