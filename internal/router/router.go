package router

import (
	"net/http"

	"storefront/internal/handler"
	"storefront/internal/middleware"

	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
// Routes match the storefront UI: product and cart mutations are POSTs and
// listing endpoints are GETs.
func New(
	productHandler *handler.ProductHandler,
	cartHandler *handler.CartHandler,
	orderHandler *handler.OrderHandler,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	mux.HandleFunc("/products", productHandler.List)
	mux.HandleFunc("/product", productHandler.Create)

	mux.HandleFunc("/cart", cartHandler.List)
	mux.HandleFunc("/cart/add", cartHandler.Add)
	mux.HandleFunc("/cart/remove", cartHandler.Remove)

	mux.HandleFunc("/order", orderHandler.Place)

	// Apply middleware in order: Recovery -> Logging -> CORS
	var h http.Handler = mux
	h = middleware.CORS(h)
	h = middleware.Logging(logger)(h)
	h = middleware.Recovery(logger)(h)

	return h
}
