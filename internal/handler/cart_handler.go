package handler

import (
	"encoding/json"
	"net/http"

	"storefront/internal/model"
	"storefront/internal/service"

	"github.com/rs/zerolog"
)

// CartHandler handles cart HTTP requests.
type CartHandler struct {
	service service.CartService
	logger  zerolog.Logger
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(service service.CartService, logger zerolog.Logger) *CartHandler {
	return &CartHandler{
		service: service,
		logger:  logger.With().Str("handler", "cart").Logger(),
	}
}

// Add handles POST /cart/add requests. On success the matched catalogue
// records are returned so the client can refresh its copy of the product.
func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, model.ErrKindValidation, "method not allowed", h.logger)
		return
	}

	var req model.AddToCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrKindValidation, "invalid request body", h.logger)
		return
	}

	products, err := h.service.Add(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, products)
}

// Remove handles POST /cart/remove requests. With ?all=true the whole cart
// is cleared and the body is ignored.
func (h *CartHandler) Remove(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, model.ErrKindValidation, "method not allowed", h.logger)
		return
	}

	if r.URL.Query().Get("all") == "true" {
		if err := h.service.RemoveAll(r.Context()); err != nil {
			writeServiceError(w, err, h.logger)
			return
		}
		writeJSON(w, http.StatusOK, "Cart Cleared")
		return
	}

	var req model.RemoveFromCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrKindValidation, "invalid request body", h.logger)
		return
	}

	if err := h.service.Remove(r.Context(), &req); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, "Successfully Deleted")
}

// List handles GET /cart requests.
func (h *CartHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, model.ErrKindValidation, "method not allowed", h.logger)
		return
	}

	entries, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, model.ErrKindInternal, "failed to retrieve cart", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, entries)
}
