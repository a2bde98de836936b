package handler

import (
	"net/http"
	"strconv"

	"storefront/internal/model"
	"storefront/internal/service"

	"github.com/rs/zerolog"
)

// maxUploadSize bounds the multipart form a product creation can carry.
const maxUploadSize = 10 << 20 // 10mb

// ProductHandler handles catalogue HTTP requests.
type ProductHandler struct {
	service service.CatalogService
	logger  zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(service service.CatalogService, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger.With().Str("handler", "product").Logger(),
	}
}

// List handles GET /products requests.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, model.ErrKindValidation, "method not allowed", h.logger)
		return
	}

	products, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, model.ErrKindInternal, "failed to retrieve products", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, products)
}

// Create handles POST /product multipart requests with fields id, name,
// price and an optional image file or imageUrl field.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, model.ErrKindValidation, "method not allowed", h.logger)
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrKindValidation, "invalid multipart form", h.logger)
		return
	}

	req := &service.CreateProductRequest{
		ID:       r.FormValue("id"),
		Name:     r.FormValue("name"),
		ImageURL: r.FormValue("imageUrl"),
	}

	if priceStr := r.FormValue("price"); priceStr != "" {
		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, model.ErrKindValidation, "invalid price", h.logger)
			return
		}
		req.Price = price
	}

	if file, header, err := r.FormFile("image"); err == nil {
		defer file.Close()
		req.ImageName = header.Filename
		req.ImageData = file
	}

	if _, err := h.service.Create(r.Context(), req); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]bool{"created": true})
}
