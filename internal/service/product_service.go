package service

import (
	"context"
	"fmt"

	"storefront/internal/model"
	"storefront/internal/repository"
	"storefront/internal/storage"

	"github.com/rs/zerolog"
)

// catalogService implements CatalogService.
type catalogService struct {
	catalogRepo repository.CatalogRepository
	images      storage.Store
	logger      zerolog.Logger
}

// NewCatalogService creates a new catalogue service.
func NewCatalogService(catalogRepo repository.CatalogRepository, images storage.Store, logger zerolog.Logger) CatalogService {
	return &catalogService{
		catalogRepo: catalogRepo,
		images:      images,
		logger:      logger.With().Str("service", "catalog").Logger(),
	}
}

// List retrieves the full catalogue.
func (s *catalogService) List(ctx context.Context) ([]model.Product, error) {
	products, err := s.catalogRepo.FindAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list products")
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	if products == nil {
		products = []model.Product{}
	}

	s.logger.Debug().Int("count", len(products)).Msg("listed products")
	return products, nil
}

// Create adds a new product, storing its uploaded image when present. An
// image URL is recorded as-is when no file was uploaded.
func (s *catalogService) Create(ctx context.Context, req *CreateProductRequest) (*model.Product, error) {
	if req == nil || req.ID == "" || req.Name == "" {
		s.logger.Warn().Msg("create-product request missing required fields")
		return nil, model.ErrMissingFields
	}

	if req.Price < 0 {
		return nil, model.NewDomainError(model.ErrKindValidation, "Price cannot be negative")
	}

	product := model.Product{
		ID:    req.ID,
		Name:  req.Name,
		Price: req.Price,
	}

	switch {
	case req.ImageData != nil:
		location, err := s.images.Save(ctx, req.ImageName, req.ImageData)
		if err != nil {
			s.logger.Error().Err(err).
				Str("product_id", req.ID).
				Str("image", req.ImageName).
				Msg("failed to store product image")
			return nil, model.ErrStorageUnavailable
		}
		product.Image = &location
	case req.ImageURL != "":
		product.Image = &req.ImageURL
	}

	if err := s.catalogRepo.Insert(ctx, product); err != nil {
		s.logger.Error().Err(err).
			Str("product_id", product.ID).
			Msg("failed to insert product")
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.Info().
		Str("product_id", product.ID).
		Str("product_name", product.Name).
		Msg("product created")

	return &product, nil
}
