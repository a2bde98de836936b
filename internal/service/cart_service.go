package service

import (
	"context"
	"fmt"
	"time"

	"storefront/internal/model"
	"storefront/internal/repository"

	"github.com/rs/zerolog"
)

// cartService implements CartService.
type cartService struct {
	cartRepo        repository.CartRepository
	catalogRepo     repository.CatalogRepository
	allowDuplicates bool
	logger          zerolog.Logger
}

// NewCartService creates a new cart service. allowDuplicates controls whether
// the same product may appear as multiple independent line items.
func NewCartService(
	cartRepo repository.CartRepository,
	catalogRepo repository.CatalogRepository,
	allowDuplicates bool,
	logger zerolog.Logger,
) CartService {
	return &cartService{
		cartRepo:        cartRepo,
		catalogRepo:     catalogRepo,
		allowDuplicates: allowDuplicates,
		logger:          logger.With().Str("service", "cart").Logger(),
	}
}

// Add validates the request against the catalogue and appends a cart entry.
func (s *cartService) Add(ctx context.Context, req *model.AddToCartRequest) ([]model.Product, error) {
	if req == nil || req.ProductID == "" || req.ProductName == "" || req.InCartID == "" {
		s.logger.Warn().Msg("add-to-cart request missing required fields")
		return nil, model.ErrMissingFields
	}

	if req.Quantity != nil && *req.Quantity < 1 {
		s.logger.Warn().
			Str("product_id", req.ProductID).
			Int("quantity", *req.Quantity).
			Msg("invalid quantity")
		return nil, model.ErrInvalidQuantity
	}

	ref := req.Ref()

	products, err := s.catalogRepo.FindByRef(ctx, ref)
	if err != nil {
		s.logger.Error().Err(err).
			Str("product_id", ref.ID).
			Msg("catalogue lookup failed")
		return nil, fmt.Errorf("failed to look up product: %w", err)
	}

	if len(products) == 0 {
		s.logger.Warn().
			Str("product_id", ref.ID).
			Str("product_name", ref.Name).
			Msg("product not found in catalogue")
		return nil, model.ErrProductNotFound
	}

	if !s.allowDuplicates {
		// Check-then-act: two concurrent adds can both pass this check.
		// Accepted for the single-session deployment model.
		existing, err := s.cartRepo.FindByRef(ctx, ref, "")
		if err != nil {
			s.logger.Error().Err(err).
				Str("product_id", ref.ID).
				Msg("cart lookup failed")
			return nil, fmt.Errorf("failed to check cart for product: %w", err)
		}
		if len(existing) > 0 {
			s.logger.Warn().
				Str("product_id", ref.ID).
				Msg("product already in cart")
			return nil, model.ErrProductAlreadyInCart
		}
	}

	entry := model.CartEntry{
		CartID:           req.InCartID,
		ProductReference: ref,
		Quantity:         req.Quantity,
		Date:             time.Now().UTC(),
	}

	if err := s.cartRepo.Insert(ctx, entry); err != nil {
		if err == model.ErrDuplicateCartEntry {
			return nil, err
		}
		s.logger.Error().Err(err).
			Str("cart_id", entry.CartID).
			Msg("failed to insert cart entry")
		return nil, fmt.Errorf("failed to add to cart: %w", err)
	}

	s.logger.Info().
		Str("cart_id", entry.CartID).
		Str("product_id", ref.ID).
		Msg("product added to cart")

	return products, nil
}

// Remove deletes the single entry matching both the product reference and the
// cart entry id.
func (s *cartService) Remove(ctx context.Context, req *model.RemoveFromCartRequest) error {
	if req == nil || req.ProductID == "" || req.ProductName == "" {
		s.logger.Warn().Msg("remove-from-cart request missing required fields")
		return model.ErrMissingFields
	}

	ref := req.Ref()

	entries, err := s.cartRepo.FindByRef(ctx, ref, req.InCartID)
	if err != nil {
		s.logger.Error().Err(err).
			Str("cart_id", req.InCartID).
			Msg("cart lookup failed")
		return fmt.Errorf("failed to look up cart entry: %w", err)
	}

	if len(entries) == 0 {
		s.logger.Warn().
			Str("cart_id", req.InCartID).
			Str("product_id", ref.ID).
			Msg("no cart entry matched for removal")
		return model.ErrCartMismatch
	}

	if err := s.cartRepo.DeleteOne(ctx, req.InCartID, ref); err != nil {
		if err == model.ErrCartMismatch {
			return err
		}
		s.logger.Error().Err(err).
			Str("cart_id", req.InCartID).
			Msg("failed to delete cart entry")
		return fmt.Errorf("failed to remove from cart: %w", err)
	}

	s.logger.Info().
		Str("cart_id", req.InCartID).
		Str("product_id", ref.ID).
		Msg("cart entry removed")

	return nil
}

// RemoveAll clears the cart unconditionally.
func (s *cartService) RemoveAll(ctx context.Context) error {
	if err := s.cartRepo.DeleteAll(ctx); err != nil {
		s.logger.Error().Err(err).Msg("failed to clear cart")
		return fmt.Errorf("failed to clear cart: %w", err)
	}

	s.logger.Info().Msg("cart cleared")
	return nil
}

// List returns the current cart snapshot.
func (s *cartService) List(ctx context.Context) ([]model.CartEntry, error) {
	entries, err := s.cartRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list cart")
		return nil, fmt.Errorf("failed to list cart: %w", err)
	}

	if entries == nil {
		entries = []model.CartEntry{}
	}

	s.logger.Debug().Int("count", len(entries)).Msg("listed cart entries")
	return entries, nil
}
