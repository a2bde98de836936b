package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"storefront/internal/model"
	"storefront/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// orderService implements OrderService.
type orderService struct {
	orderRepo   repository.OrderRepository
	cartRepo    repository.CartRepository
	catalogRepo repository.CatalogRepository
	logger      zerolog.Logger

	// mu serialises checkouts so two concurrent place-order calls cannot
	// both consume the same cart snapshot.
	mu sync.Mutex
}

// NewOrderService creates a new order service.
func NewOrderService(
	orderRepo repository.OrderRepository,
	cartRepo repository.CartRepository,
	catalogRepo repository.CatalogRepository,
	logger zerolog.Logger,
) OrderService {
	return &orderService{
		orderRepo:   orderRepo,
		cartRepo:    cartRepo,
		catalogRepo: catalogRepo,
		logger:      logger.With().Str("service", "order").Logger(),
	}
}

// PlaceOrder aggregates the current cart against the catalogue into a
// persisted order and clears the consumed entries. Entries whose product
// reference no longer matches any catalogue record are skipped, never failing
// the whole checkout. An empty cart yields a zero-item, zero-total order.
func (s *orderService) PlaceOrder(ctx context.Context) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.catalogRepo.FindAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to read catalogue")
		return nil, fmt.Errorf("failed to read catalogue: %w", err)
	}

	entries, err := s.cartRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to read cart")
		return nil, fmt.Errorf("failed to read cart: %w", err)
	}

	// Index the catalogue by (id, name); the first record wins when the
	// catalogue itself carries duplicates.
	index := make(map[model.ProductRef]model.Product, len(products))
	for _, p := range products {
		ref := model.ProductRef{ID: p.ID, Name: p.Name}
		if _, ok := index[ref]; !ok {
			index[ref] = p
		}
	}

	now := time.Now().UTC()
	order := &model.Order{
		OrderID:   newOrderID(now),
		Items:     []model.OrderItem{},
		OrderDate: now,
	}

	// Snapshot of every entry id read, matched or stale. The clear below
	// deletes exactly these, so entries added concurrently survive.
	snapshotIDs := make([]string, 0, len(entries))

	for _, entry := range entries {
		snapshotIDs = append(snapshotIDs, entry.CartID)

		product, ok := index[entry.ProductReference]
		if !ok {
			s.logger.Warn().
				Str("cart_id", entry.CartID).
				Str("product_id", entry.ProductReference.ID).
				Str("product_name", entry.ProductReference.Name).
				Msg("cart entry references a product no longer in the catalogue, skipping")
			continue
		}

		units := entry.Units()
		itemTotal := product.Price * float64(units)

		order.Items = append(order.Items, model.OrderItem{
			CartID:           entry.CartID,
			ProductReference: entry.ProductReference,
			ProductDetails:   product,
			Quantity:         entry.Quantity,
			ItemTotal:        itemTotal,
			Date:             entry.Date,
		})

		order.TotalAmount += itemTotal
		order.TotalItems += units
		order.TotalItemsCart++
	}

	tx, err := s.orderRepo.BeginTx(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	// Ensure transaction is rolled back on error
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	if err = s.orderRepo.CreateOrder(ctx, tx, order); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.OrderID).Msg("failed to create order")
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	if err = s.orderRepo.CreateOrderItems(ctx, tx, order.OrderID, order.Items); err != nil {
		s.logger.Error().
			Err(err).
			Str("order_id", order.OrderID).
			Int("item_count", len(order.Items)).
			Msg("failed to create order items")
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	// Order insert and cart clear commit together: a crash can never leave
	// a persisted order with a still-populated cart.
	var cleared int64
	if cleared, err = s.cartRepo.DeleteByIDs(ctx, tx, snapshotIDs); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.OrderID).Msg("failed to clear cart")
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.OrderID).Msg("failed to commit transaction")
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	s.logger.Info().
		Str("order_id", order.OrderID).
		Int("item_count", len(order.Items)).
		Int("skipped", len(entries)-len(order.Items)).
		Int64("entries_cleared", cleared).
		Float64("total_amount", order.TotalAmount).
		Msg("order placed")

	return order, nil
}

// newOrderID builds a time-derived order id. The random suffix keeps ids
// unique when two checkouts land within the same millisecond.
func newOrderID(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("ORD-%d-%s", now.UnixMilli(), suffix)
}
