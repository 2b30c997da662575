package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Devstrike-DigTech/aideesigns-storefront/internal/domain"
	"github.com/Devstrike-DigTech/aideesigns-storefront/internal/repository"
	apperrors "github.com/Devstrike-DigTech/aideesigns-storefront/pkg/errors"
)

// ProductSource resolves product snapshots for cart mutations; satisfied by
// the catalog service so stock checks ride the same cache.
type ProductSource interface {
	Product(ctx context.Context, id string) (*domain.Product, error)
}

type cartService struct {
	repo    repository.CartRepository
	catalog ProductSource
	logger  *zap.Logger
}

// NewCartService creates the cart store. Every mutation persists the full
// cart; a shopper's first touch rehydrates from storage or starts empty.
func NewCartService(repo repository.CartRepository, catalog ProductSource, logger *zap.Logger) *cartService {
	return &cartService{
		repo:    repo,
		catalog: catalog,
		logger:  logger,
	}
}

// Get returns the shopper's cart, empty if none was ever saved.
func (s *cartService) Get(ctx context.Context, cartID string) (*domain.Cart, error) {
	cart, err := s.repo.Get(ctx, cartID)
	if err != nil {
		var notFound *apperrors.ErrNotFound
		if errors.As(err, &notFound) {
			return domain.NewCart(cartID), nil
		}
		return nil, fmt.Errorf("get cart: %w", err)
	}
	return cart, nil
}

// AddItem puts a product variant in the cart, merging quantity into an
// existing line with the same (product id, size id) key. The quantity must
// be positive and the merged quantity may not exceed the size's stock count
// at snapshot time; the backend re-validates at checkout.
func (s *cartService) AddItem(ctx context.Context, cartID string, input AddItemInput) (*domain.Cart, error) {
	if input.Quantity <= 0 {
		return nil, &apperrors.ErrInvalidInput{Message: "quantity must be greater than zero"}
	}

	product, err := s.catalog.Product(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	if !product.IsAvailable {
		return nil, &apperrors.ErrInvalidInput{Message: "product is not available"}
	}

	size, ok := product.SizeByID(input.SizeID)
	if !ok {
		return nil, &apperrors.ErrInvalidInput{Message: "unknown size for product"}
	}

	return s.mutate(ctx, cartID, func(cart *domain.Cart) error {
		if cart.Quantity(product.ID, size.ID)+input.Quantity > size.StockQuantity {
			return &apperrors.ErrInvalidInput{
				Message: fmt.Sprintf("only %d of size %s in stock", size.StockQuantity, size.SizeLabel),
			}
		}
		cart.AddItem(*product, size, input.Quantity)
		return nil
	})
}

// UpdateQuantity sets a line to an exact quantity; zero or less removes the
// line. Updating an absent line is a no-op.
func (s *cartService) UpdateQuantity(ctx context.Context, cartID, productID, sizeID string, quantity int) (*domain.Cart, error) {
	return s.mutate(ctx, cartID, func(cart *domain.Cart) error {
		if quantity > 0 {
			// Soft stock ceiling against the size snapshot captured at add
			// time.
			for _, item := range cart.Items {
				if item.Product.ID == productID && item.Size.ID == sizeID && quantity > item.Size.StockQuantity {
					return &apperrors.ErrInvalidInput{
						Message: fmt.Sprintf("only %d of size %s in stock", item.Size.StockQuantity, item.Size.SizeLabel),
					}
				}
			}
		}
		cart.UpdateQuantity(productID, sizeID, quantity)
		return nil
	})
}

// RemoveItem deletes the keyed line; absent keys are a no-op.
func (s *cartService) RemoveItem(ctx context.Context, cartID, productID, sizeID string) (*domain.Cart, error) {
	return s.mutate(ctx, cartID, func(cart *domain.Cart) error {
		cart.RemoveItem(productID, sizeID)
		return nil
	})
}

// Clear empties the cart and drops it from storage.
func (s *cartService) Clear(ctx context.Context, cartID string) error {
	if err := s.repo.Delete(ctx, cartID); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}

// mutate loads the cart, applies fn, and saves with a version check.
// A concurrent writer triggers one reload-and-replay before giving up, so
// two tabs mutating the same cart merge instead of losing updates.
func (s *cartService) mutate(ctx context.Context, cartID string, fn func(*domain.Cart) error) (*domain.Cart, error) {
	for attempt := 0; attempt < 2; attempt++ {
		cart, err := s.Get(ctx, cartID)
		if err != nil {
			return nil, err
		}

		if err := fn(cart); err != nil {
			return nil, err
		}

		saved, err := s.repo.SaveIfVersion(ctx, cart, cart.Version)
		if err != nil {
			return nil, fmt.Errorf("save cart: %w", err)
		}
		if saved {
			return cart, nil
		}

		s.logger.Debug("Cart version conflict, replaying", zap.String("cart_id", cartID))
	}

	return nil, &apperrors.ErrConflict{Resource: "cart", ID: cartID}
}
