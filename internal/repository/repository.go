package repository

import (
	"context"

	"github.com/Devstrike-DigTech/aideesigns-storefront/internal/domain"
)

// CartRepository is the durable store behind the cart. Carts are keyed by
// the shopper's cart ID (a cookie-carried uuid) and expire after the
// configured idle TTL.
type CartRepository interface {
	// Get retrieves a cart by ID. Missing and expired carts return
	// *errors.ErrNotFound.
	Get(ctx context.Context, id string) (*domain.Cart, error)

	// SaveIfVersion persists the cart only if the stored version still
	// matches expectedVersion (zero for a cart that was never saved).
	// Returns false without error when another writer got there first;
	// on success the cart's Version is advanced.
	SaveIfVersion(ctx context.Context, cart *domain.Cart, expectedVersion int) (bool, error)

	// Delete removes a cart. Deleting an absent cart is not an error.
	Delete(ctx context.Context, id string) error
}
