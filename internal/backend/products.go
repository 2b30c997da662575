package backend

import (
	"context"
	"fmt"

	"github.com/Devstrike-DigTech/aideesigns-storefront/internal/domain"
)

// Products fetches the full catalog.
func (c *Client) Products(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := c.Get(ctx, "/products", nil, &products); err != nil {
		return nil, fmt.Errorf("fetch products: %w", err)
	}
	return products, nil
}

// Product fetches a single catalog entry by ID.
func (c *Client) Product(ctx context.Context, id string) (*domain.Product, error) {
	var product domain.Product
	if err := c.Get(ctx, "/products/"+id, nil, &product); err != nil {
		return nil, fmt.Errorf("fetch product %s: %w", id, err)
	}
	return &product, nil
}
