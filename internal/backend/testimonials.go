package backend

import (
	"context"
	"fmt"

	"github.com/Devstrike-DigTech/aideesigns-storefront/internal/domain"
)

// Testimonials fetches the approved customer testimonials.
func (c *Client) Testimonials(ctx context.Context) ([]domain.Testimonial, error) {
	var testimonials []domain.Testimonial
	if err := c.Get(ctx, "/testimonials", nil, &testimonials); err != nil {
		return nil, fmt.Errorf("fetch testimonials: %w", err)
	}
	return testimonials, nil
}
