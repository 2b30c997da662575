package backend

import (
	"context"
	"fmt"

	"github.com/Devstrike-DigTech/aideesigns-storefront/internal/domain"
)

// Page fetches a CMS page with its ordered content blocks.
func (c *Client) Page(ctx context.Context, slug string) (*domain.ContentPage, error) {
	var page domain.ContentPage
	if err := c.Get(ctx, "/content/"+slug, nil, &page); err != nil {
		return nil, fmt.Errorf("fetch page %s: %w", slug, err)
	}
	return &page, nil
}
