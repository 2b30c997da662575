package backend

import (
	"context"
	"fmt"
	"net/url"

	"github.com/Devstrike-DigTech/aideesigns-storefront/internal/domain"
)

// CreateBookingRequest is the payload for POST /bookings.
type CreateBookingRequest struct {
	CustomerName        string `json:"customerName"`
	Phone               string `json:"phone"`
	Email               string `json:"email,omitempty"`
	OutfitType          string `json:"outfitType"`
	Notes               string `json:"notes,omitempty"`
	InspirationImageURL string `json:"inspirationImageUrl,omitempty"`
	PreferredDate       string `json:"preferredDate"`
}

// Slots fetches production slots for the given ISO date range (inclusive).
func (c *Client) Slots(ctx context.Context, from, to string) ([]domain.ProductionSlot, error) {
	query := url.Values{}
	query.Set("from", from)
	query.Set("to", to)

	var slots []domain.ProductionSlot
	if err := c.Get(ctx, "/slots", query, &slots); err != nil {
		return nil, fmt.Errorf("fetch slots %s..%s: %w", from, to, err)
	}
	return slots, nil
}

// CreateBooking submits a custom-outfit production request.
func (c *Client) CreateBooking(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error) {
	var booking domain.Booking
	if err := c.Post(ctx, "/bookings", req, &booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}
	return &booking, nil
}
