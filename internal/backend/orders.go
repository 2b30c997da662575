package backend

import (
	"context"
	"fmt"
	"net/url"

	"github.com/Devstrike-DigTech/aideesigns-storefront/internal/domain"
)

// CreateOrderRequest is the payload for POST /orders.
type CreateOrderRequest struct {
	CustomerName    string               `json:"customerName"`
	Phone           string               `json:"phone"`
	Email           string               `json:"email,omitempty"`
	Items           []OrderItemRequest   `json:"items"`
	DeliveryAddress OrderDeliveryAddress `json:"deliveryAddress"`
	Gateway         domain.Gateway       `json:"gateway"`
}

type OrderItemRequest struct {
	ProductID string  `json:"productId"`
	SizeLabel string  `json:"sizeLabel"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

type OrderDeliveryAddress struct {
	AddressLine  string `json:"addressLine"`
	City         string `json:"city"`
	State        string `json:"state"`
	ContactPhone string `json:"contactPhone"`
}

// CreateOrderResponse is returned by the backend after it initializes the
// payment; the storefront redirects the shopper to the authorization URL.
type CreateOrderResponse struct {
	OrderID                 string `json:"orderId"`
	PaymentAuthorizationURL string `json:"paymentAuthorizationUrl"`
}

// CreateOrder submits a new order.
func (c *Client) CreateOrder(ctx context.Context, req CreateOrderRequest) (*CreateOrderResponse, error) {
	var resp CreateOrderResponse
	if err := c.Post(ctx, "/orders", req, &resp); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	return &resp, nil
}

// TrackOrder looks up an order by ID plus contact verification.
func (c *Client) TrackOrder(ctx context.Context, orderID, phone, email string) (*domain.Order, error) {
	query := url.Values{}
	query.Set("phone", phone)
	if email != "" {
		query.Set("email", email)
	}

	var order domain.Order
	if err := c.Get(ctx, "/orders/track/"+orderID, query, &order); err != nil {
		return nil, fmt.Errorf("track order %s: %w", orderID, err)
	}
	return &order, nil
}
