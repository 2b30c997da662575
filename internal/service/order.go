package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/Devstrike-DigTech/aideesigns-storefront/internal/backend"
	"github.com/Devstrike-DigTech/aideesigns-storefront/internal/domain"
	apperrors "github.com/Devstrike-DigTech/aideesigns-storefront/pkg/errors"
)

// Delivery fees by state, naira. States without an entry pay the default.
var deliveryFees = map[string]float64{
	"Lagos": 2000,
	"Abuja": 3500,
}

const defaultDeliveryFee float64 = 5000

// DeliveryFee returns the shopper-facing delivery fee for a state.
func DeliveryFee(state string) float64 {
	if fee, ok := deliveryFees[state]; ok {
		return fee
	}
	return defaultDeliveryFee
}

// OrderAPI is the slice of the backend client the order flow needs.
type OrderAPI interface {
	CreateOrder(ctx context.Context, req backend.CreateOrderRequest) (*backend.CreateOrderResponse, error)
	TrackOrder(ctx context.Context, orderID, phone, email string) (*domain.Order, error)
}

// CartStore is the slice of the cart service the checkout flow needs.
type CartStore interface {
	Get(ctx context.Context, cartID string) (*domain.Cart, error)
	Clear(ctx context.Context, cartID string) error
}

type orderService struct {
	api    OrderAPI
	carts  CartStore
	logger *zap.Logger
}

// NewOrderService creates the checkout/tracking service.
func NewOrderService(api OrderAPI, carts CartStore, logger *zap.Logger) *orderService {
	return &orderService{
		api:    api,
		carts:  carts,
		logger: logger,
	}
}

// Checkout submits the stored cart as an order. An empty cart is rejected
// before any upstream call. On success the cart is cleared and the shopper
// is redirected to the returned payment authorization URL; the backend
// re-validates stock and pricing.
func (s *orderService) Checkout(ctx context.Context, cartID string, input CheckoutInput) (*CheckoutResult, error) {
	if !input.Gateway.IsValid() {
		return nil, &apperrors.ErrInvalidInput{Message: "unsupported payment gateway"}
	}

	cart, err := s.carts.Get(ctx, cartID)
	if err != nil {
		return nil, err
	}
	if cart.IsEmpty() {
		return nil, &apperrors.ErrInvalidInput{Message: "cart is empty"}
	}

	items := make([]backend.OrderItemRequest, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, backend.OrderItemRequest{
			ProductID: item.Product.ID,
			SizeLabel: item.Size.SizeLabel,
			Quantity:  item.Quantity,
			UnitPrice: item.Product.Price,
		})
	}

	resp, err := s.api.CreateOrder(ctx, backend.CreateOrderRequest{
		CustomerName: input.CustomerName,
		Phone:        input.Phone,
		Email:        input.Email,
		Items:        items,
		DeliveryAddress: backend.OrderDeliveryAddress{
			AddressLine:  input.AddressLine,
			City:         input.City,
			State:        input.State,
			ContactPhone: input.ContactPhone,
		},
		Gateway: input.Gateway,
	})
	if err != nil {
		return nil, err
	}

	// The order exists upstream now; a failed clear must not undo that.
	if err := s.carts.Clear(ctx, cartID); err != nil {
		s.logger.Warn("Failed to clear cart after checkout",
			zap.String("cart_id", cartID),
			zap.String("order_id", resp.OrderID),
			zap.Error(err),
		)
	}

	subtotal := cart.TotalPrice()
	fee := DeliveryFee(input.State)

	s.logger.Info("Order submitted",
		zap.String("order_id", resp.OrderID),
		zap.Float64("subtotal", subtotal),
		zap.Float64("delivery_fee", fee),
	)

	return &CheckoutResult{
		OrderID:                 resp.OrderID,
		PaymentAuthorizationURL: resp.PaymentAuthorizationURL,
		Subtotal:                subtotal,
		DeliveryFee:             fee,
		Total:                   subtotal + fee,
	}, nil
}

// Track looks up an order by ID plus contact verification; "order not
// found" style rejections pass through with the backend's message.
func (s *orderService) Track(ctx context.Context, input TrackOrderInput) (*domain.Order, error) {
	return s.api.TrackOrder(ctx, input.OrderID, input.Phone, input.Email)
}
