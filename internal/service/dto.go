package service

import "github.com/Devstrike-DigTech/aideesigns-storefront/internal/domain"

// AddItemInput is the payload for putting a product variant in the cart.
type AddItemInput struct {
	ProductID string `json:"productId" binding:"required"`
	SizeID    string `json:"sizeId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

// UpdateQuantityInput sets a cart line to an exact quantity; zero removes
// the line.
type UpdateQuantityInput struct {
	Quantity int `json:"quantity" binding:"min=0"`
}

// BookingInput is the shopper-facing payload for a production booking.
type BookingInput struct {
	CustomerName        string `json:"customerName" binding:"required,min=2"`
	Phone               string `json:"phone" binding:"required,min=10"`
	Email               string `json:"email" binding:"omitempty,email"`
	OutfitType          string `json:"outfitType" binding:"required,min=3"`
	Notes               string `json:"notes"`
	InspirationImageURL string `json:"inspirationImageUrl" binding:"omitempty,url"`
	PreferredDate       string `json:"preferredDate" binding:"required,datetime=2006-01-02"`
}

// CheckoutInput is the shopper-facing payload for order submission. The
// items come from the stored cart, never from the request.
type CheckoutInput struct {
	CustomerName string         `json:"customerName" binding:"required,min=2"`
	Phone        string         `json:"phone" binding:"required,min=10"`
	Email        string         `json:"email" binding:"omitempty,email"`
	AddressLine  string         `json:"addressLine" binding:"required,min=5"`
	City         string         `json:"city" binding:"required,min=2"`
	State        string         `json:"state" binding:"required,min=2"`
	ContactPhone string         `json:"contactPhone" binding:"required,min=10"`
	Gateway      domain.Gateway `json:"gateway" binding:"required"`
}

// CheckoutResult is what the storefront hands back for the payment
// redirect.
type CheckoutResult struct {
	OrderID                 string  `json:"orderId"`
	PaymentAuthorizationURL string  `json:"paymentAuthorizationUrl"`
	Subtotal                float64 `json:"subtotal"`
	DeliveryFee             float64 `json:"deliveryFee"`
	Total                   float64 `json:"total"`
}

// TrackOrderInput identifies an order by ID plus contact verification.
type TrackOrderInput struct {
	OrderID string `json:"orderId" binding:"required"`
	Phone   string `json:"phone" binding:"required,min=10"`
	Email   string `json:"email" binding:"omitempty,email"`
}
