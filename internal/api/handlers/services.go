package handlers

import (
	"context"
	"io"
	"time"

	"github.com/Devstrike-DigTech/aideesigns-storefront/internal/domain"
	"github.com/Devstrike-DigTech/aideesigns-storefront/internal/service"
)

// CatalogService serves product and testimonial reads.
type CatalogService interface {
	Products(ctx context.Context) ([]domain.Product, error)
	Product(ctx context.Context, id string) (*domain.Product, error)
	Featured(ctx context.Context, limit int) ([]domain.Product, error)
	Testimonials(ctx context.Context) ([]domain.Testimonial, error)
}

// CartService is the persistent shopper cart.
type CartService interface {
	Get(ctx context.Context, cartID string) (*domain.Cart, error)
	AddItem(ctx context.Context, cartID string, input service.AddItemInput) (*domain.Cart, error)
	UpdateQuantity(ctx context.Context, cartID, productID, sizeID string, quantity int) (*domain.Cart, error)
	RemoveItem(ctx context.Context, cartID, productID, sizeID string) (*domain.Cart, error)
	Clear(ctx context.Context, cartID string) error
}

// BookingService serves the production calendar and booking submission.
type BookingService interface {
	Slots(ctx context.Context, from, to string) ([]domain.ProductionSlot, error)
	BuildCalendar(year int, month time.Month, slots []domain.ProductionSlot) service.CalendarMonth
	CreateBooking(ctx context.Context, input service.BookingInput) (*domain.Booking, error)
}

// OrderService handles checkout and order tracking.
type OrderService interface {
	Checkout(ctx context.Context, cartID string, input service.CheckoutInput) (*service.CheckoutResult, error)
	Track(ctx context.Context, input service.TrackOrderInput) (*domain.Order, error)
}

// UploadService forwards inspiration images to the media host.
type UploadService interface {
	UploadInspiration(ctx context.Context, filename, contentType string, size int64, file io.Reader) (string, error)
}

// ContentService serves CMS pages.
type ContentService interface {
	Page(ctx context.Context, slug string) (*domain.ContentPage, error)
}

// Services bundles everything the HTTP layer depends on.
type Services struct {
	Catalog  CatalogService
	Carts    CartService
	Bookings BookingService
	Orders   OrderService
	Uploads  UploadService
	Content  ContentService
}
