package domain

import "time"

// Product is a catalog entry as served by the commerce API. The storefront
// treats it as a read-only snapshot; stock and availability are owned
// upstream.
type Product struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Price       float64        `json:"price"`
	IsAvailable bool           `json:"isAvailable"`
	Sizes       []ProductSize  `json:"sizes"`
	Images      []ProductImage `json:"images"`
}

// ProductSize is one size variant of a product.
type ProductSize struct {
	ID            string `json:"id"`
	SizeLabel     string `json:"sizeLabel"`
	StockQuantity int    `json:"stockQuantity"`
}

// ProductImage is one product photo. At most one image per product carries
// IsPrimary.
type ProductImage struct {
	ID        string `json:"id"`
	ImageURL  string `json:"imageUrl"`
	IsPrimary bool   `json:"isPrimary"`
}

// PrimaryImage returns the image flagged primary, falling back to the first
// image when none is flagged. The second return is false for a product with
// no images at all.
func (p *Product) PrimaryImage() (ProductImage, bool) {
	for _, img := range p.Images {
		if img.IsPrimary {
			return img, true
		}
	}
	if len(p.Images) > 0 {
		return p.Images[0], true
	}
	return ProductImage{}, false
}

// SizeByID returns the size variant with the given ID.
func (p *Product) SizeByID(sizeID string) (ProductSize, bool) {
	for _, s := range p.Sizes {
		if s.ID == sizeID {
			return s, true
		}
	}
	return ProductSize{}, false
}

// ProductionSlot is a calendar date with a capacity limit for accepting new
// custom-outfit bookings. Read-only on this side; the backend computes the
// counts.
type ProductionSlot struct {
	ID                string `json:"id"`
	ProductionDate    string `json:"productionDate"`
	MaxCapacity       int    `json:"maxCapacity"`
	BookedCount       int    `json:"bookedCount"`
	RemainingCapacity int    `json:"remainingCapacity"`
	IsClosed          bool   `json:"isClosed"`
	IsAvailable       bool   `json:"isAvailable"`
}

// Bookable reports whether the slot can accept a new booking.
func (s ProductionSlot) Bookable() bool {
	return s.IsAvailable && !s.IsClosed && s.RemainingCapacity > 0
}

// Date parses the slot's production date and strips the time of day, so
// server-provided timestamps and calendar cells compare at midnight
// granularity regardless of timezone offsets.
func (s ProductionSlot) Date() (time.Time, error) {
	t, err := parseFlexibleDate(s.ProductionDate)
	if err != nil {
		return time.Time{}, err
	}
	return Midnight(t), nil
}

// Midnight strips the time-of-day component, keeping year/month/day in UTC.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func parseFlexibleDate(v string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", v); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, v)
}

// Booking is a custom-outfit production request.
type Booking struct {
	ID                  string `json:"id"`
	CustomerName        string `json:"customerName"`
	Phone               string `json:"phone"`
	Email               string `json:"email,omitempty"`
	OutfitType          string `json:"outfitType"`
	InspirationImageURL string `json:"inspirationImageUrl,omitempty"`
	Notes               string `json:"notes,omitempty"`
	Status              string `json:"status"`
	ProductionDate      string `json:"productionDate,omitempty"`
	CreatedAt           string `json:"createdAt"`
}

// Order is a placed order as reported by the commerce API.
type Order struct {
	ID                string            `json:"id"`
	CustomerName      string            `json:"customerName"`
	Phone             string            `json:"phone"`
	Email             string            `json:"email,omitempty"`
	TotalAmount       float64           `json:"totalAmount"`
	PaymentStatus     PaymentStatus     `json:"paymentStatus"`
	FulfillmentStatus FulfillmentStatus `json:"fulfillmentStatus"`
	Items             []OrderItem       `json:"items"`
	DeliveryAddress   *DeliveryAddress  `json:"deliveryAddress,omitempty"`
	Payment           *Payment          `json:"payment,omitempty"`
	CreatedAt         string            `json:"createdAt"`
	UpdatedAt         string            `json:"updatedAt"`
}

// OrderItem is one line of a placed order.
type OrderItem struct {
	ID        string  `json:"id"`
	ProductID string  `json:"productId"`
	SizeLabel string  `json:"sizeLabel"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	Subtotal  float64 `json:"subtotal"`
}

// DeliveryAddress is the shipping destination of an order.
type DeliveryAddress struct {
	AddressLine  string  `json:"addressLine"`
	City         string  `json:"city"`
	State        string  `json:"state"`
	DeliveryFee  float64 `json:"deliveryFee"`
	ContactPhone string  `json:"contactPhone"`
}

// Payment is the payment record attached to an order.
type Payment struct {
	ID               string        `json:"id"`
	Gateway          string        `json:"gateway"`
	GatewayReference string        `json:"gatewayReference,omitempty"`
	Amount           float64       `json:"amount"`
	Status           PaymentStatus `json:"status"`
	PaidAt           string        `json:"paidAt,omitempty"`
	CreatedAt        string        `json:"createdAt"`
}

// Testimonial is an approved customer review.
type Testimonial struct {
	ID           string `json:"id"`
	CustomerName string `json:"customerName"`
	Message      string `json:"message"`
	Rating       int    `json:"rating,omitempty"`
	IsApproved   bool   `json:"isApproved"`
	CreatedAt    string `json:"createdAt"`
}

// ContentPage is a CMS-authored page composed of ordered blocks.
type ContentPage struct {
	ID        string         `json:"id"`
	Slug      string         `json:"slug"`
	Title     string         `json:"title"`
	Blocks    []ContentBlock `json:"blocks"`
	UpdatedAt string         `json:"updatedAt"`
}

// ContentBlock is one unit of CMS page content.
type ContentBlock struct {
	ID        string `json:"id"`
	BlockKey  string `json:"blockKey"`
	BlockType string `json:"blockType"`
	Content   string `json:"content,omitempty"`
	ImageURL  string `json:"imageUrl,omitempty"`
	UpdatedAt string `json:"updatedAt"`
}
