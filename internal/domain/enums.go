package domain

// PaymentStatus is the backend-owned payment lifecycle stage of an order.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "PENDING"
	PaymentStatusPaid     PaymentStatus = "PAID"
	PaymentStatusFailed   PaymentStatus = "FAILED"
	PaymentStatusRefunded PaymentStatus = "REFUNDED"
)

// IsValid checks if the payment status is one the backend can report.
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusFailed, PaymentStatusRefunded:
		return true
	default:
		return false
	}
}

// Label returns the shopper-facing wording for the status.
func (s PaymentStatus) Label() string {
	switch s {
	case PaymentStatusPending:
		return "Pending Payment"
	case PaymentStatusPaid:
		return "Paid"
	case PaymentStatusFailed:
		return "Payment Failed"
	case PaymentStatusRefunded:
		return "Refunded"
	default:
		return string(s)
	}
}

// FulfillmentStatus is the backend-owned lifecycle stage of a physical order
// (pending → confirmed → processing → shipped → delivered/cancelled). The
// storefront only renders it; transitions happen upstream.
type FulfillmentStatus string

const (
	FulfillmentStatusPending    FulfillmentStatus = "PENDING"
	FulfillmentStatusConfirmed  FulfillmentStatus = "CONFIRMED"
	FulfillmentStatusProcessing FulfillmentStatus = "PROCESSING"
	FulfillmentStatusShipped    FulfillmentStatus = "SHIPPED"
	FulfillmentStatusDelivered  FulfillmentStatus = "DELIVERED"
	FulfillmentStatusCancelled  FulfillmentStatus = "CANCELLED"
)

// IsValid checks if the fulfillment status is one the backend can report.
func (s FulfillmentStatus) IsValid() bool {
	switch s {
	case FulfillmentStatusPending,
		FulfillmentStatusConfirmed,
		FulfillmentStatusProcessing,
		FulfillmentStatusShipped,
		FulfillmentStatusDelivered,
		FulfillmentStatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the order can still advance.
func (s FulfillmentStatus) IsTerminal() bool {
	return s == FulfillmentStatusDelivered || s == FulfillmentStatusCancelled
}

// Label returns the shopper-facing wording for the status.
func (s FulfillmentStatus) Label() string {
	switch s {
	case FulfillmentStatusPending:
		return "Pending"
	case FulfillmentStatusConfirmed:
		return "Confirmed"
	case FulfillmentStatusProcessing:
		return "Processing"
	case FulfillmentStatusShipped:
		return "Shipped"
	case FulfillmentStatusDelivered:
		return "Delivered"
	case FulfillmentStatusCancelled:
		return "Cancelled"
	default:
		return string(s)
	}
}

// Gateway selects the payment provider the backend should initialize.
type Gateway string

const (
	GatewayPaystack    Gateway = "PAYSTACK"
	GatewayFlutterwave Gateway = "FLUTTERWAVE"
)

// IsValid checks if the gateway is supported.
func (g Gateway) IsValid() bool {
	return g == GatewayPaystack || g == GatewayFlutterwave
}
