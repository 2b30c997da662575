package domain

import "time"

// Cart is the shopper's client-side view of "what I intend to buy". It is
// the only state this service owns: created empty on first touch, persisted
// across visits, cleared on successful order submission or explicit request.
type Cart struct {
	ID        string     `json:"id"`
	Items     []CartItem `json:"items"`
	Version   int        `json:"version"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// CartItem pairs a product snapshot with a chosen size snapshot and a
// positive quantity. Uniqueness key is (product id, size id). The snapshots
// are captured at add time; totals use the captured price, not a re-fetch.
type CartItem struct {
	Product  Product     `json:"product"`
	Size     ProductSize `json:"size"`
	Quantity int         `json:"quantity"`
}

// NewCart returns an empty cart with the given identity.
func NewCart(id string) *Cart {
	now := time.Now().UTC()
	return &Cart{
		ID:        id,
		Items:     []CartItem{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// findIndex returns the position of the item keyed (productID, sizeID), or
// -1 when absent.
func (c *Cart) findIndex(productID, sizeID string) int {
	for i := range c.Items {
		if c.Items[i].Product.ID == productID && c.Items[i].Size.ID == sizeID {
			return i
		}
	}
	return -1
}

// AddItem merges quantity into an existing line with the same
// (product id, size id) key, or appends a new line. Quantity must be
// positive; the caller enforces that and any stock ceiling.
func (c *Cart) AddItem(product Product, size ProductSize, quantity int) {
	if i := c.findIndex(product.ID, size.ID); i >= 0 {
		c.Items[i].Quantity += quantity
		return
	}
	c.Items = append(c.Items, CartItem{Product: product, Size: size, Quantity: quantity})
}

// RemoveItem deletes the matching line. Removing an absent key is a no-op.
func (c *Cart) RemoveItem(productID, sizeID string) {
	i := c.findIndex(productID, sizeID)
	if i < 0 {
		return
	}
	c.Items = append(c.Items[:i], c.Items[i+1:]...)
}

// UpdateQuantity sets the matching line's quantity to exactly quantity.
// A quantity of zero or less behaves as RemoveItem.
func (c *Cart) UpdateQuantity(productID, sizeID string, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(productID, sizeID)
		return
	}
	if i := c.findIndex(productID, sizeID); i >= 0 {
		c.Items[i].Quantity = quantity
	}
}

// Clear empties the cart unconditionally.
func (c *Cart) Clear() {
	c.Items = []CartItem{}
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// TotalItems is the sum of all line quantities.
func (c *Cart) TotalItems() int {
	var n int
	for _, item := range c.Items {
		n += item.Quantity
	}
	return n
}

// TotalPrice is the sum of captured price × quantity over all lines,
// recomputed on every call.
func (c *Cart) TotalPrice() float64 {
	var total float64
	for _, item := range c.Items {
		total += item.Product.Price * float64(item.Quantity)
	}
	return total
}

// Quantity returns the current quantity for the keyed line, zero if absent.
func (c *Cart) Quantity(productID, sizeID string) int {
	if i := c.findIndex(productID, sizeID); i >= 0 {
		return c.Items[i].Quantity
	}
	return 0
}
