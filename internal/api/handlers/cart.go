package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Devstrike-DigTech/aideesigns-storefront/internal/api/middleware"
	"github.com/Devstrike-DigTech/aideesigns-storefront/internal/domain"
	"github.com/Devstrike-DigTech/aideesigns-storefront/internal/service"
)

// CartLineView is one cart line for display, with the total recomputed
// from the snapshot price.
type CartLineView struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	ImageURL  string  `json:"imageUrl,omitempty"`
	SizeID    string  `json:"sizeId"`
	SizeLabel string  `json:"sizeLabel"`
	Quantity  int     `json:"quantity"`
	LineTotal float64 `json:"lineTotal"`
}

// CartView is the cart as rendered in the drawer and checkout summary.
type CartView struct {
	Items      []CartLineView `json:"items"`
	TotalItems int            `json:"totalItems"`
	TotalPrice float64        `json:"totalPrice"`
}

func cartView(cart *domain.Cart) CartView {
	view := CartView{
		Items:      make([]CartLineView, 0, len(cart.Items)),
		TotalItems: cart.TotalItems(),
		TotalPrice: cart.TotalPrice(),
	}
	for _, item := range cart.Items {
		line := CartLineView{
			ProductID: item.Product.ID,
			Name:      item.Product.Name,
			Price:     item.Product.Price,
			SizeID:    item.Size.ID,
			SizeLabel: item.Size.SizeLabel,
			Quantity:  item.Quantity,
			LineTotal: item.Product.Price * float64(item.Quantity),
		}
		if img, ok := item.Product.PrimaryImage(); ok {
			line.ImageURL = img.ImageURL
		}
		view.Items = append(view.Items, line)
	}
	return view
}

func cartID(c *gin.Context, logger *zap.Logger) (string, bool) {
	id, ok := middleware.GetCartID(c)
	if !ok {
		logger.Error("Cart route missing cart id middleware")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "internal error"})
	}
	return id, ok
}

// HandleGetCart serves the shopper's current cart.
func HandleGetCart(svcs *Services, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := cartID(c, logger)
		if !ok {
			return
		}

		cart, err := svcs.Carts.Get(c.Request.Context(), id)
		if err != nil {
			respondError(c, logger, err)
			return
		}

		respondData(c, http.StatusOK, cartView(cart))
	}
}

// HandleAddCartItem adds a product variant, merging into an existing line
// with the same product and size.
func HandleAddCartItem(svcs *Services, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := cartID(c, logger)
		if !ok {
			return
		}

		var input service.AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			respondBindError(c, err)
			return
		}

		cart, err := svcs.Carts.AddItem(c.Request.Context(), id, input)
		if err != nil {
			respondError(c, logger, err)
			return
		}

		respondData(c, http.StatusOK, cartView(cart))
	}
}

// HandleUpdateCartItem sets a line to an exact quantity; zero removes it.
func HandleUpdateCartItem(svcs *Services, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := cartID(c, logger)
		if !ok {
			return
		}

		var input service.UpdateQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			respondBindError(c, err)
			return
		}

		cart, err := svcs.Carts.UpdateQuantity(c.Request.Context(), id, c.Param("productId"), c.Param("sizeId"), input.Quantity)
		if err != nil {
			respondError(c, logger, err)
			return
		}

		respondData(c, http.StatusOK, cartView(cart))
	}
}

// HandleRemoveCartItem deletes a line; removing an absent line still
// succeeds.
func HandleRemoveCartItem(svcs *Services, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := cartID(c, logger)
		if !ok {
			return
		}

		cart, err := svcs.Carts.RemoveItem(c.Request.Context(), id, c.Param("productId"), c.Param("sizeId"))
		if err != nil {
			respondError(c, logger, err)
			return
		}

		respondData(c, http.StatusOK, cartView(cart))
	}
}

// HandleClearCart empties the cart.
func HandleClearCart(svcs *Services, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := cartID(c, logger)
		if !ok {
			return
		}

		if err := svcs.Carts.Clear(c.Request.Context(), id); err != nil {
			respondError(c, logger, err)
			return
		}

		respondData(c, http.StatusOK, cartView(domain.NewCart(id)))
	}
}
