package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Devstrike-DigTech/aideesigns-storefront/internal/service"
)

// HandleCheckout submits the stored cart as an order and returns the
// payment redirect. The request carries contact and delivery details only;
// the items always come from the stored cart.
func HandleCheckout(svcs *Services, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := cartID(c, logger)
		if !ok {
			return
		}

		var input service.CheckoutInput
		if err := c.ShouldBindJSON(&input); err != nil {
			respondBindError(c, err)
			return
		}

		result, err := svcs.Orders.Checkout(c.Request.Context(), id, input)
		if err != nil {
			respondError(c, logger, err)
			return
		}

		respondMessage(c, http.StatusCreated, "Order placed successfully", result)
	}
}
