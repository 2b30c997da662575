package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CartCookieName is the cookie carrying the shopper's cart identifier.
const CartCookieName = "aidee_cart"

const cartIDKey = "cartID"

// cartCookieMaxAge matches the cart's storage TTL of 30 days.
const cartCookieMaxAge = 30 * 24 * 60 * 60

// CartID assigns every shopper a stable cart identifier. A missing or
// malformed cookie gets a fresh UUID; the cookie is HTTP-only so scripts
// on the page never see it.
func CartID(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(CartCookieName)
		if err != nil || uuid.Validate(id) != nil {
			id = uuid.NewString()
			c.SetCookie(CartCookieName, id, cartCookieMaxAge, "/", "", false, true)
			logger.Debug("Assigned new cart id", zap.String("cart_id", id))
		}

		c.Set(cartIDKey, id)
		c.Next()
	}
}

// GetCartID returns the request's cart identifier set by CartID.
func GetCartID(c *gin.Context) (string, bool) {
	id, ok := c.Get(cartIDKey)
	if !ok {
		return "", false
	}
	s, ok := id.(string)
	return s, ok
}
