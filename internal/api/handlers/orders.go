package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Devstrike-DigTech/aideesigns-storefront/internal/domain"
	"github.com/Devstrike-DigTech/aideesigns-storefront/internal/service"
)

// TrackedOrderView is the order as rendered on the tracking page, with
// shopper-facing wording for both status stages.
type TrackedOrderView struct {
	Order                  *domain.Order `json:"order"`
	PaymentStatusLabel     string        `json:"paymentStatusLabel"`
	FulfillmentStatusLabel string        `json:"fulfillmentStatusLabel"`
	IsFinal                bool          `json:"isFinal"`
}

// HandleTrackOrder looks up an order by ID. The phone query parameter (and
// optionally email) verifies the caller knows the contact details used at
// checkout; the backend does the matching.
func HandleTrackOrder(svcs *Services, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		input := service.TrackOrderInput{
			OrderID: c.Param("orderId"),
			Phone:   c.Query("phone"),
			Email:   c.Query("email"),
		}
		if len(input.Phone) < 10 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "phone used at checkout is required"})
			return
		}

		order, err := svcs.Orders.Track(c.Request.Context(), input)
		if err != nil {
			respondError(c, logger, err)
			return
		}

		respondData(c, http.StatusOK, TrackedOrderView{
			Order:                  order,
			PaymentStatusLabel:     order.PaymentStatus.Label(),
			FulfillmentStatusLabel: order.FulfillmentStatus.Label(),
			IsFinal:                order.FulfillmentStatus.IsTerminal(),
		})
	}
}
