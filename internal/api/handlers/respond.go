package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "github.com/Devstrike-DigTech/aideesigns-storefront/pkg/errors"
)

// All responses share the backend's envelope shape so the storefront's
// consumers see one format regardless of where the data came from.

func respondData(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

func respondMessage(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, gin.H{"success": true, "message": message, "data": data})
}

func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{
		"success": false,
		"message": "invalid request payload",
		"details": err.Error(),
	})
}

// respondError maps service errors onto the envelope. Business rejections
// keep their messages; upstream outages and unexpected failures get a
// generic message so internals never leak to shoppers.
func respondError(c *gin.Context, logger *zap.Logger, err error) {
	var (
		invalid  *apperrors.ErrInvalidInput
		notFound *apperrors.ErrNotFound
		conflict *apperrors.ErrConflict
		upstream *apperrors.ErrUpstream
	)

	switch {
	case errors.As(err, &invalid):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": invalid.Message})
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": notFound.Error()})
	case errors.As(err, &conflict):
		c.JSON(http.StatusConflict, gin.H{"success": false, "message": "please retry, your cart was updated elsewhere"})
	case errors.As(err, &upstream):
		if upstream.Status >= 500 {
			logger.Warn("Upstream unavailable", zap.Int("status", upstream.Status), zap.Error(err))
			c.JSON(http.StatusBadGateway, gin.H{"success": false, "message": "service temporarily unavailable"})
			return
		}
		c.JSON(upstream.Status, gin.H{"success": false, "message": upstream.Message})
	default:
		logger.Error("Unhandled error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "internal error"})
	}
}
