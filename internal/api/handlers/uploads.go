package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Devstrike-DigTech/aideesigns-storefront/internal/service"
)

// HandleUploadInspiration accepts a multipart "file" field and forwards it
// to the media host, returning the hosted URL for the booking form.
func HandleUploadInspiration(svcs *Services, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "file field is required"})
			return
		}
		if header.Size > service.MaxUploadSize {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "image must be less than 5MB"})
			return
		}

		file, err := header.Open()
		if err != nil {
			logger.Error("Failed to open uploaded file", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "internal error"})
			return
		}
		defer file.Close()

		url, err := svcs.Uploads.UploadInspiration(
			c.Request.Context(),
			header.Filename,
			header.Header.Get("Content-Type"),
			header.Size,
			file,
		)
		if err != nil {
			respondError(c, logger, err)
			return
		}

		respondData(c, http.StatusOK, gin.H{"url": url})
	}
}
