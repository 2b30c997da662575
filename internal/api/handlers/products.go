package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Devstrike-DigTech/aideesigns-storefront/internal/domain"
)

// ProductSummary is the grid cell view of a product.
type ProductSummary struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl,omitempty"`
	IsAvailable bool    `json:"isAvailable"`
	InStock     bool    `json:"inStock"`
}

func summarize(p domain.Product) ProductSummary {
	summary := ProductSummary{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		IsAvailable: p.IsAvailable,
	}
	if img, ok := p.PrimaryImage(); ok {
		summary.ImageURL = img.ImageURL
	}
	for _, size := range p.Sizes {
		if size.StockQuantity > 0 {
			summary.InStock = true
			break
		}
	}
	return summary
}

// HandleListProducts serves the shop grid.
func HandleListProducts(svcs *Services, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := svcs.Catalog.Products(c.Request.Context())
		if err != nil {
			respondError(c, logger, err)
			return
		}

		summaries := make([]ProductSummary, 0, len(products))
		for _, p := range products {
			summaries = append(summaries, summarize(p))
		}

		respondData(c, http.StatusOK, summaries)
	}
}

// HandleGetProduct serves the product detail view with full sizes and
// images.
func HandleGetProduct(svcs *Services, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, err := svcs.Catalog.Product(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, logger, err)
			return
		}

		respondData(c, http.StatusOK, product)
	}
}

// HandleListTestimonials serves the approved customer testimonials.
func HandleListTestimonials(svcs *Services, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		testimonials, err := svcs.Catalog.Testimonials(c.Request.Context())
		if err != nil {
			respondError(c, logger, err)
			return
		}

		respondData(c, http.StatusOK, testimonials)
	}
}
