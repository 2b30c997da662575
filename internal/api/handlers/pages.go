package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Devstrike-DigTech/aideesigns-storefront/internal/domain"
)

// featuredLimit is how many products the home view showcases.
const featuredLimit = 4

// HomeView composes everything the landing page renders in one response.
type HomeView struct {
	Page         *domain.ContentPage  `json:"page,omitempty"`
	Featured     []ProductSummary     `json:"featured"`
	Testimonials []domain.Testimonial `json:"testimonials"`
}

// HandleHome serves the landing page composition: the CMS home page plus
// featured products and testimonials. A missing CMS page degrades to an
// empty hero rather than failing the whole view.
func HandleHome(svcs *Services, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		featured, err := svcs.Catalog.Featured(ctx, featuredLimit)
		if err != nil {
			respondError(c, logger, err)
			return
		}

		view := HomeView{
			Featured:     make([]ProductSummary, 0, len(featured)),
			Testimonials: []domain.Testimonial{},
		}
		for _, p := range featured {
			view.Featured = append(view.Featured, summarize(p))
		}

		if page, err := svcs.Content.Page(ctx, "home"); err == nil {
			view.Page = page
		} else {
			logger.Warn("Home page content unavailable", zap.Error(err))
		}

		if testimonials, err := svcs.Catalog.Testimonials(ctx); err == nil {
			view.Testimonials = testimonials
		} else {
			logger.Warn("Testimonials unavailable", zap.Error(err))
		}

		respondData(c, http.StatusOK, view)
	}
}

// HandleGetPage serves a CMS page by slug.
func HandleGetPage(svcs *Services, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, err := svcs.Content.Page(c.Request.Context(), c.Param("slug"))
		if err != nil {
			respondError(c, logger, err)
			return
		}

		respondData(c, http.StatusOK, page)
	}
}
