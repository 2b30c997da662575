package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/Devstrike-DigTech/aideesigns-storefront/internal/cache"
	"github.com/Devstrike-DigTech/aideesigns-storefront/internal/domain"
)

// CatalogAPI is the slice of the backend client the catalog reads need.
type CatalogAPI interface {
	Products(ctx context.Context) ([]domain.Product, error)
	Product(ctx context.Context, id string) (*domain.Product, error)
	Testimonials(ctx context.Context) ([]domain.Testimonial, error)
}

// ReadCache is the freshness cache for backend reads. Implemented by
// cache.Cache; GetJSON reports cache.ErrMiss on absence.
type ReadCache interface {
	GetJSON(ctx context.Context, key string, out interface{}) error
	SetJSON(ctx context.Context, key string, v interface{})
}

type catalogService struct {
	api    CatalogAPI
	cache  ReadCache
	logger *zap.Logger
}

// NewCatalogService creates a catalog read service with the uniform fetch
// policy: cached reads are fresh for the cache TTL, misses go upstream
// (which retries at most once), successful fetches are written back.
func NewCatalogService(api CatalogAPI, readCache ReadCache, logger *zap.Logger) *catalogService {
	return &catalogService{
		api:    api,
		cache:  readCache,
		logger: logger,
	}
}

// Products returns the full catalog.
func (s *catalogService) Products(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := s.cache.GetJSON(ctx, cache.ProductsKey(), &products); err == nil {
		return products, nil
	}

	products, err := s.api.Products(ctx)
	if err != nil {
		return nil, err
	}

	s.cache.SetJSON(ctx, cache.ProductsKey(), products)
	return products, nil
}

// Product returns a single catalog entry.
func (s *catalogService) Product(ctx context.Context, id string) (*domain.Product, error) {
	var product domain.Product
	if err := s.cache.GetJSON(ctx, cache.ProductKey(id), &product); err == nil {
		return &product, nil
	}

	fetched, err := s.api.Product(ctx, id)
	if err != nil {
		return nil, err
	}

	s.cache.SetJSON(ctx, cache.ProductKey(id), fetched)
	return fetched, nil
}

// Featured returns up to limit available products for the home view.
func (s *catalogService) Featured(ctx context.Context, limit int) ([]domain.Product, error) {
	products, err := s.Products(ctx)
	if err != nil {
		return nil, err
	}

	featured := make([]domain.Product, 0, limit)
	for _, p := range products {
		if !p.IsAvailable {
			continue
		}
		featured = append(featured, p)
		if len(featured) == limit {
			break
		}
	}
	return featured, nil
}

// Testimonials returns the approved customer testimonials.
func (s *catalogService) Testimonials(ctx context.Context) ([]domain.Testimonial, error) {
	var testimonials []domain.Testimonial
	if err := s.cache.GetJSON(ctx, cache.TestimonialsKey(), &testimonials); err == nil {
		return testimonials, nil
	}

	testimonials, err := s.api.Testimonials(ctx)
	if err != nil {
		return nil, err
	}

	s.cache.SetJSON(ctx, cache.TestimonialsKey(), testimonials)
	return testimonials, nil
}
