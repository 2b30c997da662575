package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/Devstrike-DigTech/aideesigns-storefront/internal/cache"
	"github.com/Devstrike-DigTech/aideesigns-storefront/internal/domain"
)

// PagesAPI is the slice of the backend client the CMS reads need.
type PagesAPI interface {
	Page(ctx context.Context, slug string) (*domain.ContentPage, error)
}

type contentService struct {
	api    PagesAPI
	cache  ReadCache
	logger *zap.Logger
}

// NewContentService creates the CMS page read service.
func NewContentService(api PagesAPI, readCache ReadCache, logger *zap.Logger) *contentService {
	return &contentService{
		api:    api,
		cache:  readCache,
		logger: logger,
	}
}

// Page returns a CMS page by slug, cached per slug.
func (s *contentService) Page(ctx context.Context, slug string) (*domain.ContentPage, error) {
	var page domain.ContentPage
	if err := s.cache.GetJSON(ctx, cache.PageKey(slug), &page); err == nil {
		return &page, nil
	}

	fetched, err := s.api.Page(ctx, slug)
	if err != nil {
		return nil, err
	}

	s.cache.SetJSON(ctx, cache.PageKey(slug), fetched)
	return fetched, nil
}
