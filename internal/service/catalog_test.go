package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Devstrike-DigTech/aideesigns-storefront/internal/cache"
	"github.com/Devstrike-DigTech/aideesigns-storefront/internal/domain"
	apperrors "github.com/Devstrike-DigTech/aideesigns-storefront/pkg/errors"
)

// fakeReadCache is an in-memory ReadCache storing decoded values.
type fakeReadCache struct {
	entries map[string]interface{}
	sets    int
}

func newFakeReadCache() *fakeReadCache {
	return &fakeReadCache{entries: map[string]interface{}{}}
}

func (c *fakeReadCache) GetJSON(_ context.Context, key string, out interface{}) error {
	v, ok := c.entries[key]
	if !ok {
		return cache.ErrMiss
	}
	switch dst := out.(type) {
	case *[]domain.Product:
		*dst = v.([]domain.Product)
	case *domain.Product:
		*dst = v.(domain.Product)
	case *[]domain.Testimonial:
		*dst = v.([]domain.Testimonial)
	case *[]domain.ProductionSlot:
		*dst = v.([]domain.ProductionSlot)
	case *domain.ContentPage:
		*dst = v.(domain.ContentPage)
	default:
		return cache.ErrMiss
	}
	return nil
}

func (c *fakeReadCache) SetJSON(_ context.Context, key string, v interface{}) {
	c.sets++
	switch src := v.(type) {
	case *domain.Product:
		c.entries[key] = *src
	case *domain.ContentPage:
		c.entries[key] = *src
	default:
		c.entries[key] = v
	}
}

// fakeCatalogAPI counts upstream calls so tests can prove cache hits skip
// the network.
type fakeCatalogAPI struct {
	products     []domain.Product
	testimonials []domain.Testimonial
	err          error
	calls        int
}

func (f *fakeCatalogAPI) Products(_ context.Context) ([]domain.Product, error) {
	f.calls++
	return f.products, f.err
}

func (f *fakeCatalogAPI) Product(_ context.Context, id string) (*domain.Product, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	for _, p := range f.products {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, &apperrors.ErrNotFound{Resource: "product", ID: id}
}

func (f *fakeCatalogAPI) Testimonials(_ context.Context) ([]domain.Testimonial, error) {
	f.calls++
	return f.testimonials, f.err
}

func TestCatalogProducts_CachesAfterFirstFetch(t *testing.T) {
	api := &fakeCatalogAPI{products: []domain.Product{{ID: "p1", Name: "Ankara Gown"}}}
	svc := NewCatalogService(api, newFakeReadCache(), zap.NewNop())
	ctx := context.Background()

	first, err := svc.Products(ctx)
	require.NoError(t, err)
	second, err := svc.Products(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, api.calls, "second read must come from cache")
}

func TestCatalogProduct_CachedPerID(t *testing.T) {
	api := &fakeCatalogAPI{products: []domain.Product{{ID: "p1"}, {ID: "p2"}}}
	svc := NewCatalogService(api, newFakeReadCache(), zap.NewNop())
	ctx := context.Background()

	_, err := svc.Product(ctx, "p1")
	require.NoError(t, err)
	_, err = svc.Product(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 1, api.calls)

	_, err = svc.Product(ctx, "p2")
	require.NoError(t, err)
	assert.Equal(t, 2, api.calls, "different id is a different cache entry")
}

func TestCatalogProduct_NotFoundNotCached(t *testing.T) {
	api := &fakeCatalogAPI{}
	readCache := newFakeReadCache()
	svc := NewCatalogService(api, readCache, zap.NewNop())

	_, err := svc.Product(context.Background(), "missing")
	var notFound *apperrors.ErrNotFound
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, 0, readCache.sets)
}

func TestCatalogFeatured_SkipsUnavailableAndLimits(t *testing.T) {
	api := &fakeCatalogAPI{products: []domain.Product{
		{ID: "p1", IsAvailable: true},
		{ID: "p2", IsAvailable: false},
		{ID: "p3", IsAvailable: true},
		{ID: "p4", IsAvailable: true},
	}}
	svc := NewCatalogService(api, newFakeReadCache(), zap.NewNop())

	featured, err := svc.Featured(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, featured, 2)
	assert.Equal(t, "p1", featured[0].ID)
	assert.Equal(t, "p3", featured[1].ID)
}

func TestCatalogProducts_UpstreamErrorPropagates(t *testing.T) {
	api := &fakeCatalogAPI{err: errors.New("backend down")}
	svc := NewCatalogService(api, newFakeReadCache(), zap.NewNop())

	_, err := svc.Products(context.Background())
	assert.Error(t, err)
}

func TestCatalogTestimonials_Cached(t *testing.T) {
	api := &fakeCatalogAPI{testimonials: []domain.Testimonial{{ID: "t1"}}}
	svc := NewCatalogService(api, newFakeReadCache(), zap.NewNop())
	ctx := context.Background()

	_, err := svc.Testimonials(ctx)
	require.NoError(t, err)
	_, err = svc.Testimonials(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, api.calls)
}
