package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Devstrike-DigTech/aideesigns-storefront/internal/domain"
	apperrors "github.com/Devstrike-DigTech/aideesigns-storefront/pkg/errors"
)

type fakePagesAPI struct {
	pages map[string]domain.ContentPage
	calls int
}

func (f *fakePagesAPI) Page(_ context.Context, slug string) (*domain.ContentPage, error) {
	f.calls++
	page, ok := f.pages[slug]
	if !ok {
		return nil, &apperrors.ErrNotFound{Resource: "page", ID: slug}
	}
	return &page, nil
}

func TestContentPage_CachedPerSlug(t *testing.T) {
	api := &fakePagesAPI{pages: map[string]domain.ContentPage{
		"home":  {Slug: "home", Title: "Welcome"},
		"about": {Slug: "about", Title: "About Us"},
	}}
	svc := NewContentService(api, newFakeReadCache(), zap.NewNop())
	ctx := context.Background()

	page, err := svc.Page(ctx, "home")
	require.NoError(t, err)
	assert.Equal(t, "Welcome", page.Title)

	_, err = svc.Page(ctx, "home")
	require.NoError(t, err)
	assert.Equal(t, 1, api.calls)

	_, err = svc.Page(ctx, "about")
	require.NoError(t, err)
	assert.Equal(t, 2, api.calls)
}

func TestContentPage_MissingSlug(t *testing.T) {
	svc := NewContentService(&fakePagesAPI{}, newFakeReadCache(), zap.NewNop())

	_, err := svc.Page(context.Background(), "ghost")
	var notFound *apperrors.ErrNotFound
	assert.ErrorAs(t, err, &notFound)
}
