package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Devstrike-DigTech/aideesigns-storefront/internal/domain"
	apperrors "github.com/Devstrike-DigTech/aideesigns-storefront/pkg/errors"
)

// fakeCartRepo is an in-memory CartRepository with version semantics
// matching the Postgres implementation. conflictsLeft forces SaveIfVersion
// to report a lost race for the next n calls.
type fakeCartRepo struct {
	carts         map[string]*domain.Cart
	conflictsLeft int
	deletes       int
	saveErr       error
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{carts: map[string]*domain.Cart{}}
}

func (r *fakeCartRepo) Get(_ context.Context, id string) (*domain.Cart, error) {
	cart, ok := r.carts[id]
	if !ok {
		return nil, &apperrors.ErrNotFound{Resource: "cart", ID: id}
	}
	clone := *cart
	clone.Items = append([]domain.CartItem{}, cart.Items...)
	return &clone, nil
}

func (r *fakeCartRepo) SaveIfVersion(_ context.Context, cart *domain.Cart, expected int) (bool, error) {
	if r.saveErr != nil {
		return false, r.saveErr
	}
	if r.conflictsLeft > 0 {
		r.conflictsLeft--
		return false, nil
	}
	stored, ok := r.carts[cart.ID]
	switch {
	case !ok && expected != 0:
		return false, nil
	case ok && stored.Version != expected:
		return false, nil
	}
	cart.Version = expected + 1
	clone := *cart
	clone.Items = append([]domain.CartItem{}, cart.Items...)
	r.carts[cart.ID] = &clone
	return true, nil
}

func (r *fakeCartRepo) Delete(_ context.Context, id string) error {
	r.deletes++
	delete(r.carts, id)
	return nil
}

// fakeProductSource serves a fixed set of products.
type fakeProductSource struct {
	products map[string]domain.Product
	calls    int
}

func (f *fakeProductSource) Product(_ context.Context, id string) (*domain.Product, error) {
	f.calls++
	p, ok := f.products[id]
	if !ok {
		return nil, &apperrors.ErrNotFound{Resource: "product", ID: id}
	}
	return &p, nil
}

func testCartService(products ...domain.Product) (*cartService, *fakeCartRepo, *fakeProductSource) {
	repo := newFakeCartRepo()
	source := &fakeProductSource{products: map[string]domain.Product{}}
	for _, p := range products {
		source.products[p.ID] = p
	}
	return NewCartService(repo, source, zap.NewNop()), repo, source
}

func gown() domain.Product {
	return domain.Product{
		ID:          "prod-gown",
		Name:        "Ankara Gown",
		Price:       5000,
		IsAvailable: true,
		Sizes: []domain.ProductSize{
			{ID: "size-m", SizeLabel: "M", StockQuantity: 3},
		},
	}
}

func TestCartGet_MissingCartIsEmpty(t *testing.T) {
	svc, _, _ := testCartService()

	cart, err := svc.Get(context.Background(), "cart-1")
	require.NoError(t, err)
	assert.Equal(t, "cart-1", cart.ID)
	assert.True(t, cart.IsEmpty())
}

func TestCartAddItem_RejectsNonPositiveQuantity(t *testing.T) {
	svc, _, source := testCartService(gown())

	for _, q := range []int{0, -1} {
		_, err := svc.AddItem(context.Background(), "cart-1", AddItemInput{
			ProductID: "prod-gown", SizeID: "size-m", Quantity: q,
		})
		var invalid *apperrors.ErrInvalidInput
		require.ErrorAs(t, err, &invalid)
	}
	assert.Equal(t, 0, source.calls, "rejected before any product lookup")
}

func TestCartAddItem_MergesByKey(t *testing.T) {
	svc, _, _ := testCartService(gown())
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "cart-1", AddItemInput{ProductID: "prod-gown", SizeID: "size-m", Quantity: 1})
	require.NoError(t, err)
	cart, err := svc.AddItem(ctx, "cart-1", AddItemInput{ProductID: "prod-gown", SizeID: "size-m", Quantity: 2})
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 3, cart.Items[0].Quantity)
}

func TestCartAddItem_RejectsBeyondStock(t *testing.T) {
	svc, _, _ := testCartService(gown())
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "cart-1", AddItemInput{ProductID: "prod-gown", SizeID: "size-m", Quantity: 2})
	require.NoError(t, err)

	_, err = svc.AddItem(ctx, "cart-1", AddItemInput{ProductID: "prod-gown", SizeID: "size-m", Quantity: 2})
	var invalid *apperrors.ErrInvalidInput
	require.ErrorAs(t, err, &invalid)
	assert.Contains(t, invalid.Message, "in stock")
}

func TestCartAddItem_UnknownSize(t *testing.T) {
	svc, _, _ := testCartService(gown())

	_, err := svc.AddItem(context.Background(), "cart-1", AddItemInput{
		ProductID: "prod-gown", SizeID: "size-xxl", Quantity: 1,
	})
	var invalid *apperrors.ErrInvalidInput
	assert.ErrorAs(t, err, &invalid)
}

func TestCartAddItem_UnavailableProduct(t *testing.T) {
	p := gown()
	p.IsAvailable = false
	svc, _, _ := testCartService(p)

	_, err := svc.AddItem(context.Background(), "cart-1", AddItemInput{
		ProductID: "prod-gown", SizeID: "size-m", Quantity: 1,
	})
	var invalid *apperrors.ErrInvalidInput
	assert.ErrorAs(t, err, &invalid)
}

func TestCartUpdateQuantity_ZeroRemovesLine(t *testing.T) {
	svc, _, _ := testCartService(gown())
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "cart-1", AddItemInput{ProductID: "prod-gown", SizeID: "size-m", Quantity: 2})
	require.NoError(t, err)

	cart, err := svc.UpdateQuantity(ctx, "cart-1", "prod-gown", "size-m", 0)
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}

func TestCartUpdateQuantity_SetsExactValue(t *testing.T) {
	svc, _, _ := testCartService(gown())
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "cart-1", AddItemInput{ProductID: "prod-gown", SizeID: "size-m", Quantity: 1})
	require.NoError(t, err)

	cart, err := svc.UpdateQuantity(ctx, "cart-1", "prod-gown", "size-m", 3)
	require.NoError(t, err)
	assert.Equal(t, 3, cart.Items[0].Quantity)
}

func TestCartUpdateQuantity_RejectsBeyondSnapshotStock(t *testing.T) {
	svc, _, _ := testCartService(gown())
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "cart-1", AddItemInput{ProductID: "prod-gown", SizeID: "size-m", Quantity: 1})
	require.NoError(t, err)

	_, err = svc.UpdateQuantity(ctx, "cart-1", "prod-gown", "size-m", 10)
	var invalid *apperrors.ErrInvalidInput
	assert.ErrorAs(t, err, &invalid)
}

func TestCartClear_DropsStoredCart(t *testing.T) {
	svc, repo, _ := testCartService(gown())
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "cart-1", AddItemInput{ProductID: "prod-gown", SizeID: "size-m", Quantity: 1})
	require.NoError(t, err)

	require.NoError(t, svc.Clear(ctx, "cart-1"))
	assert.Equal(t, 1, repo.deletes)

	cart, err := svc.Get(ctx, "cart-1")
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}

func TestCartMutate_ReplaysOnceOnVersionConflict(t *testing.T) {
	svc, repo, _ := testCartService(gown())
	repo.conflictsLeft = 1

	cart, err := svc.AddItem(context.Background(), "cart-1", AddItemInput{
		ProductID: "prod-gown", SizeID: "size-m", Quantity: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, cart.TotalItems())
}

func TestCartMutate_GivesUpAfterReplay(t *testing.T) {
	svc, repo, _ := testCartService(gown())
	repo.conflictsLeft = 2

	_, err := svc.AddItem(context.Background(), "cart-1", AddItemInput{
		ProductID: "prod-gown", SizeID: "size-m", Quantity: 1,
	})
	var conflict *apperrors.ErrConflict
	assert.ErrorAs(t, err, &conflict)
}

func TestCartMutate_PropagatesStorageError(t *testing.T) {
	svc, repo, _ := testCartService(gown())
	repo.saveErr = errors.New("connection reset")

	_, err := svc.AddItem(context.Background(), "cart-1", AddItemInput{
		ProductID: "prod-gown", SizeID: "size-m", Quantity: 1,
	})
	assert.Error(t, err)
}

func TestCartPersistenceRoundTrip(t *testing.T) {
	svc, _, _ := testCartService(gown())
	ctx := context.Background()

	saved, err := svc.AddItem(ctx, "cart-1", AddItemInput{ProductID: "prod-gown", SizeID: "size-m", Quantity: 2})
	require.NoError(t, err)

	// A fresh read must reproduce the same keys, quantities, and snapshots.
	restored, err := svc.Get(ctx, "cart-1")
	require.NoError(t, err)
	assert.Equal(t, saved.Items, restored.Items)
	assert.Equal(t, saved.TotalPrice(), restored.TotalPrice())
}
