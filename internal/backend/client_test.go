package backend

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Devstrike-DigTech/aideesigns-storefront/internal/config"
	apperrors "github.com/Devstrike-DigTech/aideesigns-storefront/pkg/errors"
)

func testClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := NewClient(config.BackendConfig{
		BaseURL: srv.URL + "/api",
		Timeout: 5 * time.Second,
	}, zap.NewNop())
	return client, srv
}

func TestGet_UnwrapsEnvelope(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/products", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"data":[{"id":"p1","name":"Ankara Gown","price":5000,"isAvailable":true,"sizes":[],"images":[]}]}`))
	}))

	products, err := client.Products(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Ankara Gown", products[0].Name)
	assert.Equal(t, float64(5000), products[0].Price)
}

func TestGet_RetriesOnceOnServerError(t *testing.T) {
	var calls int32
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"success":false,"message":"temporarily down"}`))
			return
		}
		w.Write([]byte(`{"success":true,"data":[]}`))
	}))

	_, err := client.Products(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestGet_StopsAfterSingleRetry(t *testing.T) {
	var calls int32
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"success":false,"message":"still down"}`))
	}))

	_, err := client.Products(context.Background())
	require.Error(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))

	var upstream *apperrors.ErrUpstream
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, http.StatusInternalServerError, upstream.Status)
	assert.Equal(t, "still down", upstream.Message)
}

func TestGet_BusinessRejectionNotRetried(t *testing.T) {
	var calls int32
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"success":false,"message":"Order not found"}`))
	}))

	_, err := client.TrackOrder(context.Background(), "ord-1", "08030000000", "")
	require.Error(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))

	var upstream *apperrors.ErrUpstream
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, http.StatusNotFound, upstream.Status)
	assert.Equal(t, "Order not found", upstream.Message)
}

func TestGet_EnvelopeFailureWithOKStatus(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false,"message":"insufficient stock"}`))
	}))

	_, err := client.Products(context.Background())
	var upstream *apperrors.ErrUpstream
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, "insufficient stock", upstream.Message)
}

func TestPost_NeverRetried(t *testing.T) {
	var calls int32
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"success":false,"message":"boom"}`))
	}))

	_, err := client.CreateBooking(context.Background(), CreateBookingRequest{
		CustomerName:  "Ada",
		Phone:         "08030000000",
		OutfitType:    "Evening Gown",
		PreferredDate: "2026-09-14",
	})
	require.Error(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestSlots_SendsDateRange(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/slots", r.URL.Path)
		assert.Equal(t, "2026-09-01", r.URL.Query().Get("from"))
		assert.Equal(t, "2026-12-31", r.URL.Query().Get("to"))
		w.Write([]byte(`{"success":true,"data":[{"id":"s1","productionDate":"2026-09-14","maxCapacity":3,"bookedCount":1,"remainingCapacity":2,"isClosed":false,"isAvailable":true}]}`))
	}))

	slots, err := client.Slots(context.Background(), "2026-09-01", "2026-12-31")
	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.True(t, slots[0].Bookable())
}

func TestCreateOrder_ReturnsAuthorizationURL(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/orders", r.URL.Path)
		w.Write([]byte(`{"success":true,"data":{"orderId":"ord-42","paymentAuthorizationUrl":"https://pay.example/x"}}`))
	}))

	resp, err := client.CreateOrder(context.Background(), CreateOrderRequest{})
	require.NoError(t, err)
	assert.Equal(t, "ord-42", resp.OrderID)
	assert.Equal(t, "https://pay.example/x", resp.PaymentAuthorizationURL)
}
