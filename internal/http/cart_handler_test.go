package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brewhub/coffeeshop-orders/internal/cart"
	"github.com/brewhub/coffeeshop-orders/internal/order"
)

func cartRequest(method, target, body string) *http.Request {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rd)
	req.SetPathValue("userId", "alice")
	return req
}

func TestAddItem_NumericPrice(t *testing.T) {
	handler := NewCartHandler(cart.NewStore(), &fakeRepo{}, nil, testLogger())

	rr := httptest.NewRecorder()
	handler.AddItem(rr, cartRequest(http.MethodPost, "/api/carts/alice/items",
		`{"name": "Latte", "price": 4.50, "image": "/img/latte.png"}`))

	require.Equal(t, http.StatusOK, rr.Code)

	var snap cart.Snapshot
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&snap))
	require.Len(t, snap.Items, 1)
	assert.Equal(t, "Latte", snap.Items[0].Name)
	assert.Equal(t, 1, snap.Items[0].Quantity)
	assert.True(t, snap.Total.Equal(decimal.RequireFromString("4.50")))
}

func TestAddItem_CurrencyStringPrice(t *testing.T) {
	handler := NewCartHandler(cart.NewStore(), &fakeRepo{}, nil, testLogger())

	rr := httptest.NewRecorder()
	handler.AddItem(rr, cartRequest(http.MethodPost, "/api/carts/alice/items",
		`{"name": "Latte", "price": "$4.50"}`))

	require.Equal(t, http.StatusOK, rr.Code)

	var snap cart.Snapshot
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&snap))
	require.Len(t, snap.Items, 1)
	assert.True(t, snap.Items[0].Price.Equal(decimal.RequireFromString("4.50")))
}

func TestAddItem_MalformedPriceRejected(t *testing.T) {
	store := cart.NewStore()
	handler := NewCartHandler(store, &fakeRepo{}, nil, testLogger())

	rr := httptest.NewRecorder()
	handler.AddItem(rr, cartRequest(http.MethodPost, "/api/carts/alice/items",
		`{"name": "Latte", "price": "free"}`))

	require.Equal(t, http.StatusBadRequest, rr.Code)

	_, ok := store.Get("alice")
	assert.False(t, ok, "a malformed price must never create a cart entry")
}

func TestAddItem_RepeatedAddIncrements(t *testing.T) {
	store := cart.NewStore()
	handler := NewCartHandler(store, &fakeRepo{}, nil, testLogger())

	for i := 0; i < 2; i++ {
		rr := httptest.NewRecorder()
		handler.AddItem(rr, cartRequest(http.MethodPost, "/api/carts/alice/items",
			`{"name": "Latte", "price": 4.50}`))
		require.Equal(t, http.StatusOK, rr.Code)
	}

	snap, ok := store.Get("alice")
	require.True(t, ok)
	require.Len(t, snap.Items, 1)
	assert.Equal(t, 2, snap.Items[0].Quantity)
}

func TestUpdateQuantity_ZeroRemovesItem(t *testing.T) {
	store := cart.NewStore()
	store.AddItem("alice", cart.Item{Name: "Latte", Price: decimal.RequireFromString("4.50")})
	store.AddItem("alice", cart.Item{Name: "Latte", Price: decimal.RequireFromString("4.50")})

	handler := NewCartHandler(store, &fakeRepo{}, nil, testLogger())

	req := cartRequest(http.MethodPatch, "/api/carts/alice/items/Latte", `{"quantity": 0}`)
	req.SetPathValue("name", "Latte")
	rr := httptest.NewRecorder()

	handler.UpdateQuantity(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	snap, ok := store.Get("alice")
	require.True(t, ok)
	assert.Empty(t, snap.Items)
}

func TestRemoveItem(t *testing.T) {
	store := cart.NewStore()
	store.AddItem("alice", cart.Item{Name: "Latte", Price: decimal.RequireFromString("4.50")})

	handler := NewCartHandler(store, &fakeRepo{}, nil, testLogger())

	req := cartRequest(http.MethodDelete, "/api/carts/alice/items/Latte", "")
	req.SetPathValue("name", "Latte")
	rr := httptest.NewRecorder()

	handler.RemoveItem(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	snap, _ := store.Get("alice")
	assert.Empty(t, snap.Items)
}

func TestGetCart_NotFound(t *testing.T) {
	handler := NewCartHandler(cart.NewStore(), &fakeRepo{}, nil, testLogger())

	rr := httptest.NewRecorder()
	handler.GetCart(rr, cartRequest(http.MethodGet, "/api/carts/alice", ""))

	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestCheckout_CreatesOrderAndClearsCart(t *testing.T) {
	store := cart.NewStore()
	store.AddItem("alice", cart.Item{Name: "Latte", MenuItemID: "m1", Price: decimal.RequireFromString("4.50")})
	store.AddItem("alice", cart.Item{Name: "Latte", MenuItemID: "m1", Price: decimal.RequireFromString("4.50")})
	store.AddItem("alice", cart.Item{Name: "Croissant", MenuItemID: "m2", Price: decimal.RequireFromString("3.25")})

	var created *order.Order
	repo := &fakeRepo{
		createFunc: func(ctx context.Context, o *order.Order) error {
			o.ID = "order-1"
			o.Status = order.StatusPending
			created = o
			return nil
		},
	}
	pub := &fakePublisher{}
	handler := NewCartHandler(store, repo, pub, testLogger())

	rr := httptest.NewRecorder()
	handler.Checkout(rr, cartRequest(http.MethodPost, "/api/carts/alice/checkout",
		`{"order_type": "dine-in"}`))

	require.Equal(t, http.StatusCreated, rr.Code)

	require.NotNil(t, created)
	require.NotNil(t, created.UserID)
	assert.Equal(t, "alice", *created.UserID)
	assert.Equal(t, "dine-in", created.OrderType)
	// 2 * 4.50 + 3.25
	assert.True(t, created.TotalAmount.Equal(decimal.RequireFromString("12.25")))
	require.Len(t, created.Items, 2)
	assert.Equal(t, "m1", created.Items[0].MenuItemID)
	assert.Equal(t, 2, created.Items[0].Quantity)
	assert.True(t, created.Items[0].PriceAtTime.Equal(decimal.RequireFromString("4.50")))
	assert.Equal(t, "m2", created.Items[1].MenuItemID)

	assert.Equal(t, []string{"order-1"}, pub.created)

	_, ok := store.Get("alice")
	assert.False(t, ok, "cart must be cleared after checkout")
}

func TestCheckout_EmptyCart(t *testing.T) {
	store := cart.NewStore()
	store.AddItem("alice", cart.Item{Name: "Latte", Price: decimal.RequireFromString("4.50")})
	_, ok := store.UpdateQuantity("alice", "Latte", 0)
	require.True(t, ok)

	handler := NewCartHandler(store, &fakeRepo{}, nil, testLogger())

	rr := httptest.NewRecorder()
	handler.Checkout(rr, cartRequest(http.MethodPost, "/api/carts/alice/checkout", ""))

	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCheckout_NoCart(t *testing.T) {
	handler := NewCartHandler(cart.NewStore(), &fakeRepo{}, nil, testLogger())

	rr := httptest.NewRecorder()
	handler.Checkout(rr, cartRequest(http.MethodPost, "/api/carts/alice/checkout", ""))

	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestCheckout_PersistFailureKeepsCart(t *testing.T) {
	store := cart.NewStore()
	store.AddItem("alice", cart.Item{Name: "Latte", Price: decimal.RequireFromString("4.50")})

	repo := &fakeRepo{
		createFunc: func(ctx context.Context, o *order.Order) error {
			return errors.New("db down")
		},
	}
	handler := NewCartHandler(store, repo, nil, testLogger())

	rr := httptest.NewRecorder()
	handler.Checkout(rr, cartRequest(http.MethodPost, "/api/carts/alice/checkout", ""))

	require.Equal(t, http.StatusInternalServerError, rr.Code)

	snap, ok := store.Get("alice")
	require.True(t, ok, "cart survives a failed checkout")
	assert.Len(t, snap.Items, 1)
}
