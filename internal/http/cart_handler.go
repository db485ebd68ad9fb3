package http

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/brewhub/coffeeshop-orders/internal/cart"
	"github.com/brewhub/coffeeshop-orders/internal/order"
)

type CartHandler struct {
	carts     *cart.Store
	orders    order.Repository
	publisher OrderEventsPublisher
	logger    *log.Logger
}

func NewCartHandler(carts *cart.Store, orders order.Repository, publisher OrderEventsPublisher, logger *log.Logger) *CartHandler {
	return &CartHandler{carts: carts, orders: orders, publisher: publisher, logger: logger}
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "missing userId")
		return
	}

	snap, ok := h.carts.Get(userID)
	if !ok {
		writeError(w, http.StatusNotFound, "cart not found")
		return
	}

	writeJSON(w, http.StatusOK, snap)
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "missing userId")
		return
	}

	var body struct {
		Name       string          `json:"name"`
		MenuItemID string          `json:"menu_item_id"`
		Price      json.RawMessage `json:"price"`
		Image      string          `json:"image"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if body.Name == "" {
		writeError(w, http.StatusBadRequest, "missing name")
		return
	}

	price, err := parsePriceField(body.Price)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	snap := h.carts.AddItem(userID, cart.Item{
		Name:       body.Name,
		MenuItemID: body.MenuItemID,
		Price:      price,
		Image:      body.Image,
	})

	writeJSON(w, http.StatusOK, snap)
}

func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")
	name := r.PathValue("name")
	if userID == "" || name == "" {
		writeError(w, http.StatusBadRequest, "missing userId or item name")
		return
	}

	var body struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	snap, ok := h.carts.UpdateQuantity(userID, name, body.Quantity)
	if !ok {
		writeError(w, http.StatusNotFound, "cart not found")
		return
	}

	writeJSON(w, http.StatusOK, snap)
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")
	name := r.PathValue("name")
	if userID == "" || name == "" {
		writeError(w, http.StatusBadRequest, "missing userId or item name")
		return
	}

	snap, ok := h.carts.RemoveItem(userID, name)
	if !ok {
		writeError(w, http.StatusNotFound, "cart not found")
		return
	}

	writeJSON(w, http.StatusOK, snap)
}

func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "missing userId")
		return
	}

	h.carts.Clear(userID)

	writeJSON(w, http.StatusOK, map[string]string{"status": "cart cleared"})
}

// Checkout turns the session's cart into a persisted order: cart prices
// become price_at_time snapshots, the cart total becomes total_amount.
// The cart is cleared only after the order is committed.
func (h *CartHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "missing userId")
		return
	}

	var body struct {
		OrderType     string          `json:"order_type"`
		Customization json.RawMessage `json:"customization"`
	}
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}
	}

	snap, ok := h.carts.Get(userID)
	if !ok {
		writeError(w, http.StatusNotFound, "cart not found")
		return
	}
	if len(snap.Items) == 0 {
		writeError(w, http.StatusBadRequest, "cart is empty")
		return
	}

	o := &order.Order{
		UserID:        &userID,
		TotalAmount:   snap.Total,
		OrderType:     body.OrderType,
		Customization: body.Customization,
	}
	for _, it := range snap.Items {
		o.Items = append(o.Items, order.Item{
			MenuItemID:  it.MenuItemID,
			Quantity:    it.Quantity,
			PriceAtTime: it.Price,
		})
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.orders.Create(ctx, o); err != nil {
		h.logger.Printf("checkout: create order: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to create order")
		return
	}

	if h.publisher != nil {
		if err := h.publisher.PublishOrderCreated(ctx, o); err != nil {
			h.logger.Printf("checkout: publish order created: %v", err)
		}
	}

	h.carts.Clear(userID)

	writeJSON(w, http.StatusCreated, o)
}

// parsePriceField accepts a price as either a JSON number or a
// currency-formatted string such as "$3.50".
func parsePriceField(raw json.RawMessage) (decimal.Decimal, error) {
	if len(raw) == 0 {
		return decimal.Decimal{}, errors.New("missing price")
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return cart.ParsePrice(s)
	}

	var d decimal.Decimal
	if err := json.Unmarshal(raw, &d); err != nil {
		return decimal.Decimal{}, errors.New("invalid price")
	}
	return d, nil
}
