package http

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/brewhub/coffeeshop-orders/internal/cart"
	"github.com/brewhub/coffeeshop-orders/internal/order"
)

func NewRouter(orders order.Repository, carts *cart.Store, publisher OrderEventsPublisher, logger *log.Logger) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", healthHandler)

	oh := NewOrderHandler(orders, publisher, logger)
	mux.HandleFunc("POST /api/orders", oh.CreateOrder)
	mux.HandleFunc("GET /api/orders", oh.ListOrders)
	mux.HandleFunc("GET /api/orders/stats/status-counts", oh.StatusCounts)
	mux.HandleFunc("GET /api/orders/{orderId}", oh.GetOrder)
	mux.HandleFunc("GET /api/orders/{orderId}/items", oh.GetOrderItems)
	mux.HandleFunc("PATCH /api/orders/{orderId}/status", oh.UpdateOrderStatus)
	mux.HandleFunc("GET /api/users/{userId}/orders", oh.ListOrdersByUser)

	ch := NewCartHandler(carts, orders, publisher, logger)
	mux.HandleFunc("GET /api/carts/{userId}", ch.GetCart)
	mux.HandleFunc("DELETE /api/carts/{userId}", ch.ClearCart)
	mux.HandleFunc("POST /api/carts/{userId}/items", ch.AddItem)
	mux.HandleFunc("PATCH /api/carts/{userId}/items/{name}", ch.UpdateQuantity)
	mux.HandleFunc("DELETE /api/carts/{userId}/items/{name}", ch.RemoveItem)
	mux.HandleFunc("POST /api/carts/{userId}/checkout", ch.Checkout)

	return mux
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "coffeeshop-orders",
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
