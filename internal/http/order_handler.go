package http

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/brewhub/coffeeshop-orders/internal/order"
	"github.com/brewhub/coffeeshop-orders/internal/validation"
)

// OrderEventsPublisher emits order lifecycle events. A nil publisher
// disables publishing; a publish failure after commit is logged, never
// surfaced to the client.
type OrderEventsPublisher interface {
	PublishOrderCreated(ctx context.Context, o *order.Order) error
	PublishOrderStatusChanged(ctx context.Context, orderID string, status order.Status) error
}

type OrderHandler struct {
	repo      order.Repository
	publisher OrderEventsPublisher
	validate  *validatorv10.Validate
	logger    *log.Logger
}

func NewOrderHandler(repo order.Repository, publisher OrderEventsPublisher, logger *log.Logger) *OrderHandler {
	return &OrderHandler{
		repo:      repo,
		publisher: publisher,
		validate:  validation.New(),
		logger:    logger,
	}
}

// CreateOrder validates the request shape at this boundary, then hands
// the repository a fully-defaulted order. Validation failures never
// reach persistence.
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req validation.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, validation.Message(err))
		return
	}

	o := buildOrder(req)

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.repo.Create(ctx, o); err != nil {
		h.logger.Printf("create order: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to create order")
		return
	}

	h.publishCreated(ctx, o)

	writeJSON(w, http.StatusCreated, o)
}

func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	orderID := r.PathValue("orderId")
	if orderID == "" {
		writeError(w, http.StatusBadRequest, "missing orderId")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	o, err := h.repo.GetByID(ctx, orderID)
	if err != nil {
		h.logger.Printf("get order: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to load order")
		return
	}
	if o == nil {
		writeError(w, http.StatusNotFound, "order not found")
		return
	}

	writeJSON(w, http.StatusOK, o)
}

func (h *OrderHandler) GetOrderItems(w http.ResponseWriter, r *http.Request) {
	orderID := r.PathValue("orderId")
	if orderID == "" {
		writeError(w, http.StatusBadRequest, "missing orderId")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	items, err := h.repo.GetItems(ctx, orderID)
	if err != nil {
		h.logger.Printf("get order items: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to load order items")
		return
	}
	if items == nil {
		items = []order.Item{}
	}

	writeJSON(w, http.StatusOK, items)
}

// ListOrders AND-combines the optional status and userId query filters.
// An unknown status simply matches nothing.
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	f := order.Filter{
		Status: order.Status(r.URL.Query().Get("status")),
		UserID: r.URL.Query().Get("userId"),
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	orders, err := h.repo.List(ctx, f)
	if err != nil {
		h.logger.Printf("list orders: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to load orders")
		return
	}
	if orders == nil {
		orders = []order.Order{}
	}

	writeJSON(w, http.StatusOK, orders)
}

func (h *OrderHandler) ListOrdersByUser(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "missing userId")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	orders, err := h.repo.ListByUser(ctx, userID)
	if err != nil {
		h.logger.Printf("list user orders: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to load orders")
		return
	}
	if orders == nil {
		orders = []order.Order{}
	}

	writeJSON(w, http.StatusOK, orders)
}

// UpdateOrderStatus overwrites the status. Any known status may replace
// any other; only enum membership is checked here.
func (h *OrderHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	orderID := r.PathValue("orderId")
	if orderID == "" {
		writeError(w, http.StatusBadRequest, "missing orderId")
		return
	}

	var req validation.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	status := order.Status(req.Status)
	if !status.Known() {
		writeError(w, http.StatusBadRequest, "unknown status")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	o, err := h.repo.UpdateStatus(ctx, orderID, status)
	if err != nil {
		h.logger.Printf("update order status: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to update order status")
		return
	}
	if o == nil {
		writeError(w, http.StatusNotFound, "order not found")
		return
	}

	if h.publisher != nil {
		if err := h.publisher.PublishOrderStatusChanged(ctx, o.ID, o.Status); err != nil {
			h.logger.Printf("publish order status changed: %v", err)
		}
	}

	writeJSON(w, http.StatusOK, o)
}

func (h *OrderHandler) StatusCounts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	counts, err := h.repo.CountByStatus(ctx)
	if err != nil {
		h.logger.Printf("count orders by status: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to load status counts")
		return
	}
	if counts == nil {
		counts = []order.StatusCount{}
	}

	writeJSON(w, http.StatusOK, counts)
}

func (h *OrderHandler) publishCreated(ctx context.Context, o *order.Order) {
	if h.publisher == nil {
		return
	}
	if err := h.publisher.PublishOrderCreated(ctx, o); err != nil {
		h.logger.Printf("publish order created: %v", err)
	}
}

func buildOrder(req validation.CreateOrderRequest) *order.Order {
	o := &order.Order{
		UserID:        req.OrderData.UserID,
		TotalAmount:   decimal.NewFromFloat(*req.OrderData.TotalAmount),
		Status:        order.Status(req.OrderData.Status),
		OrderType:     req.OrderData.OrderType,
		Customization: req.OrderData.Customization,
	}
	for _, it := range req.OrderItems {
		o.Items = append(o.Items, order.Item{
			MenuItemID:  it.MenuItemID,
			Quantity:    it.Quantity,
			PriceAtTime: decimal.NewFromFloat(*it.PriceAtTime),
		})
	}
	return o
}
