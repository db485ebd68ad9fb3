package events

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/brewhub/coffeeshop-orders/internal/order"
)

// OrderItem mirrors one order line in event payloads so consumers do
// not depend on the service's internal model.
type OrderItem struct {
	MenuItemID  string          `json:"menuItemId"`
	Quantity    int             `json:"quantity"`
	PriceAtTime decimal.Decimal `json:"priceAtTime"`
}

type OrderCreated struct {
	EventType   string          `json:"eventType"`
	OrderID     string          `json:"orderId"`
	UserID      *string         `json:"userId,omitempty"`
	OrderType   string          `json:"orderType"`
	Status      order.Status    `json:"status"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Items       []OrderItem     `json:"items"`
	Timestamp   time.Time       `json:"timestamp"`
}

type OrderStatusChanged struct {
	EventType string       `json:"eventType"`
	OrderID   string       `json:"orderId"`
	Status    order.Status `json:"status"`
	Timestamp time.Time    `json:"timestamp"`
}

func NewOrderCreated(o *order.Order) OrderCreated {
	ev := OrderCreated{
		EventType:   "OrderCreated",
		OrderID:     o.ID,
		UserID:      o.UserID,
		OrderType:   o.OrderType,
		Status:      o.Status,
		TotalAmount: o.TotalAmount,
		Timestamp:   time.Now().UTC(),
	}
	for _, it := range o.Items {
		ev.Items = append(ev.Items, OrderItem{
			MenuItemID:  it.MenuItemID,
			Quantity:    it.Quantity,
			PriceAtTime: it.PriceAtTime,
		})
	}
	return ev
}
