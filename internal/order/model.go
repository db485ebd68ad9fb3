package order

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Item is one line of an order. PriceAtTime is the menu price snapshotted
// at creation; later menu edits never change it.
type Item struct {
	ID          string          `json:"id"`
	OrderID     string          `json:"orderId"`
	MenuItemID  string          `json:"menuItemId"`
	Quantity    int             `json:"quantity"`
	PriceAtTime decimal.Decimal `json:"priceAtTime"`
	LineNo      int             `json:"lineNo"`
}

// Order is one checkout. UserID is nil for guest orders.
type Order struct {
	ID            string          `json:"orderId"`
	UserID        *string         `json:"userId,omitempty"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	Status        Status          `json:"status"`
	OrderType     string          `json:"orderType"`
	Customization json.RawMessage `json:"customization,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	Items         []Item          `json:"items,omitempty"`
}

// StatusCount is one row of the grouped status aggregate.
type StatusCount struct {
	Status Status `json:"status"`
	Count  int    `json:"count"`
}
