package validation

import "encoding/json"

// CreateOrderRequest is the POST /api/orders body. Pointer fields
// distinguish "absent" from a legitimate zero.
type CreateOrderRequest struct {
	OrderData  OrderData          `json:"orderData"`
	OrderItems []OrderItemRequest `json:"orderItems" validate:"required,min=1,dive"`
}

type OrderData struct {
	UserID        *string         `json:"user_id"`
	TotalAmount   *float64        `json:"total_amount" validate:"required"`
	Status        string          `json:"status" validate:"omitempty,oneof=pending preparing ready completed cancelled"`
	OrderType     string          `json:"order_type"`
	Customization json.RawMessage `json:"customization"`
}

type OrderItemRequest struct {
	MenuItemID  string   `json:"menu_item_id" validate:"required"`
	Quantity    int      `json:"quantity" validate:"required,min=1"`
	PriceAtTime *float64 `json:"price_at_time" validate:"required"`
}

// UpdateStatusRequest is the PATCH status body.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}
