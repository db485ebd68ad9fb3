package cart

import (
	"github.com/shopspring/decimal"
)

// Item is one pre-checkout selection. Name is the key within a cart;
// MenuItemID carries the menu reference through to checkout and falls
// back to Name when the storefront does not send one.
type Item struct {
	Name       string          `json:"name"`
	MenuItemID string          `json:"menuItemId"`
	Price      decimal.Decimal `json:"price"`
	Image      string          `json:"image"`
	Quantity   int             `json:"quantity"`
}

// Cart holds at most one Item per name, in insertion order. All
// operations are total: removing an absent item or updating an absent
// name is a no-op, never an error. Cart itself is not safe for
// concurrent use; Store serialises access per session.
type Cart struct {
	items []Item
}

// AddItem merges into an existing entry by name, incrementing its
// quantity, or appends a new entry with quantity 1.
func (c *Cart) AddItem(it Item) {
	for i := range c.items {
		if c.items[i].Name == it.Name {
			c.items[i].Quantity++
			return
		}
	}
	it.Quantity = 1
	if it.MenuItemID == "" {
		it.MenuItemID = it.Name
	}
	c.items = append(c.items, it)
}

func (c *Cart) RemoveItem(name string) {
	for i := range c.items {
		if c.items[i].Name == name {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// UpdateQuantity replaces the quantity for name. A quantity below 1
// removes the item, same as RemoveItem.
func (c *Cart) UpdateQuantity(name string, quantity int) {
	if quantity < 1 {
		c.RemoveItem(name)
		return
	}
	for i := range c.items {
		if c.items[i].Name == name {
			c.items[i].Quantity = quantity
			return
		}
	}
}

func (c *Cart) Clear() {
	c.items = nil
}

// Total recomputes the cart value on every call; it is never cached.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range c.items {
		total = total.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total
}

// Items returns a copy so callers cannot mutate cart state.
func (c *Cart) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) Len() int {
	return len(c.items)
}
