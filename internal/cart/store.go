package cart

import (
	"sync"

	"github.com/shopspring/decimal"
)

// Snapshot is a point-in-time copy of one session's cart, safe to use
// outside the store's lock.
type Snapshot struct {
	UserID string          `json:"userId"`
	Items  []Item          `json:"items"`
	Total  decimal.Decimal `json:"totalAmount"`
}

// Store keeps one cart per session. Carts live only in memory: they are
// pre-checkout state with no server-side durability, created on first
// add and dropped on clear. Each operation is individually atomic.
type Store struct {
	mu    sync.Mutex
	carts map[string]*Cart
}

func NewStore() *Store {
	return &Store{carts: make(map[string]*Cart)}
}

// Get returns the session's cart, or ok=false when none exists.
func (s *Store) Get(userID string) (Snapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.carts[userID]
	if !ok {
		return Snapshot{UserID: userID, Total: decimal.Zero}, false
	}
	return snapshot(userID, c), true
}

// AddItem merges the item into the session's cart, creating the cart if
// needed.
func (s *Store) AddItem(userID string, it Item) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.carts[userID]
	if !ok {
		c = &Cart{}
		s.carts[userID] = c
	}
	c.AddItem(it)
	return snapshot(userID, c)
}

// UpdateQuantity sets the quantity for name; below 1 removes the item.
// A session without a cart is a no-op.
func (s *Store) UpdateQuantity(userID, name string, quantity int) (Snapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.carts[userID]
	if !ok {
		return Snapshot{UserID: userID, Total: decimal.Zero}, false
	}
	c.UpdateQuantity(name, quantity)
	return snapshot(userID, c), true
}

func (s *Store) RemoveItem(userID, name string) (Snapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.carts[userID]
	if !ok {
		return Snapshot{UserID: userID, Total: decimal.Zero}, false
	}
	c.RemoveItem(name)
	return snapshot(userID, c), true
}

// Clear drops the session's cart entirely.
func (s *Store) Clear(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, userID)
}

func snapshot(userID string, c *Cart) Snapshot {
	return Snapshot{
		UserID: userID,
		Items:  c.Items(),
		Total:  c.Total(),
	}
}
