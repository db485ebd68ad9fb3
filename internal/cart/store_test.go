package cart

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_GetMissingCart(t *testing.T) {
	s := NewStore()

	snap, ok := s.Get("nobody")
	assert.False(t, ok)
	assert.Empty(t, snap.Items)
	assert.True(t, snap.Total.IsZero())
}

func TestStore_SessionsAreIsolated(t *testing.T) {
	s := NewStore()

	s.AddItem("alice", Item{Name: "Latte", Price: price("4.50")})
	s.AddItem("bob", Item{Name: "Mocha", Price: price("5.00")})

	alice, ok := s.Get("alice")
	require.True(t, ok)
	require.Len(t, alice.Items, 1)
	assert.Equal(t, "Latte", alice.Items[0].Name)

	bob, ok := s.Get("bob")
	require.True(t, ok)
	require.Len(t, bob.Items, 1)
	assert.Equal(t, "Mocha", bob.Items[0].Name)
}

func TestStore_UpdateQuantityZeroEmptiesCart(t *testing.T) {
	s := NewStore()

	s.AddItem("alice", Item{Name: "Latte", Price: price("4.50")})
	s.AddItem("alice", Item{Name: "Latte", Price: price("4.50")})

	snap, ok := s.UpdateQuantity("alice", "Latte", 0)
	require.True(t, ok)
	assert.Empty(t, snap.Items)
	assert.True(t, snap.Total.IsZero())
}

func TestStore_UpdateQuantityWithoutCart(t *testing.T) {
	s := NewStore()

	_, ok := s.UpdateQuantity("nobody", "Latte", 2)
	assert.False(t, ok)
}

func TestStore_ClearDropsCart(t *testing.T) {
	s := NewStore()

	s.AddItem("alice", Item{Name: "Latte", Price: price("4.50")})
	s.Clear("alice")

	_, ok := s.Get("alice")
	assert.False(t, ok)
}

// Rapid concurrent adds for the same name must each count: every
// AddItem is atomic with respect to its read-modify-write.
func TestStore_ConcurrentAddsAreAtomic(t *testing.T) {
	s := NewStore()

	const n = 100
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			s.AddItem("alice", Item{Name: "Latte", Price: price("4.50")})
		}()
	}
	wg.Wait()

	snap, ok := s.Get("alice")
	require.True(t, ok)
	require.Len(t, snap.Items, 1)
	assert.Equal(t, n, snap.Items[0].Quantity)
}
