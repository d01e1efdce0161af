// Package cart tracks what a shopper intends to buy, in memory, for the
// duration of a session.
package cart

import (
	"sync"

	"github.com/abgdnv/storefront/internal/catalog"
	"github.com/shopspring/decimal"
)

// Entry pairs one product with a quantity. A cart holds at most one entry
// per product ID.
type Entry struct {
	Product  catalog.Product
	Quantity int
}

// LineTotal is the entry's price times its quantity.
func (e Entry) LineTotal() decimal.Decimal {
	return e.Product.Price.Mul(decimal.NewFromInt(int64(e.Quantity)))
}

// Cart is an ordered sequence of entries, in the order distinct products were
// first added. It only grows; there is no remove or decrement operation.
type Cart struct {
	mu      sync.RWMutex
	entries []Entry
}

// Add merges the product into the cart. If an entry with the same product ID
// already exists its quantity is incremented and the stored product is left
// as first added; otherwise a new entry is appended. Quantity must be
// positive, callers clamp values below 1 up to 1.
func (c *Cart) Add(product catalog.Product, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.entries {
		if c.entries[i].Product.ID == product.ID {
			c.entries[i].Quantity += quantity
			return
		}
	}
	c.entries = append(c.entries, Entry{Product: product, Quantity: quantity})
}

// Count is the sum of quantities across all entries. It is derived on every
// call, never cached.
func (c *Cart) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	sum := 0
	for _, e := range c.entries {
		sum += e.Quantity
	}
	return sum
}

// Items returns a copy of the entries in first-add order.
func (c *Cart) Items() []Entry {
	c.mu.RLock()
	defer c.mu.RUnlock()

	items := make([]Entry, len(c.entries))
	copy(items, c.entries)
	return items
}

// Total is the sum of price times quantity across all entries.
func (c *Cart) Total() decimal.Decimal {
	c.mu.RLock()
	defer c.mu.RUnlock()

	total := decimal.Zero
	for _, e := range c.entries {
		total = total.Add(e.LineTotal())
	}
	return total
}

// Store maps session IDs to carts. It is an injected dependency scoped to the
// application lifetime; carts live until the process stops.
type Store struct {
	mu    sync.Mutex
	carts map[string]*Cart
}

// NewStore creates an empty cart store.
func NewStore() *Store {
	return &Store{
		carts: make(map[string]*Cart),
	}
}

// Session returns the cart for the given session ID, creating an empty one on
// first use.
func (s *Store) Session(id string) *Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.carts[id]
	if !ok {
		c = &Cart{}
		s.carts[id] = c
	}
	return c
}
