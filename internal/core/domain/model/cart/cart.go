// Package cart provides the reservation cart for the fulfillment system.
// A cart stages products with requested quantities, computes the total, and
// commits the staged reservations against the catalog.
//
// The commit is not atomic across entries: reservations are applied item by
// item and there is no rollback. If a later entry fails because stock was
// consumed elsewhere between staging and commit, the earlier entries of the
// same commit stay reserved.
package cart

import (
	"fulfillment/internal/core/domain/model/product"

	"github.com/shopspring/decimal"
)

// Cart stages products and requested quantities before an order commits
// them. Entries are keyed by product name, so restaging a product that is
// already present replaces the stored quantity rather than adding to it.
// Commit applies reservations in insertion order.
type Cart struct {
	entries map[string]entry
	// names holds product names in insertion order so Commit is deterministic
	names []string
}

type entry struct {
	product  *product.Product
	quantity int
}

// NewCart creates an empty reservation cart.
func NewCart() *Cart {
	return &Cart{
		entries: make(map[string]entry),
	}
}

// SetItem stages a product with the requested quantity.
//
// The quantity is checked against the product's current availability, not
// against anything this cart staged before; staleness between SetItem and
// Commit is resolved at commit time. If the product is already staged the
// quantity is replaced, not added.
//
// Returns ErrInsufficientStock (via the product) when the requested quantity
// cannot be satisfied, or a validation error for an invalid product.
func (c *Cart) SetItem(p *product.Product, quantity int) error {
	if err := p.Validate(); err != nil {
		return err
	}

	if !p.IsAvailable(quantity) {
		return product.ErrInsufficientStock
	}

	if _, exists := c.entries[p.Name()]; !exists {
		c.names = append(c.names, p.Name())
	}
	c.entries[p.Name()] = entry{product: p, quantity: quantity}
	return nil
}

// RemoveItem removes the staged entry for the product. It is a no-op when
// the product is not staged.
func (c *Cart) RemoveItem(p *product.Product) {
	if p == nil {
		return
	}

	if _, exists := c.entries[p.Name()]; !exists {
		return
	}

	delete(c.entries, p.Name())
	for i, name := range c.names {
		if name == p.Name() {
			c.names = append(c.names[:i], c.names[i+1:]...)
			break
		}
	}
}

// Contains reports whether the product is currently staged in the cart.
func (c *Cart) Contains(p *product.Product) bool {
	if p == nil {
		return false
	}

	_, exists := c.entries[p.Name()]
	return exists
}

// IsEmpty reports whether the cart has no staged entries.
func (c *Cart) IsEmpty() bool {
	return len(c.entries) == 0
}

// Len returns the number of staged entries.
func (c *Cart) Len() int {
	return len(c.entries)
}

// Total returns the sum of unit price times requested quantity over all
// staged entries. An empty cart totals zero.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, e := range c.entries {
		total = total.Add(e.product.Price().Mul(decimal.NewFromInt(int64(e.quantity))))
	}
	return total
}

// Commit reserves every staged entry against its product, in insertion
// order, and returns the product identifiers in the order the reservations
// were applied. On success all entries are cleared.
//
// Reservations are applied item by item with no rollback: when an entry
// fails (stock consumed elsewhere since SetItem), earlier entries of the
// same commit stay reserved, the cart keeps its entries, and the failure is
// returned.
func (c *Cart) Commit() ([]string, error) {
	productIDs := make([]string, 0, len(c.entries))
	for _, name := range c.names {
		e := c.entries[name]
		if err := e.product.Reserve(e.quantity); err != nil {
			return nil, err
		}
		productIDs = append(productIDs, e.product.String())
	}

	c.entries = make(map[string]entry)
	c.names = nil
	return productIDs, nil
}
