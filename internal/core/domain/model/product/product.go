package product

import (
	"errors"
	"fmt"

	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrProductIsNotConstructed is returned when a Product instance was not
	// created through the NewProduct factory method.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

	// ErrInsufficientStock is returned when a reservation asks for more units
	// than the product currently has available.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// Product represents a catalog item and is the unit of reservation.
//
// Product follows these invariants:
//   - Identity is the name: equality is name-based, not pointer-based
//   - Unit price is never negative
//   - Available quantity is never negative
//   - Can only be created through NewProduct constructor
//
// Reservations from independent carts are not synchronized here; concurrent
// Reserve calls against the same product can race. Callers that need strict
// accounting under concurrency must serialize access themselves.
type Product struct {
	// name is the product's identity key
	name string

	// price is the unit price
	price decimal.Decimal

	// availableQuantity is the remaining reservable stock
	availableQuantity int

	// isConstructed ensures the product was created via NewProduct
	isConstructed bool
}

// NewProduct creates a new Product instance with validation. This is the only
// way to create a valid Product.
//
// Parameters:
//   - name: The product's identity key (must be non-empty)
//   - price: Unit price (must not be negative)
//   - availableQuantity: Initial reservable stock (must not be negative)
//
// Returns the created product, or a validation error if any parameter is
// invalid.
func NewProduct(name string, price decimal.Decimal, availableQuantity int) (*Product, error) {
	p := &Product{
		isConstructed: true,
	}

	if err := errors.Join(
		p.setName(name),
		p.setPrice(price),
		p.setAvailableQuantity(availableQuantity),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the Product instance was properly constructed through
// NewProduct. Returns ErrProductIsNotConstructed otherwise.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}

	return nil
}

// IsEqual compares two products by their identity key.
// Products are considered the same item if their names match, even when
// price or remaining quantity differ.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.name == other.name
}

// Name returns the product's identity key.
func (p *Product) Name() string {
	return p.name
}

// Price returns the product's unit price.
func (p *Product) Price() decimal.Decimal {
	return p.price
}

// AvailableQuantity returns the remaining reservable stock.
func (p *Product) AvailableQuantity() int {
	return p.availableQuantity
}

// IsAvailable reports whether the requested quantity can be reserved.
// It returns true iff 0 < quantity <= availableQuantity; zero and negative
// requests are definitively "not available" rather than an error.
func (p *Product) IsAvailable(quantity int) bool {
	return quantity > 0 && quantity <= p.availableQuantity
}

// Reserve decrements the available quantity by the requested amount.
//
// The operation is all-or-nothing per call: on success the available
// quantity decreases by exactly the requested amount; on failure it is left
// untouched and ErrInsufficientStock is returned.
func (p *Product) Reserve(quantity int) error {
	if !p.IsAvailable(quantity) {
		return fmt.Errorf("%w: product %q has %d available, %d requested",
			ErrInsufficientStock, p.name, p.availableQuantity, quantity)
	}

	p.availableQuantity -= quantity
	return nil
}

// String returns the product's display identifier, which is its name.
func (p *Product) String() string {
	return p.name
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%s is negative", price))
	}
	p.price = price
	return nil
}

func (p *Product) setAvailableQuantity(availableQuantity int) error {
	if availableQuantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause("availableQuantity",
			fmt.Errorf("%d is negative", availableQuantity))
	}
	p.availableQuantity = availableQuantity
	return nil
}
