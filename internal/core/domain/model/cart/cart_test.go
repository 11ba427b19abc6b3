package cart_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/cart"
	"fulfillment/internal/core/domain/model/product"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustProduct(t *testing.T, name string, price int64, available int) *product.Product {
	t.Helper()
	p, err := product.NewProduct(name, decimal.NewFromInt(price), available)
	require.NoError(t, err)
	return p
}

func TestCart_SetItem(t *testing.T) {
	t.Run("should stage an available product", func(t *testing.T) {
		c := cart.NewCart()
		book := mustProduct(t, "Book", 10, 11)

		require.NoError(t, c.SetItem(book, 7))

		assert.True(t, c.Contains(book))
		assert.Equal(t, 1, c.Len())
		assert.Equal(t, 11, book.AvailableQuantity(), "staging must not reserve stock")
	})

	t.Run("should fail when requested quantity exceeds availability", func(t *testing.T) {
		c := cart.NewCart()
		book := mustProduct(t, "Book", 10, 5)

		err := c.SetItem(book, 6)

		require.ErrorIs(t, err, product.ErrInsufficientStock)
		assert.False(t, c.Contains(book))
	})

	t.Run("should fail for non-positive quantity", func(t *testing.T) {
		c := cart.NewCart()
		book := mustProduct(t, "Book", 10, 5)

		require.ErrorIs(t, c.SetItem(book, 0), product.ErrInsufficientStock)
		require.ErrorIs(t, c.SetItem(book, -2), product.ErrInsufficientStock)
		assert.True(t, c.IsEmpty())
	})

	t.Run("should fail for nil product", func(t *testing.T) {
		c := cart.NewCart()

		require.ErrorIs(t, c.SetItem(nil, 1), product.ErrProductIsNotConstructed)
	})

	t.Run("should replace quantity when product is staged twice", func(t *testing.T) {
		c := cart.NewCart()
		book := mustProduct(t, "Book", 10, 11)

		require.NoError(t, c.SetItem(book, 7))
		require.NoError(t, c.SetItem(book, 2))

		assert.Equal(t, 1, c.Len())
		assert.True(t, c.Total().Equal(decimal.NewFromInt(20)))
	})

	t.Run("should treat same-named products as one entry", func(t *testing.T) {
		c := cart.NewCart()
		book := mustProduct(t, "Book", 10, 11)
		sameBook := mustProduct(t, "Book", 12, 3)

		require.NoError(t, c.SetItem(book, 4))
		require.NoError(t, c.SetItem(sameBook, 2))

		assert.Equal(t, 1, c.Len())
		assert.True(t, c.Contains(book))
	})
}

func TestCart_RemoveItem(t *testing.T) {
	t.Run("should remove a staged product", func(t *testing.T) {
		c := cart.NewCart()
		book := mustProduct(t, "Book", 10, 11)
		require.NoError(t, c.SetItem(book, 7))

		c.RemoveItem(book)

		assert.False(t, c.Contains(book))
		assert.True(t, c.IsEmpty())
	})

	t.Run("should be a no-op for an absent product", func(t *testing.T) {
		c := cart.NewCart()
		book := mustProduct(t, "Book", 10, 11)
		pen := mustProduct(t, "Pen", 5, 4)
		require.NoError(t, c.SetItem(book, 7))

		c.RemoveItem(pen)
		c.RemoveItem(nil)

		assert.Equal(t, 1, c.Len())
	})

	t.Run("removed product can be staged again and commits once", func(t *testing.T) {
		c := cart.NewCart()
		book := mustProduct(t, "Book", 10, 11)
		require.NoError(t, c.SetItem(book, 7))
		c.RemoveItem(book)
		require.NoError(t, c.SetItem(book, 2))

		ids, err := c.Commit()

		require.NoError(t, err)
		assert.Equal(t, []string{"Book"}, ids)
		assert.Equal(t, 9, book.AvailableQuantity())
	})
}

func TestCart_Total(t *testing.T) {
	t.Run("should be zero for empty cart", func(t *testing.T) {
		c := cart.NewCart()

		assert.True(t, c.Total().IsZero())
	})

	t.Run("should sum price times quantity over all entries", func(t *testing.T) {
		c := cart.NewCart()
		book := mustProduct(t, "Book", 10, 10)
		pen := mustProduct(t, "Pen", 5, 5)

		require.NoError(t, c.SetItem(book, 7))
		require.NoError(t, c.SetItem(pen, 3))

		assert.True(t, c.Total().Equal(decimal.NewFromInt(85)))
	})
}

func TestCart_Commit(t *testing.T) {
	t.Run("should reserve every entry and clear the cart", func(t *testing.T) {
		c := cart.NewCart()
		book := mustProduct(t, "Book", 10, 11)
		pen := mustProduct(t, "Pen", 5, 5)
		require.NoError(t, c.SetItem(book, 7))
		require.NoError(t, c.SetItem(pen, 3))

		ids, err := c.Commit()

		require.NoError(t, err)
		assert.Equal(t, []string{"Book", "Pen"}, ids)
		assert.Equal(t, 4, book.AvailableQuantity())
		assert.Equal(t, 2, pen.AvailableQuantity())
		assert.True(t, c.IsEmpty())
	})

	t.Run("should return ids in insertion order", func(t *testing.T) {
		c := cart.NewCart()
		pen := mustProduct(t, "Pen", 5, 5)
		book := mustProduct(t, "Book", 10, 11)
		ink := mustProduct(t, "Ink", 3, 9)
		require.NoError(t, c.SetItem(pen, 1))
		require.NoError(t, c.SetItem(book, 1))
		require.NoError(t, c.SetItem(ink, 1))

		ids, err := c.Commit()

		require.NoError(t, err)
		assert.Equal(t, []string{"Pen", "Book", "Ink"}, ids)
	})

	t.Run("should succeed trivially for empty cart", func(t *testing.T) {
		c := cart.NewCart()

		ids, err := c.Commit()

		require.NoError(t, err)
		assert.Empty(t, ids)
	})

	t.Run("should keep earlier reservations when a later entry fails", func(t *testing.T) {
		c := cart.NewCart()
		book := mustProduct(t, "Book", 10, 11)
		pen := mustProduct(t, "Pen", 5, 5)
		require.NoError(t, c.SetItem(book, 7))
		require.NoError(t, c.SetItem(pen, 3))

		// Stock consumed elsewhere between staging and commit.
		require.NoError(t, pen.Reserve(4))

		ids, err := c.Commit()

		require.ErrorIs(t, err, product.ErrInsufficientStock)
		assert.Nil(t, ids)
		assert.Equal(t, 4, book.AvailableQuantity(), "earlier entry stays reserved, no rollback")
		assert.Equal(t, 1, pen.AvailableQuantity())
		assert.False(t, c.IsEmpty(), "cart keeps entries after a failed commit")
	})
}
