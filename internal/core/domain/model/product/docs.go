// Package product provides the catalog item entity for the fulfillment
// system. A product is the unit of reservation: a named, priced,
// quantity-tracked item whose available quantity is decremented when a cart
// commits its reservations.
//
// Key business rules:
//   - Product identity is the name: two products are the same item iff their
//     names match, regardless of price or remaining quantity
//   - Available quantity never goes negative
//   - A reservation either decrements the available quantity by exactly the
//     requested amount or leaves it untouched and fails
package product
