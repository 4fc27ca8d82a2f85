// Package order provides the Order aggregate of the food-bank ordering
// domain: a partner organization's scheduled pickup request moving through
// a fixed lifecycle.
//
// The package includes:
//   - Order: the aggregate root holding identity, goods, and the pickup slot
//   - Status: a state machine enforcing valid lifecycle transitions
//   - Category: a tagged union of a plain count (basic mode) or line items
//     (advanced mode)
//
// Key business rules:
//   - Orders start Pending and are decided by staff (approve/reject) or
//     withdrawn by the partner (cancel) while still Pending
//   - Field changes are only allowed while Pending
//   - The daily sweep releases orders close to pickup and completes orders
//     whose pickup has passed
//   - Pending, Approved, and Released orders occupy their pickup slot
package order
