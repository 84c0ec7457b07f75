// Package order provides the order aggregate for the ordering system.
// An order is created exactly once, at checkout, from the snapshot of a
// customer's cart: its items copy the cart line prices verbatim and its
// total is the sum of those prices, computed at creation and never
// recomputed afterward. Menu price changes after checkout do not affect
// existing orders.
package order
