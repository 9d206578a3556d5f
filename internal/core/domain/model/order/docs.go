// Package order contains the Order aggregate: line items with the pricing
// resolver, the lifecycle status state machine, payment records, and the
// live-location delivery state. All mutations go through aggregate methods so
// the invariants listed on Order hold at every point.
package order
