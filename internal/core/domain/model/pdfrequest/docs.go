// Package pdfrequest contains the custom-PDF price request aggregate and its
// sub-lifecycle: pending -> priced -> added_to_cart, with cancellation from
// any non-terminal state. A priced request converts into an order line item
// through ToCartItem.
package pdfrequest
