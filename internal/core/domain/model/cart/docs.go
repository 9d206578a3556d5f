// Package cart contains the per-user cart aggregate: the staging area for
// order line items between pricing and order creation.
package cart
