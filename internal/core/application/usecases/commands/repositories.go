// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"printshop/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends only on the narrow slice of repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// PDFRequestRepoFactory provides access to the PDF request repository within a transaction.
	PDFRequestRepoFactory interface {
		PDFRequestRepository() ports.PDFRequestRepository
	}

	// CartRepoFactory provides access to the cart repository within a transaction.
	CartRepoFactory interface {
		CartRepository() ports.CartRepository
	}

	// SettingsRepoFactory provides access to the settings repository within a transaction.
	SettingsRepoFactory interface {
		SettingsRepository() ports.SettingsRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// PDFRequestUoW manages transactions for request-only operations.
	PDFRequestUoW interface {
		TxManager
		PDFRequestRepoFactory
	}

	// PDFRequestUoWFactory creates new request unit of work instances.
	PDFRequestUoWFactory interface {
		Create() PDFRequestUoW
	}

	// CartUoW manages transactions for cart-only operations.
	CartUoW interface {
		TxManager
		CartRepoFactory
	}

	// CartUoWFactory creates new cart unit of work instances.
	CartUoWFactory interface {
		Create() CartUoW
	}

	// SettingsUoW manages transactions for settings-only operations.
	SettingsUoW interface {
		TxManager
		SettingsRepoFactory
	}

	// SettingsUoWFactory creates new settings unit of work instances.
	SettingsUoWFactory interface {
		Create() SettingsUoW
	}

	// CheckoutUoW manages the order creation transaction: the ordering switch
	// is read, the order persisted, and the cart cleared against the same
	// transactional boundary.
	CheckoutUoW interface {
		TxManager
		OrderRepoFactory
		CartRepoFactory
		SettingsRepoFactory
	}

	// CheckoutUoWFactory creates new checkout unit of work instances.
	CheckoutUoWFactory interface {
		Create() CheckoutUoW
	}

	// RequestCartUoW manages the request-to-cart conversion, which mutates a
	// PDF request and the owner's cart atomically.
	RequestCartUoW interface {
		TxManager
		PDFRequestRepoFactory
		CartRepoFactory
	}

	// RequestCartUoWFactory creates new request-cart unit of work instances.
	RequestCartUoWFactory interface {
		Create() RequestCartUoW
	}

	// MaintenanceUoW manages the retention sweep across orders and requests.
	MaintenanceUoW interface {
		TxManager
		OrderRepoFactory
		PDFRequestRepoFactory
	}

	// MaintenanceUoWFactory creates new maintenance unit of work instances.
	MaintenanceUoWFactory interface {
		Create() MaintenanceUoW
	}
)
