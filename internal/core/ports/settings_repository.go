package ports

import "context"

// SettingsRepository defines the persistence contract for storefront-wide
// settings. The ordering switch is durable so it survives restarts.
type SettingsRepository interface {
	// GetOrderingEnabled reports whether order creation is currently open.
	// Defaults to true when no setting row exists yet.
	GetOrderingEnabled(ctx context.Context) (bool, error)

	// SetOrderingEnabled durably flips the ordering switch.
	SetOrderingEnabled(ctx context.Context, enabled bool) error
}
