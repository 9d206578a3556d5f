package ports

import "printshop/internal/core/domain/model/kernel"

// LocationBroadcaster fans a delivery position out to the subscribers of a
// single order's topic. Broadcast is strictly scoped to the order's room;
// there is no global fan-out. Fire-and-forget: a slow or gone subscriber is
// skipped, not retried.
type LocationBroadcaster interface {
	// BroadcastLocation delivers the latest position to every client joined
	// to the room named by the order code.
	BroadcastLocation(orderCode string, point kernel.GeoPoint)
}
