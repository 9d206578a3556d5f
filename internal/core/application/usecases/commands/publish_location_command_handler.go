package commands

import (
	"context"
	"errors"

	"printshop/internal/core/domain/model/order"
	"printshop/internal/core/ports"
)

// PublishLocationCommandHandler persists the latest delivery position and
// fans it out to the order's subscribers.
//
// The live-location switch is checked at publish time, on every publish: a
// subscriber that joined while tracking was enabled stops receiving updates
// the instant the admin flips the switch off. A publish against a disabled
// order is a silent no-op, not an error, because the publishing actor has no
// channel to receive one.
type PublishLocationCommandHandler struct {
	uowFactory  OrderUoWFactory
	broadcaster ports.LocationBroadcaster
}

// NewPublishLocationCommandHandler creates a handler for location publishes.
func NewPublishLocationCommandHandler(
	uowFactory OrderUoWFactory,
	broadcaster ports.LocationBroadcaster,
) PublishLocationCommandHandler {
	return PublishLocationCommandHandler{
		uowFactory:  uowFactory,
		broadcaster: broadcaster,
	}
}

// Handle processes the publish command. Broadcast happens only after the
// position is durably committed, and only to the order's own room.
func (h *PublishLocationCommandHandler) Handle(ctx context.Context, cmd PublishLocationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.GetByCode(ctx, cmd.OrderCode())
	if err != nil {
		return err
	}

	if err = aggregate.RecordDeliveryLocation(cmd.Point()); err != nil {
		if errors.Is(err, order.ErrLiveLocationDisabled) {
			return nil
		}
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}
	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.broadcaster.BroadcastLocation(cmd.OrderCode(), cmd.Point())
	return nil
}
