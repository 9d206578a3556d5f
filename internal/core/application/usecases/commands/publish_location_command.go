package commands

import (
	"errors"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
	"printshop/internal/pkg/guard"
)

var ErrPublishLocationCommandIsNotConstructed = errors.New(
	"PublishLocationCommand must be created via NewPublishLocationCommand constructor",
)

// PublishLocationCommand represents a delivery actor publishing the current
// position for an order. Fire-and-forget: each publish supersedes the last,
// no history is kept.
type PublishLocationCommand struct { //nolint:recvcheck //using for validation
	orderCode string
	point     kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewPublishLocationCommand creates a command to publish a position.
func NewPublishLocationCommand(orderCode string, lat, lng float64) (PublishLocationCommand, error) {
	cmd := PublishLocationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderCode(orderCode); err != nil {
		return PublishLocationCommand{}, err
	}

	point, err := kernel.NewGeoPoint(lat, lng)
	if err != nil {
		return PublishLocationCommand{}, err
	}
	cmd.point = point

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PublishLocationCommand) Validate() error {
	return c.guard.Validate(ErrPublishLocationCommandIsNotConstructed)
}

// OrderCode returns the human-facing code of the tracked order.
func (c PublishLocationCommand) OrderCode() string {
	return c.orderCode
}

// Point returns the published position.
func (c PublishLocationCommand) Point() kernel.GeoPoint {
	return c.point
}

func (c *PublishLocationCommand) setOrderCode(orderCode string) error {
	if err := order.ValidateCode(orderCode); err != nil {
		return err
	}
	c.orderCode = orderCode
	return nil
}
