package commands_test

import (
	"testing"

	"printshop/internal/core/application/usecases/commands"
	"printshop/internal/core/domain/model/order"
	"printshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAdvanceOrderStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	uow := newStubUoW()
	handler := commands.NewAdvanceOrderStatusCommandHandler(stubOrderUoWFactory{uow})

	aggregate := sentOrder(t, "O1234", "user-1")
	uow.orders.On("GetByCode", ctx, "O1234").Return(aggregate, nil).Once()
	uow.orders.On("Update", ctx, aggregate).Return(nil).Once()

	cmd, err := commands.NewAdvanceOrderStatusCommand("O1234", order.StatusPlaced)
	require.NoError(t, err)

	require.NoError(t, handler.Handle(ctx, cmd))

	assert.Equal(t, order.StatusPlaced, aggregate.Status())
	assert.False(t, aggregate.CanCancel())
	assert.True(t, uow.committed)
}

func TestAdvanceOrderStatusCommandHandler_Handle_RejectsSkippedStep(t *testing.T) {
	ctx := t.Context()
	uow := newStubUoW()
	handler := commands.NewAdvanceOrderStatusCommandHandler(stubOrderUoWFactory{uow})

	aggregate := sentOrder(t, "O1234", "user-1")
	uow.orders.On("GetByCode", ctx, "O1234").Return(aggregate, nil).Once()

	cmd, err := commands.NewAdvanceOrderStatusCommand("O1234", order.StatusDelivered)
	require.NoError(t, err)

	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Equal(t, order.StatusSent, aggregate.Status())
	uow.orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestAdvanceOrderStatusCommandHandler_Handle_RejectsTerminalOrder(t *testing.T) {
	ctx := t.Context()
	uow := newStubUoW()
	handler := commands.NewAdvanceOrderStatusCommandHandler(stubOrderUoWFactory{uow})

	aggregate := sentOrder(t, "O1234", "user-1")
	require.NoError(t, aggregate.Cancel())
	uow.orders.On("GetByCode", ctx, "O1234").Return(aggregate, nil).Once()

	cmd, err := commands.NewAdvanceOrderStatusCommand("O1234", order.StatusPlaced)
	require.NoError(t, err)

	require.ErrorIs(t, handler.Handle(ctx, cmd), errs.ErrInvalidTransition)
}

func TestAdvanceOrderStatusCommand_Validation(t *testing.T) {
	_, err := commands.NewAdvanceOrderStatusCommand("bad-code", order.StatusPlaced)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = commands.NewAdvanceOrderStatusCommand("O1234", order.StatusUnknown)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	var zero commands.AdvanceOrderStatusCommand
	require.Error(t, zero.Validate())
}
