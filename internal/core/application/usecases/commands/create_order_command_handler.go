package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
	"printshop/internal/core/ports"
	"printshop/internal/pkg/errs"
)

// codeAttempts caps the collision-checked code generation loop. With a 10k
// code space, hitting the cap means the store is effectively full of live
// orders and creation should fail loudly.
const codeAttempts = 20

// ErrOrderingDisabled is returned to non-admin callers while the admin has
// paused order intake.
var ErrOrderingDisabled = errors.New("ordering is currently disabled")

// CreateOrderCommandHandler handles order creation: the ordering switch, the
// amount recheck, the COD split invariant, the unique O#### code, and the
// non-fatal cart clear after the order is persisted.
type CreateOrderCommandHandler struct {
	uowFactory CheckoutUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(uowFactory CheckoutUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command and returns the created order.
//
// The order is committed before the cart is cleared: the order is the source
// of truth, so a cart-clear failure is logged and swallowed rather than
// rolling back a placed order.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if !cmd.IsAdmin() {
		enabled, err := uow.SettingsRepository().GetOrderingEnabled(ctx)
		if err != nil {
			return nil, err
		}
		if !enabled {
			return nil, ErrOrderingDisabled
		}
	}

	total := order.ComputeAmount(cmd.Items())
	if math.Abs(total-cmd.Amount()) > 0.005 {
		return nil, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("declared amount %.2f does not match computed total %.2f", cmd.Amount(), total))
	}

	payment, err := buildPayment(cmd.Payment(), total)
	if err != nil {
		return nil, err
	}

	orderRepo := uow.OrderRepository()
	code, err := uniqueOrderCode(ctx, orderRepo)
	if err != nil {
		return nil, err
	}

	aggregate, err := order.NewOrder(
		kernel.NewUUID(), code, cmd.UserID(), cmd.Items(),
		cmd.StudentInfo(), cmd.PickupPoint(), payment)
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Add(ctx, aggregate); err != nil {
		return nil, err
	}

	h.clearCart(ctx, uow, cmd.UserID())

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

// clearCart empties the caller's cart after the order is staged. Failures are
// logged and swallowed: the order is the source of truth.
func (h *CreateOrderCommandHandler) clearCart(ctx context.Context, uow CheckoutUoW, userID string) {
	userCart, err := uow.CartRepository().GetByUser(ctx, userID)
	if err != nil {
		if !errors.Is(err, errs.ErrObjectNotFound) {
			slog.Warn("cart lookup after order creation failed", "userId", userID, "error", err)
		}
		return
	}

	userCart.Clear()
	if err = uow.CartRepository().Update(ctx, userCart); err != nil {
		slog.Warn("cart clear after order creation failed", "userId", userID, "error", err)
	}
}

func buildPayment(spec *PaymentSpec, total float64) (*order.Payment, error) {
	if spec == nil {
		return nil, nil
	}

	var (
		payment order.Payment
		err     error
	)
	switch spec.Kind {
	case order.PaymentFull:
		payment, err = order.NewFullPayment(total, spec.ScreenshotURL)
	case order.PaymentCOD:
		payment, err = order.NewCODPayment(total, spec.PaidAmount, spec.RemainingAmount, spec.ScreenshotURL)
	default:
		err = errs.NewValueIsInvalidError("paymentType")
	}
	if err != nil {
		return nil, err
	}

	return &payment, nil
}

func uniqueOrderCode(ctx context.Context, repo ports.OrderRepository) (string, error) {
	for range codeAttempts {
		code := order.NewRandomCode()
		exists, err := repo.ExistsByCode(ctx, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
	return "", fmt.Errorf("could not generate a unique order code in %d attempts", codeAttempts)
}
