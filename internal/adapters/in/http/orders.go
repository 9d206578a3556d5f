package http

import (
	"net/http"
	"strconv"

	"printshop/internal/core/application/usecases/commands"
	"printshop/internal/core/application/usecases/queries"
	"printshop/internal/core/domain/model/order"
	"printshop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(c echo.Context) error {
	var payload CreateOrderPayload
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody("invalid request body"))
	}

	items, err := itemsToDomain(payload.Items)
	if err != nil {
		return respondError(c, err)
	}

	var payment *commands.PaymentSpec
	if payload.Payment != nil {
		kind, kindErr := order.PaymentKindFromString(payload.Payment.Kind)
		if kindErr != nil {
			return respondError(c, kindErr)
		}
		payment = &commands.PaymentSpec{
			Kind:            kind,
			PaidAmount:      payload.Payment.PaidAmount,
			RemainingAmount: payload.Payment.RemainingAmount,
			ScreenshotURL:   payload.Payment.ScreenshotURL,
		}
	}

	cmd, err := commands.NewCreateOrderCommand(
		userID(c), isAdmin(c), items, payload.Amount,
		order.Student{
			Name:      payload.StudentName,
			CollegeID: payload.StudentCollegeID,
			Phone:     payload.StudentPhone,
		},
		payload.PickupPoint, payment)
	if err != nil {
		return respondError(c, err)
	}

	created, err := s.commands.CreateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]string{
		"orderId": created.Code(),
		"status":  created.Status().String(),
	})
}

// GetMyOrders handles GET /api/v1/orders/my.
func (s *Server) GetMyOrders(c echo.Context) error {
	query, err := queries.NewGetMyOrdersQuery(userID(c))
	if err != nil {
		return respondError(c, err)
	}

	orders, err := s.queries.GetMyOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, orders)
}

// GetOrder handles GET /api/v1/orders/:orderId.
func (s *Server) GetOrder(c echo.Context) error {
	query, err := queries.NewGetOrderQuery(userID(c), c.Param("orderId"), isAdmin(c))
	if err != nil {
		return respondError(c, err)
	}

	response, err := s.queries.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, response)
}

// CancelOrder handles POST /api/v1/orders/:orderId/cancel.
func (s *Server) CancelOrder(c echo.Context) error {
	cmd, err := commands.NewCancelOrderCommand(userID(c), c.Param("orderId"))
	if err != nil {
		return respondError(c, err)
	}

	if err := s.commands.CancelOrder.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// AcceptOrder handles POST /api/v1/orders/:orderId/accept.
func (s *Server) AcceptOrder(c echo.Context) error {
	cmd, err := commands.NewAcceptPendingOrderCommand(userID(c), c.Param("orderId"))
	if err != nil {
		return respondError(c, err)
	}

	if err := s.commands.AcceptOrder.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetAllOrders handles GET /api/v1/orders/admin/all.
func (s *Server) GetAllOrders(c echo.Context) error {
	orders, err := s.queries.GetAllOrders.Handle(c.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, orders)
}

// UpdateOrderStatus handles PUT /api/v1/orders/admin/:orderId/status.
func (s *Server) UpdateOrderStatus(c echo.Context) error {
	var payload UpdateStatusPayload
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody("invalid request body"))
	}

	target, err := order.StatusFromString(payload.Status)
	if err != nil {
		return respondError(c, err)
	}

	cmd, err := commands.NewAdvanceOrderStatusCommand(c.Param("orderId"), target)
	if err != nil {
		return respondError(c, err)
	}

	if err := s.commands.AdvanceOrderStatus.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// SetItemPrice handles PUT /api/v1/orders/admin/:orderId/items/:index/price.
func (s *Server) SetItemPrice(c echo.Context) error {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return respondError(c, errs.NewValueIsInvalidErrorWithCause("index", err))
	}

	var payload SetPricePayload
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody("invalid request body"))
	}

	cmd, err := commands.NewSetItemPriceCommand(c.Param("orderId"), index, payload.Price)
	if err != nil {
		return respondError(c, err)
	}

	if err := s.commands.SetItemPrice.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ToggleLiveLocation handles PUT /api/v1/orders/admin/:orderId/live-location.
func (s *Server) ToggleLiveLocation(c echo.Context) error {
	var payload ToggleLiveLocationPayload
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody("invalid request body"))
	}

	cmd, err := commands.NewToggleLiveLocationCommand(c.Param("orderId"), payload.Enabled)
	if err != nil {
		return respondError(c, err)
	}

	if err := s.commands.ToggleLiveLocation.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// UpdateDeliveryDays handles PUT /api/v1/orders/admin/:orderId/delivery-days.
func (s *Server) UpdateDeliveryDays(c echo.Context) error {
	var payload UpdateDeliveryDaysPayload
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody("invalid request body"))
	}

	cmd, err := commands.NewUpdateDeliveryDaysCommand(c.Param("orderId"), payload.DeliveryDays)
	if err != nil {
		return respondError(c, err)
	}

	if err := s.commands.UpdateDeliveryDays.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// DeleteOrder handles DELETE /api/v1/orders/admin/:orderId.
func (s *Server) DeleteOrder(c echo.Context) error {
	cmd, err := commands.NewDeleteOrderCommand(c.Param("orderId"))
	if err != nil {
		return respondError(c, err)
	}

	if err := s.commands.DeleteOrder.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
