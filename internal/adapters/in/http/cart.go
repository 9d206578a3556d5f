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

// GetCart handles GET /api/v1/cart.
func (s *Server) GetCart(c echo.Context) error {
	query, err := queries.NewGetCartQuery(userID(c))
	if err != nil {
		return respondError(c, err)
	}

	response, err := s.queries.GetCart.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, response)
}

// AddCartItem handles POST /api/v1/cart/items.
func (s *Server) AddCartItem(c echo.Context) error {
	var payload ItemPayload
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody("invalid request body"))
	}

	item, err := payload.toDomain()
	if err != nil {
		return respondError(c, err)
	}

	cmd, err := commands.NewAddCartItemCommand(userID(c), item)
	if err != nil {
		return respondError(c, err)
	}

	if err := s.commands.AddCartItem.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusCreated)
}

// UpdateCartItem handles PUT /api/v1/cart/items/:index.
func (s *Server) UpdateCartItem(c echo.Context) error {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return respondError(c, errs.NewValueIsInvalidErrorWithCause("index", err))
	}

	var payload UpdateCartItemPayload
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody("invalid request body"))
	}

	sides, err := order.SideTypeFromString(payload.Sides)
	if err != nil {
		return respondError(c, err)
	}

	cmd, err := commands.NewUpdateCartItemCommand(userID(c), index, payload.Qty, sides)
	if err != nil {
		return respondError(c, err)
	}

	if err := s.commands.UpdateCartItem.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// RemoveCartItem handles DELETE /api/v1/cart/items/:index.
func (s *Server) RemoveCartItem(c echo.Context) error {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return respondError(c, errs.NewValueIsInvalidErrorWithCause("index", err))
	}

	cmd, err := commands.NewRemoveCartItemCommand(userID(c), index)
	if err != nil {
		return respondError(c, err)
	}

	if err := s.commands.RemoveCartItem.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ClearCart handles DELETE /api/v1/cart.
func (s *Server) ClearCart(c echo.Context) error {
	cmd, err := commands.NewClearCartCommand(userID(c))
	if err != nil {
		return respondError(c, err)
	}

	if err := s.commands.ClearCart.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
