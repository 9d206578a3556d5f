package http

import (
	"net/http"

	"printshop/internal/core/application/usecases/commands"
	"printshop/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// GetOrderingEnabled handles GET /api/v1/settings/ordering.
func (s *Server) GetOrderingEnabled(c echo.Context) error {
	enabled, err := s.queries.GetOrderingEnabled.Handle(
		c.Request().Context(), queries.NewGetOrderingEnabledQuery())
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, OrderingEnabledPayload{Enabled: enabled})
}

// SetOrderingEnabled handles PUT /api/v1/settings/ordering.
func (s *Server) SetOrderingEnabled(c echo.Context) error {
	var payload OrderingEnabledPayload
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody("invalid request body"))
	}

	cmd, err := commands.NewSetOrderingEnabledCommand(payload.Enabled)
	if err != nil {
		return respondError(c, err)
	}

	if err := s.commands.SetOrderingEnabled.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
