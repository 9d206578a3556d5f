package http

import (
	"net/http"

	"printshop/internal/core/application/usecases/commands"
	"printshop/internal/core/application/usecases/queries"
	"printshop/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// CreatePDFRequest handles POST /api/v1/pdf-requests.
func (s *Server) CreatePDFRequest(c echo.Context) error {
	var payload CreatePDFRequestPayload
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody("invalid request body"))
	}

	sides, err := order.SideTypeFromString(payload.Sides)
	if err != nil {
		return respondError(c, err)
	}

	cmd, err := commands.NewCreatePDFRequestCommand(
		userID(c), payload.Title, payload.PDFURL, payload.Qty, sides)
	if err != nil {
		return respondError(c, err)
	}

	created, err := s.commands.CreatePDFRequest.Handle(c.Request().Context(), cmd)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]string{
		"requestId": created.Code(),
		"status":    created.Status().String(),
	})
}

// GetMyPDFRequests handles GET /api/v1/pdf-requests/my.
func (s *Server) GetMyPDFRequests(c echo.Context) error {
	query, err := queries.NewGetMyPDFRequestsQuery(userID(c))
	if err != nil {
		return respondError(c, err)
	}

	requests, err := s.queries.GetMyPDFRequests.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, requests)
}

// CancelPDFRequest handles POST /api/v1/pdf-requests/:requestId/cancel.
func (s *Server) CancelPDFRequest(c echo.Context) error {
	cmd, err := commands.NewCancelPDFRequestCommand(userID(c), c.Param("requestId"))
	if err != nil {
		return respondError(c, err)
	}

	if err := s.commands.CancelPDFRequest.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// AddRequestToCart handles POST /api/v1/pdf-requests/:requestId/add-to-cart.
func (s *Server) AddRequestToCart(c echo.Context) error {
	cmd, err := commands.NewAddRequestToCartCommand(userID(c), c.Param("requestId"))
	if err != nil {
		return respondError(c, err)
	}

	if err := s.commands.AddRequestToCart.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetAllPDFRequests handles GET /api/v1/pdf-requests/admin/all.
func (s *Server) GetAllPDFRequests(c echo.Context) error {
	requests, err := s.queries.GetAllPDFRequests.Handle(
		c.Request().Context(), queries.NewGetAllPDFRequestsQuery())
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, requests)
}

// SetPDFRequestPrice handles PUT /api/v1/pdf-requests/admin/:requestId/price.
func (s *Server) SetPDFRequestPrice(c echo.Context) error {
	var payload SetPricePayload
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody("invalid request body"))
	}

	cmd, err := commands.NewSetPDFRequestPriceCommand(c.Param("requestId"), payload.Price)
	if err != nil {
		return respondError(c, err)
	}

	if err := s.commands.SetPDFRequestPrice.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// DeletePDFRequest handles DELETE /api/v1/pdf-requests/admin/:requestId.
func (s *Server) DeletePDFRequest(c echo.Context) error {
	cmd, err := commands.NewDeletePDFRequestCommand(c.Param("requestId"))
	if err != nil {
		return respondError(c, err)
	}

	if err := s.commands.DeletePDFRequest.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
