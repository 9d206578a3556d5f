package http

import (
	"errors"
	"net/http"

	"printshop/internal/core/application/usecases/commands"
	"printshop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the JSON body returned for failed requests.
type ErrorResponse struct {
	Message string `json:"message"`
}

func errorBody(message string) ErrorResponse {
	return ErrorResponse{Message: message}
}

// respondError translates application errors into HTTP responses.
func respondError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return c.JSON(http.StatusNotFound, errorBody(err.Error()))
	case errors.Is(err, errs.ErrNotAuthorized),
		errors.Is(err, commands.ErrOrderingDisabled):
		return c.JSON(http.StatusForbidden, errorBody(err.Error()))
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrInvalidTransition):
		return c.JSON(http.StatusBadRequest, errorBody(err.Error()))
	default:
		c.Logger().Error(err)
		return c.JSON(http.StatusInternalServerError, errorBody("internal server error"))
	}
}
