package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"medcourier/internal/pkg/errs"
)

// errorBody is the uniform error envelope of the REST surface.
type errorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// writeError maps the error taxonomy onto HTTP status codes and writes the
// envelope. Unrecognized errors become 500 without leaking internals.
func writeError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrVersionIsInvalid):
		status = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, errs.ErrAuthorization):
		status = http.StatusForbidden
		message = err.Error()
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, errs.ErrStateConflict):
		status = http.StatusConflict
		message = err.Error()
	case errors.Is(err, errs.ErrResourceExpired):
		status = http.StatusGone
		message = err.Error()
	case errors.Is(err, errs.ErrExternalDependency):
		status = http.StatusBadGateway
		message = err.Error()
	}

	return ctx.JSON(status, errorBody{Code: status, Message: message})
}

func writeBadRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, errorBody{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
