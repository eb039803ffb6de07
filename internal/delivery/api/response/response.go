// Package response writes the JSON bodies every API route returns.
package response

import (
	"net/http"

	deliverycontext "atelier/internal/delivery/context"
	domainerrors "atelier/internal/domain/errors"
	"atelier/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the body of a failed call. Message is shown to users, Code is
// machine readable.
type ErrorResponse struct {
	Message string `json:"message"`
	Code    string `json:"code"`
	Details any    `json:"details,omitempty"`
}

// tagRequestID makes sure the response carries the request id header even when the
// request id middleware did not run.
func tagRequestID(c echo.Context) {
	header := c.Response().Header()
	if header.Get(deliverycontext.HeaderXRequestID) == "" {
		header.Set(deliverycontext.HeaderXRequestID, deliverycontext.GetRequestID(c))
	}
}

// exposesDetails reports whether details may reach the client. Server failures and
// auth rejections never carry them.
func exposesDetails(statusCode int) bool {
	switch {
	case statusCode >= http.StatusInternalServerError:
		return false
	case statusCode == http.StatusUnauthorized, statusCode == http.StatusForbidden:
		return false
	default:
		return true
	}
}

// Success writes data as the response body.
func Success(c echo.Context, statusCode int, data any) error {
	tagRequestID(c)

	return c.JSON(statusCode, data)
}

// Error writes an error body, dropping details the status may not expose.
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	if !exposesDetails(statusCode) {
		details = nil
	}

	tagRequestID(c)

	return c.JSON(statusCode, ErrorResponse{Message: message, Code: errorCode, Details: details})
}

func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

func BadRequestWithDetails(c echo.Context, errorCode string, message string, details any) error {
	return Error(c, http.StatusBadRequest, errorCode, message, details)
}

// BindingError reports a body or parameter that could not be decoded.
func BindingError(c echo.Context, errorCode string, message string) error {
	return BadRequest(c, errorCode, message)
}

func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}

// Blob writes a binary body. A non-empty filename makes it a download.
func Blob(c echo.Context, contentType, filename string, data []byte) error {
	if filename != "" {
		c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	}

	return c.Blob(http.StatusOK, contentType, data)
}

// HandleAppError writes err as an error body when it wraps an AppError and
// returns nil. Any other error comes back with a stack for the central error handler.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if !errors.As(err, &appErr) {
		return errors.WithStack(err)
	}

	var details any
	if d := appErr.Details(); d != "" {
		details = d
	}

	return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), details)
}
