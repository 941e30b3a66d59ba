package http

import (
	"errors"
	"net/http"

	"atelier/internal/core/domain/services"
	"atelier/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const internalErrorMessage = "internal server error"

// ErrorDetail names one rejected field.
type ErrorDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Code    int           `json:"code"`
	Message string        `json:"message"`
	Details []ErrorDetail `json:"details,omitempty"`
}

// NewErrorHandler maps application errors to status codes. Unexpected errors
// are logged and answered with a generic 500 body.
func NewErrorHandler(log *zap.Logger) echo.HTTPErrorHandler {
	log = log.Named("http")
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		resp := classify(err)
		if resp.Code == http.StatusInternalServerError {
			log.Error("request failed",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
				zap.Error(err),
			)
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(resp.Code)
		} else {
			writeErr = c.JSON(resp.Code, resp)
		}
		if writeErr != nil {
			log.Warn("write error response", zap.Error(writeErr))
		}
	}
}

func classify(err error) ErrorResponse {
	var (
		httpErr       *echo.HTTPError
		validationErr validator.ValidationErrors
	)

	switch {
	case errors.As(err, &httpErr):
		if httpErr.Code >= http.StatusInternalServerError {
			return ErrorResponse{Code: httpErr.Code, Message: internalErrorMessage}
		}
		msg, ok := httpErr.Message.(string)
		if !ok {
			msg = http.StatusText(httpErr.Code)
		}
		return ErrorResponse{Code: httpErr.Code, Message: msg}

	case errors.As(err, &validationErr):
		return ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "request validation failed",
			Details: validationDetails(validationErr),
		}

	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrVersionIsInvalid):
		return ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "request validation failed",
			Details: domainDetails(err),
		}

	case errors.Is(err, errs.ErrObjectNotFound):
		return ErrorResponse{Code: http.StatusNotFound, Message: err.Error()}

	case errors.Is(err, errs.ErrValueIsDuplicated),
		errors.Is(err, services.ErrIdentifierSpaceExhausted):
		return ErrorResponse{Code: http.StatusConflict, Message: err.Error()}

	default:
		return ErrorResponse{Code: http.StatusInternalServerError, Message: internalErrorMessage}
	}
}

// domainDetails lists the field errors of a possibly joined error. Errors
// that are not field errors are skipped.
func domainDetails(err error) []ErrorDetail {
	var details []ErrorDetail
	for _, leaf := range leaves(err) {
		if field, ok := fieldOf(leaf); ok {
			details = append(details, ErrorDetail{Field: field, Message: leaf.Error()})
		}
	}
	return details
}

func leaves(err error) []error {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var out []error
		for _, e := range joined.Unwrap() {
			out = append(out, leaves(e)...)
		}
		return out
	}
	return []error{err}
}

func fieldOf(err error) (string, bool) {
	var (
		required   *errs.ValueIsRequiredError
		invalid    *errs.ValueIsInvalidError
		outOfRange *errs.ValueIsOutOfRangeError
		version    *errs.VersionIsInvalidError
	)
	switch {
	case errors.As(err, &required):
		return required.ParamName, true
	case errors.As(err, &invalid):
		return invalid.ParamName, true
	case errors.As(err, &outOfRange):
		return outOfRange.ParamName, true
	case errors.As(err, &version):
		return version.ParamName, true
	default:
		return "", false
	}
}
