package webapi

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/apex/log"
	"github.com/labstack/echo/v4"

	"github.com/rollinitiative/rollinit/pkg/decoder"
	"github.com/rollinitiative/rollinit/pkg/rierr"
)

// ErrorBody is the JSON body of every error response.
type ErrorBody struct {
	Detail string              `json:"detail"`
	Code   rierr.Code          `json:"code"`
	Errors map[string][]string `json:"errors,omitempty"`
}

// HTTPErrorHandler renders errors returned by handlers. Errors that map to a 5xx status
// are logged as well as returned.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status, body := errorResponse(err)
	if status >= http.StatusInternalServerError {
		log.WithFields(log.Fields{
			"method": c.Request().Method,
			"uri":    c.Request().RequestURI,
		}).Errorf("Request failed: %v", err)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = c.JSON(status, body)
	}

	if err != nil {
		log.Errorf("Unable to write error response: %v", err)
	}
}

func errorResponse(err error) (int, ErrorBody) {
	var (
		rerr    *rierr.Error
		httpErr *echo.HTTPError
	)

	err = fromDecodeError(err)

	switch {
	case errors.As(err, &rerr):
		return rerr.Code.HTTPStatus(), ErrorBody{Detail: rerr.Message, Code: rerr.Code, Errors: rerr.Fields}
	case errors.As(err, &httpErr):
		return httpErr.Code, ErrorBody{Detail: fmt.Sprint(httpErr.Message), Code: codeForStatus(httpErr.Code)}
	default:
		return http.StatusInternalServerError, ErrorBody{Detail: "Internal server error.", Code: rierr.CodeInternal}
	}
}

func codeForStatus(status int) rierr.Code {
	switch status {
	case http.StatusBadRequest:
		return rierr.CodeInvalidArgument
	case http.StatusNotFound:
		return rierr.CodeNotFound
	case http.StatusConflict:
		return rierr.CodeConflict
	case http.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	default:
		return rierr.CodeInternal
	}
}

// fromDecodeError turns strict decoding failures into field errors.
func fromDecodeError(err error) error {
	var (
		unknown *decoder.UnknownFieldError
		typeErr *decoder.TypeError
	)

	switch {
	case errors.As(err, &unknown):
		return rierr.FieldError(unknown.Field, "Unknown field.")
	case errors.As(err, &typeErr):
		field := typeErr.Field
		if field == "" {
			field = "non_field_errors"
		}
		return rierr.FieldError(field, fmt.Sprintf("Must be of type %s.", typeErr.Want))
	default:
		return err
	}
}
