package webapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rollinitiative/rollinit/pkg/decoder"
	"github.com/rollinitiative/rollinit/pkg/rierr"
)

func renderError(t *testing.T, method string, err error) (*httptest.ResponseRecorder, ErrorBody) {
	e := echo.New()
	req := httptest.NewRequest(method, "/api/character/", nil)
	rec := httptest.NewRecorder()

	HTTPErrorHandler(err, e.NewContext(req, rec))

	var body ErrorBody
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	}

	return rec, body
}

func TestHTTPErrorHandler(t *testing.T) {
	t.Run("FieldError", func(t *testing.T) {
		rec, body := renderError(t, http.MethodPost, rierr.FieldError("age", "Ensure this value is greater than or equal to 0."))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, rierr.CodeInvalidArgument, body.Code)
		assert.Equal(t, []string{"Ensure this value is greater than or equal to 0."}, body.Errors["age"])
	})

	t.Run("NotFound", func(t *testing.T) {
		rec, body := renderError(t, http.MethodGet, rierr.NotFoundf("character not found"))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "character not found", body.Detail)
		assert.Empty(t, body.Errors)
	})

	t.Run("Conflict", func(t *testing.T) {
		rec, _ := renderError(t, http.MethodDelete, rierr.Conflictf("race is still in use and cannot be deleted"))
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("EchoError", func(t *testing.T) {
		rec, body := renderError(t, http.MethodGet, echo.ErrNotFound)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, rierr.CodeNotFound, body.Code)
	})

	t.Run("UnknownErrorHidesDetail", func(t *testing.T) {
		rec, body := renderError(t, http.MethodGet, errors.New("connection refused"))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Internal server error.", body.Detail)
		assert.NotContains(t, rec.Body.String(), "connection refused")
	})

	t.Run("HeadHasNoBody", func(t *testing.T) {
		rec, _ := renderError(t, http.MethodHead, rierr.NotFoundf("character not found"))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Zero(t, rec.Body.Len())
	})
}

func TestFromDecodeError(t *testing.T) {
	err := fromDecodeError(&decoder.UnknownFieldError{Field: "wings"})
	var rerr *rierr.Error
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, []string{"Unknown field."}, rerr.Fields["wings"])

	err = fromDecodeError(&decoder.TypeError{Want: "map[string]interface {}"})
	require.ErrorAs(t, err, &rerr)
	assert.Contains(t, rerr.Fields, "non_field_errors")

	other := errors.New("boom")
	assert.Same(t, other, fromDecodeError(other))
}
