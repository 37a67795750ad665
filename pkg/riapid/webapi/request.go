package webapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rollinitiative/rollinit/pkg/decoder"
	"github.com/rollinitiative/rollinit/pkg/listq"
	"github.com/rollinitiative/rollinit/pkg/ridb/rimodel"
	"github.com/rollinitiative/rollinit/pkg/rierr"
)

// idParam returns the named path parameter. Anything that isn't a UUID can't identify a
// row, so it is reported as not found.
func idParam(c echo.Context, name, what string) (string, error) {
	id := c.Param(name)
	if !rimodel.IsUUID(id) {
		return "", rierr.NotFoundf("%s not found", what)
	}

	return id, nil
}

// readBody decodes a JSON object body. An empty body is an empty object.
func readBody(c echo.Context) (map[string]any, error) {
	var m map[string]any
	if err := json.NewDecoder(c.Request().Body).Decode(&m); err != nil && !errors.Is(err, io.EOF) {
		return nil, rierr.InvalidArgumentf("Malformed JSON body: %v", err)
	}

	if m == nil {
		m = make(map[string]any)
	}

	return m, nil
}

func decodeBody[T any](c echo.Context) (T, error) {
	var zero T
	m, err := readBody(c)
	if err != nil {
		return zero, err
	}

	v, err := decoder.DecodeMapStrict[T](m)
	if err != nil {
		return zero, fromDecodeError(err)
	}

	return v, nil
}

// patchBody applies the request body onto dst. P lists the fields a client may set.
func patchBody[P any](m map[string]any, dst any) error {
	return fromDecodeError(decoder.PatchStrict[P](m, dst))
}

type listFunc[M any] func(cfg *listq.Config, req listq.Request, pp listq.PageParams) (*listq.Result[M], error)

// listResponse runs a list call: the query comes from the body, the page from the
// page and page_size query parameters.
func listResponse[M, T any](c echo.Context, cfg *listq.Config, list listFunc[M], serialize func(*M) T) error {
	req, err := decodeBody[listq.Request](c)
	if err != nil {
		return err
	}

	pp := listq.ParsePageParams(c.QueryParam("page"), c.QueryParam("page_size"))
	result, err := list(cfg, req, pp)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listq.NewPage(result, cfg, serialize))
}
