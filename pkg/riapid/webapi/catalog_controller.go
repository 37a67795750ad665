package webapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rollinitiative/rollinit/pkg/listq"
	"github.com/rollinitiative/rollinit/pkg/ridb/stor"
)

// CatalogController serves the list and detail endpoints of one reference catalog. Rows
// are shaped by listShape in lists and by detailShape in the detail view.
type CatalogController[M, L, D any] struct {
	stor        stor.CatalogStor[M]
	cfg         *listq.Config
	what        string
	listShape   func(*M) L
	detailShape func(*M) D
}

func NewCatalogController[M, L, D any](s stor.CatalogStor[M], cfg *listq.Config, what string, listShape func(*M) L, detailShape func(*M) D) *CatalogController[M, L, D] {
	return &CatalogController[M, L, D]{
		stor:        s,
		cfg:         cfg,
		what:        what,
		listShape:   listShape,
		detailShape: detailShape,
	}
}

func (c *CatalogController[M, L, D]) List(ctx echo.Context) error {
	return listResponse(ctx, c.cfg, c.stor.List, c.listShape)
}

func (c *CatalogController[M, L, D]) Get(ctx echo.Context) error {
	id, err := idParam(ctx, "id", c.what)
	if err != nil {
		return err
	}

	m, err := c.stor.GetByID(id)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, c.detailShape(m))
}
