package listq

import (
	"sort"
	"strconv"

	"github.com/rollinitiative/rollinit/pkg/rierr"
)

// Request is the body of a list call. All parts are optional.
type Request struct {
	Search string           `json:"search,omitempty"`
	Filter map[string][]any `json:"filter,omitempty"`

	// At most one entry, field name to true for ascending.
	Sort map[string]bool `json:"sort,omitempty"`
}

type PageParams struct {
	Page     int
	PageSize int
}

// ParsePageParams parses the page query parameters. Anything that isn't a positive integer
// is left at zero and replaced by the default when the query runs.
func ParsePageParams(page, pageSize string) PageParams {
	return PageParams{Page: positiveInt(page), PageSize: positiveInt(pageSize)}
}

func positiveInt(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil || v < 1 {
		return 0
	}

	return v
}

func (c *Config) normalize(pp PageParams) PageParams {
	if pp.Page < 1 {
		pp.Page = 1
	}

	switch {
	case pp.PageSize < 1:
		pp.PageSize = c.pageSize()
	case pp.PageSize > c.maxPageSize():
		pp.PageSize = c.maxPageSize()
	}

	return pp
}

// Validate rejects requests the endpoint doesn't allow. Asking for more than one sort
// field is rejected before anything else is looked at.
func (c *Config) Validate(req Request) error {
	if len(req.Sort) > 1 {
		return rierr.FieldError("sort", "Cannot sort by more than one field.")
	}

	var vb rierr.ValidationBuilder
	for name := range req.Sort {
		if !contains(c.SortFields, name) {
			vb.Fieldf("sort", "%q is not a valid sort field.", name)
		}
	}

	for _, name := range sortedKeys(req.Filter) {
		f, ok := c.FilterFields[name]
		if !ok {
			vb.Fieldf("filter", "%q is not a valid filter field.", name)
			continue
		}

		for _, v := range req.Filter[name] {
			switch v.(type) {
			case nil, string, float64, int, int64, bool:
			default:
				vb.Fieldf("filter."+name, "%v is not a valid filter value.", v)
				continue
			}

			if !f.allows(v) {
				vb.Fieldf("filter."+name, "%v is not a valid choice.", v)
			}
		}
	}

	return vb.Build()
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}

	return false
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
