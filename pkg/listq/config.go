// Package listq implements the list endpoints' query mechanism: free-text search, field
// filters, a single client-chosen sort field on top of a fixed default ordering, and page
// based pagination. Each endpoint describes what it allows with a Config.
package listq

import (
	"fmt"
	"sort"
	"strings"
)

const (
	DefaultPageSize    = 25
	DefaultMaxPageSize = 100
)

// Option is one allowed value of a filter field with fixed choices. A nil ID matches NULL.
type Option struct {
	ID   any    `json:"id"`
	Name string `json:"name"`
}

type FilterField struct {
	// Column path, either a base table column ("race_id") or alias.column ("race.name").
	Column string

	// When set, filter values must be the ID of one of these.
	Options []Option
}

func (f FilterField) allows(v any) bool {
	if len(f.Options) == 0 {
		return true
	}

	for _, o := range f.Options {
		if o.ID == v {
			return true
		}
	}

	return false
}

// Relation is a one hop LEFT JOIN from the base table, referenced in column paths by its
// alias.
type Relation struct {
	Table      string
	ForeignKey string
}

type Config struct {
	// Base table of the listed model.
	Table string

	// Column paths searched with a case-insensitive substring match.
	SearchFields []string

	// Client names allowed as sort keys.
	SortFields []string

	// Client name to column path, for sort keys that aren't base table columns.
	FieldMap map[string]string

	// Client name to filterable column.
	FilterFields map[string]FilterField

	Relations map[string]Relation

	// Default ordering as column paths, "-" prefix for descending. "id" is appended when
	// it isn't last so that every ordering is total.
	Ordering []string

	// gorm association names to preload on the fetched page.
	Preload []string

	PageSize    int
	MaxPageSize int
}

func (c *Config) pageSize() int {
	if c.PageSize > 0 {
		return c.PageSize
	}

	return DefaultPageSize
}

func (c *Config) maxPageSize() int {
	if c.MaxPageSize > 0 {
		return c.MaxPageSize
	}

	return DefaultMaxPageSize
}

// WithMaxPageSize returns a copy of the config with a different page size cap.
func (c *Config) WithMaxPageSize(max int) *Config {
	cc := *c
	cc.MaxPageSize = max
	return &cc
}

// path maps a client field name to a column path.
func (c *Config) path(name string) string {
	if p, ok := c.FieldMap[name]; ok {
		return p
	}

	return name
}

// column qualifies a column path for use in SQL and reports the relation alias it needs.
func (c *Config) column(path string) (string, string) {
	if alias, col, ok := strings.Cut(path, "."); ok {
		return alias + "." + col, alias
	}

	return c.Table + "." + path, ""
}

func (c *Config) ordering() []string {
	ordering := append([]string(nil), c.Ordering...)
	if len(ordering) == 0 || strings.TrimPrefix(ordering[len(ordering)-1], "-") != "id" {
		ordering = append(ordering, "id")
	}

	return ordering
}

func (c *Config) FilterOptions() map[string][]Option {
	var options map[string][]Option
	for name, f := range c.FilterFields {
		if len(f.Options) == 0 {
			continue
		}

		if options == nil {
			options = make(map[string][]Option)
		}
		options[name] = f.Options
	}

	return options
}

// Check verifies that every column path refers to a declared relation. It catches
// mistakes in endpoint declarations rather than in requests.
func (c *Config) Check() error {
	if c.Table == "" {
		return fmt.Errorf("list config has no table")
	}

	var paths []string
	paths = append(paths, c.SearchFields...)
	for _, name := range c.SortFields {
		paths = append(paths, c.path(name))
	}
	for _, f := range c.FilterFields {
		paths = append(paths, f.Column)
	}
	for _, o := range c.Ordering {
		paths = append(paths, strings.TrimPrefix(o, "-"))
	}

	var unknown []string
	for _, p := range paths {
		if _, alias := c.column(p); alias != "" {
			if _, ok := c.Relations[alias]; !ok {
				unknown = append(unknown, p)
			}
		}
	}

	if len(unknown) != 0 {
		sort.Strings(unknown)
		return fmt.Errorf("list config for %s uses undeclared relations: %s", c.Table, strings.Join(unknown, ", "))
	}

	return nil
}
