package listq

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Result is one page of rows together with the numbers needed to build links.
type Result[M any] struct {
	Items    []M
	Count    int64
	Page     int
	PageSize int
	NumPages int
}

// Run validates req, counts the matching rows and fetches the requested page in a total
// order. A page past the end is clamped to the last page.
func Run[M any](db *gorm.DB, cfg *Config, req Request, pp PageParams) (*Result[M], error) {
	if err := cfg.Check(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(req); err != nil {
		return nil, err
	}

	pp = cfg.normalize(pp)

	var count int64
	if err := cfg.filtered(db.Model(new(M)), req).Count(&count).Error; err != nil {
		return nil, errors.Wrapf(err, "counting %s", cfg.Table)
	}

	numPages := int((count + int64(pp.PageSize) - 1) / int64(pp.PageSize))
	if numPages < 1 {
		numPages = 1
	}

	if pp.Page > numPages {
		pp.Page = numPages
	}

	q := cfg.filtered(db.Model(new(M)), req)
	if len(cfg.joinsNeeded(req)) != 0 {
		q = q.Select(cfg.Table + ".*")
	}

	for _, p := range cfg.Preload {
		q = q.Preload(p)
	}

	items := make([]M, 0, pp.PageSize)
	err := q.Order(cfg.orderBy(req)).
		Offset((pp.Page - 1) * pp.PageSize).
		Limit(pp.PageSize).
		Find(&items).Error
	if err != nil {
		return nil, errors.Wrapf(err, "listing %s", cfg.Table)
	}

	return &Result[M]{
		Items:    items,
		Count:    count,
		Page:     pp.Page,
		PageSize: pp.PageSize,
		NumPages: numPages,
	}, nil
}

// filtered adds the joins, search and filter predicates to q.
func (c *Config) filtered(q *gorm.DB, req Request) *gorm.DB {
	for _, alias := range c.joinsNeeded(req) {
		rel := c.Relations[alias]
		q = q.Joins(fmt.Sprintf("LEFT JOIN %s %s ON %s.id = %s.%s", rel.Table, alias, alias, c.Table, rel.ForeignKey))
	}

	if term := strings.TrimSpace(req.Search); term != "" && len(c.SearchFields) != 0 {
		pattern := "%" + escapeLike(strings.ToLower(term)) + "%"
		predicates := make([]string, 0, len(c.SearchFields))
		args := make([]any, 0, len(c.SearchFields))
		for _, field := range c.SearchFields {
			col, _ := c.column(field)
			predicates = append(predicates, fmt.Sprintf("LOWER(%s) LIKE ? ESCAPE '!'", col))
			args = append(args, pattern)
		}
		q = q.Where("("+strings.Join(predicates, " OR ")+")", args...)
	}

	for _, name := range sortedKeys(req.Filter) {
		values := req.Filter[name]
		if len(values) == 0 {
			continue
		}

		col, _ := c.column(c.FilterFields[name].Column)
		var (
			present []any
			isNull  bool
		)
		for _, v := range values {
			if v == nil {
				isNull = true
				continue
			}
			present = append(present, v)
		}

		var predicates []string
		var args []any
		if len(present) != 0 {
			predicates = append(predicates, col+" IN ?")
			args = append(args, present)
		}
		if isNull {
			predicates = append(predicates, col+" IS NULL")
		}
		q = q.Where("("+strings.Join(predicates, " OR ")+")", args...)
	}

	return q
}

// joinsNeeded lists, in a stable order, the relation aliases the request touches.
func (c *Config) joinsNeeded(req Request) []string {
	used := make(map[string]bool)
	mark := func(path string) {
		if _, alias := c.column(strings.TrimPrefix(path, "-")); alias != "" {
			used[alias] = true
		}
	}

	if strings.TrimSpace(req.Search) != "" {
		for _, f := range c.SearchFields {
			mark(f)
		}
	}
	for name, values := range req.Filter {
		if len(values) != 0 {
			mark(c.FilterFields[name].Column)
		}
	}
	for name := range req.Sort {
		mark(c.path(name))
	}
	for _, o := range c.Ordering {
		mark(o)
	}

	return sortedKeys(used)
}

func (c *Config) orderBy(req Request) string {
	var terms []string
	for name, asc := range req.Sort {
		col, _ := c.column(c.path(name))
		terms = append(terms, col+direction(asc))
	}

	for _, o := range c.ordering() {
		desc := strings.HasPrefix(o, "-")
		col, _ := c.column(strings.TrimPrefix(o, "-"))
		terms = append(terms, col+direction(!desc))
	}

	return strings.Join(terms, ", ")
}

func direction(asc bool) string {
	if asc {
		return " ASC"
	}

	return " DESC"
}

// escapeLike escapes the LIKE wildcards with '!' so a search matches them literally.
func escapeLike(s string) string {
	return strings.NewReplacer("!", "!!", "%", "!%", "_", "!_").Replace(s)
}
