package listq

import "fmt"

// Page is the response body of a list call.
type Page[T any] struct {
	Count         int64               `json:"count"`
	Results       []T                 `json:"results"`
	Next          *string             `json:"next,omitempty"`
	Previous      *string             `json:"previous,omitempty"`
	FilterOptions map[string][]Option `json:"filter_options,omitempty"`
}

// NewPage serializes each row of r and adds the navigation links and filter options.
func NewPage[M, T any](r *Result[M], cfg *Config, serialize func(*M) T) *Page[T] {
	p := &Page[T]{
		Count:         r.Count,
		Results:       make([]T, 0, len(r.Items)),
		FilterOptions: cfg.FilterOptions(),
	}

	for i := range r.Items {
		p.Results = append(p.Results, serialize(&r.Items[i]))
	}

	if r.Page < r.NumPages {
		p.Next = pageLink(r.Page+1, r.PageSize)
	}

	if r.Page > 1 {
		p.Previous = pageLink(r.Page-1, r.PageSize)
	}

	return p
}

func pageLink(page, pageSize int) *string {
	link := fmt.Sprintf("?page=%d&page_size=%d", page, pageSize)
	return &link
}
