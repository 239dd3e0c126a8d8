package scpjp

import (
	"net/url"

	"github.com/google/go-querystring/query"
)

// ListOptions carries the pagination and ordering parameters shared by the
// list endpoints. Embed it in per-call option structs. The values are passed
// through to the remote service as-is; the clients do no pagination
// orchestration of their own.
type ListOptions struct {
	// PerPage is the page size. The services default to 100.
	PerPage int `url:"per_page"`

	// Page is the 1-based page number.
	Page int `url:"page"`

	// OrderBy names the sort field, e.g. "created_at".
	OrderBy string `url:"order_by"`

	// Order is "asc" or "desc".
	Order string `url:"order"`
}

// WithDefaults returns a copy with unset fields filled in with the service
// defaults, so a zero ListOptions behaves like omitting every parameter.
func (o ListOptions) WithDefaults() ListOptions {
	if o.PerPage == 0 {
		o.PerPage = 100
	}
	if o.Page == 0 {
		o.Page = 1
	}
	if o.OrderBy == "" {
		o.OrderBy = "created_at"
	}
	if o.Order == "" {
		o.Order = "desc"
	}
	return o
}

// Values encodes an option struct into url.Values using its `url` tags.
// A nil opt yields an empty, non-nil url.Values.
func Values(opt any) (url.Values, error) {
	if opt == nil {
		return url.Values{}, nil
	}
	return query.Values(opt)
}
