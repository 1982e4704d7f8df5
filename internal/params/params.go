// Package params models the flat listing state (pagination, search, tag
// filter, sort) that the UI persists in a URL-style key/value form. Default
// values are omitted on encode so that writing defaults and never writing at
// all round-trip to the same state.
package params

import (
	"net/url"
	"strconv"
)

const (
	DefaultSkip  = 0
	DefaultLimit = 10
	DefaultOrder = "asc"
)

type Params struct {
	Skip   int
	Limit  int
	Search string
	Tag    string
	SortBy string
	Order  string // "asc" or "desc"
}

func Default() Params {
	return Params{Skip: DefaultSkip, Limit: DefaultLimit, Order: DefaultOrder}
}

// Parse reads a key/value set, defaulting anything missing or malformed.
// Malformed numbers are never fatal.
func Parse(values url.Values) Params {
	p := Default()
	if v := values.Get("skip"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			p.Skip = n
		}
	}
	if v := values.Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			p.Limit = n
		}
	}
	p.Search = values.Get("search")
	p.Tag = values.Get("tag")
	p.SortBy = values.Get("sortBy")
	if v := values.Get("order"); v == "desc" {
		p.Order = "desc"
	}
	return p
}

// isDefault reports whether value is the default for key and should be
// omitted from the encoded form. "all" (tag) and "none" (sortBy) are
// placeholder selections, equivalent to unset.
func isDefault(key, value string) bool {
	switch value {
	case "", "0", "asc", "all", "none":
		return true
	}
	return key == "limit" && value == strconv.Itoa(DefaultLimit)
}

// Encode writes p as url.Values, omitting defaults.
func (p Params) Encode() url.Values {
	values := url.Values{}
	set := func(key, value string) {
		if !isDefault(key, value) {
			values.Set(key, value)
		}
	}
	set("skip", strconv.Itoa(p.Skip))
	set("limit", strconv.Itoa(p.Limit))
	set("search", p.Search)
	set("tag", p.Tag)
	set("sortBy", p.SortBy)
	set("order", p.Order)
	return values
}

// Searching reports whether a non-empty search term is active. Search mode
// replaces pagination/tag mode for the raw list source.
func (p Params) Searching() bool { return p.Search != "" }

// TagFilter returns the effective tag filter ("all" means none).
func (p Params) TagFilter() string {
	if p.Tag == "all" {
		return ""
	}
	return p.Tag
}

// HasActiveFilters reports whether any non-default filter or sort is set,
// used by the UI to offer a reset action.
func (p Params) HasActiveFilters() bool {
	return p.Search != "" || p.TagFilter() != "" ||
		(p.SortBy != "" && p.SortBy != "none") || p.Order != DefaultOrder
}

// ListingEqual reports whether a and b select the same listing (everything
// except Skip). Navigating to a different listing clears transient
// newly-created highlighting.
func ListingEqual(a, b Params) bool {
	return a.Limit == b.Limit && a.Search == b.Search && a.TagFilter() == b.TagFilter() &&
		a.SortBy == b.SortBy && a.Order == b.Order
}
