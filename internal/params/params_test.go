package params

import (
	"net/url"
	"testing"
)

func TestParseDefaults(t *testing.T) {
	t.Parallel()

	p := Parse(url.Values{})
	if p != Default() {
		t.Fatalf("expected defaults; got %+v", p)
	}
	if p.Skip != 0 || p.Limit != 10 || p.Order != "asc" {
		t.Fatalf("unexpected defaults: %+v", p)
	}
}

func TestParseMalformedNeverFatal(t *testing.T) {
	t.Parallel()

	v := url.Values{}
	v.Set("skip", "banana")
	v.Set("limit", "-3")
	v.Set("order", "sideways")
	p := Parse(v)
	if p.Skip != 0 || p.Limit != 10 || p.Order != "asc" {
		t.Fatalf("malformed values should fall back to defaults; got %+v", p)
	}
}

func TestEncodeOmitsDefaults(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		p    Params
		want string
	}{
		{name: "all defaults", p: Default(), want: ""},
		{name: "explicit defaults written", p: Params{Skip: 0, Limit: 10, Order: "asc", Tag: "all", SortBy: "none"}, want: ""},
		{name: "skip and search", p: Params{Skip: 20, Limit: 10, Order: "asc", Search: "ocean"}, want: "search=ocean&skip=20"},
		{name: "desc order kept", p: Params{Limit: 10, Order: "desc", SortBy: "title"}, want: "order=desc&sortBy=title"},
		{name: "non-default limit kept", p: Params{Limit: 30, Order: "asc"}, want: "limit=30"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.Encode().Encode(); got != tt.want {
				t.Fatalf("Encode() = %q; want %q", got, tt.want)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	orig := Params{Skip: 30, Limit: 10, Search: "sun", Tag: "history", SortBy: "id", Order: "desc"}
	got := Parse(orig.Encode())
	if got != orig {
		t.Fatalf("round trip mismatch: %+v != %+v", got, orig)
	}
}

func TestTagFilterAll(t *testing.T) {
	t.Parallel()

	p := Params{Tag: "all"}
	if p.TagFilter() != "" {
		t.Fatalf("tag=all should be no filter")
	}
	if p.HasActiveFilters() {
		t.Fatalf("tag=all alone is not an active filter")
	}
}

func TestListingEqualIgnoresSkip(t *testing.T) {
	t.Parallel()

	a := Default()
	b := Default()
	b.Skip = 40
	if !ListingEqual(a, b) {
		t.Fatalf("skip must not affect listing identity")
	}
	b.Search = "x"
	if ListingEqual(a, b) {
		t.Fatalf("search must affect listing identity")
	}
}
