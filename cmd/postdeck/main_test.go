package main

import (
	"reflect"
	"testing"
)

func TestRewriteDirectPostLookupArgs(t *testing.T) {
	cases := []struct {
		in   []string
		want []string
	}{
		{
			in:   []string{"postdeck", "42"},
			want: []string{"postdeck", "posts", "get", "42"},
		},
		{
			in:   []string{"postdeck", "--pretty", "42"},
			want: []string{"postdeck", "--pretty", "posts", "get", "42"},
		},
		{
			in:   []string{"postdeck", "posts", "list"},
			want: []string{"postdeck", "posts", "list"},
		},
		{
			in:   []string{"postdeck"},
			want: []string{"postdeck"},
		},
	}
	for _, tc := range cases {
		if got := rewriteDirectPostLookupArgs(tc.in); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("rewrite(%v) = %v; want %v", tc.in, got, tc.want)
		}
	}
}
