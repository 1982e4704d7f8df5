package cache

import (
	"strconv"

	"postdeck/internal/params"
)

// Region keys name cached query results, mirroring the request that produced
// them. List keys embed the full listing params so each page/filter
// combination is its own region.

const (
	usersKey = "users"
	tagsKey  = "tags"
)

func PostListKey(p params.Params) string {
	// Search mode is keyed separately; a list key never carries the term.
	p.Search = ""
	return "posts/list?" + p.Encode().Encode()
}

func PostSearchKey(query string) string {
	return "posts/search?q=" + query
}

func PostDetailKey(id int) string {
	return "posts/detail/" + strconv.Itoa(id)
}

func CommentListKey(postID int) string {
	return "comments/post/" + strconv.Itoa(postID)
}
