// Package api is the HTTP client for the dummyjson mock content API. It is a
// plain data transport: the backend does not durably persist writes, so
// callers treat mutation responses as advisory and keep their own cache
// authoritative.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"postdeck/internal/model"
	"postdeck/internal/params"
)

const DefaultBaseURL = "https://dummyjson.com"

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// StatusError is returned for any non-2xx response.
type StatusError struct {
	Method string
	Path   string
	Status int
}

func (e StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d", e.Method, e.Path, e.Status)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, rd)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return StatusError{Method: method, Path: path, Status: resp.StatusCode}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

// PostList fetches a page of posts. Sort is delegated to the server via
// sortBy/order; "none" and empty are not sent.
func (c *Client) PostList(ctx context.Context, p params.Params) (model.PostList, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(p.Limit))
	q.Set("skip", strconv.Itoa(p.Skip))
	if p.SortBy != "" && p.SortBy != "none" {
		q.Set("sortBy", p.SortBy)
		q.Set("order", p.Order)
	}
	var out model.PostList
	err := c.do(ctx, http.MethodGet, "/posts", q, nil, &out)
	return out, err
}

func (c *Client) PostByID(ctx context.Context, id int) (model.Post, error) {
	var out model.Post
	err := c.do(ctx, http.MethodGet, "/posts/"+strconv.Itoa(id), nil, nil, &out)
	return out, err
}

func (c *Client) PostSearch(ctx context.Context, query string) (model.PostList, error) {
	q := url.Values{}
	q.Set("q", query)
	var out model.PostList
	err := c.do(ctx, http.MethodGet, "/posts/search", q, nil, &out)
	return out, err
}

func (c *Client) PostsByTag(ctx context.Context, tag string) (model.PostList, error) {
	var out model.PostList
	err := c.do(ctx, http.MethodGet, "/posts/tag/"+url.PathEscape(tag), nil, nil, &out)
	return out, err
}

func (c *Client) CreatePost(ctx context.Context, p model.NewPost) (model.Post, error) {
	var out model.Post
	err := c.do(ctx, http.MethodPost, "/posts/add", nil, p, &out)
	return out, err
}

func (c *Client) UpdatePost(ctx context.Context, id int, u model.UpdatePost) (model.Post, error) {
	var out model.Post
	err := c.do(ctx, http.MethodPut, "/posts/"+strconv.Itoa(id), nil, u, &out)
	return out, err
}

func (c *Client) DeletePost(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, "/posts/"+strconv.Itoa(id), nil, nil, nil)
}

func (c *Client) CommentsByPost(ctx context.Context, postID int) (model.CommentList, error) {
	var out model.CommentList
	err := c.do(ctx, http.MethodGet, "/comments/post/"+strconv.Itoa(postID), nil, nil, &out)
	return out, err
}

func (c *Client) CreateComment(ctx context.Context, nc model.NewComment) (model.Comment, error) {
	var out model.Comment
	err := c.do(ctx, http.MethodPost, "/comments/add", nil, nc, &out)
	return out, err
}

func (c *Client) UpdateComment(ctx context.Context, id int, body string) (model.Comment, error) {
	var out model.Comment
	payload := struct {
		Body string `json:"body"`
	}{Body: body}
	err := c.do(ctx, http.MethodPut, "/comments/"+strconv.Itoa(id), nil, payload, &out)
	return out, err
}

// LikeComment PATCHes the absolute likes counter; the API has no per-user
// like state, the client tracks that itself.
func (c *Client) LikeComment(ctx context.Context, id, likes int) (model.Comment, error) {
	var out model.Comment
	payload := struct {
		Likes int `json:"likes"`
	}{Likes: likes}
	err := c.do(ctx, http.MethodPatch, "/comments/"+strconv.Itoa(id), nil, payload, &out)
	return out, err
}

func (c *Client) DeleteComment(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, "/comments/"+strconv.Itoa(id), nil, nil, nil)
}

// UserList fetches the full user list trimmed to the fields the table and
// author join need.
func (c *Client) UserList(ctx context.Context) (model.UserList, error) {
	q := url.Values{}
	q.Set("limit", "0")
	q.Set("select", "username,image")
	var out model.UserList
	err := c.do(ctx, http.MethodGet, "/users", q, nil, &out)
	return out, err
}

func (c *Client) UserByID(ctx context.Context, id int) (model.User, error) {
	var out model.User
	err := c.do(ctx, http.MethodGet, "/users/"+strconv.Itoa(id), nil, nil, &out)
	return out, err
}

func (c *Client) Tags(ctx context.Context) ([]model.Tag, error) {
	var out []model.Tag
	err := c.do(ctx, http.MethodGet, "/posts/tags", nil, nil, &out)
	return out, err
}
