package model

// The dummyjson mock API ships with a fixed dataset and silently discards
// writes. IDs at or below these ceilings exist on the server; anything above
// them only ever exists in the local cache.
const (
	MaxRealPostID    = 251
	MaxRealCommentID = 340
	MaxRealUserID    = 208
)

func IsRealPostID(id int) bool { return id <= MaxRealPostID }

func IsRealCommentID(id int) bool { return id <= MaxRealCommentID }

func IsRealUserID(id int) bool { return id <= MaxRealUserID }

type Reactions struct {
	Likes    int `json:"likes"`
	Dislikes int `json:"dislikes"`
}

type Post struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	UserID    int       `json:"userId"`
	Tags      []string  `json:"tags"`
	Reactions Reactions `json:"reactions"`
	Views     int       `json:"views,omitempty"`

	// Author is joined client-side from the loaded user list; it is never
	// part of the wire response.
	Author *User `json:"-"`
}

type NewPost struct {
	Title  string   `json:"title"`
	Body   string   `json:"body"`
	UserID int      `json:"userId"`
	Tags   []string `json:"tags,omitempty"`
}

// UpdatePost carries only the fields being changed; nil means "leave as is".
type UpdatePost struct {
	Title *string   `json:"title,omitempty"`
	Body  *string   `json:"body,omitempty"`
	Tags  *[]string `json:"tags,omitempty"`
}

// Apply patches p in place.
func (u UpdatePost) Apply(p *Post) {
	if u.Title != nil {
		p.Title = *u.Title
	}
	if u.Body != nil {
		p.Body = *u.Body
	}
	if u.Tags != nil {
		p.Tags = append([]string(nil), (*u.Tags)...)
	}
}

type PostList struct {
	Posts []Post `json:"posts"`
	Total int    `json:"total"`
	Skip  int    `json:"skip"`
	Limit int    `json:"limit"`
}

// UserSummary is the nested author shape the API embeds in comments.
type UserSummary struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Image    string `json:"image,omitempty"`
}

type Comment struct {
	ID     int         `json:"id"`
	Body   string      `json:"body"`
	PostID int         `json:"postId"`
	UserID int         `json:"userId,omitempty"`
	User   UserSummary `json:"user"`
	Likes  int         `json:"likes"`
}

type NewComment struct {
	Body   string `json:"body"`
	PostID int    `json:"postId"`
	UserID int    `json:"userId"`
}

type CommentList struct {
	Comments []Comment `json:"comments"`
	Total    int       `json:"total"`
	Skip     int       `json:"skip"`
	Limit    int       `json:"limit"`
}

type Address struct {
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode,omitempty"`
	Country    string `json:"country,omitempty"`
}

type Company struct {
	Name       string `json:"name"`
	Title      string `json:"title"`
	Department string `json:"department,omitempty"`
}

type User struct {
	ID        int      `json:"id"`
	Username  string   `json:"username"`
	FirstName string   `json:"firstName,omitempty"`
	LastName  string   `json:"lastName,omitempty"`
	Email     string   `json:"email,omitempty"`
	Phone     string   `json:"phone,omitempty"`
	Image     string   `json:"image,omitempty"`
	Age       int      `json:"age,omitempty"`
	Address   *Address `json:"address,omitempty"`
	Company   *Company `json:"company,omitempty"`
}

func (u User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Username: u.Username, Image: u.Image}
}

type UserList struct {
	Users []User `json:"users"`
	Total int    `json:"total"`
	Skip  int    `json:"skip"`
	Limit int    `json:"limit"`
}

type Tag struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}

// FindUser returns the user with the given id from users, or nil.
func FindUser(users []User, id int) *User {
	for i := range users {
		if users[i].ID == id {
			return &users[i]
		}
	}
	return nil
}

// ClonePost returns a deep copy (tags are the only reference field besides
// the joined author, which is shared intentionally).
func ClonePost(p Post) Post {
	out := p
	out.Tags = append([]string(nil), p.Tags...)
	return out
}

func ClonePosts(ps []Post) []Post {
	out := make([]Post, len(ps))
	for i := range ps {
		out[i] = ClonePost(ps[i])
	}
	return out
}

func CloneComments(cs []Comment) []Comment {
	return append([]Comment(nil), cs...)
}
