package model

import "time"

// BlogPost is an article on the studio blog.  Unpublished drafts are
// only visible to the back office.
type BlogPost struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Excerpt     string    `json:"excerpt,omitempty"`
	Content     string    `json:"content"`
	Category    string    `json:"category,omitempty"`
	CoverURL    string    `json:"coverUrl,omitempty"`
	IsPublished bool      `json:"isPublished"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// BlogPostPatch lists the mutable fields of a BlogPost.
type BlogPostPatch struct {
	Title       *string `json:"title"`
	Slug        *string `json:"slug"`
	Excerpt     *string `json:"excerpt"`
	Content     *string `json:"content"`
	Category    *string `json:"category"`
	CoverURL    *string `json:"coverUrl"`
	IsPublished *bool   `json:"isPublished"`
}

// BlogComment is a visitor comment on a blog post.  Comments are
// created unapproved and stay hidden from the public listing until an
// admin approves them.
type BlogComment struct {
	ID         string    `json:"id"`
	PostID     string    `json:"postId"`
	Author     string    `json:"author"`
	Email      string    `json:"email,omitempty"`
	Content    string    `json:"content"`
	IsApproved bool      `json:"isApproved"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
