package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/hautdegamme/studio-api/internal/model"
	"github.com/hautdegamme/studio-api/internal/store"
)

// ListPosts handles GET /api/blog/posts (public): published articles only.
func (h *Handler) ListPosts(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Store.ListPosts(true))
}

// ListPostsAll handles GET /api/blog/posts/all (admin): drafts included.
func (h *Handler) ListPostsAll(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Store.ListPosts(false))
}

// GetPost handles GET /api/blog/posts/:id (public).  The parameter is
// matched as an id first, then as a slug, so the public site can link
// either way.  Drafts answer 404 so unpublished URLs cannot be guessed.
func (h *Handler) GetPost(c echo.Context) error {
	key := c.Param("id")
	p, err := h.Store.GetPost(key)
	if err != nil {
		p, err = h.Store.GetPostBySlug(key)
	}
	if err != nil || !p.IsPublished {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Post not found"})
	}
	return c.JSON(http.StatusOK, p)
}

// CreatePost handles POST /api/blog/posts (admin).
func (h *Handler) CreatePost(c echo.Context) error {
	var body struct {
		Title       string `json:"title"`
		Slug        string `json:"slug"`
		Excerpt     string `json:"excerpt"`
		Content     string `json:"content"`
		Category    string `json:"category"`
		CoverURL    string `json:"coverUrl"`
		IsPublished bool   `json:"isPublished"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	body.Title = strings.TrimSpace(body.Title)
	body.Slug = strings.TrimSpace(body.Slug)
	if body.Title == "" || body.Slug == "" || body.Content == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Title, slug and content are required"})
	}
	p := h.Store.CreatePost(store.BlogPostInput{
		Title:       body.Title,
		Slug:        body.Slug,
		Excerpt:     body.Excerpt,
		Content:     body.Content,
		Category:    body.Category,
		CoverURL:    body.CoverURL,
		IsPublished: body.IsPublished,
	})
	return c.JSON(http.StatusCreated, p)
}

// UpdatePost handles PUT /api/blog/posts/:id (admin).
func (h *Handler) UpdatePost(c echo.Context) error {
	var patch model.BlogPostPatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	p, err := h.Store.UpdatePost(c.Param("id"), patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Post not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Internal server error"})
	}
	return c.JSON(http.StatusOK, p)
}

// DeletePost handles DELETE /api/blog/posts/:id (admin): removes the
// post together with its comments.
func (h *Handler) DeletePost(c echo.Context) error {
	if err := h.Store.DeletePost(c.Param("id")); err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Post not found"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Post deleted successfully"})
}

// ListPostComments handles GET /api/blog/posts/:id/comments (public):
// approved comments only, pending moderation stays invisible.
func (h *Handler) ListPostComments(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Store.ListCommentsByPost(c.Param("id"), true))
}

// CreateComment handles POST /api/blog/posts/:id/comments (public).
// The comment lands unapproved and waits for moderation.
func (h *Handler) CreateComment(c echo.Context) error {
	var body struct {
		Author  string `json:"author"`
		Email   string `json:"email"`
		Content string `json:"content"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	body.Author = strings.TrimSpace(body.Author)
	if body.Author == "" || strings.TrimSpace(body.Content) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Author and content are required"})
	}
	cm, err := h.Store.CreateComment(store.BlogCommentInput{
		PostID:  c.Param("id"),
		Author:  body.Author,
		Email:   body.Email,
		Content: body.Content,
	})
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Post not found"})
	}
	return c.JSON(http.StatusCreated, cm)
}

// ListComments handles GET /api/blog/comments?filter= (admin).  The
// filter mirrors the moderation screen tabs: pending (default),
// approved, all.
func (h *Handler) ListComments(c echo.Context) error {
	filter := c.QueryParam("filter")
	switch filter {
	case "", "pending":
		filter = "pending"
	case "approved", "all":
	default:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "filter must be pending, approved or all"})
	}
	return c.JSON(http.StatusOK, h.Store.ListComments(filter))
}

// ApproveComment handles POST /api/blog/comments/:id/approve (admin).
func (h *Handler) ApproveComment(c echo.Context) error {
	cm, err := h.Store.ApproveComment(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Comment not found"})
	}
	return c.JSON(http.StatusOK, cm)
}

// DeleteComment handles DELETE /api/blog/comments/:id (admin).
func (h *Handler) DeleteComment(c echo.Context) error {
	if err := h.Store.DeleteComment(c.Param("id")); err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Comment not found"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Comment deleted successfully"})
}
