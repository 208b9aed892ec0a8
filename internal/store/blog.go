package store

import "github.com/hautdegamme/studio-api/internal/model"

// BlogPostInput carries the caller-supplied fields for a new post.
type BlogPostInput struct {
	Title       string
	Slug        string
	Excerpt     string
	Content     string
	Category    string
	CoverURL    string
	IsPublished bool
}

// BlogCommentInput carries the caller-supplied fields for a new
// comment.  Comments always start unapproved.
type BlogCommentInput struct {
	PostID  string
	Author  string
	Email   string
	Content string
}

// ListPosts returns blog posts, optionally restricted to published ones.
func (s *Store) ListPosts(publishedOnly bool) []model.BlogPost {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.BlogPost, 0, len(s.posts))
	for _, p := range s.posts {
		if publishedOnly && !p.IsPublished {
			continue
		}
		out = append(out, p)
	}
	return out
}

// GetPost returns the post with the given id.
func (s *Store) GetPost(id string) (model.BlogPost, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.posts {
		if p.ID == id {
			return p, nil
		}
	}
	return model.BlogPost{}, ErrNotFound
}

// GetPostBySlug returns the post with the given slug.
func (s *Store) GetPostBySlug(slug string) (model.BlogPost, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.posts {
		if p.Slug == slug {
			return p, nil
		}
	}
	return model.BlogPost{}, ErrNotFound
}

// CreatePost stores a new blog post.
func (s *Store) CreatePost(in BlogPostInput) model.BlogPost {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	p := model.BlogPost{
		ID:          s.newID(),
		Title:       in.Title,
		Slug:        in.Slug,
		Excerpt:     in.Excerpt,
		Content:     in.Content,
		Category:    in.Category,
		CoverURL:    in.CoverURL,
		IsPublished: in.IsPublished,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.posts = append(s.posts, p)
	return p
}

// UpdatePost merges the patch over the existing record.
func (s *Store) UpdatePost(id string, patch model.BlogPostPatch) (model.BlogPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.posts {
		if s.posts[i].ID != id {
			continue
		}
		p := &s.posts[i]
		if patch.Title != nil {
			p.Title = *patch.Title
		}
		if patch.Slug != nil {
			p.Slug = *patch.Slug
		}
		if patch.Excerpt != nil {
			p.Excerpt = *patch.Excerpt
		}
		if patch.Content != nil {
			p.Content = *patch.Content
		}
		if patch.Category != nil {
			p.Category = *patch.Category
		}
		if patch.CoverURL != nil {
			p.CoverURL = *patch.CoverURL
		}
		if patch.IsPublished != nil {
			p.IsPublished = *patch.IsPublished
		}
		p.UpdatedAt = s.now()
		return *p, nil
	}
	return model.BlogPost{}, ErrNotFound
}

// DeletePost removes the post and all of its comments.
func (s *Store) DeletePost(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.posts {
		if s.posts[i].ID == id {
			s.posts = append(s.posts[:i], s.posts[i+1:]...)
			kept := s.comments[:0]
			for _, c := range s.comments {
				if c.PostID != id {
					kept = append(kept, c)
				}
			}
			s.comments = kept
			return nil
		}
	}
	return ErrNotFound
}

// ListCommentsByPost returns comments on a post.  With approvedOnly
// set, pending comments stay hidden (public listing).
func (s *Store) ListCommentsByPost(postID string, approvedOnly bool) []model.BlogComment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.BlogComment, 0)
	for _, c := range s.comments {
		if c.PostID != postID {
			continue
		}
		if approvedOnly && !c.IsApproved {
			continue
		}
		out = append(out, c)
	}
	return out
}

// ListComments returns comments across all posts filtered by
// moderation state: "pending", "approved" or "all".
func (s *Store) ListComments(filter string) []model.BlogComment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.BlogComment, 0, len(s.comments))
	for _, c := range s.comments {
		switch filter {
		case "pending":
			if c.IsApproved {
				continue
			}
		case "approved":
			if !c.IsApproved {
				continue
			}
		}
		out = append(out, c)
	}
	return out
}

// CreateComment stores a new unapproved comment.  The post must exist.
func (s *Store) CreateComment(in BlogCommentInput) (model.BlogComment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	found := false
	for _, p := range s.posts {
		if p.ID == in.PostID {
			found = true
			break
		}
	}
	if !found {
		return model.BlogComment{}, ErrNotFound
	}
	now := s.now()
	c := model.BlogComment{
		ID:         s.newID(),
		PostID:     in.PostID,
		Author:     in.Author,
		Email:      in.Email,
		Content:    in.Content,
		IsApproved: false,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	s.comments = append(s.comments, c)
	return c, nil
}

// ApproveComment marks a comment as approved.
func (s *Store) ApproveComment(id string) (model.BlogComment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.comments {
		if s.comments[i].ID == id {
			s.comments[i].IsApproved = true
			s.comments[i].UpdatedAt = s.now()
			return s.comments[i], nil
		}
	}
	return model.BlogComment{}, ErrNotFound
}

// DeleteComment physically removes the comment.
func (s *Store) DeleteComment(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.comments {
		if s.comments[i].ID == id {
			s.comments = append(s.comments[:i], s.comments[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
