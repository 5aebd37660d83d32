package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cosmicweaver/arcana-go/internal/domain"
	"github.com/cosmicweaver/arcana-go/internal/ports"
)

var ErrInvalidPost = errors.New("post title and content are required")

// BlogService manages blog posts over the blog store.
type BlogService struct {
	store ports.BlogStore
	now   func() time.Time
}

func NewBlogService(store ports.BlogStore) *BlogService {
	return &BlogService{store: store, now: time.Now}
}

// CreatePost validates and stores a new post, assigning its ID.
func (s *BlogService) CreatePost(ctx context.Context, p domain.BlogPost) (domain.BlogPost, error) {
	if p.Title == "" || p.Content == "" {
		return domain.BlogPost{}, ErrInvalidPost
	}
	p.ID = uuid.NewString()
	p.CreatedAt = s.now()
	if err := s.store.SavePost(ctx, p); err != nil {
		return domain.BlogPost{}, fmt.Errorf("save post: %w", err)
	}
	return p, nil
}

// UpdatePost replaces an existing post's fields. The bool reports whether
// the post existed.
func (s *BlogService) UpdatePost(ctx context.Context, p domain.BlogPost) (bool, error) {
	if p.Title == "" || p.Content == "" {
		return false, ErrInvalidPost
	}
	return s.store.UpdatePost(ctx, p)
}

// Posts returns all posts, most recent first.
func (s *BlogService) Posts(ctx context.Context) ([]domain.BlogPost, error) {
	return s.store.ListPosts(ctx)
}

// Post fetches one post by ID.
func (s *BlogService) Post(ctx context.Context, id string) (domain.BlogPost, bool, error) {
	return s.store.GetPost(ctx, id)
}

// DeletePost removes a post; absent IDs are a no-op.
func (s *BlogService) DeletePost(ctx context.Context, id string) error {
	return s.store.DeletePost(ctx, id)
}
