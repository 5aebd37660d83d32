package ports

import (
	"context"

	"github.com/cosmicweaver/arcana-go/internal/domain"
)

// BlogStore persists blog posts.
type BlogStore interface {
	SavePost(ctx context.Context, p domain.BlogPost) error
	ListPosts(ctx context.Context) ([]domain.BlogPost, error)
	GetPost(ctx context.Context, id string) (domain.BlogPost, bool, error)
	UpdatePost(ctx context.Context, p domain.BlogPost) (bool, error)
	DeletePost(ctx context.Context, id string) error
}
