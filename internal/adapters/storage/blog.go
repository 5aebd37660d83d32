package storage

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/cosmicweaver/arcana-go/internal/domain"
)

// SavePost stores a new blog post.
func (s *Store) SavePost(ctx context.Context, p domain.BlogPost) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO posts (id, title, excerpt, content, category, watcher_insight, image_url, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Title, p.Excerpt, p.Content, string(p.Category),
		p.WatcherInsight, p.ImageURL, p.CreatedAt.Format(time.RFC3339Nano))
	return err
}

// ListPosts returns all posts, most recent first.
func (s *Store) ListPosts(ctx context.Context) ([]domain.BlogPost, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, excerpt, content, category, watcher_insight, image_url, created_at
		 FROM posts
		 ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []domain.BlogPost
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return posts, nil
}

// GetPost fetches one post by ID; the second return reports presence.
func (s *Store) GetPost(ctx context.Context, id string) (domain.BlogPost, bool, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, title, excerpt, content, category, watcher_insight, image_url, created_at
		 FROM posts WHERE id = ?`, id)
	p, err := scanPost(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.BlogPost{}, false, nil
	}
	if err != nil {
		return domain.BlogPost{}, false, err
	}
	return p, true, nil
}

// UpdatePost replaces an existing post's content fields. The bool return
// reports whether a post with that ID existed.
func (s *Store) UpdatePost(ctx context.Context, p domain.BlogPost) (bool, error) {
	res, err := s.db.ExecContext(ctx,
		`UPDATE posts
		 SET title = ?, excerpt = ?, content = ?, category = ?, watcher_insight = ?, image_url = ?
		 WHERE id = ?`,
		p.Title, p.Excerpt, p.Content, string(p.Category), p.WatcherInsight, p.ImageURL, p.ID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// DeletePost removes one post; absent IDs are a no-op.
func (s *Store) DeletePost(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM posts WHERE id = ?`, id)
	return err
}

func scanPost(row rowScanner) (domain.BlogPost, error) {
	var (
		p         domain.BlogPost
		category  string
		createdAt string
	)
	if err := row.Scan(&p.ID, &p.Title, &p.Excerpt, &p.Content, &category, &p.WatcherInsight, &p.ImageURL, &createdAt); err != nil {
		return domain.BlogPost{}, err
	}
	parsed, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return domain.BlogPost{}, err
	}
	p.Category = domain.BlogCategory(category)
	p.CreatedAt = parsed
	return p, nil
}
