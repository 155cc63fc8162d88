package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/x67digital/site-api/internal/model"
)

// BlogPostRepository defines the read-only persistence interface for
// blog posts. Only published posts are visible through it;
// GetPublishedBySlug reports absence as (nil, nil).
type BlogPostRepository interface {
	ListPublished(ctx context.Context, category string, limit, skip int) ([]*model.BlogPost, error)
	CountPublished(ctx context.Context, category string) (int64, error)
	GetPublishedBySlug(ctx context.Context, slug string) (*model.BlogPost, error)
}

// PgBlogPostRepository is the PostgreSQL implementation of
// BlogPostRepository.
type PgBlogPostRepository struct {
	pool *pgxpool.Pool
}

var _ BlogPostRepository = (*PgBlogPostRepository)(nil)

// NewPgBlogPostRepository creates a PgBlogPostRepository backed by pool.
func NewPgBlogPostRepository(pool *pgxpool.Pool) *PgBlogPostRepository {
	return &PgBlogPostRepository{pool: pool}
}

const blogPostColumns = `id, title, slug, excerpt, content, author, category, tags,
	featured_image, published, published_at, created_at, updated_at`

func scanBlogPost(row pgx.Row) (*model.BlogPost, error) {
	var p model.BlogPost
	err := row.Scan(&p.ID, &p.Title, &p.Slug, &p.Excerpt, &p.Content, &p.Author,
		&p.Category, &p.Tags, &p.FeaturedImage, &p.Published, &p.PublishedAt,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListPublished returns published posts newest-first, optionally
// filtered by category.
func (r *PgBlogPostRepository) ListPublished(ctx context.Context, category string, limit, skip int) ([]*model.BlogPost, error) {
	conditions := []string{"published = true"}
	args := []any{}

	if category != "" {
		args = append(args, category)
		conditions = append(conditions, "category = $1")
	}

	limitArg := len(args) + 1
	skipArg := len(args) + 2
	args = append(args, limit, skip)

	query := `SELECT ` + blogPostColumns + `
		 FROM blog_posts
		 WHERE ` + strings.Join(conditions, " AND ") + `
		 ORDER BY published_at DESC
		 LIMIT $` + itoa(limitArg) + ` OFFSET $` + itoa(skipArg)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []*model.BlogPost
	for rows.Next() {
		p, err := scanBlogPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

// CountPublished returns the number of published posts, optionally
// filtered by category.
func (r *PgBlogPostRepository) CountPublished(ctx context.Context, category string) (int64, error) {
	var count int64
	var err error
	if category != "" {
		err = r.pool.QueryRow(ctx,
			`SELECT count(*) FROM blog_posts WHERE published = true AND category = $1`,
			category,
		).Scan(&count)
	} else {
		err = r.pool.QueryRow(ctx,
			`SELECT count(*) FROM blog_posts WHERE published = true`,
		).Scan(&count)
	}
	return count, err
}

// GetPublishedBySlug returns the published post for slug, or nil when
// no published post has that slug. An unpublished post with a matching
// slug is indistinguishable from absence.
func (r *PgBlogPostRepository) GetPublishedBySlug(ctx context.Context, slug string) (*model.BlogPost, error) {
	p, err := scanBlogPost(r.pool.QueryRow(ctx,
		`SELECT `+blogPostColumns+`
		 FROM blog_posts
		 WHERE slug = $1 AND published = true`,
		slug,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}
