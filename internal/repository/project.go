package repository

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/x67digital/site-api/internal/model"
)

// ProjectFilter narrows List results. Nil/empty fields match everything.
type ProjectFilter struct {
	Featured *bool
	Category string
}

// ProjectRepository defines the read-only persistence interface for
// portfolio projects. Count honors the same filter as List so paged
// results and their totals agree. GetBySlug reports absence as
// (nil, nil).
type ProjectRepository interface {
	List(ctx context.Context, filter ProjectFilter, limit int) ([]*model.Project, error)
	Count(ctx context.Context, filter ProjectFilter) (int64, error)
	GetBySlug(ctx context.Context, slug string) (*model.Project, error)
}

// PgProjectRepository is the PostgreSQL implementation of ProjectRepository.
type PgProjectRepository struct {
	pool *pgxpool.Pool
}

var _ ProjectRepository = (*PgProjectRepository)(nil)

// NewPgProjectRepository creates a PgProjectRepository backed by pool.
func NewPgProjectRepository(pool *pgxpool.Pool) *PgProjectRepository {
	return &PgProjectRepository{pool: pool}
}

const projectColumns = `id, title, slug, description, client, category, tags,
	featured_image, images, url, featured, completed_at, created_at`

func scanProject(row pgx.Row) (*model.Project, error) {
	var p model.Project
	err := row.Scan(&p.ID, &p.Title, &p.Slug, &p.Description, &p.Client,
		&p.Category, &p.Tags, &p.FeaturedImage, &p.Images, &p.URL,
		&p.Featured, &p.CompletedAt, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// buildProjectWhere renders the WHERE clause and positional arguments
// for a ProjectFilter. An empty filter yields an empty clause.
func buildProjectWhere(filter ProjectFilter) (string, []any) {
	var conditions []string
	var args []any

	if filter.Featured != nil {
		args = append(args, *filter.Featured)
		conditions = append(conditions, "featured = $"+itoa(len(args)))
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		conditions = append(conditions, "category = $"+itoa(len(args)))
	}

	if len(conditions) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}

// List returns projects most-recently-completed first, narrowed by the
// optional featured and category filters.
func (r *PgProjectRepository) List(ctx context.Context, filter ProjectFilter, limit int) ([]*model.Project, error) {
	where, args := buildProjectWhere(filter)

	args = append(args, limit)
	query := `SELECT ` + projectColumns + `
		 FROM projects ` + where + `
		 ORDER BY completed_at DESC NULLS LAST
		 LIMIT $` + itoa(len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []*model.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// Count returns the number of projects matching the filter.
func (r *PgProjectRepository) Count(ctx context.Context, filter ProjectFilter) (int64, error) {
	where, args := buildProjectWhere(filter)

	var count int64
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM projects `+where, args...).Scan(&count)
	return count, err
}

// GetBySlug returns the project for slug, or nil when none exists.
func (r *PgProjectRepository) GetBySlug(ctx context.Context, slug string) (*model.Project, error) {
	p, err := scanProject(r.pool.QueryRow(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE slug = $1`,
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

// itoa renders positional parameter indices.
func itoa(n int) string {
	return strconv.Itoa(n)
}
