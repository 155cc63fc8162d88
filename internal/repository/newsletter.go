package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/x67digital/site-api/internal/model"
)

// SubscriberRepository defines the persistence interface for newsletter
// subscribers. FindByEmail reports absence as (nil, nil).
type SubscriberRepository interface {
	Insert(ctx context.Context, sub *model.Subscriber) error
	FindByEmail(ctx context.Context, email string) (*model.Subscriber, error)
	Reactivate(ctx context.Context, email string) (bool, error)
	ListActive(ctx context.Context, limit int) ([]*model.Subscriber, error)
	CountActive(ctx context.Context) (int64, error)
}

// PgSubscriberRepository is the PostgreSQL implementation of
// SubscriberRepository. The newsletter_subscribers_email_key constraint
// makes at-most-one-record-per-email a store-enforced invariant, so a
// concurrent duplicate subscribe loses with a unique violation instead
// of creating a second row.
type PgSubscriberRepository struct {
	pool *pgxpool.Pool
}

var _ SubscriberRepository = (*PgSubscriberRepository)(nil)

// NewPgSubscriberRepository creates a PgSubscriberRepository backed by pool.
func NewPgSubscriberRepository(pool *pgxpool.Pool) *PgSubscriberRepository {
	return &PgSubscriberRepository{pool: pool}
}

// Insert persists a fully built subscriber record.
func (r *PgSubscriberRepository) Insert(ctx context.Context, sub *model.Subscriber) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO newsletter_subscribers (id, email, name, is_active, subscribed_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		sub.ID, sub.Email, sub.Name, sub.IsActive, sub.SubscribedAt,
	)
	return err
}

// FindByEmail returns the subscriber for email, or nil when none exists.
func (r *PgSubscriberRepository) FindByEmail(ctx context.Context, email string) (*model.Subscriber, error) {
	var s model.Subscriber
	err := r.pool.QueryRow(ctx,
		`SELECT id, email, name, is_active, subscribed_at
		 FROM newsletter_subscribers
		 WHERE email = $1`,
		email,
	).Scan(&s.ID, &s.Email, &s.Name, &s.IsActive, &s.SubscribedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Reactivate flips is_active back to true for email. The bool reports
// whether a record was actually updated.
func (r *PgSubscriberRepository) Reactivate(ctx context.Context, email string) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE newsletter_subscribers SET is_active = true WHERE email = $1`,
		email,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// ListActive returns active subscribers newest-first.
func (r *PgSubscriberRepository) ListActive(ctx context.Context, limit int) ([]*model.Subscriber, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, email, name, is_active, subscribed_at
		 FROM newsletter_subscribers
		 WHERE is_active = true
		 ORDER BY subscribed_at DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []*model.Subscriber
	for rows.Next() {
		var s model.Subscriber
		if err := rows.Scan(&s.ID, &s.Email, &s.Name, &s.IsActive, &s.SubscribedAt); err != nil {
			return nil, err
		}
		subs = append(subs, &s)
	}
	return subs, rows.Err()
}

// CountActive returns the number of active subscribers.
func (r *PgSubscriberRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx,
		`SELECT count(*) FROM newsletter_subscribers WHERE is_active = true`,
	).Scan(&count)
	return count, err
}
