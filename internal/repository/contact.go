package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/x67digital/site-api/internal/model"
)

// ContactRepository defines the persistence interface for contacts.
type ContactRepository interface {
	Insert(ctx context.Context, contact *model.Contact) error
	List(ctx context.Context, limit, skip int) ([]*model.Contact, error)
	Count(ctx context.Context) (int64, error)
}

// PgContactRepository is the PostgreSQL implementation of ContactRepository.
type PgContactRepository struct {
	pool *pgxpool.Pool
}

var _ ContactRepository = (*PgContactRepository)(nil)

// NewPgContactRepository creates a PgContactRepository backed by pool.
func NewPgContactRepository(pool *pgxpool.Pool) *PgContactRepository {
	return &PgContactRepository{pool: pool}
}

// Insert persists a fully built contact record.
func (r *PgContactRepository) Insert(ctx context.Context, contact *model.Contact) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO contacts (id, name, email, phone, message, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		contact.ID, contact.Name, contact.Email, contact.Phone,
		contact.Message, contact.Status, contact.CreatedAt,
	)
	return err
}

// List returns contacts newest-first with skip/limit pagination.
func (r *PgContactRepository) List(ctx context.Context, limit, skip int) ([]*model.Contact, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, email, phone, message, status, created_at
		 FROM contacts
		 ORDER BY created_at DESC
		 LIMIT $1 OFFSET $2`,
		limit, skip,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contacts []*model.Contact
	for rows.Next() {
		var c model.Contact
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Message, &c.Status, &c.CreatedAt); err != nil {
			return nil, err
		}
		contacts = append(contacts, &c)
	}
	return contacts, rows.Err()
}

// Count returns the total number of contacts.
func (r *PgContactRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM contacts`).Scan(&count)
	return count, err
}
