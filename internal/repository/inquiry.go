package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/x67digital/site-api/internal/model"
)

// InquiryRepository defines the persistence interface for template
// inquiries.
type InquiryRepository interface {
	Insert(ctx context.Context, inquiry *model.Inquiry) error
	List(ctx context.Context, limit int) ([]*model.Inquiry, error)
	Count(ctx context.Context) (int64, error)
}

// PgInquiryRepository is the PostgreSQL implementation of InquiryRepository.
type PgInquiryRepository struct {
	pool *pgxpool.Pool
}

var _ InquiryRepository = (*PgInquiryRepository)(nil)

// NewPgInquiryRepository creates a PgInquiryRepository backed by pool.
func NewPgInquiryRepository(pool *pgxpool.Pool) *PgInquiryRepository {
	return &PgInquiryRepository{pool: pool}
}

// Insert persists a fully built inquiry record.
func (r *PgInquiryRepository) Insert(ctx context.Context, inquiry *model.Inquiry) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO inquiries
		 (id, name, email, phone, business_type, budget, functionality, template_id, additional_notes, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		inquiry.ID, inquiry.Name, inquiry.Email, inquiry.Phone,
		inquiry.BusinessType, inquiry.Budget, inquiry.Functionality,
		inquiry.TemplateID, inquiry.AdditionalNotes, inquiry.Status, inquiry.CreatedAt,
	)
	return err
}

// List returns inquiries newest-first.
func (r *PgInquiryRepository) List(ctx context.Context, limit int) ([]*model.Inquiry, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, email, phone, business_type, budget, functionality,
		        template_id, additional_notes, status, created_at
		 FROM inquiries
		 ORDER BY created_at DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var inquiries []*model.Inquiry
	for rows.Next() {
		var q model.Inquiry
		if err := rows.Scan(&q.ID, &q.Name, &q.Email, &q.Phone, &q.BusinessType,
			&q.Budget, &q.Functionality, &q.TemplateID, &q.AdditionalNotes,
			&q.Status, &q.CreatedAt); err != nil {
			return nil, err
		}
		inquiries = append(inquiries, &q)
	}
	return inquiries, rows.Err()
}

// Count returns the total number of inquiries.
func (r *PgInquiryRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM inquiries`).Scan(&count)
	return count, err
}
