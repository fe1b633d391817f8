package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jobbuddy/backend/internal/domain"
)

type outreachRepo struct {
	db *pgxpool.Pool
}

func NewOutreachRepository(db *pgxpool.Pool) domain.OutreachRepository {
	return &outreachRepo{db: db}
}

func (r *outreachRepo) Create(ctx context.Context, email *domain.OutreachEmail) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO outreach_emails (
			user_id, company, contact_name, contact_email, job_title,
			subject, body, status, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING id, created_at
	`, email.UserID, email.Company, email.ContactName, email.ContactEmail,
		email.JobTitle, email.Subject, email.Body, string(email.Status),
	).Scan(&email.ID, &email.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert outreach email: %w", err)
	}
	return nil
}

func (r *outreachRepo) ListByUserID(ctx context.Context, userID string) ([]domain.OutreachEmail, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, company, contact_name, contact_email, job_title,
		       subject, body, status, created_at
		FROM outreach_emails
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list outreach emails: %w", err)
	}
	defer rows.Close()

	emails := []domain.OutreachEmail{}
	for rows.Next() {
		var e domain.OutreachEmail
		var status string
		if err := rows.Scan(
			&e.ID, &e.UserID, &e.Company, &e.ContactName, &e.ContactEmail,
			&e.JobTitle, &e.Subject, &e.Body, &status, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan outreach row: %w", err)
		}
		e.Status = domain.OutreachStatus(status)
		emails = append(emails, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating outreach rows: %w", err)
	}
	return emails, nil
}
