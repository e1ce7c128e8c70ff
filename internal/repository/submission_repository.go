package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/habitara-dev/habitara-api/internal/models"
)

const submissionColumns = `id, tenant_id, property_id, first_name, last_name, email, phone, message, status, notes, agent_id, created_at, updated_at`

// SubmissionRepository provides database access for captured leads.
type SubmissionRepository struct {
	db *sqlx.DB
}

// NewSubmissionRepository creates a new instance of SubmissionRepository.
func NewSubmissionRepository(db *sqlx.DB) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

// Create inserts a new lead captured from the public contact form.
func (r *SubmissionRepository) Create(ctx context.Context, submission *models.Submission) error {
	if submission.ID == "" {
		submission.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if submission.CreatedAt.IsZero() {
		submission.CreatedAt = now
	}
	submission.UpdatedAt = now

	const query = `INSERT INTO submissions (id, tenant_id, property_id, first_name, last_name, email, phone, message, status, notes, agent_id, created_at, updated_at) VALUES (:id, :tenant_id, :property_id, :first_name, :last_name, :email, :phone, :message, :status, :notes, :agent_id, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, submission); err != nil {
		return fmt.Errorf("create submission: %w", err)
	}
	return nil
}

// UpdateStatus transitions the lead lifecycle, optionally recording the
// caller's notes and claiming the lead for the acting agent.
func (r *SubmissionRepository) UpdateStatus(ctx context.Context, tenantID, id string, status models.SubmissionStatus, notes *string, agentID *string) (*models.Submission, error) {
	query := fmt.Sprintf(`UPDATE submissions SET status = $3, notes = COALESCE($4, notes), agent_id = COALESCE($5, agent_id), updated_at = $6 WHERE tenant_id = $1 AND id = $2 RETURNING %s`, submissionColumns)
	var submission models.Submission
	if err := r.db.GetContext(ctx, &submission, query, tenantID, id, status, notes, agentID, time.Now().UTC()); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("update submission status: %w", err)
	}
	return &submission, nil
}

// List returns leads for a tenant, newest first, honoring the filter.
func (r *SubmissionRepository) List(ctx context.Context, tenantID string, filter models.SubmissionFilter) ([]models.Submission, error) {
	conditions := []string{"tenant_id = $1"}
	args := []interface{}{tenantID}

	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)+1))
		args = append(args, *filter.Status)
	}
	if filter.From != nil {
		conditions = append(conditions, fmt.Sprintf("created_at >= $%d", len(args)+1))
		args = append(args, *filter.From)
	}
	if filter.To != nil {
		conditions = append(conditions, fmt.Sprintf("created_at < $%d", len(args)+1))
		args = append(args, *filter.To)
	}

	query := fmt.Sprintf("SELECT %s FROM submissions WHERE %s ORDER BY created_at DESC", submissionColumns, strings.Join(conditions, " AND "))

	var submissions []models.Submission
	if err := r.db.SelectContext(ctx, &submissions, query, args...); err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	return submissions, nil
}
