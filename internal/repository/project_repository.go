package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/habitara-dev/habitara-api/internal/models"
)

const projectColumns = `id, tenant_id, name, slug, description, city, active, featured, created_at, updated_at`

// ProjectRepository provides database access for development projects.
type ProjectRepository struct {
	db *sqlx.DB
}

// NewProjectRepository creates a new instance of ProjectRepository.
func NewProjectRepository(db *sqlx.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// ToggleActive negates the active flag at the storage layer and returns the
// updated record. The negation happens in a single statement so concurrent
// toggles resolve to the row's native atomicity.
func (r *ProjectRepository) ToggleActive(ctx context.Context, tenantID, id string) (*models.Project, error) {
	query := fmt.Sprintf(`UPDATE projects SET active = NOT active, updated_at = $3 WHERE tenant_id = $1 AND id = $2 RETURNING %s`, projectColumns)
	var project models.Project
	if err := r.db.GetContext(ctx, &project, query, tenantID, id, time.Now().UTC()); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("toggle project active: %w", err)
	}
	return &project, nil
}

// ToggleFeatured negates the featured flag and returns the updated record.
func (r *ProjectRepository) ToggleFeatured(ctx context.Context, tenantID, id string) (*models.Project, error) {
	query := fmt.Sprintf(`UPDATE projects SET featured = NOT featured, updated_at = $3 WHERE tenant_id = $1 AND id = $2 RETURNING %s`, projectColumns)
	var project models.Project
	if err := r.db.GetContext(ctx, &project, query, tenantID, id, time.Now().UTC()); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("toggle project featured: %w", err)
	}
	return &project, nil
}

// Delete removes a project within a tenant. sql.ErrNoRows is returned when
// the target does not exist in the caller's tenant.
func (r *ProjectRepository) Delete(ctx context.Context, tenantID, id string) error {
	const query = `DELETE FROM projects WHERE tenant_id = $1 AND id = $2`
	result, err := r.db.ExecContext(ctx, query, tenantID, id)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete project rows affected: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
