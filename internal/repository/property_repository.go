package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/habitara-dev/habitara-api/internal/models"
)

const propertyColumns = `id, tenant_id, agent_id, title, slug, description, price, currency, address, city, status, rejection_reason, active, featured, created_at, updated_at`

// PropertyRepository provides database access for property listings.
type PropertyRepository struct {
	db *sqlx.DB
}

// NewPropertyRepository creates a new instance of PropertyRepository.
func NewPropertyRepository(db *sqlx.DB) *PropertyRepository {
	return &PropertyRepository{db: db}
}

// FindByID returns a property within a tenant.
func (r *PropertyRepository) FindByID(ctx context.Context, tenantID, id string) (*models.Property, error) {
	query := fmt.Sprintf(`SELECT %s FROM properties WHERE tenant_id = $1 AND id = $2 LIMIT 1`, propertyColumns)
	var property models.Property
	if err := r.db.GetContext(ctx, &property, query, tenantID, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find property by id: %w", err)
	}
	return &property, nil
}

// UpdateStatus transitions the moderation status and returns the updated
// record. The rejection reason is cleared on approval and set on rejection.
func (r *PropertyRepository) UpdateStatus(ctx context.Context, tenantID, id string, status models.PropertyStatus, reason *string) (*models.Property, error) {
	query := fmt.Sprintf(`UPDATE properties SET status = $3, rejection_reason = $4, updated_at = $5 WHERE tenant_id = $1 AND id = $2 RETURNING %s`, propertyColumns)
	var property models.Property
	if err := r.db.GetContext(ctx, &property, query, tenantID, id, status, reason, time.Now().UTC()); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("update property status: %w", err)
	}
	return &property, nil
}

// SetActive writes the explicit active flag and returns the updated record.
func (r *PropertyRepository) SetActive(ctx context.Context, tenantID, id string, active bool) (*models.Property, error) {
	query := fmt.Sprintf(`UPDATE properties SET active = $3, updated_at = $4 WHERE tenant_id = $1 AND id = $2 RETURNING %s`, propertyColumns)
	var property models.Property
	if err := r.db.GetContext(ctx, &property, query, tenantID, id, active, time.Now().UTC()); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("set property active: %w", err)
	}
	return &property, nil
}

// SetFeatured writes the explicit featured flag and returns the updated record.
func (r *PropertyRepository) SetFeatured(ctx context.Context, tenantID, id string, featured bool) (*models.Property, error) {
	query := fmt.Sprintf(`UPDATE properties SET featured = $3, updated_at = $4 WHERE tenant_id = $1 AND id = $2 RETURNING %s`, propertyColumns)
	var property models.Property
	if err := r.db.GetContext(ctx, &property, query, tenantID, id, featured, time.Now().UTC()); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("set property featured: %w", err)
	}
	return &property, nil
}

// CountPending returns the number of listings awaiting moderation.
func (r *PropertyRepository) CountPending(ctx context.Context, tenantID string) (int, error) {
	const query = `SELECT COUNT(*) FROM properties WHERE tenant_id = $1 AND status = 'pending'`
	var count int
	if err := r.db.GetContext(ctx, &count, query, tenantID); err != nil {
		return 0, fmt.Errorf("count pending properties: %w", err)
	}
	return count, nil
}

// FindEmbeddable returns a property only when it is publicly presentable:
// approved and active within its tenant.
func (r *PropertyRepository) FindEmbeddable(ctx context.Context, tenantID, id string) (*models.Property, error) {
	query := fmt.Sprintf(`SELECT %s FROM properties WHERE tenant_id = $1 AND id = $2 AND status = 'approved' AND active = TRUE LIMIT 1`, propertyColumns)
	var property models.Property
	if err := r.db.GetContext(ctx, &property, query, tenantID, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find embeddable property: %w", err)
	}
	return &property, nil
}
