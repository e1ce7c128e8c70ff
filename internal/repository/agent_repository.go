package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/habitara-dev/habitara-api/internal/models"
)

const agentColumns = `id, tenant_id, profile_id, display_name, license_number, bio, active, created_at, updated_at`

// AgentRepository provides database access for public agent cards.
type AgentRepository struct {
	db *sqlx.DB
}

// NewAgentRepository creates a new instance of AgentRepository.
func NewAgentRepository(db *sqlx.DB) *AgentRepository {
	return &AgentRepository{db: db}
}

// SetActive writes the explicit active flag and returns the updated record.
func (r *AgentRepository) SetActive(ctx context.Context, tenantID, id string, active bool) (*models.Agent, error) {
	query := fmt.Sprintf(`UPDATE agents SET active = $3, updated_at = $4 WHERE tenant_id = $1 AND id = $2 RETURNING %s`, agentColumns)
	var agent models.Agent
	if err := r.db.GetContext(ctx, &agent, query, tenantID, id, active, time.Now().UTC()); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("set agent active: %w", err)
	}
	return &agent, nil
}

// FindByProfileID returns the agent card owned by a profile, if any.
func (r *AgentRepository) FindByProfileID(ctx context.Context, tenantID, profileID string) (*models.Agent, error) {
	query := fmt.Sprintf(`SELECT %s FROM agents WHERE tenant_id = $1 AND profile_id = $2 LIMIT 1`, agentColumns)
	var agent models.Agent
	if err := r.db.GetContext(ctx, &agent, query, tenantID, profileID); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find agent by profile: %w", err)
	}
	return &agent, nil
}
