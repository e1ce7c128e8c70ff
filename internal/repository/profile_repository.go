package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/habitara-dev/habitara-api/internal/models"
)

const profileColumns = `id, tenant_id, email, password_hash, full_name, phone, role, active, last_login, created_at, updated_at`

// ProfileRepository provides database access for profiles (principals),
// refresh tokens and the audit trail.
type ProfileRepository struct {
	db *sqlx.DB
}

// NewProfileRepository creates a new instance of ProfileRepository.
func NewProfileRepository(db *sqlx.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// FindByEmail returns a profile by email address. Email is unique across
// tenants, so login does not need a tenant hint.
func (r *ProfileRepository) FindByEmail(ctx context.Context, email string) (*models.Profile, error) {
	query := fmt.Sprintf(`SELECT %s FROM profiles WHERE email = $1 LIMIT 1`, profileColumns)
	var profile models.Profile
	if err := r.db.GetContext(ctx, &profile, query, email); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find profile by email: %w", err)
	}
	return &profile, nil
}

// FindByID returns a profile by identifier within a tenant.
func (r *ProfileRepository) FindByID(ctx context.Context, tenantID, id string) (*models.Profile, error) {
	query := fmt.Sprintf(`SELECT %s FROM profiles WHERE tenant_id = $1 AND id = $2 LIMIT 1`, profileColumns)
	var profile models.Profile
	if err := r.db.GetContext(ctx, &profile, query, tenantID, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find profile by id: %w", err)
	}
	return &profile, nil
}

// FindByIDUnscoped returns a profile by identifier without a tenant filter.
// Only the auth flows use it; gateways always go through FindByID.
func (r *ProfileRepository) FindByIDUnscoped(ctx context.Context, id string) (*models.Profile, error) {
	query := fmt.Sprintf(`SELECT %s FROM profiles WHERE id = $1 LIMIT 1`, profileColumns)
	var profile models.Profile
	if err := r.db.GetContext(ctx, &profile, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find profile by id: %w", err)
	}
	return &profile, nil
}

// UpdateRole changes a profile's role and returns the updated record.
func (r *ProfileRepository) UpdateRole(ctx context.Context, tenantID, id string, role models.Role) (*models.Profile, error) {
	query := fmt.Sprintf(`UPDATE profiles SET role = $3, updated_at = $4 WHERE tenant_id = $1 AND id = $2 RETURNING %s`, profileColumns)
	var profile models.Profile
	if err := r.db.GetContext(ctx, &profile, query, tenantID, id, role, time.Now().UTC()); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("update profile role: %w", err)
	}
	return &profile, nil
}

// SetActive writes the explicit active flag and returns the updated record.
func (r *ProfileRepository) SetActive(ctx context.Context, tenantID, id string, active bool) (*models.Profile, error) {
	query := fmt.Sprintf(`UPDATE profiles SET active = $3, updated_at = $4 WHERE tenant_id = $1 AND id = $2 RETURNING %s`, profileColumns)
	var profile models.Profile
	if err := r.db.GetContext(ctx, &profile, query, tenantID, id, active, time.Now().UTC()); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("set profile active: %w", err)
	}
	return &profile, nil
}

// UpdateContact updates the caller's own display fields.
func (r *ProfileRepository) UpdateContact(ctx context.Context, tenantID, id, fullName, phone string) (*models.Profile, error) {
	query := fmt.Sprintf(`UPDATE profiles SET full_name = $3, phone = $4, updated_at = $5 WHERE tenant_id = $1 AND id = $2 RETURNING %s`, profileColumns)
	var profile models.Profile
	if err := r.db.GetContext(ctx, &profile, query, tenantID, id, fullName, phone, time.Now().UTC()); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("update profile contact: %w", err)
	}
	return &profile, nil
}

// UpdateLastLogin updates the last_login timestamp for a profile.
func (r *ProfileRepository) UpdateLastLogin(ctx context.Context, id string, ts time.Time) error {
	const query = `UPDATE profiles SET last_login = $2, updated_at = $3 WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id, ts, ts); err != nil {
		return fmt.Errorf("update last login: %w", err)
	}
	return nil
}

// CreateRefreshToken persists a refresh token entry.
func (r *ProfileRepository) CreateRefreshToken(ctx context.Context, token *models.RefreshToken) error {
	if token.ID == "" {
		token.ID = uuid.NewString()
	}
	if token.CreatedAt.IsZero() {
		token.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO refresh_tokens (id, profile_id, token, expires_at, created_at, revoked, revoked_at, ip_address, user_agent) VALUES (:id, :profile_id, :token, :expires_at, :created_at, :revoked, :revoked_at, :ip_address, :user_agent)`
	if _, err := r.db.NamedExecContext(ctx, query, token); err != nil {
		return fmt.Errorf("create refresh token: %w", err)
	}
	return nil
}

// FindRefreshToken returns a refresh token by token string.
func (r *ProfileRepository) FindRefreshToken(ctx context.Context, token string) (*models.RefreshToken, error) {
	const query = `SELECT id, profile_id, token, expires_at, created_at, revoked, revoked_at, ip_address, user_agent FROM refresh_tokens WHERE token = $1 LIMIT 1`
	var rt models.RefreshToken
	if err := r.db.GetContext(ctx, &rt, query, token); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find refresh token: %w", err)
	}
	return &rt, nil
}

// RevokeRefreshToken marks a token as revoked.
func (r *ProfileRepository) RevokeRefreshToken(ctx context.Context, id string, revokedAt time.Time) error {
	const query = `UPDATE refresh_tokens SET revoked = TRUE, revoked_at = $2 WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id, revokedAt); err != nil {
		return fmt.Errorf("revoke refresh token: %w", err)
	}
	return nil
}

// CreateAuditLog stores an audit log entry.
func (r *ProfileRepository) CreateAuditLog(ctx context.Context, log *models.AuditLog) error {
	if log.ID == "" {
		log.ID = uuid.NewString()
	}
	if log.CreatedAt.IsZero() {
		log.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO audit_logs (id, tenant_id, profile_id, action, resource, resource_id, old_values, new_values, ip_address, user_agent, created_at) VALUES (:id, :tenant_id, :profile_id, :action, :resource, :resource_id, :old_values, :new_values, :ip_address, :user_agent, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, log); err != nil {
		return fmt.Errorf("create audit log: %w", err)
	}
	return nil
}
