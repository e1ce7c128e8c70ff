package models

import "time"

// Role represents the available roles for the RBAC system.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAgent Role = "AGENT"
	RoleAdmin Role = "ADMIN"
)

// Role wire codes used by the admin role-change endpoint.
const (
	RoleCodeUser  = 1
	RoleCodeAgent = 2
	RoleCodeAdmin = 3
)

// RoleFromCode maps a numeric wire code to a role. The bool reports whether
// the code belongs to the allowed set.
func RoleFromCode(code int) (Role, bool) {
	switch code {
	case RoleCodeUser:
		return RoleUser, true
	case RoleCodeAgent:
		return RoleAgent, true
	case RoleCodeAdmin:
		return RoleAdmin, true
	default:
		return "", false
	}
}

// Profile is the resolved principal: identity, role and tenant association.
// Every mutation gateway reads it; only the dedicated role-change,
// active-toggle and profile-update gateways write it.
type Profile struct {
	ID           string     `db:"id" json:"id"`
	TenantID     string     `db:"tenant_id" json:"tenant_id"`
	Email        string     `db:"email" json:"email"`
	PasswordHash string     `db:"password_hash" json:"-"`
	FullName     string     `db:"full_name" json:"full_name"`
	Phone        string     `db:"phone" json:"phone"`
	Role         Role       `db:"role" json:"role"`
	Active       bool       `db:"active" json:"active"`
	LastLogin    *time.Time `db:"last_login" json:"last_login,omitempty"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`
}
