package models

import "time"

// Agent is the public-facing agent card attached to a profile. Toggling it
// inactive hides the agent from listings without touching the login account.
type Agent struct {
	ID            string    `db:"id" json:"id"`
	TenantID      string    `db:"tenant_id" json:"tenant_id"`
	ProfileID     string    `db:"profile_id" json:"profile_id"`
	DisplayName   string    `db:"display_name" json:"display_name"`
	LicenseNumber string    `db:"license_number" json:"license_number"`
	Bio           string    `db:"bio" json:"bio"`
	Active        bool      `db:"active" json:"active"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}
