package models

import "time"

// Project is a tenant-scoped development project (a group of listings
// marketed together).
type Project struct {
	ID          string    `db:"id" json:"id"`
	TenantID    string    `db:"tenant_id" json:"tenant_id"`
	Name        string    `db:"name" json:"name"`
	Slug        string    `db:"slug" json:"slug"`
	Description string    `db:"description" json:"description"`
	City        string    `db:"city" json:"city"`
	Active      bool      `db:"active" json:"active"`
	Featured    bool      `db:"featured" json:"featured"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}
