package models

import "time"

// PropertyStatus is the moderation lifecycle of a listing.
type PropertyStatus string

const (
	PropertyStatusPending  PropertyStatus = "pending"
	PropertyStatusApproved PropertyStatus = "approved"
	PropertyStatusRejected PropertyStatus = "rejected"
)

// Property is a tenant-scoped real estate listing.
type Property struct {
	ID              string         `db:"id" json:"id"`
	TenantID        string         `db:"tenant_id" json:"tenant_id"`
	AgentID         *string        `db:"agent_id" json:"agent_id,omitempty"`
	Title           string         `db:"title" json:"title"`
	Slug            string         `db:"slug" json:"slug"`
	Description     string         `db:"description" json:"description"`
	Price           int64          `db:"price" json:"price"`
	Currency        string         `db:"currency" json:"currency"`
	Address         string         `db:"address" json:"address"`
	City            string         `db:"city" json:"city"`
	Status          PropertyStatus `db:"status" json:"status"`
	RejectionReason *string        `db:"rejection_reason" json:"rejection_reason,omitempty"`
	Active          bool           `db:"active" json:"active"`
	Featured        bool           `db:"featured" json:"featured"`
	CreatedAt       time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at" json:"updated_at"`
}

// PropertyEmbed is the payload returned to a signed public embed page.
type PropertyEmbed struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Price       int64     `json:"price"`
	Currency    string    `json:"currency"`
	City        string    `json:"city"`
	Featured    bool      `json:"featured"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// EmbedURL is the admin-facing result of generating a signed embed link.
type EmbedURL struct {
	URL       string    `json:"url"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
