package models

import "time"

// AuditAction constants represent admin actions to be logged.
const (
	AuditActionLogin            = "LOGIN"
	AuditActionPropertyApprove  = "PROPERTY_APPROVE"
	AuditActionPropertyReject   = "PROPERTY_REJECT"
	AuditActionPropertyToggle   = "PROPERTY_TOGGLE"
	AuditActionProjectToggle    = "PROJECT_TOGGLE"
	AuditActionProjectDelete    = "PROJECT_DELETE"
	AuditActionBlogToggle       = "BLOG_TOGGLE"
	AuditActionLeadStatusChange = "LEAD_STATUS_CHANGE"
	AuditActionUserRoleChange   = "USER_ROLE_CHANGE"
	AuditActionUserToggle       = "USER_TOGGLE"
	AuditActionAgentToggle      = "AGENT_TOGGLE"
	AuditActionProfileUpdate    = "PROFILE_UPDATE"
)

// AuditLog represents an audit trail record.
type AuditLog struct {
	ID         string    `db:"id" json:"id"`
	TenantID   string    `db:"tenant_id" json:"tenant_id"`
	ProfileID  *string   `db:"profile_id" json:"profile_id,omitempty"`
	Action     string    `db:"action" json:"action"`
	Resource   string    `db:"resource" json:"resource"`
	ResourceID *string   `db:"resource_id" json:"resource_id,omitempty"`
	OldValues  []byte    `db:"old_values" json:"old_values,omitempty"`
	NewValues  []byte    `db:"new_values" json:"new_values,omitempty"`
	IPAddress  string    `db:"ip_address" json:"ip_address"`
	UserAgent  string    `db:"user_agent" json:"user_agent"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

// RequestMeta carries caller network metadata into audit records.
type RequestMeta struct {
	IP        string
	UserAgent string
}
