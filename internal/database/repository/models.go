// Package repository provides tenant-scoped access to the governance
// tables. Every query filters by tenant_id; a repository never returns
// another tenant's rows.
package repository

import "time"

// Agent represents a registered AI system.
type Agent struct {
	ID        string
	TenantID  string
	VendorID  *string
	Name      string
	RiskTier  string
	Status    string
	Owner     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Vendor represents a supplier row.
type Vendor struct {
	ID        string
	TenantID  string
	Name      string
	Category  string
	Status    string
	Contact   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Approval represents one approval request.
type Approval struct {
	ID          string
	TenantID    string
	SubjectKind string
	SubjectID   string
	Title       string
	Stage       string
	RequestedBy string
	DecidedAt   *time.Time
	CreatedAt   time.Time
}

// StatusCount pairs a dimension value with its row count, for the
// dashboard summary widgets.
type StatusCount struct {
	Value string
	Count int
}
