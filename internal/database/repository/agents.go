package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

// AgentRepo handles agents.
type AgentRepo struct {
	db *sql.DB
}

func NewAgentRepo(db *sql.DB) *AgentRepo {
	return &AgentRepo{db: db}
}

// Upsert inserts or updates an agent. A missing ID gets a fresh UUID;
// the assigned ID is returned.
func (r *AgentRepo) Upsert(ctx context.Context, a Agent) (string, error) {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO agents(id, tenant_id, vendor_id, name, risk_tier, status, owner, created_at, updated_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
	ON CONFLICT(id) DO UPDATE SET
	 vendor_id=excluded.vendor_id,
	 name=excluded.name,
	 risk_tier=excluded.risk_tier,
	 status=excluded.status,
	 owner=excluded.owner,
	 updated_at=CURRENT_TIMESTAMP;
	`, a.ID, a.TenantID, a.VendorID, a.Name, a.RiskTier, a.Status, a.Owner)
	return a.ID, err
}

// List returns the tenant's agents ordered by name.
func (r *AgentRepo) List(ctx context.Context, tenantID string) ([]Agent, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, tenant_id, vendor_id, name, risk_tier, status, owner, created_at, updated_at
	FROM agents WHERE tenant_id=? ORDER BY name`, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Agent
	for rows.Next() {
		var a Agent
		if err := rows.Scan(&a.ID, &a.TenantID, &a.VendorID, &a.Name, &a.RiskTier, &a.Status, &a.Owner, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// CountByStatus returns agent counts grouped by status, most common
// first, for the dashboard summary.
func (r *AgentRepo) CountByStatus(ctx context.Context, tenantID string) ([]StatusCount, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT status, COUNT(1) FROM agents WHERE tenant_id=?
	GROUP BY status ORDER BY COUNT(1) DESC, status`, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []StatusCount
	for rows.Next() {
		var c StatusCount
		if err := rows.Scan(&c.Value, &c.Count); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Delete removes an agent within the tenant.
func (r *AgentRepo) Delete(ctx context.Context, tenantID, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM agents WHERE tenant_id=? AND id=?`, tenantID, id)
	return err
}
