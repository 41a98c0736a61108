package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

// EnsureTenant returns the tenant ID to operate on. When id is empty
// and no tenant exists yet, a demo tenant with representative
// governance data is created so a fresh install has something to show.
func EnsureTenant(ctx context.Context, db *sql.DB, id string) (string, error) {
	if id != "" {
		var exists int
		err := db.QueryRowContext(ctx, `SELECT COUNT(1) FROM tenants WHERE id=?`, id).Scan(&exists)
		if err != nil {
			return "", err
		}
		if exists == 0 {
			_, err = db.ExecContext(ctx, `INSERT INTO tenants(id, name) VALUES (?, ?)`, id, id)
			if err != nil {
				return "", err
			}
		}
		return id, nil
	}

	var first string
	err := db.QueryRowContext(ctx, `SELECT id FROM tenants ORDER BY created_at LIMIT 1`).Scan(&first)
	if err == nil {
		return first, nil
	}
	if err != sql.ErrNoRows {
		return "", err
	}
	return seedDemoTenant(ctx, db)
}

func seedDemoTenant(ctx context.Context, db *sql.DB) (string, error) {
	tenantID := uuid.NewString()
	err := WithTx(ctx, db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `INSERT INTO tenants(id, name) VALUES (?, 'demo')`, tenantID); err != nil {
			return fmt.Errorf("insert tenant: %w", err)
		}

		vendors := []struct{ name, category, status, contact string }{
			{"Anthied Labs", "foundation-model", "active", "partners@anthied.example"},
			{"Vectorly", "vector-store", "active", "sales@vectorly.example"},
			{"Promptwire", "orchestration", "under-review", "hello@promptwire.example"},
		}
		vendorIDs := make([]string, len(vendors))
		for i, v := range vendors {
			vendorIDs[i] = uuid.NewString()
			if _, err := tx.ExecContext(ctx, `
			INSERT INTO vendors(id, tenant_id, name, category, status, contact)
			VALUES (?, ?, ?, ?, ?, ?)`,
				vendorIDs[i], tenantID, v.name, v.category, v.status, v.contact); err != nil {
				return fmt.Errorf("insert vendor: %w", err)
			}
		}

		agents := []struct {
			name, risk, status, owner string
			vendor                    int
		}{
			{"support-triage-bot", "high", "approved", "cx-platform", 0},
			{"contract-summarizer", "medium", "approved", "legal-ops", 0},
			{"spend-anomaly-watch", "low", "pilot", "finance", 1},
			{"hr-screening-assist", "high", "suspended", "people-team", 2},
			{"kb-answer-engine", "medium", "draft", "cx-platform", 1},
		}
		agentIDs := make([]string, len(agents))
		for i, a := range agents {
			agentIDs[i] = uuid.NewString()
			if _, err := tx.ExecContext(ctx, `
			INSERT INTO agents(id, tenant_id, vendor_id, name, risk_tier, status, owner)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
				agentIDs[i], tenantID, vendorIDs[a.vendor], a.name, a.risk, a.status, a.owner); err != nil {
				return fmt.Errorf("insert agent: %w", err)
			}
		}

		approvals := []struct{ kind, subject, title, stage, by string }{
			{"agent", agentIDs[3], "Reinstate hr-screening-assist", "pending", "people-team"},
			{"agent", agentIDs[4], "Production rollout: kb-answer-engine", "pending", "cx-platform"},
			{"vendor", vendorIDs[2], "Onboard Promptwire", "security-review", "procurement"},
		}
		for _, ap := range approvals {
			if _, err := tx.ExecContext(ctx, `
			INSERT INTO approvals(id, tenant_id, subject_kind, subject_id, title, stage, requested_by)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
				uuid.NewString(), tenantID, ap.kind, ap.subject, ap.title, ap.stage, ap.by); err != nil {
				return fmt.Errorf("insert approval: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return tenantID, nil
}
