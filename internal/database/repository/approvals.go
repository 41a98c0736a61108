package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

// ApprovalRepo handles approval requests.
type ApprovalRepo struct {
	db *sql.DB
}

func NewApprovalRepo(db *sql.DB) *ApprovalRepo {
	return &ApprovalRepo{db: db}
}

// Create inserts a new approval request in stage "pending" and returns
// its ID.
func (r *ApprovalRepo) Create(ctx context.Context, a Approval) (string, error) {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.Stage == "" {
		a.Stage = "pending"
	}
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO approvals(id, tenant_id, subject_kind, subject_id, title, stage, requested_by, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)`,
		a.ID, a.TenantID, a.SubjectKind, a.SubjectID, a.Title, a.Stage, a.RequestedBy)
	return a.ID, err
}

// List returns the tenant's approvals, newest first.
func (r *ApprovalRepo) List(ctx context.Context, tenantID string) ([]Approval, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, tenant_id, subject_kind, subject_id, title, stage, requested_by, decided_at, created_at
	FROM approvals WHERE tenant_id=? ORDER BY created_at DESC, id`, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Approval
	for rows.Next() {
		var a Approval
		if err := rows.Scan(&a.ID, &a.TenantID, &a.SubjectKind, &a.SubjectID, &a.Title, &a.Stage, &a.RequestedBy, &a.DecidedAt, &a.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// CountPending returns the number of approvals still awaiting a
// decision.
func (r *ApprovalRepo) CountPending(ctx context.Context, tenantID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `
	SELECT COUNT(1) FROM approvals WHERE tenant_id=? AND decided_at IS NULL`, tenantID).Scan(&n)
	return n, err
}

// Decide moves an approval to its final stage and stamps the decision
// time. Deciding an unknown approval is an error.
func (r *ApprovalRepo) Decide(ctx context.Context, tenantID, id, stage string) error {
	res, err := r.db.ExecContext(ctx, `
	UPDATE approvals SET stage=?, decided_at=CURRENT_TIMESTAMP
	WHERE tenant_id=? AND id=? AND decided_at IS NULL`, stage, tenantID, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("approval %s: not found or already decided", id)
	}
	return nil
}
