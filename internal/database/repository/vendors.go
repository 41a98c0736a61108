package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

// VendorRepo handles vendors.
type VendorRepo struct {
	db *sql.DB
}

func NewVendorRepo(db *sql.DB) *VendorRepo {
	return &VendorRepo{db: db}
}

// Upsert inserts or updates a vendor, returning the assigned ID.
func (r *VendorRepo) Upsert(ctx context.Context, v Vendor) (string, error) {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO vendors(id, tenant_id, name, category, status, contact, created_at, updated_at)
	VALUES (?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
	ON CONFLICT(id) DO UPDATE SET
	 name=excluded.name,
	 category=excluded.category,
	 status=excluded.status,
	 contact=excluded.contact,
	 updated_at=CURRENT_TIMESTAMP;
	`, v.ID, v.TenantID, v.Name, v.Category, v.Status, v.Contact)
	return v.ID, err
}

// List returns the tenant's vendors ordered by name.
func (r *VendorRepo) List(ctx context.Context, tenantID string) ([]Vendor, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, tenant_id, name, category, status, contact, created_at, updated_at
	FROM vendors WHERE tenant_id=? ORDER BY name`, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Vendor
	for rows.Next() {
		var v Vendor
		if err := rows.Scan(&v.ID, &v.TenantID, &v.Name, &v.Category, &v.Status, &v.Contact, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// CountByCategory returns vendor counts grouped by category.
func (r *VendorRepo) CountByCategory(ctx context.Context, tenantID string) ([]StatusCount, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT category, COUNT(1) FROM vendors WHERE tenant_id=?
	GROUP BY category ORDER BY COUNT(1) DESC, category`, tenantID)
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
