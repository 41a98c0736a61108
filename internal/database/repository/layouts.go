package repository

import (
	"context"
	"database/sql"

	"go.uber.org/zap"

	"github.com/vakaflow-ai/vakaflow/internal/layout"
)

// LayoutRepo persists dashboard layout blobs per (tenant, storage key).
type LayoutRepo struct {
	db *sql.DB
}

func NewLayoutRepo(db *sql.DB) *LayoutRepo {
	return &LayoutRepo{db: db}
}

// Get returns the stored layout blob for the tenant's storage key.
func (r *LayoutRepo) Get(ctx context.Context, tenantID, key string) (string, bool, error) {
	var blob string
	err := r.db.QueryRowContext(ctx, `
	SELECT layout FROM dashboard_layouts WHERE tenant_id=? AND storage_key=?`,
		tenantID, key).Scan(&blob)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return blob, true, nil
}

// Save writes the layout blob, replacing any previous value.
// Last write wins; there is no cross-session coordination.
func (r *LayoutRepo) Save(ctx context.Context, tenantID, key, blob string) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO dashboard_layouts(tenant_id, storage_key, layout, updated_at)
	VALUES (?, ?, ?, CURRENT_TIMESTAMP)
	ON CONFLICT(tenant_id, storage_key) DO UPDATE SET
	 layout=excluded.layout,
	 updated_at=CURRENT_TIMESTAMP;
	`, tenantID, key, blob)
	return err
}

// ForTenant binds the repo to one tenant as a layout.Store. Read
// errors degrade to "absent" and are logged, so a broken table cannot
// take the dashboard down with it.
func (r *LayoutRepo) ForTenant(tenantID string, logger *zap.Logger) layout.Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &tenantStore{repo: r, tenantID: tenantID, logger: logger}
}

type tenantStore struct {
	repo     *LayoutRepo
	tenantID string
	logger   *zap.Logger
}

func (s *tenantStore) Get(key string) (string, bool) {
	blob, ok, err := s.repo.Get(context.Background(), s.tenantID, key)
	if err != nil {
		s.logger.Warn("read stored layout",
			zap.String("tenant", s.tenantID), zap.String("key", key), zap.Error(err))
		return "", false
	}
	return blob, ok
}

func (s *tenantStore) Set(key, value string) error {
	return s.repo.Save(context.Background(), s.tenantID, key, value)
}
