package repository

import (
	"context"
	"database/sql"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vakaflow-ai/vakaflow/internal/database"
)

func testDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := database.RunMigrations(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func addTenant(t *testing.T, db *sql.DB, id string) {
	t.Helper()
	if _, err := db.Exec(`INSERT INTO tenants(id, name) VALUES (?, ?)`, id, id); err != nil {
		t.Fatalf("insert tenant %s: %v", id, err)
	}
}

func TestAgentUpsertAndList(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	addTenant(t, db, "t1")
	repo := NewAgentRepo(db)

	id, err := repo.Upsert(ctx, Agent{TenantID: "t1", Name: "zeta-bot", RiskTier: "low", Status: "draft", Owner: "ops"})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if id == "" {
		t.Fatal("upsert returned empty id")
	}
	if _, err := repo.Upsert(ctx, Agent{TenantID: "t1", Name: "alpha-bot", RiskTier: "high", Status: "approved", Owner: "cx"}); err != nil {
		t.Fatalf("upsert second: %v", err)
	}

	agents, err := repo.List(ctx, "t1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(agents) != 2 {
		t.Fatalf("len(agents) = %d, want 2", len(agents))
	}
	// Ordered by name.
	if agents[0].Name != "alpha-bot" || agents[1].Name != "zeta-bot" {
		t.Errorf("order = %s, %s; want alpha-bot, zeta-bot", agents[0].Name, agents[1].Name)
	}

	// Updating through the same ID replaces fields instead of adding a
	// row.
	if _, err := repo.Upsert(ctx, Agent{ID: id, TenantID: "t1", Name: "zeta-bot", RiskTier: "high", Status: "suspended", Owner: "ops"}); err != nil {
		t.Fatalf("upsert update: %v", err)
	}
	agents, err = repo.List(ctx, "t1")
	if err != nil {
		t.Fatalf("list after update: %v", err)
	}
	if len(agents) != 2 {
		t.Fatalf("len(agents) = %d after update, want 2", len(agents))
	}
	if agents[1].Status != "suspended" || agents[1].RiskTier != "high" {
		t.Errorf("updated agent = %s/%s, want suspended/high", agents[1].Status, agents[1].RiskTier)
	}
}

func TestAgentListIsTenantScoped(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	addTenant(t, db, "t1")
	addTenant(t, db, "t2")
	repo := NewAgentRepo(db)

	if _, err := repo.Upsert(ctx, Agent{TenantID: "t1", Name: "mine"}); err != nil {
		t.Fatalf("upsert t1: %v", err)
	}
	if _, err := repo.Upsert(ctx, Agent{TenantID: "t2", Name: "theirs"}); err != nil {
		t.Fatalf("upsert t2: %v", err)
	}

	agents, err := repo.List(ctx, "t1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(agents) != 1 || agents[0].Name != "mine" {
		t.Errorf("t1 sees %d agents, want only its own", len(agents))
	}
}

func TestAgentCountByStatus(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	addTenant(t, db, "t1")
	repo := NewAgentRepo(db)

	for _, status := range []string{"approved", "approved", "draft"} {
		if _, err := repo.Upsert(ctx, Agent{TenantID: "t1", Name: "a-" + status, Status: status}); err != nil {
			t.Fatalf("upsert: %v", err)
		}
	}
	counts, err := repo.CountByStatus(ctx, "t1")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if len(counts) != 2 {
		t.Fatalf("len(counts) = %d, want 2", len(counts))
	}
	if counts[0].Value != "approved" || counts[0].Count != 2 {
		t.Errorf("counts[0] = %+v, want approved/2", counts[0])
	}
}

func TestVendorUpsertAndCounts(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	addTenant(t, db, "t1")
	repo := NewVendorRepo(db)

	for _, cat := range []string{"vector-store", "vector-store", "orchestration"} {
		if _, err := repo.Upsert(ctx, Vendor{TenantID: "t1", Name: "v-" + cat, Category: cat, Status: "active"}); err != nil {
			t.Fatalf("upsert: %v", err)
		}
	}
	// Duplicate names collapse through the same ID path only; distinct
	// inserts stay distinct rows.
	vendors, err := repo.List(ctx, "t1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(vendors) != 3 {
		t.Fatalf("len(vendors) = %d, want 3", len(vendors))
	}

	counts, err := repo.CountByCategory(ctx, "t1")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if counts[0].Value != "vector-store" || counts[0].Count != 2 {
		t.Errorf("counts[0] = %+v, want vector-store/2", counts[0])
	}
}

func TestApprovalLifecycle(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	addTenant(t, db, "t1")
	repo := NewApprovalRepo(db)

	id, err := repo.Create(ctx, Approval{TenantID: "t1", SubjectKind: "agent", SubjectID: "a1", Title: "Go live", RequestedBy: "ops"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	list, err := repo.List(ctx, "t1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("len(list) = %d, want 1", len(list))
	}
	if list[0].Stage != "pending" {
		t.Errorf("stage = %q, want pending", list[0].Stage)
	}
	if list[0].DecidedAt != nil {
		t.Errorf("DecidedAt = %v, want nil", list[0].DecidedAt)
	}

	n, err := repo.CountPending(ctx, "t1")
	if err != nil {
		t.Fatalf("count pending: %v", err)
	}
	if n != 1 {
		t.Errorf("pending = %d, want 1", n)
	}

	if err := repo.Decide(ctx, "t1", id, "approved"); err != nil {
		t.Fatalf("decide: %v", err)
	}
	list, err = repo.List(ctx, "t1")
	if err != nil {
		t.Fatalf("list after decide: %v", err)
	}
	if list[0].Stage != "approved" || list[0].DecidedAt == nil {
		t.Errorf("after decide: stage=%q decided=%v", list[0].Stage, list[0].DecidedAt)
	}

	n, err = repo.CountPending(ctx, "t1")
	if err != nil {
		t.Fatalf("count pending: %v", err)
	}
	if n != 0 {
		t.Errorf("pending = %d after decide, want 0", n)
	}

	// Deciding twice, or deciding a made-up ID, is an error.
	if err := repo.Decide(ctx, "t1", id, "rejected"); err == nil {
		t.Error("second decide succeeded, want error")
	}
	err = repo.Decide(ctx, "t1", "nope", "approved")
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("decide unknown = %v, want not-found error", err)
	}
}

func TestLayoutRepoRoundTrip(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	addTenant(t, db, "t1")
	repo := NewLayoutRepo(db)

	if _, ok, err := repo.Get(ctx, "t1", "dashboard"); err != nil || ok {
		t.Fatalf("empty get = ok=%v err=%v, want absent", ok, err)
	}

	if err := repo.Save(ctx, "t1", "dashboard", `[{"i":"w0","x":0,"y":0,"w":6,"h":4}]`); err != nil {
		t.Fatalf("save: %v", err)
	}
	blob, ok, err := repo.Get(ctx, "t1", "dashboard")
	if err != nil || !ok {
		t.Fatalf("get = ok=%v err=%v, want present", ok, err)
	}
	if blob != `[{"i":"w0","x":0,"y":0,"w":6,"h":4}]` {
		t.Errorf("blob = %s", blob)
	}

	// Save is an upsert: a second write replaces the first.
	if err := repo.Save(ctx, "t1", "dashboard", `[]`); err != nil {
		t.Fatalf("save again: %v", err)
	}
	blob, _, err = repo.Get(ctx, "t1", "dashboard")
	if err != nil {
		t.Fatalf("get again: %v", err)
	}
	if blob != `[]` {
		t.Errorf("blob = %s, want []", blob)
	}
}

func TestLayoutStoreAdapter(t *testing.T) {
	db := testDB(t)
	addTenant(t, db, "t1")
	addTenant(t, db, "t2")
	repo := NewLayoutRepo(db)

	store := repo.ForTenant("t1", nil)
	if _, ok := store.Get("dashboard"); ok {
		t.Fatal("Get on empty store reported a value")
	}
	if err := store.Set("dashboard", "[]"); err != nil {
		t.Fatalf("set: %v", err)
	}
	blob, ok := store.Get("dashboard")
	if !ok || blob != "[]" {
		t.Errorf("Get = %q/%v, want []/true", blob, ok)
	}

	// The binding, not the key, picks the tenant.
	if _, ok := repo.ForTenant("t2", nil).Get("dashboard"); ok {
		t.Error("t2 store sees t1's layout")
	}
}
