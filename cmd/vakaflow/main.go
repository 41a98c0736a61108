package main

import (
	"context"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/vakaflow-ai/vakaflow/internal/config"
	"github.com/vakaflow-ai/vakaflow/internal/database"
	"github.com/vakaflow-ai/vakaflow/internal/database/repository"
	"github.com/vakaflow-ai/vakaflow/internal/layout"
	"github.com/vakaflow-ai/vakaflow/internal/logging"
	"github.com/vakaflow-ai/vakaflow/internal/tui"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.New(cfg.Log.Path)
	if err != nil {
		log.Fatalf("logging: %v", err)
	}
	defer logger.Sync()

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		log.Fatalf("mkdir db dir: %v", err)
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	tenantID, err := database.EnsureTenant(ctx, db, cfg.Tenant.ID)
	if err != nil {
		log.Fatalf("tenant: %v", err)
	}
	logger.Info("starting", zap.String("tenant", tenantID), zap.String("db", cfg.Database.Path))

	agentRepo := repository.NewAgentRepo(db)
	vendorRepo := repository.NewVendorRepo(db)
	approvalRepo := repository.NewApprovalRepo(db)
	layoutRepo := repository.NewLayoutRepo(db)

	engine := layout.NewEngine(layoutRepo.ForTenant(tenantID, logger), cfg.Dashboard.StorageKey, logger)

	dashboard := tui.NewDashboardTab(engine, cfg.Dashboard.RowHeight, agentRepo, vendorRepo, approvalRepo, tenantID)
	agentsTab, err := tui.NewAgentsTab(agentRepo, vendorRepo, tenantID, cfg.UI.DateFormat)
	if err != nil {
		log.Fatalf("agents tab: %v", err)
	}
	vendorsTab, err := tui.NewVendorsTab(vendorRepo, tenantID, cfg.UI.DateFormat)
	if err != nil {
		log.Fatalf("vendors tab: %v", err)
	}
	approvalsTab, err := tui.NewApprovalsTab(approvalRepo, tenantID, cfg.UI.DateFormat)
	if err != nil {
		log.Fatalf("approvals tab: %v", err)
	}

	keys := tui.NewKeyRegistry(tui.DefaultBindings())
	model := tui.NewModel([]tui.Tab{dashboard, agentsTab, vendorsTab, approvalsTab}, keys, logger)

	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		log.Fatalf("run: %v", err)
	}
}
