package tui

import (
	"context"

	"github.com/vakaflow-ai/vakaflow/internal/columns"
	"github.com/vakaflow-ai/vakaflow/internal/database/repository"
)

func agentColumns() []columns.Config {
	name := columns.NewConfig("name", "Name")
	risk := columns.NewConfig("risk", "Risk")
	risk.Width = 10
	status := columns.NewConfig("status", "Status")
	status.Width = 12
	owner := columns.NewConfig("owner", "Owner")
	vendor := columns.NewConfig("vendor", "Vendor")
	updated := columns.NewConfig("updated", "Updated")
	updated.Filterable = false
	updated.Width = 12
	return []columns.Config{name, risk, status, owner, vendor, updated}
}

// NewAgentsTab lists the tenant's registered agents.
func NewAgentsTab(agents *repository.AgentRepo, vendors *repository.VendorRepo, tenantID, dateFormat string) (*TableTab, error) {
	ctrl, err := columns.NewController(agentColumns())
	if err != nil {
		return nil, err
	}
	load := func() ([]Row, error) {
		ctx := context.Background()
		list, err := agents.List(ctx, tenantID)
		if err != nil {
			return nil, err
		}
		vendorNames, err := vendorNameIndex(ctx, vendors, tenantID)
		if err != nil {
			return nil, err
		}
		rows := make([]Row, len(list))
		for i, a := range list {
			vendor := ""
			if a.VendorID != nil {
				vendor = vendorNames[*a.VendorID]
			}
			rows[i] = Row{
				"id":      a.ID,
				"name":    a.Name,
				"risk":    a.RiskTier,
				"status":  a.Status,
				"owner":   a.Owner,
				"vendor":  vendor,
				"updated": a.UpdatedAt.Format(dateFormat),
			}
		}
		return rows, nil
	}
	return NewTableTab("agents", "Agents", ctrl, load), nil
}

func vendorNameIndex(ctx context.Context, vendors *repository.VendorRepo, tenantID string) (map[string]string, error) {
	list, err := vendors.List(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	out := make(map[string]string, len(list))
	for _, v := range list {
		out[v.ID] = v.Name
	}
	return out, nil
}
