package tui

import (
	"context"

	"github.com/vakaflow-ai/vakaflow/internal/columns"
	"github.com/vakaflow-ai/vakaflow/internal/database/repository"
)

func vendorColumns() []columns.Config {
	name := columns.NewConfig("name", "Name")
	category := columns.NewConfig("category", "Category")
	status := columns.NewConfig("status", "Status")
	status.Width = 14
	contact := columns.NewConfig("contact", "Contact")
	added := columns.NewConfig("added", "Added")
	added.Filterable = false
	added.Width = 12
	return []columns.Config{name, category, status, contact, added}
}

// NewVendorsTab lists the tenant's suppliers.
func NewVendorsTab(vendors *repository.VendorRepo, tenantID, dateFormat string) (*TableTab, error) {
	ctrl, err := columns.NewController(vendorColumns())
	if err != nil {
		return nil, err
	}
	load := func() ([]Row, error) {
		list, err := vendors.List(context.Background(), tenantID)
		if err != nil {
			return nil, err
		}
		rows := make([]Row, len(list))
		for i, v := range list {
			rows[i] = Row{
				"id":       v.ID,
				"name":     v.Name,
				"category": v.Category,
				"status":   v.Status,
				"contact":  v.Contact,
				"added":    v.CreatedAt.Format(dateFormat),
			}
		}
		return rows, nil
	}
	return NewTableTab("vendors", "Vendors", ctrl, load), nil
}
