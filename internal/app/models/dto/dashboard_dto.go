package dto

import "github.com/yigit/facultyhub/internal/app/models"

// DashboardCard is a single metric widget
type DashboardCard struct {
	Key         string `json:"key" example:"faculty-members"`
	Title       string `json:"title" example:"Faculty Members"`
	Value       int64  `json:"value" example:"42"`
	Description string `json:"description,omitempty"`
}

// TableColumn names one column of a DashboardTable
type TableColumn struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// DashboardTable is a tabular widget. Rows are keyed by column key.
type DashboardTable struct {
	Key     string           `json:"key"`
	Title   string           `json:"title"`
	Columns []TableColumn    `json:"columns"`
	Rows    []map[string]any `json:"rows"`
}

// DashboardTab groups tables under a tab
type DashboardTab struct {
	Key    string           `json:"key" example:"overview"`
	Label  string           `json:"label" example:"Overview"`
	Tables []DashboardTable `json:"tables"`
}

// DashboardResponse is the role specific dashboard view model
type DashboardResponse struct {
	Role    models.RoleName `json:"role,omitempty" example:"admin"`
	Title   string          `json:"title" example:"Admin Dashboard"`
	Message string          `json:"message,omitempty"`
	Cards   []DashboardCard `json:"cards"`
	Tabs    []DashboardTab  `json:"tabs"`
}
