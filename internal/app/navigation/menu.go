// Package navigation computes the sidebar menu and page chrome for a role.
package navigation

import (
	"strings"

	"github.com/yigit/facultyhub/internal/app/models"
)

// MenuItem is one sidebar entry
type MenuItem struct {
	Key   string `json:"key" example:"dashboard"`
	Label string `json:"label" example:"Dashboard"`
	Path  string `json:"path" example:"/dashboard"`
	Icon  string `json:"icon,omitempty" example:"layout-dashboard"`
}

// Menu is the navigation for the current page
type Menu struct {
	Items     []MenuItem `json:"items"`
	PageTitle string     `json:"pageTitle" example:"Dashboard"`
	RoleBadge string     `json:"roleBadge" example:"Admin"`
}

type entry struct {
	item  MenuItem
	roles []models.RoleName // nil means every role
}

var entries = []entry{
	{item: MenuItem{Key: "dashboard", Label: "Dashboard", Path: "/dashboard", Icon: "layout-dashboard"}},
	{item: MenuItem{Key: "profile", Label: "Profile", Path: "/profile", Icon: "user"}},
	{item: MenuItem{Key: "certifications", Label: "Certifications", Path: "/certifications", Icon: "award"}},
	{item: MenuItem{Key: "manage-faculty", Label: "Manage Faculty", Path: "/manage-faculty", Icon: "users"}, roles: []models.RoleName{models.RoleAdmin}},
	{item: MenuItem{Key: "roles-management", Label: "Roles Management", Path: "/roles-management", Icon: "shield"}, roles: []models.RoleName{models.RoleAdmin}},
	{item: MenuItem{Key: "teaching-loads", Label: "Teaching Loads", Path: "/teaching-loads", Icon: "book-open"}, roles: []models.RoleName{models.RoleAdmin, models.RoleHOD}},
	{item: MenuItem{Key: "reports", Label: "Reports", Path: "/reports", Icon: "bar-chart"}, roles: []models.RoleName{models.RoleAdmin, models.RoleHOD}},
	{item: MenuItem{Key: "my-reports", Label: "My Reports", Path: "/my-reports", Icon: "file-text"}, roles: []models.RoleName{models.RoleFaculty}},
	{item: MenuItem{Key: "system-settings", Label: "System Settings", Path: "/system-settings", Icon: "settings"}, roles: []models.RoleName{models.RoleAdmin}},
}

// MenuFor returns the items visible to role, in display order. Users without a role see the common items only.
func MenuFor(role models.RoleName) []MenuItem {
	items := make([]MenuItem, 0, len(entries))
	for _, e := range entries {
		if e.roles == nil || allowed(role, e.roles) {
			items = append(items, e.item)
		}
	}
	return items
}

func allowed(role models.RoleName, roles []models.RoleName) bool {
	for _, r := range roles {
		if role.Matches(r) {
			return true
		}
	}
	return false
}

// PageTitle derives a title from the first path segment, e.g. "/manage-faculty/42" gives "Manage Faculty"
func PageTitle(path string) string {
	segment := strings.Split(strings.Trim(path, "/"), "/")[0]
	if segment == "" {
		return "Dashboard"
	}

	for _, e := range entries {
		if strings.TrimPrefix(e.item.Path, "/") == segment {
			return e.item.Label
		}
	}

	words := strings.Split(segment, "-")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

// Build assembles the menu for role on the page at path
func Build(role models.RoleName, path string) Menu {
	return Menu{
		Items:     MenuFor(role),
		PageTitle: PageTitle(path),
		RoleBadge: role.Label(),
	}
}
