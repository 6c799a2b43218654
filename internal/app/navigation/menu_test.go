package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yigit/facultyhub/internal/app/models"
)

func keys(items []MenuItem) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Key)
	}
	return out
}

func TestMenuFor(t *testing.T) {
	tests := []struct {
		role models.RoleName
		want []string
	}{
		{models.RoleAdmin, []string{"dashboard", "profile", "certifications", "manage-faculty", "roles-management", "teaching-loads", "reports", "system-settings"}},
		{models.RoleHOD, []string{"dashboard", "profile", "certifications", "teaching-loads", "reports"}},
		{models.RoleFaculty, []string{"dashboard", "profile", "certifications", "my-reports"}},
		{"", []string{"dashboard", "profile", "certifications"}},
		{"ADMIN", []string{"dashboard", "profile", "certifications", "manage-faculty", "roles-management", "teaching-loads", "reports", "system-settings"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			assert.Equal(t, tt.want, keys(MenuFor(tt.role)))
		})
	}
}

func TestPageTitle(t *testing.T) {
	assert.Equal(t, "Dashboard", PageTitle("/"))
	assert.Equal(t, "Manage Faculty", PageTitle("/manage-faculty/42"))
	assert.Equal(t, "Roles Management", PageTitle("roles-management"))
	assert.Equal(t, "Faculty Profile", PageTitle("/faculty-profile"))
}

func TestBuild(t *testing.T) {
	m := Build(models.RoleHOD, "/teaching-loads")
	assert.Equal(t, "HOD", m.RoleBadge)
	assert.Equal(t, "Teaching Loads", m.PageTitle)
	assert.Len(t, m.Items, 5)

	assert.Equal(t, "No role", Build("", "/").RoleBadge)
}
