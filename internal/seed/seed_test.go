package seed

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/facultyhub/internal/app/models"
	"github.com/yigit/facultyhub/internal/app/repositories"
)

type failingTx struct{ calls int }

func (f *failingTx) WithTransaction(context.Context, repositories.TxFn) error {
	f.calls++
	return errors.New("connection refused")
}

func TestDemoAccountsCoverEveryRole(t *testing.T) {
	accounts := DemoAccounts("@facultech.com ")
	require.Len(t, accounts, len(models.AllRoles))

	roles := make(map[models.RoleName]Account)
	for _, a := range accounts {
		roles[a.Role] = a
	}
	for _, r := range models.AllRoles {
		assert.Contains(t, roles, r)
	}

	assert.Equal(t, "admin@facultech.com", roles[models.RoleAdmin].Email)
	assert.Empty(t, roles[models.RoleAdmin].DepartmentCode)
	assert.Equal(t, "CS", roles[models.RoleHOD].DepartmentCode)
	assert.NotEmpty(t, roles[models.RoleFaculty].FacultyTitle)
}

func TestDemoAccountDepartmentsAreSeeded(t *testing.T) {
	codes := make(map[string]bool)
	for _, d := range DefaultDepartments {
		codes[d.Code] = true
	}
	for _, a := range DemoAccounts("example.edu") {
		if a.DepartmentCode != "" {
			assert.True(t, codes[a.DepartmentCode], a.Email)
		}
	}
}

func TestCreateDefaultDataStopsWhenRolesFail(t *testing.T) {
	tx := &failingTx{}
	err := CreateDefaultData(context.Background(), tx, Options{DemoAccounts: true, DemoPassword: "secret1", DemoEmailDomain: "x.io"}, zerolog.Nop())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
	assert.Equal(t, 1, tx.calls)
}
