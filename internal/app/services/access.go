package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/yigit/facultyhub/internal/app/models"
	"github.com/yigit/facultyhub/internal/app/repositories"
	"github.com/yigit/facultyhub/internal/pkg/apperrors"
)

// AccessChecker decides whether a principal may act on a department or a faculty member.
// Admins act on everything, HODs on their own department and faculty members on their own profile.
type AccessChecker struct {
	roleRepo repositories.IRoleRepository
}

// NewAccessChecker creates an AccessChecker
func NewAccessChecker(roleRepo repositories.IRoleRepository) *AccessChecker {
	return &AccessChecker{roleRepo: roleRepo}
}

// DepartmentScope returns the department an HOD is limited to. It returns nil for admins.
func (a *AccessChecker) DepartmentScope(ctx context.Context, actor models.Principal) (*uuid.UUID, error) {
	switch {
	case actor.HasRole(models.RoleAdmin):
		return nil, nil
	case actor.HasRole(models.RoleHOD):
		ur, err := a.roleRepo.GetUserRole(ctx, actor.UserID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNoRoleAssigned) {
				return nil, apperrors.NewForbiddenError("No role assigned. Please contact administrator.")
			}
			return nil, fmt.Errorf("error resolving department scope: %w", err)
		}
		if ur.DepartmentID == nil {
			return nil, apperrors.NewForbiddenError("Your HOD role is not linked to a department")
		}
		return ur.DepartmentID, nil
	}
	return nil, apperrors.NewForbiddenError("You do not have permission to manage departments")
}

// CanManageDepartment allows admins and the HOD of departmentID
func (a *AccessChecker) CanManageDepartment(ctx context.Context, actor models.Principal, departmentID uuid.UUID) error {
	scope, err := a.DepartmentScope(ctx, actor)
	if err != nil {
		return err
	}
	if scope != nil && *scope != departmentID {
		return apperrors.NewForbiddenError("You can only manage your own department")
	}
	return nil
}

// CanManageFacultyMember allows admins, the HOD of the member's department and the member themself
func (a *AccessChecker) CanManageFacultyMember(ctx context.Context, actor models.Principal, member *models.FacultyMember) error {
	if actor.HasRole(models.RoleFaculty) {
		if member.UserID != nil && *member.UserID == actor.UserID {
			return nil
		}
		return apperrors.NewForbiddenError("You can only manage your own profile")
	}
	return a.CanManageDepartment(ctx, actor, member.DepartmentID)
}
