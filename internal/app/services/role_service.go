package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/yigit/facultyhub/internal/app/models"
	"github.com/yigit/facultyhub/internal/app/models/dto"
	"github.com/yigit/facultyhub/internal/app/repositories"
	"github.com/yigit/facultyhub/internal/pkg/apperrors"
)

// RoleService manages the single role each user holds
type RoleService struct {
	roleRepo       repositories.IRoleRepository
	userRepo       repositories.IUserRepository
	departmentRepo repositories.IDepartmentRepository
	notifier       Notifier
	logger         zerolog.Logger
}

// NewRoleService creates a new RoleService
func NewRoleService(
	roleRepo repositories.IRoleRepository,
	userRepo repositories.IUserRepository,
	departmentRepo repositories.IDepartmentRepository,
	notifier Notifier,
	logger zerolog.Logger,
) *RoleService {
	return &RoleService{
		roleRepo:       roleRepo,
		userRepo:       userRepo,
		departmentRepo: departmentRepo,
		notifier:       notifier,
		logger:         logger,
	}
}

// ListRoles returns every role
func (s *RoleService) ListRoles(ctx context.Context) ([]*models.Role, error) {
	return s.roleRepo.List(ctx)
}

// ListAssignments returns all user role assignments with user and department names
func (s *RoleService) ListAssignments(ctx context.Context) ([]*models.UserRoleAssignment, error) {
	return s.roleRepo.ListAssignments(ctx)
}

// AssignRole replaces the role of userID. An hod assignment must name a department.
func (s *RoleService) AssignRole(ctx context.Context, userID uuid.UUID, req *dto.AssignRoleRequest) (*models.UserRole, error) {
	roleName, ok := models.ParseRoleName(req.Role)
	if !ok {
		return nil, apperrors.NewValidationError(fmt.Sprintf("unknown role %q", req.Role))
	}

	departmentID := req.DepartmentID
	switch roleName {
	case models.RoleHOD:
		if departmentID == nil {
			return nil, apperrors.NewValidationError("departmentId is required for the hod role")
		}
	case models.RoleAdmin:
		// Admins are not scoped
		departmentID = nil
	}

	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	if departmentID != nil {
		if _, err := s.departmentRepo.GetByID(ctx, *departmentID); err != nil {
			return nil, err
		}
	}

	role, err := s.roleRepo.GetByName(ctx, roleName)
	if err != nil {
		return nil, fmt.Errorf("error looking up role %s: %w", roleName, err)
	}

	ur := &models.UserRole{
		UserID:       userID,
		RoleID:       role.ID,
		RoleName:     role.Name,
		DepartmentID: departmentID,
	}
	if err := s.roleRepo.AssignUserRole(ctx, ur); err != nil {
		return nil, err
	}

	s.logger.Info().Str("userID", userID.String()).Str("role", string(roleName)).Msg("Role assigned")
	s.notifier.Notify(userID, models.Success("Role updated", fmt.Sprintf("You now have %s access.", roleName.Label())))
	return ur, nil
}

// RemoveRole deletes the role assignment of userID
func (s *RoleService) RemoveRole(ctx context.Context, userID uuid.UUID) error {
	if err := s.roleRepo.RemoveUserRole(ctx, userID); err != nil {
		if errors.Is(err, apperrors.ErrNoRoleAssigned) {
			return apperrors.NewResourceNotFoundError("This user has no role assigned")
		}
		return err
	}
	s.logger.Info().Str("userID", userID.String()).Msg("Role removed")
	return nil
}
