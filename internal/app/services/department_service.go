package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/yigit/facultyhub/internal/app/models"
	"github.com/yigit/facultyhub/internal/app/models/dto"
	"github.com/yigit/facultyhub/internal/app/repositories"
	"github.com/yigit/facultyhub/internal/pkg/apperrors"
	"github.com/yigit/facultyhub/internal/pkg/helpers"
	"github.com/yigit/facultyhub/internal/pkg/validation"
)

// DepartmentService handles department-related operations
type DepartmentService struct {
	departmentRepo repositories.IDepartmentRepository
	logger         zerolog.Logger
}

// NewDepartmentService creates a new department service instance
func NewDepartmentService(departmentRepo repositories.IDepartmentRepository, logger zerolog.Logger) *DepartmentService {
	return &DepartmentService{
		departmentRepo: departmentRepo,
		logger:         logger,
	}
}

// validateDepartment validates department data before database operations
func (s *DepartmentService) validateDepartment(department *models.Department) error {
	if !validation.NewStringValidation(department.Name).
		WithMinLength(validation.NameMinLength).
		WithMaxLength(validation.NameMaxLength).
		Validate() {
		return apperrors.NewValidationError("name must be between 2 and 100 characters")
	}

	// Department code should be alphanumeric and uppercase
	if !validation.NewStringValidation(department.Code).WithPattern(validation.CompiledPatterns.DepartmentCode).Validate() {
		return apperrors.NewValidationError("code must be 2-10 upper-case letters or digits")
	}

	return nil
}

func departmentFromRequest(req *dto.CreateDepartmentRequest) *models.Department {
	return &models.Department{
		Name:        strings.TrimSpace(req.Name),
		Code:        strings.ToUpper(strings.TrimSpace(req.Code)),
		Description: helpers.OptionalStringPtr(req.Description),
	}
}

// CreateDepartment creates a new department
func (s *DepartmentService) CreateDepartment(ctx context.Context, req *dto.CreateDepartmentRequest) (*models.Department, error) {
	department := departmentFromRequest(req)
	if err := s.validateDepartment(department); err != nil {
		return nil, err
	}

	exists, err := s.departmentRepo.ExistsByNameOrCode(ctx, department.Name, department.Code, nil)
	if err != nil {
		return nil, fmt.Errorf("error checking department uniqueness: %w", err)
	}
	if exists {
		return nil, apperrors.ErrDepartmentAlreadyExists
	}

	if err := s.departmentRepo.Create(ctx, department); err != nil {
		return nil, err
	}

	s.logger.Info().Str("departmentID", department.ID.String()).Str("code", department.Code).Msg("Department created")
	return department, nil
}

// GetDepartmentByID retrieves a department by ID
func (s *DepartmentService) GetDepartmentByID(ctx context.Context, id uuid.UUID) (*models.Department, error) {
	return s.departmentRepo.GetByID(ctx, id)
}

// GetAllDepartments retrieves all departments ordered by name
func (s *DepartmentService) GetAllDepartments(ctx context.Context) ([]*models.Department, error) {
	return s.departmentRepo.List(ctx)
}

// UpdateDepartment updates a department
func (s *DepartmentService) UpdateDepartment(ctx context.Context, id uuid.UUID, req *dto.UpdateDepartmentRequest) (*models.Department, error) {
	department := departmentFromRequest((*dto.CreateDepartmentRequest)(req))
	department.ID = id
	if err := s.validateDepartment(department); err != nil {
		return nil, err
	}

	existing, err := s.departmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	exists, err := s.departmentRepo.ExistsByNameOrCode(ctx, department.Name, department.Code, &id)
	if err != nil {
		return nil, fmt.Errorf("error checking department uniqueness: %w", err)
	}
	if exists {
		return nil, apperrors.ErrDepartmentAlreadyExists
	}

	department.CreatedAt = existing.CreatedAt
	if err := s.departmentRepo.Update(ctx, department); err != nil {
		return nil, err
	}
	return department, nil
}

// DeleteDepartment deletes a department that has no faculty members or courses
func (s *DepartmentService) DeleteDepartment(ctx context.Context, id uuid.UUID) error {
	if err := s.departmentRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("departmentID", id.String()).Msg("Department deleted")
	return nil
}
