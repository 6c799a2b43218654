package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/yigit/facultyhub/internal/app/models"
	"github.com/yigit/facultyhub/internal/app/models/dto"
	"github.com/yigit/facultyhub/internal/pkg/apperrors"
)

func TestCreateDepartmentNormalizesInput(t *testing.T) {
	depts := &mockDepartmentRepo{}
	svc := NewDepartmentService(depts, zerolog.Nop())
	depts.On("ExistsByNameOrCode", mock.Anything, "Computer Science", "CS", (*uuid.UUID)(nil)).Return(false, nil)
	depts.On("Create", mock.Anything, mock.AnythingOfType("*models.Department")).Return(nil)

	dept, err := svc.CreateDepartment(context.Background(), &dto.CreateDepartmentRequest{Name: " Computer Science ", Code: " cs "})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, dept.ID)
	assert.Equal(t, "CS", dept.Code)
	depts.AssertExpectations(t)
}

func TestCreateDuplicateDepartment(t *testing.T) {
	depts := &mockDepartmentRepo{}
	svc := NewDepartmentService(depts, zerolog.Nop())
	depts.On("ExistsByNameOrCode", mock.Anything, "Physics", "PHYS", (*uuid.UUID)(nil)).Return(true, nil)

	_, err := svc.CreateDepartment(context.Background(), &dto.CreateDepartmentRequest{Name: "Physics", Code: "PHYS"})

	assert.ErrorIs(t, err, apperrors.ErrDepartmentAlreadyExists)
	depts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateDepartmentRejectsBadCode(t *testing.T) {
	depts := &mockDepartmentRepo{}
	svc := NewDepartmentService(depts, zerolog.Nop())

	_, err := svc.CreateDepartment(context.Background(), &dto.CreateDepartmentRequest{Name: "Physics", Code: "P-1"})

	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	depts.AssertNotCalled(t, "ExistsByNameOrCode", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateDepartmentChecksOtherRows(t *testing.T) {
	depts := &mockDepartmentRepo{}
	svc := NewDepartmentService(depts, zerolog.Nop())
	existing := &models.Department{ID: uuid.New(), Name: "Maths", Code: "MATH", CreatedAt: time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)}
	depts.On("GetByID", mock.Anything, existing.ID).Return(existing, nil)
	depts.On("ExistsByNameOrCode", mock.Anything, "Mathematics", "MATH", &existing.ID).Return(false, nil)
	depts.On("Update", mock.Anything, mock.AnythingOfType("*models.Department")).Return(nil)

	dept, err := svc.UpdateDepartment(context.Background(), existing.ID, &dto.UpdateDepartmentRequest{Name: "Mathematics", Code: "MATH"})

	require.NoError(t, err)
	assert.Equal(t, existing.CreatedAt, dept.CreatedAt)
	depts.AssertExpectations(t)

	depts2 := &mockDepartmentRepo{}
	svc = NewDepartmentService(depts2, zerolog.Nop())
	depts2.On("GetByID", mock.Anything, existing.ID).Return(existing, nil)
	depts2.On("ExistsByNameOrCode", mock.Anything, "Physics", "MATH", &existing.ID).Return(true, nil)

	_, err = svc.UpdateDepartment(context.Background(), existing.ID, &dto.UpdateDepartmentRequest{Name: "Physics", Code: "MATH"})

	assert.ErrorIs(t, err, apperrors.ErrDepartmentAlreadyExists)
	depts2.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
