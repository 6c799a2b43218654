package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/yigit/facultyhub/internal/app/models"
	"github.com/yigit/facultyhub/internal/pkg/apperrors"
)

type courseFixture struct {
	courses  *mockCourseRepo
	faculty  *mockFacultyRepo
	roles    *mockRoleRepo
	notifier *recordingNotifier
	svc      *CourseService
	course   *models.Course
}

func newCourseFixture() *courseFixture {
	f := &courseFixture{
		courses:  &mockCourseRepo{},
		faculty:  &mockFacultyRepo{},
		roles:    &mockRoleRepo{},
		notifier: &recordingNotifier{},
		course:   &models.Course{ID: uuid.New(), Code: "CS101", Name: "Introduction to Programming", DepartmentID: uuid.New()},
	}
	f.svc = NewCourseService(f.courses, f.faculty, NewAccessChecker(f.roles), f.notifier, zerolog.Nop())
	f.courses.On("GetByID", mock.Anything, f.course.ID).Return(f.course, nil)
	return f
}

// hodOf returns an HOD principal whose stored role is scoped to departmentID
func (f *courseFixture) hodOf(departmentID uuid.UUID) models.Principal {
	actor := models.Principal{UserID: uuid.New(), Role: models.RoleHOD}
	f.roles.On("GetUserRole", mock.Anything, actor.UserID).
		Return(&models.UserRole{UserID: actor.UserID, RoleName: models.RoleHOD, DepartmentID: &departmentID}, nil)
	return actor
}

func TestAssignFacultyFromAnotherDepartment(t *testing.T) {
	f := newCourseFixture()
	teacher := &models.FacultyMember{ID: uuid.New(), FirstName: "Alan", LastName: "Turing", DepartmentID: uuid.New()}
	f.faculty.On("GetByID", mock.Anything, teacher.ID).Return(teacher, nil)

	_, err := f.svc.AssignFaculty(context.Background(), adminActor, f.course.ID, &teacher.ID)

	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	f.courses.AssertNotCalled(t, "AssignFaculty", mock.Anything, mock.Anything, mock.Anything)
	assert.Empty(t, f.notifier.sent)
}

func TestAssignFacultyByForeignHOD(t *testing.T) {
	f := newCourseFixture()
	actor := f.hodOf(uuid.New())
	teacherID := uuid.New()

	_, err := f.svc.AssignFaculty(context.Background(), actor, f.course.ID, &teacherID)

	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	f.faculty.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	f.courses.AssertNotCalled(t, "AssignFaculty", mock.Anything, mock.Anything, mock.Anything)
}

func TestAssignFacultyNotifiesTeacher(t *testing.T) {
	f := newCourseFixture()
	actor := f.hodOf(f.course.DepartmentID)
	userID := uuid.New()
	teacher := &models.FacultyMember{ID: uuid.New(), FirstName: "Alan", LastName: "Turing", DepartmentID: f.course.DepartmentID, UserID: &userID}
	f.faculty.On("GetByID", mock.Anything, teacher.ID).Return(teacher, nil)
	f.courses.On("AssignFaculty", mock.Anything, f.course.ID, &teacher.ID).Return(nil)

	course, err := f.svc.AssignFaculty(context.Background(), actor, f.course.ID, &teacher.ID)

	require.NoError(t, err)
	assert.Equal(t, f.course.ID, course.ID)
	f.courses.AssertExpectations(t)
	require.Len(t, f.notifier.sent, 1)
	assert.Equal(t, "New teaching assignment", f.notifier.sent[0].Title)
	assert.Contains(t, f.notifier.sent[0].Description, "CS101")
}

func TestAssignFacultyClearsTeacher(t *testing.T) {
	f := newCourseFixture()
	f.courses.On("AssignFaculty", mock.Anything, f.course.ID, (*uuid.UUID)(nil)).Return(nil)

	_, err := f.svc.AssignFaculty(context.Background(), adminActor, f.course.ID, nil)

	require.NoError(t, err)
	f.faculty.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	assert.Empty(t, f.notifier.sent)
}

func TestDeleteCourseByFacultyIsForbidden(t *testing.T) {
	f := newCourseFixture()
	actor := models.Principal{UserID: uuid.New(), Role: models.RoleFaculty}

	err := f.svc.DeleteCourse(context.Background(), actor, f.course.ID)

	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	f.courses.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
