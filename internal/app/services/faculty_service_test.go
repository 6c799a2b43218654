package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/yigit/facultyhub/internal/app/models"
	"github.com/yigit/facultyhub/internal/app/models/dto"
	"github.com/yigit/facultyhub/internal/app/repositories"
	"github.com/yigit/facultyhub/internal/pkg/apperrors"
)

type facultyFixture struct {
	users    *mockUserRepo
	roles    *mockRoleRepo
	depts    *mockDepartmentRepo
	faculty  *mockFacultyRepo
	courses  *mockCourseRepo
	mail     *mockEmailService
	notifier *recordingNotifier
	tx       *fakeTxManager
	svc      *FacultyService
	dept     *models.Department
}

func newFacultyFixture() *facultyFixture {
	f := &facultyFixture{
		users:    &mockUserRepo{},
		roles:    &mockRoleRepo{},
		depts:    &mockDepartmentRepo{},
		faculty:  &mockFacultyRepo{},
		courses:  &mockCourseRepo{},
		mail:     &mockEmailService{},
		notifier: &recordingNotifier{},
		dept:     &models.Department{ID: uuid.New(), Name: "Computer Science", Code: "CS"},
	}
	f.tx = &fakeTxManager{repos: &repositories.Repositories{
		UserRepository:          f.users,
		RoleRepository:          f.roles,
		DepartmentRepository:    f.depts,
		FacultyMemberRepository: f.faculty,
		CourseRepository:        f.courses,
	}}
	f.svc = NewFacultyService(f.faculty, f.tx, NewAccessChecker(f.roles), f.mail, f.notifier, zerolog.Nop())
	f.depts.On("GetByID", mock.Anything, f.dept.ID).Return(f.dept, nil).Maybe()
	return f
}

var adminActor = models.Principal{UserID: uuid.New(), SessionID: uuid.New(), Email: "admin@facultech.com", Role: models.RoleAdmin}

func facultyRequest(createAccount bool, password string) *dto.CreateFacultyMemberRequest {
	return &dto.CreateFacultyMemberRequest{
		FirstName:     "Ada",
		LastName:      "Lovelace",
		Title:         "Professor",
		Email:         "Ada@facultech.com",
		CreateAccount: createAccount,
		Password:      password,
	}
}

func TestCreateFacultyMemberWithoutAccount(t *testing.T) {
	f := newFacultyFixture()
	f.faculty.On("Create", mock.Anything, mock.AnythingOfType("*models.FacultyMember")).Return(nil)

	resp, err := f.svc.CreateFacultyMember(context.Background(), adminActor, f.dept.ID, facultyRequest(false, ""))

	require.NoError(t, err)
	assert.False(t, resp.AccountCreated)
	assert.Nil(t, resp.FacultyMember.UserID)
	assert.Equal(t, "ada@facultech.com", resp.FacultyMember.Email)
	assert.Equal(t, "Computer Science", resp.FacultyMember.DepartmentName)
	assert.Equal(t, 1, f.tx.commits)

	f.users.AssertNotCalled(t, "EmailExists", mock.Anything, mock.Anything)
	f.users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	f.roles.AssertNotCalled(t, "GetByName", mock.Anything, mock.Anything)
	f.mail.AssertNotCalled(t, "SendAccountCreatedEmail", mock.Anything, mock.Anything, mock.Anything)
	require.Len(t, f.notifier.sent, 1)
	assert.Equal(t, "Faculty member added", f.notifier.sent[0].Title)
}

func TestCreateFacultyMemberRoleLookupFailureRollsBack(t *testing.T) {
	f := newFacultyFixture()
	f.users.On("EmailExists", mock.Anything, "ada@facultech.com").Return(false, nil)
	f.users.On("Create", mock.Anything, mock.AnythingOfType("*models.User")).Return(nil)
	f.roles.On("GetByName", mock.Anything, models.RoleFaculty).Return(nil, errors.New("connection reset"))

	resp, err := f.svc.CreateFacultyMember(context.Background(), adminActor, f.dept.ID, facultyRequest(true, "secret123"))

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, apperrors.ErrRoleLookupFailed)
	assert.Equal(t, 0, f.tx.commits)
	assert.Equal(t, 1, f.tx.rollbacks)

	f.faculty.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	f.roles.AssertNotCalled(t, "AssignUserRole", mock.Anything, mock.Anything)
	assert.Empty(t, f.notifier.sent)
}

func TestCreateFacultyMemberWithAccount(t *testing.T) {
	f := newFacultyFixture()
	roleID := uuid.New()
	f.users.On("EmailExists", mock.Anything, "ada@facultech.com").Return(false, nil)
	f.users.On("Create", mock.Anything, mock.AnythingOfType("*models.User")).Return(nil)
	f.roles.On("GetByName", mock.Anything, models.RoleFaculty).Return(&models.Role{ID: roleID, Name: models.RoleFaculty}, nil)
	f.roles.On("AssignUserRole", mock.Anything, mock.MatchedBy(func(ur *models.UserRole) bool {
		return ur.RoleID == roleID && ur.DepartmentID != nil && *ur.DepartmentID == f.dept.ID
	})).Return(nil)
	f.faculty.On("Create", mock.Anything, mock.MatchedBy(func(m *models.FacultyMember) bool { return m.UserID != nil })).Return(nil)
	f.mail.On("SendAccountCreatedEmail", "ada@facultech.com", "Ada Lovelace", "faculty").Return(errors.New("smtp down"))

	resp, err := f.svc.CreateFacultyMember(context.Background(), adminActor, f.dept.ID, facultyRequest(true, "secret123"))

	require.NoError(t, err, "a failed email must not fail the creation")
	assert.True(t, resp.AccountCreated)
	assert.Equal(t, 1, f.tx.commits)
	f.roles.AssertExpectations(t)
	f.mail.AssertExpectations(t)
}

func TestCreateFacultyMemberValidation(t *testing.T) {
	t.Run("password required with account", func(t *testing.T) {
		f := newFacultyFixture()
		_, err := f.svc.CreateFacultyMember(context.Background(), adminActor, f.dept.ID, facultyRequest(true, "  "))
		assert.ErrorIs(t, err, apperrors.ErrPasswordRequired)
		assert.Equal(t, 0, f.tx.commits+f.tx.rollbacks)
	})

	t.Run("duplicate account email", func(t *testing.T) {
		f := newFacultyFixture()
		f.users.On("EmailExists", mock.Anything, "ada@facultech.com").Return(true, nil)

		_, err := f.svc.CreateFacultyMember(context.Background(), adminActor, f.dept.ID, facultyRequest(true, "secret123"))
		assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
		f.faculty.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("hod limited to own department", func(t *testing.T) {
		f := newFacultyFixture()
		hod := models.Principal{UserID: uuid.New(), Role: models.RoleHOD}
		f.roles.On("GetUserRole", mock.Anything, hod.UserID).Return(&models.UserRole{RoleName: models.RoleHOD, DepartmentID: uuidPtr(uuid.New())}, nil)

		_, err := f.svc.CreateFacultyMember(context.Background(), hod, f.dept.ID, facultyRequest(false, ""))
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
		assert.Equal(t, 0, f.tx.commits+f.tx.rollbacks)
	})

	t.Run("faculty cannot create", func(t *testing.T) {
		f := newFacultyFixture()
		_, err := f.svc.CreateFacultyMember(context.Background(), models.Principal{UserID: uuid.New(), Role: models.RoleFaculty}, f.dept.ID, facultyRequest(false, ""))
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	})
}

func TestUpdateFacultyMemberDepartmentMove(t *testing.T) {
	f := newFacultyFixture()
	userID := uuid.New()
	member := &models.FacultyMember{ID: uuid.New(), FirstName: "Ada", LastName: "Lovelace", DepartmentID: f.dept.ID, UserID: &userID}
	f.faculty.On("GetByID", mock.Anything, member.ID).Return(member, nil)

	self := models.Principal{UserID: userID, Role: models.RoleFaculty}
	_, err := f.svc.UpdateFacultyMember(context.Background(), self, member.ID, &dto.UpdateFacultyMemberRequest{
		FirstName: "Ada", LastName: "Lovelace", Title: "Professor", Email: "ada@facultech.com", DepartmentID: uuidPtr(uuid.New()),
	})
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	f.faculty.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestAdminMoveFacultyMemberBetweenDepartments(t *testing.T) {
	target := uuid.New()
	update := func() *dto.UpdateFacultyMemberRequest {
		return &dto.UpdateFacultyMemberRequest{
			FirstName: "Ada", LastName: "Lovelace", Title: "Professor", Email: "ada@facultech.com", DepartmentID: uuidPtr(target),
		}
	}

	t.Run("rejected while teaching courses", func(t *testing.T) {
		f := newFacultyFixture()
		member := &models.FacultyMember{ID: uuid.New(), FirstName: "Ada", LastName: "Lovelace", DepartmentID: f.dept.ID}
		f.faculty.On("GetByID", mock.Anything, member.ID).Return(member, nil)
		f.courses.On("Count", mock.Anything, models.CourseFilter{FacultyID: &member.ID}).Return(int64Ptr(2), nil)

		_, err := f.svc.UpdateFacultyMember(context.Background(), adminActor, member.ID, update())

		assert.ErrorIs(t, err, apperrors.ErrConflict)
		assert.Equal(t, 1, f.tx.rollbacks)
		f.faculty.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("allowed without courses", func(t *testing.T) {
		f := newFacultyFixture()
		member := &models.FacultyMember{ID: uuid.New(), FirstName: "Ada", LastName: "Lovelace", DepartmentID: f.dept.ID}
		f.faculty.On("GetByID", mock.Anything, member.ID).Return(member, nil)
		f.courses.On("Count", mock.Anything, models.CourseFilter{FacultyID: &member.ID}).Return(int64Ptr(0), nil)
		f.faculty.On("Update", mock.Anything, mock.MatchedBy(func(m *models.FacultyMember) bool {
			return m.DepartmentID == target
		})).Return(nil)

		_, err := f.svc.UpdateFacultyMember(context.Background(), adminActor, member.ID, update())

		require.NoError(t, err)
		assert.Equal(t, 1, f.tx.commits)
		f.faculty.AssertExpectations(t)
	})
}

func TestListFacultyMembersPagination(t *testing.T) {
	f := newFacultyFixture()
	filter := repositories.FacultyFilter{DepartmentID: &f.dept.ID, Search: "ada", Limit: 10, Offset: 10}
	f.faculty.On("List", mock.Anything, filter).Return([]*models.FacultyMember{{ID: uuid.New()}}, nil)
	f.faculty.On("Count", mock.Anything, filter).Return(int64Ptr(11), nil)

	resp, err := f.svc.ListFacultyMembers(context.Background(), &f.dept.ID, " ada ", 2, 10)

	require.NoError(t, err)
	assert.Equal(t, int64(11), resp.Pagination.TotalItems)
	assert.Equal(t, 2, resp.Pagination.TotalPages)
	assert.Equal(t, 2, resp.Pagination.CurrentPage)
}
