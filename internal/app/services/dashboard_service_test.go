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

type fakeCertificateIndex struct {
	entries  map[uuid.UUID][]models.CertificateMetadata
	countAll *int64
	allErr   error
}

func (f *fakeCertificateIndex) Entries(_ context.Context, facultyID uuid.UUID) ([]models.CertificateMetadata, error) {
	return f.entries[facultyID], nil
}

func (f *fakeCertificateIndex) CountForFaculty(_ context.Context, facultyID uuid.UUID) (*int64, error) {
	return int64Ptr(int64(len(f.entries[facultyID]))), nil
}

func (f *fakeCertificateIndex) CountAll(context.Context, *uuid.UUID) (*int64, error) {
	return f.countAll, f.allErr
}

type dashboardFixture struct {
	repos   *repositories.Repositories
	roles   *mockRoleRepo
	depts   *mockDepartmentRepo
	faculty *mockFacultyRepo
	courses *mockCourseRepo
	hours   *mockOfficeHourRepo
	pubs    *mockPublicationRepo
	certs   *fakeCertificateIndex
	svc     *DashboardService
}

func newDashboardFixture() *dashboardFixture {
	f := &dashboardFixture{
		roles:   &mockRoleRepo{},
		depts:   &mockDepartmentRepo{},
		faculty: &mockFacultyRepo{},
		courses: &mockCourseRepo{},
		hours:   &mockOfficeHourRepo{},
		pubs:    &mockPublicationRepo{},
		certs:   &fakeCertificateIndex{entries: map[uuid.UUID][]models.CertificateMetadata{}},
	}
	f.repos = &repositories.Repositories{
		RoleRepository:          f.roles,
		DepartmentRepository:    f.depts,
		FacultyMemberRepository: f.faculty,
		CourseRepository:        f.courses,
		OfficeHourRepository:    f.hours,
		PublicationRepository:   f.pubs,
	}
	f.svc = NewDashboardService(f.repos, f.certs, zerolog.Nop())
	return f
}

func cardValues(cards []dto.DashboardCard) map[string]int64 {
	out := make(map[string]int64, len(cards))
	for _, c := range cards {
		out[c.Title] = c.Value
	}
	return out
}

func TestAdminDashboardCountsDefaultToZero(t *testing.T) {
	f := newDashboardFixture()
	user := models.Principal{UserID: uuid.New(), Role: models.RoleAdmin}
	f.roles.On("GetUserRole", mock.Anything, user.UserID).Return(&models.UserRole{RoleName: models.RoleAdmin}, nil)
	f.roles.On("ListAssignments", mock.Anything).Return([]*models.UserRoleAssignment{}, nil)

	// nil count
	f.faculty.On("Count", mock.Anything, repositories.FacultyFilter{}).Return(nil, nil)
	// failed count query
	f.depts.On("Count", mock.Anything).Return(nil, errors.New("relation does not exist"))
	f.courses.On("Count", mock.Anything, models.CourseFilter{}).Return(int64Ptr(7), nil)
	f.certs.allErr = errors.New("bucket unavailable")

	f.faculty.On("List", mock.Anything, repositories.FacultyFilter{}).Return([]*models.FacultyMember{}, nil)
	f.courses.On("List", mock.Anything, models.CourseFilter{}).Return(nil, errors.New("timeout"))

	resp, err := f.svc.Build(context.Background(), user)

	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, resp.Role)
	assert.Equal(t, map[string]int64{
		"Faculty Members": 0,
		"Departments":     0,
		"Active Courses":  7,
		"Certifications":  0,
	}, cardValues(resp.Cards))

	tabs := make([]string, 0, len(resp.Tabs))
	for _, tab := range resp.Tabs {
		tabs = append(tabs, tab.Key)
	}
	assert.Equal(t, []string{"overview", "faculty", "workloads", "settings"}, tabs)
}

func TestDashboardWithoutRole(t *testing.T) {
	f := newDashboardFixture()
	user := models.Principal{UserID: uuid.New()}
	f.roles.On("GetUserRole", mock.Anything, user.UserID).Return(nil, apperrors.ErrNoRoleAssigned)

	resp, err := f.svc.Build(context.Background(), user)

	require.NoError(t, err)
	assert.Equal(t, NoRoleMessage, resp.Message)
	assert.Empty(t, resp.Cards)
}

func TestHODDashboardScopedToDepartment(t *testing.T) {
	f := newDashboardFixture()
	user := models.Principal{UserID: uuid.New(), Role: models.RoleHOD}
	deptID := uuid.New()
	member := &models.FacultyMember{ID: uuid.New(), FirstName: "Ada", LastName: "Lovelace", DepartmentID: deptID}

	f.roles.On("GetUserRole", mock.Anything, user.UserID).Return(&models.UserRole{RoleName: models.RoleHOD, DepartmentID: &deptID}, nil)
	f.depts.On("GetByID", mock.Anything, deptID).Return(&models.Department{ID: deptID, Name: "Physics"}, nil)
	f.faculty.On("Count", mock.Anything, repositories.FacultyFilter{DepartmentID: &deptID}).Return(int64Ptr(1), nil)
	f.faculty.On("List", mock.Anything, repositories.FacultyFilter{DepartmentID: &deptID}).Return([]*models.FacultyMember{member}, nil)
	f.courses.On("Count", mock.Anything, models.CourseFilter{DepartmentID: &deptID}).Return(nil, nil)
	f.courses.On("List", mock.Anything, models.CourseFilter{DepartmentID: &deptID}).Return([]*models.Course{}, nil)
	f.certs.countAll = int64Ptr(2)
	f.certs.entries[member.ID] = []models.CertificateMetadata{
		{FileName: "a.pdf", CertificateName: "First Aid", FacultyName: "Ada Lovelace"},
		{FileName: "b.pdf", CertificateName: "ISO 9001", FacultyName: "Ada Lovelace"},
	}

	resp, err := f.svc.Build(context.Background(), user)

	require.NoError(t, err)
	assert.Equal(t, "Physics Dashboard", resp.Title)
	assert.Equal(t, map[string]int64{
		"Department Faculty": 1,
		"Department Courses": 0,
		"Certificates":       2,
	}, cardValues(resp.Cards))
	require.Len(t, resp.Tabs, 3)
	assert.Len(t, resp.Tabs[2].Tables[0].Rows, 2)
}

func TestFacultyDashboard(t *testing.T) {
	f := newDashboardFixture()
	user := models.Principal{UserID: uuid.New(), Role: models.RoleFaculty}
	member := &models.FacultyMember{ID: uuid.New(), FirstName: "Ada", LastName: "Lovelace", Title: "Dr.", DepartmentName: "Mathematics"}

	f.roles.On("GetUserRole", mock.Anything, user.UserID).Return(&models.UserRole{RoleName: models.RoleFaculty}, nil)
	f.faculty.On("GetByUserID", mock.Anything, user.UserID).Return(member, nil)
	f.courses.On("Count", mock.Anything, models.CourseFilter{FacultyID: &member.ID}).Return(nil, errors.New("boom"))
	f.courses.On("List", mock.Anything, models.CourseFilter{FacultyID: &member.ID}).Return([]*models.Course{}, nil)
	f.pubs.On("ListByFaculty", mock.Anything, member.ID).Return(nil, errors.New("boom"))
	f.hours.On("ListByFaculty", mock.Anything, member.ID).Return([]*models.OfficeHour{{DayOfWeek: "Monday"}, {DayOfWeek: "Friday", IsOnline: true}}, nil)
	f.certs.entries[member.ID] = []models.CertificateMetadata{{FileName: "a.pdf"}}

	resp, err := f.svc.Build(context.Background(), user)

	require.NoError(t, err)
	assert.Equal(t, "Welcome, Dr. Ada Lovelace", resp.Title)
	assert.Equal(t, map[string]int64{
		"My Courses":   0,
		"Publications": 0,
		"Office Hours": 2,
		"Certificates": 1,
	}, cardValues(resp.Cards))
	assert.Equal(t, "Online", resp.Tabs[1].Tables[0].Rows[1]["location"])
}

func TestFacultyDashboardWithoutProfile(t *testing.T) {
	f := newDashboardFixture()
	user := models.Principal{UserID: uuid.New(), Role: models.RoleFaculty}
	f.roles.On("GetUserRole", mock.Anything, user.UserID).Return(&models.UserRole{RoleName: models.RoleFaculty}, nil)
	f.faculty.On("GetByUserID", mock.Anything, user.UserID).Return(nil, apperrors.ErrFacultyMemberNotFound)

	resp, err := f.svc.Build(context.Background(), user)

	require.NoError(t, err)
	assert.NotEmpty(t, resp.Message)
	assert.Empty(t, resp.Cards)
}

func TestWorkloadTableOrdersByCredits(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	nameA, nameB := "Ada Lovelace", "Alan Turing"
	table := workloadTable([]*models.Course{
		{Code: "CS101", Credits: 3, FacultyID: &a, FacultyName: &nameA},
		{Code: "CS201", Credits: 4, FacultyID: &b, FacultyName: &nameB},
		{Code: "CS301", Credits: 3, FacultyID: &b, FacultyName: &nameB},
		{Code: "CS999", Credits: 5},
	})

	require.Len(t, table.Rows, 2)
	assert.Equal(t, "Alan Turing", table.Rows[0]["faculty"])
	assert.Equal(t, 7, table.Rows[0]["credits"])
	assert.Equal(t, 1, table.Rows[1]["courses"])
}
