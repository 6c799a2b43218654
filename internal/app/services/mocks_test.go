package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/yigit/facultyhub/internal/app/models"
	"github.com/yigit/facultyhub/internal/app/repositories"
)

func ptrArg[T any](args mock.Arguments, i int) *T {
	if v := args.Get(i); v != nil {
		return v.(*T)
	}
	return nil
}

func sliceArg[T any](args mock.Arguments, i int) []T {
	if v := args.Get(i); v != nil {
		return v.([]T)
	}
	return nil
}

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	if args.Error(0) == nil && user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)
	return ptrArg[models.User](args, 0), args.Error(1)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	return ptrArg[models.User](args, 0), args.Error(1)
}

func (m *mockUserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepo) UpdateLastSignIn(ctx context.Context, id uuid.UUID, at time.Time) error {
	return m.Called(ctx, id, at).Error(0)
}

type mockSessionRepo struct{ mock.Mock }

func (m *mockSessionRepo) Create(ctx context.Context, session *models.Session) error {
	args := m.Called(ctx, session)
	if args.Error(0) == nil && session.ID == uuid.Nil {
		session.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *mockSessionRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Session, error) {
	args := m.Called(ctx, id)
	return ptrArg[models.Session](args, 0), args.Error(1)
}

func (m *mockSessionRepo) GetByRefreshToken(ctx context.Context, token string) (*models.Session, error) {
	args := m.Called(ctx, token)
	return ptrArg[models.Session](args, 0), args.Error(1)
}

func (m *mockSessionRepo) RotateRefreshToken(ctx context.Context, id uuid.UUID, token string, expiresAt time.Time) error {
	return m.Called(ctx, id, token, expiresAt).Error(0)
}

func (m *mockSessionRepo) Revoke(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockSessionRepo) RevokeAllForUser(ctx context.Context, userID uuid.UUID) error {
	return m.Called(ctx, userID).Error(0)
}

type mockRoleRepo struct{ mock.Mock }

func (m *mockRoleRepo) EnsureRoles(ctx context.Context, names ...models.RoleName) error {
	return m.Called(ctx, names).Error(0)
}

func (m *mockRoleRepo) GetByName(ctx context.Context, name models.RoleName) (*models.Role, error) {
	args := m.Called(ctx, name)
	return ptrArg[models.Role](args, 0), args.Error(1)
}

func (m *mockRoleRepo) List(ctx context.Context) ([]*models.Role, error) {
	args := m.Called(ctx)
	return sliceArg[*models.Role](args, 0), args.Error(1)
}

func (m *mockRoleRepo) GetUserRole(ctx context.Context, userID uuid.UUID) (*models.UserRole, error) {
	args := m.Called(ctx, userID)
	return ptrArg[models.UserRole](args, 0), args.Error(1)
}

func (m *mockRoleRepo) AssignUserRole(ctx context.Context, ur *models.UserRole) error {
	return m.Called(ctx, ur).Error(0)
}

func (m *mockRoleRepo) RemoveUserRole(ctx context.Context, userID uuid.UUID) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *mockRoleRepo) ListAssignments(ctx context.Context) ([]*models.UserRoleAssignment, error) {
	args := m.Called(ctx)
	return sliceArg[*models.UserRoleAssignment](args, 0), args.Error(1)
}

type mockDepartmentRepo struct{ mock.Mock }

func (m *mockDepartmentRepo) Create(ctx context.Context, d *models.Department) error {
	args := m.Called(ctx, d)
	if args.Error(0) == nil && d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *mockDepartmentRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Department, error) {
	args := m.Called(ctx, id)
	return ptrArg[models.Department](args, 0), args.Error(1)
}

func (m *mockDepartmentRepo) List(ctx context.Context) ([]*models.Department, error) {
	args := m.Called(ctx)
	return sliceArg[*models.Department](args, 0), args.Error(1)
}

func (m *mockDepartmentRepo) Update(ctx context.Context, d *models.Department) error {
	return m.Called(ctx, d).Error(0)
}

func (m *mockDepartmentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockDepartmentRepo) ExistsByNameOrCode(ctx context.Context, name, code string, excludeID *uuid.UUID) (bool, error) {
	args := m.Called(ctx, name, code, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *mockDepartmentRepo) Count(ctx context.Context) (*int64, error) {
	args := m.Called(ctx)
	return ptrArg[int64](args, 0), args.Error(1)
}

type mockFacultyRepo struct{ mock.Mock }

func (m *mockFacultyRepo) Create(ctx context.Context, f *models.FacultyMember) error {
	args := m.Called(ctx, f)
	if args.Error(0) == nil && f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *mockFacultyRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.FacultyMember, error) {
	args := m.Called(ctx, id)
	return ptrArg[models.FacultyMember](args, 0), args.Error(1)
}

func (m *mockFacultyRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.FacultyMember, error) {
	args := m.Called(ctx, userID)
	return ptrArg[models.FacultyMember](args, 0), args.Error(1)
}

func (m *mockFacultyRepo) List(ctx context.Context, filter repositories.FacultyFilter) ([]*models.FacultyMember, error) {
	args := m.Called(ctx, filter)
	return sliceArg[*models.FacultyMember](args, 0), args.Error(1)
}

func (m *mockFacultyRepo) Count(ctx context.Context, filter repositories.FacultyFilter) (*int64, error) {
	args := m.Called(ctx, filter)
	return ptrArg[int64](args, 0), args.Error(1)
}

func (m *mockFacultyRepo) Update(ctx context.Context, f *models.FacultyMember) error {
	return m.Called(ctx, f).Error(0)
}

func (m *mockFacultyRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockCourseRepo struct{ mock.Mock }

func (m *mockCourseRepo) Create(ctx context.Context, c *models.Course) error {
	args := m.Called(ctx, c)
	if args.Error(0) == nil && c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *mockCourseRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Course, error) {
	args := m.Called(ctx, id)
	return ptrArg[models.Course](args, 0), args.Error(1)
}

func (m *mockCourseRepo) List(ctx context.Context, filter models.CourseFilter) ([]*models.Course, error) {
	args := m.Called(ctx, filter)
	return sliceArg[*models.Course](args, 0), args.Error(1)
}

func (m *mockCourseRepo) Count(ctx context.Context, filter models.CourseFilter) (*int64, error) {
	args := m.Called(ctx, filter)
	return ptrArg[int64](args, 0), args.Error(1)
}

func (m *mockCourseRepo) Update(ctx context.Context, c *models.Course) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockCourseRepo) AssignFaculty(ctx context.Context, courseID uuid.UUID, facultyID *uuid.UUID) error {
	return m.Called(ctx, courseID, facultyID).Error(0)
}

func (m *mockCourseRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockOfficeHourRepo struct{ mock.Mock }

func (m *mockOfficeHourRepo) Create(ctx context.Context, oh *models.OfficeHour) error {
	return m.Called(ctx, oh).Error(0)
}

func (m *mockOfficeHourRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.OfficeHour, error) {
	args := m.Called(ctx, id)
	return ptrArg[models.OfficeHour](args, 0), args.Error(1)
}

func (m *mockOfficeHourRepo) ListByFaculty(ctx context.Context, facultyID uuid.UUID) ([]*models.OfficeHour, error) {
	args := m.Called(ctx, facultyID)
	return sliceArg[*models.OfficeHour](args, 0), args.Error(1)
}

func (m *mockOfficeHourRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockPublicationRepo struct{ mock.Mock }

func (m *mockPublicationRepo) Create(ctx context.Context, p *models.Publication) error {
	return m.Called(ctx, p).Error(0)
}

func (m *mockPublicationRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Publication, error) {
	args := m.Called(ctx, id)
	return ptrArg[models.Publication](args, 0), args.Error(1)
}

func (m *mockPublicationRepo) ListByFaculty(ctx context.Context, facultyID uuid.UUID) ([]*models.Publication, error) {
	args := m.Called(ctx, facultyID)
	return sliceArg[*models.Publication](args, 0), args.Error(1)
}

func (m *mockPublicationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockEmailService struct{ mock.Mock }

func (m *mockEmailService) SendWelcomeEmail(toEmail, toName string) error {
	return m.Called(toEmail, toName).Error(0)
}

func (m *mockEmailService) SendAccountCreatedEmail(toEmail, toName, role string) error {
	return m.Called(toEmail, toName, role).Error(0)
}

// recordingNotifier keeps every notification it was asked to deliver
type recordingNotifier struct {
	sent []models.Notification
}

func (n *recordingNotifier) Notify(_ uuid.UUID, note models.Notification) {
	n.sent = append(n.sent, note)
}

// fakeTxManager runs fn against the given repositories and records whether it would have committed
type fakeTxManager struct {
	repos     *repositories.Repositories
	commits   int
	rollbacks int
}

func (f *fakeTxManager) WithTransaction(ctx context.Context, fn repositories.TxFn) error {
	if err := fn(ctx, f.repos); err != nil {
		f.rollbacks++
		return err
	}
	f.commits++
	return nil
}

func int64Ptr(n int64) *int64 { return &n }

func uuidPtr(id uuid.UUID) *uuid.UUID { return &id }
