package services

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/yigit/facultyhub/internal/app/models"
	"github.com/yigit/facultyhub/internal/app/models/dto"
	"github.com/yigit/facultyhub/internal/app/repositories"
	"github.com/yigit/facultyhub/internal/pkg/apperrors"
	"github.com/yigit/facultyhub/internal/pkg/helpers"
)

// NoRoleMessage is shown to users without a role assignment
const NoRoleMessage = "No role assigned. Please contact administrator."

// CertificateIndex is the part of CertificateService the dashboards read
type CertificateIndex interface {
	Entries(ctx context.Context, facultyID uuid.UUID) ([]models.CertificateMetadata, error)
	CountForFaculty(ctx context.Context, facultyID uuid.UUID) (*int64, error)
	CountAll(ctx context.Context, departmentID *uuid.UUID) (*int64, error)
}

// DashboardService builds the role specific dashboard view models
type DashboardService struct {
	repos        *repositories.Repositories
	certificates CertificateIndex
	logger       zerolog.Logger
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(repos *repositories.Repositories, certificates CertificateIndex, logger zerolog.Logger) *DashboardService {
	return &DashboardService{repos: repos, certificates: certificates, logger: logger}
}

// countOrZero renders a count widget value: a nil count or a failed query shows 0
func (s *DashboardService) countOrZero(widget string, n *int64, err error) int64 {
	if err != nil {
		s.logger.Warn().Err(err).Str("widget", widget).Msg("Dashboard count failed, showing 0")
		return 0
	}
	if n == nil {
		return 0
	}
	return *n
}

func lenPtr(n int) *int64 {
	v := int64(n)
	return &v
}

// Build returns the dashboard of the principal's stored role
func (s *DashboardService) Build(ctx context.Context, principal models.Principal) (*dto.DashboardResponse, error) {
	ur, err := s.repos.RoleRepository.GetUserRole(ctx, principal.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNoRoleAssigned) {
			return &dto.DashboardResponse{Title: "Dashboard", Message: NoRoleMessage, Cards: []dto.DashboardCard{}, Tabs: []dto.DashboardTab{}}, nil
		}
		return nil, fmt.Errorf("error resolving role: %w", err)
	}

	switch ur.RoleName {
	case models.RoleAdmin:
		return s.adminDashboard(ctx), nil
	case models.RoleHOD:
		return s.hodDashboard(ctx, ur.DepartmentID), nil
	case models.RoleFaculty:
		return s.facultyDashboard(ctx, principal.UserID), nil
	}
	return &dto.DashboardResponse{Title: "Dashboard", Message: NoRoleMessage, Cards: []dto.DashboardCard{}, Tabs: []dto.DashboardTab{}}, nil
}

func (s *DashboardService) adminDashboard(ctx context.Context) *dto.DashboardResponse {
	facultyCount, err := s.repos.FacultyMemberRepository.Count(ctx, repositories.FacultyFilter{})
	faculty := s.countOrZero("faculty-members", facultyCount, err)

	deptCount, err := s.repos.DepartmentRepository.Count(ctx)
	departments := s.countOrZero("departments", deptCount, err)

	courseCount, err := s.repos.CourseRepository.Count(ctx, models.CourseFilter{})
	courses := s.countOrZero("active-courses", courseCount, err)

	certCount, err := s.certificates.CountAll(ctx, nil)
	certs := s.countOrZero("certifications", certCount, err)

	allCourses := s.courses(ctx, models.CourseFilter{})
	members := s.facultyMembers(ctx, nil)

	return &dto.DashboardResponse{
		Role:  models.RoleAdmin,
		Title: "Admin Dashboard",
		Cards: []dto.DashboardCard{
			{Key: "faculty-members", Title: "Faculty Members", Value: faculty, Description: "Across all departments"},
			{Key: "departments", Title: "Departments", Value: departments},
			{Key: "active-courses", Title: "Active Courses", Value: courses},
			{Key: "certifications", Title: "Certifications", Value: certs},
		},
		Tabs: []dto.DashboardTab{
			{Key: "overview", Label: "Overview", Tables: []dto.DashboardTable{
				s.roleTable(ctx),
				teachingLoadTable(allCourses),
			}},
			{Key: "faculty", Label: "Faculty", Tables: []dto.DashboardTable{facultyTable(members)}},
			{Key: "workloads", Label: "Workloads", Tables: []dto.DashboardTable{workloadTable(allCourses)}},
			{Key: "settings", Label: "Settings", Tables: []dto.DashboardTable{settingsTable()}},
		},
	}
}

func (s *DashboardService) hodDashboard(ctx context.Context, departmentID *uuid.UUID) *dto.DashboardResponse {
	resp := &dto.DashboardResponse{Role: models.RoleHOD, Title: "HOD Dashboard"}
	if departmentID == nil {
		resp.Message = "Your HOD role is not linked to a department. Please contact administrator."
		resp.Cards = []dto.DashboardCard{}
		resp.Tabs = []dto.DashboardTab{}
		return resp
	}

	if dept, err := s.repos.DepartmentRepository.GetByID(ctx, *departmentID); err == nil {
		resp.Title = dept.Name + " Dashboard"
	} else {
		s.logger.Warn().Err(err).Str("departmentID", departmentID.String()).Msg("Could not load HOD department")
	}

	filter := repositories.FacultyFilter{DepartmentID: departmentID}
	facultyCount, err := s.repos.FacultyMemberRepository.Count(ctx, filter)
	faculty := s.countOrZero("department-faculty", facultyCount, err)

	courseFilter := models.CourseFilter{DepartmentID: departmentID}
	courseCount, err := s.repos.CourseRepository.Count(ctx, courseFilter)
	courses := s.countOrZero("department-courses", courseCount, err)

	certCount, err := s.certificates.CountAll(ctx, departmentID)
	certs := s.countOrZero("certificates", certCount, err)

	members := s.facultyMembers(ctx, departmentID)
	resp.Cards = []dto.DashboardCard{
		{Key: "department-faculty", Title: "Department Faculty", Value: faculty},
		{Key: "department-courses", Title: "Department Courses", Value: courses},
		{Key: "certificates", Title: "Certificates", Value: certs},
	}
	resp.Tabs = []dto.DashboardTab{
		{Key: "faculty", Label: "Faculty", Tables: []dto.DashboardTable{facultyTable(members)}},
		{Key: "courses", Label: "Courses", Tables: []dto.DashboardTable{courseTable(s.courses(ctx, courseFilter))}},
		{Key: "certificates", Label: "Certificates", Tables: []dto.DashboardTable{s.certificateTable(ctx, members)}},
	}
	return resp
}

func (s *DashboardService) facultyDashboard(ctx context.Context, userID uuid.UUID) *dto.DashboardResponse {
	resp := &dto.DashboardResponse{Role: models.RoleFaculty, Title: "Faculty Dashboard"}

	member, err := s.repos.FacultyMemberRepository.GetByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrFacultyMemberNotFound) {
			s.logger.Warn().Err(err).Str("userID", userID.String()).Msg("Could not load faculty profile")
		}
		resp.Message = "No faculty profile is linked to your account. Please contact administrator."
		resp.Cards = []dto.DashboardCard{}
		resp.Tabs = []dto.DashboardTab{}
		return resp
	}
	resp.Title = fmt.Sprintf("Welcome, %s %s", member.Title, member.FullName())

	courseFilter := models.CourseFilter{FacultyID: &member.ID}
	courseCount, err := s.repos.CourseRepository.Count(ctx, courseFilter)
	courses := s.countOrZero("my-courses", courseCount, err)

	pubs, pubErr := s.repos.PublicationRepository.ListByFaculty(ctx, member.ID)
	hours, hoursErr := s.repos.OfficeHourRepository.ListByFaculty(ctx, member.ID)
	certCount, err := s.certificates.CountForFaculty(ctx, member.ID)
	certs := s.countOrZero("certificates", certCount, err)

	resp.Cards = []dto.DashboardCard{
		{Key: "my-courses", Title: "My Courses", Value: courses},
		{Key: "publications", Title: "Publications", Value: s.countOrZero("publications", lenPtr(len(pubs)), pubErr)},
		{Key: "office-hours", Title: "Office Hours", Value: s.countOrZero("office-hours", lenPtr(len(hours)), hoursErr)},
		{Key: "certificates", Title: "Certificates", Value: certs, Description: member.DepartmentName},
	}
	resp.Tabs = []dto.DashboardTab{
		{Key: "courses", Label: "My Courses", Tables: []dto.DashboardTable{courseTable(s.courses(ctx, courseFilter))}},
		{Key: "office-hours", Label: "Office Hours", Tables: []dto.DashboardTable{officeHourTable(hours)}},
		{Key: "publications", Label: "Publications", Tables: []dto.DashboardTable{publicationTable(pubs)}},
		{Key: "certificates", Label: "Certificates", Tables: []dto.DashboardTable{s.certificateTable(ctx, []*models.FacultyMember{member})}},
	}
	return resp
}

func (s *DashboardService) courses(ctx context.Context, filter models.CourseFilter) []*models.Course {
	courses, err := s.repos.CourseRepository.List(ctx, filter)
	if err != nil {
		s.logger.Warn().Err(err).Msg("Dashboard course listing failed")
		return nil
	}
	return courses
}

func (s *DashboardService) facultyMembers(ctx context.Context, departmentID *uuid.UUID) []*models.FacultyMember {
	members, err := s.repos.FacultyMemberRepository.List(ctx, repositories.FacultyFilter{DepartmentID: departmentID})
	if err != nil {
		s.logger.Warn().Err(err).Msg("Dashboard faculty listing failed")
		return nil
	}
	return members
}

func (s *DashboardService) roleTable(ctx context.Context) dto.DashboardTable {
	t := newTable("role-management", "Role Management", "name", "Name", "email", "Email", "role", "Role", "department", "Department")
	assignments, err := s.repos.RoleRepository.ListAssignments(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("Dashboard role listing failed")
		return t
	}
	for _, a := range assignments {
		t.Rows = append(t.Rows, map[string]any{
			"userId":     a.UserID,
			"name":       a.FirstName + " " + a.LastName,
			"email":      a.Email,
			"role":       a.RoleName.Label(),
			"department": helpers.StringValue(a.DepartmentName),
		})
	}
	return t
}

func (s *DashboardService) certificateTable(ctx context.Context, members []*models.FacultyMember) dto.DashboardTable {
	t := newTable("certificates", "Certificates", "certificateName", "Certificate", "facultyName", "Faculty", "issueDate", "Issued", "uploadDate", "Uploaded")
	for _, m := range members {
		entries, err := s.certificates.Entries(ctx, m.ID)
		if err != nil {
			s.logger.Warn().Err(err).Str("facultyID", m.ID.String()).Msg("Dashboard certificate listing failed")
			continue
		}
		for _, e := range entries {
			t.Rows = append(t.Rows, map[string]any{
				"facultyId":       e.FacultyID,
				"fileName":        e.FileName,
				"certificateName": e.CertificateName,
				"facultyName":     e.FacultyName,
				"issueDate":       e.IssueDate,
				"uploadDate":      e.UploadDate,
			})
		}
	}
	return t
}

// newTable takes alternating column keys and labels
func newTable(key, title string, columns ...string) dto.DashboardTable {
	t := dto.DashboardTable{Key: key, Title: title, Rows: []map[string]any{}}
	for i := 0; i+1 < len(columns); i += 2 {
		t.Columns = append(t.Columns, dto.TableColumn{Key: columns[i], Label: columns[i+1]})
	}
	return t
}

func facultyTable(members []*models.FacultyMember) dto.DashboardTable {
	t := newTable("faculty", "Faculty Members", "name", "Name", "title", "Title", "email", "Email", "department", "Department")
	for _, m := range members {
		t.Rows = append(t.Rows, map[string]any{
			"id":         m.ID,
			"name":       m.FullName(),
			"title":      m.Title,
			"email":      m.Email,
			"department": m.DepartmentName,
		})
	}
	return t
}

func courseTable(courses []*models.Course) dto.DashboardTable {
	t := newTable("courses", "Courses", "code", "Code", "name", "Name", "credits", "Credits", "semester", "Semester", "faculty", "Faculty")
	for _, c := range courses {
		t.Rows = append(t.Rows, map[string]any{
			"id":       c.ID,
			"code":     c.Code,
			"name":     c.Name,
			"credits":  c.Credits,
			"semester": fmt.Sprintf("%s %d", c.Semester, c.Year),
			"faculty":  helpers.StringValue(c.FacultyName),
		})
	}
	return t
}

func teachingLoadTable(courses []*models.Course) dto.DashboardTable {
	t := newTable("teaching-load", "Teaching Load", "code", "Course", "department", "Department", "faculty", "Assigned To")
	for _, c := range courses {
		assigned := helpers.StringValue(c.FacultyName)
		if assigned == "" {
			assigned = "Unassigned"
		}
		t.Rows = append(t.Rows, map[string]any{
			"id":         c.ID,
			"code":       c.Code,
			"department": c.DepartmentName,
			"faculty":    assigned,
		})
	}
	return t
}

// workloadTable groups assigned courses by faculty member, heaviest load first
func workloadTable(courses []*models.Course) dto.DashboardTable {
	t := newTable("workloads", "Courses by Faculty", "faculty", "Faculty", "courses", "Courses", "credits", "Credits")

	type load struct {
		name    string
		courses int
		credits int
	}
	byFaculty := map[uuid.UUID]*load{}
	for _, c := range courses {
		if c.FacultyID == nil {
			continue
		}
		l, ok := byFaculty[*c.FacultyID]
		if !ok {
			l = &load{name: helpers.StringValue(c.FacultyName)}
			byFaculty[*c.FacultyID] = l
		}
		l.courses++
		l.credits += c.Credits
	}

	loads := make([]*load, 0, len(byFaculty))
	for _, l := range byFaculty {
		loads = append(loads, l)
	}
	sort.Slice(loads, func(i, j int) bool {
		if loads[i].credits != loads[j].credits {
			return loads[i].credits > loads[j].credits
		}
		return loads[i].name < loads[j].name
	})

	for _, l := range loads {
		t.Rows = append(t.Rows, map[string]any{"faculty": l.name, "courses": l.courses, "credits": l.credits})
	}
	return t
}

func officeHourTable(hours []*models.OfficeHour) dto.DashboardTable {
	t := newTable("office-hours", "Office Hours", "day", "Day", "time", "Time", "location", "Location")
	for _, h := range hours {
		location := helpers.StringValue(h.Location)
		if h.IsOnline {
			location = "Online"
		}
		t.Rows = append(t.Rows, map[string]any{
			"id":       h.ID,
			"day":      h.DayOfWeek,
			"time":     h.StartTime + " - " + h.EndTime,
			"location": location,
		})
	}
	return t
}

func publicationTable(pubs []*models.Publication) dto.DashboardTable {
	t := newTable("publications", "Publications", "title", "Title", "journal", "Journal", "date", "Published")
	for _, p := range pubs {
		date := ""
		if p.PublicationDate != nil {
			date = p.PublicationDate.Format(helpers.DateLayout)
		}
		t.Rows = append(t.Rows, map[string]any{
			"id":      p.ID,
			"title":   p.Title,
			"journal": helpers.StringValue(p.Journal),
			"date":    date,
		})
	}
	return t
}

// settingsTable lists system settings entries. They are informational only.
func settingsTable() dto.DashboardTable {
	t := newTable("system-settings", "System Settings", "setting", "Setting", "description", "Description")
	for _, row := range [][2]string{
		{"Academic Year", "Configure the current academic year and semesters"},
		{"Departments", "Manage department names and codes"},
		{"Roles", "Assign admin, HOD and faculty access"},
		{"Certificates", "Allowed file types and size limits for uploads"},
	} {
		t.Rows = append(t.Rows, map[string]any{"setting": row[0], "description": row[1]})
	}
	return t
}
