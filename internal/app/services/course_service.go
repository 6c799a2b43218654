package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/yigit/facultyhub/internal/app/models"
	"github.com/yigit/facultyhub/internal/app/models/dto"
	"github.com/yigit/facultyhub/internal/app/repositories"
	"github.com/yigit/facultyhub/internal/pkg/apperrors"
	"github.com/yigit/facultyhub/internal/pkg/helpers"
)

// CourseService handles courses and teaching load assignment
type CourseService struct {
	courseRepo  repositories.ICourseRepository
	facultyRepo repositories.IFacultyMemberRepository
	access      *AccessChecker
	notifier    Notifier
	logger      zerolog.Logger
}

// NewCourseService creates a new CourseService
func NewCourseService(
	courseRepo repositories.ICourseRepository,
	facultyRepo repositories.IFacultyMemberRepository,
	access *AccessChecker,
	notifier Notifier,
	logger zerolog.Logger,
) *CourseService {
	return &CourseService{
		courseRepo:  courseRepo,
		facultyRepo: facultyRepo,
		access:      access,
		notifier:    notifier,
		logger:      logger,
	}
}

func courseFromRequest(req *dto.CreateCourseRequest) *models.Course {
	return &models.Course{
		Code:         strings.ToUpper(strings.TrimSpace(req.Code)),
		Name:         strings.TrimSpace(req.Name),
		Description:  helpers.OptionalStringPtr(req.Description),
		Credits:      req.Credits,
		Semester:     req.Semester,
		Year:         req.Year,
		DepartmentID: req.DepartmentID,
		FacultyID:    req.FacultyID,
	}
}

// checkTeacher verifies that facultyID exists and teaches in departmentID
func (s *CourseService) checkTeacher(ctx context.Context, facultyID *uuid.UUID, departmentID uuid.UUID) error {
	if facultyID == nil {
		return nil
	}
	member, err := s.facultyRepo.GetByID(ctx, *facultyID)
	if err != nil {
		return err
	}
	if member.DepartmentID != departmentID {
		return apperrors.NewValidationError("the assigned faculty member belongs to another department")
	}
	return nil
}

// CreateCourse creates a course in a department the actor manages
func (s *CourseService) CreateCourse(ctx context.Context, actor models.Principal, req *dto.CreateCourseRequest) (*models.Course, error) {
	course := courseFromRequest(req)
	if err := s.access.CanManageDepartment(ctx, actor, course.DepartmentID); err != nil {
		return nil, err
	}
	if err := s.checkTeacher(ctx, course.FacultyID, course.DepartmentID); err != nil {
		return nil, err
	}

	if err := s.courseRepo.Create(ctx, course); err != nil {
		return nil, err
	}

	s.logger.Info().Str("courseID", course.ID.String()).Str("code", course.Code).Msg("Course created")
	return s.courseRepo.GetByID(ctx, course.ID)
}

// GetCourse retrieves a course by ID
func (s *CourseService) GetCourse(ctx context.Context, id uuid.UUID) (*models.Course, error) {
	return s.courseRepo.GetByID(ctx, id)
}

// ListCourses lists courses matching filter
func (s *CourseService) ListCourses(ctx context.Context, filter models.CourseFilter) ([]*models.Course, error) {
	return s.courseRepo.List(ctx, filter)
}

// UpdateCourse replaces a course. Both the current and the new department must be manageable by the actor.
func (s *CourseService) UpdateCourse(ctx context.Context, actor models.Principal, id uuid.UUID, req *dto.UpdateCourseRequest) (*models.Course, error) {
	existing, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.access.CanManageDepartment(ctx, actor, existing.DepartmentID); err != nil {
		return nil, err
	}

	course := courseFromRequest((*dto.CreateCourseRequest)(req))
	course.ID = id
	if course.DepartmentID != existing.DepartmentID {
		if err := s.access.CanManageDepartment(ctx, actor, course.DepartmentID); err != nil {
			return nil, err
		}
	}
	if err := s.checkTeacher(ctx, course.FacultyID, course.DepartmentID); err != nil {
		return nil, err
	}

	if err := s.courseRepo.Update(ctx, course); err != nil {
		return nil, err
	}
	return s.courseRepo.GetByID(ctx, id)
}

// AssignFaculty sets or clears the teacher of a course
func (s *CourseService) AssignFaculty(ctx context.Context, actor models.Principal, courseID uuid.UUID, facultyID *uuid.UUID) (*models.Course, error) {
	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if err := s.access.CanManageDepartment(ctx, actor, course.DepartmentID); err != nil {
		return nil, err
	}
	if err := s.checkTeacher(ctx, facultyID, course.DepartmentID); err != nil {
		return nil, err
	}

	if err := s.courseRepo.AssignFaculty(ctx, courseID, facultyID); err != nil {
		return nil, err
	}

	updated, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	if facultyID != nil {
		if member, err := s.facultyRepo.GetByID(ctx, *facultyID); err == nil && member.UserID != nil {
			s.notifier.Notify(*member.UserID, models.Success("New teaching assignment", "You have been assigned to "+updated.Code+" "+updated.Name+"."))
		}
	}
	s.logger.Info().Str("courseID", courseID.String()).Msg("Teaching load updated")
	return updated, nil
}

// DeleteCourse deletes a course
func (s *CourseService) DeleteCourse(ctx context.Context, actor models.Principal, id uuid.UUID) error {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.access.CanManageDepartment(ctx, actor, course.DepartmentID); err != nil {
		return err
	}
	return s.courseRepo.Delete(ctx, id)
}
