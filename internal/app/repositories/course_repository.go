package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/yigit/facultyhub/internal/app/models"
	"github.com/yigit/facultyhub/internal/pkg/apperrors"
	"github.com/yigit/facultyhub/internal/pkg/dberrors"
	"github.com/yigit/facultyhub/internal/pkg/logger"
)

// ICourseRepository defines course persistence, including teaching load assignment
type ICourseRepository interface {
	Create(ctx context.Context, course *models.Course) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Course, error)
	List(ctx context.Context, filter models.CourseFilter) ([]*models.Course, error)
	Count(ctx context.Context, filter models.CourseFilter) (*int64, error)
	Update(ctx context.Context, course *models.Course) error
	AssignFaculty(ctx context.Context, courseID uuid.UUID, facultyID *uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// CourseRepository handles database operations for courses
type CourseRepository struct {
	db Querier
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db Querier) *CourseRepository {
	return &CourseRepository{db: db, sb: newStatementBuilder()}
}

func (r *CourseRepository) selectBase() squirrel.SelectBuilder {
	return r.sb.Select(
		"c.id", "c.code", "c.name", "c.description", "c.credits", "c.semester", "c.year",
		"c.department_id", "c.faculty_id", "c.created_at", "c.updated_at",
		"COALESCE(d.name, '')", "NULLIF(CONCAT_WS(' ', f.first_name, f.last_name), '')",
	).
		From("courses c").
		LeftJoin("departments d ON d.id = c.department_id").
		LeftJoin("faculty_members f ON f.id = c.faculty_id")
}

func scanCourse(row rowScanner) (*models.Course, error) {
	var c models.Course
	err := row.Scan(&c.ID, &c.Code, &c.Name, &c.Description, &c.Credits, &c.Semester, &c.Year,
		&c.DepartmentID, &c.FacultyID, &c.CreatedAt, &c.UpdatedAt, &c.DepartmentName, &c.FacultyName)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func applyCourseFilter(q squirrel.SelectBuilder, filter models.CourseFilter) squirrel.SelectBuilder {
	if filter.DepartmentID != nil {
		q = q.Where(squirrel.Eq{"c.department_id": *filter.DepartmentID})
	}
	if filter.FacultyID != nil {
		q = q.Where(squirrel.Eq{"c.faculty_id": *filter.FacultyID})
	}
	return q
}

// Create inserts a course
func (r *CourseRepository) Create(ctx context.Context, c *models.Course) error {
	sql, args, err := r.sb.Insert("courses").
		Columns("code", "name", "description", "credits", "semester", "year", "department_id", "faculty_id").
		Values(c.Code, c.Name, c.Description, c.Credits, c.Semester, c.Year, c.DepartmentID, c.FacultyID).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create course query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt); err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return apperrors.ErrCourseAlreadyExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewResourceNotFoundError("department or faculty member does not exist")
		}
		logger.Error().Err(err).Str("code", c.Code).Msg("Error creating course")
		return fmt.Errorf("error creating course: %w", err)
	}
	return nil
}

// GetByID retrieves a course with department and faculty names
func (r *CourseRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Course, error) {
	sql, args, err := r.selectBase().Where(squirrel.Eq{"c.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get course query: %w", err)
	}

	c, err := scanCourse(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrCourseNotFound
		}
		logger.Error().Err(err).Str("courseID", id.String()).Msg("Error retrieving course")
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}
	return c, nil
}

// List retrieves courses ordered by code
func (r *CourseRepository) List(ctx context.Context, filter models.CourseFilter) ([]*models.Course, error) {
	sql, args, err := applyCourseFilter(r.selectBase(), filter).OrderBy("c.code").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list courses query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing courses")
		return nil, fmt.Errorf("error listing courses: %w", err)
	}
	defer rows.Close()

	courses := make([]*models.Course, 0)
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning course: %w", err)
		}
		courses = append(courses, c)
	}
	return courses, rows.Err()
}

// Count returns the number of courses matching filter
func (r *CourseRepository) Count(ctx context.Context, filter models.CourseFilter) (*int64, error) {
	return countRows(ctx, r.db, applyCourseFilter(r.sb.Select("COUNT(*)").From("courses c"), filter))
}

// Update saves the editable fields of a course
func (r *CourseRepository) Update(ctx context.Context, c *models.Course) error {
	sql, args, err := r.sb.Update("courses").
		Set("code", c.Code).
		Set("name", c.Name).
		Set("description", c.Description).
		Set("credits", c.Credits).
		Set("semester", c.Semester).
		Set("year", c.Year).
		Set("department_id", c.DepartmentID).
		Set("faculty_id", c.FacultyID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": c.ID}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update course query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&c.UpdatedAt); err != nil {
		switch {
		case dberrors.IsNoRows(err):
			return apperrors.ErrCourseNotFound
		case dberrors.IsDuplicateKeyError(err):
			return apperrors.ErrCourseAlreadyExists
		case dberrors.IsForeignKeyViolation(err):
			return apperrors.NewResourceNotFoundError("department or faculty member does not exist")
		}
		logger.Error().Err(err).Str("courseID", c.ID.String()).Msg("Error updating course")
		return fmt.Errorf("error updating course: %w", err)
	}
	return nil
}

// AssignFaculty sets or clears (nil) the faculty member teaching a course
func (r *CourseRepository) AssignFaculty(ctx context.Context, courseID uuid.UUID, facultyID *uuid.UUID) error {
	sql, args, err := r.sb.Update("courses").
		Set("faculty_id", facultyID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": courseID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build assign faculty query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrFacultyMemberNotFound
		}
		logger.Error().Err(err).Str("courseID", courseID.String()).Msg("Error assigning faculty to course")
		return fmt.Errorf("error assigning faculty: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}
	return nil
}

// Delete removes a course
func (r *CourseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := r.sb.Delete("courses").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete course query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("courseID", id.String()).Msg("Error deleting course")
		return fmt.Errorf("error deleting course: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}
	return nil
}
