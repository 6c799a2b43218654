package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/yigit/facultyhub/internal/app/models"
	"github.com/yigit/facultyhub/internal/pkg/apperrors"
	"github.com/yigit/facultyhub/internal/pkg/dberrors"
	"github.com/yigit/facultyhub/internal/pkg/logger"
)

// FacultyFilter narrows faculty member listings. Zero values are ignored.
type FacultyFilter struct {
	DepartmentID *uuid.UUID
	Search       string
	Limit        uint64
	Offset       uint64
}

// IFacultyMemberRepository defines faculty member persistence
type IFacultyMemberRepository interface {
	Create(ctx context.Context, member *models.FacultyMember) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.FacultyMember, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.FacultyMember, error)
	List(ctx context.Context, filter FacultyFilter) ([]*models.FacultyMember, error)
	Count(ctx context.Context, filter FacultyFilter) (*int64, error)
	Update(ctx context.Context, member *models.FacultyMember) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// FacultyMemberRepository handles database operations for faculty members
type FacultyMemberRepository struct {
	db Querier
	sb squirrel.StatementBuilderType
}

// NewFacultyMemberRepository creates a new FacultyMemberRepository
func NewFacultyMemberRepository(db Querier) *FacultyMemberRepository {
	return &FacultyMemberRepository{db: db, sb: newStatementBuilder()}
}

var facultyMemberColumns = []string{
	"f.id", "f.first_name", "f.last_name", "f.title", "f.email", "f.phone", "f.office_location",
	"f.bio", "f.profile_image_url", "f.department_id", "f.user_id", "f.created_at", "f.updated_at",
	"COALESCE(d.name, '')",
}

func scanFacultyMember(row rowScanner) (*models.FacultyMember, error) {
	var f models.FacultyMember
	err := row.Scan(&f.ID, &f.FirstName, &f.LastName, &f.Title, &f.Email, &f.Phone, &f.OfficeLocation,
		&f.Bio, &f.ProfileImageURL, &f.DepartmentID, &f.UserID, &f.CreatedAt, &f.UpdatedAt, &f.DepartmentName)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *FacultyMemberRepository) selectBase() squirrel.SelectBuilder {
	return r.sb.Select(facultyMemberColumns...).
		From("faculty_members f").
		LeftJoin("departments d ON d.id = f.department_id")
}

func applyFacultyFilter(q squirrel.SelectBuilder, filter FacultyFilter) squirrel.SelectBuilder {
	if filter.DepartmentID != nil {
		q = q.Where(squirrel.Eq{"f.department_id": *filter.DepartmentID})
	}
	if s := strings.TrimSpace(filter.Search); s != "" {
		like := "%" + s + "%"
		q = q.Where(squirrel.Or{
			squirrel.ILike{"f.first_name": like},
			squirrel.ILike{"f.last_name": like},
			squirrel.ILike{"f.email": like},
		})
	}
	return q
}

// Create inserts a faculty member
func (r *FacultyMemberRepository) Create(ctx context.Context, m *models.FacultyMember) error {
	m.Email = strings.ToLower(strings.TrimSpace(m.Email))

	sql, args, err := r.sb.Insert("faculty_members").
		Columns("first_name", "last_name", "title", "email", "phone", "office_location", "bio",
			"profile_image_url", "department_id", "user_id").
		Values(m.FirstName, m.LastName, m.Title, m.Email, m.Phone, m.OfficeLocation, m.Bio,
			m.ProfileImageURL, m.DepartmentID, m.UserID).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create faculty member query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt); err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return apperrors.ErrFacultyMemberAlreadyExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrDepartmentNotFound
		}
		logger.Error().Err(err).Str("email", m.Email).Msg("Error creating faculty member")
		return fmt.Errorf("error creating faculty member: %w", err)
	}
	return nil
}

func (r *FacultyMemberRepository) getOne(ctx context.Context, where squirrel.Sqlizer) (*models.FacultyMember, error) {
	sql, args, err := r.selectBase().Where(where).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get faculty member query: %w", err)
	}

	m, err := scanFacultyMember(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrFacultyMemberNotFound
		}
		logger.Error().Err(err).Msg("Error retrieving faculty member")
		return nil, fmt.Errorf("error retrieving faculty member: %w", err)
	}
	return m, nil
}

// GetByID retrieves a faculty member with the department name
func (r *FacultyMemberRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.FacultyMember, error) {
	return r.getOne(ctx, squirrel.Eq{"f.id": id})
}

// GetByUserID retrieves the faculty profile linked to a login account
func (r *FacultyMemberRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.FacultyMember, error) {
	return r.getOne(ctx, squirrel.Eq{"f.user_id": userID})
}

// List retrieves faculty members ordered by name
func (r *FacultyMemberRepository) List(ctx context.Context, filter FacultyFilter) ([]*models.FacultyMember, error) {
	q := applyFacultyFilter(r.selectBase(), filter).OrderBy("f.last_name", "f.first_name")
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit).Offset(filter.Offset)
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list faculty members query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing faculty members")
		return nil, fmt.Errorf("error listing faculty members: %w", err)
	}
	defer rows.Close()

	members := make([]*models.FacultyMember, 0)
	for rows.Next() {
		m, err := scanFacultyMember(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning faculty member: %w", err)
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

// Count returns the number of faculty members matching filter, ignoring paging
func (r *FacultyMemberRepository) Count(ctx context.Context, filter FacultyFilter) (*int64, error) {
	q := applyFacultyFilter(r.sb.Select("COUNT(*)").From("faculty_members f"), filter)
	return countRows(ctx, r.db, q)
}

// Update saves the editable fields of a faculty member
func (r *FacultyMemberRepository) Update(ctx context.Context, m *models.FacultyMember) error {
	sql, args, err := r.sb.Update("faculty_members").
		Set("first_name", m.FirstName).
		Set("last_name", m.LastName).
		Set("title", m.Title).
		Set("email", strings.ToLower(strings.TrimSpace(m.Email))).
		Set("phone", m.Phone).
		Set("office_location", m.OfficeLocation).
		Set("bio", m.Bio).
		Set("profile_image_url", m.ProfileImageURL).
		Set("department_id", m.DepartmentID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": m.ID}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update faculty member query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&m.UpdatedAt); err != nil {
		switch {
		case dberrors.IsNoRows(err):
			return apperrors.ErrFacultyMemberNotFound
		case dberrors.IsDuplicateKeyError(err):
			return apperrors.ErrFacultyMemberAlreadyExists
		case dberrors.IsForeignKeyViolation(err):
			return apperrors.ErrDepartmentNotFound
		}
		logger.Error().Err(err).Str("facultyID", m.ID.String()).Msg("Error updating faculty member")
		return fmt.Errorf("error updating faculty member: %w", err)
	}
	return nil
}

// Delete removes a faculty member. Courses keep existing with no assigned faculty.
func (r *FacultyMemberRepository) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := r.sb.Delete("faculty_members").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete faculty member query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrFacultyMemberHasRelations
		}
		logger.Error().Err(err).Str("facultyID", id.String()).Msg("Error deleting faculty member")
		return fmt.Errorf("error deleting faculty member: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrFacultyMemberNotFound
	}
	return nil
}
