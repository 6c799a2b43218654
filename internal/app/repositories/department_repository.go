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

// IDepartmentRepository defines department persistence
type IDepartmentRepository interface {
	Create(ctx context.Context, department *models.Department) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Department, error)
	List(ctx context.Context) ([]*models.Department, error)
	Update(ctx context.Context, department *models.Department) error
	Delete(ctx context.Context, id uuid.UUID) error
	ExistsByNameOrCode(ctx context.Context, name, code string, excludeID *uuid.UUID) (bool, error)
	Count(ctx context.Context) (*int64, error)
}

// DepartmentRepository handles database operations for departments
type DepartmentRepository struct {
	db Querier
	sb squirrel.StatementBuilderType
}

// NewDepartmentRepository creates a new department repository
func NewDepartmentRepository(db Querier) *DepartmentRepository {
	return &DepartmentRepository{db: db, sb: newStatementBuilder()}
}

var departmentColumns = []string{"id", "name", "code", "description", "created_at", "updated_at"}

func scanDepartment(row rowScanner) (*models.Department, error) {
	var d models.Department
	if err := row.Scan(&d.ID, &d.Name, &d.Code, &d.Description, &d.CreatedAt, &d.UpdatedAt); err != nil {
		return nil, err
	}
	return &d, nil
}

// Create creates a new department
func (r *DepartmentRepository) Create(ctx context.Context, department *models.Department) error {
	sql, args, err := r.sb.Insert("departments").
		Columns("name", "code", "description").
		Values(department.Name, department.Code, department.Description).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create department query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&department.ID, &department.CreatedAt, &department.UpdatedAt); err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return apperrors.ErrDepartmentAlreadyExists
		}
		logger.Error().Err(err).Str("code", department.Code).Msg("Error creating department")
		return fmt.Errorf("error creating department: %w", err)
	}
	return nil
}

// GetByID retrieves a department by ID
func (r *DepartmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Department, error) {
	sql, args, err := r.sb.Select(departmentColumns...).From("departments").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get department query: %w", err)
	}

	department, err := scanDepartment(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrDepartmentNotFound
		}
		logger.Error().Err(err).Str("departmentID", id.String()).Msg("Error retrieving department")
		return nil, fmt.Errorf("error retrieving department: %w", err)
	}
	return department, nil
}

// List retrieves all departments ordered by name
func (r *DepartmentRepository) List(ctx context.Context) ([]*models.Department, error) {
	sql, args, err := r.sb.Select(departmentColumns...).From("departments").OrderBy("name").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list departments query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing departments")
		return nil, fmt.Errorf("error listing departments: %w", err)
	}
	defer rows.Close()

	departments := make([]*models.Department, 0)
	for rows.Next() {
		d, err := scanDepartment(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning department: %w", err)
		}
		departments = append(departments, d)
	}
	return departments, rows.Err()
}

// ExistsByNameOrCode checks if another department uses name or code
func (r *DepartmentRepository) ExistsByNameOrCode(ctx context.Context, name, code string, excludeID *uuid.UUID) (bool, error) {
	where := squirrel.And{squirrel.Or{squirrel.Eq{"name": name}, squirrel.Eq{"code": code}}}
	if excludeID != nil {
		where = append(where, squirrel.NotEq{"id": *excludeID})
	}

	sql, args, err := r.sb.Select("1").From("departments").Where(where).Prefix("SELECT EXISTS(").Suffix(")").ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build department exists query: %w", err)
	}

	var exists bool
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		logger.Error().Err(err).Msg("Error checking department existence")
		return false, fmt.Errorf("error checking department existence: %w", err)
	}
	return exists, nil
}

// Update updates an existing department
func (r *DepartmentRepository) Update(ctx context.Context, department *models.Department) error {
	sql, args, err := r.sb.Update("departments").
		Set("name", department.Name).
		Set("code", department.Code).
		Set("description", department.Description).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": department.ID}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update department query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&department.UpdatedAt); err != nil {
		if dberrors.IsNoRows(err) {
			return apperrors.ErrDepartmentNotFound
		}
		if dberrors.IsDuplicateKeyError(err) {
			return apperrors.ErrDepartmentAlreadyExists
		}
		logger.Error().Err(err).Str("departmentID", department.ID.String()).Msg("Error updating department")
		return fmt.Errorf("error updating department: %w", err)
	}
	return nil
}

// Delete deletes a department by ID. Referenced departments cannot be deleted.
func (r *DepartmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := r.sb.Delete("departments").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete department query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrDepartmentHasRelations
		}
		logger.Error().Err(err).Str("departmentID", id.String()).Msg("Error deleting department")
		return fmt.Errorf("error deleting department: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrDepartmentNotFound
	}
	return nil
}

// Count returns the number of departments. The result is nil when the database
// returns no value.
func (r *DepartmentRepository) Count(ctx context.Context) (*int64, error) {
	return countRows(ctx, r.db, r.sb.Select("COUNT(*)").From("departments"))
}

// countRows runs a COUNT query and scans it into a nullable integer
func countRows(ctx context.Context, db Querier, q squirrel.SelectBuilder) (*int64, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build count query: %w", err)
	}

	var n *int64
	if err := db.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		logger.Error().Err(err).Str("query", sql).Msg("Error running count query")
		return nil, fmt.Errorf("error counting rows: %w", err)
	}
	return n, nil
}
