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

// IRoleRepository covers the roles table and the user_roles join records
type IRoleRepository interface {
	EnsureRoles(ctx context.Context, names ...models.RoleName) error
	GetByName(ctx context.Context, name models.RoleName) (*models.Role, error)
	List(ctx context.Context) ([]*models.Role, error)
	GetUserRole(ctx context.Context, userID uuid.UUID) (*models.UserRole, error)
	AssignUserRole(ctx context.Context, userRole *models.UserRole) error
	RemoveUserRole(ctx context.Context, userID uuid.UUID) error
	ListAssignments(ctx context.Context) ([]*models.UserRoleAssignment, error)
}

// RoleRepository handles role database operations
type RoleRepository struct {
	db Querier
	sb squirrel.StatementBuilderType
}

// NewRoleRepository creates a new RoleRepository
func NewRoleRepository(db Querier) *RoleRepository {
	return &RoleRepository{db: db, sb: newStatementBuilder()}
}

// EnsureRoles inserts any missing role names
func (r *RoleRepository) EnsureRoles(ctx context.Context, names ...models.RoleName) error {
	if len(names) == 0 {
		return nil
	}

	q := r.sb.Insert("roles").Columns("name")
	for _, n := range names {
		q = q.Values(string(n))
	}
	sql, args, err := q.Suffix("ON CONFLICT (name) DO NOTHING").ToSql()
	if err != nil {
		return fmt.Errorf("failed to build ensure roles query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Msg("Error ensuring roles")
		return fmt.Errorf("error ensuring roles: %w", err)
	}
	return nil
}

// GetByName looks up a role id by its name
func (r *RoleRepository) GetByName(ctx context.Context, name models.RoleName) (*models.Role, error) {
	sql, args, err := r.sb.Select("id", "name", "created_at").
		From("roles").
		Where(squirrel.Eq{"name": string(name)}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get role query: %w", err)
	}

	var role models.Role
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&role.ID, &role.Name, &role.CreatedAt); err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrRoleNotFound
		}
		logger.Error().Err(err).Str("role", string(name)).Msg("Error retrieving role")
		return nil, fmt.Errorf("error retrieving role: %w", err)
	}
	return &role, nil
}

// List returns all roles ordered by name
func (r *RoleRepository) List(ctx context.Context) ([]*models.Role, error) {
	sql, args, err := r.sb.Select("id", "name", "created_at").From("roles").OrderBy("name").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list roles query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing roles")
		return nil, fmt.Errorf("error listing roles: %w", err)
	}
	defer rows.Close()

	roles := make([]*models.Role, 0)
	for rows.Next() {
		var role models.Role
		if err := rows.Scan(&role.ID, &role.Name, &role.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning role: %w", err)
		}
		roles = append(roles, &role)
	}
	return roles, rows.Err()
}

// GetUserRole resolves the role assigned to a user. A user without a user_roles row
// yields ErrNoRoleAssigned.
func (r *RoleRepository) GetUserRole(ctx context.Context, userID uuid.UUID) (*models.UserRole, error) {
	sql, args, err := r.sb.Select("ur.id", "ur.user_id", "ur.role_id", "r.name", "ur.department_id", "ur.created_at").
		From("user_roles ur").
		Join("roles r ON r.id = ur.role_id").
		Where(squirrel.Eq{"ur.user_id": userID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get user role query: %w", err)
	}

	var ur models.UserRole
	err = r.db.QueryRow(ctx, sql, args...).Scan(&ur.ID, &ur.UserID, &ur.RoleID, &ur.RoleName, &ur.DepartmentID, &ur.CreatedAt)
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrNoRoleAssigned
		}
		logger.Error().Err(err).Str("userID", userID.String()).Msg("Error retrieving user role")
		return nil, fmt.Errorf("error retrieving user role: %w", err)
	}
	return &ur, nil
}

// AssignUserRole inserts the role assignment, replacing any previous one for the user
func (r *RoleRepository) AssignUserRole(ctx context.Context, ur *models.UserRole) error {
	sql, args, err := r.sb.Insert("user_roles").
		Columns("user_id", "role_id", "department_id").
		Values(ur.UserID, ur.RoleID, ur.DepartmentID).
		Suffix("ON CONFLICT (user_id) DO UPDATE SET role_id = EXCLUDED.role_id, department_id = EXCLUDED.department_id RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build assign user role query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&ur.ID, &ur.CreatedAt); err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewResourceNotFoundError("user, role or department does not exist")
		}
		logger.Error().Err(err).Str("userID", ur.UserID.String()).Msg("Error assigning user role")
		return fmt.Errorf("error assigning user role: %w", err)
	}
	return nil
}

// RemoveUserRole deletes the role assignment of a user
func (r *RoleRepository) RemoveUserRole(ctx context.Context, userID uuid.UUID) error {
	sql, args, err := r.sb.Delete("user_roles").Where(squirrel.Eq{"user_id": userID}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build remove user role query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("userID", userID.String()).Msg("Error removing user role")
		return fmt.Errorf("error removing user role: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNoRoleAssigned
	}
	return nil
}

// ListAssignments returns every user role joined with user and department details
func (r *RoleRepository) ListAssignments(ctx context.Context) ([]*models.UserRoleAssignment, error) {
	sql, args, err := r.sb.Select(
		"ur.id", "ur.user_id", "ur.role_id", "r.name", "ur.department_id", "ur.created_at",
		"u.email", "u.first_name", "u.last_name", "d.name",
	).
		From("user_roles ur").
		Join("roles r ON r.id = ur.role_id").
		Join("users u ON u.id = ur.user_id").
		LeftJoin("departments d ON d.id = ur.department_id").
		OrderBy("u.last_name", "u.first_name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list assignments query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing user roles")
		return nil, fmt.Errorf("error listing user roles: %w", err)
	}
	defer rows.Close()

	out := make([]*models.UserRoleAssignment, 0)
	for rows.Next() {
		var a models.UserRoleAssignment
		if err := rows.Scan(&a.ID, &a.UserID, &a.RoleID, &a.RoleName, &a.DepartmentID, &a.CreatedAt,
			&a.Email, &a.FirstName, &a.LastName, &a.DepartmentName); err != nil {
			return nil, fmt.Errorf("error scanning user role: %w", err)
		}
		out = append(out, &a)
	}
	return out, rows.Err()
}
