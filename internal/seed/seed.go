package seed

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/yigit/facultyhub/internal/app/models"
	"github.com/yigit/facultyhub/internal/app/repositories"
	"github.com/yigit/facultyhub/internal/pkg/apperrors"
	"github.com/yigit/facultyhub/internal/pkg/auth"
)

// Options controls what CreateDefaultData writes besides roles and departments
type Options struct {
	DemoAccounts    bool
	DemoPassword    string
	DemoEmailDomain string
}

// DefaultDepartments are created when missing
var DefaultDepartments = []models.Department{
	{Name: "Computer Science", Code: "CS"},
	{Name: "Mathematics", Code: "MATH"},
	{Name: "Physics", Code: "PHYS"},
}

// Account is a login created by the seed. It goes through the same tables as any
// other account.
type Account struct {
	Email          string
	FirstName      string
	LastName       string
	Role           models.RoleName
	DepartmentCode string
	FacultyTitle   string // non-empty also creates a faculty_members row
}

// DemoAccounts returns one account per role under the given email domain
func DemoAccounts(domain string) []Account {
	domain = strings.TrimPrefix(strings.TrimSpace(domain), "@")
	return []Account{
		{Email: "admin@" + domain, FirstName: "System", LastName: "Administrator", Role: models.RoleAdmin},
		{Email: "hod@" + domain, FirstName: "Grace", LastName: "Hopper", Role: models.RoleHOD, DepartmentCode: "CS", FacultyTitle: "Professor"},
		{Email: "faculty@" + domain, FirstName: "Alan", LastName: "Turing", Role: models.RoleFaculty, DepartmentCode: "CS", FacultyTitle: "Assistant Professor"},
	}
}

// CreateDefaultData makes sure roles and the default departments exist and, when asked,
// creates the demo accounts. Existing rows are left untouched so it can run on every start.
func CreateDefaultData(ctx context.Context, txManager repositories.TxManager, opts Options, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default data (roles, departments)...")

	departments := make(map[string]uuid.UUID)
	err := txManager.WithTransaction(ctx, func(ctx context.Context, repos *repositories.Repositories) error {
		if err := repos.RoleRepository.EnsureRoles(ctx, models.AllRoles...); err != nil {
			return err
		}

		existing, err := repos.DepartmentRepository.List(ctx)
		if err != nil {
			return err
		}
		for _, d := range existing {
			departments[d.Code] = d.ID
		}

		for _, d := range DefaultDepartments {
			if _, ok := departments[d.Code]; ok {
				continue
			}
			dept := d
			if err := repos.DepartmentRepository.Create(ctx, &dept); err != nil {
				if errors.Is(err, apperrors.ErrDepartmentAlreadyExists) {
					lgr.Warn().Str("code", d.Code).Msg("Department name taken by another code, skipping")
					continue
				}
				return err
			}
			departments[dept.Code] = dept.ID
			lgr.Info().Str("code", dept.Code).Msg("Default department created")
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("error creating roles and departments: %w", err)
	}

	if !opts.DemoAccounts {
		return nil
	}

	hash, err := auth.HashPassword(opts.DemoPassword)
	if err != nil {
		return fmt.Errorf("error hashing demo password: %w", err)
	}

	var finalErr error
	for _, account := range DemoAccounts(opts.DemoEmailDomain) {
		if err := createAccount(ctx, txManager, account, hash, departments); err != nil {
			lgr.Error().Err(err).Str("email", account.Email).Msg("Error creating demo account")
			finalErr = errors.Join(finalErr, err)
			continue
		}
	}
	return finalErr
}

// createAccount writes the user, its role and its faculty record in one transaction.
// An account whose email already exists is skipped.
func createAccount(ctx context.Context, txManager repositories.TxManager, account Account, passwordHash string, departments map[string]uuid.UUID) error {
	var departmentID *uuid.UUID
	if account.DepartmentCode != "" {
		id, ok := departments[account.DepartmentCode]
		if !ok {
			return fmt.Errorf("department %s does not exist", account.DepartmentCode)
		}
		departmentID = &id
	}

	return txManager.WithTransaction(ctx, func(ctx context.Context, repos *repositories.Repositories) error {
		exists, err := repos.UserRepository.EmailExists(ctx, account.Email)
		if err != nil {
			return err
		}
		if exists {
			return nil
		}

		user := &models.User{
			Email:        account.Email,
			PasswordHash: passwordHash,
			FirstName:    account.FirstName,
			LastName:     account.LastName,
		}
		if err := repos.UserRepository.Create(ctx, user); err != nil {
			return err
		}

		role, err := repos.RoleRepository.GetByName(ctx, account.Role)
		if err != nil {
			return err
		}
		if err := repos.RoleRepository.AssignUserRole(ctx, &models.UserRole{
			UserID:       user.ID,
			RoleID:       role.ID,
			DepartmentID: departmentID,
		}); err != nil {
			return err
		}

		if account.FacultyTitle == "" || departmentID == nil {
			return nil
		}
		return repos.FacultyMemberRepository.Create(ctx, &models.FacultyMember{
			FirstName:    account.FirstName,
			LastName:     account.LastName,
			Title:        account.FacultyTitle,
			Email:        account.Email,
			DepartmentID: *departmentID,
			UserID:       &user.ID,
		})
	})
}
