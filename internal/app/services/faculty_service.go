package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/yigit/facultyhub/internal/app/models"
	"github.com/yigit/facultyhub/internal/app/models/dto"
	"github.com/yigit/facultyhub/internal/app/repositories"
	"github.com/yigit/facultyhub/internal/pkg/apperrors"
	"github.com/yigit/facultyhub/internal/pkg/auth"
	"github.com/yigit/facultyhub/internal/pkg/email"
	"github.com/yigit/facultyhub/internal/pkg/helpers"
)

// FacultyService handles faculty member records and their optional login accounts
type FacultyService struct {
	facultyRepo  repositories.IFacultyMemberRepository
	txManager    repositories.TxManager
	access       *AccessChecker
	emailService email.EmailService
	notifier     Notifier
	logger       zerolog.Logger
}

// NewFacultyService creates a new FacultyService
func NewFacultyService(
	facultyRepo repositories.IFacultyMemberRepository,
	txManager repositories.TxManager,
	access *AccessChecker,
	emailService email.EmailService,
	notifier Notifier,
	logger zerolog.Logger,
) *FacultyService {
	return &FacultyService{
		facultyRepo:  facultyRepo,
		txManager:    txManager,
		access:       access,
		emailService: emailService,
		notifier:     notifier,
		logger:       logger,
	}
}

// CreateFacultyMember adds a faculty member to departmentID. With CreateAccount set, a login with
// the faculty role is created in the same transaction; any failure leaves nothing behind.
func (s *FacultyService) CreateFacultyMember(ctx context.Context, actor models.Principal, departmentID uuid.UUID, req *dto.CreateFacultyMemberRequest) (*dto.CreateFacultyMemberResponse, error) {
	if req.CreateAccount && strings.TrimSpace(req.Password) == "" {
		return nil, apperrors.NewCustomError(apperrors.ErrPasswordRequired, "Password is required when creating an account")
	}
	if err := s.access.CanManageDepartment(ctx, actor, departmentID); err != nil {
		return nil, err
	}

	// Hash outside the transaction, bcrypt is slow
	var passwordHash string
	if req.CreateAccount {
		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			return nil, fmt.Errorf("error hashing password: %w", err)
		}
		passwordHash = hash
	}

	member := &models.FacultyMember{
		FirstName:       strings.TrimSpace(req.FirstName),
		LastName:        strings.TrimSpace(req.LastName),
		Title:           strings.TrimSpace(req.Title),
		Email:           normalizeEmail(req.Email),
		Phone:           helpers.OptionalStringPtr(req.Phone),
		OfficeLocation:  helpers.OptionalStringPtr(req.OfficeLocation),
		Bio:             helpers.OptionalStringPtr(req.Bio),
		ProfileImageURL: helpers.OptionalStringPtr(req.ProfileImageURL),
		DepartmentID:    departmentID,
	}

	err := s.txManager.WithTransaction(ctx, func(ctx context.Context, repos *repositories.Repositories) error {
		department, err := repos.DepartmentRepository.GetByID(ctx, departmentID)
		if err != nil {
			return err
		}

		if req.CreateAccount {
			userID, err := createFacultyAccount(ctx, repos, member, passwordHash, departmentID)
			if err != nil {
				return err
			}
			member.UserID = &userID
		}

		if err := repos.FacultyMemberRepository.Create(ctx, member); err != nil {
			return err
		}
		member.DepartmentName = department.Name
		return nil
	})
	if err != nil {
		s.logger.Warn().Err(err).Str("email", member.Email).Bool("createAccount", req.CreateAccount).Msg("Faculty member creation rolled back")
		return nil, err
	}

	if req.CreateAccount {
		if err := s.emailService.SendAccountCreatedEmail(member.Email, member.FullName(), string(models.RoleFaculty)); err != nil {
			s.logger.Warn().Err(err).Str("facultyID", member.ID.String()).Msg("Account email could not be sent")
		}
	}

	s.logger.Info().Str("facultyID", member.ID.String()).Str("departmentID", departmentID.String()).Msg("Faculty member created")
	s.notifier.Notify(actor.UserID, models.Success("Faculty member added", member.FullName()+" has been added."))

	return &dto.CreateFacultyMemberResponse{FacultyMember: member, AccountCreated: member.UserID != nil}, nil
}

// createFacultyAccount creates the user row and its faculty role inside the running transaction
func createFacultyAccount(ctx context.Context, repos *repositories.Repositories, member *models.FacultyMember, passwordHash string, departmentID uuid.UUID) (uuid.UUID, error) {
	exists, err := repos.UserRepository.EmailExists(ctx, member.Email)
	if err != nil {
		return uuid.Nil, fmt.Errorf("error checking if email exists: %w", err)
	}
	if exists {
		return uuid.Nil, apperrors.ErrEmailAlreadyExists
	}

	user := &models.User{
		Email:        member.Email,
		PasswordHash: passwordHash,
		FirstName:    member.FirstName,
		LastName:     member.LastName,
	}
	if err := repos.UserRepository.Create(ctx, user); err != nil {
		return uuid.Nil, err
	}

	role, err := repos.RoleRepository.GetByName(ctx, models.RoleFaculty)
	if err != nil {
		return uuid.Nil, apperrors.NewCustomError(fmt.Errorf("%w: %w", apperrors.ErrRoleLookupFailed, err), "Could not look up the faculty role")
	}

	if err := repos.RoleRepository.AssignUserRole(ctx, &models.UserRole{
		UserID:       user.ID,
		RoleID:       role.ID,
		DepartmentID: &departmentID,
	}); err != nil {
		return uuid.Nil, err
	}
	return user.ID, nil
}

// GetFacultyMember retrieves a faculty member by ID
func (s *FacultyService) GetFacultyMember(ctx context.Context, id uuid.UUID) (*models.FacultyMember, error) {
	return s.facultyRepo.GetByID(ctx, id)
}

// GetProfileForUser returns the faculty record linked to a login
func (s *FacultyService) GetProfileForUser(ctx context.Context, userID uuid.UUID) (*models.FacultyMember, error) {
	return s.facultyRepo.GetByUserID(ctx, userID)
}

// ListFacultyMembers returns one page of faculty members. departmentID and search are optional.
func (s *FacultyService) ListFacultyMembers(ctx context.Context, departmentID *uuid.UUID, search string, page, size int) (*dto.PaginatedResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)
	filter := repositories.FacultyFilter{
		DepartmentID: departmentID,
		Search:       strings.TrimSpace(search),
		Limit:        uint64(limit),
		Offset:       offset,
	}

	members, err := s.facultyRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	var total int64
	count, err := s.facultyRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}
	if count != nil {
		total = *count
	}

	return &dto.PaginatedResponse{
		Items:      members,
		Pagination: helpers.NewPaginationInfo(total, page, limit),
	}, nil
}

// UpdateFacultyMember replaces the profile fields of a faculty member. Only admins may move
// a member to another department.
func (s *FacultyService) UpdateFacultyMember(ctx context.Context, actor models.Principal, id uuid.UUID, req *dto.UpdateFacultyMemberRequest) (*models.FacultyMember, error) {
	member, err := s.facultyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.access.CanManageFacultyMember(ctx, actor, member); err != nil {
		return nil, err
	}

	moving := req.DepartmentID != nil && *req.DepartmentID != member.DepartmentID
	if moving {
		if !actor.HasRole(models.RoleAdmin) {
			return nil, apperrors.NewForbiddenError("Only administrators can move faculty members between departments")
		}
		member.DepartmentID = *req.DepartmentID
	}

	member.FirstName = strings.TrimSpace(req.FirstName)
	member.LastName = strings.TrimSpace(req.LastName)
	member.Title = strings.TrimSpace(req.Title)
	member.Email = normalizeEmail(req.Email)
	member.Phone = helpers.OptionalStringPtr(req.Phone)
	member.OfficeLocation = helpers.OptionalStringPtr(req.OfficeLocation)
	member.Bio = helpers.OptionalStringPtr(req.Bio)
	member.ProfileImageURL = helpers.OptionalStringPtr(req.ProfileImageURL)

	if moving {
		err = s.txManager.WithTransaction(ctx, func(ctx context.Context, repos *repositories.Repositories) error {
			return moveFacultyMember(ctx, repos, member)
		})
	} else {
		err = s.facultyRepo.Update(ctx, member)
	}
	if err != nil {
		return nil, err
	}
	return s.facultyRepo.GetByID(ctx, id)
}

// moveFacultyMember saves a department change. Courses are taught within their own department,
// so a member who still teaches any course cannot move.
func moveFacultyMember(ctx context.Context, repos *repositories.Repositories, member *models.FacultyMember) error {
	taught, err := repos.CourseRepository.Count(ctx, models.CourseFilter{FacultyID: &member.ID})
	if err != nil {
		return fmt.Errorf("error counting assigned courses: %w", err)
	}
	if taught != nil && *taught > 0 {
		return apperrors.NewConflictError("Unassign this faculty member's courses before moving them to another department")
	}
	return repos.FacultyMemberRepository.Update(ctx, member)
}

// DeleteFacultyMember removes a faculty member record. A linked login is kept.
func (s *FacultyService) DeleteFacultyMember(ctx context.Context, actor models.Principal, id uuid.UUID) error {
	member, err := s.facultyRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if actor.HasRole(models.RoleFaculty) {
		return apperrors.NewForbiddenError("Faculty members cannot delete faculty records")
	}
	if err := s.access.CanManageFacultyMember(ctx, actor, member); err != nil {
		return err
	}

	if err := s.facultyRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrFacultyMemberHasRelations) {
			return apperrors.NewConflictError("Unassign this faculty member's courses before deleting them")
		}
		return err
	}

	s.logger.Info().Str("facultyID", id.String()).Msg("Faculty member deleted")
	s.notifier.Notify(actor.UserID, models.Success("Faculty member deleted", member.FullName()+" has been removed."))
	return nil
}
