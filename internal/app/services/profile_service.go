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
	"github.com/yigit/facultyhub/internal/pkg/validation"
)

// ProfileService manages office hours and publications of faculty members
type ProfileService struct {
	facultyRepo     repositories.IFacultyMemberRepository
	officeHourRepo  repositories.IOfficeHourRepository
	publicationRepo repositories.IPublicationRepository
	access          *AccessChecker
	logger          zerolog.Logger
}

// NewProfileService creates a new ProfileService
func NewProfileService(
	facultyRepo repositories.IFacultyMemberRepository,
	officeHourRepo repositories.IOfficeHourRepository,
	publicationRepo repositories.IPublicationRepository,
	access *AccessChecker,
	logger zerolog.Logger,
) *ProfileService {
	return &ProfileService{
		facultyRepo:     facultyRepo,
		officeHourRepo:  officeHourRepo,
		publicationRepo: publicationRepo,
		access:          access,
		logger:          logger,
	}
}

func (s *ProfileService) authorize(ctx context.Context, actor models.Principal, facultyID uuid.UUID) error {
	member, err := s.facultyRepo.GetByID(ctx, facultyID)
	if err != nil {
		return err
	}
	return s.access.CanManageFacultyMember(ctx, actor, member)
}

// ListOfficeHours returns the office hours of a faculty member, Monday first
func (s *ProfileService) ListOfficeHours(ctx context.Context, facultyID uuid.UUID) ([]*models.OfficeHour, error) {
	if _, err := s.facultyRepo.GetByID(ctx, facultyID); err != nil {
		return nil, err
	}
	return s.officeHourRepo.ListByFaculty(ctx, facultyID)
}

// AddOfficeHour adds an office hour slot
func (s *ProfileService) AddOfficeHour(ctx context.Context, actor models.Principal, facultyID uuid.UUID, req *dto.CreateOfficeHourRequest) (*models.OfficeHour, error) {
	if err := s.authorize(ctx, actor, facultyID); err != nil {
		return nil, err
	}
	// HH:MM compares lexically
	if req.EndTime <= req.StartTime {
		return nil, apperrors.NewValidationError("endTime must be after startTime")
	}
	if req.IsOnline && helpers.OptionalStringPtr(req.MeetingLink) == nil {
		return nil, apperrors.NewValidationError("meetingLink is required for online office hours")
	}

	oh := &models.OfficeHour{
		FacultyID:   facultyID,
		DayOfWeek:   validation.NormalizeWeekday(req.DayOfWeek),
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Location:    helpers.OptionalStringPtr(req.Location),
		IsOnline:    req.IsOnline,
		MeetingLink: helpers.OptionalStringPtr(req.MeetingLink),
	}
	if err := s.officeHourRepo.Create(ctx, oh); err != nil {
		return nil, err
	}
	return oh, nil
}

// DeleteOfficeHour removes an office hour slot
func (s *ProfileService) DeleteOfficeHour(ctx context.Context, actor models.Principal, id uuid.UUID) error {
	oh, err := s.officeHourRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.authorize(ctx, actor, oh.FacultyID); err != nil {
		return err
	}
	return s.officeHourRepo.Delete(ctx, id)
}

// ListPublications returns the publications of a faculty member, newest first
func (s *ProfileService) ListPublications(ctx context.Context, facultyID uuid.UUID) ([]*models.Publication, error) {
	if _, err := s.facultyRepo.GetByID(ctx, facultyID); err != nil {
		return nil, err
	}
	return s.publicationRepo.ListByFaculty(ctx, facultyID)
}

// AddPublication records a publication
func (s *ProfileService) AddPublication(ctx context.Context, actor models.Principal, facultyID uuid.UUID, req *dto.CreatePublicationRequest) (*models.Publication, error) {
	if err := s.authorize(ctx, actor, facultyID); err != nil {
		return nil, err
	}

	date, err := helpers.ParseOptionalDate(req.PublicationDate)
	if err != nil {
		return nil, apperrors.NewValidationError("publicationDate must be a date in YYYY-MM-DD format")
	}

	p := &models.Publication{
		FacultyID:       facultyID,
		Title:           strings.TrimSpace(req.Title),
		Authors:         trimAll(req.Authors),
		Journal:         helpers.OptionalStringPtr(req.Journal),
		DOI:             helpers.OptionalStringPtr(req.DOI),
		Abstract:        helpers.OptionalStringPtr(req.Abstract),
		Keywords:        trimAll(req.Keywords),
		PublicationDate: date,
	}
	if len(p.Authors) == 0 {
		return nil, apperrors.NewValidationError("at least one author is required")
	}

	if err := s.publicationRepo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// DeletePublication removes a publication
func (s *ProfileService) DeletePublication(ctx context.Context, actor models.Principal, id uuid.UUID) error {
	p, err := s.publicationRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.authorize(ctx, actor, p.FacultyID); err != nil {
		return err
	}
	return s.publicationRepo.Delete(ctx, id)
}

func trimAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
