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

// IOfficeHourRepository defines office hour persistence
type IOfficeHourRepository interface {
	Create(ctx context.Context, oh *models.OfficeHour) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.OfficeHour, error)
	ListByFaculty(ctx context.Context, facultyID uuid.UUID) ([]*models.OfficeHour, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// IPublicationRepository defines publication persistence
type IPublicationRepository interface {
	Create(ctx context.Context, p *models.Publication) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Publication, error)
	ListByFaculty(ctx context.Context, facultyID uuid.UUID) ([]*models.Publication, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// OfficeHourRepository handles the office_hours table
type OfficeHourRepository struct {
	db Querier
	sb squirrel.StatementBuilderType
}

// NewOfficeHourRepository creates a new OfficeHourRepository
func NewOfficeHourRepository(db Querier) *OfficeHourRepository {
	return &OfficeHourRepository{db: db, sb: newStatementBuilder()}
}

const weekdayOrder = "array_position(ARRAY['Monday','Tuesday','Wednesday','Thursday','Friday','Saturday','Sunday'], day_of_week)"

var officeHourColumns = []string{"id", "faculty_id", "day_of_week", "start_time", "end_time", "location", "is_online", "meeting_link", "created_at"}

func scanOfficeHour(row rowScanner) (*models.OfficeHour, error) {
	var oh models.OfficeHour
	if err := row.Scan(&oh.ID, &oh.FacultyID, &oh.DayOfWeek, &oh.StartTime, &oh.EndTime,
		&oh.Location, &oh.IsOnline, &oh.MeetingLink, &oh.CreatedAt); err != nil {
		return nil, err
	}
	return &oh, nil
}

// Create inserts an office hour slot
func (r *OfficeHourRepository) Create(ctx context.Context, oh *models.OfficeHour) error {
	sql, args, err := r.sb.Insert("office_hours").
		Columns("faculty_id", "day_of_week", "start_time", "end_time", "location", "is_online", "meeting_link").
		Values(oh.FacultyID, oh.DayOfWeek, oh.StartTime, oh.EndTime, oh.Location, oh.IsOnline, oh.MeetingLink).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create office hour query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&oh.ID, &oh.CreatedAt); err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrFacultyMemberNotFound
		}
		logger.Error().Err(err).Str("facultyID", oh.FacultyID.String()).Msg("Error creating office hour")
		return fmt.Errorf("error creating office hour: %w", err)
	}
	return nil
}

// GetByID retrieves one office hour slot
func (r *OfficeHourRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.OfficeHour, error) {
	sql, args, err := r.sb.Select(officeHourColumns...).From("office_hours").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get office hour query: %w", err)
	}

	oh, err := scanOfficeHour(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrOfficeHourNotFound
		}
		return nil, fmt.Errorf("error retrieving office hour: %w", err)
	}
	return oh, nil
}

// ListByFaculty returns the weekly slots of a faculty member
func (r *OfficeHourRepository) ListByFaculty(ctx context.Context, facultyID uuid.UUID) ([]*models.OfficeHour, error) {
	sql, args, err := r.sb.Select(officeHourColumns...).
		From("office_hours").
		Where(squirrel.Eq{"faculty_id": facultyID}).
		OrderBy(weekdayOrder, "start_time").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list office hours query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("facultyID", facultyID.String()).Msg("Error listing office hours")
		return nil, fmt.Errorf("error listing office hours: %w", err)
	}
	defer rows.Close()

	out := make([]*models.OfficeHour, 0)
	for rows.Next() {
		oh, err := scanOfficeHour(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning office hour: %w", err)
		}
		out = append(out, oh)
	}
	return out, rows.Err()
}

// Delete removes an office hour slot
func (r *OfficeHourRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, r.db, r.sb, "office_hours", id, apperrors.ErrOfficeHourNotFound)
}

// PublicationRepository handles the publications table
type PublicationRepository struct {
	db Querier
	sb squirrel.StatementBuilderType
}

// NewPublicationRepository creates a new PublicationRepository
func NewPublicationRepository(db Querier) *PublicationRepository {
	return &PublicationRepository{db: db, sb: newStatementBuilder()}
}

var publicationColumns = []string{"id", "faculty_id", "title", "authors", "journal", "doi", "abstract", "keywords", "publication_date", "created_at"}

func scanPublication(row rowScanner) (*models.Publication, error) {
	var p models.Publication
	if err := row.Scan(&p.ID, &p.FacultyID, &p.Title, &p.Authors, &p.Journal, &p.DOI,
		&p.Abstract, &p.Keywords, &p.PublicationDate, &p.CreatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

// Create inserts a publication
func (r *PublicationRepository) Create(ctx context.Context, p *models.Publication) error {
	if p.Authors == nil {
		p.Authors = []string{}
	}
	if p.Keywords == nil {
		p.Keywords = []string{}
	}

	sql, args, err := r.sb.Insert("publications").
		Columns("faculty_id", "title", "authors", "journal", "doi", "abstract", "keywords", "publication_date").
		Values(p.FacultyID, p.Title, p.Authors, p.Journal, p.DOI, p.Abstract, p.Keywords, p.PublicationDate).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create publication query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&p.ID, &p.CreatedAt); err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrFacultyMemberNotFound
		}
		logger.Error().Err(err).Str("facultyID", p.FacultyID.String()).Msg("Error creating publication")
		return fmt.Errorf("error creating publication: %w", err)
	}
	return nil
}

// GetByID retrieves one publication
func (r *PublicationRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Publication, error) {
	sql, args, err := r.sb.Select(publicationColumns...).From("publications").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get publication query: %w", err)
	}

	p, err := scanPublication(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrPublicationNotFound
		}
		return nil, fmt.Errorf("error retrieving publication: %w", err)
	}
	return p, nil
}

// ListByFaculty returns publications of a faculty member, newest first
func (r *PublicationRepository) ListByFaculty(ctx context.Context, facultyID uuid.UUID) ([]*models.Publication, error) {
	sql, args, err := r.sb.Select(publicationColumns...).
		From("publications").
		Where(squirrel.Eq{"faculty_id": facultyID}).
		OrderBy("publication_date DESC NULLS LAST", "created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list publications query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("facultyID", facultyID.String()).Msg("Error listing publications")
		return nil, fmt.Errorf("error listing publications: %w", err)
	}
	defer rows.Close()

	out := make([]*models.Publication, 0)
	for rows.Next() {
		p, err := scanPublication(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning publication: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Delete removes a publication
func (r *PublicationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, r.db, r.sb, "publications", id, apperrors.ErrPublicationNotFound)
}

func deleteByID(ctx context.Context, db Querier, sb squirrel.StatementBuilderType, table string, id uuid.UUID, notFound error) error {
	sql, args, err := sb.Delete(table).Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete query for %s: %w", table, err)
	}

	tag, err := db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("table", table).Str("id", id.String()).Msg("Error deleting row")
		return fmt.Errorf("error deleting from %s: %w", table, err)
	}
	if tag.RowsAffected() == 0 {
		return notFound
	}
	return nil
}
