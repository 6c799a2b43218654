package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/yigit/facultyhub/internal/app/models"
	"github.com/yigit/facultyhub/internal/app/repositories"
	"github.com/yigit/facultyhub/internal/pkg/apperrors"
	"github.com/yigit/facultyhub/internal/pkg/filestorage"
	"github.com/yigit/facultyhub/internal/pkg/helpers"
	"github.com/yigit/facultyhub/internal/pkg/validation"
)

const (
	certificateIndexName = "metadata.json"
	certificateNameMin   = 3
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// CertificateConfig limits what can be uploaded
type CertificateConfig struct {
	MaxFileSize       int64
	AllowedExtensions []string
}

// CertificateUpload is a certificate file with its form fields
type CertificateUpload struct {
	FacultyID       uuid.UUID
	CertificateName string
	IssueDate       string
	FileName        string
	Size            int64
	Content         io.Reader
}

// CertificateService stores certificate files in a bucket, one folder per faculty member, next to a
// metadata.json index of the folder.
type CertificateService struct {
	bucket      filestorage.Bucket
	facultyRepo repositories.IFacultyMemberRepository
	access      *AccessChecker
	notifier    Notifier
	config      CertificateConfig
	allowed     map[string]bool
	logger      zerolog.Logger
	now         func() time.Time

	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

// NewCertificateService creates a new CertificateService
func NewCertificateService(
	bucket filestorage.Bucket,
	facultyRepo repositories.IFacultyMemberRepository,
	access *AccessChecker,
	notifier Notifier,
	config CertificateConfig,
	logger zerolog.Logger,
) *CertificateService {
	allowed := make(map[string]bool, len(config.AllowedExtensions))
	for _, ext := range config.AllowedExtensions {
		allowed[strings.ToLower(ext)] = true
	}

	return &CertificateService{
		bucket:      bucket,
		facultyRepo: facultyRepo,
		access:      access,
		notifier:    notifier,
		config:      config,
		allowed:     allowed,
		logger:      logger,
		now:         time.Now,
		locks:       make(map[uuid.UUID]*sync.Mutex),
	}
}

// lockFaculty serializes index read-modify-write cycles of one faculty member
func (s *CertificateService) lockFaculty(facultyID uuid.UUID) func() {
	s.mu.Lock()
	l, ok := s.locks[facultyID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[facultyID] = l
	}
	s.mu.Unlock()

	l.Lock()
	return l.Unlock
}

func facultyFolder(facultyID uuid.UUID) string {
	return "faculty/" + facultyID.String()
}

func indexPath(facultyID uuid.UUID) string {
	return facultyFolder(facultyID) + "/" + certificateIndexName
}

// ValidateUpload checks the form fields and the file before anything is stored
func (s *CertificateService) ValidateUpload(in *CertificateUpload) error {
	if !validation.NewStringValidation(in.CertificateName).WithMinLength(certificateNameMin).Validate() {
		return apperrors.NewValidationError("Certificate name must be at least 3 characters")
	}
	if strings.TrimSpace(in.IssueDate) == "" {
		return apperrors.NewValidationError("Issue date is required")
	}
	if _, err := helpers.ParseDate(in.IssueDate); err != nil {
		return apperrors.NewValidationError("Issue date must be in YYYY-MM-DD format")
	}
	if in.FacultyID == uuid.Nil {
		return apperrors.NewValidationError("Faculty member is required")
	}

	ext := strings.ToLower(path.Ext(in.FileName))
	if !s.allowed[ext] {
		return apperrors.NewCustomError(apperrors.ErrUnsupportedFileType,
			fmt.Sprintf("File type %q is not allowed. Allowed types: %s", ext, strings.Join(s.config.AllowedExtensions, ", ")))
	}
	if in.Size <= 0 {
		return apperrors.ErrEmptyFile
	}
	if in.Size > s.config.MaxFileSize {
		return apperrors.NewCustomError(apperrors.ErrFileTooLarge,
			fmt.Sprintf("File size must be at most %d MB", s.config.MaxFileSize/(1024*1024)))
	}
	return nil
}

// blobName builds {first}_{last}_{certificateName}_{unixMillis}{ext}. The name part is lowercased
// with whitespace runs replaced by "_"; the extension keeps the case it was uploaded with.
func blobName(member *models.FacultyMember, certificateName, fileName string, at time.Time) string {
	ext := path.Ext(fileName)
	name := fmt.Sprintf("%s_%s_%s_%d", member.FirstName, member.LastName, strings.TrimSpace(certificateName), at.UnixMilli())
	name = whitespaceRun.ReplaceAllString(strings.ToLower(name), "_")
	name = strings.NewReplacer("/", "_", "\\", "_").Replace(name)
	return name + ext
}

// Upload stores a certificate file and appends it to the faculty member's index. If the index
// cannot be written the stored file is removed again.
func (s *CertificateService) Upload(ctx context.Context, actor models.Principal, in *CertificateUpload) (*models.CertificateMetadata, error) {
	if err := s.ValidateUpload(in); err != nil {
		return nil, err
	}

	member, err := s.facultyRepo.GetByID(ctx, in.FacultyID)
	if err != nil {
		return nil, err
	}
	if err := s.access.CanManageFacultyMember(ctx, actor, member); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	fileName := blobName(member, in.CertificateName, in.FileName, now)
	objectPath := facultyFolder(member.ID) + "/" + fileName

	unlock := s.lockFaculty(member.ID)
	defer unlock()

	if _, err := s.bucket.Upload(ctx, objectPath, in.Content, filestorage.UploadOptions{}); err != nil {
		if errors.Is(err, filestorage.ErrObjectExists) {
			return nil, apperrors.NewConflictError("A certificate with this name was just uploaded, please retry")
		}
		return nil, fmt.Errorf("error uploading certificate: %w", err)
	}

	entry := models.CertificateMetadata{
		FileName:        fileName,
		CertificateName: strings.TrimSpace(in.CertificateName),
		IssueDate:       in.IssueDate,
		UploadDate:      now.Format(time.RFC3339),
		FacultyID:       member.ID.String(),
		FacultyName:     member.FullName(),
	}

	entries, err := s.readIndex(ctx, member.ID)
	if err == nil {
		err = s.writeIndex(ctx, member.ID, append(entries, entry))
	}
	if err != nil {
		if rmErr := s.bucket.Remove(context.WithoutCancel(ctx), objectPath); rmErr != nil {
			s.logger.Error().Err(rmErr).Str("path", objectPath).Msg("Failed to remove certificate after index update failed")
		}
		return nil, fmt.Errorf("error updating certificate index: %w", err)
	}

	s.logger.Info().Str("facultyID", member.ID.String()).Str("file", fileName).Msg("Certificate uploaded")
	s.notifier.Notify(actor.UserID, models.Success("Certificate uploaded", entry.CertificateName+" has been uploaded."))
	return &entry, nil
}

// List returns the certificate index of a faculty member
func (s *CertificateService) List(ctx context.Context, actor models.Principal, facultyID uuid.UUID) ([]models.CertificateMetadata, error) {
	if err := s.authorize(ctx, actor, facultyID); err != nil {
		return nil, err
	}
	return s.readIndex(ctx, facultyID)
}

// Download opens a certificate file. The caller closes the reader.
func (s *CertificateService) Download(ctx context.Context, actor models.Principal, facultyID uuid.UUID, fileName string) (io.ReadCloser, *filestorage.ObjectInfo, error) {
	if err := checkFileName(fileName); err != nil {
		return nil, nil, err
	}
	if err := s.authorize(ctx, actor, facultyID); err != nil {
		return nil, nil, err
	}

	rc, info, err := s.bucket.Download(ctx, facultyFolder(facultyID)+"/"+fileName)
	if err != nil {
		if errors.Is(err, filestorage.ErrObjectNotFound) {
			return nil, nil, apperrors.ErrCertificateNotFound
		}
		return nil, nil, fmt.Errorf("error downloading certificate: %w", err)
	}
	return rc, info, nil
}

// Delete removes a certificate file and its index entry
func (s *CertificateService) Delete(ctx context.Context, actor models.Principal, facultyID uuid.UUID, fileName string) error {
	if err := checkFileName(fileName); err != nil {
		return err
	}
	if err := s.authorize(ctx, actor, facultyID); err != nil {
		return err
	}

	unlock := s.lockFaculty(facultyID)
	defer unlock()

	entries, err := s.readIndex(ctx, facultyID)
	if err != nil {
		return err
	}

	kept := entries[:0]
	found := false
	for _, e := range entries {
		if e.FileName == fileName {
			found = true
			continue
		}
		kept = append(kept, e)
	}
	if !found {
		return apperrors.ErrCertificateNotFound
	}

	// Index first: a failed removal leaves an unlisted file behind, never an entry without a file
	if err := s.writeIndex(ctx, facultyID, kept); err != nil {
		return fmt.Errorf("error updating certificate index: %w", err)
	}
	objectPath := facultyFolder(facultyID) + "/" + fileName
	if err := s.bucket.Remove(context.WithoutCancel(ctx), objectPath); err != nil {
		s.logger.Error().Err(err).Str("path", objectPath).Msg("Failed to remove certificate file after unindexing it")
	}

	s.logger.Info().Str("facultyID", facultyID.String()).Str("file", fileName).Msg("Certificate deleted")
	return nil
}

// Entries returns the index of a faculty member without access checks. Callers scope the faculty ID.
func (s *CertificateService) Entries(ctx context.Context, facultyID uuid.UUID) ([]models.CertificateMetadata, error) {
	return s.readIndex(ctx, facultyID)
}

// CountForFaculty returns the number of indexed certificates of one faculty member
func (s *CertificateService) CountForFaculty(ctx context.Context, facultyID uuid.UUID) (*int64, error) {
	entries, err := s.readIndex(ctx, facultyID)
	if err != nil {
		return nil, err
	}
	n := int64(len(entries))
	return &n, nil
}

// CountAll returns the number of certificates across faculty members, optionally limited to a department
func (s *CertificateService) CountAll(ctx context.Context, departmentID *uuid.UUID) (*int64, error) {
	members, err := s.facultyRepo.List(ctx, repositories.FacultyFilter{DepartmentID: departmentID})
	if err != nil {
		return nil, err
	}

	var total int64
	for _, m := range members {
		n, err := s.CountForFaculty(ctx, m.ID)
		if err != nil {
			return nil, err
		}
		total += *n
	}
	return &total, nil
}

func (s *CertificateService) authorize(ctx context.Context, actor models.Principal, facultyID uuid.UUID) error {
	member, err := s.facultyRepo.GetByID(ctx, facultyID)
	if err != nil {
		return err
	}
	return s.access.CanManageFacultyMember(ctx, actor, member)
}

func checkFileName(fileName string) error {
	if fileName == "" || fileName == certificateIndexName || strings.ContainsAny(fileName, `/\`) || fileName == "." || fileName == ".." {
		return apperrors.ErrCertificateNotFound
	}
	return nil
}

// readIndex loads metadata.json. A missing index is an empty one.
func (s *CertificateService) readIndex(ctx context.Context, facultyID uuid.UUID) ([]models.CertificateMetadata, error) {
	rc, _, err := s.bucket.Download(ctx, indexPath(facultyID))
	if err != nil {
		if errors.Is(err, filestorage.ErrObjectNotFound) {
			return []models.CertificateMetadata{}, nil
		}
		return nil, fmt.Errorf("error reading certificate index: %w", err)
	}
	defer rc.Close()

	entries := []models.CertificateMetadata{}
	if err := json.NewDecoder(rc).Decode(&entries); err != nil && !errors.Is(err, io.EOF) {
		s.logger.Error().Err(err).Str("facultyID", facultyID.String()).Msg("Certificate index is not valid JSON")
		return nil, fmt.Errorf("%w: %v", apperrors.ErrCertificateIndexCorrupt, err)
	}
	return entries, nil
}

func (s *CertificateService) writeIndex(ctx context.Context, facultyID uuid.UUID, entries []models.CertificateMetadata) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding certificate index: %w", err)
	}

	_, err = s.bucket.Upload(ctx, indexPath(facultyID), bytes.NewReader(data), filestorage.UploadOptions{
		ContentType: "application/json",
		Upsert:      true,
	})
	return err
}
