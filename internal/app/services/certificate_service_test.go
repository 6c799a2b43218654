package services

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/yigit/facultyhub/internal/app/models"
	"github.com/yigit/facultyhub/internal/pkg/apperrors"
	"github.com/yigit/facultyhub/internal/pkg/filestorage"
)

// spyBucket wraps a real local bucket, counting calls and optionally failing index writes or removals
type spyBucket struct {
	filestorage.Bucket
	uploads        []string
	removed        []string
	failIndexWrite bool
	failRemove     bool
}

func (b *spyBucket) Upload(ctx context.Context, objectPath string, r io.Reader, opts filestorage.UploadOptions) (*filestorage.ObjectInfo, error) {
	b.uploads = append(b.uploads, objectPath)
	if b.failIndexWrite && strings.HasSuffix(objectPath, "/"+certificateIndexName) {
		return nil, errors.New("disk full")
	}
	return b.Bucket.Upload(ctx, objectPath, r, opts)
}

func (b *spyBucket) Remove(ctx context.Context, objectPaths ...string) error {
	b.removed = append(b.removed, objectPaths...)
	if b.failRemove {
		return errors.New("permission denied")
	}
	return b.Bucket.Remove(ctx, objectPaths...)
}

type certificateFixture struct {
	bucket   *spyBucket
	faculty  *mockFacultyRepo
	roles    *mockRoleRepo
	notifier *recordingNotifier
	svc      *CertificateService
	member   *models.FacultyMember
}

func newCertificateFixture(t *testing.T) *certificateFixture {
	t.Helper()
	local, err := filestorage.NewLocalBucket(t.TempDir(), "certificates")
	require.NoError(t, err)

	f := &certificateFixture{
		bucket:   &spyBucket{Bucket: local},
		faculty:  &mockFacultyRepo{},
		roles:    &mockRoleRepo{},
		notifier: &recordingNotifier{},
		member:   &models.FacultyMember{ID: uuid.New(), FirstName: "Mary Ann", LastName: "Evans", DepartmentID: uuid.New()},
	}
	f.svc = NewCertificateService(f.bucket, f.faculty, NewAccessChecker(f.roles), f.notifier, CertificateConfig{
		MaxFileSize:       1024,
		AllowedExtensions: []string{".pdf", ".jpg", ".jpeg", ".png"},
	}, zerolog.Nop())
	f.svc.now = func() time.Time { return time.UnixMilli(1700000000000) }
	f.faculty.On("GetByID", mock.Anything, f.member.ID).Return(f.member, nil).Maybe()
	return f
}

func (f *certificateFixture) upload(name, fileName, content string) *CertificateUpload {
	return &CertificateUpload{
		FacultyID:       f.member.ID,
		CertificateName: name,
		IssueDate:       "2024-03-01",
		FileName:        fileName,
		Size:            int64(len(content)),
		Content:         strings.NewReader(content),
	}
}

func TestCertificateUploadWritesFileAndIndex(t *testing.T) {
	f := newCertificateFixture(t)

	entry, err := f.svc.Upload(context.Background(), adminActor, f.upload("First Aid", "scan.PDF", "%PDF-1.4"))

	require.NoError(t, err)
	assert.Equal(t, "mary_ann_evans_first_aid_1700000000000.PDF", entry.FileName)
	assert.Equal(t, "Mary Ann Evans", entry.FacultyName)
	assert.Equal(t, f.member.ID.String(), entry.FacultyID)
	assert.Len(t, f.notifier.sent, 1)

	entries, err := f.svc.List(context.Background(), adminActor, f.member.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, *entry, entries[0])

	rc, _, err := f.svc.Download(context.Background(), adminActor, f.member.ID, entry.FileName)
	require.NoError(t, err)
	defer rc.Close()
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4", string(data))
}

func TestCertificateUploadRejectedBeforeStorage(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CertificateUpload)
		target error
	}{
		{"unsupported extension", func(u *CertificateUpload) { u.FileName = "payload.exe" }, apperrors.ErrUnsupportedFileType},
		{"too large", func(u *CertificateUpload) { u.Size = 2048 }, apperrors.ErrFileTooLarge},
		{"empty file", func(u *CertificateUpload) { u.Size = 0 }, apperrors.ErrEmptyFile},
		{"short name", func(u *CertificateUpload) { u.CertificateName = "ab" }, apperrors.ErrValidationFailed},
		{"bad date", func(u *CertificateUpload) { u.IssueDate = "01/03/2024" }, apperrors.ErrValidationFailed},
		{"missing faculty", func(u *CertificateUpload) { u.FacultyID = uuid.Nil }, apperrors.ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCertificateFixture(t)
			in := f.upload("First Aid", "scan.pdf", "%PDF-1.4")
			tt.mutate(in)

			_, err := f.svc.Upload(context.Background(), adminActor, in)

			assert.ErrorIs(t, err, tt.target)
			assert.Empty(t, f.bucket.uploads)
		})
	}
}

func TestCertificateUploadRemovesFileWhenIndexWriteFails(t *testing.T) {
	f := newCertificateFixture(t)
	f.bucket.failIndexWrite = true

	_, err := f.svc.Upload(context.Background(), adminActor, f.upload("First Aid", "scan.pdf", "%PDF-1.4"))

	require.Error(t, err)
	require.Len(t, f.bucket.removed, 1)
	assert.Contains(t, f.bucket.removed[0], "mary_ann_evans_first_aid_")

	objects, err := f.bucket.List(context.Background(), facultyFolder(f.member.ID))
	require.NoError(t, err)
	assert.Empty(t, objects)
	assert.Empty(t, f.notifier.sent)
}

func TestCertificateDelete(t *testing.T) {
	f := newCertificateFixture(t)
	first, err := f.svc.Upload(context.Background(), adminActor, f.upload("First Aid", "a.pdf", "one"))
	require.NoError(t, err)
	f.svc.now = func() time.Time { return time.UnixMilli(1700000000001) }
	second, err := f.svc.Upload(context.Background(), adminActor, f.upload("ISO 9001", "b.png", "two"))
	require.NoError(t, err)

	require.NoError(t, f.svc.Delete(context.Background(), adminActor, f.member.ID, first.FileName))

	entries, err := f.svc.Entries(context.Background(), f.member.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, second.FileName, entries[0].FileName)

	err = f.svc.Delete(context.Background(), adminActor, f.member.ID, first.FileName)
	assert.ErrorIs(t, err, apperrors.ErrCertificateNotFound)
	err = f.svc.Delete(context.Background(), adminActor, f.member.ID, certificateIndexName)
	assert.ErrorIs(t, err, apperrors.ErrCertificateNotFound)
}

func TestBlobName(t *testing.T) {
	member := &models.FacultyMember{FirstName: "Ada", LastName: "Lovelace"}
	at := time.UnixMilli(1700000000000)

	assert.Equal(t, "ada_lovelace_aws_cloud_cert_1700000000000.PDF", blobName(member, "AWS  Cloud Cert", "scan.PDF", at))
	assert.Equal(t, "ada_lovelace_cpr_1700000000000.jpeg", blobName(member, " CPR ", "photo.jpeg", at))
	assert.Equal(t, "ada_lovelace_a_b_1700000000000.pdf", blobName(member, "a/b", "x.pdf", at))
}

func TestCertificateDeleteUnindexesBeforeRemovingFile(t *testing.T) {
	f := newCertificateFixture(t)
	entry, err := f.svc.Upload(context.Background(), adminActor, f.upload("First Aid", "a.pdf", "one"))
	require.NoError(t, err)

	t.Run("index write fails", func(t *testing.T) {
		f.bucket.failIndexWrite = true
		defer func() { f.bucket.failIndexWrite = false }()

		err := f.svc.Delete(context.Background(), adminActor, f.member.ID, entry.FileName)

		require.Error(t, err)
		assert.Empty(t, f.bucket.removed)
		entries, err := f.svc.Entries(context.Background(), f.member.ID)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("file removal fails", func(t *testing.T) {
		f.bucket.failRemove = true

		err := f.svc.Delete(context.Background(), adminActor, f.member.ID, entry.FileName)

		require.NoError(t, err)
		assert.Len(t, f.bucket.removed, 1)
		entries, err := f.svc.Entries(context.Background(), f.member.ID)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}

func TestCertificateIndexCorrupt(t *testing.T) {
	f := newCertificateFixture(t)
	_, err := f.bucket.Bucket.Upload(context.Background(), indexPath(f.member.ID), bytes.NewReader([]byte("{not json")), filestorage.UploadOptions{Upsert: true})
	require.NoError(t, err)

	_, err = f.svc.CountForFaculty(context.Background(), f.member.ID)
	assert.ErrorIs(t, err, apperrors.ErrCertificateIndexCorrupt)
}

func TestCertificateAccessForOtherFaculty(t *testing.T) {
	f := newCertificateFixture(t)
	other := models.Principal{UserID: uuid.New(), Role: models.RoleFaculty}

	_, err := f.svc.List(context.Background(), other, f.member.ID)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	f.member.UserID = &other.UserID
	entries, err := f.svc.List(context.Background(), other, f.member.ID)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCertificateCountAll(t *testing.T) {
	f := newCertificateFixture(t)
	empty := &models.FacultyMember{ID: uuid.New()}
	f.faculty.On("List", mock.Anything, mock.Anything).Return([]*models.FacultyMember{f.member, empty}, nil)
	_, err := f.svc.Upload(context.Background(), adminActor, f.upload("First Aid", "a.pdf", "one"))
	require.NoError(t, err)

	n, err := f.svc.CountAll(context.Background(), nil)

	require.NoError(t, err)
	assert.EqualValues(t, 1, *n)
}
