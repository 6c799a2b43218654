package filestorage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBucket(t *testing.T) *LocalBucket {
	t.Helper()
	b, err := NewLocalBucket(t.TempDir(), "certificates")
	require.NoError(t, err)
	return b
}

func readAll(t *testing.T, b *LocalBucket, p string) string {
	t.Helper()
	rc, _, err := b.Download(context.Background(), p)
	require.NoError(t, err)
	defer rc.Close()
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	return string(data)
}

func TestLocalBucketUploadDownload(t *testing.T) {
	ctx := context.Background()
	b := newTestBucket(t)

	info, err := b.Upload(ctx, "faculty/42/cert.pdf", strings.NewReader("pdf-bytes"), UploadOptions{})
	require.NoError(t, err)
	assert.Equal(t, "faculty/42/cert.pdf", info.Path)
	assert.Equal(t, int64(9), info.Size)
	assert.Equal(t, "application/pdf", info.ContentType)

	assert.Equal(t, "pdf-bytes", readAll(t, b, "faculty/42/cert.pdf"))
}

func TestLocalBucketUploadWithoutUpsertRefusesOverwrite(t *testing.T) {
	ctx := context.Background()
	b := newTestBucket(t)

	_, err := b.Upload(ctx, "faculty/1/a.png", strings.NewReader("one"), UploadOptions{})
	require.NoError(t, err)

	_, err = b.Upload(ctx, "faculty/1/a.png", strings.NewReader("two"), UploadOptions{})
	assert.ErrorIs(t, err, ErrObjectExists)
	assert.Equal(t, "one", readAll(t, b, "faculty/1/a.png"))

	_, err = b.Upload(ctx, "faculty/1/a.png", strings.NewReader("three"), UploadOptions{Upsert: true})
	require.NoError(t, err)
	assert.Equal(t, "three", readAll(t, b, "faculty/1/a.png"))
}

func TestLocalBucketRejectsEscapingPaths(t *testing.T) {
	ctx := context.Background()
	b := newTestBucket(t)

	for _, p := range []string{"", "/etc/passwd", "../x", "faculty/../../x", `faculty\x`, "."} {
		_, err := b.Upload(ctx, p, strings.NewReader("x"), UploadOptions{})
		assert.ErrorIs(t, err, ErrInvalidPath, p)
	}
}

func TestLocalBucketListAndRemove(t *testing.T) {
	ctx := context.Background()
	b := newTestBucket(t)

	for _, p := range []string{"faculty/7/b.pdf", "faculty/7/a.pdf", "faculty/8/c.pdf"} {
		_, err := b.Upload(ctx, p, strings.NewReader(p), UploadOptions{})
		require.NoError(t, err)
	}

	objs, err := b.List(ctx, "faculty/7")
	require.NoError(t, err)
	require.Len(t, objs, 2)
	assert.Equal(t, "faculty/7/a.pdf", objs[0].Path)
	assert.Equal(t, "faculty/7/b.pdf", objs[1].Path)

	empty, err := b.List(ctx, "faculty/unknown")
	require.NoError(t, err)
	assert.Empty(t, empty)

	require.NoError(t, b.Remove(ctx, "faculty/7/a.pdf", "faculty/7/missing.pdf"))
	objs, err = b.List(ctx, "faculty/7/")
	require.NoError(t, err)
	assert.Len(t, objs, 1)

	_, _, err = b.Download(ctx, "faculty/7/a.pdf")
	assert.ErrorIs(t, err, ErrObjectNotFound)
}

func TestLocalBucketHonoursCancelledContext(t *testing.T) {
	b := newTestBucket(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := b.Upload(ctx, "faculty/1/x.pdf", strings.NewReader("x"), UploadOptions{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewLocalBucketRejectsBadName(t *testing.T) {
	_, err := NewLocalBucket(t.TempDir(), "a/b")
	assert.ErrorIs(t, err, ErrInvalidPath)
}
