package filestorage

import (
	"context"
	"errors"
	"io"
	"time"
)

// Storage errors
var (
	ErrObjectNotFound = errors.New("object not found")
	ErrObjectExists   = errors.New("object already exists")
	ErrInvalidPath    = errors.New("invalid object path")
)

// ObjectInfo describes a stored object
type ObjectInfo struct {
	Path        string    // Slash separated path inside the bucket
	Size        int64     // Size in bytes
	ContentType string    // Guessed from the extension
	UpdatedAt   time.Time // Last modification time
}

// UploadOptions controls how Upload treats an existing object
type UploadOptions struct {
	ContentType string
	// Upsert replaces an existing object instead of failing with ErrObjectExists
	Upsert bool
}

// Bucket is a flat namespace of objects addressed by slash separated paths
type Bucket interface {
	Name() string
	Upload(ctx context.Context, objectPath string, r io.Reader, opts UploadOptions) (*ObjectInfo, error)
	Download(ctx context.Context, objectPath string) (io.ReadCloser, *ObjectInfo, error)
	List(ctx context.Context, prefix string) ([]ObjectInfo, error)
	Remove(ctx context.Context, objectPaths ...string) error
}
