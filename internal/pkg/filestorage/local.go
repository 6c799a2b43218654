package filestorage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/yigit/facultyhub/internal/pkg/logger"
)

// LocalBucket stores objects as files below basePath/name
type LocalBucket struct {
	name string
	root string
}

// NewLocalBucket creates the bucket directory if needed
func NewLocalBucket(basePath, name string) (*LocalBucket, error) {
	if name == "" || strings.ContainsAny(name, `/\`) {
		return nil, fmt.Errorf("%w: bucket name %q", ErrInvalidPath, name)
	}

	root := filepath.Join(basePath, name)
	if err := os.MkdirAll(root, 0o750); err != nil {
		logger.Error().Err(err).Str("path", root).Msg("Failed to create bucket directory")
		return nil, fmt.Errorf("failed to create bucket directory %s: %w", root, err)
	}
	logger.Info().Str("bucket", name).Str("path", root).Msg("Local bucket ready")

	return &LocalBucket{name: name, root: root}, nil
}

// Name returns the bucket name
func (b *LocalBucket) Name() string {
	return b.name
}

// cleanObjectPath rejects paths that could escape the bucket
func cleanObjectPath(p string) (string, error) {
	if p == "" || strings.HasPrefix(p, "/") || strings.Contains(p, `\`) {
		return "", fmt.Errorf("%w: %q", ErrInvalidPath, p)
	}
	for _, seg := range strings.Split(p, "/") {
		if seg == ".." {
			return "", fmt.Errorf("%w: %q", ErrInvalidPath, p)
		}
	}
	cleaned := path.Clean(p)
	if cleaned == "." {
		return "", fmt.Errorf("%w: %q", ErrInvalidPath, p)
	}
	return cleaned, nil
}

func (b *LocalBucket) fullPath(objectPath string) (string, string, error) {
	cleaned, err := cleanObjectPath(objectPath)
	if err != nil {
		return "", "", err
	}
	return cleaned, filepath.Join(b.root, filepath.FromSlash(cleaned)), nil
}

func contentTypeFor(objectPath string) string {
	if ct := mime.TypeByExtension(path.Ext(objectPath)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

// Upload writes r to objectPath. The content is staged in a temporary file so
// readers never observe a partially written object.
func (b *LocalBucket) Upload(ctx context.Context, objectPath string, r io.Reader, opts UploadOptions) (*ObjectInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cleaned, dst, err := b.fullPath(objectPath)
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(dst)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		logger.Error().Err(err).Str("path", dir).Msg("Failed to create object directory")
		return nil, fmt.Errorf("failed to create object directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".upload-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create temporary file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	size, err := io.Copy(tmp, r)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		logger.Error().Err(err).Str("object", cleaned).Msg("Failed to write object content")
		return nil, fmt.Errorf("failed to write object: %w", err)
	}

	if opts.Upsert {
		err = os.Rename(tmpName, dst)
	} else {
		// Link fails when dst exists, which gives create-only semantics atomically
		err = os.Link(tmpName, dst)
		if errors.Is(err, fs.ErrExist) {
			return nil, fmt.Errorf("%w: %s", ErrObjectExists, cleaned)
		}
	}
	if err != nil {
		logger.Error().Err(err).Str("object", cleaned).Msg("Failed to publish object")
		return nil, fmt.Errorf("failed to store object: %w", err)
	}

	ct := opts.ContentType
	if ct == "" {
		ct = contentTypeFor(cleaned)
	}

	logger.Debug().Str("bucket", b.name).Str("object", cleaned).Int64("size", size).Msg("Object stored")
	return &ObjectInfo{Path: cleaned, Size: size, ContentType: ct}, nil
}

// Download opens an object for reading. The caller closes the reader.
func (b *LocalBucket) Download(ctx context.Context, objectPath string) (io.ReadCloser, *ObjectInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	cleaned, full, err := b.fullPath(objectPath)
	if err != nil {
		return nil, nil, err
	}

	f, err := os.Open(full)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil, fmt.Errorf("%w: %s", ErrObjectNotFound, cleaned)
		}
		return nil, nil, fmt.Errorf("failed to open object: %w", err)
	}

	st, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("failed to stat object: %w", err)
	}
	if st.IsDir() {
		f.Close()
		return nil, nil, fmt.Errorf("%w: %s", ErrObjectNotFound, cleaned)
	}

	return f, &ObjectInfo{Path: cleaned, Size: st.Size(), ContentType: contentTypeFor(cleaned), UpdatedAt: st.ModTime()}, nil
}

// List returns the objects directly below prefix, sorted by path. A missing prefix yields an empty list.
func (b *LocalBucket) List(ctx context.Context, prefix string) ([]ObjectInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dir := b.root
	cleanedPrefix := ""
	if strings.Trim(prefix, "/") != "" {
		var err error
		cleanedPrefix, dir, err = b.fullPath(strings.Trim(prefix, "/"))
		if err != nil {
			return nil, err
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []ObjectInfo{}, nil
		}
		return nil, fmt.Errorf("failed to list objects: %w", err)
	}

	out := make([]ObjectInfo, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".upload-") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		p := e.Name()
		if cleanedPrefix != "" {
			p = cleanedPrefix + "/" + p
		}
		out = append(out, ObjectInfo{Path: p, Size: info.Size(), ContentType: contentTypeFor(p), UpdatedAt: info.ModTime()})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out, nil
}

// Remove deletes objects. Missing objects are ignored.
func (b *LocalBucket) Remove(ctx context.Context, objectPaths ...string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var errs []error
	for _, p := range objectPaths {
		cleaned, full, err := b.fullPath(p)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if err := os.Remove(full); err != nil && !errors.Is(err, fs.ErrNotExist) {
			logger.Error().Err(err).Str("object", cleaned).Msg("Failed to remove object")
			errs = append(errs, fmt.Errorf("failed to remove %s: %w", cleaned, err))
			continue
		}
		logger.Debug().Str("bucket", b.name).Str("object", cleaned).Msg("Object removed")
	}
	return errors.Join(errs...)
}
