// Package uploads stores user-submitted images on the local filesystem
// under owner-scoped paths and hands back their public URLs.
package uploads

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// allowedExtensions is the closed set of image types accepted for upload.
var allowedExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".webp": {},
	".gif":  {},
}

// Store writes uploaded files below a root directory, one subdirectory per
// owner, and maps stored files to URLs below a public base path.
type Store struct {
	dir     string
	baseURL string
	maxSize int64
}

// New creates a Store rooted at dir. The directory is created if missing.
func New(dir, baseURL string, maxSizeMB int) (*Store, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating upload directory: %w", err)
	}
	return &Store{
		dir:     dir,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		maxSize: int64(maxSizeMB) << 20,
	}, nil
}

// Result reports the outcome for one file in a batch. Failed files carry an
// Error and no URL; succeeded files are kept even when later files fail.
type Result struct {
	Name  string `json:"name"`
	URL   string `json:"url,omitempty"`
	Error string `json:"error,omitempty"`
}

// Save stores a single uploaded file for ownerID and returns its public URL.
// The stored name is a fresh UUID with the original extension; the client's
// filename never touches the filesystem.
func (s *Store) Save(ownerID string, fh *multipart.FileHeader) (string, error) {
	// ownerID names a single subdirectory; it must never traverse out of
	// the upload root.
	if ownerID == "" || strings.ContainsAny(ownerID, `/\`) || strings.Contains(ownerID, "..") {
		return "", fmt.Errorf("invalid owner id %q", ownerID)
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if _, ok := allowedExtensions[ext]; !ok {
		return "", fmt.Errorf("unsupported file type %q", ext)
	}
	if s.maxSize > 0 && fh.Size > s.maxSize {
		return "", fmt.Errorf("file exceeds %d MB limit", s.maxSize>>20)
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("opening upload: %w", err)
	}
	defer src.Close()

	ownerDir := filepath.Join(s.dir, ownerID)
	if err := os.MkdirAll(ownerDir, 0o750); err != nil {
		return "", fmt.Errorf("creating owner directory: %w", err)
	}

	name := uuid.NewString() + ext
	dstPath := filepath.Join(ownerDir, name)

	dst, err := os.Create(dstPath) //nolint:gosec // name is a generated UUID
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dstPath)
		return "", fmt.Errorf("writing file: %w", err)
	}

	return s.baseURL + "/" + path.Join(ownerID, name), nil
}

// SaveAll stores a batch sequentially, reporting per-file outcomes. A
// failure does not roll back files stored before it.
func (s *Store) SaveAll(ownerID string, files []*multipart.FileHeader) []Result {
	results := make([]Result, 0, len(files))
	for _, fh := range files {
		url, err := s.Save(ownerID, fh)
		if err != nil {
			results = append(results, Result{Name: fh.Filename, Error: err.Error()})
			continue
		}
		results = append(results, Result{Name: fh.Filename, URL: url})
	}
	return results
}

// Dir returns the filesystem root, for mounting as a static route.
func (s *Store) Dir() string {
	return s.dir
}
