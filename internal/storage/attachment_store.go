package storage

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"regform/internal/models"
)

// ErrMissingAttachment is returned when a required upload is absent or
// empty. Handlers report it separately from field validation errors.
var ErrMissingAttachment = errors.New("missing required attachment")

// AttachmentStore writes uploaded ID proof files to a fixed directory
// under collision-resistant names and reports their metadata.
type AttachmentStore struct {
	dir string
}

// NewAttachmentStore creates the storage directory if needed and
// returns a store rooted there.
func NewAttachmentStore(dir string) (*AttachmentStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", dir, err)
	}
	return &AttachmentStore{dir: dir}, nil
}

// Dir returns the storage directory, used to mount the public file route.
func (s *AttachmentStore) Dir() string {
	return s.dir
}

// SaveUpload stores the file of a multipart upload. A nil header or a
// declared size of zero is rejected as a missing attachment before any
// bytes are read.
func (s *AttachmentStore) SaveUpload(fh *multipart.FileHeader) (models.AttachmentMeta, error) {
	if fh == nil || fh.Size == 0 {
		return models.AttachmentMeta{}, ErrMissingAttachment
	}
	src, err := fh.Open()
	if err != nil {
		return models.AttachmentMeta{}, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	return s.Save(fh.Filename, fh.Header.Get("Content-Type"), src)
}

// Save writes the contents of r under a stored name composed of a
// random disambiguator and the original name, so concurrent uploads of
// the same file never collide. An empty payload is removed again and
// reported as a missing attachment.
func (s *AttachmentStore) Save(originalName, contentType string, r io.Reader) (models.AttachmentMeta, error) {
	storedName := uuid.New().String() + "-" + filepath.Base(originalName)
	path := filepath.Join(s.dir, storedName)

	dst, err := os.Create(path)
	if err != nil {
		return models.AttachmentMeta{}, fmt.Errorf("failed to create attachment file: %w", err)
	}

	size, err := io.Copy(dst, r)
	closeErr := dst.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(path)
		return models.AttachmentMeta{}, fmt.Errorf("failed to write attachment file: %w", err)
	}
	if size == 0 {
		os.Remove(path)
		return models.AttachmentMeta{}, ErrMissingAttachment
	}

	return models.AttachmentMeta{
		OriginalName: filepath.Base(originalName),
		StoredName:   storedName,
		ContentType:  contentType,
		Size:         size,
		Path:         path,
	}, nil
}
