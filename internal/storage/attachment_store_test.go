package storage_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"regform/internal/storage"
)

func TestSaveWritesFileAndMetadata(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.NewAttachmentStore(dir)
	assert.NoError(t, err)

	content := bytes.Repeat([]byte("a"), 10240)
	meta, err := store.Save("id-proof.pdf", "application/pdf", bytes.NewReader(content))
	assert.NoError(t, err)

	assert.Equal(t, "id-proof.pdf", meta.OriginalName)
	assert.Equal(t, "application/pdf", meta.ContentType)
	assert.Equal(t, int64(10240), meta.Size)
	assert.Contains(t, meta.StoredName, "id-proof.pdf")
	assert.NotEqual(t, "id-proof.pdf", meta.StoredName)
	assert.Equal(t, filepath.Join(dir, meta.StoredName), meta.Path)

	written, err := os.ReadFile(meta.Path)
	assert.NoError(t, err)
	assert.Equal(t, content, written)
}

func TestSaveDisambiguatesDuplicateNames(t *testing.T) {
	store, err := storage.NewAttachmentStore(t.TempDir())
	assert.NoError(t, err)

	first, err := store.Save("same.png", "image/png", bytes.NewReader([]byte("one")))
	assert.NoError(t, err)
	second, err := store.Save("same.png", "image/png", bytes.NewReader([]byte("two")))
	assert.NoError(t, err)

	assert.NotEqual(t, first.StoredName, second.StoredName)
	assert.Equal(t, first.OriginalName, second.OriginalName)

	// Both binaries survive side by side.
	one, _ := os.ReadFile(first.Path)
	two, _ := os.ReadFile(second.Path)
	assert.Equal(t, []byte("one"), one)
	assert.Equal(t, []byte("two"), two)
}

func TestSaveRejectsEmptyPayload(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.NewAttachmentStore(dir)
	assert.NoError(t, err)

	_, err = store.Save("empty.pdf", "application/pdf", bytes.NewReader(nil))
	assert.ErrorIs(t, err, storage.ErrMissingAttachment)

	// The zero-byte file must not be left behind.
	entries, err := os.ReadDir(dir)
	assert.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSaveUploadRejectsNilHeader(t *testing.T) {
	store, err := storage.NewAttachmentStore(t.TempDir())
	assert.NoError(t, err)

	_, err = store.SaveUpload(nil)
	assert.ErrorIs(t, err, storage.ErrMissingAttachment)
}

func TestSaveStripsDirectoryFromOriginalName(t *testing.T) {
	store, err := storage.NewAttachmentStore(t.TempDir())
	assert.NoError(t, err)

	meta, err := store.Save("../../etc/passwd", "text/plain", bytes.NewReader([]byte("x")))
	assert.NoError(t, err)
	assert.Equal(t, "passwd", meta.OriginalName)
	assert.NotContains(t, meta.StoredName, "/")
}
