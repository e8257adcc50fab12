package textbuf

import (
	"io"
	"os"
	"path/filepath"

	"github.com/dimchansky/utfbom"
	"github.com/pkg/errors"
)

// SourceStore reads and writes whole source files.
type SourceStore interface {
	ReadAll(path string) (string, error)
	WriteAll(path, text string) error
}

// FileStore is a SourceStore on the local file system. A UTF-8 byte order
// mark is dropped on read. When Atomic is true, WriteAll writes a temporary
// file next to the target and renames it over the target.
type FileStore struct {
	Atomic bool
	Perm   os.FileMode
}

// NewFileStore returns a FileStore that writes atomically with mode 0644 for new files.
func NewFileStore() *FileStore {
	return &FileStore{Atomic: true, Perm: 0o644}
}

func (s *FileStore) ReadAll(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", errors.Wrap(err, "open")
	}
	defer f.Close()
	b, err := io.ReadAll(utfbom.SkipOnly(f))
	if err != nil {
		return "", errors.Wrap(err, "read")
	}
	return string(b), nil
}

func (s *FileStore) WriteAll(path, text string) error {
	perm := s.Perm
	if fi, err := os.Stat(path); err == nil {
		perm = fi.Mode().Perm()
	}
	if perm == 0 {
		perm = 0o644
	}
	if !s.Atomic {
		return errors.Wrap(os.WriteFile(path, []byte(text), perm), "write")
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return errors.Wrap(err, "create temporary file")
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.WriteString(text); err != nil {
		tmp.Close()
		return errors.Wrap(err, "write")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "close")
	}
	if err := os.Chmod(tmp.Name(), perm); err != nil {
		return errors.Wrap(err, "chmod")
	}
	return errors.Wrap(os.Rename(tmp.Name(), path), "rename")
}
