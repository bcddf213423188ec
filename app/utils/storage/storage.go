package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"

	"github.com/google/uuid"
)

// Storage persists uploaded files under a public path and can remove them
// again. Implementations return the public path string that gets stored on
// the Image row.
type Storage interface {
	Store(file multipart.File, originalName string) (string, error)
	Remove(publicPath string) error
}

// PublicStorage writes files into a local directory served at publicPath.
type PublicStorage struct {
	dir        string
	publicPath string
}

func NewPublicStorage(dir, publicPath string) *PublicStorage {
	return &PublicStorage{dir: dir, publicPath: publicPath}
}

func (s *PublicStorage) Store(file multipart.File, originalName string) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	name := uuid.New().String() + filepath.Ext(originalName)
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}

	return path.Join(s.publicPath, name), nil
}

// Remove deletes the stored file behind a public path. A file that is
// already gone is not an error.
func (s *PublicStorage) Remove(publicPath string) error {
	err := os.Remove(filepath.Join(s.dir, path.Base(publicPath)))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
