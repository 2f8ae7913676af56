package file

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// LocalStorage reads files below a base directory. Paths escaping the base
// directory are rejected.
type LocalStorage struct {
	baseDir string
}

// NewLocalStorage resolves baseDir to an absolute path. The directory must exist.
func NewLocalStorage(baseDir string) (*LocalStorage, error) {
	if baseDir == "" {
		return nil, ErrInvalidConfig
	}

	abs, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToGetAbsolutePath, err)
	}

	info, err := os.Stat(abs)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, baseDir)
	case err != nil:
		return nil, fmt.Errorf("%w: %v", ErrFailedToStatPath, err)
	case !info.IsDir():
		return nil, fmt.Errorf("%w: %s is not a directory", ErrInvalidConfig, baseDir)
	}

	return &LocalStorage{baseDir: abs}, nil
}

// Stat returns the absolute path, size and modification time of path.
func (s *LocalStorage) Stat(ctx context.Context, path string) (*Info, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	full, err := s.resolve(path)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(full)
	if err != nil {
		return nil, classifyLocalError(err, path)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}

	return &Info{Path: full, Size: info.Size(), ModTime: info.ModTime()}, nil
}

// ReadFile reads the whole file at path.
func (s *LocalStorage) ReadFile(ctx context.Context, path string) ([]byte, error) {
	info, err := s.Stat(ctx, path)
	if err != nil {
		return nil, err
	}
	if info.Size > MaxFileSize {
		return nil, fmt.Errorf("%w: %s", ErrFileTooLarge, path)
	}

	f, err := os.Open(info.Path)
	if err != nil {
		return nil, classifyLocalError(err, path)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, MaxFileSize))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToReadFile, err)
	}
	return data, nil
}

// resolve joins path onto the base directory and rejects traversal.
func (s *LocalStorage) resolve(path string) (string, error) {
	if path == "" || filepath.IsAbs(path) {
		return "", fmt.Errorf("%w: %q", ErrInvalidPath, path)
	}

	full := filepath.Join(s.baseDir, filepath.Clean(path))
	rel, err := filepath.Rel(s.baseDir, full)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %q", ErrInvalidPath, path)
	}
	return full, nil
}

func classifyLocalError(err error, path string) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	return fmt.Errorf("%w: %v", ErrFailedToStatPath, err)
}
