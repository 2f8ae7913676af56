package file

import (
	"context"
	"time"
)

// MaxFileSize caps how much a Source reads into memory.
const MaxFileSize int64 = 256 << 20

// Info describes a stored object.
type Info struct {
	Path    string    // Location within the source; absolute for local files
	Size    int64     // Size in bytes
	ModTime time.Time // Last modification, zero when unknown
}

// Source reads whole files from a storage backend.
type Source interface {
	Stat(ctx context.Context, path string) (*Info, error)
	ReadFile(ctx context.Context, path string) ([]byte, error)
}
