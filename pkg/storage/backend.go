package storage

import (
	"context"
	"time"
)

// FileInfo describes one entry of the working directory
type FileInfo struct {
	Name    string
	Size    int64
	ModTime time.Time
}

// Backend defines directory access for the planner and executor. All names
// are plain file names resolved against the backend's root directory;
// listings are non-recursive and exclude subdirectories.
type Backend interface {
	// List returns the files of the root directory in natural order
	List(ctx context.Context) ([]FileInfo, error)

	// Rename moves oldName to newName within the root directory
	Rename(ctx context.Context, oldName, newName string) error

	// Exists checks whether a name is present in the root directory
	Exists(ctx context.Context, name string) (bool, error)

	// Stat returns metadata for a single entry
	Stat(ctx context.Context, name string) (*FileInfo, error)

	// Root returns the absolute path of the root directory
	Root() string

	// Close releases any resources held by the backend
	Close() error
}
