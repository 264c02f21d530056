package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fastrenamer/fastrenamer/pkg/natsort"
)

// Local is a filesystem-backed directory backend
type Local struct {
	rootPath string
}

// NewLocal creates a backend rooted at dirPath, which must be an existing
// directory
func NewLocal(dirPath string) (*Local, error) {
	absPath, err := filepath.Abs(dirPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to access path: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", absPath)
	}

	return &Local{rootPath: absPath}, nil
}

// List returns the directory's files in natural order, skipping
// subdirectories
func (l *Local) List(ctx context.Context) ([]FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(l.rootPath)
	if err != nil {
		return nil, fmt.Errorf("failed to list directory: %w", err)
	}

	var files []FileInfo
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", entry.Name(), err)
		}
		files = append(files, FileInfo{
			Name:    entry.Name(),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}

	sort.SliceStable(files, func(i, j int) bool {
		return natsort.Less(files[i].Name, files[j].Name)
	})
	return files, nil
}

// Rename moves oldName to newName within the root directory
func (l *Local) Rename(ctx context.Context, oldName, newName string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	oldPath, err := l.resolve(oldName)
	if err != nil {
		return err
	}
	newPath, err := l.resolve(newName)
	if err != nil {
		return err
	}
	return os.Rename(oldPath, newPath)
}

// Exists checks whether name is present in the root directory
func (l *Local) Exists(ctx context.Context, name string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	path, err := l.resolve(name)
	if err != nil {
		return false, err
	}

	_, err = os.Lstat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("failed to check existence: %w", err)
}

// Stat returns metadata for a single entry
func (l *Local) Stat(ctx context.Context, name string) (*FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path, err := l.resolve(name)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	return &FileInfo{
		Name:    info.Name(),
		Size:    info.Size(),
		ModTime: info.ModTime(),
	}, nil
}

// Root returns the absolute root directory path
func (l *Local) Root() string {
	return l.rootPath
}

// Close releases resources (no-op for the local filesystem)
func (l *Local) Close() error {
	return nil
}

// resolve joins name to the root, refusing names that escape it
func (l *Local) resolve(name string) (string, error) {
	if name == "" || strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("invalid file name: %q", name)
	}
	return filepath.Join(l.rootPath, name), nil
}
