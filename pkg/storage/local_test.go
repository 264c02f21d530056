package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func newTestLocal(t *testing.T, names ...string) *Local {
	t.Helper()
	dir := t.TempDir()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatalf("failed to create %s: %v", name, err)
		}
	}
	local, err := NewLocal(dir)
	if err != nil {
		t.Fatalf("NewLocal() error = %v", err)
	}
	return local
}

func TestNewLocal(t *testing.T) {
	t.Run("ValidDirectory", func(t *testing.T) {
		local := newTestLocal(t)
		defer local.Close()
		if local.Root() == "" {
			t.Error("Root() should not be empty")
		}
	})

	t.Run("NonExistentPath", func(t *testing.T) {
		if _, err := NewLocal(filepath.Join(t.TempDir(), "missing")); err == nil {
			t.Error("NewLocal() should fail for non-existent path")
		}
	})

	t.Run("FileNotDirectory", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "plain.txt")
		if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
			t.Fatalf("failed to create file: %v", err)
		}
		if _, err := NewLocal(file); err == nil {
			t.Error("NewLocal() should fail for a file path")
		}
	})
}

func TestLocalList(t *testing.T) {
	t.Run("NaturalOrderFilesOnly", func(t *testing.T) {
		local := newTestLocal(t, "img10.png", "img2.png", "notes.txt")
		defer local.Close()

		if err := os.Mkdir(filepath.Join(local.Root(), "subdir"), 0755); err != nil {
			t.Fatalf("failed to create subdir: %v", err)
		}

		files, err := local.List(context.Background())
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}

		want := []string{"img2.png", "img10.png", "notes.txt"}
		if len(files) != len(want) {
			t.Fatalf("List() returned %d entries, want %d", len(files), len(want))
		}
		for i, f := range files {
			if f.Name != want[i] {
				t.Errorf("List()[%d] = %s, want %s", i, f.Name, want[i])
			}
		}
	})

	t.Run("EmptyDirectory", func(t *testing.T) {
		local := newTestLocal(t)
		defer local.Close()

		files, err := local.List(context.Background())
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if len(files) != 0 {
			t.Errorf("List() returned %d entries, want 0", len(files))
		}
	})
}

func TestLocalRename(t *testing.T) {
	local := newTestLocal(t, "old.txt")
	defer local.Close()
	ctx := context.Background()

	if err := local.Rename(ctx, "old.txt", "new.txt"); err != nil {
		t.Fatalf("Rename() error = %v", err)
	}

	if ok, _ := local.Exists(ctx, "old.txt"); ok {
		t.Error("old.txt should be gone")
	}
	if ok, _ := local.Exists(ctx, "new.txt"); !ok {
		t.Error("new.txt should exist")
	}
}

func TestLocalRejectsPathEscapes(t *testing.T) {
	local := newTestLocal(t, "a.txt")
	defer local.Close()
	ctx := context.Background()

	if err := local.Rename(ctx, "a.txt", "../escape.txt"); err == nil {
		t.Error("Rename() should refuse names with path separators")
	}
	if _, err := local.Stat(ctx, ""); err == nil {
		t.Error("Stat() should refuse empty names")
	}
}

func TestLocalStat(t *testing.T) {
	local := newTestLocal(t, "a.txt")
	defer local.Close()

	info, err := local.Stat(context.Background(), "a.txt")
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if info.Name != "a.txt" {
		t.Errorf("Name = %s, want a.txt", info.Name)
	}
	if info.Size != 1 {
		t.Errorf("Size = %d, want 1", info.Size)
	}
}
