package osfilesystem

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSystem_WriteAndReadFile(t *testing.T) {
	dir := t.TempDir()
	fs := New()
	path := filepath.Join(dir, "card.png")

	if err := fs.WriteFile(path, []byte("first")); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if err := fs.WriteFile(path, []byte("second")); err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}

	data, err := fs.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != "second" {
		t.Errorf("expected %q, got %q", "second", data)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode().Perm() != filePerm {
		t.Errorf("expected mode %o, got %o", filePerm, info.Mode().Perm())
	}
}

func TestFileSystem_WriteFileLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	fs := New()

	if err := fs.WriteFile(filepath.Join(dir, "card.png"), []byte("data")); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "card.png" {
		t.Errorf("unexpected directory contents: %v", entries)
	}
}

func TestFileSystem_WriteFileCreatesParentDirs(t *testing.T) {
	dir := t.TempDir()
	fs := New()
	path := filepath.Join(dir, "out", "cards", "card.png")

	if err := fs.WriteFile(path, []byte("data")); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %v", err)
	}
}

func TestFileSystem_MkdirAll(t *testing.T) {
	dir := t.TempDir()
	fs := New()
	path := filepath.Join(dir, "a", "b")

	if err := fs.MkdirAll(path); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		t.Errorf("expected directory at %s", path)
	}
	if err := fs.MkdirAll("."); err != nil {
		t.Errorf("MkdirAll(.) failed: %v", err)
	}
}

func TestFileSystem_Exists(t *testing.T) {
	dir := t.TempDir()
	fs := New()
	path := filepath.Join(dir, "photo.jpg")

	exists, err := fs.Exists(path)
	if err != nil || exists {
		t.Errorf("expected missing file, got exists=%v err=%v", exists, err)
	}

	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	exists, err = fs.Exists(path)
	if err != nil || !exists {
		t.Errorf("expected file to exist, got exists=%v err=%v", exists, err)
	}
}
