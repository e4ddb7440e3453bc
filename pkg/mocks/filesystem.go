package mocks

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"sync"

	"github.com/user/ogimage/pkg/ports"
)

// FileSystem is an in-memory ports.FileSystem. Writes create parent
// directories, as the os-backed adapter does.
type FileSystem struct {
	mu    sync.RWMutex
	files map[string][]byte
	dirs  map[string]bool

	// WriteErr, when set, fails every WriteFile.
	WriteErr error
}

// NewFileSystem creates an empty FileSystem.
func NewFileSystem() *FileSystem {
	return &FileSystem{
		files: make(map[string][]byte),
		dirs:  make(map[string]bool),
	}
}

func (m *FileSystem) ReadFile(name string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.files[name]
	if !ok {
		return nil, fmt.Errorf("open %s: %w", name, fs.ErrNotExist)
	}
	return data, nil
}

func (m *FileSystem) WriteFile(name string, data []byte) error {
	if m.WriteErr != nil {
		return m.WriteErr
	}
	m.PutFile(name, data)
	return nil
}

func (m *FileSystem) MkdirAll(dir string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dirs[path.Clean(dir)] = true
	return nil
}

func (m *FileSystem) Exists(name string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, isFile := m.files[name]
	return isFile || m.dirs[path.Clean(name)], nil
}

// PutFile stores a file for test setup.
func (m *FileSystem) PutFile(name string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[name] = data
	if dir := path.Dir(name); dir != "." {
		m.dirs[dir] = true
	}
}

// GetFile returns a stored file.
func (m *FileSystem) GetFile(name string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.files[name]
	return data, ok
}

// Paths lists stored files in sorted order.
func (m *FileSystem) Paths() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	paths := make([]string, 0, len(m.files))
	for p := range m.files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

var _ ports.FileSystem = (*FileSystem)(nil)
