package config

import (
	"io/fs"
	"os"
	"path"
	"time"
)

// MockFileSystem serves config files from memory.
type MockFileSystem struct {
	Files map[string][]byte
	// Dirs lists paths that exist as directories.
	Dirs        map[string]bool
	ReadErrors  map[string]error
	StatErrors  map[string]error
	UserHome    string
	UserHomeErr error
}

func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		Files:      make(map[string][]byte),
		Dirs:       make(map[string]bool),
		ReadErrors: make(map[string]error),
		StatErrors: make(map[string]error),
	}
}

func (m *MockFileSystem) ReadFile(name string) ([]byte, error) {
	if err, ok := m.ReadErrors[name]; ok {
		return nil, err
	}
	if m.Dirs[name] {
		return nil, &fs.PathError{Op: "read", Path: name, Err: fs.ErrInvalid}
	}
	content, ok := m.Files[name]
	if !ok {
		return nil, os.ErrNotExist
	}
	return content, nil
}

// Stat reports files, directories and paths with a read error as existing.
func (m *MockFileSystem) Stat(name string) (fs.FileInfo, error) {
	if err, ok := m.StatErrors[name]; ok {
		return nil, err
	}
	if m.Dirs[name] {
		return configInfo{name: path.Base(name), dir: true}, nil
	}
	_, isFile := m.Files[name]
	_, unreadable := m.ReadErrors[name]
	if !isFile && !unreadable {
		return nil, os.ErrNotExist
	}
	return configInfo{name: path.Base(name), size: int64(len(m.Files[name]))}, nil
}

func (m *MockFileSystem) UserHomeDir() (string, error) {
	if m.UserHomeErr != nil {
		return "", m.UserHomeErr
	}
	return m.UserHome, nil
}

func (m *MockFileSystem) IsNotExist(err error) bool {
	return os.IsNotExist(err)
}

type configInfo struct {
	name string
	size int64
	dir  bool
}

func (c configInfo) Name() string { return c.name }
func (c configInfo) Size() int64  { return c.size }
func (c configInfo) Mode() fs.FileMode {
	if c.dir {
		return fs.ModeDir | 0o755
	}
	return 0o644
}
func (c configInfo) ModTime() time.Time { return time.Time{} }
func (c configInfo) IsDir() bool        { return c.dir }
func (c configInfo) Sys() any           { return nil }
