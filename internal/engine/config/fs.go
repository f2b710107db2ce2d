package config

import (
	"io/fs"
	"os"
)

// FileSystem is the part of the file system the Loader reads config from.
type FileSystem interface {
	ReadFile(name string) ([]byte, error)
	// Stat lets the Loader tell a config file from a directory of the same name.
	Stat(name string) (fs.FileInfo, error)
	UserHomeDir() (string, error)
	IsNotExist(err error) bool
}

// RealFileSystem reads config files from disk.
type RealFileSystem struct{}

func (r *RealFileSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name) // #nosec G304 -- config paths are built from the home directory and repository root
}

func (r *RealFileSystem) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

func (r *RealFileSystem) UserHomeDir() (string, error) {
	return os.UserHomeDir()
}

func (r *RealFileSystem) IsNotExist(err error) bool {
	return os.IsNotExist(err)
}
