package filesystem

import (
	"os"
)

// FileSystem defines filesystem operations for testability.
//
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -source=$GOFILE -destination=mock_$GOFILE -package=$GOPACKAGE
type FileSystem interface {
	// Stat returns file info.
	Stat(name string) (os.FileInfo, error)

	// MkdirAll creates a directory and all parent directories.
	MkdirAll(path string, perm os.FileMode) error

	// ReadFile reads a file.
	ReadFile(name string) ([]byte, error)

	// WriteFileAtomic writes data so that readers never observe a partial file.
	WriteFileAtomic(name string, data []byte, perm os.FileMode) error

	// Remove removes a file or empty directory.
	Remove(name string) error
}
