package filesystem

import (
	"io/fs"
)

// FileSystem provides an abstraction over file operations for testability.
// All paths are absolute. Every failure is reported as an *Error.
type FileSystem interface {
	// Existence checks
	FileExists(path string) bool
	DirectoryExists(path string) bool
	// SameEntry reports whether a and b both name one existing entry, as the
	// two spellings of a case-only rename do on a case-insensitive disk.
	SameEntry(a, b string) bool

	// File operations
	CopyFile(src, dst string, overwrite bool) error
	MoveFile(src, dst string) error
	DeleteFile(path string) error

	// Directory operations
	CreateDirectory(path string) error
	MoveDirectory(src, dst string) error
	DeleteDirectory(path string, recursive bool) error

	// Listings return absolute paths sorted by name
	ListChildDirectories(path string) ([]string, error)
	ListFiles(path string) ([]string, error)

	// Data files (application state, not savefiles)
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte, perm fs.FileMode) error
}
