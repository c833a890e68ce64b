package filesystem

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// OSFileSystem implements FileSystem using real OS operations
type OSFileSystem struct{}

// NewOSFileSystem creates a new OSFileSystem
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

func (osfs *OSFileSystem) FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func (osfs *OSFileSystem) DirectoryExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// SameEntry only matches paths that differ at most in case, so a hard link
// under another name is a different entry.
func (osfs *OSFileSystem) SameEntry(a, b string) bool {
	if !strings.EqualFold(filepath.Clean(a), filepath.Clean(b)) {
		return false
	}
	ai, err := os.Lstat(a)
	if err != nil {
		return false
	}
	bi, err := os.Lstat(b)
	if err != nil {
		return false
	}
	return os.SameFile(ai, bi)
}

func (osfs *OSFileSystem) CopyFile(src, dst string, overwrite bool) error {
	in, err := os.Open(src)
	if err != nil {
		return wrap("copy", src, err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return wrap("copy", src, err)
	}
	if info.IsDir() {
		return wrap("copy", src, errors.New("is a directory"))
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !overwrite {
		flags |= os.O_EXCL
	}
	out, err := os.OpenFile(dst, flags, info.Mode().Perm())
	if err != nil {
		return wrap("copy", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		if !overwrite {
			// dst did not exist before this call
			_ = os.Remove(dst)
		}
		return wrap("copy", dst, err)
	}
	return wrap("copy", dst, out.Close())
}

func (osfs *OSFileSystem) MoveFile(src, dst string) error {
	if !osfs.FileExists(src) {
		return wrap("move", src, fs.ErrNotExist)
	}
	return osfs.rename(src, dst)
}

func (osfs *OSFileSystem) DeleteFile(path string) error {
	if osfs.DirectoryExists(path) {
		return wrap("delete", path, errors.New("is a directory"))
	}
	return wrap("delete", path, os.Remove(path))
}

func (osfs *OSFileSystem) CreateDirectory(path string) error {
	return wrap("mkdir", path, os.MkdirAll(path, 0755))
}

func (osfs *OSFileSystem) MoveDirectory(src, dst string) error {
	if !osfs.DirectoryExists(src) {
		return wrap("move", src, fs.ErrNotExist)
	}
	return osfs.rename(src, dst)
}

func (osfs *OSFileSystem) DeleteDirectory(path string, recursive bool) error {
	if !osfs.DirectoryExists(path) {
		return wrap("rmdir", path, fs.ErrNotExist)
	}
	if recursive {
		return wrap("rmdir", path, os.RemoveAll(path))
	}
	return wrap("rmdir", path, os.Remove(path))
}

func (osfs *OSFileSystem) ListChildDirectories(path string) ([]string, error) {
	return osfs.list(path, true)
}

func (osfs *OSFileSystem) ListFiles(path string) ([]string, error) {
	return osfs.list(path, false)
}

func (osfs *OSFileSystem) ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, wrap("read", path, err)
	}
	return data, nil
}

func (osfs *OSFileSystem) WriteFile(path string, data []byte, perm fs.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return wrap("write", path, err)
	}
	return wrap("write", path, os.WriteFile(path, data, perm))
}

// rename refuses to replace an existing destination; os.Rename would
// silently overwrite files on most platforms. A destination that is src
// itself under another case is allowed.
func (osfs *OSFileSystem) rename(src, dst string) error {
	if _, err := os.Lstat(dst); err == nil && !osfs.SameEntry(src, dst) {
		return wrap("move", dst, fs.ErrExist)
	}
	return wrap("move", src, os.Rename(src, dst))
}

func (osfs *OSFileSystem) list(path string, dirs bool) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, wrap("list", path, err)
	}

	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() != dirs {
			continue
		}
		paths = append(paths, filepath.Join(path, entry.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}
