package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// MockFileSystem provides in-memory filesystem for testing
type MockFileSystem struct {
	files    map[string]*MockFile
	failures map[string]error
}

// MockFile represents a file in the mock filesystem
type MockFile struct {
	Content []byte
	Mode    fs.FileMode
	ModTime time.Time
	IsDir   bool
}

// NewMockFileSystem creates a new MockFileSystem
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		files:    make(map[string]*MockFile),
		failures: make(map[string]error),
	}
}

// AddFile adds a file to the mock filesystem
func (mfs *MockFileSystem) AddFile(path string, content []byte) {
	cleanPath := filepath.Clean(path)
	mfs.files[cleanPath] = &MockFile{
		Content: content,
		Mode:    0644,
		ModTime: time.Now(),
		IsDir:   false,
	}
	mfs.ensureParents(cleanPath)
}

// AddDir adds a directory to the mock filesystem
func (mfs *MockFileSystem) AddDir(path string) {
	cleanPath := filepath.Clean(path)
	if _, exists := mfs.files[cleanPath]; !exists {
		mfs.files[cleanPath] = &MockFile{
			Mode:    0755 | fs.ModeDir,
			ModTime: time.Now(),
			IsDir:   true,
		}
	}
	mfs.ensureParents(cleanPath)
}

// FailOn makes the next call of op on path return err. Op names are the
// ones used in *Error: copy, move, delete, mkdir, rmdir, list, read, write.
func (mfs *MockFileSystem) FailOn(op, path string, err error) {
	mfs.failures[failureKey(op, filepath.Clean(path))] = err
}

func (mfs *MockFileSystem) ensureParents(cleanPath string) {
	dir := filepath.Dir(cleanPath)
	for dir != "." && dir != "/" && dir != cleanPath {
		if _, exists := mfs.files[dir]; !exists {
			mfs.AddDir(dir)
		}
		dir = filepath.Dir(dir)
	}
}

func failureKey(op, path string) string {
	return op + "\x00" + path
}

func (mfs *MockFileSystem) injected(op, path string) error {
	key := failureKey(op, path)
	if err, ok := mfs.failures[key]; ok {
		delete(mfs.failures, key)
		return &Error{Op: op, Path: path, Err: err}
	}
	return nil
}

func (mfs *MockFileSystem) FileExists(path string) bool {
	file, exists := mfs.files[filepath.Clean(path)]
	return exists && !file.IsDir
}

func (mfs *MockFileSystem) DirectoryExists(path string) bool {
	file, exists := mfs.files[filepath.Clean(path)]
	return exists && file.IsDir
}

// SameEntry is case-sensitive: the mock behaves like a case-sensitive disk.
func (mfs *MockFileSystem) SameEntry(a, b string) bool {
	a, b = filepath.Clean(a), filepath.Clean(b)
	_, exists := mfs.files[a]
	return exists && a == b
}

func (mfs *MockFileSystem) CopyFile(src, dst string, overwrite bool) error {
	src, dst = filepath.Clean(src), filepath.Clean(dst)
	if err := mfs.injected("copy", src); err != nil {
		return err
	}

	file, exists := mfs.files[src]
	if !exists {
		return &Error{Op: "copy", Path: src, Err: fs.ErrNotExist}
	}
	if file.IsDir {
		return &Error{Op: "copy", Path: src, Err: errors.New("is a directory")}
	}
	if err := mfs.requireParent("copy", dst); err != nil {
		return err
	}
	if existing, ok := mfs.files[dst]; ok {
		if !overwrite || existing.IsDir {
			return &Error{Op: "copy", Path: dst, Err: fs.ErrExist}
		}
	}

	content := make([]byte, len(file.Content))
	copy(content, file.Content)
	mfs.files[dst] = &MockFile{
		Content: content,
		Mode:    file.Mode,
		ModTime: time.Now(),
	}
	return nil
}

func (mfs *MockFileSystem) MoveFile(src, dst string) error {
	src, dst = filepath.Clean(src), filepath.Clean(dst)
	if err := mfs.injected("move", src); err != nil {
		return err
	}
	if !mfs.FileExists(src) {
		return &Error{Op: "move", Path: src, Err: fs.ErrNotExist}
	}
	if err := mfs.requireFree("move", dst); err != nil {
		return err
	}

	mfs.files[dst] = mfs.files[src]
	delete(mfs.files, src)
	return nil
}

func (mfs *MockFileSystem) DeleteFile(path string) error {
	path = filepath.Clean(path)
	if err := mfs.injected("delete", path); err != nil {
		return err
	}
	file, exists := mfs.files[path]
	if !exists {
		return &Error{Op: "delete", Path: path, Err: fs.ErrNotExist}
	}
	if file.IsDir {
		return &Error{Op: "delete", Path: path, Err: errors.New("is a directory")}
	}
	delete(mfs.files, path)
	return nil
}

func (mfs *MockFileSystem) CreateDirectory(path string) error {
	path = filepath.Clean(path)
	if err := mfs.injected("mkdir", path); err != nil {
		return err
	}
	if mfs.FileExists(path) {
		return &Error{Op: "mkdir", Path: path, Err: fs.ErrExist}
	}
	mfs.AddDir(path)
	return nil
}

func (mfs *MockFileSystem) MoveDirectory(src, dst string) error {
	src, dst = filepath.Clean(src), filepath.Clean(dst)
	if err := mfs.injected("move", src); err != nil {
		return err
	}
	if !mfs.DirectoryExists(src) {
		return &Error{Op: "move", Path: src, Err: fs.ErrNotExist}
	}
	if dst == src || strings.HasPrefix(dst, src+string(filepath.Separator)) {
		return &Error{Op: "move", Path: dst, Err: errors.New("destination inside source")}
	}
	if err := mfs.requireFree("move", dst); err != nil {
		return err
	}

	for _, p := range mfs.subtree(src) {
		rel := strings.TrimPrefix(p, src)
		mfs.files[dst+rel] = mfs.files[p]
		delete(mfs.files, p)
	}
	return nil
}

func (mfs *MockFileSystem) DeleteDirectory(path string, recursive bool) error {
	path = filepath.Clean(path)
	if err := mfs.injected("rmdir", path); err != nil {
		return err
	}
	if !mfs.DirectoryExists(path) {
		return &Error{Op: "rmdir", Path: path, Err: fs.ErrNotExist}
	}

	tree := mfs.subtree(path)
	if !recursive && len(tree) > 1 {
		return &Error{Op: "rmdir", Path: path, Err: errors.New("directory not empty")}
	}
	for _, p := range tree {
		delete(mfs.files, p)
	}
	return nil
}

func (mfs *MockFileSystem) ListChildDirectories(path string) ([]string, error) {
	return mfs.list(path, true)
}

func (mfs *MockFileSystem) ListFiles(path string) ([]string, error) {
	return mfs.list(path, false)
}

func (mfs *MockFileSystem) ReadFile(path string) ([]byte, error) {
	path = filepath.Clean(path)
	if err := mfs.injected("read", path); err != nil {
		return nil, err
	}
	file, exists := mfs.files[path]
	if !exists {
		return nil, &Error{Op: "read", Path: path, Err: fs.ErrNotExist}
	}
	if file.IsDir {
		return nil, &Error{Op: "read", Path: path, Err: errors.New("is a directory")}
	}
	return file.Content, nil
}

func (mfs *MockFileSystem) WriteFile(path string, data []byte, perm fs.FileMode) error {
	cleanPath := filepath.Clean(path)
	if err := mfs.injected("write", cleanPath); err != nil {
		return err
	}
	if mfs.DirectoryExists(cleanPath) {
		return &Error{Op: "write", Path: cleanPath, Err: errors.New("is a directory")}
	}

	mfs.ensureParents(cleanPath)
	mfs.files[cleanPath] = &MockFile{
		Content: data,
		Mode:    perm,
		ModTime: time.Now(),
		IsDir:   false,
	}
	return nil
}

func (mfs *MockFileSystem) requireParent(op, path string) error {
	dir := filepath.Dir(path)
	if dir != "." && dir != "/" && !mfs.DirectoryExists(dir) {
		return &Error{Op: op, Path: path, Err: fs.ErrNotExist}
	}
	return nil
}

func (mfs *MockFileSystem) requireFree(op, path string) error {
	if err := mfs.requireParent(op, path); err != nil {
		return err
	}
	if _, exists := mfs.files[path]; exists {
		return &Error{Op: op, Path: path, Err: fs.ErrExist}
	}
	return nil
}

// subtree returns path and every entry below it.
func (mfs *MockFileSystem) subtree(path string) []string {
	var paths []string
	for p := range mfs.files {
		if p == path || strings.HasPrefix(p, path+string(filepath.Separator)) {
			paths = append(paths, p)
		}
	}
	sort.Strings(paths)
	return paths
}

func (mfs *MockFileSystem) list(path string, dirs bool) ([]string, error) {
	cleanPath := filepath.Clean(path)
	if err := mfs.injected("list", cleanPath); err != nil {
		return nil, err
	}

	file, exists := mfs.files[cleanPath]
	if !exists {
		return nil, &Error{Op: "list", Path: cleanPath, Err: fs.ErrNotExist}
	}
	if !file.IsDir {
		return nil, &Error{Op: "list", Path: cleanPath, Err: errors.New("not a directory")}
	}

	var paths []string
	for p, f := range mfs.files {
		if p != cleanPath && filepath.Dir(p) == cleanPath && f.IsDir == dirs {
			paths = append(paths, p)
		}
	}

	// Sort entries by name for consistent ordering
	sort.Strings(paths)
	return paths, nil
}

// Paths returns every path in the mock filesystem, sorted
func (mfs *MockFileSystem) Paths() []string {
	paths := make([]string, 0, len(mfs.files))
	for p := range mfs.files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Tree lists every entry, one per line, marked D for directories and F for
// files. Tests print it when a filesystem assertion fails.
func (mfs *MockFileSystem) Tree() string {
	var b strings.Builder
	for _, p := range mfs.Paths() {
		marker := "F"
		if mfs.files[p].IsDir {
			marker = "D"
		}
		fmt.Fprintf(&b, "%s %s\n", marker, p)
	}
	return b.String()
}
