package saves

import (
	"path/filepath"
	"strings"

	"github.com/jakoblorz/savekeeper/internal/filesystem"
)

// Ignorer decides which entries discovery skips.
type Ignorer interface {
	Ignore(path string, isDir bool) bool
}

// Folder is a directory in the mirrored tree. It owns its children; each
// child points back at it.
type Folder struct {
	node
	children []Item
	open     bool
	ignore   Ignorer
}

// NewRootFolder creates a parentless folder at path. Roots cannot be renamed,
// deleted or moved; replace them at the owner instead.
func NewRootFolder(fs filesystem.FileSystem, path string) *Folder {
	return &Folder{node: node{fs: fs, location: filepath.Clean(path)}}
}

// WithIgnorer sets the filter used by LoadChildren for this folder and every
// folder discovered below it.
func (f *Folder) WithIgnorer(ignore Ignorer) *Folder {
	f.ignore = ignore
	return f
}

func (f *Folder) newChildFolder(path string) *Folder {
	return &Folder{
		node:   node{fs: f.fs, location: path, parent: f},
		ignore: f.ignore,
	}
}

func (f *Folder) IsFolder() bool { return true }

func (f *Folder) Exists() bool {
	return f.fs.DirectoryExists(f.location)
}

// Children returns the sorted children. The slice must not be modified.
func (f *Folder) Children() []Item {
	return f.children
}

// IsOpen reports whether the folder's children are shown in the flattened
// view. It has no filesystem meaning.
func (f *Folder) IsOpen() bool { return f.open }

func (f *Folder) SetOpen(open bool) { f.open = open }

func (f *Folder) ToggleOpen() { f.open = !f.open }

// Find returns the child called name, compared case-insensitively, or nil.
func (f *Folder) Find(name string) Item {
	for _, child := range f.children {
		if strings.EqualFold(child.Name(), name) {
			return child
		}
	}
	return nil
}

// Resolve walks a slash separated path relative to f. An empty path or "."
// resolves to f itself.
func (f *Folder) Resolve(rel string) (Item, error) {
	var current Item = f
	for _, part := range strings.Split(filepath.ToSlash(rel), "/") {
		if part == "" || part == "." {
			continue
		}
		folder, ok := current.(*Folder)
		if !ok {
			return nil, invalidInput(rel, current.Name()+" is not a folder")
		}
		if current = folder.Find(part); current == nil {
			return nil, invalidInput(rel, "no item named "+part+" in "+folder.Name())
		}
	}
	return current, nil
}

// Contains reports whether item is f or lies below it.
func (f *Folder) Contains(item Item) bool {
	if item == nil {
		return false
	}
	if other, ok := item.(*Folder); ok && other == f {
		return true
	}
	for p := item.Parent(); p != nil; p = p.Parent() {
		if p == f {
			return true
		}
	}
	return false
}

// LoadChildren replaces the children with a fresh recursive listing of the
// directory. Open folders that are still present stay open. On error the
// existing children are kept.
func (f *Folder) LoadChildren() error {
	children, err := f.discover()
	if err != nil {
		return err
	}
	f.children = children
	return nil
}

func (f *Folder) discover() ([]Item, error) {
	dirs, err := f.fs.ListChildDirectories(f.location)
	if err != nil {
		return nil, err
	}
	files, err := f.fs.ListFiles(f.location)
	if err != nil {
		return nil, err
	}

	children := make([]Item, 0, len(dirs)+len(files))
	for _, dir := range dirs {
		if f.ignore != nil && f.ignore.Ignore(dir, true) {
			continue
		}
		child := f.newChildFolder(dir)
		if previous, ok := f.Find(child.Name()).(*Folder); ok {
			child.open = previous.open
			child.children = previous.children
		}
		grandchildren, err := child.discover()
		if err != nil {
			return nil, err
		}
		child.children = grandchildren
		children = append(children, child)
	}
	for _, file := range files {
		if f.ignore != nil && f.ignore.Ignore(file, false) {
			continue
		}
		children = append(children, &Savefile{node: node{fs: f.fs, location: file, parent: f}})
	}

	sortItems(children)
	return children, nil
}

// CreateChild creates a subdirectory called name and adds it to the tree.
func (f *Folder) CreateChild(name string) (*Folder, error) {
	if err := ValidateName(name, f.names()); err != nil {
		return nil, err
	}
	if !f.Exists() {
		return nil, missing(f.location)
	}

	target := filepath.Join(f.location, name)
	if f.occupied(target) {
		return nil, occupied(target)
	}
	if err := f.fs.CreateDirectory(target); err != nil {
		return nil, err
	}

	child := f.newChildFolder(target)
	f.attach(child)
	return child, nil
}

// SortChildren restores the folders-first, alphabetical order.
func (f *Folder) SortChildren() {
	sortItems(f.children)
}

func (f *Folder) Rename(newName string) error {
	return rename(f, &f.node, newName, f.fs.MoveDirectory)
}

func (f *Folder) Delete() error {
	return remove(f, &f.node, func(path string) error {
		return f.fs.DeleteDirectory(path, true)
	})
}

func (f *Folder) Move(newParent *Folder) error {
	if f.parent != nil && newParent != nil && f.Contains(newParent) {
		return invalidState("move", "cannot move a folder into itself")
	}
	return relocateTo(f, &f.node, newParent, f.fs.MoveDirectory)
}

// relocate rewrites the location of f and every descendant below it.
func (f *Folder) relocate(location string) {
	f.location = location
	for _, child := range f.children {
		child.relocate(filepath.Join(location, child.Name()))
	}
}

func (f *Folder) attach(item Item) {
	item.setParent(f)
	f.children = append(f.children, item)
	f.SortChildren()
}

func (f *Folder) detach(item Item) {
	for i, child := range f.children {
		if child == item {
			f.children = append(f.children[:i:i], f.children[i+1:]...)
			break
		}
	}
	item.setParent(nil)
}

func (f *Folder) names() []string {
	return f.namesExcept(nil)
}

func (f *Folder) namesExcept(skip Item) []string {
	names := make([]string, 0, len(f.children))
	for _, child := range f.children {
		if child != skip {
			names = append(names, child.Name())
		}
	}
	return names
}
