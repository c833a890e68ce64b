package saves

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/jakoblorz/savekeeper/internal/filesystem"
)

// Item is a Folder or a Savefile in the mirrored tree.
//
// Location is only changed by the item itself after the filesystem accepted
// the change. Exists always asks the filesystem.
type Item interface {
	Name() string
	Location() string
	Exists() bool
	Parent() *Folder
	IsFolder() bool

	Rename(newName string) error
	Delete() error
	Move(newParent *Folder) error

	relocate(location string)
	setParent(parent *Folder)
}

// node holds the state shared by folders and savefiles.
type node struct {
	fs       filesystem.FileSystem
	location string
	parent   *Folder
}

func (n *node) Name() string {
	return filepath.Base(n.location)
}

func (n *node) Location() string {
	return n.location
}

func (n *node) Parent() *Folder {
	return n.parent
}

func (n *node) setParent(parent *Folder) {
	n.parent = parent
}

func (n *node) occupied(path string) bool {
	return n.fs.FileExists(path) || n.fs.DirectoryExists(path)
}

// mover performs the filesystem half of a rename or move.
type mover func(src, dst string) error

func rename(item Item, n *node, newName string, move mover) error {
	parent := n.parent
	if parent == nil {
		return invalidState("rename", "item has no parent")
	}
	if newName == item.Name() {
		return invalidInput(newName, "name is unchanged")
	}
	if err := ValidateName(newName, parent.namesExcept(item)); err != nil {
		return err
	}
	if !item.Exists() {
		return missing(n.location)
	}

	target := filepath.Join(parent.Location(), newName)
	// a case-only rename finds the item itself on case-insensitive disks
	if n.occupied(target) && !n.fs.SameEntry(n.location, target) {
		return occupied(target)
	}
	if err := move(n.location, target); err != nil {
		return err
	}

	item.relocate(target)
	parent.SortChildren()
	return nil
}

func remove(item Item, n *node, del func(path string) error) error {
	parent := n.parent
	if parent == nil {
		return invalidState("delete", "item has no parent")
	}
	if !item.Exists() {
		return missing(n.location)
	}
	if err := del(n.location); err != nil {
		return err
	}

	parent.detach(item)
	return nil
}

func relocateTo(item Item, n *node, newParent *Folder, move mover) error {
	parent := n.parent
	if parent == nil {
		return invalidState("move", "item has no parent")
	}
	if newParent == nil {
		return invalidInput("", "destination folder is required")
	}
	if newParent == parent {
		return invalidInput(newParent.Location(), "item is already in this folder")
	}
	if newParent.Find(item.Name()) != nil {
		return invalidInput(item.Name(), "destination already has an item with this name")
	}
	if !item.Exists() {
		return missing(n.location)
	}
	if !newParent.Exists() {
		return missing(newParent.Location())
	}

	target := filepath.Join(newParent.Location(), item.Name())
	if n.occupied(target) {
		return occupied(target)
	}
	if err := move(n.location, target); err != nil {
		return err
	}

	parent.detach(item)
	newParent.attach(item)
	item.relocate(target)
	return nil
}

// sortItems orders folders before files, each group by case-insensitive
// name with the raw name as tie breaker.
func sortItems(items []Item) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.IsFolder() != b.IsFolder() {
			return a.IsFolder()
		}
		la, lb := strings.ToLower(a.Name()), strings.ToLower(b.Name())
		if la != lb {
			return la < lb
		}
		return a.Name() < b.Name()
	})
}
