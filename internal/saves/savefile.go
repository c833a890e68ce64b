package saves

import (
	"path/filepath"

	"github.com/jakoblorz/savekeeper/internal/filesystem"
)

// Savefile is a single file in the mirrored tree.
type Savefile struct {
	node
}

// NewRootSavefile creates a parentless savefile at path, such as a game's
// current savefile. It can be overwritten but not renamed, deleted or moved.
func NewRootSavefile(fs filesystem.FileSystem, path string) *Savefile {
	return &Savefile{node: node{fs: fs, location: filepath.Clean(path)}}
}

func (s *Savefile) IsFolder() bool { return false }

func (s *Savefile) Exists() bool {
	return s.fs.FileExists(s.location)
}

func (s *Savefile) Rename(newName string) error {
	return rename(s, &s.node, newName, s.fs.MoveFile)
}

func (s *Savefile) Delete() error {
	return remove(s, &s.node, s.fs.DeleteFile)
}

func (s *Savefile) Move(newParent *Folder) error {
	return relocateTo(s, &s.node, newParent, s.fs.MoveFile)
}

func (s *Savefile) relocate(location string) {
	s.location = location
}

// CopyTo copies the file into dst under a name that is unique among dst's
// children and returns the new savefile.
func (s *Savefile) CopyTo(dst *Folder) (*Savefile, error) {
	if dst == nil {
		return nil, invalidInput("", "destination folder is required")
	}
	if !s.Exists() {
		return nil, missing(s.location)
	}
	if !dst.Exists() {
		return nil, missing(dst.Location())
	}

	target := filepath.Join(dst.Location(), GenerateFileName(s.Name(), dst.names()))
	if s.occupied(target) {
		return nil, occupied(target)
	}
	if err := s.fs.CopyFile(s.location, target, false); err != nil {
		return nil, err
	}

	copied := &Savefile{node: node{fs: s.fs, location: target}}
	dst.attach(copied)
	return copied, nil
}

// OverwriteContents replaces the contents of s with those of src. Neither
// item changes its place in the tree.
func (s *Savefile) OverwriteContents(src *Savefile) error {
	if src == nil {
		return invalidInput("", "source savefile is required")
	}
	if src == s || src.location == s.location {
		return invalidState("overwrite", "a savefile cannot overwrite itself")
	}
	if !s.Exists() {
		return missing(s.location)
	}
	if !src.Exists() {
		return missing(src.location)
	}
	return s.fs.CopyFile(src.location, s.location, true)
}
