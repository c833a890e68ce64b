package game

import (
	"bytes"
	"fmt"
	"log/slog"
	"path/filepath"

	gitignore "github.com/denormal/go-gitignore"
	"github.com/jakoblorz/savekeeper/internal/filesystem"
)

// IgnoreFileName is read from the root of a profiles directory. It uses
// gitignore syntax.
const IgnoreFileName = ".saveignore"

type ignoreFile struct {
	path    string
	matcher gitignore.GitIgnore
	logger  *slog.Logger
}

func (i *ignoreFile) Ignore(path string, isDir bool) bool {
	if path == i.path {
		return true
	}
	if i.matcher == nil {
		return false
	}
	match := i.matcher.Absolute(path, isDir)
	if match == nil || !match.Ignore() {
		return false
	}
	i.logger.Debug("ignored entry", "path", path, "pattern", match.String())
	return true
}

// loadIgnoreFile parses dir/.saveignore when present. The ignore file itself
// is always skipped.
func loadIgnoreFile(fs filesystem.FileSystem, dir string, logger *slog.Logger) (*ignoreFile, error) {
	path := filepath.Join(dir, IgnoreFileName)
	ignore := &ignoreFile{path: path, logger: logger}
	if !fs.FileExists(path) {
		return ignore, nil
	}

	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", IgnoreFileName, err)
	}
	ignore.matcher = gitignore.New(bytes.NewReader(data), dir, nil)
	return ignore, nil
}
