package fs

import (
	"os"
	"strings"

	"sherlock/internal/logger"
)

// Kind is what a path looked like when it was observed.
type Kind int

const (
	KindAbsent Kind = iota
	KindFile
	KindDir
)

// Enumerator lists directory entries. Every filesystem error it meets is
// treated as absence of the entry, never returned to the caller.
type Enumerator struct {
	log logger.Logger
}

// NewEnumerator creates an enumerator. A nil logger discards debug output.
func NewEnumerator(log logger.Logger) *Enumerator {
	if log == nil {
		log = logger.Discard
	}
	return &Enumerator{log: log}
}

var defaultEnumerator = NewEnumerator(nil)

// Entries returns the paths directly inside dir in the order the filesystem
// reports them. Unreadable directories yield nothing.
func (e *Enumerator) Entries(dir string) []string {
	f, err := os.Open(dir)
	if e.absent(dir, err) {
		return nil
	}
	defer f.Close()

	// ReadDir returns what it managed to read alongside the error.
	entries, err := f.ReadDir(-1)
	if err != nil {
		e.log.Debugf("partial read of %s: %v", dir, err)
	}

	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		paths = append(paths, join(dir, entry.Name()))
	}
	return paths
}

// join appends name to dir without cleaning, so segments such as "x/.." in
// the root the user typed stay visible to filters and output. Children of
// "." are reported bare.
func join(dir, name string) string {
	switch {
	case dir == ".":
		return name
	case strings.HasSuffix(dir, string(os.PathSeparator)):
		return dir + name
	default:
		return dir + string(os.PathSeparator) + name
	}
}

// Classify stats path, following symlinks. Anything that cannot be stat'ed or
// is neither a regular file nor a directory is KindAbsent.
func (e *Enumerator) Classify(path string) Kind {
	info, err := os.Stat(path)
	if e.absent(path, err) {
		return KindAbsent
	}
	switch {
	case info.IsDir():
		return KindDir
	case info.Mode().IsRegular():
		return KindFile
	default:
		return KindAbsent
	}
}

// Contents constructs a PathContents rooted at root using this enumerator.
func (e *Enumerator) Contents(root string) *PathContents {
	pc := &PathContents{root: root, enum: e}
	for _, path := range e.Entries(root) {
		switch e.Classify(path) {
		case KindDir:
			pc.Directories = append(pc.Directories, path)
		case KindFile:
			pc.immediate = append(pc.immediate, path)
		}
	}
	pc.files = append([]string(nil), pc.immediate...)
	return pc
}

// absent is the single place filesystem errors are swallowed: any error means
// the entry does not exist for our purposes.
func (e *Enumerator) absent(path string, err error) bool {
	if err == nil {
		return false
	}
	e.log.Debugf("skipping %s: %v", path, err)
	return true
}
