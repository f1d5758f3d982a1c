package fs

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Filter removes entries from a file list. Implementations may shrink the
// slice in place but never add to it.
type Filter interface {
	Retain(paths []string) []string
}

// FilterFunc adapts a list-wise function to Filter.
type FilterFunc func(paths []string) []string

func (f FilterFunc) Retain(paths []string) []string {
	return f(paths)
}

// KeepFunc adapts an element-wise predicate to Filter. Paths for which it
// returns false are dropped; relative order is preserved.
type KeepFunc func(path string) bool

func (k KeepFunc) Retain(paths []string) []string {
	kept := paths[:0]
	for _, p := range paths {
		if k(p) {
			kept = append(kept, p)
		}
	}
	return kept
}

// All chains filters into one, applied in the given order.
func All(filters ...Filter) Filter {
	return FilterFunc(func(paths []string) []string {
		for _, f := range filters {
			paths = f.Retain(paths)
		}
		return paths
	})
}

// Extension returns the text after the last dot of the base name. Names with
// no dot, or whose only dot is the leading one (".bashrc"), have none.
func Extension(path string) (string, bool) {
	name := filepath.Base(path)
	i := strings.LastIndexByte(name, '.')
	if i <= 0 {
		return "", false
	}
	return name[i+1:], true
}

// ExtensionEquals keeps files whose extension is exactly ext. The comparison
// is case-sensitive and ext carries no leading dot.
type ExtensionEquals struct {
	Ext string
}

func (e ExtensionEquals) Keep(path string) bool {
	ext, ok := Extension(path)
	return ok && ext == e.Ext
}

func (e ExtensionEquals) Retain(paths []string) []string {
	return KeepFunc(e.Keep).Retain(paths)
}

// NotUnderFolders drops files with any path segment equal to one of Names.
// Every segment is checked, including the file name and ancestors above the
// search root.
type NotUnderFolders struct {
	Names []string
}

func (n NotUnderFolders) Keep(path string) bool {
	if len(n.Names) == 0 {
		return true
	}
	for _, segment := range Segments(path) {
		for _, name := range n.Names {
			if segment == name {
				return false
			}
		}
	}
	return true
}

func (n NotUnderFolders) Retain(paths []string) []string {
	return KeepFunc(n.Keep).Retain(paths)
}

// Segments splits path on the OS separator, dropping empty parts. A leading
// separator is kept as its own segment, like a filesystem root.
func Segments(path string) []string {
	var segments []string
	if strings.HasPrefix(path, string(os.PathSeparator)) {
		segments = append(segments, string(os.PathSeparator))
	}
	for _, part := range strings.Split(path, string(os.PathSeparator)) {
		if part != "" {
			segments = append(segments, part)
		}
	}
	return segments
}

// NotMatchingGlobs drops files whose slash-separated path matches any of the
// doublestar patterns. Malformed patterns match nothing.
type NotMatchingGlobs struct {
	Patterns []string
}

func (g NotMatchingGlobs) Keep(path string) bool {
	slashed := filepath.ToSlash(path)
	for _, pattern := range g.Patterns {
		matched, err := doublestar.Match(pattern, slashed)
		if err == nil && matched {
			return false
		}
	}
	return true
}

func (g NotMatchingGlobs) Retain(paths []string) []string {
	return KeepFunc(g.Keep).Retain(paths)
}
