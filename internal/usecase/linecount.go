package usecase

import (
	"sort"

	"sherlock/internal/adapter/fs"
	"sherlock/internal/domain"
	"sherlock/internal/logger"
	"sherlock/internal/port"
)

// DefaultTop is how many entries are kept when no limit is given.
const DefaultTop = 10

// LineCountOptions configures which files are counted and how results are
// grouped and truncated.
type LineCountOptions struct {
	Extension       string
	ExcludedFolders []string
	ExcludePatterns []string
	// Top limits how many entries are returned. Nil means DefaultTop; zero
	// returns nothing.
	Top     *int
	Grouped bool
	// IncludeEmptyGroups reports subdirectories with no matching files as
	// zero-line entries instead of leaving them out.
	IncludeEmptyGroups bool
}

// ProgressFunc is called after each file is counted.
type ProgressFunc func(processed, total int, currentFile string)

// LineCountUseCase counts lines of matching files under a root.
type LineCountUseCase struct {
	enum    *fs.Enumerator
	counter port.LineCounter
	log     logger.Logger
	opts    LineCountOptions
	top     int
}

// NewLineCountUseCase creates a new line count use case.
func NewLineCountUseCase(
	enum *fs.Enumerator,
	counter port.LineCounter,
	log logger.Logger,
	opts LineCountOptions,
) *LineCountUseCase {
	if enum == nil {
		enum = fs.NewEnumerator(log)
	}
	if counter == nil {
		counter = fs.LineCounter{}
	}
	if log == nil {
		log = logger.Discard
	}
	top := DefaultTop
	if opts.Top != nil {
		top = max(*opts.Top, 0)
	}
	return &LineCountUseCase{
		enum:    enum,
		counter: counter,
		log:     log,
		opts:    opts,
		top:     top,
	}
}

// Top returns the effective entry limit.
func (u *LineCountUseCase) Top() int {
	return u.top
}

// Options returns the effective options.
func (u *LineCountUseCase) Options() LineCountOptions {
	return u.opts
}

// Run dispatches to ByDirectory or ByPath depending on the Grouped option.
func (u *LineCountUseCase) Run(root string, progress ProgressFunc) []domain.LineCount {
	if u.opts.Grouped {
		return u.ByDirectory(root, progress)
	}
	return u.ByPath(root, progress)
}

// ByPath counts every matching file under root and returns the largest
// files first.
func (u *LineCountUseCase) ByPath(root string, progress ProgressFunc) []domain.LineCount {
	files := u.files(root)
	tracker := newTracker(len(files), progress)

	entries := make([]domain.LineCount, 0, len(files))
	for _, path := range files {
		if lines, ok := u.count(path, tracker); ok {
			entries = append(entries, domain.LineCount{Path: path, Lines: lines})
		}
	}
	return Rank(entries, u.top)
}

// ByDirectory totals matching files per immediate subdirectory of root.
// Files directly in root belong to no group and are ignored.
func (u *LineCountUseCase) ByDirectory(root string, progress ProgressFunc) []domain.LineCount {
	dirs := u.enum.Contents(root).Directories

	groups := make([][]string, len(dirs))
	total := 0
	for i, dir := range dirs {
		groups[i] = u.files(dir)
		total += len(groups[i])
	}
	tracker := newTracker(total, progress)

	entries := make([]domain.LineCount, 0, len(dirs))
	for i, dir := range dirs {
		sum, counted := 0, 0
		for _, path := range groups[i] {
			if lines, ok := u.count(path, tracker); ok {
				sum += lines
				counted++
			}
		}
		if counted == 0 && !u.opts.IncludeEmptyGroups {
			u.log.Debugf("no matching files under %s", dir)
			continue
		}
		entries = append(entries, domain.LineCount{Path: dir, Lines: sum})
	}
	return Rank(entries, u.top)
}

// files returns the filtered closure of root.
func (u *LineCountUseCase) files(root string) []string {
	return u.enum.Contents(root).
		AddFilter(fs.ExtensionEquals{Ext: u.opts.Extension}).
		AddFilter(fs.NotUnderFolders{Names: u.opts.ExcludedFolders}).
		AddFilter(fs.NotMatchingGlobs{Patterns: u.opts.ExcludePatterns}).
		Files()
}

// count returns the line count of path. Unreadable files are dropped.
func (u *LineCountUseCase) count(path string, tracker *tracker) (int, bool) {
	defer tracker.step(path)

	lines, err := u.counter.CountLines(path)
	if err != nil {
		u.log.Debugf("dropping %s: %v", path, err)
		return 0, false
	}
	return lines, true
}

// Rank sorts entries by line count, largest first, keeping the input order
// among equal counts, and truncates to top. top <= 0 keeps nothing.
func Rank(entries []domain.LineCount, top int) []domain.LineCount {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Lines > entries[j].Lines
	})
	top = max(top, 0)
	if len(entries) > top {
		entries = entries[:top]
	}
	return entries
}

type tracker struct {
	processed int
	total     int
	fn        ProgressFunc
}

func newTracker(total int, fn ProgressFunc) *tracker {
	return &tracker{total: total, fn: fn}
}

func (t *tracker) step(path string) {
	t.processed++
	if t.fn != nil {
		t.fn(t.processed, t.total, path)
	}
}
