package fs

// State tracks where a PathContents is in its walk.
type State int

const (
	Unwalked State = iota
	Walking
	Filtered
)

func (s State) String() string {
	switch s {
	case Unwalked:
		return "unwalked"
	case Walking:
		return "walking"
	case Filtered:
		return "filtered"
	default:
		return "unknown"
	}
}

// PathContents holds what lives under a root directory: its immediate
// subdirectories and, once walked, every file reachable from it.
type PathContents struct {
	// Directories are the immediate subdirectories of root, never expanded.
	Directories []string

	root      string
	enum      *Enumerator
	immediate []string
	files     []string
	filters   []Filter
	state     State
}

// NewPathContents enumerates root's immediate entries without recursing.
func NewPathContents(root string) *PathContents {
	return defaultEnumerator.Contents(root)
}

// Root returns the directory the contents were built from.
func (pc *PathContents) Root() string {
	return pc.root
}

// State returns the current walk state.
func (pc *PathContents) State() State {
	return pc.state
}

// AddFilter appends f to the filter chain. Filters run in registration order
// over the complete file list once the walk has finished.
func (pc *PathContents) AddFilter(f Filter) *PathContents {
	pc.filters = append(pc.filters, f)
	return pc
}

// Files walks every subdirectory, applies the filters to the accumulated
// closure and returns a copy of the result. Each call walks again from
// scratch.
func (pc *PathContents) Files() []string {
	pc.state = Walking
	files := pc.closure()
	for _, f := range pc.filters {
		files = f.Retain(files)
	}
	pc.files = files
	pc.state = Filtered

	out := make([]string, len(pc.files))
	copy(out, pc.files)
	return out
}

// closure returns root's immediate files followed by the unfiltered files of
// each subdirectory. Child collections are discarded once their paths are
// merged.
func (pc *PathContents) closure() []string {
	files := append([]string(nil), pc.immediate...)
	for _, dir := range pc.Directories {
		files = append(files, pc.enum.Contents(dir).closure()...)
	}
	return files
}
