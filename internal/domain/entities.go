package domain

import "time"

// LineCount pairs a path (a file, or a directory in grouped mode) with its
// number of lines.
type LineCount struct {
	Path  string `json:"path"`
	Lines int    `json:"lines"`
}

// Report is a saved line-count run.
type Report struct {
	ID        uint64      `json:"id"`
	Root      string      `json:"root"`
	Extension string      `json:"extension"`
	Grouped   bool        `json:"grouped"`
	CreatedAt time.Time   `json:"created_at"`
	Entries   []LineCount `json:"entries"`
}

// Total sums the lines of every entry.
func (r Report) Total() int {
	total := 0
	for _, e := range r.Entries {
		total += e.Lines
	}
	return total
}
