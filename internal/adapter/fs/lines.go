package fs

import (
	"bytes"
	"errors"
	"io"
	"os"
)

// CountLines returns the number of newline-terminated records in the file at
// path. A final line without a trailing newline still counts; an empty file
// has zero lines. Lines of any length are accepted.
func CountLines(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	return countLines(f)
}

func countLines(r io.Reader) (int, error) {
	buf := make([]byte, 32*1024)
	count := 0
	unterminated := false
	for {
		n, err := r.Read(buf)
		if n > 0 {
			count += bytes.Count(buf[:n], []byte{'\n'})
			unterminated = buf[n-1] != '\n'
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return 0, err
		}
	}
	if unterminated {
		count++
	}
	return count, nil
}

// LineCounter counts lines on disk.
type LineCounter struct{}

func (LineCounter) CountLines(path string) (int, error) {
	return CountLines(path)
}
