package buffer

import (
	"fmt"
	"io/fs"
	"unicode/utf8"
)

// FileStats summarizes a file read into the buffer.
type FileStats struct {
	Lines int
	Chars int
}

// String formats the stats the way a line editor reports a read.
func (s FileStats) String() string {
	return fmt.Sprintf("%dL, %dC", s.Lines, s.Chars)
}

// ReadLines reads name from fsys and splits it into lines.
func ReadLines(fsys fs.FS, name string) ([]string, FileStats, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, FileStats{}, fmt.Errorf("reading %s: %w", name, err)
	}

	lines := SplitLines(string(data))
	stats := FileStats{Lines: len(lines)}
	for _, l := range lines {
		stats.Chars += utf8.RuneCountInString(l)
	}
	return lines, stats, nil
}
