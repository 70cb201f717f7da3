// Package textio provides line-oriented access to text files: a finite,
// lazy sequence of lines, restartable by opening the file again.
package textio

import (
	"bufio"
	"os"

	"github.com/pkg/errors"
)

// maxLineBytes bounds a single line. Embedding files carry at most a few
// hundred numeric fields per line, so this leaves plenty of headroom.
const maxLineBytes = 1 << 20

// Lines iterates over the lines of a text file. Use as:
//
//	lines, err := textio.Open(path)
//	...
//	defer lines.Close()
//	for lines.Next() {
//		process(lines.Text())
//	}
//	err = lines.Err()
type Lines struct {
	file    *os.File
	scanner *bufio.Scanner
}

// Open opens path for line iteration. The returned error wraps
// os.ErrNotExist when the file is missing.
func Open(path string) (*Lines, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %q", path)
	}
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	return &Lines{file: f, scanner: scanner}, nil
}

// Next advances to the next line. It returns false at end of file or on
// error; check Err after the loop to tell the two apart.
func (l *Lines) Next() bool {
	return l.scanner.Scan()
}

// Text returns the current line, trailing newline stripped.
func (l *Lines) Text() string {
	return l.scanner.Text()
}

// Err returns the first error hit while scanning, if any.
func (l *Lines) Err() error {
	return l.scanner.Err()
}

// Close closes the underlying file.
func (l *Lines) Close() error {
	return l.file.Close()
}
