package vocab

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gofrs/flock"
	"github.com/pkg/errors"

	"github.com/gomlx/go-vocab/internal/textio"
)

// Save writes the vocabulary as one "token<TAB>count" line per index, in
// index order, so that Load rebuilds the exact same index assignment.
//
// The data is written to path+".tmp" and atomically renamed over path, and
// a path+".lock" file lock coordinates writers from other processes.
func (v *Vocabulary) Save(path string) error {
	lockPath := path + ".lock"
	fileLock := flock.New(lockPath)
	if err := fileLock.Lock(); err != nil {
		return errors.Wrapf(err, "failed to acquire lock %q", lockPath)
	}
	defer func() { _ = fileLock.Unlock() }()

	tmpPath := path + ".tmp"
	f, err := os.Create(tmpPath)
	if err != nil {
		return errors.Wrapf(err, "failed to create temporary file %q", tmpPath)
	}
	w := bufio.NewWriter(f)
	for _, token := range v.indexToToken {
		if _, err := fmt.Fprintf(w, "%s\t%d\n", token, v.counts[token]); err != nil {
			_ = f.Close()
			_ = os.Remove(tmpPath)
			return errors.Wrapf(err, "failed to write %q", tmpPath)
		}
	}
	if err := w.Flush(); err != nil {
		_ = f.Close()
		_ = os.Remove(tmpPath)
		return errors.Wrapf(err, "failed to flush %q", tmpPath)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return errors.Wrapf(err, "failed to close %q", tmpPath)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return errors.Wrapf(err, "failed to move %q to %q", tmpPath, path)
	}
	return nil
}

// Load rebuilds a vocabulary from a counts file written by Save. Lines are
// replayed through AddCount in order, which reproduces the saved index
// assignment. The unknown argument mirrors the constructors and must match
// the sentinel the vocabulary was saved with: pass "" for a vocabulary
// built without fallback. Blank lines are skipped.
func Load(path, unknown string) (*Vocabulary, error) {
	lines, err := textio.Open(path)
	if err != nil {
		return nil, errors.WithMessagef(err, "while loading vocabulary from %q", path)
	}
	defer func() { _ = lines.Close() }()

	var v *Vocabulary
	if unknown != "" {
		v = NewWithUnknown(unknown)
	} else {
		v = NewWithoutUnknown()
	}
	lineNum := 0
	for lines.Next() {
		lineNum++
		line := lines.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		token, countField, ok := strings.Cut(line, "\t")
		if !ok {
			return nil, errors.Errorf("line %d of %q is not token<TAB>count: %q", lineNum, path, line)
		}
		count, err := strconv.Atoi(countField)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d of %q has a bad count for token %q", lineNum, path, token)
		}
		v.AddCount(token, count)
	}
	if err := lines.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to read vocabulary file %q", path)
	}
	return v, nil
}
