package textio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAndIterate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lines.txt")
	require.NoError(t, os.WriteFile(path, []byte("first\n\nthird\n"), 0o644))

	lines, err := Open(path)
	require.NoError(t, err)
	defer lines.Close()

	var got []string
	for lines.Next() {
		got = append(got, lines.Text())
	}
	require.NoError(t, lines.Err())
	assert.Equal(t, []string{"first", "", "third"}, got)
}

func TestOpenIsRestartable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lines.txt")
	require.NoError(t, os.WriteFile(path, []byte("only\n"), 0o644))

	for range 2 {
		lines, err := Open(path)
		require.NoError(t, err)
		require.True(t, lines.Next())
		assert.Equal(t, "only", lines.Text())
		assert.False(t, lines.Next())
		require.NoError(t, lines.Close())
	}
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "absent.txt"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
