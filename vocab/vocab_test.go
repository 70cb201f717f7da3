package vocab

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistersUnknownAtIndexOne(t *testing.T) {
	v := New()
	require.Equal(t, 1, v.Size())

	unknown, ok := v.UnknownToken()
	require.True(t, ok)
	assert.Equal(t, DefaultUnknownToken, unknown)

	idx, err := v.IndexOf(DefaultUnknownToken)
	require.NoError(t, err)
	assert.Equal(t, 1, idx)

	count, err := v.Count(DefaultUnknownToken)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestAddAssignsStableDenseIndices(t *testing.T) {
	v := NewWithoutUnknown()
	first := v.Add("the")
	second := v.Add("cat")
	assert.Equal(t, 1, first)
	assert.Equal(t, 2, second)

	// Re-adding never renumbers.
	assert.Equal(t, first, v.Add("the"))
	assert.Equal(t, first, v.IndexOrAdd("the"))
	assert.Equal(t, 3, v.Add("sat"))
	assert.Equal(t, 3, v.Size())
}

func TestCountAccumulation(t *testing.T) {
	v := NewWithoutUnknown()
	v.AddCount("the", 3)
	v.AddCount("the", 4)

	count, err := v.Count("the")
	require.NoError(t, err)
	assert.Equal(t, 7, count)
}

func TestCountAbsentTokenErrors(t *testing.T) {
	v := New()
	_, err := v.Count("neverseen")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownToken))
}

func TestUnknownFallback(t *testing.T) {
	v := NewWithUnknown("UNK")
	v.Add("dog")

	unkIdx, err := v.IndexOf("UNK")
	require.NoError(t, err)

	idx, err := v.IndexOf("neverseen")
	require.NoError(t, err)
	assert.Equal(t, unkIdx, idx)

	// The fallback lookup never grows the vocabulary.
	assert.Equal(t, 2, v.Size())
	assert.False(t, v.Contains("neverseen"))
}

func TestIndexOfWithoutFallbackErrors(t *testing.T) {
	v := NewWithoutUnknown()
	v.Add("dog")

	_, err := v.IndexOf("neverseen")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownToken))

	_, err = v.IndicesOf([]string{"dog", "neverseen"})
	assert.True(t, errors.Is(err, ErrUnknownToken))
}

func TestBijection(t *testing.T) {
	v := New()
	for _, token := range []string{"the", "cat", "sat", "on", "the", "mat"} {
		v.Add(token)
	}
	for _, token := range v.Tokens() {
		idx, err := v.IndexOf(token)
		require.NoError(t, err)
		word, err := v.WordAt(idx)
		require.NoError(t, err)
		assert.Equal(t, token, word)
	}
}

func TestWordAtValidatesBothBounds(t *testing.T) {
	v := New()
	v.Add("dog")

	_, err := v.WordAt(v.Size() + 1)
	assert.True(t, errors.Is(err, ErrIndexOutOfRange))

	_, err = v.WordAt(0)
	assert.True(t, errors.Is(err, ErrIndexOutOfRange))

	_, err = v.WordAt(-3)
	assert.True(t, errors.Is(err, ErrIndexOutOfRange))
}

func TestBulkRoundTrip(t *testing.T) {
	v := New()
	tokens := []string{"the", "cat", "sat", "on", "the", "mat"}
	v.IndicesOrAdd(tokens)

	indices, err := v.IndicesOf(tokens)
	require.NoError(t, err)
	require.Len(t, indices, len(tokens))

	back, err := v.WordsAt(indices)
	require.NoError(t, err)
	assert.Equal(t, tokens, back)
}

func TestCopyAndPruneRares(t *testing.T) {
	v := NewWithUnknown("UNK")
	v.AddCount("a", 5)
	v.AddCount("b", 1)

	pruned := v.CopyAndPruneRares(2)

	// UNK survives regardless of its zero count, "a" is compacted, "b" is
	// gone.
	assert.Equal(t, 2, pruned.Size())
	assert.True(t, pruned.Contains("UNK"))
	assert.True(t, pruned.Contains("a"))
	assert.False(t, pruned.Contains("b"))

	idx, err := pruned.IndexOf("a")
	require.NoError(t, err)
	assert.Equal(t, 2, idx)

	count, err := pruned.Count("a")
	require.NoError(t, err)
	assert.Equal(t, 5, count)

	unkIdx, err := pruned.IndexOf("UNK")
	require.NoError(t, err)
	assert.Equal(t, 1, unkIdx)

	// The original is untouched.
	assert.Equal(t, 3, v.Size())
	assert.True(t, v.Contains("b"))
	bCount, err := v.Count("b")
	require.NoError(t, err)
	assert.Equal(t, 1, bCount)
}

func TestCopyAndPruneRaresPreservesOrder(t *testing.T) {
	v := NewWithoutUnknown()
	v.AddCount("keep1", 9)
	v.AddCount("drop", 1)
	v.AddCount("keep2", 9)
	v.AddCount("keep3", 9)

	pruned := v.CopyAndPruneRares(2)
	assert.Equal(t, []string{"keep1", "keep2", "keep3"}, pruned.Tokens())
}

func TestCopyAndPruneRaresWithoutUnknown(t *testing.T) {
	v := NewWithoutUnknown()
	v.AddCount("a", 5)
	v.AddCount("b", 1)

	pruned := v.CopyAndPruneRares(2)
	assert.Equal(t, 1, pruned.Size())
	_, hasUnknown := pruned.UnknownToken()
	assert.False(t, hasUnknown)
}

func TestString(t *testing.T) {
	v := NewWithUnknown("<unk>")
	v.Add("dog")
	assert.Equal(t, `Vocabulary{size=2, unknown="<unk>"}`, v.String())

	bare := NewWithoutUnknown()
	assert.Equal(t, "Vocabulary{size=0, no unknown fallback}", bare.String())
}
