// Package vocab implements a vocabulary registry: a bidirectional mapping
// between tokens and stable integer indices, with per-token occurrence
// counts, rare-token pruning, and a counts-file persistence format.
//
// Indices are 1-based and dense over [1, Size()]: the first token added gets
// index 1, and an index never changes once assigned. When an unknown-token
// sentinel is configured it always occupies index 1, and lookups of absent
// tokens fall back to it.
//
// A Vocabulary is not safe for concurrent mutation. The intended lifecycle
// is a single-owner build phase followed by read-only use; once built it can
// be shared across goroutines freely.
package vocab

import (
	"fmt"

	"github.com/pkg/errors"
)

// DefaultUnknownToken is the conventional sentinel used by New.
const DefaultUnknownToken = "UNK"

var (
	// ErrUnknownToken is returned when an operation requires a token to be
	// present in the vocabulary (or an unknown-token fallback to be
	// configured) and neither holds. Check with errors.Is.
	ErrUnknownToken = errors.New("token not in vocabulary")

	// ErrIndexOutOfRange is returned by WordAt for indices outside
	// [1, Size()].
	ErrIndexOutOfRange = errors.New("vocabulary index out of range")
)

// Vocabulary maps tokens to stable 1-based indices and tracks how often
// each token has been seen. Construct with New, NewWithUnknown, or
// NewWithoutUnknown.
type Vocabulary struct {
	unknown    string
	hasUnknown bool

	indexToToken []string       // position i holds the token at index i+1
	tokenToIndex map[string]int // 1-based, exact inverse of indexToToken
	counts       map[string]int
}

// New returns a vocabulary with DefaultUnknownToken as the fallback
// sentinel, registered at index 1 with count 0.
func New() *Vocabulary {
	return NewWithUnknown(DefaultUnknownToken)
}

// NewWithUnknown returns a vocabulary with a custom fallback sentinel,
// registered at index 1 with count 0.
func NewWithUnknown(token string) *Vocabulary {
	v := NewWithoutUnknown()
	v.unknown = token
	v.hasUnknown = true
	v.AddCount(token, 0)
	return v
}

// NewWithoutUnknown returns an empty vocabulary with no fallback: looking
// up an absent token errors instead of mapping to a sentinel.
func NewWithoutUnknown() *Vocabulary {
	return &Vocabulary{
		tokenToIndex: make(map[string]int),
		counts:       make(map[string]int),
	}
}

// UnknownToken returns the configured fallback sentinel, and whether one is
// configured at all.
func (v *Vocabulary) UnknownToken() (string, bool) {
	return v.unknown, v.hasUnknown
}

// Contains reports whether token has been assigned an index.
func (v *Vocabulary) Contains(token string) bool {
	_, ok := v.tokenToIndex[token]
	return ok
}

// Size returns the number of tokens registered, which is also the highest
// assigned index.
func (v *Vocabulary) Size() int {
	return len(v.indexToToken)
}

// Count returns the occurrence count of token. Asking about a token that
// was never added is a usage error, not a zero: it returns ErrUnknownToken.
func (v *Vocabulary) Count(token string) (int, error) {
	c, ok := v.counts[token]
	if !ok {
		return 0, errors.Wrapf(ErrUnknownToken, "%q", token)
	}
	return c, nil
}

// Add registers one occurrence of token and returns its index, assigning
// the next free index if the token is new.
func (v *Vocabulary) Add(token string) int {
	return v.AddCount(token, 1)
}

// AddCount registers count occurrences of token and returns its index. If
// the token is already present only its counter changes; otherwise it is
// appended and assigned index Size(). This is the single mutation entry
// point: every insert, including Load and CopyAndPruneRares, routes through
// it.
func (v *Vocabulary) AddCount(token string, count int) int {
	if idx, ok := v.tokenToIndex[token]; ok {
		v.counts[token] += count
		return idx
	}
	v.indexToToken = append(v.indexToToken, token)
	idx := len(v.indexToToken)
	v.tokenToIndex[token] = idx
	v.counts[token] = count
	return idx
}

// IndexOf returns the index of token. Absent tokens map to the unknown
// sentinel's index; if no sentinel is configured the lookup returns
// ErrUnknownToken. The vocabulary is never mutated.
func (v *Vocabulary) IndexOf(token string) (int, error) {
	if idx, ok := v.tokenToIndex[token]; ok {
		return idx, nil
	}
	if !v.hasUnknown {
		return 0, errors.Wrapf(ErrUnknownToken, "%q, and no unknown-token fallback is configured", token)
	}
	idx, ok := v.tokenToIndex[v.unknown]
	if !ok {
		return 0, errors.Wrapf(ErrUnknownToken, "%q, and the unknown-token sentinel %q is itself missing", token, v.unknown)
	}
	return idx, nil
}

// IndexOrAdd returns the index of token, adding it with one occurrence
// first if absent. Equivalent to Add.
func (v *Vocabulary) IndexOrAdd(token string) int {
	return v.AddCount(token, 1)
}

// WordAt returns the token at the given 1-based index. Indices outside
// [1, Size()] return ErrIndexOutOfRange; non-positive indices are rejected
// too, not only the upper bound.
func (v *Vocabulary) WordAt(index int) (string, error) {
	if index < 1 || index > len(v.indexToToken) {
		return "", errors.Wrapf(ErrIndexOutOfRange, "index %d with vocabulary size %d", index, len(v.indexToToken))
	}
	return v.indexToToken[index-1], nil
}

// IndicesOf maps IndexOf over tokens, preserving order and length. Absent
// tokens map to the unknown sentinel; with no sentinel configured the first
// absent token aborts with ErrUnknownToken.
func (v *Vocabulary) IndicesOf(tokens []string) ([]int, error) {
	indices := make([]int, len(tokens))
	for i, token := range tokens {
		idx, err := v.IndexOf(token)
		if err != nil {
			return nil, err
		}
		indices[i] = idx
	}
	return indices, nil
}

// IndicesOrAdd maps IndexOrAdd over tokens, preserving order and length.
func (v *Vocabulary) IndicesOrAdd(tokens []string) []int {
	indices := make([]int, len(tokens))
	for i, token := range tokens {
		indices[i] = v.IndexOrAdd(token)
	}
	return indices
}

// WordsAt maps WordAt over indices, preserving order and length.
func (v *Vocabulary) WordsAt(indices []int) ([]string, error) {
	tokens := make([]string, len(indices))
	for i, index := range indices {
		token, err := v.WordAt(index)
		if err != nil {
			return nil, err
		}
		tokens[i] = token
	}
	return tokens, nil
}

// Tokens returns the registered tokens in index order (index i at position
// i-1). The returned slice is a copy.
func (v *Vocabulary) Tokens() []string {
	tokens := make([]string, len(v.indexToToken))
	copy(tokens, v.indexToToken)
	return tokens
}

// CopyAndPruneRares derives a new vocabulary keeping only tokens whose
// count is at least cutoff. The unknown sentinel is always carried over,
// whatever its count, so fallback keeps working. Survivors are re-added in
// index order with their original counts, so the new vocabulary is an
// order-preserving, gap-free renumbering of the surviving subset. The
// receiver is never mutated.
func (v *Vocabulary) CopyAndPruneRares(cutoff int) *Vocabulary {
	var out *Vocabulary
	if v.hasUnknown {
		out = NewWithUnknown(v.unknown)
	} else {
		out = NewWithoutUnknown()
	}
	for _, token := range v.indexToToken {
		if v.counts[token] < cutoff && !(v.hasUnknown && token == v.unknown) {
			continue
		}
		out.AddCount(token, v.counts[token])
	}
	return out
}

// String returns a short human-readable description.
func (v *Vocabulary) String() string {
	if v.hasUnknown {
		return fmt.Sprintf("Vocabulary{size=%d, unknown=%q}", len(v.indexToToken), v.unknown)
	}
	return fmt.Sprintf("Vocabulary{size=%d, no unknown fallback}", len(v.indexToToken))
}
