// Package pretrained hydrates a dense embedding matrix from a pretrained
// word-vector folder.
//
// The folder layout is fixed:
//
//	<dir>/words.lst       one token per line; line k is the source index k
//	<dir>/embeddings.txt  one vector per line, same count and order as
//	                      words.lst, each line exactly Dim whitespace
//	                      separated decimal numbers
//
// Load returns a [voc.Size(), Dim] Float32 tensor aligned to the
// vocabulary's index space at call time: tensor row i-1 holds the vector
// for vocabulary index i (vocabulary indices are 1-based, tensor rows are
// not). Vocabulary tokens absent from the pretrained source keep an
// independent uniform-random initialization in [-InitScale, InitScale].
// Growing the vocabulary after the call makes the matrix stale; that is the
// caller's responsibility.
package pretrained

import (
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gomlx/gomlx/pkg/core/tensors"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/gomlx/go-vocab/internal/files"
	"github.com/gomlx/go-vocab/internal/textio"
	"github.com/gomlx/go-vocab/vocab"
)

const (
	// DefaultDim is the vector dimensionality of the reference embedding
	// scheme. Dimensionality is configuration, never inferred from the
	// file contents.
	DefaultDim = 50

	// InitScale bounds the uniform random initialization of rows not
	// covered by the pretrained source.
	InitScale = 0.1

	// WordsFile and EmbeddingsFile are the fixed artifact names inside a
	// pretrained folder.
	WordsFile      = "words.lst"
	EmbeddingsFile = "embeddings.txt"
)

// ErrVectorFormat is returned when an embeddings line does not hold exactly
// Dim decimal fields. Check with errors.Is.
var ErrVectorFormat = errors.New("malformed embedding vector")

// Source describes a pretrained word-vector folder. Configure with the
// chainable With* methods, then call Load:
//
//	matrix, err := pretrained.New(dir).WithDim(100).Load(voc)
type Source struct {
	dir string
	dim int
	rng *rand.Rand
}

// New returns a Source for the given folder, with DefaultDim
// dimensionality.
func New(dir string) *Source {
	return &Source{dir: dir, dim: DefaultDim}
}

// WithDim sets the vector dimensionality the embeddings file must conform
// to.
func (s *Source) WithDim(dim int) *Source {
	s.dim = dim
	return s
}

// WithRand sets the random source used to initialize rows missing from the
// pretrained source, for reproducible matrices. Defaults to the shared
// math/rand source.
func (s *Source) WithRand(rng *rand.Rand) *Source {
	s.rng = rng
	return s
}

// Dim returns the configured vector dimensionality.
func (s *Source) Dim() int {
	return s.dim
}

// Load builds the embedding matrix for voc. It never mutates voc.
//
// Both artifacts must exist; the error names the missing one and wraps
// os.ErrNotExist. Every embeddings line is validated to hold exactly Dim
// fields, whether or not its word is in voc — stricter than skipping
// validation for uncovered words, and the word-list and embeddings files
// must have the same number of lines.
func (s *Source) Load(voc *vocab.Vocabulary) (*tensors.Tensor, error) {
	wordsPath := filepath.Join(s.dir, WordsFile)
	embeddingsPath := filepath.Join(s.dir, EmbeddingsFile)
	if !files.Exists(wordsPath) {
		return nil, errors.Wrapf(os.ErrNotExist, "pretrained word list %q", wordsPath)
	}
	if !files.Exists(embeddingsPath) {
		return nil, errors.Wrapf(os.ErrNotExist, "pretrained embeddings file %q", embeddingsPath)
	}

	words, err := readWords(wordsPath)
	if err != nil {
		return nil, err
	}

	uniform := rand.Float32
	if s.rng != nil {
		uniform = s.rng.Float32
	}
	flat := make([]float32, voc.Size()*s.dim)
	for i := range flat {
		flat[i] = (2*uniform() - 1) * InitScale
	}

	lines, err := textio.Open(embeddingsPath)
	if err != nil {
		return nil, err
	}
	defer func() { _ = lines.Close() }()

	lineNum := 0
	covered := 0
	for lines.Next() {
		lineNum++
		if lineNum > len(words) {
			return nil, errors.Errorf("embeddings file %q has more lines than word list %q (%d words)",
				embeddingsPath, wordsPath, len(words))
		}
		fields := strings.Fields(lines.Text())
		if len(fields) != s.dim {
			return nil, errors.Wrapf(ErrVectorFormat, "line %d of %q has %d fields, want %d",
				lineNum, embeddingsPath, len(fields), s.dim)
		}
		word := words[lineNum-1]
		if !voc.Contains(word) {
			continue
		}
		idx, err := voc.IndexOf(word)
		if err != nil {
			return nil, err
		}
		row := (idx - 1) * s.dim
		for j, field := range fields {
			value, err := strconv.ParseFloat(field, 32)
			if err != nil {
				return nil, errors.Wrapf(ErrVectorFormat, "line %d of %q: field %d %q is not a number",
					lineNum, embeddingsPath, j+1, field)
			}
			flat[row+j] = float32(value)
		}
		covered++
	}
	if err := lines.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to read embeddings file %q", embeddingsPath)
	}
	if lineNum != len(words) {
		return nil, errors.Errorf("embeddings file %q has %d lines but word list %q has %d",
			embeddingsPath, lineNum, wordsPath, len(words))
	}

	klog.V(1).Infof("pretrained: %d of %d vocabulary tokens covered by %q", covered, voc.Size(), s.dir)
	return tensors.FromFlatDataAndDimensions(flat, voc.Size(), s.dim), nil
}

// readWords reads the word list into source order: position k-1 holds the
// token at source index k.
func readWords(path string) ([]string, error) {
	lines, err := textio.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = lines.Close() }()
	var words []string
	for lines.Next() {
		words = append(words, lines.Text())
	}
	if err := lines.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to read word list %q", path)
	}
	return words, nil
}
