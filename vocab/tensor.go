package vocab

import (
	"github.com/gomlx/gomlx/pkg/core/dtypes"
	"github.com/gomlx/gomlx/pkg/core/tensors"
	"github.com/pkg/errors"
)

// EncodeTensor is IndicesOf targeting a tensor container: it maps every
// token to its index (unknown fallback included) and returns the result as
// a 1-D Int32 tensor, ready to feed a model input.
func (v *Vocabulary) EncodeTensor(tokens []string) (*tensors.Tensor, error) {
	indices := make([]int32, len(tokens))
	for i, token := range tokens {
		idx, err := v.IndexOf(token)
		if err != nil {
			return nil, err
		}
		indices[i] = int32(idx)
	}
	return tensors.FromFlatDataAndDimensions(indices, len(indices)), nil
}

// DecodeTensor is the inverse bulk operation: it maps every element of a
// 1-D Int32 index tensor back to its token, in order.
func (v *Vocabulary) DecodeTensor(t *tensors.Tensor) ([]string, error) {
	shape := t.Shape()
	if shape.DType != dtypes.Int32 || len(shape.Dimensions) != 1 {
		return nil, errors.Errorf("expected a 1-D Int32 index tensor, got shape %s", shape)
	}
	indices := make([]int, shape.Size())
	tensors.ConstFlatData(t, func(flat []int32) {
		for i, idx := range flat {
			indices[i] = int(idx)
		}
	})
	return v.WordsAt(indices)
}
