package array

import "github.com/pkg/errors"

// Broadcast computes the common shape the inputs stretch to, aligning axes
// from the right. The output rank is the maximum input rank and each output
// extent is the maximum extent among the inputs that reach that axis. An
// input fits an output axis when its extent equals the output extent, is
// exactly 1, or the input's rank does not reach the axis at all.
//
// Zero extents receive no special treatment: a 0 only fits a 0, and a 1 only
// stretches to the output extent, so mixing 0 and 1 on an axis fails.
func Broadcast(shapes ...Shape) (Shape, error) {
	rank := 0
	for _, s := range shapes {
		if len(s) > rank {
			rank = len(s)
		}
	}
	out := make(Shape, rank)
	for j := range out {
		widest := -1
		for _, s := range shapes {
			k := len(s) - rank + j
			if k < 0 {
				continue
			}
			if s[k] > widest {
				widest = s[k]
			}
		}
		out[j] = widest
	}
	for _, s := range shapes {
		for k, dim := range s {
			j := rank - len(s) + k
			if dim != out[j] && dim != 1 {
				return nil, errors.Wrapf(ErrBroadcast,
					"axis %d from the right: extent %d conflicts with %d", rank-1-j, dim, out[j])
			}
		}
	}
	return out, nil
}

// BroadcastSelectors returns the per-axis index multipliers that translate an
// index in the broadcast output back to an index in the input: 1 where the
// input follows the output and 0 where a size-1 input axis was stretched.
// Selectors align to the input's own axes; leading output axes the input
// never reaches have no selector and are skipped during translation.
//
// The input must already have passed Broadcast against out.
func BroadcastSelectors(in, out Shape) []int {
	sel := make([]int, len(in))
	off := len(out) - len(in)
	for k, dim := range in {
		if dim == out[off+k] {
			sel[k] = 1
		}
	}
	return sel
}
