package mixer

import (
	"fmt"
	"math"
)

// The per-channel least-squares fit is solved via the normal
// equations: minimizing |Aw - b|^2 is equivalent to solving
// (AtA)w = Atb, where A is the n x 3 design matrix of normalized
// source colors and b the normalized target values of one output
// channel. AtA is 3x3 regardless of the number of pairs, so the
// elimination below does constant work.

const (
	// Added to the diagonal of AtA so the system stays invertible
	// even when the source colors are collinear or fewer than three
	// pairs are given.
	regularization = 1e-10
	// Pivots below this magnitude are treated as zero.
	pivotEps = 1e-12
)

// ComputeTransformMatrix fits the 3x3 mixing matrix that best maps the
// source colors onto the target colors under least squares. The three
// output channels are fitted independently, so permuting the input
// pairs does not change the result.
//
// When preventClipping is true, any row whose weights sum to more than
// maxRowSum percent in absolute value is uniformly rescaled so the sum
// lands exactly on maxRowSum; this bounds how far a full-intensity
// input pixel can be driven. Every entry of the returned matrix is
// clamped to [-MaxWeight, MaxWeight] regardless.
//
// Degenerate input (identical source colors, a single pair, ...) never
// causes an error; regularization and the pivot fallback always yield
// a deterministic matrix. The only errors are precondition violations:
// empty input or source/target length mismatch.
func ComputeTransformMatrix(sources, targets []Color, preventClipping bool, maxRowSum float64) (ans Matrix, err error) {
	if len(sources) == 0 {
		return ans, fmt.Errorf("cannot compute a transform from zero color pairs")
	}
	if len(sources) != len(targets) {
		return ans, fmt.Errorf("source and target color counts differ: %d != %d", len(sources), len(targets))
	}
	src := make([][3]float64, len(sources))
	dst := make([][3]float64, len(targets))
	for i := range sources {
		src[i] = sources[i].Normalized()
		dst[i] = targets[i].Normalized()
	}
	for channel := range 3 {
		var ata [3][3]float64
		var atb [3]float64
		for k := range src {
			for i := range 3 {
				for j := range 3 {
					ata[i][j] += src[k][i] * src[k][j]
				}
				atb[i] += src[k][i] * dst[k][channel]
			}
		}
		for i := range 3 {
			ata[i][i] += regularization
		}
		w := solve3(ata, atb)
		for i := range 3 {
			ans[channel][i] = w[i] * 100
		}
	}
	if preventClipping {
		ans.limitRowSums(maxRowSum)
	}
	ans.clampWeights()
	return ans, nil
}

// solve3 solves the 3x3 linear system a*x = b by Gaussian elimination
// with partial pivoting. a and b are taken by value and scribbled on.
// A column whose best remaining pivot is below pivotEps is skipped
// during elimination; during back substitution any such diagonal gets
// a fixed fallback value (1 for the first unknown, 0 otherwise) so the
// result is always defined.
func solve3(a [3][3]float64, b [3]float64) (x [3]float64) {
	for col := range 3 {
		p := col
		for r := col + 1; r < 3; r++ {
			if math.Abs(a[r][col]) > math.Abs(a[p][col]) {
				p = r
			}
		}
		if p != col {
			a[p], a[col] = a[col], a[p]
			b[p], b[col] = b[col], b[p]
		}
		if math.Abs(a[col][col]) < pivotEps {
			continue
		}
		for r := col + 1; r < 3; r++ {
			f := a[r][col] / a[col][col]
			for c := col; c < 3; c++ {
				a[r][c] -= f * a[col][c]
			}
			b[r] -= f * b[col]
		}
	}
	for i := 2; i >= 0; i-- {
		if math.Abs(a[i][i]) < pivotEps {
			if i == 0 {
				x[i] = 1
			} else {
				x[i] = 0
			}
			continue
		}
		sum := b[i]
		for j := i + 1; j < 3; j++ {
			sum -= a[i][j] * x[j]
		}
		x[i] = sum / a[i][i]
	}
	return x
}
