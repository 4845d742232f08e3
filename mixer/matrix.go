package mixer

import (
	"fmt"
	"math"
	"strings"
)

// MaxWeight is the largest magnitude a single mixing weight can have,
// in percent. It matches the representable range of the channel mixing
// facilities this matrix is meant to be installed into, so every entry
// of a computed Matrix is clamped to [-MaxWeight, MaxWeight].
const MaxWeight = 200

// DefaultMaxRowSum caps the absolute row sum when clipping prevention
// is on. A row summing to 100% maps a full-intensity (1,1,1) input to
// exactly full intensity, so no in-range pixel can be driven out of
// range by that row.
const DefaultMaxRowSum = 100

// Matrix is a 3x3 channel mixing matrix, row-major, in percent. Row i
// holds the weights by which the input R, G, B channels combine into
// output channel i. There is no constant term; the implied offset of
// every row is zero.
type Matrix [3][3]float64

func Identity() Matrix {
	return Matrix{{100, 0, 0}, {0, 100, 0}, {0, 0, 100}}
}

// RowSum returns the sum of the three weights of row i.
func (m *Matrix) RowSum(i int) float64 {
	return m[i][0] + m[i][1] + m[i][2]
}

// limitRowSums rescales, independently for each row, all three weights
// so that no row's sum exceeds maxRowSum in absolute value. Rows
// already within the bound are left untouched.
func (m *Matrix) limitRowSums(maxRowSum float64) {
	for i := range 3 {
		sum := math.Abs(m.RowSum(i))
		if sum > maxRowSum {
			f := maxRowSum / sum
			m[i][0] *= f
			m[i][1] *= f
			m[i][2] *= f
		}
	}
}

// clampWeights clamps every entry to [-MaxWeight, MaxWeight].
func (m *Matrix) clampWeights() {
	for i := range 3 {
		for j := range 3 {
			m[i][j] = max(-MaxWeight, min(m[i][j], MaxWeight))
		}
	}
}

// Transform applies the matrix to one normalized [0, 1] RGB triple.
// The result is not clamped and may lie outside [0, 1].
func (m *Matrix) Transform(r, g, b float64) (float64, float64, float64) {
	or := (m[0][0]*r + m[0][1]*g + m[0][2]*b) / 100
	og := (m[1][0]*r + m[1][1]*g + m[1][2]*b) / 100
	ob := (m[2][0]*r + m[2][1]*g + m[2][2]*b) / 100
	return or, og, ob
}

// Mix8 applies the matrix in place to a 3 byte R, G, B pixel slice,
// clamping the mixed channels to [0, 255].
func (m *Matrix) Mix8(s []uint8) {
	r, g, b := float64(s[0]), float64(s[1]), float64(s[2])
	s[0] = clamp8((m[0][0]*r + m[0][1]*g + m[0][2]*b) / 100)
	s[1] = clamp8((m[1][0]*r + m[1][1]*g + m[1][2]*b) / 100)
	s[2] = clamp8((m[2][0]*r + m[2][1]*g + m[2][2]*b) / 100)
}

// Mix16 is Mix8 for a 3 element 16-bit channel slice.
func (m *Matrix) Mix16(s []uint16) {
	r, g, b := float64(s[0]), float64(s[1]), float64(s[2])
	s[0] = clamp16((m[0][0]*r + m[0][1]*g + m[0][2]*b) / 100)
	s[1] = clamp16((m[1][0]*r + m[1][1]*g + m[1][2]*b) / 100)
	s[2] = clamp16((m[2][0]*r + m[2][1]*g + m[2][2]*b) / 100)
}

func clamp8(x float64) uint8 {
	return uint8(max(0, min(math.Round(x), 255)))
}

func clamp16(x float64) uint16 {
	return uint16(max(0, min(math.Round(x), 65535)))
}

var rowNames = [3]string{"Red", "Green", "Blue"}

// String renders the matrix the way a channel mixer dialog would show
// it: one line per output channel, each weight rounded to the nearest
// integer percent with an explicit sign.
func (m Matrix) String() string {
	var buf strings.Builder
	for i := range 3 {
		fmt.Fprintf(&buf, "%-6s %+d%% %+d%% %+d%%\n", rowNames[i]+":",
			int(math.Round(m[i][0])), int(math.Round(m[i][1])), int(math.Round(m[i][2])))
	}
	return buf.String()
}
