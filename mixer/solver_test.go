package mixer

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ = fmt.Print

func pairsOf(t *testing.T, colors ...Color) (src, dst []Color) {
	t.Helper()
	require.Zero(t, len(colors)%2, "colors must come in source/target pairs")
	for i := 0; i < len(colors); i += 2 {
		src = append(src, colors[i])
		dst = append(dst, colors[i+1])
	}
	return
}

func requireMatrixNear(t *testing.T, expected, actual Matrix, eps float64) {
	t.Helper()
	for i := range 3 {
		for j := range 3 {
			require.InDelta(t, expected[i][j], actual[i][j], eps, "entry [%d][%d]", i, j)
		}
	}
}

func TestIdentityRecovery(t *testing.T) {
	// A spanning set of source colors, each mapped to itself, must
	// recover the identity mix.
	colors := []Color{
		{255, 0, 0}, {0, 255, 0}, {0, 0, 255}, {255, 255, 255}, {137, 61, 190},
	}
	var src, dst []Color
	for _, c := range colors {
		src = append(src, c)
		dst = append(dst, c)
	}
	for _, preventClipping := range []bool{false, true} {
		t.Run(fmt.Sprintf("preventClipping=%v", preventClipping), func(t *testing.T) {
			m, err := ComputeTransformMatrix(src, dst, preventClipping, DefaultMaxRowSum)
			require.NoError(t, err)
			requireMatrixNear(t, Identity(), m, 1e-4)
		})
	}
}

func TestPermutationInvariance(t *testing.T) {
	src, dst := pairsOf(t,
		Color{200, 10, 30}, Color{180, 40, 90},
		Color{5, 250, 120}, Color{20, 230, 110},
		Color{90, 90, 200}, Color{100, 60, 255},
		Color{255, 255, 0}, Color{0, 255, 255},
	)
	perm := []int{2, 0, 3, 1}
	psrc := make([]Color, len(src))
	pdst := make([]Color, len(dst))
	for i, p := range perm {
		psrc[i], pdst[i] = src[p], dst[p]
	}
	a, err := ComputeTransformMatrix(src, dst, false, DefaultMaxRowSum)
	require.NoError(t, err)
	b, err := ComputeTransformMatrix(psrc, pdst, false, DefaultMaxRowSum)
	require.NoError(t, err)
	requireMatrixNear(t, a, b, 1e-9)
}

func TestWeightsAlwaysClamped(t *testing.T) {
	// A tiny source distance with a huge target distance asks for
	// extreme weights; they must come back clamped to [-200, 200].
	src, dst := pairsOf(t,
		Color{128, 128, 128}, Color{255, 0, 255},
		Color{129, 127, 128}, Color{0, 255, 0},
	)
	for _, preventClipping := range []bool{false, true} {
		m, err := ComputeTransformMatrix(src, dst, preventClipping, DefaultMaxRowSum)
		require.NoError(t, err)
		for i := range 3 {
			for j := range 3 {
				assert.LessOrEqual(t, math.Abs(m[i][j]), float64(MaxWeight))
			}
		}
	}
}

func TestClippingPrevention(t *testing.T) {
	// Boosting mid gray to full white needs row sums well above 100;
	// with preventClipping on they must be rescaled onto the bound.
	src, dst := pairsOf(t, Color{200, 200, 200}, Color{255, 255, 255})

	unclipped, err := ComputeTransformMatrix(src, dst, false, DefaultMaxRowSum)
	require.NoError(t, err)
	for i := range 3 {
		require.Greater(t, math.Abs(unclipped.RowSum(i)), float64(DefaultMaxRowSum))
	}

	clipped, err := ComputeTransformMatrix(src, dst, true, DefaultMaxRowSum)
	require.NoError(t, err)
	for i := range 3 {
		require.InDelta(t, DefaultMaxRowSum, math.Abs(clipped.RowSum(i)), 1e-9)
	}
}

func TestSingleRedToGreenPair(t *testing.T) {
	src, dst := pairsOf(t, Color{255, 0, 0}, Color{0, 255, 0})
	m, err := ComputeTransformMatrix(src, dst, false, DefaultMaxRowSum)
	require.NoError(t, err)
	requireMatrixNear(t, Matrix{
		{0, 0, 0},
		{100, 0, 0},
		{0, 0, 0},
	}, m, 1e-4)
}

func TestWhiteAndBlackFixedPoints(t *testing.T) {
	// White mapped to white and black to black. The least-squares fit
	// for these two samples spreads each row's 100% evenly across the
	// input channels, so the matrix reproduces both samples exactly
	// and behaves as the identity on every gray.
	src, dst := pairsOf(t,
		Color{255, 255, 255}, Color{255, 255, 255},
		Color{0, 0, 0}, Color{0, 0, 0},
	)
	for _, preventClipping := range []bool{false, true} {
		t.Run(fmt.Sprintf("preventClipping=%v", preventClipping), func(t *testing.T) {
			m, err := ComputeTransformMatrix(src, dst, preventClipping, DefaultMaxRowSum)
			require.NoError(t, err)
			for i := range 3 {
				require.InDelta(t, 100, m.RowSum(i), 1e-4)
			}
			r, g, b := m.Transform(1, 1, 1)
			require.InDelta(t, 1, r, 1e-6)
			require.InDelta(t, 1, g, 1e-6)
			require.InDelta(t, 1, b, 1e-6)
			r, g, b = m.Transform(0, 0, 0)
			require.InDelta(t, 0, r, 1e-6)
			require.InDelta(t, 0, g, 1e-6)
			require.InDelta(t, 0, b, 1e-6)
		})
	}
}

func TestDegenerateInputIsTotal(t *testing.T) {
	t.Run("AllSourcesIdentical", func(t *testing.T) {
		src, dst := pairsOf(t,
			Color{77, 77, 77}, Color{255, 0, 0},
			Color{77, 77, 77}, Color{0, 255, 0},
			Color{77, 77, 77}, Color{0, 0, 255},
		)
		m, err := ComputeTransformMatrix(src, dst, false, DefaultMaxRowSum)
		require.NoError(t, err)
		for i := range 3 {
			for j := range 3 {
				assert.False(t, math.IsNaN(m[i][j]) || math.IsInf(m[i][j], 0))
				assert.LessOrEqual(t, math.Abs(m[i][j]), float64(MaxWeight))
			}
		}
	})
	t.Run("AllBlackSources", func(t *testing.T) {
		// Every pivot of AtA is at the regularization floor; the
		// elimination must still produce a deterministic matrix.
		src, dst := pairsOf(t,
			Color{0, 0, 0}, Color{255, 255, 255},
			Color{0, 0, 0}, Color{128, 128, 128},
		)
		a, err := ComputeTransformMatrix(src, dst, false, DefaultMaxRowSum)
		require.NoError(t, err)
		b, err := ComputeTransformMatrix(src, dst, false, DefaultMaxRowSum)
		require.NoError(t, err)
		requireMatrixNear(t, a, b, 0)
	})
}

func TestPreconditionErrors(t *testing.T) {
	_, err := ComputeTransformMatrix(nil, nil, false, DefaultMaxRowSum)
	require.Error(t, err)
	_, err = ComputeTransformMatrix([]Color{{1, 2, 3}}, nil, false, DefaultMaxRowSum)
	require.Error(t, err)
}
