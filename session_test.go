package colormix

import (
	"image"
	"image/color"
	"testing"

	"github.com/kovidgoyal/colormix/mixer"
	"github.com/stretchr/testify/require"
)

func TestSessionComputeRequiresCompletePairs(t *testing.T) {
	s := NewSession()
	_, err := s.Compute()
	require.ErrorIs(t, err, ErrNoCompletePairs)

	p := s.Pairs.Add()
	s.Pairs.SetSource(p.Id, mixer.Color{R: 255, G: 0, B: 0})
	_, err = s.Compute()
	require.ErrorIs(t, err, ErrNoCompletePairs, "half set pairs do not count")

	s.Pairs.SetTarget(p.Id, mixer.Color{R: 0, G: 255, B: 0})
	m, err := s.Compute()
	require.NoError(t, err)
	require.InDelta(t, 100, m[1][0], 1e-4)

	got, ok := s.Matrix()
	require.True(t, ok)
	require.Equal(t, m, got)
}

func TestSessionApply(t *testing.T) {
	s := NewSession()
	s.PreventClipping = false
	p := s.Pairs.Add()
	s.Pairs.SetSource(p.Id, mixer.Color{R: 255, G: 0, B: 0})
	s.Pairs.SetTarget(p.Id, mixer.Color{R: 0, G: 255, B: 0})

	require.Error(t, s.Apply(), "apply before compute must fail")

	m, err := s.Compute()
	require.NoError(t, err)

	// Applying without a document fails, but the matrix survives.
	require.ErrorIs(t, s.Apply(), ErrNoDocument)
	got, ok := s.Matrix()
	require.True(t, ok)
	require.Equal(t, m, got)

	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	img.SetNRGBA(0, 0, color.NRGBA{255, 0, 0, 255})
	s.SetDocument(&Document{Name: "canvas", Image: img})
	require.NoError(t, s.Apply())
	mixed := s.Document().Image.(*image.NRGBA)
	require.Equal(t, color.NRGBA{0, 255, 0, 255}, mixed.NRGBAAt(0, 0))
}

func TestSampleColor(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{12, 34, 56, 255})
	img.SetNRGBA(1, 0, color.NRGBA{100, 100, 100, 128})
	require.Equal(t, mixer.Color{R: 12, G: 34, B: 56}, SampleColor(img, 0, 0))
	c := SampleColor(img, 1, 0)
	require.InDelta(t, 100, c.R, 2, "sampling must undo premultiplication")
}
