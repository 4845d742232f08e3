package colormix

import (
	"errors"
	"fmt"
	"image"

	"github.com/kovidgoyal/colormix/mixer"
)

var (
	// ErrNoCompletePairs is returned when a solve is requested before
	// any pair has both its source and target colors set.
	ErrNoCompletePairs = errors.New("no complete color pairs to compute a transform from")
	// ErrNoDocument is returned when there is no target document to
	// apply a computed transform to.
	ErrNoDocument = errors.New("no target document to apply the transform to")
)

// Document is the canvas a computed transform gets applied to.
type Document struct {
	Name  string
	Image image.Image
}

// Session ties a pair store to a target document. The last computed
// matrix is kept so that a failed or impossible apply never loses the
// result; it can still be rendered and applied later.
type Session struct {
	Pairs mixer.Store

	PreventClipping bool
	MaxRowSum       float64

	doc    *Document
	matrix *mixer.Matrix
}

func NewSession() *Session {
	return &Session{PreventClipping: true, MaxRowSum: mixer.DefaultMaxRowSum}
}

func (s *Session) SetDocument(d *Document) { s.doc = d }

func (s *Session) Document() *Document { return s.doc }

// Matrix returns the last computed transform, if any.
func (s *Session) Matrix() (mixer.Matrix, bool) {
	if s.matrix == nil {
		return mixer.Matrix{}, false
	}
	return *s.matrix, true
}

// Compute solves for the transform matrix over the currently complete
// pairs. It fails with ErrNoCompletePairs when there is nothing to fit;
// the solver itself never fails on degenerate colors.
func (s *Session) Compute() (mixer.Matrix, error) {
	pairs := s.Pairs.CompletePairs()
	if len(pairs) == 0 {
		return mixer.Matrix{}, ErrNoCompletePairs
	}
	sources := make([]mixer.Color, len(pairs))
	targets := make([]mixer.Color, len(pairs))
	for i, p := range pairs {
		sources[i] = *p.Source
		targets[i] = *p.Target
	}
	maxRowSum := s.MaxRowSum
	if maxRowSum == 0 {
		maxRowSum = mixer.DefaultMaxRowSum
	}
	m, err := mixer.ComputeTransformMatrix(sources, targets, s.PreventClipping, maxRowSum)
	if err != nil {
		return mixer.Matrix{}, err
	}
	s.matrix = &m
	return m, nil
}

// Apply installs the last computed matrix into the session's document,
// replacing its image with the mixed result. The matrix survives a
// failed apply.
func (s *Session) Apply() error {
	if s.matrix == nil {
		return errors.New("no transform has been computed yet")
	}
	if s.doc == nil || s.doc.Image == nil {
		return ErrNoDocument
	}
	mixed, err := ApplyMatrix(*s.matrix, s.doc.Image)
	if err != nil {
		return fmt.Errorf("applying transform to %q: %w", s.doc.Name, err)
	}
	s.doc.Image = mixed
	return nil
}

// SampleColor reads the pixel at (x, y) as an 8-bit RGB triple, the
// way a host editor hands over its currently picked color.
func SampleColor(img image.Image, x, y int) mixer.Color {
	r, g, b, a := img.At(x, y).RGBA()
	if a != 0 && a != 0xffff {
		r = (r * 0xffff) / a
		g = (g * 0xffff) / a
		b = (b * 0xffff) / a
	}
	return mixer.Color{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
}
