package colormix

import (
	"fmt"
	"image/gif"
	"io"

	"github.com/kettek/apng"
	"github.com/kovidgoyal/colormix/mixer"
)

var _ = fmt.Print

// MixAPNG decodes an animated PNG from r, mixes the channels of every
// frame with m and re-encodes the animation to w. Frame timing,
// offsets and dispose/blend ops are preserved.
func MixAPNG(r io.Reader, w io.Writer, m mixer.Matrix) error {
	a, err := apng.DecodeAll(r)
	if err != nil {
		return err
	}
	for i := range a.Frames {
		mixed, err := ApplyMatrix(m, a.Frames[i].Image)
		if err != nil {
			return fmt.Errorf("mixing frame %d: %w", i, err)
		}
		a.Frames[i].Image = mixed
	}
	return apng.Encode(w, a)
}

// MixGIF is MixAPNG for animated GIFs. GIF frames are paletted, so
// only each frame's palette is rewritten; pixel data is untouched.
func MixGIF(r io.Reader, w io.Writer, m mixer.Matrix) error {
	g, err := gif.DecodeAll(r)
	if err != nil {
		return err
	}
	for i, frame := range g.Image {
		if _, err := ApplyMatrix(m, frame); err != nil {
			return fmt.Errorf("mixing frame %d: %w", i, err)
		}
	}
	return gif.EncodeAll(w, g)
}
