package colormix

import (
	"image"
	"image/draw"

	"github.com/kovidgoyal/go-parallel"
)

// orientation is an EXIF flag that specifies the transformation
// that should be applied to an image to display it correctly.
type orientation int

const (
	orientationUnspecified = 0
	orientationNormal      = 1
	orientationFlipH       = 2
	orientationRotate180   = 3
	orientationFlipV       = 4
	orientationTranspose   = 5
	orientationRotate270   = 6
	orientationTransverse  = 7
	orientationRotate90    = 8
)

// fixOrientation applies the transform corresponding to the given
// orientation flag.
func fixOrientation(img image.Image, o orientation) image.Image {
	switch o {
	case orientationFlipH:
		img = FlipH(img)
	case orientationFlipV:
		img = FlipV(img)
	case orientationRotate90:
		img = Rotate90(img)
	case orientationRotate180:
		img = Rotate180(img)
	case orientationRotate270:
		img = Rotate270(img)
	case orientationTranspose:
		img = Transpose(img)
	case orientationTransverse:
		img = Transverse(img)
	}
	return img
}

func toNRGBA(img image.Image) *image.NRGBA {
	if p, ok := img.(*image.NRGBA); ok && p.Rect.Min.X == 0 && p.Rect.Min.Y == 0 {
		return p
	}
	b := img.Bounds()
	d := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(d, d.Rect, img, b.Min, draw.Src)
	return d
}

// remap builds a dw x dh image whose pixel (x, y) is the source pixel
// named by srcAt. All the orientation transforms below are just
// different index mappings over this loop.
func remap(img image.Image, dw, dh int, srcAt func(x, y int) (int, int)) *image.NRGBA {
	src := toNRGBA(img)
	d := image.NewNRGBA(image.Rect(0, 0, dw, dh))
	f := func(start, limit int) {
		for y := start; y < limit; y++ {
			drow := d.Pix[d.Stride*y:]
			for x := 0; x < dw; x++ {
				sx, sy := srcAt(x, y)
				copy(drow[4*x:4*x+4], src.Pix[src.Stride*sy+4*sx:src.Stride*sy+4*sx+4])
			}
		}
	}
	_ = parallel.Run_in_parallel_over_range(0, f, 0, dh)
	return d
}

// FlipH mirrors the image horizontally (left right).
func FlipH(img image.Image) *image.NRGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	return remap(img, w, h, func(x, y int) (int, int) { return w - 1 - x, y })
}

// FlipV mirrors the image vertically (top bottom).
func FlipV(img image.Image) *image.NRGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	return remap(img, w, h, func(x, y int) (int, int) { return x, h - 1 - y })
}

// Rotate90 rotates the image 90 degrees counter-clockwise.
func Rotate90(img image.Image) *image.NRGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	return remap(img, h, w, func(x, y int) (int, int) { return w - 1 - y, x })
}

// Rotate180 rotates the image 180 degrees.
func Rotate180(img image.Image) *image.NRGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	return remap(img, w, h, func(x, y int) (int, int) { return w - 1 - x, h - 1 - y })
}

// Rotate270 rotates the image 270 degrees counter-clockwise.
func Rotate270(img image.Image) *image.NRGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	return remap(img, h, w, func(x, y int) (int, int) { return y, h - 1 - x })
}

// Transpose flips the image across its top-left to bottom-right diagonal.
func Transpose(img image.Image) *image.NRGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	return remap(img, h, w, func(x, y int) (int, int) { return y, x })
}

// Transverse flips the image across its bottom-left to top-right diagonal.
func Transverse(img image.Image) *image.NRGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	return remap(img, h, w, func(x, y int) (int, int) { return w - 1 - y, h - 1 - x })
}
