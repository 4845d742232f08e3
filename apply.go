package colormix

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/kovidgoyal/colormix/mixer"
	"github.com/kovidgoyal/go-parallel"
)

var _ = fmt.Print

func premultiply8(r, a uint8) uint8 {
	return uint8((uint16(r) * uint16(a)) / uint16(0xff))
}

func unpremultiply8(r, a uint8) uint8 {
	return uint8((uint16(r) * 0xff) / uint16(a))
}

func unpremultiply(r, a uint32) uint16 {
	return uint16((r * 0xffff) / a)
}

func premultiply(r, a uint32) uint16 {
	return uint16((r * a) / 0xffff)
}

// ApplyMatrix mixes the channels of img with m. The result may be the
// original image modified in place, or a new *image.NRGBA when img is
// not in a format that can be mixed in place. Alpha is untouched;
// premultiplied formats are unpremultiplied around the mix. Rows are
// processed in parallel.
func ApplyMatrix(m mixer.Matrix, image_any image.Image) (ans image.Image, err error) {
	b := image_any.Bounds()
	width, height := b.Dx(), b.Dy()
	ans = image_any
	var f func(start, limit int)
	switch img := image_any.(type) {
	case *image.NRGBA:
		f = func(start, limit int) {
			for y := start; y < limit; y++ {
				row := img.Pix[img.Stride*y:]
				_ = row[4*(width-1)]
				for range width {
					m.Mix8(row[0:3:3])
					row = row[4:]
				}
			}
		}
	case *image.RGBA:
		f = func(start, limit int) {
			sl := []uint8{0, 0, 0}
			for y := start; y < limit; y++ {
				row := img.Pix[img.Stride*y:]
				_ = row[4*(width-1)]
				for range width {
					s := row[0:4:4]
					if a := s[3]; a != 0 {
						sl[0], sl[1], sl[2] = unpremultiply8(s[0], a), unpremultiply8(s[1], a), unpremultiply8(s[2], a)
						m.Mix8(sl)
						s[0], s[1], s[2] = premultiply8(sl[0], a), premultiply8(sl[1], a), premultiply8(sl[2], a)
					}
					row = row[4:]
				}
			}
		}
	case *image.NRGBA64:
		f = func(start, limit int) {
			sl := []uint16{0, 0, 0}
			for y := start; y < limit; y++ {
				row := img.Pix[img.Stride*y:]
				_ = row[8*(width-1)]
				for range width {
					s := row[0:8:8]
					sl[0] = uint16(s[0])<<8 | uint16(s[1])
					sl[1] = uint16(s[2])<<8 | uint16(s[3])
					sl[2] = uint16(s[4])<<8 | uint16(s[5])
					m.Mix16(sl)
					s[0], s[1] = uint8(sl[0]>>8), uint8(sl[0])
					s[2], s[3] = uint8(sl[1]>>8), uint8(sl[1])
					s[4], s[5] = uint8(sl[2]>>8), uint8(sl[2])
					row = row[8:]
				}
			}
		}
	case *image.Paletted:
		// Mixing is per color, so only the palette needs touching.
		sl := []uint16{0, 0, 0}
		for i, c := range img.Palette {
			r, g, bl, a := c.RGBA()
			if a != 0 {
				sl[0], sl[1], sl[2] = unpremultiply(r, a), unpremultiply(g, a), unpremultiply(bl, a)
				m.Mix16(sl)
				img.Palette[i] = &color.NRGBA64{R: sl[0], G: sl[1], B: sl[2], A: uint16(a)}
			}
		}
		return
	case *image.Gray:
		// Mixed gray is not gray in general, so widen to NRGBA.
		d := image.NewNRGBA(image.Rect(0, 0, width, height))
		ans = d
		f = func(start, limit int) {
			sl := []uint8{0, 0, 0}
			for y := start; y < limit; y++ {
				row := img.Pix[img.Stride*y:]
				_ = row[width-1]
				drow := d.Pix[d.Stride*y:]
				_ = drow[4*(width-1)]
				for _, gray := range row[:width] {
					sl[0], sl[1], sl[2] = gray, gray, gray
					m.Mix8(sl)
					drow[0], drow[1], drow[2], drow[3] = sl[0], sl[1], sl[2], 0xff
					drow = drow[4:]
				}
			}
		}
	case draw.Image:
		f = func(start, limit int) {
			sl := []uint16{0, 0, 0}
			for y := b.Min.Y + start; y < b.Min.Y+limit; y++ {
				for x := b.Min.X; x < b.Max.X; x++ {
					r, g, bl, a := img.At(x, y).RGBA()
					if a != 0 {
						sl[0], sl[1], sl[2] = unpremultiply(r, a), unpremultiply(g, a), unpremultiply(bl, a)
						m.Mix16(sl)
						img.Set(x, y, &color.NRGBA64{R: sl[0], G: sl[1], B: sl[2], A: uint16(a)})
					}
				}
			}
		}
	default:
		d := image.NewNRGBA(image.Rect(0, 0, width, height))
		ans = d
		f = func(start, limit int) {
			sl := []uint16{0, 0, 0}
			for y := start; y < limit; y++ {
				drow := d.Pix[d.Stride*y:]
				for x := 0; x < width; x++ {
					r, g, bl, a := image_any.At(x+b.Min.X, y+b.Min.Y).RGBA()
					if a != 0 {
						sl[0], sl[1], sl[2] = unpremultiply(r, a), unpremultiply(g, a), unpremultiply(bl, a)
						m.Mix16(sl)
					} else {
						sl[0], sl[1], sl[2] = 0, 0, 0
					}
					s := drow[4*x : 4*x+4 : 4*x+4]
					s[0] = uint8(sl[0] >> 8)
					s[1] = uint8(sl[1] >> 8)
					s[2] = uint8(sl[2] >> 8)
					s[3] = uint8(a >> 8)
				}
			}
		}
	}
	err = parallel.Run_in_parallel_over_range(0, f, 0, height)
	return
}
