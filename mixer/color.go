package mixer

import "fmt"

// Color is an 8-bit-per-channel RGB triple. It is a plain value type,
// freely copied; all solver arithmetic happens on the normalized
// [0, 1] representation.
type Color struct {
	R, G, B uint8
}

func (c Color) AsSharp() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

func (c Color) String() string {
	return fmt.Sprintf("Color{%02X %02X %02X}", c.R, c.G, c.B)
}

// Normalized returns the channel intensities scaled from [0, 255] to
// [0.0, 1.0], in R, G, B order.
func (c Color) Normalized() [3]float64 {
	return [3]float64{float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255}
}
