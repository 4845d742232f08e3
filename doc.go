/*
Package colormix fits 3x3 channel mixing matrices to user supplied color samples.

Given a handful of (source color, target color) pairs, the mixer subpackage
computes the linear transform that best maps the sources onto the targets under
least squares, optionally constrained so that no output channel can drive
in-range pixel values out of range. This package provides the glue around that
core: a Session that collects pairs and applies results, functions for applying
a computed matrix to images (including animated PNGs and GIFs), and file
loading/saving with EXIF auto-orientation.
*/
package colormix

import "fmt"

type ColormixVersion struct {
	Major, Minor, Patch uint
}

func (v ColormixVersion) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

func (v ColormixVersion) Equal(o ColormixVersion) bool {
	return v.Major == o.Major && v.Minor == o.Minor && v.Patch == o.Patch
}

func (v ColormixVersion) After(o ColormixVersion) bool {
	switch {
	case v.Major == o.Major:
		switch {
		case v.Minor == o.Minor:
			return v.Patch > o.Patch
		case v.Minor > o.Minor:
			return true
		case v.Minor < o.Minor:
			return false
		}
	case v.Major > o.Major:
		return true
	case v.Major < o.Major:
		return false
	}
	return false
}

func (v ColormixVersion) Before(o ColormixVersion) bool {
	return !v.Equal(o) && !v.After(o)
}

var Version = ColormixVersion{0, 3, 0}
