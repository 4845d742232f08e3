package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/kovidgoyal/colormix"
	"github.com/kovidgoyal/colormix/mixer"
)

var _ = fmt.Print

func parseColor(s string) (c mixer.Color, err error) {
	var r, g, b int
	if _, err = fmt.Sscanf(s, "%d,%d,%d", &r, &g, &b); err != nil {
		return c, fmt.Errorf("invalid color %q, expected R,G,B", s)
	}
	for _, v := range []int{r, g, b} {
		if v < 0 || v > 255 {
			return c, fmt.Errorf("invalid color %q, channels must be in 0-255", s)
		}
	}
	return mixer.Color{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}

func run() error {
	noClip := flag.Bool("no-clip", false, "allow rows whose weights could clip pixel values")
	input := flag.String("apply", "", "apply the computed matrix to this image file")
	output := flag.String("out", "", "where to write the mixed image (with -apply)")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: colormix [options] R,G,B=R,G,B ...")
		fmt.Fprintln(os.Stderr, "Each argument is one source=target color pair.")
		flag.PrintDefaults()
	}
	flag.Parse()

	session := colormix.NewSession()
	session.PreventClipping = !*noClip
	for _, arg := range flag.Args() {
		src, dst, found := strings.Cut(arg, "=")
		if !found {
			return fmt.Errorf("invalid pair %q, expected source=target", arg)
		}
		s, err := parseColor(src)
		if err != nil {
			return err
		}
		d, err := parseColor(dst)
		if err != nil {
			return err
		}
		p := session.Pairs.Add()
		session.Pairs.SetSource(p.Id, s)
		session.Pairs.SetTarget(p.Id, d)
	}

	m, err := session.Compute()
	if err != nil {
		return err
	}
	fmt.Print(m)

	if *input == "" {
		return nil
	}
	img, err := colormix.Open(*input)
	if err != nil {
		return err
	}
	session.SetDocument(&colormix.Document{Name: *input, Image: img})
	if err = session.Apply(); err != nil {
		return err
	}
	out := *output
	if out == "" {
		out = *input + ".mixed.png"
	}
	if err = colormix.Save(session.Document().Image, out); err != nil {
		return err
	}
	fmt.Println("Mixed image saved to:", out)
	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
