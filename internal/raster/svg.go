package raster

import (
	"fmt"
	"image"
	"os"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"
)

// SVGName is the config name of the built-in renderer.
const SVGName = "oksvg"

// SVG renders with oksvg + rasterx. The view box is fitted into the square
// keeping its aspect ratio, centered, over a white backdrop.
type SVG struct{}

func (SVG) Name() string { return SVGName }

// Check always succeeds; the renderer is compiled in.
func (SVG) Check() error { return nil }

func (SVG) Render(src string, size int) (image.Image, error) {
	f, err := os.Open(src)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	icon, err := oksvg.ReadIconStream(f, oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", src, err)
	}

	x, y, w, h := fit(icon.ViewBox.W, icon.ViewBox.H, size)
	icon.SetTarget(x, y, w, h)

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	dasher := rasterx.NewDasher(size, size, scanner)
	icon.Draw(dasher, 1.0)
	return img, nil
}

// fit returns the target rectangle for a w×h view box inside a size×size
// square. A missing view box fills the square.
func fit(w, h float64, size int) (x, y, tw, th float64) {
	s := float64(size)
	if w <= 0 || h <= 0 {
		return 0, 0, s, s
	}
	scale := s / max(w, h)
	tw, th = w*scale, h*scale
	return (s - tw) / 2, (s - th) / 2, tw, th
}
