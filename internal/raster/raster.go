// Package raster turns the vector logo into opaque square PNG bitmaps.
//
// Rendering is behind the Renderer interface: SVG draws in-process with
// oksvg/rasterx, Exec shells out to rsvg-convert. Whatever a renderer
// returns is flattened onto white before encoding, so written files never
// carry an alpha channel.
package raster

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"

	"golang.org/x/image/draw"

	"github.com/Mavwarf/appicons/internal/paths"
)

// ErrRendererUnavailable is returned by Renderer.Check when the rendering
// backend cannot be used on this machine.
var ErrRendererUnavailable = errors.New("renderer unavailable")

// Renderer rasterizes a vector file into a size×size image.
type Renderer interface {
	Name() string
	// Check reports whether the renderer can run at all. Called once
	// before any output is produced.
	Check() error
	Render(src string, size int) (image.Image, error)
}

// New returns the renderer registered under name.
func New(name string) (Renderer, error) {
	switch name {
	case SVGName:
		return SVG{}, nil
	case ExecName:
		return NewExec(), nil
	default:
		return nil, fmt.Errorf("unknown renderer %q (want %q or %q)", name, SVGName, ExecName)
	}
}

// Flatten composites img onto an opaque white size×size canvas. Images of
// another size are scaled with Catmull-Rom.
func Flatten(img image.Image, size int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)

	b := img.Bounds()
	if b.Dx() == size && b.Dy() == size {
		draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Over)
	} else {
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	}
	return dst
}

var encoder = png.Encoder{CompressionLevel: png.BestCompression}

// WritePNG encodes img losslessly and replaces path with it. The parent
// directory is created if needed.
func WritePNG(path string, img image.Image) error {
	var buf bytes.Buffer
	if err := encoder.Encode(&buf, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return paths.AtomicWrite(path, buf.Bytes())
}

// Rasterize renders src at size with r, flattens the result and writes it
// to dst.
func Rasterize(r Renderer, src, dst string, size int) error {
	if size <= 0 {
		return fmt.Errorf("invalid size %d", size)
	}
	img, err := r.Render(src, size)
	if err != nil {
		return fmt.Errorf("%s: %w", r.Name(), err)
	}
	return WritePNG(dst, Flatten(img, size))
}
