package raster

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os/exec"
	"strconv"
)

// ExecName is the config name of the rsvg-convert renderer.
const ExecName = "rsvg"

// InstallHint tells the user how to get rsvg-convert.
const InstallHint = `Install librsvg to get rsvg-convert:
   macOS:          brew install librsvg
   Debian/Ubuntu:  sudo apt install librsvg2-bin
   Fedora:         sudo dnf install librsvg2-tools
Or set "renderer": "oksvg" to use the built-in renderer.`

// Exec renders by running rsvg-convert and decoding the PNG it prints.
type Exec struct {
	Tool string // binary name or path
}

// NewExec returns an Exec using rsvg-convert from PATH.
func NewExec() Exec {
	return Exec{Tool: "rsvg-convert"}
}

func (e Exec) Name() string { return ExecName }

// Check returns ErrRendererUnavailable when the tool is not on PATH.
func (e Exec) Check() error {
	if _, err := exec.LookPath(e.Tool); err != nil {
		return fmt.Errorf("%w: %s not found on PATH: %v", ErrRendererUnavailable, e.Tool, err)
	}
	return nil
}

func (e Exec) Render(src string, size int) (image.Image, error) {
	n := strconv.Itoa(size)
	cmd := exec.Command(e.Tool, "-w", n, "-h", n, "-b", "white", "-f", "png", src)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("%s: %w\n%s", e.Tool, err, bytes.TrimSpace(stderr.Bytes()))
	}
	img, err := png.Decode(bytes.NewReader(out))
	if err != nil {
		return nil, fmt.Errorf("decode %s output: %w", e.Tool, err)
	}
	return img, nil
}
