// Package manifest builds the Contents.json document Xcode reads for an
// AppIcon.appiconset.
package manifest

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/Mavwarf/appicons/internal/iconset"
	"github.com/Mavwarf/appicons/internal/paths"
)

// FileName is the manifest's name inside the icon set directory.
const FileName = "Contents.json"

// Version is the asset catalog format version Xcode expects.
const Version = 1

// Image describes one bitmap in the icon set. Field order is the key order
// in the written document.
type Image struct {
	Filename string `json:"filename"`
	Idiom    string `json:"idiom"`
	Scale    string `json:"scale"`
	Size     string `json:"size"`
}

// Info is the fixed metadata block.
type Info struct {
	Author  string `json:"author"`
	Version int    `json:"version"`
}

// Contents is the whole manifest.
type Contents struct {
	Images []Image `json:"images"`
	Info   Info    `json:"info"`
}

// Build returns one record per (entry, scale) pair of table, in the same
// order iconset.ApplePlan produces bitmaps.
func Build(table []iconset.AppleSize, author string) Contents {
	c := Contents{
		Images: make([]Image, 0, iconset.PairCount(table)),
		Info:   Info{Author: author, Version: Version},
	}
	for _, e := range table {
		for _, scale := range e.Scales {
			c.Images = append(c.Images, Image{
				Filename: iconset.AppleFilename(e.Size, scale),
				Idiom:    e.Idiom,
				Scale:    iconset.ScaleLabel(scale),
				Size:     iconset.SizeLabel(e.Size),
			})
		}
	}
	return c
}

// Marshal encodes c with two-space indentation.
func Marshal(c Contents) ([]byte, error) {
	return json.MarshalIndent(c, "", "  ")
}

// Write serializes c into dir/Contents.json, replacing any existing file,
// and returns the written path.
func Write(dir string, c Contents) (string, error) {
	data, err := Marshal(c)
	if err != nil {
		return "", fmt.Errorf("manifest: encode: %w", err)
	}
	p := filepath.Join(dir, FileName)
	if err := paths.AtomicWrite(p, data); err != nil {
		return "", fmt.Errorf("manifest: write %s: %w", p, err)
	}
	return p, nil
}
