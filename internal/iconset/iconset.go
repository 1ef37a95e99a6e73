// Package iconset holds the static icon size tables for iOS and Android and
// the naming rules that turn them into output files.
package iconset

import (
	"fmt"
	"math"
	"path/filepath"
	"strconv"
)

// AppleSize is one row of the iOS table: a nominal point size rendered at
// each listed scale for one device idiom.
type AppleSize struct {
	Size   float64
	Scales []int
	Idiom  string
}

// AndroidSize is one row of the Android table: a density bucket and its
// launcher icon edge in pixels.
type AndroidSize struct {
	Density string
	Size    int
}

// AppleSizes is the AppIcon.appiconset table. Manifest records follow this
// order, so it must not be reordered casually.
var AppleSizes = []AppleSize{
	// iPhone
	{Size: 20, Scales: []int{2, 3}, Idiom: "iphone"},
	{Size: 29, Scales: []int{2, 3}, Idiom: "iphone"},
	{Size: 40, Scales: []int{2, 3}, Idiom: "iphone"},
	{Size: 60, Scales: []int{2, 3}, Idiom: "iphone"},

	// iPad
	{Size: 20, Scales: []int{1, 2}, Idiom: "ipad"},
	{Size: 29, Scales: []int{1, 2}, Idiom: "ipad"},
	{Size: 40, Scales: []int{1, 2}, Idiom: "ipad"},
	{Size: 76, Scales: []int{1, 2}, Idiom: "ipad"},
	{Size: 83.5, Scales: []int{2}, Idiom: "ipad"},

	// App Store
	{Size: 1024, Scales: []int{1}, Idiom: "ios-marketing"},
}

// AndroidSizes lists the mipmap density buckets.
var AndroidSizes = []AndroidSize{
	{Density: "mdpi", Size: 48},
	{Density: "hdpi", Size: 72},
	{Density: "xhdpi", Size: 96},
	{Density: "xxhdpi", Size: 144},
	{Density: "xxxhdpi", Size: 192},
}

// AndroidIconName is the file every mipmap directory carries.
const AndroidIconName = "ic_launcher.png"

// FormatSize renders a nominal size the way Xcode names it: "20" for whole
// numbers, "83.5" otherwise.
func FormatSize(size float64) string {
	if size == math.Trunc(size) {
		return strconv.FormatInt(int64(size), 10)
	}
	return strconv.FormatFloat(size, 'f', -1, 64)
}

// ScaleLabel returns "1x", "2x", ...
func ScaleLabel(scale int) string {
	return fmt.Sprintf("%dx", scale)
}

// SizeLabel returns the manifest size string, e.g. "83.5x83.5".
func SizeLabel(size float64) string {
	s := FormatSize(size)
	return s + "x" + s
}

// AppleFilename returns e.g. "Icon-App-20x20@2x.png".
func AppleFilename(size float64, scale int) string {
	return fmt.Sprintf("Icon-App-%s@%s.png", SizeLabel(size), ScaleLabel(scale))
}

// Pixels returns the bitmap edge for a nominal size at a scale.
func Pixels(size float64, scale int) int {
	return int(math.Round(size * float64(scale)))
}

// AndroidDir returns the mipmap directory for a density under resRoot.
func AndroidDir(resRoot, density string) string {
	return filepath.Join(resRoot, "mipmap-"+density)
}
