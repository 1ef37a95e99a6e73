package generator

import (
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/Mavwarf/appicons/internal/iconset"
	"github.com/Mavwarf/appicons/internal/raster"
)

// fakeRenderer returns a transparent image of the requested size and fails
// for sizes listed in failOn.
type fakeRenderer struct {
	failOn map[int]bool
	calls  []int
}

func (f *fakeRenderer) Name() string { return "fake" }
func (f *fakeRenderer) Check() error { return nil }

func (f *fakeRenderer) Render(src string, size int) (image.Image, error) {
	f.calls = append(f.calls, size)
	if f.failOn[size] {
		return nil, errors.New("simulated failure")
	}
	return image.NewNRGBA(image.Rect(0, 0, size, size)), nil
}

var _ raster.Renderer = (*fakeRenderer)(nil)

func pngSize(t *testing.T, path string) (int, int) {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	return cfg.Width, cfg.Height
}

func TestRunApplePlan(t *testing.T) {
	root := filepath.Join(t.TempDir(), "AppIcon.appiconset")
	plan := iconset.ApplePlan(root, iconset.AppleSizes)
	r := &fakeRenderer{}

	s := Run(r, "logo.svg", plan, nil)
	if s.Generated() != len(plan) {
		t.Fatalf("Generated() = %d, want %d", s.Generated(), len(plan))
	}
	for _, tgt := range plan {
		w, h := pngSize(t, tgt.Path)
		if w != tgt.Pixels || h != tgt.Pixels {
			t.Errorf("%s = %dx%d, want %dx%d", tgt.Path, w, h, tgt.Pixels, tgt.Pixels)
		}
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		t.Fatal(err)
	}
	// iphone and ipad share the 20/29/40 @2x files.
	distinct := map[string]bool{}
	for _, tgt := range plan {
		distinct[filepath.Base(tgt.Path)] = true
	}
	if len(distinct) != 15 {
		t.Errorf("plan names %d distinct files, want 15", len(distinct))
	}
	if len(entries) != len(distinct) {
		t.Errorf("%d files in %s, want %d", len(entries), root, len(distinct))
	}
}

func TestRunAndroidPlan(t *testing.T) {
	res := t.TempDir()
	plan := iconset.AndroidPlan(res, iconset.AndroidSizes)

	s := Run(&fakeRenderer{}, "logo.svg", plan, nil)
	if len(s.Failures()) != 0 {
		t.Fatalf("unexpected failures: %+v", s.Failures())
	}
	w, h := pngSize(t, filepath.Join(res, "mipmap-mdpi", "ic_launcher.png"))
	if w != 48 || h != 48 {
		t.Errorf("mdpi = %dx%d, want 48x48", w, h)
	}
	for _, e := range iconset.AndroidSizes {
		entries, err := os.ReadDir(iconset.AndroidDir(res, e.Density))
		if err != nil {
			t.Fatal(err)
		}
		if len(entries) != 1 || entries[0].Name() != iconset.AndroidIconName {
			t.Errorf("mipmap-%s holds %v, want only %s", e.Density, entries, iconset.AndroidIconName)
		}
	}
}

func TestRunContinuesAfterFailure(t *testing.T) {
	root := t.TempDir()
	plan := iconset.ApplePlan(root, []iconset.AppleSize{
		{Size: 20, Scales: []int{1, 2, 3}, Idiom: "iphone"},
	})
	r := &fakeRenderer{failOn: map[int]bool{40: true}}

	var reported []Result
	s := Run(r, "logo.svg", plan, func(res Result) { reported = append(reported, res) })

	if len(r.calls) != 3 {
		t.Fatalf("renderer called %d times, want 3", len(r.calls))
	}
	if len(reported) != 3 {
		t.Fatalf("reported %d results, want 3", len(reported))
	}
	if s.Generated() != 2 {
		t.Errorf("Generated() = %d, want 2", s.Generated())
	}
	fails := s.Failures()
	if len(fails) != 1 || fails[0].Target.Pixels != 40 {
		t.Fatalf("Failures() = %+v, want the 40px target", fails)
	}
	if _, err := os.Stat(fails[0].Target.Path); !os.IsNotExist(err) {
		t.Errorf("failed target should not exist, stat err = %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, "Icon-App-20x20@3x.png")); err != nil {
		t.Errorf("target after the failure was not written: %v", err)
	}
}

func TestMerge(t *testing.T) {
	a := Summary{Results: []Result{{}}}
	b := Summary{Results: []Result{{Err: errors.New("x")}, {}}}
	a.Merge(b)
	if len(a.Results) != 3 || a.Generated() != 2 || len(a.Failures()) != 1 {
		t.Errorf("merged = %+v", a)
	}
}
