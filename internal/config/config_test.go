package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Mavwarf/appicons/internal/raster"
)

func TestUnmarshalKeepsDefaults(t *testing.T) {
	data := []byte(`{ "source": "art/logo.svg" }`)

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if cfg.Source != "art/logo.svg" {
		t.Errorf("Source = %q, want %q", cfg.Source, "art/logo.svg")
	}
	if cfg.IOSDir != DefaultIOSDir {
		t.Errorf("IOSDir = %q, want %q", cfg.IOSDir, DefaultIOSDir)
	}
	if cfg.AndroidResDir != DefaultAndroidResDir {
		t.Errorf("AndroidResDir = %q, want %q", cfg.AndroidResDir, DefaultAndroidResDir)
	}
	if cfg.Renderer != raster.SVGName {
		t.Errorf("Renderer = %q, want %q", cfg.Renderer, raster.SVGName)
	}
	if cfg.Author != DefaultAuthor {
		t.Errorf("Author = %q, want %q", cfg.Author, DefaultAuthor)
	}
}

func TestUnmarshalAllFields(t *testing.T) {
	data := []byte(`{
		"source": "a.svg",
		"ios_dir": "out/ios",
		"android_res_dir": "out/res",
		"renderer": "rsvg",
		"author": "me",
		"strict": true,
		"log": true
	}`)

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	want := Config{
		Source: "a.svg", IOSDir: "out/ios", AndroidResDir: "out/res",
		Renderer: raster.ExecName, Author: "me", Strict: true, Log: true,
	}
	if cfg != want {
		t.Errorf("cfg = %+v, want %+v", cfg, want)
	}
}

// chdir switches into dir for the duration of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	orig, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(orig) })
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Errorf("cfg = %+v, want defaults %+v", cfg, Default())
	}
}

func TestLoadWorkingDirFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	if err := os.WriteFile(filepath.Join(dir, "appicons.json"), []byte(`{"strict": true}`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.Strict {
		t.Error("expected Strict from appicons.json")
	}
	if cfg.Source != DefaultSource {
		t.Errorf("Source = %q, want default", cfg.Source)
	}
}

func TestLoadExplicitMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("expected error for missing explicit config")
	}
	if !strings.Contains(err.Error(), "reading config") {
		t.Errorf("error = %v, want reading config prefix", err)
	}
}

func TestLoadExplicitInvalidJSON(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(p, []byte(`{not json`), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(p)
	if err == nil || !strings.Contains(err.Error(), "parsing config") {
		t.Fatalf("expected parsing error, got %v", err)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("APPICONS_SOURCE", "env/logo.svg")
	t.Setenv("APPICONS_RENDERER", "rsvg")
	t.Setenv("APPICONS_LOG", "true")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Source != "env/logo.svg" {
		t.Errorf("Source = %q, want env override", cfg.Source)
	}
	if cfg.Renderer != raster.ExecName {
		t.Errorf("Renderer = %q, want %q", cfg.Renderer, raster.ExecName)
	}
	if !cfg.Log {
		t.Error("expected Log from env")
	}
	if cfg.IOSDir != DefaultIOSDir {
		t.Errorf("IOSDir = %q, want default untouched", cfg.IOSDir)
	}
}

func TestLoadEnvParseError(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("APPICONS_STRICT", "not-a-bool")

	_, err := Load("")
	if err == nil || !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env error, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"rsvg", func(c *Config) { c.Renderer = raster.ExecName }, ""},
		{"empty source", func(c *Config) { c.Source = "" }, "source"},
		{"blank ios dir", func(c *Config) { c.IOSDir = "  " }, "ios_dir"},
		{"empty android dir", func(c *Config) { c.AndroidResDir = "" }, "android_res_dir"},
		{"unknown renderer", func(c *Config) { c.Renderer = "cairo" }, "unknown renderer"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := Validate(cfg)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}
