package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/Mavwarf/appicons/internal/paths"
	"github.com/Mavwarf/appicons/internal/raster"
)

// Defaults match the Flutter project layout the tool is run from.
const (
	DefaultSource        = "assets/images/logo.svg"
	DefaultIOSDir        = "ios/Runner/Assets.xcassets/AppIcon.appiconset"
	DefaultAndroidResDir = "android/app/src/main/res"
	DefaultAuthor        = "xcode"
)

// Config holds everything a generation run needs. Every field can be set
// from appicons.json and overridden from the environment.
type Config struct {
	Source        string `json:"source,omitempty" env:"APPICONS_SOURCE"`
	IOSDir        string `json:"ios_dir,omitempty" env:"APPICONS_IOS_DIR"`
	AndroidResDir string `json:"android_res_dir,omitempty" env:"APPICONS_ANDROID_RES_DIR"`
	Renderer      string `json:"renderer,omitempty" env:"APPICONS_RENDERER"`
	Author        string `json:"author,omitempty" env:"APPICONS_AUTHOR"`
	Strict        bool   `json:"strict,omitempty" env:"APPICONS_STRICT"` // per-file failures fail the run
	Log           bool   `json:"log,omitempty" env:"APPICONS_LOG"`       // record runs in the history db
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Source:        DefaultSource,
		IOSDir:        DefaultIOSDir,
		AndroidResDir: DefaultAndroidResDir,
		Renderer:      raster.SVGName,
		Author:        DefaultAuthor,
	}
}

// UnmarshalJSON sets defaults then decodes the JSON structure.
// Go's json.Unmarshal merges into existing struct fields, so only
// values present in JSON override the defaults.
func (c *Config) UnmarshalJSON(data []byte) error {
	*c = Default()
	type Alias Config
	return json.Unmarshal(data, (*Alias)(c))
}

// Load resolves the configuration. It tries, in order:
//  1. explicitPath (if non-empty; must exist)
//  2. appicons.json in the working directory
//  3. built-in defaults
//
// APPICONS_* environment variables are applied on top of the result.
func Load(explicitPath string) (Config, error) {
	var cfg Config
	var err error
	switch {
	case explicitPath != "":
		cfg, err = readConfig(explicitPath)
	default:
		if _, statErr := os.Stat(paths.ConfigFileName); statErr == nil {
			cfg, err = readConfig(paths.ConfigFileName)
		} else {
			cfg = Default()
		}
	}
	if err != nil {
		return Config{}, err
	}
	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that every path is set and the renderer is known.
func Validate(cfg Config) error {
	for _, f := range []struct{ key, val string }{
		{"source", cfg.Source},
		{"ios_dir", cfg.IOSDir},
		{"android_res_dir", cfg.AndroidResDir},
	} {
		if strings.TrimSpace(f.val) == "" {
			return fmt.Errorf("config: %s must not be empty", f.key)
		}
	}
	if _, err := raster.New(cfg.Renderer); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

func readConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}
