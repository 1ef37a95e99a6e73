package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/Mavwarf/appicons/internal/config"
	"github.com/Mavwarf/appicons/internal/eventlog"
	"github.com/Mavwarf/appicons/internal/generator"
	"github.com/Mavwarf/appicons/internal/iconset"
	"github.com/Mavwarf/appicons/internal/manifest"
	"github.com/Mavwarf/appicons/internal/paths"
	"github.com/Mavwarf/appicons/internal/raster"
)

var errSourceMissing = errors.New("source image not found")

// app is one generation run.
type app struct {
	cfg      config.Config
	renderer raster.Renderer
	con      *console
}

// checkSource returns errSourceMissing unless path is an existing file.
func checkSource(path string) error {
	fi, err := os.Stat(path)
	if err != nil || fi.IsDir() {
		return fmt.Errorf("%w: %s", errSourceMissing, path)
	}
	return nil
}

// run validates the source and renderer, then writes the iOS icons, the
// iOS manifest and the Android icons, in that order. Per-file failures are
// collected in the summary; any returned error is fatal.
func (a *app) run() (generator.Summary, error) {
	var s generator.Summary

	if err := checkSource(a.cfg.Source); err != nil {
		return s, err
	}
	if err := a.renderer.Check(); err != nil {
		return s, err
	}

	a.con.section("Generating iOS app icons...")
	s.Merge(generator.Run(a.renderer, a.cfg.Source,
		iconset.ApplePlan(a.cfg.IOSDir, iconset.AppleSizes), a.con.result))

	p, err := manifest.Write(a.cfg.IOSDir, manifest.Build(iconset.AppleSizes, a.cfg.Author))
	if err != nil {
		return s, err
	}
	a.con.created(p)

	a.con.section("\nGenerating Android app icons...")
	s.Merge(generator.Run(a.renderer, a.cfg.Source,
		iconset.AndroidPlan(a.cfg.AndroidResDir, iconset.AndroidSizes), a.con.result))

	return s, nil
}

// exitCode maps a run outcome to the process status.
func exitCode(err error, s generator.Summary, strict bool) int {
	if err != nil {
		return 1
	}
	if strict && len(s.Failures()) > 0 {
		return 1
	}
	return 0
}

// report prints the outcome of run and returns the exit status.
func (a *app) report(s generator.Summary, err error) int {
	switch {
	case errors.Is(err, errSourceMissing):
		a.con.fail("Error: %s not found!", a.cfg.Source)
	case errors.Is(err, raster.ErrRendererUnavailable):
		a.con.fail("Missing required renderer: %v", err)
		fmt.Fprintf(a.con.err, "%s%s\n", a.con.icon("📦"), raster.InstallHint)
	case err != nil:
		a.con.fail("Error: %v", err)
	default:
		a.con.summary(a.cfg.IOSDir, a.cfg.AndroidResDir, s)
		if a.cfg.Strict && len(s.Failures()) > 0 {
			a.con.fail("Error: %d file(s) failed (strict mode)", len(s.Failures()))
		}
	}
	return exitCode(err, s, a.cfg.Strict)
}

// record stores the run in the history database when logging is enabled.
func (a *app) record(s generator.Summary) {
	if !a.cfg.Log || len(s.Results) == 0 {
		return
	}
	eventlog.Log(paths.HistoryPath(), newRunRecord(a.cfg.Source, a.renderer.Name(), s))
}

func newRunRecord(src, renderer string, s generator.Summary) eventlog.Run {
	run := eventlog.Run{
		Source:    src,
		Renderer:  renderer,
		Generated: s.Generated(),
		Failed:    len(s.Failures()),
		Outputs:   make([]eventlog.Output, 0, len(s.Results)),
	}
	for _, r := range s.Results {
		o := eventlog.Output{Path: r.Target.Path, Pixels: r.Target.Pixels}
		if r.Err != nil {
			o.Error = r.Err.Error()
		}
		run.Outputs = append(run.Outputs, o)
	}
	return run
}

// generateCmd is the default command.
func generateCmd(configPath string) {
	con := newConsole()

	cfg, err := config.Load(configPath)
	if err != nil {
		con.fail("Error: %v", err)
		os.Exit(1)
	}
	r, err := raster.New(cfg.Renderer)
	if err != nil {
		con.fail("Error: %v", err)
		os.Exit(1)
	}

	a := &app{cfg: cfg, renderer: r, con: con}
	os.Exit(a.execute())
}

// execute runs the generator, reports and records the outcome and returns
// the exit status. A panic during generation is reported like any other
// top-level error.
func (a *app) execute() (code int) {
	defer func() {
		if p := recover(); p != nil {
			a.con.fail("Error: %v", p)
			code = 1
		}
	}()

	a.con.banner(a.cfg.Source)
	s, err := a.run()
	a.record(s)
	return a.report(s, err)
}
