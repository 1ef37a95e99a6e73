// Package generator drives a renderer over an icon plan. A failing target
// is recorded and the run moves on to the next one.
package generator

import (
	"github.com/Mavwarf/appicons/internal/iconset"
	"github.com/Mavwarf/appicons/internal/raster"
)

// Result is the outcome of one target. Err is nil on success.
type Result struct {
	Target iconset.Target
	Err    error
}

// Summary collects the results of one or more plans.
type Summary struct {
	Results []Result
}

// Generated returns the number of targets written.
func (s Summary) Generated() int {
	n := 0
	for _, r := range s.Results {
		if r.Err == nil {
			n++
		}
	}
	return n
}

// Failures returns the failed results in plan order.
func (s Summary) Failures() []Result {
	var out []Result
	for _, r := range s.Results {
		if r.Err != nil {
			out = append(out, r)
		}
	}
	return out
}

// Run rasterizes src once per target in plan. report, if non-nil, is
// called after each target with its result.
func Run(r raster.Renderer, src string, plan iconset.Plan, report func(Result)) Summary {
	var s Summary
	for _, t := range plan {
		res := Result{Target: t, Err: raster.Rasterize(r, src, t.Path, t.Pixels)}
		s.Results = append(s.Results, res)
		if report != nil {
			report(res)
		}
	}
	return s
}

// Merge appends other's results to s.
func (s *Summary) Merge(other Summary) {
	s.Results = append(s.Results, other.Results...)
}
