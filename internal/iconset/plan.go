package iconset

import "path/filepath"

// Target is one bitmap to produce.
type Target struct {
	Path   string
	Pixels int
}

// Plan is an ordered list of targets.
type Plan []Target

// ApplePlan expands the iOS table into one target per (entry, scale), all
// in root, in table order.
func ApplePlan(root string, table []AppleSize) Plan {
	var plan Plan
	for _, e := range table {
		for _, scale := range e.Scales {
			plan = append(plan, Target{
				Path:   filepath.Join(root, AppleFilename(e.Size, scale)),
				Pixels: Pixels(e.Size, scale),
			})
		}
	}
	return plan
}

// AndroidPlan expands the Android table into one ic_launcher.png per
// density directory under resRoot.
func AndroidPlan(resRoot string, table []AndroidSize) Plan {
	plan := make(Plan, 0, len(table))
	for _, e := range table {
		plan = append(plan, Target{
			Path:   filepath.Join(AndroidDir(resRoot, e.Density), AndroidIconName),
			Pixels: e.Size,
		})
	}
	return plan
}

// PairCount returns the number of (entry, scale) pairs in an iOS table.
func PairCount(table []AppleSize) int {
	n := 0
	for _, e := range table {
		n += len(e.Scales)
	}
	return n
}
