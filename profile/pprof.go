//go:build pprof

package profile

import (
	"maps"
	"slices"

	"github.com/pkg/profile"

	_ "net/http/pprof" // register HTTP handlers
)

var mode = map[string]func(*profile.Profile){
	"block":     profile.BlockProfile,
	"cpu":       profile.CPUProfile,
	"clock":     profile.ClockProfile,
	"goroutine": profile.GoroutineProfile,
	"mem":       profile.MemProfile,
	"allocs":    profile.MemProfileAllocs,
	"heap":      profile.MemProfileHeap,
	"mutex":     profile.MutexProfile,
	"thread":    profile.ThreadcreationProfile,
	"trace":     profile.TraceProfile,
}

// Modes returns the sorted names of the supported profiling modes.
func Modes() []string { return slices.Sorted(maps.Keys(mode)) }

func start(p Profiler) Stopper {
	fn, ok := mode[p.Mode]
	if !ok {
		return ignore{}
	}

	opts := []func(*profile.Profile){fn, profile.NoShutdownHook}

	if p.Path != "" {
		opts = append(opts, profile.ProfilePath(p.Path))
	}

	if p.Quiet {
		opts = append(opts, profile.Quiet)
	}

	return profile.Start(opts...)
}
