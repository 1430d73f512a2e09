// Package profile wraps [github.com/pkg/profile] so runtime profiling can be
// compiled in with a build tag and is free otherwise.
//
// Without the "pprof" tag, [Modes] is empty and [Profiler.Start] returns a
// no-op. With it, the regexrules command accepts --pprof-mode:
//
//	go build -tags pprof .
//	regexrules --pprof-mode=cpu compile rules.yml
//	go tool pprof -http=: ~/.cache/regexrules/pprof/cpu.pprof
//
// Supported modes are allocs, block, clock, cpu, goroutine, heap, mem,
// mutex, thread and trace. Profiles are written to [Profiler.Path] with
// file names chosen by pkg/profile (cpu.pprof, mem.pprof, ...).
//
// The pprof build also imports [net/http/pprof], registering its handlers
// on [net/http.DefaultServeMux] for programs that serve it.
package profile
