// Package profile provides optional runtime profiling for minigrep.
//
// Profiling is backed by [github.com/pkg/profile] and compiled in only with
// the "pprof" build tag:
//
//	go build -tags pprof .
//	minigrep --pprof-mode=cpu needle big.txt
//	go tool pprof ~/.cache/minigrep/pprof/cpu.pprof
//
// Without the tag [Modes] is empty and [Profiler.Start] returns a no-op, so
// callers never need build tags of their own.
//
// Supported modes: allocs, block, clock, cpu, goroutine, heap, mem, mutex,
// thread and trace.
package profile

// Tag is the build tag required to enable profiling.
const Tag = `pprof`
