// Package profile wraps [github.com/pkg/profile] for the spiral command.
//
// Profiling is compiled in only with the "pprof" build tag:
//
//	go build -tags pprof .
//	spiral --pprof-mode cpu parse -s big.spl
//	go tool pprof -http=: ~/.cache/spiral/pprof/cpu.pprof
//
// Without the tag [Modes] is empty and [Profiler.Start] does nothing, so
// callers need no build constraints of their own. With the tag the package
// also registers the [net/http/pprof] handlers.
//
// Supported modes are allocs, block, clock, cpu, goroutine, heap, mem,
// mutex, thread and trace.
package profile

// Tag is the build tag that enables profiling.
const Tag = `pprof`
