// Package cli contains the command line interface for spiral.
//
// # Usage
//
//	spiral [flags] <command> [expr ...]
//
// Each command takes its expression from the positional arguments, the
// --source files, or stdin, in that order of preference. With no command,
// the arguments are evaluated:
//
//	spiral '1 + 2 * 3'
//	spiral parse -o infix '1 + 2 * 3'
//	spiral tokens -o json -s expr.sp
//
// Relative --source names that do not exist in the working directory are
// searched for in each --include directory, then in each directory listed
// in $SPIRAL_PATH.
//
// # Configuration Loader
//
// Flag defaults are read from config.yaml in the configuration directory
// (see [pkg.ConfigDir]), either at the top level or under a "config" key.
// Nested keys are joined with hyphens, so "log: {level: debug}" sets
// --log-level. A config.json file in the same directory is also read.
// Generate the file from the current flags with:
//
//	spiral --log-level=debug init
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (text, json)
//   - --log-time-layout: Set timestamp format (RFC3339, Kitchen, etc.)
//   - --log-caller: Include caller information in log output
//   - --log-pretty: Colorize log output
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof -o spiral .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default:
//     ~/.cache/spiral/pprof)
package cli
