// Package cmd provides the subcommands of spiral: tokens, parse, eval,
// repl, init and version.
//
// Each command reads one expression from its positional arguments, the
// root --source files or stdin, in that order of preference.
package cmd

var (
	// CacheIdentifier is the kong variable identifier containing the path to
	// the runtime cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable identifier containing the path
	// to the YAML configuration file.
	ConfigIdentifier = "config"
)
