// Package pkg holds the identity of the spiral project and the error chain
// type shared by its packages.
//
//nolint:gochecknoglobals
package pkg

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var version string

// Version is the semantic version of spiral, read from the VERSION file at
// build time.
var Version = strings.TrimSpace(version)

const (
	// Name is the command name. It also names the configuration and cache
	// directories.
	Name = "spiral"
	// Description is the one-line summary shown in help output.
	Description = "Scanner and expression parser for the spiral language"
	// PathEnv names the environment variable listing source directories.
	PathEnv = "SPIRAL_PATH"
)

// AuthorInfo is a name and email address.
type AuthorInfo struct {
	Name  string
	Email string
}

// Author lists the maintainers of the project.
var Author = []AuthorInfo{
	{"ardnew", "andrew@ardnew.com"},
}
