package cmd

import (
	"context"

	"github.com/ardnew/spiral/cli/cmd/repl"
	"github.com/ardnew/spiral/log"
)

// Repl starts an interactive session that evaluates one expression per line.
type Repl struct {
	NoHistory bool `help:"Do not read or write the history file."`
}

// Run executes the repl command.
func (r *Repl) Run(ctx context.Context) error {
	var cacheDir string

	if !r.NoHistory {
		if ktx := kongContextFrom(ctx); ktx != nil {
			cacheDir = ktx.Model.Vars()[CacheIdentifier]
		}
	}

	return repl.Run(ctx, cacheDir, log.Default())
}
