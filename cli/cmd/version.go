package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/ardnew/spiral/pkg"
)

// Version prints the program name and version.
type Version struct {
	Short bool `help:"Print only the version number." short:"q"`

	out io.Writer
}

// Run executes the version command.
func (v *Version) Run(context.Context) error {
	out := v.out
	if out == nil {
		out = os.Stdout
	}

	var err error
	if v.Short {
		_, err = fmt.Fprintln(out, pkg.Version)
	} else {
		_, err = fmt.Fprintf(out, "%s %s\n", pkg.Name, pkg.Version)
	}

	if err != nil {
		return ErrWriteOutput.Wrap(err)
	}

	return nil
}
