package main

import (
	"context"
	"os"

	"github.com/ardnew/spiral/cli"
)

func main() {
	err := cli.Run(context.Background(), os.Exit, os.Args[1:]...)
	if err != nil {
		cli.Report(os.Stderr, err)
		os.Exit(1)
	}
}
