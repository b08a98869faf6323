// Package main is the entry point for the tesseract CLI.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/katalvlaran/tesseract/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := cli.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
