// Package main provides the entry point for the scribe CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mrz1836/scribe/internal/cli"
	"github.com/mrz1836/scribe/internal/signal"
)

// Build information, set at build time via ldflags:
//
//	go build -ldflags "-X main.version=1.0.0 -X main.commit=$(git rev-parse --short HEAD) -X main.date=$(date -u +%Y-%m-%d)"
var (
	version string //nolint:gochecknoglobals // set via ldflags
	commit  string //nolint:gochecknoglobals // set via ldflags
	date    string //nolint:gochecknoglobals // set via ldflags
)

func main() {
	os.Exit(run())
}

func run() int {
	h := signal.NewHandler(context.Background())
	defer h.Stop()
	defer cli.CloseLogFile()

	info := cli.BuildInfo{Version: version, Commit: commit, Date: date}
	if err := cli.Execute(h.Context(), info); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return cli.ExitCodeForError(err)
	}
	return cli.ExitSuccess
}
