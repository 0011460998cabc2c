package main

import (
	"fmt"
	"log/slog"
	"os"

	"planweaver/internal/cli"
)

// main is a deterministic boundary: it canonicalizes all CLI inputs into an
// Invocation before any engine logic is invoked.
func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	result, err := cli.Run(os.Args[1:], logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(result.ExitCode)
}
