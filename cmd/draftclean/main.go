package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/JonMunkholm/draftclean/internal/core"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the root command and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := newRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		reportError(stderr, err)
		return 1
	}
	return 0
}

// reportError prints err the way its category requires: user-facing errors
// get a one-line message, unexpected ones also get the diagnostic trace.
func reportError(w io.Writer, err error) {
	var missing *core.MissingInputError
	var schema *core.SchemaError
	var unexpected *core.UnexpectedError

	switch {
	case errors.As(err, &missing):
		fmt.Fprintf(w, "Error: %v\n", err)
	case errors.As(err, &schema):
		fmt.Fprintf(w, "Error: %v\n%s\n", err, core.FormatUserError(err))
	case errors.As(err, &unexpected):
		fmt.Fprintf(w, "An unexpected error occurred: %v\n", err)
		fmt.Fprintf(w, "%s\n", core.FormatUserError(err))
		fmt.Fprintf(w, "%+v\n", unexpected)
	default:
		// Usage errors from argument parsing
		fmt.Fprintf(w, "Error: %v\n", err)
	}
}
