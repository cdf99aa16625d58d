package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.uber.org/automaxprocs/maxprocs"

	mdpress "github.com/mdpress/mdpress"
	"github.com/mdpress/mdpress/internal/config"
	"github.com/mdpress/mdpress/internal/hints"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// Configure GOMAXPROCS quietly; debug output only when -v is set.
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	verbose := hasVerboseFlag(os.Args[1:])
	if verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	env := DefaultEnv()
	warnUnknownEnvVars(os.Environ(), env.Stderr)

	ctx, stop := notifyContext(context.Background())
	defer stop()

	err := run(ctx, os.Args, env)
	if err != nil {
		printError(env, err)
	}
	os.Exit(exitCodeFor(err))
}

// hasVerboseFlag peeks at the raw args before full flag parsing, so
// maxprocs logging can be decided up front.
func hasVerboseFlag(args []string) bool {
	for _, a := range args {
		if a == "-v" || a == "--verbose" {
			return true
		}
	}
	return false
}

// printError writes the failure with an actionable hint when one exists.
func printError(env *Environment, err error) {
	if errors.Is(err, context.Canceled) {
		fmt.Fprintln(env.Stderr, "conversion cancelled by user")
		return
	}

	msg := err.Error()
	switch {
	case errors.Is(err, mdpress.ErrRendererUnavailable),
		errors.Is(err, mdpress.ErrBrowserConnect):
		msg += hints.ForBrowserConnect()
	case errors.Is(err, config.ErrConfigNotFound):
		msg += hints.ForConfigNotFound()
	}
	fmt.Fprintln(env.Stderr, "error: "+msg)
}
