package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// Environment variables recognized by the CLI. Flags take precedence.
const (
	envConfig  = "MDPRESS_CONFIG"
	envLog     = "MDPRESS_LOG"
	envVerbose = "MDPRESS_VERBOSE"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Now    func() time.Time
	Stdout io.Writer
	Stderr io.Writer
	Getenv func(string) string
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:    time.Now,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Getenv: os.Getenv,
	}
}

// applyEnv fills in flag values from environment variables when the
// corresponding flag was not set on the command line.
func applyEnv(flags *cliFlags, env *Environment) {
	if flags.config == "" {
		flags.config = env.Getenv(envConfig)
	}
	if flags.logFile == "" {
		flags.logFile = env.Getenv(envLog)
	}
	if !flags.verbose {
		switch strings.ToLower(env.Getenv(envVerbose)) {
		case "1", "true", "yes":
			flags.verbose = true
		}
	}
}

// knownEnvVars lists the MDPRESS_* variables the CLI understands.
var knownEnvVars = map[string]bool{
	envConfig:  true,
	envLog:     true,
	envVerbose: true,
}

// warnUnknownEnvVars reports MDPRESS_* variables that have no effect,
// catching typos like MDPRESS_CONF.
func warnUnknownEnvVars(environ []string, stderr io.Writer) {
	for _, kv := range environ {
		name, _, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(name, "MDPRESS_") {
			continue
		}
		if !knownEnvVars[name] {
			fmt.Fprintf(stderr, "warning: unrecognized environment variable %s ignored\n", name)
		}
	}
}
