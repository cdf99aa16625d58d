package main

import (
	"context"
	"errors"

	mdpress "github.com/mdpress/mdpress"
	"github.com/mdpress/mdpress/internal/config"
)

// Exit codes for the mdpress CLI.
const (
	ExitSuccess    = 0 // Successful conversion
	ExitFailure    = 1 // Recognized failure: config, dependency, validation, conversion
	ExitCancelled  = 2 // Interrupted by the user (SIGINT/SIGTERM)
	ExitUnexpected = 3 // Anything else
)

// exitCodeFor maps an error to its exit code. It uses errors.Is to check
// wrapped errors, so callers must wrap with fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, context.Canceled) {
		return ExitCancelled
	}

	// Recognized failures (exit 1): everything the pipeline or the
	// config layer defines, plus CLI usage errors.
	known := mdpress.DomainErrors()
	known = append(known,
		config.ErrConfigNotFound,
		config.ErrConfigRead,
		config.ErrConfigParse,
		config.ErrInvalidPageSize,
		config.ErrInvalidMargin,
		config.ErrInvalidEncoding,
		ErrUsage,
	)
	for _, k := range known {
		if errors.Is(err, k) {
			return ExitFailure
		}
	}

	return ExitUnexpected
}
