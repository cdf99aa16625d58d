package main

import (
	"context"
	"fmt"
	"time"

	mdpress "github.com/mdpress/mdpress"
	"github.com/mdpress/mdpress/internal/config"
	"github.com/mdpress/mdpress/internal/logging"
)

// run executes one conversion: flag and env resolution, logging setup,
// config load, dependency check, and the conversion itself.
func run(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseFlags(args)
	if err != nil {
		return err
	}

	if flags.version {
		fmt.Fprintf(env.Stdout, "mdpress %s\n", Version)
		return nil
	}

	applyEnv(flags, env)

	if len(positional) != 2 {
		printUsage(env.Stderr)
		return fmt.Errorf("%w: expected <input.md> <output.pdf>, got %d argument(s)", ErrUsage, len(positional))
	}

	log, closeLog, err := logging.Setup(env.Stderr, flags.verbose, flags.logFile)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	defer func() { _ = closeLog() }()

	conf := config.Default()
	if flags.config != "" {
		log.Debug("loading config file", "path", flags.config)
		conf, err = config.Load(flags.config, config.Default())
		if err != nil {
			return err
		}
	}

	opts := []mdpress.Option{mdpress.WithLogger(log)}
	if flags.timeout != "" {
		d, err := time.ParseDuration(flags.timeout)
		if err != nil || d <= 0 {
			return fmt.Errorf("%w: invalid timeout %q", ErrUsage, flags.timeout)
		}
		opts = append(opts, mdpress.WithTimeout(d))
	}

	svc := mdpress.New(conf, opts...)
	defer func() { _ = svc.Close() }()

	log.Debug("verifying PDF renderer")
	if err := svc.Verify(ctx); err != nil {
		return err
	}

	start := env.Now()
	req := mdpress.Request{InputPath: positional[0], OutputPath: positional[1]}
	if err := svc.Convert(ctx, req); err != nil {
		return err
	}

	fmt.Fprintf(env.Stdout, "Created %s (%v)\n", req.OutputPath, env.Now().Sub(start).Round(time.Millisecond))
	return nil
}
