package main

import (
	"context"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/samcharles93/gpucheck/internal/cuda/check"
	"github.com/samcharles93/gpucheck/internal/cuda/cudart"
	"github.com/samcharles93/gpucheck/internal/logger"
)

// stderrIsTTY is a small seam for tests.
var stderrIsTTY = func() bool { return isTerminal(os.Stderr) }

func setup(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	path := configFile
	if path == "" {
		path = defaultConfigPath()
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		return ctx, err
	}
	loaded = cfg
	applyLoggingConfig(cmd, cfg)

	log, err := newLogger(os.Stderr, logFormat, logLevel, debug)
	if err != nil {
		return ctx, err
	}
	check.SetDefault(newChecker(log, cfg))
	return logger.WithContext(ctx, log), nil
}

func newLogger(w io.Writer, format, level string, debug bool) (logger.Logger, error) {
	lvl := logger.ParseLevel(level)
	if debug {
		lvl = logger.ParseLevel("debug")
	}
	if format == "" || format == "auto" {
		format = logger.FormatText
		if stderrIsTTY() {
			format = logger.FormatPretty
		}
	}
	return logger.ForFormat(w, format, lvl)
}

func newChecker(log logger.Logger, cfg Config) *check.Checker {
	opts := []check.Option{check.WithLogger(log.With("component", "cuda"))}
	if cfg.ExitCode != nil {
		opts = append(opts, check.WithExitCode(*cfg.ExitCode))
	}
	return check.New(cudart.Native(), opts...)
}
