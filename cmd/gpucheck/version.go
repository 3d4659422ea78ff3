package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/samcharles93/gpucheck/internal/cuda/cudart"
	"github.com/samcharles93/gpucheck/internal/cuda/fastmath"
	"github.com/samcharles93/gpucheck/internal/version"
)

func versionCmd() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Print version and build information",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			info := version.Resolve()
			w := cmd.Root().Writer
			fmt.Fprintf(w, "version:    %s\n", info.Version)
			if info.Commit != "" {
				fmt.Fprintf(w, "commit:     %s\n", info.Commit)
			}
			if info.BuildTime != "" {
				fmt.Fprintf(w, "build time: %s\n", info.BuildTime)
			}
			fmt.Fprintf(w, "cuda:       %t\n", cudart.Available())
			fmt.Fprintf(w, "fastmath:   %t\n", fastmath.Enabled)
			return nil
		},
	}
}
