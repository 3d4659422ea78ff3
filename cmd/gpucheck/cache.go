package main

import (
	"context"
	"fmt"
	"io"

	"github.com/urfave/cli/v3"

	"github.com/samcharles93/gpucheck/internal/cuda/cachepref"
)

func cacheCmd() *cli.Command {
	return &cli.Command{
		Name:      "cache",
		Usage:     "Describe cudaFuncCache preferences",
		ArgsUsage: "[none|shared|l1...]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return writeCachePreferences(cmd.Root().Writer, cmd.Args().Slice())
		},
	}
}

func writeCachePreferences(w io.Writer, args []string) error {
	prefs := cachepref.All()
	if len(args) > 0 {
		prefs = make([]cachepref.Preference, 0, len(args))
		for _, arg := range args {
			p, err := cachepref.Parse(arg)
			if err != nil {
				return err
			}
			prefs = append(prefs, p)
		}
	}
	for _, p := range prefs {
		if _, err := fmt.Fprintf(w, "%-26s %s\n", p, cachepref.Describe(p)); err != nil {
			return err
		}
	}
	return nil
}
