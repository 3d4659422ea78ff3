package main

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/urfave/cli/v3"

	"github.com/samcharles93/gpucheck/internal/cuda/cudart"
)

type explained struct {
	Code    int    `json:"code"`
	Name    string `json:"name"`
	Message string `json:"message"`
	Known   bool   `json:"known"`
}

func explainCmd() *cli.Command {
	var asJSON bool

	return &cli.Command{
		Name:      "explain",
		Usage:     "Print the runtime name and message for status codes",
		ArgsUsage: "<code> [code...]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "print a JSON array",
				Destination: &asJSON,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			args := cmd.Args().Slice()
			if len(args) == 0 {
				return fmt.Errorf("explain: at least one status code is required")
			}
			return writeExplain(cmd.Root().Writer, cudart.Native(), args, asJSON)
		},
	}
}

func writeExplain(w io.Writer, rt cudart.Runtime, args []string, asJSON bool) error {
	out := make([]explained, 0, len(args))
	for _, arg := range args {
		code, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("explain: %q is not a status code", arg)
		}
		st := cudart.Status(code)
		out = append(out, explained{
			Code:    code,
			Name:    st.Name(),
			Message: rt.ErrorString(st),
			Known:   cudart.Known(st),
		})
	}

	if asJSON {
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}
	for _, e := range out {
		if _, err := fmt.Fprintf(w, "%d\t%s\t%s\n", e.Code, e.Name, e.Message); err != nil {
			return err
		}
	}
	return nil
}
