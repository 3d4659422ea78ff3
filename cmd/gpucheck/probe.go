package main

import (
	"context"
	"fmt"
	"io"
	"unsafe"

	"github.com/urfave/cli/v3"

	"github.com/samcharles93/gpucheck/internal/cuda/check"
	"github.com/samcharles93/gpucheck/internal/cuda/cudart"
	"github.com/samcharles93/gpucheck/internal/logger"
)

func probeCmd() *cli.Command {
	var (
		size  int64
		fatal bool
	)

	return &cli.Command{
		Name:  "probe",
		Usage: "Allocate and release device and pinned host memory",
		Flags: []cli.Flag{
			&cli.Int64Flag{
				Name:        "bytes",
				Usage:       "allocation size",
				Value:       1 << 20,
				Destination: &size,
			},
			&cli.BoolFlag{
				Name:        "fatal",
				Usage:       "exit the process on the first failed call",
				Destination: &fatal,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if !cudart.Available() {
				return fmt.Errorf("probe: %w (rebuild with -tags cuda)", cudart.ErrUnavailable)
			}
			log := logger.FromContext(ctx)
			chk := check.Default()
			if fatal {
				probeFatal(chk, size)
				log.Info("probe finished", "bytes", size)
				return nil
			}
			count, err := probe(chk, size)
			if err != nil {
				return err
			}
			log.Info("probe finished", "devices", count, "bytes", size)
			return writeProbe(cmd.Root().Writer, count, size)
		},
	}
}

// probe reports the first failed call as an error.
func probe(chk *check.Checker, size int64) (count int, err error) {
	if err := chk.Call("cudaGetDeviceCount", func() cudart.Status { return cudart.DeviceCount(&count) }); err != nil {
		return 0, err
	}

	var dev unsafe.Pointer
	if err := chk.Call("cudaMalloc", func() cudart.Status { return cudart.AllocDevice(&dev, size) }); err != nil {
		return count, err
	}
	defer func() {
		if ferr := chk.FreeDevice(&dev); ferr != nil && err == nil {
			err = ferr
		}
	}()

	var host unsafe.Pointer
	if err := chk.Call("cudaMallocHost", func() cudart.Status { return cudart.AllocHost(&host, size) }); err != nil {
		return count, err
	}
	releaseHost := func() (err error) {
		defer check.Recover(&err)
		chk.RaiseFreeHost(&host)
		return nil
	}
	if err := releaseHost(); err != nil {
		return count, err
	}
	return count, nil
}

// probeFatal performs the same calls but exits on the first failure.
func probeFatal(chk *check.Checker, size int64) {
	var count int
	chk.MustCall("cudaGetDeviceCount", func() cudart.Status { return cudart.DeviceCount(&count) })

	var dev, host unsafe.Pointer
	chk.MustCall("cudaMalloc", func() cudart.Status { return cudart.AllocDevice(&dev, size) })
	defer chk.MustFreeDevice(&dev)
	chk.MustCall("cudaMallocHost", func() cudart.Status { return cudart.AllocHost(&host, size) })
	chk.MustFreeHost(&host)
}

func writeProbe(w io.Writer, count int, size int64) error {
	_, err := fmt.Fprintf(w, "devices: %d\nallocated and released %d bytes of device and pinned host memory\n", count, size)
	return err
}
