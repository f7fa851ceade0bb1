package main

import (
	"errors"
	"fmt"
	"os"

	"dbforge/internal/cli"
	"dbforge/internal/crashlog"
)

func main() {
	rt, err := cli.DefaultRuntime()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	boundary := crashlog.NewBoundary(crashlog.FileSink{Path: rt.Config.CrashLogPath}, func(message string) {
		fmt.Fprintln(os.Stderr, "crash log unavailable:", message)
	})

	if err := run(rt, boundary); err != nil {
		if !errors.Is(err, cli.ErrReported) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

func run(rt *cli.Runtime, boundary *crashlog.Boundary) (err error) {
	defer func() {
		if r := recover(); r != nil {
			boundary.Report(r)
			err = fmt.Errorf("%w: internal error, see %s", cli.ErrReported, rt.Config.CrashLogPath)
			fmt.Fprintln(os.Stderr, "internal error, details appended to", rt.Config.CrashLogPath)
		}
	}()
	return cli.NewRootCmd(rt).Execute()
}
