package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/afero"

	"github.com/chaseadam/gateware/emu"
	"github.com/chaseadam/gateware/harness/progs"
)

// runMain runs the programs and returns the process exit code: 0 if every
// verdict is ok, 1 otherwise.
func runMain(args Run) int {
	cfg := loadConfig(args.Config)
	if args.Jobs > 0 {
		cfg.Harness.Jobs = args.Jobs
	}
	if args.Trace != nil {
		defer args.Trace.Close()
		cfg.TraceOut = args.Trace
		// Interleaved traces are unreadable.
		cfg.Harness.Jobs = 1
	}

	names := args.Programs
	switch {
	case args.All && len(names) > 0:
		fatalf("--all and program names are mutually exclusive")
	case args.All:
		names = progs.Names()
	case len(names) == 0:
		fatalf("no program to run, see 'simbench list'")
	}

	var exp emu.Expectations
	if args.Expect != "" {
		var err error
		exp, err = emu.LoadExpectations(afero.NewOsFs(), args.Expect)
		checkf(err, "failed to load expectations")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	verdicts, err := emu.RunAll(ctx, names, cfg, exp)
	checkf(err, "failed to run programs")

	if args.JSON {
		checkf(emu.WriteJSON(os.Stdout, verdicts), "failed to write verdicts")
	} else {
		for _, v := range verdicts {
			fmt.Println(v)
		}
	}

	for _, v := range verdicts {
		if !v.OK() {
			return 1
		}
	}
	return 0
}
