// Package emu runs test programs on simulated SoCs, enforces their watchdog
// and observes their outcome.
package emu

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/chaseadam/gateware/emu/log"
	"github.com/chaseadam/gateware/harness"
	"github.com/chaseadam/gateware/harness/progs"
	"github.com/chaseadam/gateware/hw"
	"github.com/chaseadam/gateware/hw/hwio"
)

// haltGrace is how long a halted program has to reach its next bus access.
const haltGrace = time.Second

// ErrUnknownProgram is returned by RunAll for names with no program.
var ErrUnknownProgram = errors.New("unknown program")

// Run runs prog on a fresh SoC and observes the final state once the
// program is over. A program running past the watchdog, or still running
// when ctx is done, is halted.
//
// A program that does not reach the bus within a short grace period after
// being halted cannot be observed safely: the verdict then only says it
// timed out.
func Run(ctx context.Context, name string, prog harness.Program, cfg Config) Verdict {
	v := Verdict{Name: name}
	if err := cfg.Check(); err != nil {
		v.Err = err
		return v
	}

	soc := hw.NewSoC(cfg.SoC)
	bus, err := soc.Claim()
	if err != nil {
		v.Err = err
		return v
	}
	if cfg.TraceOut != nil {
		bus = &hwio.Trace{Bus: bus, Out: cfg.TraceOut}
	}

	log.ModSim.DebugZ("run").String("prog", name).Duration("watchdog", cfg.Harness.Watchdog.D()).End()
	start := time.Now()

	done := make(chan harness.Result, 1)
	go func() { done <- harness.Run(bus, prog) }()

	watchdog := time.NewTimer(cfg.Harness.Watchdog.D())
	defer watchdog.Stop()

	var res harness.Result
	select {
	case res = <-done:
	case <-watchdog.C:
		v.TimedOut = true
	case <-ctx.Done():
		v.Err = ctx.Err()
	}

	if v.TimedOut || v.Err != nil {
		soc.Halt()
		select {
		case res = <-done:
		case <-time.After(haltGrace):
			log.ModSim.ErrorZ("program did not stop").String("prog", name).End()
			v.TimedOut = true
			return v
		}
	}

	v.State = res.State
	if res.Err != nil && !errors.Is(res.Err, hwio.ErrHalted) {
		v.Err = res.Err
	}
	v.Elapsed = time.Since(start)

	st := harness.Observe(soc.Bus)
	v.Passed = st.Passed()
	v.Failed = st.Failure
	v.Reports = soc.Status.Reports()
	v.Scratch = soc.Words(harness.ScratchBase, harness.ScratchWords)
	v.Memory = soc.Words(harness.RAMBase, min(cfg.Harness.DumpWords, harness.RAMWords))

	log.ModSim.DebugZ("observed").
		String("prog", name).
		Words("reports", v.Reports).
		Words("scratch", v.Scratch).
		End()
	log.ModSim.InfoZ("run over").
		String("prog", name).
		Bool("passed", v.Passed).
		Bool("timeout", v.TimedOut).
		Stringer("state", v.State).
		Duration("elapsed", v.Elapsed).
		End()
	return v
}

// RunAll runs the named programs concurrently, each on its own SoC, and
// checks their verdicts against exp. Verdicts are returned in the order of
// names. Nothing is run if a name is unknown.
func RunAll(ctx context.Context, names []string, cfg Config, exp Expectations) ([]Verdict, error) {
	if err := cfg.Check(); err != nil {
		return nil, err
	}

	todo := make([]harness.Program, len(names))
	for i, name := range names {
		prog, ok := progs.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownProgram, name)
		}
		todo[i] = prog
	}

	verdicts := make([]Verdict, len(names))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Harness.Jobs)
	for i, name := range names {
		g.Go(func() error {
			v := Run(ctx, name, todo[i], cfg)
			if e, ok := exp[name]; ok {
				v.Mismatches = e.Check(v)
			}
			verdicts[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return verdicts, nil
}
