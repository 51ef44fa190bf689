// Package harness runs a test program against the peripherals of the
// simulation SoC and reports its outcome through the SIMSTATUS peripheral.
//
// A program receives a Context holding the peripheral handles and two
// exclusively owned memory regions. It reports diagnostic words with Report
// and its verdict with Pass or Fail. After the program returns, Run reads
// the success bit back, which is the criterion the external observer uses
// too.
package harness

import (
	"errors"
	"fmt"

	"github.com/chaseadam/gateware/emu/log"
	"github.com/chaseadam/gateware/hw/hwio"
	"github.com/chaseadam/gateware/hw/pac"
)

// Documented addresses and bits. These are the observer contract and must
// not change.
const (
	SimStatusAddr = pac.SIMSTATUS_Base + 0x0
	ReportAddr    = pac.SIMSTATUS_Base + 0x4
	SuccessBit    = 0
	FailureBit    = 1

	SRAMBase = 0x0100_0000
	SRAMSize = 0x2_0000

	// RAM is the generic memory region handed to programs.
	RAMBase  = 0x0101_0000
	RAMWords = 0x2000

	// Scratch holds words a program wants the observer to inspect after
	// termination.
	ScratchBase  = 0x0101_8000
	ScratchWords = 8
)

// A Program is a test body. A returned error is reported in the Result, it
// does not set the failure bit.
type Program func(*Context) error

// Context is what a program gets to work with during a run.
type Context struct {
	P       *pac.Peripherals
	RAM     Region
	Scratch Region

	state State
}

func (c *Context) enter(s State) {
	c.state = s
	log.ModHarness.DebugZ("state").Stringer("state", s).End()
}

// Report sends a diagnostic word to the observer. Every word is recorded,
// in order.
func (c *Context) Report(word uint32) {
	// Bits never rejects a value.
	_ = c.P.SIMSTATUS.Report.Write(func(w *pac.SIMSTATUS_REPORT_W) { w.Bits(word) })
}

// Pass sets the success bit.
func (c *Context) Pass() {
	_ = c.P.SIMSTATUS.Simstatus.Modify(func(_ pac.SIMSTATUS_SIMSTATUS_R, w *pac.SIMSTATUS_SIMSTATUS_W) {
		w.Success(true)
	})
	c.enter(Reported)
}

// Fail sets the failure bit.
func (c *Context) Fail() {
	_ = c.P.SIMSTATUS.Simstatus.Modify(func(_ pac.SIMSTATUS_SIMSTATUS_R, w *pac.SIMSTATUS_SIMSTATUS_W) {
		w.Failure(true)
	})
	c.enter(Reported)
}

// Result is the outcome of a run, as seen from the program side.
type Result struct {
	State  State
	Passed bool  // success bit read back after the program returned
	Err    error // returned by the program, or recovered from a panic
}

// Run runs prog on bus. It is the only entry point of a test: it builds the
// peripheral handles and regions, runs the program, then reads the success
// bit back. A program that never wrote its verdict goes from Running to
// Terminal directly. A panicking program is reported as an error. If the bus
// gets halted under the program, or before the success bit is read back, Run
// returns hwio.ErrHalted without touching the bus again and State tells how far
// the program went.
func Run(bus hwio.BankIO, prog Program) Result {
	ctx := &Context{
		P:       pac.New(bus),
		RAM:     NewRegion("ram", bus, RAMBase, RAMWords),
		Scratch: NewRegion("scratch", bus, ScratchBase, ScratchWords),
	}
	ctx.enter(Invoked)

	err := ctx.run(prog)
	if errors.Is(err, hwio.ErrHalted) {
		log.ModHarness.WarnZ("halted").Stringer("state", ctx.state).End()
		return Result{State: ctx.state, Err: err}
	}
	if err != nil {
		log.ModHarness.WarnZ("program error").Error("err", err).End()
	}

	passed, herr := ctx.passed()
	if herr != nil {
		log.ModHarness.WarnZ("halted before verdict").Stringer("state", ctx.state).End()
		return Result{State: ctx.state, Err: herr}
	}
	ctx.enter(Terminal)
	return Result{State: Terminal, Passed: passed, Err: err}
}

// passed reads the success bit back. The bus may have been halted since
// the program returned, that is the only panic turned into an error here.
func (c *Context) passed() (ok bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			rerr, isErr := r.(error)
			if !isErr || !errors.Is(rerr, hwio.ErrHalted) {
				panic(r)
			}
			err = rerr
		}
	}()
	return c.P.SIMSTATUS.Simstatus.Read().Success(), nil
}

func (c *Context) run(prog Program) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if rerr, ok := r.(error); ok {
				err = fmt.Errorf("program panicked: %w", rerr)
			} else {
				err = fmt.Errorf("program panicked: %v", r)
			}
		}
	}()

	c.enter(Running)
	return prog(c)
}

// Status is the final state of the SIMSTATUS peripheral, as seen by the
// observer.
type Status struct {
	Raw     uint32
	Success bool
	Failure bool
}

// Passed reports whether the success bit is set and the failure bit is not.
// A test that never wrote the status register did not pass.
func (s Status) Passed() bool { return s.Success && !s.Failure }

// Observe reads the status register without side effects.
func Observe(bus hwio.BankIO) Status {
	raw := uint32(hwio.Peek(bus, SimStatusAddr, hwio.Size32))
	return Status{
		Raw:     raw,
		Success: hwio.GetBit64(uint64(raw), SuccessBit),
		Failure: hwio.GetBit64(uint64(raw), FailureBit),
	}
}
