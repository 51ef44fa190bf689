// Package progs holds the test programs the bench knows how to run.
package progs

import (
	"slices"

	"github.com/chaseadam/gateware/harness"
	"github.com/chaseadam/gateware/hw/pac"
)

var registry = map[string]harness.Program{
	"spi-basic":   SPIBasic,
	"spi-overrun": SPIOverrun,
	"testbench":   TestBench,
}

// Lookup returns the program registered under name.
func Lookup(name string) (harness.Program, bool) {
	prog, ok := registry[name]
	return prog, ok
}

// Names returns the names of all programs, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// TestBench shows the harness features: it stashes a memory word into the
// scratch buffer, reports four words and passes.
func TestBench(ctx *harness.Context) error {
	ctx.Scratch.Store(0, ctx.RAM.Load(4))

	for _, w := range []uint32{0x00C0FFEE, 0xADDCACA0, 0x55555555, 0xFEEDC0DE} {
		ctx.Report(w)
	}
	ctx.Pass()
	return nil
}

// exchange runs one SPI exchange and waits for it to complete.
func exchange(p *pac.Peripherals) error {
	if err := p.SPIMASTER.Control.Write(func(w *pac.SPIMASTER_CONTROL_W) { w.Go(true) }); err != nil {
		return err
	}
	for p.SPIMASTER.Status.Read().Tip() {
	}
	return p.SPIMASTER.Control.Write(func(w *pac.SPIMASTER_CONTROL_W) { w.Bits(0) })
}

func load(p *pac.Peripherals, mtx, stx uint32) error {
	if err := p.SPISLAVE.Tx.Write(func(w *pac.SPISLAVE_TX_W) { w.Tx(stx) }); err != nil {
		return err
	}
	return p.SPIMASTER.Tx.Write(func(w *pac.SPIMASTER_TX_W) { w.Tx(mtx) })
}

// SPIBasicPairs are the words exchanged by SPIBasic, master first.
var SPIBasicPairs = [][2]uint32{
	{0xF055, 0x0F0F},
	{0x90F1, 0x1234},
	{0xbabe, 0x89ab},
	{0x3c06, 0xcdef},
	{0x5a5a, 0xff00},
}

// SPIBenchBase is the first word sent by the SPIBasic write benchmark, the
// benchmark sends SPIBenchCount increasing words from it.
const (
	SPIBenchBase  = 0x4c00
	SPIBenchCount = 16
)

// SPIBasic exchanges SPIBasicPairs between the SPI master and slave. For
// each exchange it stores the word received by the master then the word
// received by the slave in RAM, starting at word 0. It then runs a write
// benchmark, storing what the slave receives from word 10 on, reports RAM
// word 8 and passes.
func SPIBasic(ctx *harness.Context) error {
	p := ctx.P
	if err := p.SPISLAVE.Control.Write(func(w *pac.SPISLAVE_CONTROL_W) { w.Intena(true) }); err != nil {
		return err
	}

	for i, pair := range SPIBasicPairs {
		if err := load(p, pair[0], pair[1]); err != nil {
			return err
		}
		if err := exchange(p); err != nil {
			return err
		}
		ctx.RAM.Store(2*i, p.SPIMASTER.Rx.Read().Bits())
		ctx.RAM.Store(2*i+1, p.SPISLAVE.Rx.Read().Bits())
	}

	next := 2 * len(SPIBasicPairs)
	for i := range uint32(SPIBenchCount) {
		if err := p.SPIMASTER.Tx.Write(func(w *pac.SPIMASTER_TX_W) { w.Bits(SPIBenchBase + i) }); err != nil {
			return err
		}
		if err := exchange(p); err != nil {
			return err
		}
		ctx.RAM.Store(next+int(i), p.SPISLAVE.Rx.Read().Bits())
	}

	ctx.Report(ctx.RAM.Load(8))
	ctx.Pass()
	return nil
}

// SPIOverrun leaves a word unread in the slave and checks the next
// exchange flags the overrun. It stores the slave status after each
// exchange in RAM words 0 and 1, the word finally read in word 2, and the
// status after reading it in word 3. It fails if the slave flags do not
// follow.
func SPIOverrun(ctx *harness.Context) error {
	p := ctx.P
	var status [2]pac.SPISLAVE_STATUS_R
	for i, pair := range SPIBasicPairs[:2] {
		if err := load(p, pair[0], pair[1]); err != nil {
			return err
		}
		if err := exchange(p); err != nil {
			return err
		}
		status[i] = p.SPISLAVE.Status.Read()
		ctx.RAM.Store(i, status[i].Bits())
	}
	rx := p.SPISLAVE.Rx.Read().Bits()
	ctx.RAM.Store(2, rx)
	after := p.SPISLAVE.Status.Read()
	ctx.RAM.Store(3, after.Bits())

	ok := status[0].Rxfull() && !status[0].Overrun() &&
		status[1].Rxfull() && status[1].Overrun() &&
		rx == SPIBasicPairs[1][0] &&
		!after.Rxfull() && !after.Overrun()
	if !ok {
		ctx.Fail()
		return nil
	}
	ctx.Pass()
	return nil
}
