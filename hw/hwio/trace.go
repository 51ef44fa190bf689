package hwio

import (
	"fmt"
	"io"

	"github.com/chaseadam/gateware/emu/log"
)

// Access is a single bus transaction seen by a Trace.
type Access struct {
	Write bool
	Addr  uint32
	Size  Size
	Value uint64
}

func (a Access) String() string {
	dir := "R"
	if a.Write {
		dir = "W"
	}
	return fmt.Sprintf("%s%-2d %08x %0*x", dir, a.Size, a.Addr, a.Size.Bytes()*2, a.Value)
}

// Trace sits between a bus master and a BankIO and records every
// transaction going through it. Peeks are forwarded but not recorded.
type Trace struct {
	Bus BankIO

	// Out, if set, receives one line per access.
	Out io.Writer

	// Keep retains accesses in memory, see Accesses.
	Keep bool

	reads, writes int
	accesses      []Access
}

func (t *Trace) record(a Access) {
	if a.Write {
		t.writes++
	} else {
		t.reads++
	}
	if t.Keep {
		t.accesses = append(t.accesses, a)
	}
	if t.Out != nil {
		fmt.Fprintln(t.Out, a)
	}
	log.ModHwIo.DebugZ("bus access").
		Bool("write", a.Write).
		Hex32("addr", a.Addr).
		Hex64("val", a.Value).
		End()
}

func (t *Trace) Read(addr uint32, size Size, peek bool) uint64 {
	val := t.Bus.Read(addr, size, peek)
	if !peek {
		t.record(Access{Addr: addr, Size: size, Value: val})
	}
	return val
}

func (t *Trace) Write(addr uint32, size Size, val uint64) {
	t.Bus.Write(addr, size, val)
	t.record(Access{Write: true, Addr: addr, Size: size, Value: val})
}

// Counts returns the number of reads and writes seen so far.
func (t *Trace) Counts() (reads, writes int) { return t.reads, t.writes }

// Accesses returns the recorded transactions, in issue order.
func (t *Trace) Accesses() []Access { return t.accesses }

// Reset forgets everything recorded so far.
func (t *Trace) Reset() {
	t.reads, t.writes = 0, 0
	t.accesses = nil
}
