package harness

import (
	"fmt"

	"github.com/chaseadam/gateware/hw/hwio"
)

// Region is a bounded window of 32-bit words in memory. Every access is one
// volatile bus access. Indexing outside the window panics.
type Region struct {
	name  string
	bus   hwio.BankIO
	base  uint32
	words int
}

func NewRegion(name string, bus hwio.BankIO, base uint32, words int) Region {
	return Region{name: name, bus: bus, base: base, words: words}
}

func (r Region) Base() uint32 { return r.base }
func (r Region) Len() int     { return r.words }

// Cell returns the word at index i.
func (r Region) Cell(i int) hwio.Cell[uint32] {
	if i < 0 || i >= r.words {
		panic(fmt.Sprintf("harness: %s index %d out of range [0:%d]", r.name, i, r.words))
	}
	return hwio.NewCell[uint32](r.bus, r.base+uint32(4*i))
}

func (r Region) Load(i int) uint32     { return r.Cell(i).Read() }
func (r Region) Store(i int, v uint32) { r.Cell(i).Write(v) }
