// Package hwio provides the register-level plumbing shared by generated
// peripheral accessors and by the simulated SoC: a sized bus interface, the
// volatile Cell used by programs, and device-side register and memory models
// that can be mapped into an address decoding Table.
package hwio

import (
	"errors"
	"fmt"
)

// Size is the width, in bits, of a single bus access.
type Size uint8

const (
	Size8  Size = 8
	Size16 Size = 16
	Size32 Size = 32
	Size64 Size = 64
)

// Bytes returns the number of bytes covered by an access of size s.
func (s Size) Bytes() int { return int(s) / 8 }

// Mask returns a mask covering the low s bits.
func (s Size) Mask() uint64 {
	if s >= Size64 {
		return ^uint64(0)
	}
	return (1 << s) - 1
}

func (s Size) String() string {
	return fmt.Sprintf("%d-bit", uint8(s))
}

// ErrHalted is the panic value raised by a halted bus when its master keeps
// accessing it.
var ErrHalted = errors.New("bus halted")

// BankIO is implemented by anything that can be accessed on the bus.
//
// Each call is exactly one bus transaction of the given size. Read with peek
// set must not have side effects: it is used by observers and tracers that
// inspect the hardware state without disturbing it.
//
// Addresses given to mapped components are relative to the start of their
// mapping in a Table.
type BankIO interface {
	Read(addr uint32, size Size, peek bool) uint64
	Write(addr uint32, size Size, val uint64)
}

// Peek is a convenience for an observer-side read without side effects.
func Peek(b BankIO, addr uint32, size Size) uint64 {
	return b.Read(addr, size, true)
}
