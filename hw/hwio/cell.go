package hwio

import "math/bits"

// Word is the set of register word types.
type Word interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Cell is a volatile view of a single hardware word at a fixed address. It
// owns no data, the hardware does.
//
// Every Read is exactly one load and every Write exactly one store of the
// word size, issued in program order: both go through the BankIO interface,
// a dynamic call the compiler can neither elide nor reorder, even when the
// result of a Read is discarded.
type Cell[T Word] struct {
	bus  BankIO
	addr uint32
}

// NewCell binds a cell to addr on bus.
func NewCell[T Word](bus BankIO, addr uint32) Cell[T] {
	return Cell[T]{bus: bus, addr: addr}
}

func sizeOf[T Word]() Size {
	return Size(bits.Len64(uint64(^T(0))))
}

// Addr returns the absolute address of the cell.
func (c Cell[T]) Addr() uint32 { return c.addr }

// Read performs one load.
func (c Cell[T]) Read() T {
	return T(c.bus.Read(c.addr, sizeOf[T](), false))
}

// Write performs one store.
func (c Cell[T]) Write(val T) {
	c.bus.Write(c.addr, sizeOf[T](), uint64(val))
}

// Modify stores f applied to the value just loaded. This is two bus
// accesses, one read then one write, and it is not atomic with respect to
// another bus master modifying the same word in between.
func (c Cell[T]) Modify(f func(T) T) {
	c.Write(f(c.Read()))
}
