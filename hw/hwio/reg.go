package hwio

import (
	"fmt"

	"github.com/chaseadam/gateware/emu/log"
)

type RWFlags uint8

const (
	ReadWriteFlag RWFlags = 0
	ReadOnlyFlag  RWFlags = (1 << iota)
	WriteOnlyFlag
)

// Reg32 is the device side of a 32-bit memory-mapped register.
//
// Bits set in RoMask are not affected by bus writes. Narrower accesses
// select the addressed bytes (little-endian) of the register.
type Reg32 struct {
	Name   string
	Value  uint32
	RoMask uint32

	Flags   RWFlags
	ReadCb  func(val uint32) uint32
	PeekCb  func(val uint32) uint32
	WriteCb func(old uint32, val uint32)
}

func (reg Reg32) String() string {
	s := fmt.Sprintf("%s{%08x", reg.Name, reg.Value)
	if reg.ReadCb != nil {
		s += ",r!"
	}
	if reg.PeekCb != nil {
		s += ",p!"
	}
	if reg.WriteCb != nil {
		s += ",w!"
	}
	return s + "}"
}

func (reg *Reg32) write(val uint32) {
	old := reg.Value
	reg.Value = (reg.Value & reg.RoMask) | (val &^ reg.RoMask)
	if reg.WriteCb != nil {
		reg.WriteCb(old, reg.Value)
	}
}

func (reg *Reg32) Write(addr uint32, size Size, val uint64) {
	if reg.Flags&ReadOnlyFlag != 0 {
		log.ModHwIo.ErrorZ("invalid write to readonly reg").
			String("name", reg.Name).
			Hex32("addr", addr).
			End()
		return
	}
	shift := (addr & 3) * 8
	mask := uint32(size.Mask() << shift)
	reg.write((reg.Value &^ mask) | (uint32(val<<shift) & mask))
}

func (reg *Reg32) Read(addr uint32, size Size, peek bool) uint64 {
	val := reg.Value
	switch {
	case peek:
		if reg.PeekCb != nil {
			val = reg.PeekCb(val)
		}
	case reg.Flags&WriteOnlyFlag != 0:
		log.ModHwIo.ErrorZ("invalid read from writeonly reg").
			String("name", reg.Name).
			Hex32("addr", addr).
			End()
		return 0
	case reg.ReadCb != nil:
		val = reg.ReadCb(val)
	}
	shift := (addr & 3) * 8
	return uint64(val>>shift) & size.Mask()
}
