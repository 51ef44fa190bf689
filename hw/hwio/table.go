package hwio

import (
	"errors"
	"fmt"
	"sort"

	"github.com/chaseadam/gateware/emu/log"
)

var ErrOverlappingRange = errors.New("overlapping range")

type mapping struct {
	begin, end uint32 // inclusive
	origin     uint32 // address at which the component was mapped
	io         BankIO
}

// Table is an address decoder. It forwards each access to the component
// mapped at that address, giving it the address relative to where it was
// mapped.
type Table struct {
	Name string

	// Unmapped, if set, receives accesses to addresses nothing is mapped at.
	Unmapped BankIO

	maps []mapping // sorted by begin, non-overlapping
}

func NewTable(name string) *Table {
	t := new(Table)
	t.Name = name
	t.Reset()
	return t
}

func (t *Table) Reset() {
	t.maps = nil
}

// Map maps io over [addr, addr+size).
func (t *Table) Map(addr, size uint32, io BankIO) error {
	if size == 0 {
		return fmt.Errorf("map %s at %08x: empty range", t.Name, addr)
	}
	end := addr + size - 1
	if end < addr {
		return fmt.Errorf("map %s at %08x: range wraps around", t.Name, addr)
	}

	i := sort.Search(len(t.maps), func(i int) bool { return t.maps[i].end >= addr })
	if i < len(t.maps) && t.maps[i].begin <= end {
		return fmt.Errorf("map %s [%08x-%08x]: %w with [%08x-%08x]",
			t.Name, addr, end, ErrOverlappingRange, t.maps[i].begin, t.maps[i].end)
	}

	t.maps = append(t.maps, mapping{})
	copy(t.maps[i+1:], t.maps[i:])
	t.maps[i] = mapping{begin: addr, end: end, origin: addr, io: io}
	return nil
}

func (t *Table) mustMap(addr, size uint32, io BankIO) {
	if err := t.Map(addr, size, io); err != nil {
		panic(err)
	}
}

// Map a register bank (that is, a structure containing mulitple Reg32, Mem
// or Device fields). For this function to work, registers must have a struct
// tag "hwio", containing the following fields:
//
//	offset=0x12     Byte-offset within the register bank at which this
//	                register is mapped. There is no default value: if this
//	                option is missing, the register is assumed not to be
//	                part of the bank, and is ignored by this call.
//
//	bank=NN         Ordinal bank number (if not specified, default to zero).
//	                This option allows for a structure to expose multiple
//	                banks, as regs can be grouped by bank by specified the
//	                bank number.
func (t *Table) MapBank(addr uint32, bank any, bankNum int) {
	regs, err := bankGetRegs(bank, bankNum)
	if err != nil {
		panic(err)
	}

	for _, reg := range regs {
		switch r := reg.regPtr.(type) {
		case *Mem:
			t.MapMem(addr+reg.offset, r)
		case *Reg32:
			t.MapReg32(addr+reg.offset, r)
		case *Device:
			t.MapDevice(addr+reg.offset, r)
		default:
			panic(fmt.Errorf("invalid reg type: %T", r))
		}
	}
}

func (t *Table) UnmapBank(addr uint32, bank any, bankNum int) {
	regs, err := bankGetRegs(bank, bankNum)
	if err != nil {
		panic(err)
	}

	for _, reg := range regs {
		switch r := reg.regPtr.(type) {
		case *Mem:
			t.Unmap(addr+reg.offset, addr+reg.offset+uint32(r.VSize)-1)
		case *Reg32:
			t.Unmap(addr+reg.offset, addr+reg.offset+3)
		case *Device:
			t.Unmap(addr+reg.offset, addr+reg.offset+uint32(r.Size)-1)
		default:
			panic(fmt.Errorf("invalid reg type: %T", r))
		}
	}
}

func (t *Table) MapReg32(addr uint32, io *Reg32) {
	t.mustMap(addr, 4, io)
}

func (t *Table) MapDevice(addr uint32, io *Device) {
	t.mustMap(addr, uint32(io.Size), io)
}

func (t *Table) MapMem(addr uint32, mem *Mem) {
	log.ModHwIo.DebugZ("mapping mem").
		Hex32("addr", addr).
		Hex32("size", uint32(mem.VSize)).
		String("area", mem.Name).
		String("bus", t.Name).
		End()

	if len(mem.Data) == 0 {
		panic(fmt.Errorf("memory %q has no backing buffer", mem.Name))
	}
	t.mustMap(addr, uint32(mem.VSize), mem)
}

// Unmap removes whatever is mapped within [begin, end]. Mappings partially
// covered are trimmed, what remains keeps its original addressing.
func (t *Table) Unmap(begin, end uint32) {
	var maps []mapping
	for _, m := range t.maps {
		if m.end < begin || m.begin > end {
			maps = append(maps, m)
			continue
		}
		if m.begin < begin {
			lo := m
			lo.end = begin - 1
			maps = append(maps, lo)
		}
		if m.end > end {
			hi := m
			hi.begin = end + 1
			maps = append(maps, hi)
		}
	}
	t.maps = maps
}

func (t *Table) search(addr uint32) (mapping, bool) {
	i := sort.Search(len(t.maps), func(i int) bool { return t.maps[i].end >= addr })
	if i < len(t.maps) && t.maps[i].begin <= addr {
		return t.maps[i], true
	}
	return mapping{}, false
}

// Read searches in the table for the component mapped at the given address
// and forwards the read to it.
func (t *Table) Read(addr uint32, size Size, peek bool) uint64 {
	m, ok := t.search(addr)
	if !ok {
		if !peek {
			log.ModHwIo.DebugZ("unmapped read").
				String("name", t.Name).
				Hex32("addr", addr).
				Stringer("size", size).
				End()
		}
		if t.Unmapped != nil {
			return t.Unmapped.Read(addr, size, peek)
		}
		return 0
	}
	return m.io.Read(addr-m.origin, size, peek)
}

// Peek is a convenience function.
func (t *Table) Peek(addr uint32, size Size) uint64 {
	return t.Read(addr, size, true)
}

func (t *Table) Write(addr uint32, size Size, val uint64) {
	m, ok := t.search(addr)
	if !ok {
		log.ModHwIo.DebugZ("unmapped write").
			String("name", t.Name).
			Hex32("addr", addr).
			Stringer("size", size).
			Hex64("val", val).
			End()
		if t.Unmapped != nil {
			t.Unmapped.Write(addr, size, val)
		}
		return
	}
	m.io.Write(addr-m.origin, size, val)
}
