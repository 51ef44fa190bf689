package hwio

import "github.com/chaseadam/gateware/emu/log"

type MemFlags int

const (
	MemFlagReadWrite MemFlags = 0
	MemFlagReadOnly  MemFlags = (1 << iota) // read-only accesses
	MemFlagNoROLog                          // skip logging attempts to write when configured to readonly
)

// Mem is a linear, little-endian memory area that can be mapped into a
// Table. When mapped over a range larger than Data (VSize), the content is
// mirrored.
type Mem struct {
	Name    string                                   // name of the memory area (for debugging)
	Data    []byte                                   // actual memory buffer
	VSize   int                                      // virtual size of the memory (can be bigger than physical size)
	Flags   MemFlags                                 // flags determining how the memory can be accessed
	WriteCb func(addr uint32, size Size, val uint64) // optional write callback (if set, the callback is called instead of writing)
}

func (m *Mem) Read(addr uint32, size Size, _ bool) uint64 {
	n := len(m.Data)
	off := int(addr) % n
	var v uint64
	for i := range size.Bytes() {
		v |= uint64(m.Data[(off+i)%n]) << (8 * i)
	}
	return v
}

func (m *Mem) Write(addr uint32, size Size, val uint64) {
	if m.WriteCb != nil {
		m.WriteCb(addr, size, val)
		return
	}

	switch {
	case m.Flags&MemFlagNoROLog != 0:
		return
	case m.Flags&MemFlagReadOnly != 0:
		log.ModHwIo.ErrorZ("write to readonly memory").
			String("name", m.Name).
			Hex32("addr", addr).
			Hex64("val", val).
			End()
		return
	}

	n := len(m.Data)
	off := int(addr) % n
	for i := range size.Bytes() {
		m.Data[(off+i)%n] = byte(val >> (8 * i))
	}
}

// Words returns count consecutive 32-bit words starting at byte offset off,
// without going through the bus.
func (m *Mem) Words(off uint32, count int) []uint32 {
	words := make([]uint32, count)
	for i := range words {
		words[i] = uint32(m.Read(off+uint32(4*i), Size32, true))
	}
	return words
}
