package hwio

import "github.com/chaseadam/gateware/emu/log"

// Device is a BankIO implementation that allows manual management of an entire
// range of addresses.
type Device struct {
	Name  string // name of the area (for debugging)
	Size  int    // size of the area, in bytes
	Flags RWFlags

	ReadCb  func(addr uint32, size Size) uint64
	PeekCb  func(addr uint32, size Size) uint64
	WriteCb func(addr uint32, size Size, val uint64)
}

func (d *Device) Read(addr uint32, size Size, peek bool) uint64 {
	if peek {
		if d.PeekCb != nil {
			return d.PeekCb(addr, size)
		}
		return 0
	}
	switch {
	case d.Flags&WriteOnlyFlag != 0:
		log.ModHwIo.ErrorZ("invalid read from writeonly device").
			String("name", d.Name).
			Hex32("addr", addr).
			End()
		fallthrough
	case d.ReadCb == nil:
		return 0
	}
	return d.ReadCb(addr, size)
}

func (d *Device) Write(addr uint32, size Size, val uint64) {
	switch {
	case d.Flags&ReadOnlyFlag != 0:
		log.ModHwIo.ErrorZ("invalid write to readonly device").
			String("name", d.Name).
			Hex32("addr", addr).
			End()
		fallthrough
	case d.WriteCb == nil:
		return
	}
	d.WriteCb(addr, size, val)
}
