// Package regmap holds the validated register map of a device: peripherals,
// their registers and the bit-fields of each register.
//
// A map is built once from a decoded description and is immutable
// afterwards.
package regmap

//go:generate go tool stringer -type=Access

// Access tells which directions of bus access a register or field supports.
type Access uint8

const (
	ReadWrite Access = iota
	ReadOnly
	WriteOnly
)

func (a Access) Readable() bool { return a != WriteOnly }
func (a Access) Writable() bool { return a != ReadOnly }

// ParseAccess decodes an SVD access keyword.
func ParseAccess(s string) (Access, bool) {
	switch s {
	case "read-write", "read-writeOnce":
		return ReadWrite, true
	case "read-only":
		return ReadOnly, true
	case "write-only", "writeOnce":
		return WriteOnly, true
	}
	return 0, false
}

// compatible reports whether a field of access f can live in a register of
// access reg.
func compatible(reg, f Access) bool {
	return reg == ReadWrite || reg == f
}

type Device struct {
	Name        string
	Description string
	Peripherals []*Peripheral
}

// Peripheral returns the peripheral named name, or nil.
func (d *Device) Peripheral(name string) *Peripheral {
	for _, p := range d.Peripherals {
		if p.Name == name {
			return p
		}
	}
	return nil
}

type Peripheral struct {
	Name        string
	Description string
	BaseAddress uint32
	Registers   []*Register
}

// Register returns the register named name, or nil.
func (p *Peripheral) Register(name string) *Register {
	for _, r := range p.Registers {
		if r.Name == name {
			return r
		}
	}
	return nil
}

type Register struct {
	Name        string
	Description string
	Offset      uint32 // relative to the peripheral base
	Size        uint   // in bits: 8, 16, 32 or 64
	Access      Access
	ResetValue  uint64
	Fields      []*Field
}

// Addr returns the absolute address of r within p.
func (r *Register) Addr(p *Peripheral) uint32 { return p.BaseAddress + r.Offset }

type Field struct {
	Name        string
	Description string
	Offset      uint
	Width       uint
	Access      Access
	Enum        []EnumValue
}

// Mask returns the bits covered by f within its register.
func (f *Field) Mask() uint64 {
	if f.Width >= 64 {
		return ^uint64(0)
	}
	return ((1 << f.Width) - 1) << f.Offset
}

type EnumValue struct {
	Name        string
	Description string
	Value       uint64
}
