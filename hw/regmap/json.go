package regmap

import (
	"fmt"

	"github.com/go-faster/jx"
)

func hex(v uint64) string { return fmt.Sprintf("0x%x", v) }

// Encode writes d as a JSON object. Addresses and values are hexadecimal
// strings.
func (d *Device) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("name")
	e.Str(d.Name)
	e.FieldStart("description")
	e.Str(d.Description)
	e.FieldStart("peripherals")
	e.ArrStart()
	for _, p := range d.Peripherals {
		p.encode(e)
	}
	e.ArrEnd()
	e.ObjEnd()
}

func (p *Peripheral) encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("name")
	e.Str(p.Name)
	e.FieldStart("base")
	e.Str(hex(uint64(p.BaseAddress)))
	e.FieldStart("registers")
	e.ArrStart()
	for _, r := range p.Registers {
		r.encode(e, p)
	}
	e.ArrEnd()
	e.ObjEnd()
}

func (r *Register) encode(e *jx.Encoder, p *Peripheral) {
	e.ObjStart()
	e.FieldStart("name")
	e.Str(r.Name)
	e.FieldStart("addr")
	e.Str(hex(uint64(r.Addr(p))))
	e.FieldStart("size")
	e.UInt(r.Size)
	e.FieldStart("access")
	e.Str(r.Access.String())
	e.FieldStart("reset")
	e.Str(hex(r.ResetValue))
	e.FieldStart("fields")
	e.ArrStart()
	for _, f := range r.Fields {
		e.ObjStart()
		e.FieldStart("name")
		e.Str(f.Name)
		e.FieldStart("offset")
		e.UInt(f.Offset)
		e.FieldStart("width")
		e.UInt(f.Width)
		e.FieldStart("access")
		e.Str(f.Access.String())
		if len(f.Enum) > 0 {
			e.FieldStart("enum")
			e.ObjStart()
			for _, ev := range f.Enum {
				e.FieldStart(ev.Name)
				e.UInt64(ev.Value)
			}
			e.ObjEnd()
		}
		e.ObjEnd()
	}
	e.ArrEnd()
	e.ObjEnd()
}
