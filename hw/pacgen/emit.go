package pacgen

import (
	"fmt"
	"io"
	"strings"

	"github.com/chaseadam/gateware/hw/regmap"
)

// Generator writes Go source for a register map. Output is not formatted,
// Generate runs it through go/format.
type Generator struct {
	io.Writer
	opts Options
}

func (g *Generator) printf(format string, args ...any) {
	fmt.Fprintf(g, "%s\n", fmt.Sprintf(format, args...))
}

type periphPlan struct {
	p    *regmap.Peripheral
	id   string // SPIMASTER
	regs []*regPlan
}

type regPlan struct {
	r      *regmap.Register
	path   string // SPIMASTER.control, used in field errors
	typ    string // SPIMASTER_CONTROL
	member string // Control
	word   string // uint32
	fields []*fieldPlan
}

type fieldPlan struct {
	f      *regmap.Field
	method string
	enum   string   // enum type, empty if the field has no enumerated values
	values []string // constants, parallel to f.Enum
}

func (fp *fieldPlan) isBool() bool { return fp.f.Width == 1 && fp.enum == "" }

// plan computes every Go identifier before anything is written, so that
// collisions are reported whatever the emission order.
func plan(dev *regmap.Device) ([]*periphPlan, error) {
	global := newNamespace(dev.Name, "Peripherals", "New")

	var plans []*periphPlan
	for _, p := range dev.Peripherals {
		pp := &periphPlan{p: p, id: upper(p.Name)}
		for _, id := range []string{pp.id + "_Base", pp.id + "_Type"} {
			if _, err := global.add(p.Name, id, ""); err != nil {
				return nil, err
			}
		}

		members := newNamespace(p.Name)
		for _, r := range p.Registers {
			rp := &regPlan{
				r:    r,
				path: p.Name + "." + r.Name,
				typ:  pp.id + "_" + upper(r.Name),
				word: fmt.Sprintf("uint%d", r.Size),
			}
			var err error
			if rp.member, err = members.add(r.Name, camel(r.Name), ""); err != nil {
				return nil, err
			}
			for _, id := range []string{rp.typ, rp.typ + "_R", rp.typ + "_W", rp.typ + "_Reset"} {
				if _, err := global.add(rp.path, id, ""); err != nil {
					return nil, err
				}
			}

			methods := newNamespace(rp.path, "Bits")
			for _, f := range r.Fields {
				fp := &fieldPlan{f: f}
				if fp.method, err = methods.add(f.Name, camel(f.Name), "Field"); err != nil {
					return nil, err
				}
				if len(f.Enum) > 0 {
					fp.enum = rp.typ + "_" + upper(f.Name)
					if _, err := global.add(rp.path+"."+f.Name, fp.enum, ""); err != nil {
						return nil, err
					}
					for _, ev := range f.Enum {
						id, err := global.add(rp.path+"."+f.Name+"."+ev.Name, fp.enum+"_"+upper(ev.Name), "")
						if err != nil {
							return nil, err
						}
						fp.values = append(fp.values, id)
					}
				}
				rp.fields = append(rp.fields, fp)
			}
			pp.regs = append(pp.regs, rp)
		}
		plans = append(plans, pp)
	}
	return plans, nil
}

func (g *Generator) device(dev *regmap.Device) error {
	plans, err := plan(dev)
	if err != nil {
		return err
	}

	g.printf("%s", expandPreamble(g.opts, dev))
	g.peripherals(dev, plans)
	for _, pp := range plans {
		g.peripheral(pp)
	}
	return nil
}

func (g *Generator) peripherals(dev *regmap.Device, plans []*periphPlan) {
	g.printf("// Peripherals holds the handles of every peripheral of the %s device.", dev.Name)
	g.printf("type Peripherals struct {")
	for _, pp := range plans {
		g.printf("\t%s %s_Type", pp.id, pp.id)
	}
	g.printf("}")
	g.printf("")
	g.printf("// New returns the peripheral handles of a %s device reached through bus.", dev.Name)
	g.printf("func New(bus hwio.BankIO) *Peripherals {")
	g.printf("\treturn &Peripherals{")
	for _, pp := range plans {
		g.printf("\t\t%s: %s_Type{", pp.id, pp.id)
		for _, rp := range pp.regs {
			g.printf("\t\t\t%s: %s{cell: hwio.NewCell[%s](bus, %s_Base+%#x)},", rp.member, rp.typ, rp.word, pp.id, rp.r.Offset)
		}
		g.printf("\t\t},")
	}
	g.printf("\t}")
	g.printf("}")
	g.printf("")
}

// comment continues a doc comment with a description paragraph.
func (g *Generator) comment(desc string) {
	if desc != "" {
		g.printf("//")
		g.printf("// %s", desc)
	}
}

func (g *Generator) peripheral(pp *periphPlan) {
	g.printf("// %s_Base is the base address of %s.", pp.id, pp.p.Name)
	g.printf("const %s_Base = %#x", pp.id, pp.p.BaseAddress)
	g.printf("")
	g.printf("// %s_Type holds the registers of %s.", pp.id, pp.p.Name)
	g.comment(pp.p.Description)
	g.printf("type %s_Type struct {", pp.id)
	for _, rp := range pp.regs {
		g.printf("\t%s %s", rp.member, rp.typ)
	}
	g.printf("}")
	g.printf("")

	for _, rp := range pp.regs {
		g.register(pp, rp)
	}
}

func accessDoc(a regmap.Access) string {
	switch a {
	case regmap.ReadOnly:
		return "read-only"
	case regmap.WriteOnly:
		return "write-only"
	}
	return "read-write"
}

func bitsDoc(f *regmap.Field) string {
	if f.Width == 1 {
		return fmt.Sprintf("bit %d", f.Offset)
	}
	return fmt.Sprintf("bits [%d:%d]", f.Offset+f.Width-1, f.Offset)
}

func (g *Generator) register(pp *periphPlan, rp *regPlan) {
	r := rp.r
	typ := rp.typ

	g.printf("// %s is the %s register of %s (offset %#x, %s).", typ, r.Name, pp.p.Name, r.Offset, accessDoc(r.Access))
	g.comment(r.Description)
	g.printf("type %s struct {", typ)
	g.printf("\tcell hwio.Cell[%s]", rp.word)
	g.printf("}")
	g.printf("")
	g.printf("// %s_Reset is the reset value of %s.", typ, typ)
	g.printf("const %s_Reset = %#x", typ, r.ResetValue)
	g.printf("")
	g.printf("// Addr returns the address of the register.")
	g.printf("func (reg %s) Addr() uint32 {", typ)
	g.printf("\treturn reg.cell.Addr()")
	g.printf("}")
	g.printf("")

	if r.Access.Readable() {
		g.printf("// Read loads the register.")
		g.printf("func (reg %s) Read() %s_R {", typ, typ)
		g.printf("\treturn %s_R{bits: reg.cell.Read()}", typ)
		g.printf("}")
		g.printf("")
	}

	if r.Access.Writable() {
		g.printf("// Write stores the value built by f, starting from the reset value.")
		g.printf("// Nothing is stored if f sets a field to a value it cannot hold.")
		g.printf("func (reg %s) Write(f func(w *%s_W)) error {", typ, typ)
		g.printf("\tw := %s_W{fw: hwio.NewFieldWriter(%q, %s_Reset)}", typ, rp.path, typ)
		g.printf("\tf(&w)")
		g.printf("\treturn reg.store(&w)")
		g.printf("}")
		g.printf("")
	}

	if r.Access == regmap.ReadWrite {
		g.printf("// Modify loads the register and stores the value built by f from it.")
		g.printf("// Nothing is stored if f sets a field to a value it cannot hold.")
		g.printf("func (reg %s) Modify(f func(r %s_R, w *%s_W)) error {", typ, typ, typ)
		g.printf("\tbits := reg.cell.Read()")
		g.printf("\tw := %s_W{fw: hwio.NewFieldWriter(%q, uint64(bits))}", typ, rp.path)
		g.printf("\tf(%s_R{bits: bits}, &w)", typ)
		g.printf("\treturn reg.store(&w)")
		g.printf("}")
		g.printf("")
	}

	if r.Access.Writable() {
		g.printf("// Reset stores the reset value.")
		g.printf("func (reg %s) Reset() {", typ)
		g.printf("\treg.cell.Write(%s_Reset)", typ)
		g.printf("}")
		g.printf("")
		g.printf("func (reg %s) store(w *%s_W) error {", typ, typ)
		g.printf("\tif err := w.fw.Err(); err != nil {")
		g.printf("\t\treturn err")
		g.printf("\t}")
		g.printf("\treg.cell.Write(%s(w.fw.Value()))", rp.word)
		g.printf("\treturn nil")
		g.printf("}")
		g.printf("")
	}

	if r.Access.Readable() {
		g.reader(rp)
	}
	if r.Access.Writable() {
		g.writer(rp)
	}
	for _, fp := range rp.fields {
		if fp.enum != "" {
			g.enum(rp, fp)
		}
	}
}

func (g *Generator) reader(rp *regPlan) {
	typ := rp.typ + "_R"

	g.printf("// %s is a value loaded from %s.", typ, rp.typ)
	g.printf("type %s struct {", typ)
	g.printf("\tbits %s", rp.word)
	g.printf("}")
	g.printf("")
	g.printf("// Bits returns the raw register value.")
	g.printf("func (r %s) Bits() %s {", typ, rp.word)
	g.printf("\treturn r.bits")
	g.printf("}")
	g.printf("")

	for _, fp := range rp.fields {
		f := fp.f
		if !f.Access.Readable() {
			continue
		}
		g.printf("// %s returns the %s field, %s.", fp.method, f.Name, bitsDoc(f))
		g.comment(f.Description)
		switch {
		case fp.enum != "":
			g.printf("func (r %s) %s() %s {", typ, fp.method, fp.enum)
			g.printf("\treturn %s(hwio.GetField64(uint64(r.bits), %d, %d))", fp.enum, f.Offset, f.Width)
		case fp.isBool():
			g.printf("func (r %s) %s() bool {", typ, fp.method)
			g.printf("\treturn hwio.GetBit64(uint64(r.bits), %d)", f.Offset)
		default:
			g.printf("func (r %s) %s() %s {", typ, fp.method, rp.word)
			g.printf("\treturn %s(hwio.GetField64(uint64(r.bits), %d, %d))", rp.word, f.Offset, f.Width)
		}
		g.printf("}")
		g.printf("")
	}
}

func (g *Generator) writer(rp *regPlan) {
	typ := rp.typ + "_W"

	g.printf("// %s builds a value to store into %s.", typ, rp.typ)
	g.printf("type %s struct {", typ)
	g.printf("\tfw hwio.FieldWriter")
	g.printf("}")
	g.printf("")
	g.printf("// Bits replaces the whole register value.")
	g.printf("func (w *%s) Bits(v %s) *%s {", typ, rp.word, typ)
	g.printf("\tw.fw.SetRaw(uint64(v))")
	g.printf("\treturn w")
	g.printf("}")
	g.printf("")

	for _, fp := range rp.fields {
		f := fp.f
		if !f.Access.Writable() {
			continue
		}
		g.printf("// %s sets the %s field, %s.", fp.method, f.Name, bitsDoc(f))
		g.comment(f.Description)
		switch {
		case fp.enum != "":
			g.printf("func (w *%s) %s(v %s) *%s {", typ, fp.method, fp.enum, typ)
			g.printf("\tw.fw.SetEnum(%q, %d, %d, uint64(v), v.Valid())", f.Name, f.Offset, f.Width)
		case fp.isBool():
			g.printf("func (w *%s) %s(v bool) *%s {", typ, fp.method, typ)
			g.printf("\tw.fw.SetBit(%d, v)", f.Offset)
		default:
			g.printf("func (w *%s) %s(v %s) *%s {", typ, fp.method, rp.word, typ)
			g.printf("\tw.fw.Set(%q, %d, %d, uint64(v))", f.Name, f.Offset, f.Width)
		}
		g.printf("\treturn w")
		g.printf("}")
		g.printf("")
	}
}

func (g *Generator) enum(rp *regPlan, fp *fieldPlan) {
	g.printf("// %s enumerates the values of the %s field of %s.", fp.enum, fp.f.Name, rp.typ)
	g.printf("type %s %s", fp.enum, rp.word)
	g.printf("")
	g.printf("const (")
	for i, ev := range fp.f.Enum {
		if ev.Description != "" {
			g.printf("\t// %s", ev.Description)
		}
		g.printf("\t%s %s = %#x", fp.values[i], fp.enum, ev.Value)
	}
	g.printf(")")
	g.printf("")
	g.printf("// Valid reports whether v is one of the enumerated values.")
	g.printf("func (v %s) Valid() bool {", fp.enum)
	g.printf("\tswitch v {")
	g.printf("\tcase %s:", strings.Join(fp.values, ", "))
	g.printf("\t\treturn true")
	g.printf("\t}")
	g.printf("\treturn false")
	g.printf("}")
	g.printf("")
}
