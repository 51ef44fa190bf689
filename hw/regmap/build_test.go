package regmap

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/chaseadam/gateware/hw/svd"
)

const validSVD = `<device>
  <name>SOC</name>
  <size>32</size>
  <peripherals>
    <peripheral>
      <name>SPIMASTER</name>
      <description>SPI
        master</description>
      <baseAddress>0xF0001000</baseAddress>
      <registers>
        <register>
          <name>control</name>
          <addressOffset>0x0</addressOffset>
          <access>read-write</access>
          <resetValue>0x100</resetValue>
          <fields>
            <field><name>go</name><bitOffset>0</bitOffset><bitWidth>1</bitWidth></field>
            <field><name>tip</name><bitOffset>1</bitOffset><bitWidth>1</bitWidth><access>read-only</access></field>
            <field>
              <name>mode</name><bitRange>[4:3]</bitRange>
              <enumeratedValues>
                <enumeratedValue><name>MODE0</name><value>0</value></enumeratedValue>
                <enumeratedValue><name>MODE3</name><value>3</value></enumeratedValue>
                <enumeratedValue><name>other</name><isDefault>true</isDefault></enumeratedValue>
              </enumeratedValues>
            </field>
          </fields>
        </register>
        <register>
          <name>rx</name>
          <addressOffset>0xC</addressOffset>
          <access>read-only</access>
          <fields>
            <field><name>rx</name><lsb>0</lsb><msb>15</msb></field>
          </fields>
        </register>
      </registers>
    </peripheral>
    <peripheral derivedFrom="SPIMASTER">
      <name>SPIMASTER2</name>
      <baseAddress>0xF0005000</baseAddress>
    </peripheral>
  </peripherals>
</device>`

func mustDecode(t *testing.T, doc string) *svd.Device {
	t.Helper()

	d, err := svd.DecodeBytes([]byte(doc))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	return d
}

func TestBuild(t *testing.T) {
	dev, err := Build(mustDecode(t, validSVD))
	if err != nil {
		t.Fatal(err)
	}

	p := dev.Peripheral("SPIMASTER")
	if p == nil || p.BaseAddress != 0xF0001000 || p.Description != "SPI master" {
		t.Fatalf("SPIMASTER = %+v", p)
	}

	want := &Register{
		Name:       "control",
		Offset:     0,
		Size:       32,
		Access:     ReadWrite,
		ResetValue: 0x100,
		Fields: []*Field{
			{Name: "go", Offset: 0, Width: 1, Access: ReadWrite},
			{Name: "tip", Offset: 1, Width: 1, Access: ReadOnly},
			{Name: "mode", Offset: 3, Width: 2, Access: ReadWrite, Enum: []EnumValue{
				{Name: "MODE0", Value: 0},
				{Name: "MODE3", Value: 3},
			}},
		},
	}
	if diff := cmp.Diff(want, p.Register("control")); diff != "" {
		t.Errorf("control mismatch (-want +got):\n%s", diff)
	}

	rx := p.Register("rx")
	if rx.Fields[0].Access != ReadOnly {
		t.Errorf("rx field access = %s, want inherited ReadOnly", rx.Fields[0].Access)
	}
	if got := rx.Addr(p); got != 0xF000100C {
		t.Errorf("rx.Addr() = %#x", got)
	}

	p2 := dev.Peripheral("SPIMASTER2")
	if p2 == nil || len(p2.Registers) != 2 || p2.BaseAddress != 0xF0005000 {
		t.Fatalf("derived peripheral = %+v", p2)
	}
	if dev.Peripheral("NOPE") != nil {
		t.Errorf("lookup of unknown peripheral succeeded")
	}
}

// doc wraps registers into a single peripheral device description.
func doc(regs string) string {
	return fmt.Sprintf(`<device><name>SOC</name><peripherals>
<peripheral><name>P</name><baseAddress>0x1000</baseAddress><registers>%s</registers></peripheral>
</peripherals></device>`, regs)
}

func reg(name, extra, fields string) string {
	return fmt.Sprintf(`<register><name>%s</name><addressOffset>0</addressOffset>%s<fields>%s</fields></register>`, name, extra, fields)
}

func TestBuildMalformed(t *testing.T) {
	tests := []struct {
		name   string
		doc    string
		reason Reason
	}{
		{
			name:   "invalid peripheral name",
			doc:    `<device><name>S</name><peripherals><peripheral><name>9P</name></peripheral></peripherals></device>`,
			reason: InvalidName,
		},
		{
			name: "duplicate peripheral",
			doc: `<device><name>S</name><peripherals>
				<peripheral><name>P</name><baseAddress>0</baseAddress></peripheral>
				<peripheral><name>P</name><baseAddress>4</baseAddress></peripheral>
				</peripherals></device>`,
			reason: DuplicateName,
		},
		{
			name: "duplicate base",
			doc: `<device><name>S</name><peripherals>
				<peripheral><name>A</name><baseAddress>0x10</baseAddress></peripheral>
				<peripheral><name>B</name><baseAddress>0x10</baseAddress></peripheral>
				</peripherals></device>`,
			reason: DuplicateBase,
		},
		{
			name: "unknown derivation",
			doc: `<device><name>S</name><peripherals>
				<peripheral derivedFrom="X"><name>A</name><baseAddress>0x10</baseAddress></peripheral>
				</peripherals></device>`,
			reason: UnknownDerivation,
		},
		{
			name: "derivation cycle",
			doc: `<device><name>S</name><peripherals>
				<peripheral derivedFrom="B"><name>A</name><baseAddress>0x10</baseAddress></peripheral>
				<peripheral derivedFrom="A"><name>B</name><baseAddress>0x20</baseAddress></peripheral>
				</peripherals></device>`,
			reason: UnknownDerivation,
		},
		{
			name:   "invalid register name",
			doc:    doc(reg("a-b", "", "")),
			reason: InvalidName,
		},
		{
			name:   "duplicate register",
			doc:    doc(reg("r", "", "") + reg("r", "", "")),
			reason: DuplicateName,
		},
		{
			name:   "register size",
			doc:    doc(reg("r", "<size>24</size>", "")),
			reason: InvalidSize,
		},
		{
			name:   "register access",
			doc:    doc(reg("r", "<access>sometimes</access>", "")),
			reason: InvalidAccess,
		},
		{
			name:   "reset value",
			doc:    doc(reg("r", "<size>8</size><resetValue>0x100</resetValue>", "")),
			reason: ResetExceedsWidth,
		},
		{
			name:   "register dim",
			doc:    doc(`<register><dim>4</dim><name>r</name><addressOffset>0</addressOffset></register>`),
			reason: Unsupported,
		},
		{
			name: "field overlap",
			doc: doc(reg("r", "", `<field><name>a</name><bitRange>[3:0]</bitRange></field>
				<field><name>b</name><bitRange>[4:3]</bitRange></field>`)),
			reason: FieldOverlap,
		},
		{
			name:   "field exceeds width",
			doc:    doc(reg("r", "<size>16</size>", `<field><name>a</name><bitOffset>12</bitOffset><bitWidth>8</bitWidth></field>`)),
			reason: FieldExceedsWidth,
		},
		{
			name: "field offset wraps",
			doc: doc(reg("r", "", `<field><name>a</name><bitRange>[31:0]</bitRange></field>
				<field><name>b</name><bitOffset>0xFFFFFFFFFFFFFFFF</bitOffset><bitWidth>2</bitWidth></field>`)),
			reason: FieldExceedsWidth,
		},
		{
			name:   "field wider than register",
			doc:    doc(reg("r", "<size>8</size>", `<field><name>a</name><bitOffset>0</bitOffset><bitWidth>16</bitWidth></field>`)),
			reason: FieldExceedsWidth,
		},
		{
			name:   "register offset beyond 32 bits",
			doc:    doc(`<register><name>r</name><addressOffset>0x100000000</addressOffset></register>`),
			reason: InvalidSize,
		},
		{
			name: "register beyond address space",
			doc: `<device><name>S</name><peripherals>
				<peripheral><name>P</name><baseAddress>0xFFFFFFF0</baseAddress><registers>
				<register><name>r</name><addressOffset>0x10</addressOffset></register>
				</registers></peripheral></peripherals></device>`,
			reason: InvalidSize,
		},
		{
			name:   "field zero width",
			doc:    doc(reg("r", "", `<field><name>a</name><bitOffset>0</bitOffset><bitWidth>0</bitWidth></field>`)),
			reason: FieldExceedsWidth,
		},
		{
			name:   "duplicate field",
			doc:    doc(reg("r", "", `<field><name>a</name><bitOffset>0</bitOffset></field><field><name>a</name><bitOffset>1</bitOffset></field>`)),
			reason: DuplicateName,
		},
		{
			name:   "writable field in read-only register",
			doc:    doc(reg("r", "<access>read-only</access>", `<field><name>a</name><bitOffset>0</bitOffset><access>read-write</access></field>`)),
			reason: InvalidAccess,
		},
		{
			name:   "readable field in write-only register",
			doc:    doc(reg("r", "<access>write-only</access>", `<field><name>a</name><bitOffset>0</bitOffset><access>read-only</access></field>`)),
			reason: InvalidAccess,
		},
		{
			name: "enum value too wide",
			doc: doc(reg("r", "", `<field><name>a</name><bitRange>[1:0]</bitRange><enumeratedValues>
				<enumeratedValue><name>BIG</name><value>4</value></enumeratedValue></enumeratedValues></field>`)),
			reason: InvalidEnum,
		},
		{
			name: "enum duplicate name",
			doc: doc(reg("r", "", `<field><name>a</name><bitRange>[1:0]</bitRange><enumeratedValues>
				<enumeratedValue><name>X</name><value>1</value></enumeratedValue>
				<enumeratedValue><name>X</name><value>2</value></enumeratedValue></enumeratedValues></field>`)),
			reason: InvalidEnum,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dev, err := Build(mustDecode(t, tt.doc))
			if err == nil {
				t.Fatalf("Build succeeded, want %s", tt.reason)
			}
			if dev != nil {
				t.Errorf("Build returned a partial map")
			}
			if !errors.Is(err, ErrMalformed) {
				t.Errorf("errors.Is(%v, ErrMalformed) = false", err)
			}
			var merr *MalformedError
			if !errors.As(err, &merr) {
				t.Fatalf("error %T is not a *MalformedError", err)
			}
			if merr.Reason != tt.reason {
				t.Errorf("reason = %q, want %q (%v)", merr.Reason, tt.reason, err)
			}
		})
	}
}

func TestMalformedErrorMessage(t *testing.T) {
	err := &MalformedError{Peripheral: "P", Register: "r", Field: "f", Reason: FieldOverlap, Detail: "x"}
	if got, want := err.Error(), "malformed description: P.r.f: overlapping fields (x)"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestAccess(t *testing.T) {
	tests := []struct {
		in         string
		want       Access
		read, writ bool
	}{
		{"read-write", ReadWrite, true, true},
		{"read-only", ReadOnly, true, false},
		{"write-only", WriteOnly, false, true},
		{"writeOnce", WriteOnly, false, true},
	}
	for _, tt := range tests {
		got, ok := ParseAccess(tt.in)
		if !ok || got != tt.want {
			t.Errorf("ParseAccess(%q) = %v, %v", tt.in, got, ok)
		}
		if got.Readable() != tt.read || got.Writable() != tt.writ {
			t.Errorf("%s: readable=%v writable=%v", got, got.Readable(), got.Writable())
		}
	}
	if _, ok := ParseAccess("never"); ok {
		t.Errorf("ParseAccess(never) succeeded")
	}
	if got := Access(7).String(); got != "Access(7)" {
		t.Errorf("Access(7).String() = %q", got)
	}
}
