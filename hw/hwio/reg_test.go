package hwio

import "testing"

func TestReg32(t *testing.T) {
	r := Reg32{Value: 0x11, RoMask: 0xFFFFFFF0}

	if got := r.Read(0, Size32, false); got != 0x11 {
		t.Errorf("invalid read: %x", got)
	}

	r.Write(0, Size32, 0x77)
	if r.Value != 0x17 {
		t.Errorf("writemask not respected: %x", r.Value)
	}
	r.Write(0, Size8, 0x88)
	if r.Value != 0x18 {
		t.Errorf("writemask with narrow write not respected: %x", r.Value)
	}
}

func TestReg32Sized(t *testing.T) {
	r := Reg32{Value: 0x11223344}

	tests := []struct {
		addr uint32
		size Size
		want uint64
	}{
		{0, Size8, 0x44},
		{1, Size8, 0x33},
		{3, Size8, 0x11},
		{0, Size16, 0x3344},
		{2, Size16, 0x1122},
		{0, Size32, 0x11223344},
	}
	for _, tt := range tests {
		if got := r.Read(tt.addr, tt.size, false); got != tt.want {
			t.Errorf("Read(%d, %s) = %x, want %x", tt.addr, tt.size, got, tt.want)
		}
	}

	r.Write(2, Size16, 0xBEEF)
	if r.Value != 0xBEEF3344 {
		t.Errorf("16-bit write at 2: got %08x, want beef3344", r.Value)
	}
}

func TestReg32Callbacks(t *testing.T) {
	var wrote [2]uint32
	r := Reg32{
		Value:   1,
		ReadCb:  func(val uint32) uint32 { return val << 4 },
		PeekCb:  func(val uint32) uint32 { return 0xEE },
		WriteCb: func(old, val uint32) { wrote = [2]uint32{old, val} },
	}

	if got := r.Read(0, Size32, false); got != 0x10 {
		t.Errorf("read callback: got %x, want 10", got)
	}
	if got := r.Read(0, Size32, true); got != 0xEE {
		t.Errorf("peek callback: got %x, want ee", got)
	}
	r.Write(0, Size32, 5)
	if wrote != [2]uint32{1, 5} {
		t.Errorf("write callback got %v, want [1 5]", wrote)
	}
}

func TestReg32Flags(t *testing.T) {
	ro := Reg32{Name: "ro", Value: 3, Flags: ReadOnlyFlag}
	ro.Write(0, Size32, 0xFF)
	if ro.Value != 3 {
		t.Errorf("readonly reg was written: %x", ro.Value)
	}

	wo := Reg32{Name: "wo", Value: 3, Flags: WriteOnlyFlag}
	if got := wo.Read(0, Size32, false); got != 0 {
		t.Errorf("writeonly reg read = %x, want 0", got)
	}
	if got := wo.Read(0, Size32, true); got != 3 {
		t.Errorf("writeonly reg peek = %x, want 3", got)
	}
	wo.Write(0, Size32, 9)
	if wo.Value != 9 {
		t.Errorf("writeonly reg write: got %x, want 9", wo.Value)
	}
}
