package hwio

import (
	"errors"
	"testing"
)

func TestFieldWriter(t *testing.T) {
	fw := NewFieldWriter("SPIMASTER.control", 0x0000_0001)
	fw.Set("clkdiv", 8, 8, 0x20)
	fw.SetBit(2, true)
	fw.SetBit(0, false)
	if err := fw.Err(); err != nil {
		t.Fatal(err)
	}
	if got := fw.Value(); got != 0x2004 {
		t.Errorf("Value() = %#x, want 0x2004", got)
	}
}

func TestFieldWriterWidth(t *testing.T) {
	fw := NewFieldWriter("SPIMASTER.control", 0)
	fw.Set("mode", 3, 2, 4)
	fw.Set("clkdiv", 8, 8, 1) // ignored, first error wins

	err := fw.Err()
	if !errors.Is(err, ErrFieldWidth) {
		t.Fatalf("Err() = %v, want ErrFieldWidth", err)
	}
	var ferr *FieldError
	if !errors.As(err, &ferr) {
		t.Fatalf("Err() = %T, want *FieldError", err)
	}
	if ferr.Field != "mode" || ferr.Width != 2 || ferr.Value != 4 {
		t.Errorf("FieldError = %+v", ferr)
	}
	if fw.Value() != 0 {
		t.Errorf("Value() = %#x after rejected set, want 0", fw.Value())
	}
}

func TestFieldWriterEnum(t *testing.T) {
	fw := NewFieldWriter("X.y", 0)
	fw.SetEnum("z", 0, 3, 5, false)
	if err := fw.Err(); !errors.Is(err, ErrEnumValue) {
		t.Errorf("Err() = %v, want ErrEnumValue", err)
	}

	fw = NewFieldWriter("X.y", 0)
	fw.SetEnum("z", 4, 3, 5, true)
	if fw.Err() != nil || fw.Value() != 0x50 {
		t.Errorf("SetEnum valid: value %#x, err %v", fw.Value(), fw.Err())
	}
}

func TestBitops(t *testing.T) {
	v := uint64(0xF0F0)
	if got := GetField64(v, 4, 8); got != 0x0F {
		t.Errorf("GetField64 = %#x, want 0xf", got)
	}
	PutField64(&v, 4, 8, 0xA5)
	if v != 0xFA50 {
		t.Errorf("PutField64 = %#x, want 0xfa50", v)
	}
	if !GetBit64(v, 4) || GetBit64(v, 5) {
		t.Errorf("GetBit64 on %#x", v)
	}
	if FitsField(0x100, 8) || !FitsField(0xFF, 8) || !FitsField(^uint64(0), 64) {
		t.Errorf("FitsField boundaries")
	}
	if FieldMask64(64) != ^uint64(0) {
		t.Errorf("FieldMask64(64) = %#x", FieldMask64(64))
	}
}
