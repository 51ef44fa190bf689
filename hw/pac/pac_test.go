package pac_test

import (
	"errors"
	"testing"

	"github.com/chaseadam/gateware/hw/hwio"
	"github.com/chaseadam/gateware/hw/pac"
)

// newBus maps plain memory over the peripheral window, so that registers
// read back what was written and accesses can be counted.
func newBus(t *testing.T) (*hwio.Trace, *pac.Peripherals) {
	t.Helper()

	window := &hwio.Mem{Name: "periph", Data: make([]byte, 0x3000), VSize: 0x3000}
	bus := hwio.NewTable("bus")
	bus.MapMem(pac.SIMSTATUS_Base, window)
	tr := &hwio.Trace{Bus: bus, Keep: true}
	return tr, pac.New(tr)
}

func peek32(tr *hwio.Trace, addr uint32) uint32 {
	return uint32(hwio.Peek(tr, addr, hwio.Size32))
}

func TestAddresses(t *testing.T) {
	_, p := newBus(t)

	tests := []struct {
		name string
		got  uint32
		want uint32
	}{
		{"SIMSTATUS.simstatus", p.SIMSTATUS.Simstatus.Addr(), 0xF0000000},
		{"SIMSTATUS.report", p.SIMSTATUS.Report.Addr(), 0xF0000004},
		{"SPIMASTER.control", p.SPIMASTER.Control.Addr(), 0xF0001000},
		{"SPIMASTER.status", p.SPIMASTER.Status.Addr(), 0xF0001004},
		{"SPIMASTER.tx", p.SPIMASTER.Tx.Addr(), 0xF0001008},
		{"SPIMASTER.rx", p.SPIMASTER.Rx.Addr(), 0xF000100C},
		{"SPISLAVE.control", p.SPISLAVE.Control.Addr(), 0xF0002000},
		{"SPISLAVE.rx", p.SPISLAVE.Rx.Addr(), 0xF000200C},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s.Addr() = %#x, want %#x", tt.name, tt.got, tt.want)
		}
	}
}

func TestFieldRoundTrip(t *testing.T) {
	tr, p := newBus(t)

	err := p.SPIMASTER.Control.Write(func(w *pac.SPIMASTER_CONTROL_W) {
		w.Go(true).Mode(pac.SPIMASTER_CONTROL_MODE_MODE2).Clkdiv(0x20)
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := peek32(tr, 0xF0001000); got != 0x2011 {
		t.Errorf("control = %#x, want 0x2011", got)
	}

	r := p.SPIMASTER.Control.Read()
	if !r.Go() || r.Intena() || r.Tip() {
		t.Errorf("go=%v intena=%v tip=%v", r.Go(), r.Intena(), r.Tip())
	}
	if r.Mode() != pac.SPIMASTER_CONTROL_MODE_MODE2 {
		t.Errorf("mode = %d, want MODE2", r.Mode())
	}
	if r.Clkdiv() != 0x20 {
		t.Errorf("clkdiv = %#x, want 0x20", r.Clkdiv())
	}
	if r.Bits() != 0x2011 {
		t.Errorf("Bits() = %#x, want 0x2011", r.Bits())
	}
}

func TestWriteStartsFromReset(t *testing.T) {
	tr, p := newBus(t)

	if err := p.SPIMASTER.Control.Write(func(w *pac.SPIMASTER_CONTROL_W) { w.Intena(true) }); err != nil {
		t.Fatal(err)
	}
	if got := peek32(tr, 0xF0001000); got != pac.SPIMASTER_CONTROL_Reset|0x4 {
		t.Errorf("control = %#x, want %#x", got, pac.SPIMASTER_CONTROL_Reset|0x4)
	}

	p.SPIMASTER.Control.Reset()
	if got := peek32(tr, 0xF0001000); got != pac.SPIMASTER_CONTROL_Reset {
		t.Errorf("control after Reset = %#x, want %#x", got, pac.SPIMASTER_CONTROL_Reset)
	}
}

func TestModifyPreservesFields(t *testing.T) {
	tr, p := newBus(t)

	tr.Bus.Write(0xF0001000, hwio.Size32, 0xAB05)
	tr.Reset()

	err := p.SPIMASTER.Control.Modify(func(r pac.SPIMASTER_CONTROL_R, w *pac.SPIMASTER_CONTROL_W) {
		w.Mode(pac.SPIMASTER_CONTROL_MODE_MODE3)
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := peek32(tr, 0xF0001000); got != 0xAB1D {
		t.Errorf("control = %#x, want 0xab1d", got)
	}
	if r, w := tr.Counts(); r != 1 || w != 1 {
		t.Errorf("Modify issued %d reads and %d writes, want 1 and 1", r, w)
	}
}

func TestModifySeesCurrentValue(t *testing.T) {
	_, p := newBus(t)

	for i := 0; i < 3; i++ {
		err := p.SPIMASTER.Tx.Modify(func(r pac.SPIMASTER_TX_R, w *pac.SPIMASTER_TX_W) {
			w.Tx(r.Tx() + 0x10)
		})
		if err != nil {
			t.Fatal(err)
		}
	}
	if got := p.SPIMASTER.Tx.Read().Tx(); got != 0x30 {
		t.Errorf("tx = %#x, want 0x30", got)
	}
}

func TestWidthRejection(t *testing.T) {
	tr, p := newBus(t)

	tr.Bus.Write(0xF0001008, hwio.Size32, 0x1234)
	tr.Reset()

	err := p.SPIMASTER.Tx.Write(func(w *pac.SPIMASTER_TX_W) { w.Tx(0x1_0000) })
	if !errors.Is(err, hwio.ErrFieldWidth) {
		t.Fatalf("Write(tx=0x10000) = %v, want ErrFieldWidth", err)
	}
	var ferr *hwio.FieldError
	if !errors.As(err, &ferr) || ferr.Reg != "SPIMASTER.tx" || ferr.Field != "tx" || ferr.Width != 16 {
		t.Errorf("field error = %+v", ferr)
	}

	err = p.SPIMASTER.Control.Modify(func(_ pac.SPIMASTER_CONTROL_R, w *pac.SPIMASTER_CONTROL_W) {
		w.Go(true).Clkdiv(0x100)
	})
	if !errors.Is(err, hwio.ErrFieldWidth) {
		t.Fatalf("Modify(clkdiv=0x100) = %v, want ErrFieldWidth", err)
	}

	if _, w := tr.Counts(); w != 0 {
		t.Errorf("rejected values issued %d writes", w)
	}
	if got := peek32(tr, 0xF0001008); got != 0x1234 {
		t.Errorf("tx = %#x, want it untouched", got)
	}
	if got := peek32(tr, 0xF0001000); got != 0 {
		t.Errorf("control = %#x, want it untouched", got)
	}
}

func TestEnumRejection(t *testing.T) {
	_, p := newBus(t)

	if pac.SPIMASTER_CONTROL_MODE(7).Valid() {
		t.Errorf("mode 7 reported valid")
	}
	err := p.SPIMASTER.Control.Write(func(w *pac.SPIMASTER_CONTROL_W) {
		w.Mode(pac.SPIMASTER_CONTROL_MODE(7))
	})
	if !errors.Is(err, hwio.ErrEnumValue) {
		t.Errorf("Write(mode=7) = %v, want ErrEnumValue", err)
	}
}

func TestReportWrites(t *testing.T) {
	tr, p := newBus(t)

	for _, word := range []uint32{0x00C0FFEE, 0xADDCACA0} {
		if err := p.SIMSTATUS.Report.Write(func(w *pac.SIMSTATUS_REPORT_W) { w.Bits(word) }); err != nil {
			t.Fatal(err)
		}
	}

	var got []uint32
	for _, a := range tr.Accesses() {
		if !a.Write || a.Addr != 0xF0000004 || a.Size != hwio.Size32 {
			t.Errorf("unexpected access %v", a)
		}
		got = append(got, uint32(a.Value))
	}
	if len(got) != 2 || got[0] != 0x00C0FFEE || got[1] != 0xADDCACA0 {
		t.Errorf("report writes = %x", got)
	}
}

func TestStatusFlags(t *testing.T) {
	tr, p := newBus(t)

	tr.Bus.Write(0xF0002004, hwio.Size32, 0b110)
	st := p.SPISLAVE.Status.Read()
	if st.Tip() || !st.Rxfull() || !st.Overrun() {
		t.Errorf("tip=%v rxfull=%v overrun=%v", st.Tip(), st.Rxfull(), st.Overrun())
	}

	if err := p.SIMSTATUS.Simstatus.Modify(func(_ pac.SIMSTATUS_SIMSTATUS_R, w *pac.SIMSTATUS_SIMSTATUS_W) {
		w.Success(true)
	}); err != nil {
		t.Fatal(err)
	}
	if s := p.SIMSTATUS.Simstatus.Read(); !s.Success() || s.Failure() {
		t.Errorf("success=%v failure=%v", s.Success(), s.Failure())
	}
}
