package hw

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/chaseadam/gateware/hw/hwio"
	"github.com/chaseadam/gateware/hw/pac"
)

func claim(t *testing.T, soc *SoC) *pac.Peripherals {
	t.Helper()
	bus, err := soc.Claim()
	if err != nil {
		t.Fatal(err)
	}
	return pac.New(bus)
}

func TestSoCReset(t *testing.T) {
	soc := NewSoC(Config{})
	p := claim(t, soc)

	if got := p.SPIMASTER.Control.Read().Bits(); got != pac.SPIMASTER_CONTROL_Reset {
		t.Errorf("CONTROL = %#x, want %#x", got, pac.SPIMASTER_CONTROL_Reset)
	}
	if got := p.SPIMASTER.Control.Read().Clkdiv(); got != 1 {
		t.Errorf("clkdiv = %d, want 1", got)
	}
	if p.SIMSTATUS.Simstatus.Read().Success() {
		t.Errorf("success set at reset")
	}
	if got := soc.Words(SRAMBase, 4); !cmp.Equal(got, make([]uint32, 4)) {
		t.Errorf("SRAM not zeroed: %x", got)
	}
}

func TestSoCClaimOnce(t *testing.T) {
	soc := NewSoC(Config{})
	if _, err := soc.Claim(); err != nil {
		t.Fatal(err)
	}
	if _, err := soc.Claim(); !errors.Is(err, ErrClaimed) {
		t.Fatalf("second Claim() = %v, want %v", err, ErrClaimed)
	}
}

func TestSoCHalt(t *testing.T) {
	soc := NewSoC(Config{})
	bus, err := soc.Claim()
	if err != nil {
		t.Fatal(err)
	}
	bus.Write(SRAMBase, hwio.Size32, 0x1234)
	soc.Halt()
	if !soc.Halted() {
		t.Fatal("Halted() = false after Halt()")
	}

	defer func() {
		if r := recover(); r != hwio.ErrHalted {
			t.Fatalf("recovered %v, want %v", r, hwio.ErrHalted)
		}
		// The simulator side still sees memory.
		if got := soc.Words(SRAMBase, 1)[0]; got != 0x1234 {
			t.Errorf("SRAM[0] = %#x, want 0x1234", got)
		}
	}()
	bus.Read(SRAMBase, hwio.Size32, false)
	t.Fatal("read on halted bus did not panic")
}

func TestSPIGoTip(t *testing.T) {
	soc := NewSoC(Config{SPILatency: 2})
	p := claim(t, soc)
	m := p.SPIMASTER

	if err := m.Tx.Write(func(w *pac.SPIMASTER_TX_W) { w.Tx(0xbeef) }); err != nil {
		t.Fatal(err)
	}
	if err := m.Control.Write(func(w *pac.SPIMASTER_CONTROL_W) { w.Go(true) }); err != nil {
		t.Fatal(err)
	}

	// go reads as written, tip reflects the exchange in progress.
	ctrl := m.Control.Read()
	if !ctrl.Go() || !ctrl.Tip() {
		t.Fatalf("after go: go=%v tip=%v, want both set", ctrl.Go(), ctrl.Tip())
	}
	if !p.SPISLAVE.Status.Read().Tip() {
		t.Errorf("slave tip not set during exchange")
	}

	var polls int
	for m.Status.Read().Tip() {
		polls++
	}
	if polls != 1 {
		t.Errorf("tip seen in %d status reads, want 1", polls)
	}

	ctrl = m.Control.Read()
	if !ctrl.Go() || ctrl.Tip() {
		t.Fatalf("after exchange: go=%v tip=%v, want go only", ctrl.Go(), ctrl.Tip())
	}
	if got := soc.Master.Exchanges(); got != 1 {
		t.Errorf("Exchanges() = %d, want 1", got)
	}

	// Writing go=1 again without clearing it is not an edge.
	if err := m.Control.Write(func(w *pac.SPIMASTER_CONTROL_W) { w.Go(true) }); err != nil {
		t.Fatal(err)
	}
	if m.Control.Read().Tip() {
		t.Errorf("tip set without a go edge")
	}
}

func TestSPITipIsReadOnly(t *testing.T) {
	soc := NewSoC(Config{})
	bus, err := soc.Claim()
	if err != nil {
		t.Fatal(err)
	}
	bus.Write(pac.SPIMASTER_Base, hwio.Size32, 0x2)
	if got := bus.Read(pac.SPIMASTER_Base, hwio.Size32, false); got != 0 {
		t.Errorf("CONTROL = %#x after writing tip, want 0", got)
	}
}

func TestSPIExchange(t *testing.T) {
	soc := NewSoC(Config{})
	p := claim(t, soc)

	exchange := func(mtx, stx uint32) (mrx, srx uint32) {
		t.Helper()
		if err := p.SPISLAVE.Tx.Write(func(w *pac.SPISLAVE_TX_W) { w.Tx(stx) }); err != nil {
			t.Fatal(err)
		}
		if err := p.SPIMASTER.Tx.Write(func(w *pac.SPIMASTER_TX_W) { w.Tx(mtx) }); err != nil {
			t.Fatal(err)
		}
		if err := p.SPIMASTER.Control.Write(func(w *pac.SPIMASTER_CONTROL_W) { w.Go(true) }); err != nil {
			t.Fatal(err)
		}
		for p.SPIMASTER.Status.Read().Tip() {
		}
		if err := p.SPIMASTER.Control.Write(func(w *pac.SPIMASTER_CONTROL_W) { w.Bits(0) }); err != nil {
			t.Fatal(err)
		}
		return p.SPIMASTER.Rx.Read().Rx(), p.SPISLAVE.Rx.Read().Rx()
	}

	mrx, srx := exchange(0xf055, 0x0f0f)
	if mrx != 0x0f0f || srx != 0xf055 {
		t.Errorf("exchange: mrx=%#x srx=%#x, want 0xf0f 0xf055", mrx, srx)
	}
	mrx, srx = exchange(0x90f1, 0x1234)
	if mrx != 0x1234 || srx != 0x90f1 {
		t.Errorf("exchange: mrx=%#x srx=%#x, want 0x1234 0x90f1", mrx, srx)
	}
	if st := p.SPISLAVE.Status.Read(); st.Rxfull() || st.Overrun() {
		t.Errorf("slave status = %#x after reading rx, want clear", st.Bits())
	}
}

func TestSPISlaveOverrun(t *testing.T) {
	soc := NewSoC(Config{})
	p := claim(t, soc)

	start := func(mtx uint32) {
		t.Helper()
		if err := p.SPIMASTER.Tx.Write(func(w *pac.SPIMASTER_TX_W) { w.Tx(mtx) }); err != nil {
			t.Fatal(err)
		}
		if err := p.SPIMASTER.Control.Write(func(w *pac.SPIMASTER_CONTROL_W) { w.Go(true) }); err != nil {
			t.Fatal(err)
		}
		if err := p.SPIMASTER.Control.Write(func(w *pac.SPIMASTER_CONTROL_W) { w.Go(false) }); err != nil {
			t.Fatal(err)
		}
	}

	start(0x1111)
	if st := p.SPISLAVE.Status.Read(); !st.Rxfull() || st.Overrun() {
		t.Fatalf("after one exchange: status %#x, want rxfull only", st.Bits())
	}
	start(0x2222)
	if st := p.SPISLAVE.Status.Read(); !st.Rxfull() || !st.Overrun() {
		t.Fatalf("after unread exchange: status %#x, want rxfull and overrun", st.Bits())
	}

	// Peeking does not acknowledge the word.
	if got := hwio.Peek(soc.Bus, pac.SPISLAVE_Base+0xc, hwio.Size32); got != 0x2222 {
		t.Errorf("peek RX = %#x, want 0x2222", got)
	}
	if !p.SPISLAVE.Status.Read().Rxfull() {
		t.Errorf("peek cleared rxfull")
	}

	if got := p.SPISLAVE.Rx.Read().Rx(); got != 0x2222 {
		t.Errorf("RX = %#x, want 0x2222", got)
	}
	if st := p.SPISLAVE.Status.Read(); st.Rxfull() || st.Overrun() {
		t.Errorf("after reading RX: status %#x, want clear", st.Bits())
	}
}

func TestSimStatusReports(t *testing.T) {
	soc := NewSoC(Config{})
	p := claim(t, soc)

	for _, w := range []uint32{3, 1, 2} {
		if err := p.SIMSTATUS.Report.Write(func(rw *pac.SIMSTATUS_REPORT_W) { rw.Bits(w) }); err != nil {
			t.Fatal(err)
		}
	}
	if err := p.SIMSTATUS.Simstatus.Modify(func(_ pac.SIMSTATUS_SIMSTATUS_R, w *pac.SIMSTATUS_SIMSTATUS_W) {
		w.Success(true)
	}); err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff([]uint32{3, 1, 2}, soc.Status.Reports()); diff != "" {
		t.Errorf("Reports() mismatch (-want +got):\n%s", diff)
	}
	if !soc.Status.Success() || soc.Status.Failure() {
		t.Errorf("Success()=%v Failure()=%v, want true false", soc.Status.Success(), soc.Status.Failure())
	}
}
