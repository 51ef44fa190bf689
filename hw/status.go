package hw

import (
	"github.com/chaseadam/gateware/emu/log"
	"github.com/chaseadam/gateware/hw/hwio"
)

// SIMSTATUS bits.
const (
	statusSuccess = 0
	statusFailure = 1
)

// SimStatus is the test status peripheral. The program writes its verdict
// into SIMSTATUS and any number of diagnostic words into REPORT, the
// simulator collects both.
type SimStatus struct {
	SIMSTATUS hwio.Reg32 `hwio:"offset=0x0,rwmask=0x3,wcb"`
	REPORT    hwio.Reg32 `hwio:"offset=0x4,writeonly,wcb"`

	reports []uint32
}

func (s *SimStatus) init() {
	hwio.MustInitRegs(s)
}

func (s *SimStatus) WriteSIMSTATUS(old, val uint32) {
	log.ModStatus.InfoZ("status written").
		Bool("success", hwio.GetBit64(uint64(val), statusSuccess)).
		Bool("failure", hwio.GetBit64(uint64(val), statusFailure)).
		Hex32("old", old).
		End()
}

func (s *SimStatus) WriteREPORT(_, val uint32) {
	log.ModStatus.InfoZ("report").Hex32("val", val).End()
	s.reports = append(s.reports, val)
}

// Success reports whether the success bit is set.
func (s *SimStatus) Success() bool { return hwio.GetBit64(uint64(s.SIMSTATUS.Value), statusSuccess) }

// Failure reports whether the failure bit is set.
func (s *SimStatus) Failure() bool { return hwio.GetBit64(uint64(s.SIMSTATUS.Value), statusFailure) }

// Reports returns every word written to REPORT, in order.
func (s *SimStatus) Reports() []uint32 {
	return append([]uint32(nil), s.reports...)
}
