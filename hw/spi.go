package hw

import (
	"github.com/chaseadam/gateware/emu/log"
	"github.com/chaseadam/gateware/hw/hwio"
)

// SPI master CONTROL bits.
const (
	ctrlGo  = 0
	ctrlTip = 1
)

// SPI master STATUS bits.
const masterTip = 0

// SPI slave STATUS bits.
const (
	slaveTip     = 0
	slaveRxFull  = 1
	slaveOverrun = 2
)

// SPIMaster is an SPI master wired to a single SPISlave.
//
// Writing CONTROL with go going from 0 to 1 starts a 16-bit exchange: the
// master shifts out TX while the slave shifts out its own TX. Go is not
// cleared by the hardware, it reads back as last written; the program
// clears it once the exchange is over so that the next write starts a new
// one. Tip, in both CONTROL and STATUS, is set while the exchange is in
// progress.
//
// The exchange lasts Latency reads of STATUS, a zero Latency completes it
// right away.
type SPIMaster struct {
	CONTROL hwio.Reg32 `hwio:"offset=0x0,reset=0x100,rwmask=0xff1d,wcb"`
	STATUS  hwio.Reg32 `hwio:"offset=0x4,readonly,rcb"`
	TX      hwio.Reg32 `hwio:"offset=0x8,rwmask=0xffff"`
	RX      hwio.Reg32 `hwio:"offset=0xc,readonly"`

	Latency int

	slave     *SPISlave
	busy      int // remaining status reads before completion
	exchanges int
}

func (m *SPIMaster) init(slave *SPISlave) {
	hwio.MustInitRegs(m)
	m.slave = slave
}

func (m *SPIMaster) WriteCONTROL(old, val uint32) {
	if hwio.GetBit64(uint64(old), ctrlGo) || !hwio.GetBit64(uint64(val), ctrlGo) {
		return
	}
	if m.busy > 0 {
		log.ModSPI.WarnZ("go while transfer in progress, ignored").End()
		return
	}

	log.ModSPI.DebugZ("start exchange").
		Hex16("mtx", uint16(m.TX.Value)).
		Hex16("stx", uint16(m.slave.TX.Value)).
		Int("latency", m.Latency).
		End()

	if m.Latency <= 0 {
		m.complete()
		return
	}
	m.busy = m.Latency
	m.setTip(true)
}

func (m *SPIMaster) ReadSTATUS(val uint32) uint32 {
	if m.busy > 0 {
		m.busy--
		if m.busy == 0 {
			m.complete()
		}
	}
	return m.STATUS.Value
}

func (m *SPIMaster) setTip(on bool) {
	ctrl, st, sst := uint64(m.CONTROL.Value), uint64(m.STATUS.Value), uint64(m.slave.STATUS.Value)
	if on {
		hwio.SetBit64(&ctrl, ctrlTip)
		hwio.SetBit64(&st, masterTip)
		hwio.SetBit64(&sst, slaveTip)
	} else {
		hwio.ClearBit64(&ctrl, ctrlTip)
		hwio.ClearBit64(&st, masterTip)
		hwio.ClearBit64(&sst, slaveTip)
	}
	m.CONTROL.Value, m.STATUS.Value, m.slave.STATUS.Value = uint32(ctrl), uint32(st), uint32(sst)
}

func (m *SPIMaster) complete() {
	m.setTip(false)
	m.RX.Value = m.slave.TX.Value & 0xffff
	m.slave.receive(m.TX.Value & 0xffff)
	m.exchanges++

	log.ModSPI.DebugZ("exchange complete").
		Hex16("mrx", uint16(m.RX.Value)).
		Hex16("srx", uint16(m.slave.RX.Value)).
		End()
}

// Exchanges returns the number of completed exchanges.
func (m *SPIMaster) Exchanges() int { return m.exchanges }

// SPISlave is the receiving end of an SPIMaster. Reading RX clears rxfull
// and overrun. An exchange completing while rxfull is still set sets
// overrun, the new word replaces the unread one.
type SPISlave struct {
	CONTROL hwio.Reg32 `hwio:"offset=0x0,rwmask=0x1"`
	STATUS  hwio.Reg32 `hwio:"offset=0x4,readonly"`
	TX      hwio.Reg32 `hwio:"offset=0x8,rwmask=0xffff"`
	RX      hwio.Reg32 `hwio:"offset=0xc,readonly,rcb"`
}

func (s *SPISlave) init() {
	hwio.MustInitRegs(s)
}

func (s *SPISlave) receive(word uint32) {
	st := uint64(s.STATUS.Value)
	if hwio.GetBit64(st, slaveRxFull) {
		log.ModSPI.DebugZ("slave overrun").Hex32("lost", s.RX.Value).End()
		hwio.SetBit64(&st, slaveOverrun)
	}
	hwio.SetBit64(&st, slaveRxFull)
	s.STATUS.Value = uint32(st)
	s.RX.Value = word
}

func (s *SPISlave) ReadRX(val uint32) uint32 {
	st := uint64(s.STATUS.Value)
	hwio.ClearBit64(&st, slaveRxFull)
	hwio.ClearBit64(&st, slaveOverrun)
	s.STATUS.Value = uint32(st)
	return val
}
