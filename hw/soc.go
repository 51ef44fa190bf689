// Package hw models the simulation SoC: a status peripheral, an SPI master
// and slave pair wired together, and SRAM, all mapped on a single bus.
package hw

import (
	"errors"
	"sync/atomic"

	"github.com/chaseadam/gateware/emu/log"
	"github.com/chaseadam/gateware/hw/hwio"
	"github.com/chaseadam/gateware/hw/pac"
)

// SRAM location.
const (
	SRAMBase = 0x0100_0000
	SRAMSize = 0x2_0000
)

// ErrClaimed is returned when claiming the bus of a SoC twice.
var ErrClaimed = errors.New("bus already claimed")

// SoC is the simulated system. Exactly one program runs on it: its bus is
// claimed once, and stops serving that program once halted.
type SoC struct {
	Bus *hwio.Table

	SRAM hwio.Mem `hwio:"offset=0x0,size=0x20000"`

	Status SimStatus
	Master SPIMaster
	Slave  SPISlave

	claimed atomic.Bool
	halted  atomic.Bool
}

// Config holds the tunables of the SoC.
type Config struct {
	SPILatency int `toml:"spi_latency"`
}

// NewSoC powers up a SoC, every register at its reset value and SRAM
// zeroed.
func NewSoC(cfg Config) *SoC {
	soc := &SoC{Bus: hwio.NewTable("soc")}
	hwio.MustInitRegs(soc)
	soc.Status.init()
	soc.Slave.init()
	soc.Master.init(&soc.Slave)
	soc.Master.Latency = cfg.SPILatency

	soc.Bus.MapBank(SRAMBase, soc, 0)
	soc.Bus.MapBank(pac.SIMSTATUS_Base, &soc.Status, 0)
	soc.Bus.MapBank(pac.SPIMASTER_Base, &soc.Master, 0)
	soc.Bus.MapBank(pac.SPISLAVE_Base, &soc.Slave, 0)
	return soc
}

// Claim hands the bus over to the program. It can only be done once.
func (soc *SoC) Claim() (hwio.BankIO, error) {
	if !soc.claimed.CompareAndSwap(false, true) {
		return nil, ErrClaimed
	}
	return claimedBus{soc}, nil
}

// Halt stops the program: its next bus access panics with hwio.ErrHalted.
// Halt may be called from any goroutine.
func (soc *SoC) Halt() {
	if soc.halted.CompareAndSwap(false, true) {
		log.ModSim.WarnZ("soc halted").End()
	}
}

func (soc *SoC) Halted() bool { return soc.halted.Load() }

// Words returns count words of memory starting at addr, read without side
// effects.
func (soc *SoC) Words(addr uint32, count int) []uint32 {
	words := make([]uint32, count)
	for i := range words {
		words[i] = uint32(soc.Bus.Peek(addr+uint32(4*i), hwio.Size32))
	}
	return words
}

type claimedBus struct{ soc *SoC }

func (b claimedBus) check() {
	if b.soc.halted.Load() {
		panic(hwio.ErrHalted)
	}
}

func (b claimedBus) Read(addr uint32, size hwio.Size, peek bool) uint64 {
	b.check()
	return b.soc.Bus.Read(addr, size, peek)
}

func (b claimedBus) Write(addr uint32, size hwio.Size, val uint64) {
	b.check()
	b.soc.Bus.Write(addr, size, val)
}
