package log

import (
	"fmt"
	"strings"
	"sync/atomic"
)

type ModuleMask uint64
type Module uint

const (
	ModuleMaskAll ModuleMask = 0xFFFFFFFFFFFFFFFF
)

// Standard modules. Every package of the bench logs through one of them, so
// that debug output can be enabled selectively from the command line.
const (
	ModSim Module = iota + 1
	ModHwIo
	ModGen
	ModMap
	ModHarness
	ModSPI
	ModStatus

	endStandardMods
)

var modNames = []string{
	"<error>", "sim", "hwio", "gen", "regmap", "harness", "spi", "status",
}

// Modules are enabled from the CLI before any program runs, but runs may
// happen on several goroutines, hence the atomic.
var modDebugMask atomic.Uint64

// ModuleNames returns the names of all standard modules, in declaration order.
func ModuleNames() []string {
	return append([]string(nil), modNames[1:endStandardMods]...)
}

func ModuleByName(name string) (Module, bool) {
	for idx, s := range modNames {
		if idx != 0 && s == name {
			return Module(idx), true
		}
	}
	return Module(0xFFFFFFFF), false
}

// EnableModules enables debug logs for a comma-separated list of module
// names. "all" enables every module and "no" turns logging off entirely,
// warnings and errors included.
func EnableModules(list string) error {
	var mask ModuleMask
	nolog, allLogs := false, false
	for _, v := range strings.Split(list, ",") {
		switch v {
		case "all":
			allLogs = true
		case "no":
			nolog = true
		default:
			mod, ok := ModuleByName(v)
			if !ok {
				return fmt.Errorf("unknown log module %s", v)
			}
			mask |= mod.Mask()
		}
	}

	if nolog {
		if allLogs {
			return fmt.Errorf("cannot use 'all' and 'no' together")
		}
		if mask != 0 {
			return fmt.Errorf("cannot combine 'no' with other log modules")
		}
		Disable()
		return nil
	}
	if allLogs {
		mask = ModuleMaskAll
	}
	EnableDebugModules(mask)
	return nil
}

func EnableDebugModules(mask ModuleMask) {
	for {
		old := modDebugMask.Load()
		if modDebugMask.CompareAndSwap(old, old|uint64(mask)) {
			return
		}
	}
}

func DisableDebugModules(mask ModuleMask) {
	for {
		old := modDebugMask.Load()
		if modDebugMask.CompareAndSwap(old, old&^uint64(mask)) {
			return
		}
	}
}

func (mod Module) String() string {
	if int(mod) < len(modNames) {
		return modNames[mod]
	}
	return modNames[0]
}

func (mod Module) Mask() ModuleMask {
	return 1 << ModuleMask(mod)
}

// Enabled reports whether an entry of the given level would be emitted.
// Warnings and errors always are, lower levels only for debug modules.
func (mod Module) Enabled(level Level) bool {
	if disabled.Load() {
		return false
	}
	return level <= WarnLevel || ModuleMask(modDebugMask.Load())&mod.Mask() != 0
}

func (mod Module) logz(lvl Level, msg string) *EntryZ {
	if mod.Enabled(lvl) {
		e := NewEntryZ()
		e.lvl = lvl
		e.msg = msg
		e.mod = mod
		return e
	}
	return nil
}

func (mod Module) DebugZ(msg string) *EntryZ { return mod.logz(DebugLevel, msg) }
func (mod Module) InfoZ(msg string) *EntryZ  { return mod.logz(InfoLevel, msg) }
func (mod Module) WarnZ(msg string) *EntryZ  { return mod.logz(WarnLevel, msg) }
func (mod Module) ErrorZ(msg string) *EntryZ { return mod.logz(ErrorLevel, msg) }
func (mod Module) FatalZ(msg string) *EntryZ { return mod.logz(FatalLevel, msg) }
