package main

import (
	"testing"

	"github.com/chaseadam/gateware/emu/log"
)

func TestParseArgs(t *testing.T) {
	tests := []struct {
		args []string
		mode mode
	}{
		{[]string{"run", "--all", "--json"}, runMode},
		{[]string{"run", "spi-basic", "testbench", "-j", "2"}, runMode},
		{[]string{"list"}, listMode},
		{[]string{"map", "hw/pac/soc.svd"}, mapMode},
		{[]string{"config"}, configMode},
		{[]string{"version"}, versionMode},
	}
	for _, tt := range tests {
		if got := parseArgs(tt.args).mode; got != tt.mode {
			t.Errorf("parseArgs(%q).mode = %d, want %d", tt.args, got, tt.mode)
		}
	}

	cli := parseArgs([]string{"run", "spi-basic", "testbench", "-j", "2"})
	if len(cli.Run.Programs) != 2 || cli.Run.Jobs != 2 {
		t.Errorf("run args = %+v", cli.Run)
	}
}

func TestLogFlag(t *testing.T) {
	defer log.DisableDebugModules(log.ModSPI.Mask() | log.ModStatus.Mask())

	parseArgs([]string{"list", "--log", "spi,status"})
	if !log.ModSPI.Enabled(log.DebugLevel) || !log.ModStatus.Enabled(log.DebugLevel) {
		t.Errorf("--log spi,status did not enable debug logs")
	}
	if log.ModGen.Enabled(log.DebugLevel) {
		t.Errorf("--log spi,status enabled gen")
	}
}
