// Command simbench runs test programs on the simulated SoC and reports
// their verdicts.
package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/go-faster/jx"
	"github.com/spf13/afero"

	"github.com/chaseadam/gateware/emu"
	"github.com/chaseadam/gateware/emu/log"
	"github.com/chaseadam/gateware/harness/progs"
	"github.com/chaseadam/gateware/hw/pacgen"
)

func main() {
	cli := parseArgs(os.Args[1:])
	if cli.LogOut != nil {
		log.SetOutput(cli.LogOut)
	}

	switch cli.mode {
	case runMode:
		os.Exit(runMain(cli.Run))
	case listMode:
		for _, name := range progs.Names() {
			fmt.Println(name)
		}
	case mapMode:
		mapMain(cli.Map)
	case configMode:
		configMain(cli.Config)
	case versionMode:
		printVersion()
	}
}

func mapMain(args Map) {
	dev, err := pacgen.Load(afero.NewOsFs(), args.SVD)
	checkf(err, "failed to load register map")

	var e jx.Encoder
	e.SetIdent(2)
	dev.Encode(&e)
	_, err = os.Stdout.Write(append(e.Bytes(), '\n'))
	checkf(err, "failed to write register map")
}

func loadConfig(path string) emu.Config {
	if path == "" {
		return emu.LoadConfigOrDefault()
	}
	cfg, err := emu.LoadConfig(path)
	checkf(err, "failed to load configuration")
	return cfg
}

func configMain(args ConfigCmd) {
	cfg := loadConfig(args.Config)
	buf, err := emu.EncodeConfig(cfg)
	checkf(err, "failed to encode configuration")
	os.Stdout.Write(buf)

	if args.Save {
		checkf(emu.SaveConfig(cfg), "failed to save configuration")
		fmt.Fprintln(os.Stderr, "saved to", emu.ConfigPath())
	}
}

func printVersion() {
	version := "(devel)"
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" {
		version = bi.Main.Version
	}
	fmt.Println("simbench", version)
}
