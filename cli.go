package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/chaseadam/gateware/emu"
	"github.com/chaseadam/gateware/emu/log"
)

type mode byte

const (
	runMode     mode = iota // Run test programs
	listMode                // List test programs
	mapMode                 // Dump a register map
	configMode              // Show configuration
	versionMode             // Show simbench version
)

type (
	CLI struct {
		Run     Run       `cmd:"" help:"Run test programs on the simulated SoC."`
		List    List      `cmd:"" help:"List test programs."`
		Map     Map       `cmd:"" help:"Dump the register map of an SVD file as JSON."`
		Config  ConfigCmd `cmd:"" name:"config" help:"Show the configuration in use."`
		Version Version   `cmd:"" help:"Show simbench version."`

		Log    logModMask `help:"${log_help}" placeholder:"mod0,mod1,..."`
		LogOut *outfile   `name:"log-out" help:"Write logs to file instead of stderr." placeholder:"FILE|stdout|stderr"`

		mode mode
	}

	Run struct {
		Programs []string `arg:"" optional:"" name:"program" help:"Programs to run, see 'simbench list'."`

		All    bool     `name:"all" help:"Run all programs."`
		JSON   bool     `name:"json" help:"Write verdicts as JSON on stdout."`
		Expect string   `name:"expect" help:"${expect_help}" type:"existingfile" placeholder:"FILE"`
		Config string   `name:"config" help:"${config_help}" type:"existingfile" placeholder:"FILE"`
		Jobs   int      `name:"jobs" short:"j" help:"Number of programs run concurrently (overrides the configuration)."`
		Trace  *outfile `name:"trace" help:"Write bus trace log." placeholder:"FILE|stdout|stderr"`
	}

	List struct{}

	Map struct {
		SVD string `arg:"" name:"/path/to/svd" type:"existingfile"`
	}

	ConfigCmd struct {
		Config string `name:"config" help:"${config_help}" type:"existingfile" placeholder:"FILE"`
		Save   bool   `name:"save" help:"Write the configuration to the user config directory."`
	}

	Version struct{}
)

var vars = kong.Vars{
	"expect_help": "Check the verdicts against the expectations in FILE (JSON).",
	"config_help": "Configuration file, defaults to " + emu.ConfigPath() + ".",
	"log_help":    "Enable logging for specified modules.",
}

func parseArgs(args []string) CLI {
	var cfg CLI
	parser, err := kong.New(&cfg,
		kong.Name("simbench"),
		kong.Description("Gateware simulation bench. github.com/chaseadam/gateware"),
		kong.UsageOnError(),
		kong.Help(printHelp),
		vars)
	if err != nil {
		panic(err)
	}

	ctx, err := parser.Parse(args)
	checkf(err, "failed to parse command line")
	checkf(ctx.Error, "failed to parse command line")

	switch strings.Fields(ctx.Command())[0] {
	case "list":
		cfg.mode = listMode
	case "map":
		cfg.mode = mapMode
	case "config":
		cfg.mode = configMode
	case "version":
		cfg.mode = versionMode
	default:
		cfg.mode = runMode
	}
	return cfg
}

func printHelp(options kong.HelpOptions, ctx *kong.Context) error {
	if err := kong.DefaultHelpPrinter(options, ctx); err != nil {
		return err
	}
	if strings.HasPrefix(ctx.Command(), "run") {
		loggingHelp := `
Log modules:
  The --log flag accepts a comma-separated list of modules.

  Valid log modules are:
%s

  As a special case, the following values are accepted:
    - no                     Disable all logging.
    - all                    Enable all logs.
`
		var strs []string
		for _, m := range log.ModuleNames() {
			strs = append(strs, "    - "+m)
		}

		fmt.Fprintf(os.Stderr, loggingHelp, strings.Join(strs, "\n"))
	}

	return nil
}

type logModMask log.ModuleMask

// Decode decodes a comma-separated list of module names into a module mask.
//
// Implements kong.MapperValue interface.
func (lm logModMask) Decode(ctx *kong.DecodeContext) error {
	return log.EnableModules(ctx.Scan.Pop().Value.(string))
}

type outfile struct {
	w     io.Writer
	name  string
	close func() error
}

// Decode decodes FILE|stdout|stderr into an io.WriteCloser
// that writes to that file.
//
// Implements kong.MapperValue interface.
func (f *outfile) Decode(ctx *kong.DecodeContext) error {
	tok := ctx.Scan.Pop()
	f.name = tok.Value.(string)
	f.close = func() error { return nil }

	switch f.name {
	case "stdout":
		f.w = os.Stdout
	case "stderr":
		f.w = os.Stderr
	default:
		fd, err := os.Create(f.name)
		if err != nil {
			return err
		}
		f.w = fd
		f.close = fd.Close
	}
	return nil
}

func (f *outfile) String() string              { return f.name }
func (f *outfile) Write(p []byte) (int, error) { return f.w.Write(p) }
func (f *outfile) Close() error                { return f.close() }

func checkf(err error, format string, args ...any) {
	if err == nil {
		return
	}
	fatalf(format+".\n"+err.Error(), args...)
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "fatal error:")
	fmt.Fprintf(os.Stderr, "\n\t%s\n", fmt.Sprintf(format, args...))
	os.Exit(1)
}
