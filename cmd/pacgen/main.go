// Command pacgen generates the peripheral access package of a device
// described by an SVD file.
//
//	//go:generate go run github.com/chaseadam/gateware/cmd/pacgen -o pac.go -p pac soc.svd
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/spf13/afero"

	"github.com/chaseadam/gateware/emu/log"
	"github.com/chaseadam/gateware/hw/pacgen"
)

type CLI struct {
	SVD string `arg:"" name:"/path/to/svd" type:"existingfile"`

	Out     string   `name:"out" short:"o" help:"Output file." default:"pac.go" type:"path"`
	Package string   `name:"package" short:"p" help:"Package name of the generated code." default:"pac"`
	Import  string   `name:"import" short:"i" help:"Import path of the register access runtime." default:"${default_import}"`
	Deny    []string `name:"deny" help:"Strip LINE from the output, on top of the template lines." placeholder:"LINE"`
	Check   bool     `name:"check" help:"Do not write anything, fail if the output is not up to date."`

	Log logModMask `help:"Enable logging for specified modules." placeholder:"mod0,mod1,..."`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("pacgen"),
		kong.Description("Peripheral access code generator."),
		kong.UsageOnError(),
		kong.Vars{"default_import": pacgen.DefaultImport})

	if err := run(ctx, &cli, afero.NewOsFs()); err != nil {
		fmt.Fprintf(os.Stderr, "pacgen: %v\n", err)
		os.Exit(1)
	}
}

func run(kctx *kong.Context, cli *CLI, fsys afero.Fs) error {
	if kctx.Error != nil {
		return fmt.Errorf("failed to parse command line: %w", kctx.Error)
	}

	opts := pacgen.Options{
		Package: cli.Package,
		Import:  cli.Import,
		Deny:    cli.Deny,
	}

	if cli.Check {
		diff, err := pacgen.Check(fsys, cli.SVD, cli.Out, opts)
		if err != nil {
			return fmt.Errorf("generation failed: %w", err)
		}
		if diff != "" {
			fmt.Fprint(os.Stderr, diff)
			return fmt.Errorf("%s is not up to date, run go generate", cli.Out)
		}
		return nil
	}

	changed, err := pacgen.Build(fsys, cli.SVD, cli.Out, opts)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}
	if changed {
		fmt.Fprintln(os.Stderr, "wrote", cli.Out)
	}
	return nil
}

type logModMask log.ModuleMask

// Decode enables the debug logs of a comma-separated list of modules.
//
// Implements kong.MapperValue interface.
func (lm logModMask) Decode(ctx *kong.DecodeContext) error {
	return log.EnableModules(ctx.Scan.Pop().Value.(string))
}
