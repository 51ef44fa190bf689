// Package pacgen generates the peripheral access code of a device: a Go
// package exposing one typed handle per peripheral, register and bit-field of
// a register map.
package pacgen

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"go/format"
	"strings"

	"github.com/chaseadam/gateware/emu/log"
	"github.com/chaseadam/gateware/hw/regmap"
)

// DefaultImport is the import path of the register access runtime.
const DefaultImport = "github.com/chaseadam/gateware/hw/hwio"

//go:embed templates/preamble.go
var preamble string

// DefaultDeny lists the lines that the preamble template carries to exclude
// itself from builds and linters. They must not reach generated code.
var DefaultDeny = []string{
	"//go:build ignore",
	"// +build ignore",
	"//lint:file-ignore U1000 generated accessors may be unused",
}

// Options configure code generation.
type Options struct {
	Package string   // package name of the generated file
	Import  string   // import path of hwio, DefaultImport if empty
	Source  string   // name of the description file, for the header
	Deny    []string // lines to strip in addition to DefaultDeny
}

func (o Options) withDefaults() Options {
	if o.Package == "" {
		o.Package = "pac"
	}
	if o.Import == "" {
		o.Import = DefaultImport
	}
	if o.Source == "" {
		o.Source = "description"
	}
	return o
}

func (o Options) deny() []string {
	return append(append([]string(nil), DefaultDeny...), o.Deny...)
}

// Stage is a step of the generation pipeline.
type Stage string

const (
	StageRead     Stage = "read"
	StageDecode   Stage = "decode"
	StageModel    Stage = "model"
	StageGenerate Stage = "generate"
	StageFormat   Stage = "format"
	StageWrite    Stage = "write"
)

// A StageError reports the pipeline stage that failed.
type StageError struct {
	Stage Stage
	Path  string // file involved, if any
	Err   error
}

func (e *StageError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("pacgen: %s: %v", e.Stage, e.Err)
	}
	return fmt.Sprintf("pacgen: %s %s: %v", e.Stage, e.Path, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

// ErrNameCollision is reported when two distinct names of the register map
// map to the same Go identifier.
var ErrNameCollision = errors.New("name collision")

// Generate returns the formatted source of the access package for dev.
// Output only depends on dev and opts.
func Generate(dev *regmap.Device, opts Options) ([]byte, error) {
	opts = opts.withDefaults()

	var raw bytes.Buffer
	g := &Generator{Writer: &raw, opts: opts}
	if err := g.device(dev); err != nil {
		return nil, &StageError{Stage: StageGenerate, Err: err}
	}

	var stripped bytes.Buffer
	n, err := Strip(&stripped, &raw, opts.deny())
	if err != nil {
		return nil, &StageError{Stage: StageGenerate, Err: err}
	}

	src, err := format.Source(stripped.Bytes())
	if err != nil {
		return nil, &StageError{Stage: StageFormat, Err: err}
	}

	log.ModGen.DebugZ("generated").
		String("device", dev.Name).
		Int("stripped", n).
		Int("bytes", len(src)).
		End()
	return src, nil
}

func expandPreamble(opts Options, dev *regmap.Device) string {
	r := strings.NewReplacer(
		"_SOURCE_", opts.Source,
		"_PACKAGE_", opts.Package,
		"_DEVICE_", dev.Name,
		"_HWIO_", opts.Import,
	)
	return r.Replace(preamble)
}
