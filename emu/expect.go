package emu

import (
	"fmt"
	"io"
	"strconv"

	"github.com/go-faster/jx"
	"github.com/spf13/afero"
)

// Expectation is what the observer checks after a program terminated.
// Nil fields are not checked.
type Expectation struct {
	Passed  *bool
	Reports []uint32
	RAM     []uint32 // expected first words of the RAM region
	Scratch []uint32
}

// Expectations maps program names to what is expected of them.
type Expectations map[string]Expectation

// Check returns the differences between v and e.
func (e Expectation) Check(v Verdict) []string {
	var diffs []string
	if e.Passed != nil && *e.Passed != v.Passed {
		diffs = append(diffs, fmt.Sprintf("passed: got %v, want %v", v.Passed, *e.Passed))
	}
	if e.Reports != nil {
		if len(e.Reports) != len(v.Reports) {
			diffs = append(diffs, fmt.Sprintf("reports: got %d words, want %d", len(v.Reports), len(e.Reports)))
		}
		diffs = append(diffs, diffWords("reports", v.Reports, e.Reports)...)
	}
	diffs = append(diffs, diffWords("ram", v.Memory, e.RAM)...)
	diffs = append(diffs, diffWords("scratch", v.Scratch, e.Scratch)...)
	return diffs
}

func diffWords(what string, got, want []uint32) []string {
	var diffs []string
	for i, w := range want {
		switch {
		case i >= len(got):
			diffs = append(diffs, fmt.Sprintf("%s[%d]: missing, want %#08x", what, i, w))
		case got[i] != w:
			diffs = append(diffs, fmt.Sprintf("%s[%d]: got %#08x, want %#08x", what, i, got[i], w))
		}
	}
	return diffs
}

// LoadExpectations reads the expectations file at path.
//
//	{
//	  "spi-basic": {
//	    "passed": true,
//	    "reports": ["0xff00"],
//	    "ram": [3855, "0xf055"]
//	  }
//	}
//
// Words are JSON numbers or strings in Go integer syntax.
func LoadExpectations(fsys afero.Fs, path string) (Expectations, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	exp, err := DecodeExpectations(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return exp, nil
}

// DecodeExpectations decodes expectations from r, see LoadExpectations.
func DecodeExpectations(r io.Reader) (Expectations, error) {
	exp := make(Expectations)
	d := jx.Decode(r, 4096)
	err := d.Obj(func(d *jx.Decoder, name string) error {
		e, err := decodeExpectation(d)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		exp[name] = e
		return nil
	})
	if err != nil {
		return nil, err
	}
	return exp, nil
}

func decodeExpectation(d *jx.Decoder) (Expectation, error) {
	var e Expectation
	err := d.Obj(func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "passed":
			var b bool
			b, err = d.Bool()
			e.Passed = &b
		case "reports":
			e.Reports, err = decodeWords(d)
		case "ram":
			e.RAM, err = decodeWords(d)
		case "scratch":
			e.Scratch, err = decodeWords(d)
		default:
			return fmt.Errorf("unknown key %q", key)
		}
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		return nil
	})
	return e, err
}

func decodeWords(d *jx.Decoder) ([]uint32, error) {
	words := []uint32{}
	err := d.Arr(func(d *jx.Decoder) error {
		w, err := decodeWord(d)
		if err != nil {
			return err
		}
		words = append(words, w)
		return nil
	})
	return words, err
}

func decodeWord(d *jx.Decoder) (uint32, error) {
	if d.Next() != jx.String {
		return d.UInt32()
	}
	s, err := d.Str()
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, err
	}
	return uint32(v), nil
}
