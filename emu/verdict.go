package emu

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-faster/jx"

	"github.com/chaseadam/gateware/harness"
)

// Verdict is what the observer found after a program terminated.
type Verdict struct {
	Name     string
	State    harness.State // how far the program went
	Passed   bool          // success bit set, failure bit clear
	Failed   bool          // failure bit set
	TimedOut bool          // halted by the watchdog
	Elapsed  time.Duration

	Reports []uint32 // words written to REPORT, in order
	Scratch []uint32 // scratch buffer
	Memory  []uint32 // first words of the RAM region

	Err        error    // program error, or why it could not run
	Mismatches []string // differences with the expectations
}

// OK reports whether the program passed, on time and as expected.
func (v Verdict) OK() bool {
	return v.Passed && !v.TimedOut && v.Err == nil && len(v.Mismatches) == 0
}

func (v Verdict) String() string {
	var sb strings.Builder
	switch {
	case v.OK():
		sb.WriteString("PASS")
	case v.TimedOut:
		sb.WriteString("TIMEOUT")
	default:
		sb.WriteString("FAIL")
	}
	fmt.Fprintf(&sb, " %s (%s, %s)", v.Name, v.State, v.Elapsed.Round(time.Microsecond))
	if v.Err != nil {
		fmt.Fprintf(&sb, "\n\terror: %v", v.Err)
	}
	for _, r := range v.Reports {
		fmt.Fprintf(&sb, "\n\treport: %08x", r)
	}
	for _, m := range v.Mismatches {
		fmt.Fprintf(&sb, "\n\tmismatch: %s", m)
	}
	return sb.String()
}

func encodeWords(e *jx.Encoder, words []uint32) {
	e.ArrStart()
	for _, w := range words {
		e.Str(fmt.Sprintf("0x%08x", w))
	}
	e.ArrEnd()
}

// Encode writes v as a JSON object.
func (v Verdict) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("name")
	e.Str(v.Name)
	e.FieldStart("ok")
	e.Bool(v.OK())
	e.FieldStart("state")
	e.Str(v.State.String())
	e.FieldStart("passed")
	e.Bool(v.Passed)
	e.FieldStart("failed")
	e.Bool(v.Failed)
	e.FieldStart("timed_out")
	e.Bool(v.TimedOut)
	e.FieldStart("elapsed_ns")
	e.Int64(v.Elapsed.Nanoseconds())
	e.FieldStart("reports")
	encodeWords(e, v.Reports)
	e.FieldStart("scratch")
	encodeWords(e, v.Scratch)
	e.FieldStart("memory")
	encodeWords(e, v.Memory)
	if v.Err != nil {
		e.FieldStart("error")
		e.Str(v.Err.Error())
	}
	if len(v.Mismatches) > 0 {
		e.FieldStart("mismatches")
		e.ArrStart()
		for _, m := range v.Mismatches {
			e.Str(m)
		}
		e.ArrEnd()
	}
	e.ObjEnd()
}

// WriteJSON writes verdicts to w as an indented JSON array.
func WriteJSON(w io.Writer, verdicts []Verdict) error {
	var e jx.Encoder
	e.SetIdent(2)
	e.ArrStart()
	for _, v := range verdicts {
		v.Encode(&e)
	}
	e.ArrEnd()
	_, err := w.Write(append(e.Bytes(), '\n'))
	return err
}
