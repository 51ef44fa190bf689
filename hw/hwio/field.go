package hwio

import (
	"errors"
	"fmt"
)

var (
	// ErrFieldWidth is matched by a FieldError caused by a value wider than
	// its field.
	ErrFieldWidth = errors.New("value does not fit field")

	// ErrEnumValue is matched by a FieldError caused by a value outside of
	// the enumerated set declared for the field.
	ErrEnumValue = errors.New("value not in enumerated set")
)

// A FieldError reports a value rejected by a register write builder.
type FieldError struct {
	Reg   string // peripheral.register
	Field string
	Width uint
	Value uint64
	Err   error // ErrFieldWidth or ErrEnumValue
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s.%s: %#x: %s (%d bits)", e.Reg, e.Field, e.Value, e.Err, e.Width)
}

func (e *FieldError) Unwrap() error { return e.Err }

// FieldWriter accumulates field values of a register write. Generated write
// builders wrap one and forward their setters to it.
//
// Values are validated as they are set. The first rejected value is kept and
// reported by Err; the caller must not issue the write in that case, so
// adjacent fields can never be corrupted by a truncated value.
type FieldWriter struct {
	reg  string
	bits uint64
	err  error
}

// NewFieldWriter starts a write of register reg from the initial value init:
// the reset value for a plain write, the value just read for a modify.
func NewFieldWriter(reg string, init uint64) FieldWriter {
	return FieldWriter{reg: reg, bits: init}
}

// Set writes x into the width bits at off.
func (fw *FieldWriter) Set(field string, off, width uint, x uint64) {
	if fw.err != nil {
		return
	}
	if !FitsField(x, width) {
		fw.err = &FieldError{Reg: fw.reg, Field: field, Width: width, Value: x, Err: ErrFieldWidth}
		return
	}
	PutField64(&fw.bits, off, width, x)
}

// SetEnum is Set for enumerated fields. valid tells whether x belongs to the
// declared set.
func (fw *FieldWriter) SetEnum(field string, off, width uint, x uint64, valid bool) {
	if fw.err != nil {
		return
	}
	if !valid {
		fw.err = &FieldError{Reg: fw.reg, Field: field, Width: width, Value: x, Err: ErrEnumValue}
		return
	}
	fw.Set(field, off, width, x)
}

// SetBit sets or clears bit n. Single bit fields cannot overflow.
func (fw *FieldWriter) SetBit(n uint, v bool) {
	if v {
		SetBit64(&fw.bits, n)
	} else {
		ClearBit64(&fw.bits, n)
	}
}

// SetRaw replaces the whole register value.
func (fw *FieldWriter) SetRaw(x uint64) {
	fw.bits = x
}

// Value returns the composed register value.
func (fw *FieldWriter) Value() uint64 { return fw.bits }

// Err returns the first rejected value, if any.
func (fw *FieldWriter) Err() error { return fw.err }
