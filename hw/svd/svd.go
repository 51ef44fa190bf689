// Package svd decodes CMSIS-SVD hardware descriptions.
//
// Only the subset needed to describe memory-mapped peripherals is decoded:
// peripherals, registers, fields and enumerated values, along with the
// register property group inherited from the outer levels.
package svd

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ErrNotUTF8 is returned by Decode when the description is not valid UTF-8.
var ErrNotUTF8 = errors.New("svd file wasn't valid utf8")

// ErrNilValue is returned by EnumeratedValue.Val for a value-less entry.
var ErrNilValue = errors.New("nil value")

type Uint uint64

func (u *Uint) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var s string
	if err := d.DecodeElement(&s, &start); err != nil {
		return err
	}
	v, err := parseUint(s)
	*u = Uint(v)
	return err
}

func parseUint(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	if rest, ok := strings.CutPrefix(s, "#"); ok {
		// binary #1011, with 'x' as "do not care"
		s = "0b" + strings.ReplaceAll(rest, "x", "0")
	}
	return strconv.ParseUint(s, 0, 64)
}

type Device struct {
	Name        string `xml:"name"`
	Version     string `xml:"version"`
	Description string `xml:"description"`
	Width       Uint   `xml:"width"`
	RegisterProperties
	Peripherals []*Peripheral `xml:"peripherals>peripheral"`
}

// RegisterProperties holds the properties that registers inherit from their
// peripheral and device.
type RegisterProperties struct {
	Size       *Uint   `xml:"size"`
	Access     *string `xml:"access"`
	ResetValue *Uint   `xml:"resetValue"`
	ResetMask  *Uint   `xml:"resetMask"`
}

// Inherit fills the properties left unset in p from outer.
func (p RegisterProperties) Inherit(outer RegisterProperties) RegisterProperties {
	if p.Size == nil {
		p.Size = outer.Size
	}
	if p.Access == nil {
		p.Access = outer.Access
	}
	if p.ResetValue == nil {
		p.ResetValue = outer.ResetValue
	}
	if p.ResetMask == nil {
		p.ResetMask = outer.ResetMask
	}
	return p
}

type Peripheral struct {
	DerivedFrom *string `xml:"derivedFrom,attr"`
	Dim         *Uint   `xml:"dim"`
	Name        string  `xml:"name"`
	Description string  `xml:"description"`
	GroupName   string  `xml:"groupName"`
	BaseAddress Uint    `xml:"baseAddress"`
	RegisterProperties
	Registers []*Register `xml:"registers>register"`
	Clusters  []*Cluster  `xml:"registers>cluster"`
}

type Cluster struct {
	Name string `xml:"name"`
}

type Register struct {
	DerivedFrom   *string `xml:"derivedFrom,attr"`
	Dim           *Uint   `xml:"dim"`
	Name          string  `xml:"name"`
	Description   string  `xml:"description"`
	AddressOffset Uint    `xml:"addressOffset"`
	RegisterProperties
	Fields []*Field `xml:"fields>field"`
}

type Field struct {
	DerivedFrom *string `xml:"derivedFrom,attr"`
	Dim         *Uint   `xml:"dim"`
	Name        string  `xml:"name"`
	Description string  `xml:"description"`

	BitOffset *Uint   `xml:"bitOffset"`
	BitWidth  *Uint   `xml:"bitWidth"`
	LSB       *Uint   `xml:"lsb"`
	MSB       *Uint   `xml:"msb"`
	BitRange  *string `xml:"bitRange"`

	Access           *string             `xml:"access"`
	EnumeratedValues []*EnumeratedValues `xml:"enumeratedValues"`
}

// Bits returns the position of the field, whichever of the three SVD forms
// (bitOffset/bitWidth, lsb/msb, [msb:lsb]) describes it.
func (f *Field) Bits() (offset, width uint, err error) {
	switch {
	case f.BitOffset != nil:
		w := Uint(1)
		if f.BitWidth != nil {
			w = *f.BitWidth
		}
		return uint(*f.BitOffset), uint(w), nil
	case f.LSB != nil && f.MSB != nil:
		return lsbmsb(uint64(*f.LSB), uint64(*f.MSB))
	case f.BitRange != nil:
		r := strings.TrimSpace(*f.BitRange)
		if !strings.HasPrefix(r, "[") || !strings.HasSuffix(r, "]") {
			return 0, 0, fmt.Errorf("invalid bitRange %q", r)
		}
		hi, lo, ok := strings.Cut(r[1:len(r)-1], ":")
		if !ok {
			return 0, 0, fmt.Errorf("invalid bitRange %q", r)
		}
		msb, err := parseUint(hi)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid bitRange %q: %w", r, err)
		}
		lsb, err := parseUint(lo)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid bitRange %q: %w", r, err)
		}
		return lsbmsb(lsb, msb)
	}
	return 0, 0, errors.New("no bit position")
}

func lsbmsb(lsb, msb uint64) (offset, width uint, err error) {
	if msb < lsb {
		return 0, 0, fmt.Errorf("msb %d below lsb %d", msb, lsb)
	}
	return uint(lsb), uint(msb - lsb + 1), nil
}

type EnumeratedValues struct {
	DerivedFrom     *string            `xml:"derivedFrom,attr"`
	Name            *string            `xml:"name"`
	Usage           *string            `xml:"usage"`
	EnumeratedValue []*EnumeratedValue `xml:"enumeratedValue"`
}

type EnumeratedValue struct {
	Name        string  `xml:"name"`
	Description string  `xml:"description"`
	Value       *string `xml:"value"`
	IsDefault   *bool   `xml:"isDefault"`
}

func (ev *EnumeratedValue) Val() (uint64, error) {
	if ev.Value == nil {
		return 0, ErrNilValue
	}
	return parseUint(*ev.Value)
}

// Decode reads a whole description from r.
func Decode(r io.Reader) (*Device, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return DecodeBytes(data)
}

// DecodeBytes decodes a description held in memory.
func DecodeBytes(data []byte) (*Device, error) {
	if !utf8.Valid(data) {
		return nil, ErrNotUTF8
	}
	dev := new(Device)
	dec := xml.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(dev); err != nil {
		return nil, fmt.Errorf("svd: %w", err)
	}
	if dev.Name == "" {
		return nil, errors.New("svd: missing device name")
	}
	return dev, nil
}
