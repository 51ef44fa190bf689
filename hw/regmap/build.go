package regmap

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/chaseadam/gateware/emu/log"
	"github.com/chaseadam/gateware/hw/svd"
)

// ErrMalformed is matched by every MalformedError.
var ErrMalformed = errors.New("malformed description")

// Reason classifies why a description was rejected.
type Reason string

const (
	InvalidName       Reason = "invalid name"
	DuplicateName     Reason = "duplicate name"
	DuplicateBase     Reason = "duplicate base address"
	InvalidSize       Reason = "invalid size"
	FieldOverlap      Reason = "overlapping fields"
	FieldExceedsWidth Reason = "field exceeds register width"
	InvalidAccess     Reason = "invalid access"
	InvalidEnum       Reason = "invalid enumerated value"
	ResetExceedsWidth Reason = "reset value exceeds register width"
	Unsupported       Reason = "unsupported construct"
	UnknownDerivation Reason = "unknown derivation"
)

// A MalformedError reports a description violating a register map
// invariant. Empty path elements are omitted.
type MalformedError struct {
	Peripheral string
	Register   string
	Field      string
	Reason     Reason
	Detail     string
}

func (e *MalformedError) Error() string {
	var path []string
	for _, s := range []string{e.Peripheral, e.Register, e.Field} {
		if s != "" {
			path = append(path, s)
		}
	}
	msg := fmt.Sprintf("%s: %s: %s", ErrMalformed, strings.Join(path, "."), e.Reason)
	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}
	return msg
}

func (e *MalformedError) Is(target error) bool { return target == ErrMalformed }

var identRx = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ValidName reports whether s can be used as a peripheral, register, field
// or enumerated value name.
func ValidName(s string) bool { return identRx.MatchString(s) }

type builder struct {
	src    *svd.Device
	byName map[string]*svd.Peripheral
}

// Build validates a decoded description and returns its register map. No
// partial map is returned on failure.
func Build(d *svd.Device) (*Device, error) {
	b := &builder{src: d, byName: make(map[string]*svd.Peripheral)}

	dev := &Device{Name: d.Name, Description: collapse(d.Description)}
	bases := make(map[uint32]string)

	for _, sp := range d.Peripherals {
		if !ValidName(sp.Name) {
			return nil, &MalformedError{Peripheral: sp.Name, Reason: InvalidName}
		}
		if _, dup := b.byName[sp.Name]; dup {
			return nil, &MalformedError{Peripheral: sp.Name, Reason: DuplicateName}
		}
		b.byName[sp.Name] = sp
	}

	for _, sp := range d.Peripherals {
		p, err := b.peripheral(sp)
		if err != nil {
			return nil, err
		}
		if other, dup := bases[p.BaseAddress]; dup {
			return nil, &MalformedError{
				Peripheral: p.Name,
				Reason:     DuplicateBase,
				Detail:     fmt.Sprintf("%#08x already used by %s", p.BaseAddress, other),
			}
		}
		bases[p.BaseAddress] = p.Name
		dev.Peripherals = append(dev.Peripherals, p)

		log.ModMap.DebugZ("peripheral").
			String("name", p.Name).
			Hex32("base", p.BaseAddress).
			Int("regs", len(p.Registers)).
			End()
	}
	return dev, nil
}

// registersOf returns the registers of sp, following derivedFrom links.
func (b *builder) registersOf(sp *svd.Peripheral, seen map[string]bool) ([]*svd.Register, svd.RegisterProperties, error) {
	if sp.DerivedFrom == nil || len(sp.Registers) > 0 {
		return sp.Registers, sp.RegisterProperties, nil
	}
	from := *sp.DerivedFrom
	src, ok := b.byName[from]
	if !ok || seen[from] {
		return nil, svd.RegisterProperties{}, &MalformedError{
			Peripheral: sp.Name,
			Reason:     UnknownDerivation,
			Detail:     "derivedFrom " + from,
		}
	}
	seen[sp.Name] = true
	regs, props, err := b.registersOf(src, seen)
	if err != nil {
		return nil, props, err
	}
	return regs, sp.RegisterProperties.Inherit(props), nil
}

func (b *builder) peripheral(sp *svd.Peripheral) (*Peripheral, error) {
	if sp.Dim != nil {
		return nil, &MalformedError{Peripheral: sp.Name, Reason: Unsupported, Detail: "dim"}
	}
	if len(sp.Clusters) > 0 {
		return nil, &MalformedError{Peripheral: sp.Name, Reason: Unsupported, Detail: "cluster"}
	}
	if sp.BaseAddress > 0xFFFF_FFFF {
		return nil, &MalformedError{
			Peripheral: sp.Name,
			Reason:     InvalidSize,
			Detail:     fmt.Sprintf("base address %#x beyond 32 bits", uint64(sp.BaseAddress)),
		}
	}

	sregs, props, err := b.registersOf(sp, map[string]bool{})
	if err != nil {
		return nil, err
	}
	props = props.Inherit(b.src.RegisterProperties)

	p := &Peripheral{
		Name:        sp.Name,
		Description: collapse(sp.Description),
		BaseAddress: uint32(sp.BaseAddress),
	}
	names := make(map[string]bool)
	for _, sr := range sregs {
		r, err := register(sr, props)
		if err != nil {
			err.Peripheral = p.Name
			return nil, err
		}
		if names[r.Name] {
			return nil, &MalformedError{Peripheral: p.Name, Register: r.Name, Reason: DuplicateName}
		}
		if end := uint64(p.BaseAddress) + uint64(r.Offset) + uint64(r.Size/8); end > 1<<32 {
			return nil, &MalformedError{
				Peripheral: p.Name,
				Register:   r.Name,
				Reason:     InvalidSize,
				Detail:     fmt.Sprintf("%#x+%#x beyond 32-bit address space", p.BaseAddress, r.Offset),
			}
		}
		names[r.Name] = true
		p.Registers = append(p.Registers, r)
	}
	return p, nil
}

func register(sr *svd.Register, outer svd.RegisterProperties) (*Register, *MalformedError) {
	malformed := func(reason Reason, format string, args ...any) *MalformedError {
		return &MalformedError{Register: sr.Name, Reason: reason, Detail: fmt.Sprintf(format, args...)}
	}

	if !ValidName(sr.Name) {
		return nil, malformed(InvalidName, "")
	}
	if sr.Dim != nil {
		return nil, malformed(Unsupported, "dim")
	}
	if sr.DerivedFrom != nil {
		return nil, malformed(Unsupported, "register derivedFrom")
	}

	if sr.AddressOffset > 0xFFFF_FFFF {
		return nil, malformed(InvalidSize, "offset %#x beyond 32 bits", uint64(sr.AddressOffset))
	}

	props := sr.RegisterProperties.Inherit(outer)
	r := &Register{
		Name:        sr.Name,
		Description: collapse(sr.Description),
		Offset:      uint32(sr.AddressOffset),
		Size:        32,
		Access:      ReadWrite,
	}
	if props.Size != nil {
		r.Size = uint(*props.Size)
	}
	switch r.Size {
	case 8, 16, 32, 64:
	default:
		return nil, malformed(InvalidSize, "%d bits", r.Size)
	}
	if uint(sr.AddressOffset)%(r.Size/8) != 0 {
		return nil, malformed(InvalidSize, "offset %#x not aligned on %d bits", uint64(sr.AddressOffset), r.Size)
	}
	if props.Access != nil {
		acc, ok := ParseAccess(*props.Access)
		if !ok {
			return nil, malformed(InvalidAccess, "%q", *props.Access)
		}
		r.Access = acc
	}
	if props.ResetValue != nil {
		r.ResetValue = uint64(*props.ResetValue)
	}
	if r.Size < 64 && r.ResetValue>>r.Size != 0 {
		return nil, malformed(ResetExceedsWidth, "%#x in %d bits", r.ResetValue, r.Size)
	}

	var used uint64
	names := make(map[string]bool)
	for _, sf := range sr.Fields {
		f, err := field(sf, r)
		if err != nil {
			err.Register = r.Name
			return nil, err
		}
		if names[f.Name] {
			return nil, &MalformedError{Register: r.Name, Field: f.Name, Reason: DuplicateName}
		}
		names[f.Name] = true
		if used&f.Mask() != 0 {
			return nil, &MalformedError{Register: r.Name, Field: f.Name, Reason: FieldOverlap}
		}
		used |= f.Mask()
		r.Fields = append(r.Fields, f)
	}
	return r, nil
}

func field(sf *svd.Field, r *Register) (*Field, *MalformedError) {
	malformed := func(reason Reason, format string, args ...any) *MalformedError {
		return &MalformedError{Field: sf.Name, Reason: reason, Detail: fmt.Sprintf(format, args...)}
	}

	if !ValidName(sf.Name) {
		return nil, malformed(InvalidName, "")
	}
	if sf.Dim != nil {
		return nil, malformed(Unsupported, "dim")
	}
	if sf.DerivedFrom != nil {
		return nil, malformed(Unsupported, "field derivedFrom")
	}

	off, width, err := sf.Bits()
	if err != nil {
		return nil, malformed(FieldExceedsWidth, "%v", err)
	}
	if width == 0 {
		return nil, malformed(FieldExceedsWidth, "zero width")
	}
	if width > r.Size || off > r.Size-width {
		return nil, malformed(FieldExceedsWidth, "offset %d width %d in %d bits", off, width, r.Size)
	}

	f := &Field{
		Name:        sf.Name,
		Description: collapse(sf.Description),
		Offset:      off,
		Width:       width,
		Access:      r.Access,
	}
	if sf.Access != nil {
		acc, ok := ParseAccess(*sf.Access)
		if !ok {
			return nil, malformed(InvalidAccess, "%q", *sf.Access)
		}
		if !compatible(r.Access, acc) {
			return nil, malformed(InvalidAccess, "%s field in %s register", acc, r.Access)
		}
		f.Access = acc
	}

	names := make(map[string]bool)
	values := make(map[uint64]string)
	for _, evs := range sf.EnumeratedValues {
		if evs.DerivedFrom != nil {
			return nil, malformed(Unsupported, "enumeratedValues derivedFrom")
		}
		for _, ev := range evs.EnumeratedValue {
			if ev.Value == nil && ev.IsDefault != nil && *ev.IsDefault {
				continue
			}
			if !ValidName(ev.Name) {
				return nil, malformed(InvalidEnum, "name %q", ev.Name)
			}
			v, err := ev.Val()
			if err != nil {
				return nil, malformed(InvalidEnum, "%s: %v", ev.Name, err)
			}
			if width < 64 && v>>width != 0 {
				return nil, malformed(InvalidEnum, "%s = %#x exceeds %d bits", ev.Name, v, width)
			}
			if names[ev.Name] {
				return nil, malformed(InvalidEnum, "duplicate name %s", ev.Name)
			}
			if other, dup := values[v]; dup {
				return nil, malformed(InvalidEnum, "%s and %s share value %#x", other, ev.Name, v)
			}
			names[ev.Name] = true
			values[v] = ev.Name
			f.Enum = append(f.Enum, EnumValue{
				Name:        ev.Name,
				Description: collapse(ev.Description),
				Value:       v,
			})
		}
	}
	return f, nil
}

// collapse folds the whitespace of multi-line SVD descriptions.
func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
