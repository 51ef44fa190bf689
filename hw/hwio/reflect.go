package hwio

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

type bankReg struct {
	regPtr any
	offset uint32
}

var (
	typeReg32  = reflect.TypeFor[Reg32]()
	typeMem    = reflect.TypeFor[Mem]()
	typeDevice = reflect.TypeFor[Device]()
)

// hwioTag holds the parsed content of a "hwio" struct tag.
type hwioTag map[string]string

func parseTag(tag string) (hwioTag, error) {
	opts := make(hwioTag)
	for _, opt := range strings.Split(tag, ",") {
		opt = strings.TrimSpace(opt)
		if opt == "" {
			continue
		}
		k, v, _ := strings.Cut(opt, "=")
		switch k {
		case "offset", "bank", "reset", "rwmask", "size", "vsize",
			"readonly", "writeonly", "rcb", "wcb", "pcb":
		default:
			return nil, fmt.Errorf("unknown hwio option %q", k)
		}
		opts[k] = v
	}
	return opts, nil
}

func (t hwioTag) has(key string) bool {
	_, ok := t[key]
	return ok
}

func (t hwioTag) uint(key string, bits int) (uint64, bool, error) {
	s, ok := t[key]
	if !ok {
		return 0, false, nil
	}
	v, err := strconv.ParseUint(s, 0, bits)
	if err != nil {
		return 0, false, fmt.Errorf("invalid %s=%q: %w", key, s, err)
	}
	return v, true, nil
}

// callback returns the method of the bank named after the callback option
// (or defaultName if the option has no explicit name).
func callback(bank reflect.Value, tag hwioTag, key, defaultName string, dst any) error {
	name, ok := tag[key]
	if !ok {
		return nil
	}
	if name == "" {
		name = defaultName
	}
	meth := bank.MethodByName(name)
	if !meth.IsValid() {
		return fmt.Errorf("%s: method %s not found on %s", key, name, bank.Type())
	}
	dv := reflect.ValueOf(dst).Elem()
	if !meth.Type().AssignableTo(dv.Type()) {
		return fmt.Errorf("%s: method %s has type %s, want %s", key, name, meth.Type(), dv.Type())
	}
	dv.Set(meth)
	return nil
}

// MustInitRegs is like InitRegs but panics on error.
func MustInitRegs(data any) {
	if err := InitRegs(data); err != nil {
		panic(err)
	}
}

// InitRegs initializes every Reg32, Mem and Device field of the struct
// pointed to by data, following the "hwio" struct tags:
//
//	reset=0x12      Reset value of the register.
//	rwmask=0xF0     Writable bits of the register (default: all).
//	readonly        Writes are rejected (and logged).
//	writeonly       Reads are rejected (and logged).
//	size=0x100      Size of a Mem buffer or of a Device range.
//	vsize=0x200     Mapped size of a Mem (mirrored), defaults to size.
//	rcb[=Name]      Read callback, default method name Read<FIELD>.
//	wcb[=Name]      Write callback, default method name Write<FIELD>.
//	pcb[=Name]      Peek callback, default method name Peek<FIELD>.
//
// Callbacks are methods of data, FIELD is the upper-cased field name.
func InitRegs(data any) error {
	val := reflect.ValueOf(data)
	if val.Kind() != reflect.Pointer || val.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("InitRegs: want pointer to struct, got %T", data)
	}
	sv := val.Elem()
	st := sv.Type()

	for i := range st.NumField() {
		sf := st.Field(i)
		tagstr, ok := sf.Tag.Lookup("hwio")
		if !ok {
			continue
		}
		tag, err := parseTag(tagstr)
		if err != nil {
			return fmt.Errorf("%s.%s: %w", st.Name(), sf.Name, err)
		}

		upper := strings.ToUpper(sf.Name)
		fv := sv.Field(i)
		switch sf.Type {
		case typeReg32:
			err = initReg32(val, fv.Addr().Interface().(*Reg32), sf.Name, upper, tag)
		case typeMem:
			err = initMem(val, fv.Addr().Interface().(*Mem), sf.Name, upper, tag)
		case typeDevice:
			err = initDevice(val, fv.Addr().Interface().(*Device), sf.Name, upper, tag)
		default:
			err = fmt.Errorf("invalid reg type: %s", sf.Type)
		}
		if err != nil {
			return fmt.Errorf("%s.%s: %w", st.Name(), sf.Name, err)
		}
	}
	return nil
}

func rwflags(tag hwioTag) (RWFlags, error) {
	var flags RWFlags
	if tag.has("readonly") {
		flags |= ReadOnlyFlag
	}
	if tag.has("writeonly") {
		flags |= WriteOnlyFlag
	}
	if flags == ReadOnlyFlag|WriteOnlyFlag {
		return 0, errors.New("readonly and writeonly are mutually exclusive")
	}
	return flags, nil
}

func initReg32(bank reflect.Value, reg *Reg32, name, upper string, tag hwioTag) error {
	reg.Name = name
	reset, _, err := tag.uint("reset", 32)
	if err != nil {
		return err
	}
	reg.Value = uint32(reset)

	rwmask, ok, err := tag.uint("rwmask", 32)
	if err != nil {
		return err
	}
	if ok {
		reg.RoMask = ^uint32(rwmask)
	}

	if reg.Flags, err = rwflags(tag); err != nil {
		return err
	}
	if err := callback(bank, tag, "rcb", "Read"+upper, &reg.ReadCb); err != nil {
		return err
	}
	if err := callback(bank, tag, "pcb", "Peek"+upper, &reg.PeekCb); err != nil {
		return err
	}
	return callback(bank, tag, "wcb", "Write"+upper, &reg.WriteCb)
}

func initMem(bank reflect.Value, mem *Mem, name, upper string, tag hwioTag) error {
	mem.Name = name
	size, ok, err := tag.uint("size", 32)
	if err != nil {
		return err
	}
	if !ok || size == 0 {
		return errors.New("size not specified")
	}
	mem.Data = make([]byte, size)
	mem.VSize = int(size)

	vsize, ok, err := tag.uint("vsize", 32)
	if err != nil {
		return err
	}
	if ok {
		if vsize < size {
			return fmt.Errorf("vsize %#x smaller than size %#x", vsize, size)
		}
		mem.VSize = int(vsize)
	}

	if tag.has("readonly") {
		mem.Flags |= MemFlagReadOnly
	}
	return callback(bank, tag, "wcb", "Write"+upper, &mem.WriteCb)
}

func initDevice(bank reflect.Value, dev *Device, name, upper string, tag hwioTag) error {
	dev.Name = name
	size, ok, err := tag.uint("size", 32)
	if err != nil {
		return err
	}
	if !ok || size == 0 {
		return errors.New("size not specified")
	}
	dev.Size = int(size)

	if dev.Flags, err = rwflags(tag); err != nil {
		return err
	}
	if err := callback(bank, tag, "rcb", "Read"+upper, &dev.ReadCb); err != nil {
		return err
	}
	if err := callback(bank, tag, "pcb", "Peek"+upper, &dev.PeekCb); err != nil {
		return err
	}
	return callback(bank, tag, "wcb", "Write"+upper, &dev.WriteCb)
}

func bankGetRegs(bank any, bankNum int) ([]bankReg, error) {
	val := reflect.ValueOf(bank)
	if val.Kind() != reflect.Pointer || val.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("bank: want pointer to struct, got %T", bank)
	}
	sv := val.Elem()
	st := sv.Type()

	var regs []bankReg
	for i := range st.NumField() {
		sf := st.Field(i)
		tagstr, ok := sf.Tag.Lookup("hwio")
		if !ok {
			continue
		}
		tag, err := parseTag(tagstr)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", st.Name(), sf.Name, err)
		}
		offset, ok, err := tag.uint("offset", 32)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", st.Name(), sf.Name, err)
		}
		if !ok {
			continue
		}
		num, _, err := tag.uint("bank", 16)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", st.Name(), sf.Name, err)
		}
		if int(num) != bankNum {
			continue
		}
		regs = append(regs, bankReg{
			regPtr: sv.Field(i).Addr().Interface(),
			offset: uint32(offset),
		})
	}
	return regs, nil
}
