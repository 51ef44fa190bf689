package log

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestModuleByName(t *testing.T) {
	for _, name := range ModuleNames() {
		mod, ok := ModuleByName(name)
		if !ok || mod.String() != name {
			t.Errorf("ModuleByName(%q) = %v, %v", name, mod, ok)
		}
	}
	if _, ok := ModuleByName("<error>"); ok {
		t.Errorf("ModuleByName(<error>) succeeded")
	}
	if got := Module(200).String(); got != "<error>" {
		t.Errorf("Module(200).String() = %q", got)
	}
}

func TestZFieldValue(t *testing.T) {
	tests := []struct {
		f    ZField
		want string
	}{
		{ZField{Type: FieldTypeBool, Boolean: true}, "true"},
		{ZField{Type: FieldTypeString, String: "abc"}, "abc"},
		{ZField{Type: FieldTypeInt, Integer: uint64(0xFFFFFFFFFFFFFFFF)}, "-1"},
		{ZField{Type: FieldTypeUint, Integer: 42}, "42"},
		{ZField{Type: FieldTypeHex8, Integer: 0x1ab}, "ab"},
		{ZField{Type: FieldTypeHex16, Integer: 0xb}, "000b"},
		{ZField{Type: FieldTypeHex32, Integer: 0xf0001000}, "f0001000"},
		{ZField{Type: FieldTypeHex64, Integer: 1}, "0000000000000001"},
		{ZField{Type: FieldTypeError, Error: errors.New("oops")}, "oops"},
		{ZField{Type: FieldTypeError}, "<nil>"},
		{ZField{Type: FieldTypeDuration, Duration: 1500 * time.Millisecond}, "1.5s"},
		{ZField{Type: FieldTypeStringer, Interface: ModSPI}, "spi"},
		{ZField{Type: FieldTypeWords, Words: []uint32{0xf0f, 0xf055}}, "[00000f0f 0000f055]"},
		{ZField{Type: FieldTypeWords}, "[]"},
		{ZField{}, ""},
	}
	for _, tt := range tests {
		if got := tt.f.Value(); got != tt.want {
			t.Errorf("Value(%+v) = %q, want %q", tt.f, got, tt.want)
		}
	}
}

func TestEntryZDisabled(t *testing.T) {
	DisableDebugModules(ModGen.Mask())
	z := ModGen.DebugZ("not shown")
	if z != nil {
		t.Fatalf("DebugZ on a non-debug module returned an entry")
	}
	// Chains on a nil entry are no-ops.
	z.String("k", "v").Hex32("a", 1).Error("err", nil).End()
}

func TestEntryZOutput(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)

	EnableDebugModules(ModGen.Mask())
	defer DisableDebugModules(ModGen.Mask())

	if !ModGen.Enabled(DebugLevel) || ModMap.Enabled(DebugLevel) {
		t.Fatalf("unexpected enabled modules")
	}

	ModGen.DebugZ("generated").String("out", "pac.go").Hex16("crc", 0xbeef).End()
	ModMap.DebugZ("hidden").End()
	ModMap.WarnZ("shown").Int("n", 3).End()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2:\n%s", len(lines), buf.String())
	}
	var got [][]string
	for _, l := range lines {
		var keep []string
		for _, kv := range strings.Fields(l) {
			if !strings.HasPrefix(kv, "time=") {
				keep = append(keep, kv)
			}
		}
		got = append(got, keep)
	}
	want := [][]string{
		{"level=debug", "msg=generated", "_mod=gen", "crc=beef", "out=pac.go"},
		{"level=warning", "msg=shown", "_mod=regmap", "n=3"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestEnableModules(t *testing.T) {
	defer DisableDebugModules(ModSPI.Mask() | ModMap.Mask())

	if err := EnableModules("spi,regmap"); err != nil {
		t.Fatal(err)
	}
	if !ModSPI.Enabled(DebugLevel) || !ModMap.Enabled(DebugLevel) {
		t.Errorf("spi,regmap not enabled")
	}

	for _, list := range []string{"bogus", "all,no", "no,spi"} {
		if err := EnableModules(list); err == nil {
			t.Errorf("EnableModules(%q) succeeded", list)
		}
	}
}
