package regmap

import (
	"testing"

	"github.com/go-faster/jx"
	"github.com/google/go-cmp/cmp"
)

func TestEncode(t *testing.T) {
	dev, err := Build(mustDecode(t, validSVD))
	if err != nil {
		t.Fatal(err)
	}

	var e jx.Encoder
	dev.Encode(&e)

	// Collect "peripheral.register.field" paths and register addresses.
	var paths []string
	addrs := map[string]string{}
	d := jx.DecodeBytes(e.Bytes())
	err = d.Obj(func(d *jx.Decoder, key string) error {
		if key != "peripherals" {
			return d.Skip()
		}
		return d.Arr(func(d *jx.Decoder) error {
			var pname string
			return d.Obj(func(d *jx.Decoder, key string) error {
				switch key {
				case "name":
					s, err := d.Str()
					pname = s
					return err
				case "registers":
					return d.Arr(func(d *jx.Decoder) error {
						var rname string
						return d.Obj(func(d *jx.Decoder, key string) error {
							switch key {
							case "name":
								s, err := d.Str()
								rname = pname + "." + s
								return err
							case "addr":
								s, err := d.Str()
								addrs[rname] = s
								return err
							case "fields":
								return d.Arr(func(d *jx.Decoder) error {
									return d.Obj(func(d *jx.Decoder, key string) error {
										if key != "name" {
											return d.Skip()
										}
										s, err := d.Str()
										paths = append(paths, rname+"."+s)
										return err
									})
								})
							}
							return d.Skip()
						})
					})
				}
				return d.Skip()
			})
		})
	})
	if err != nil {
		t.Fatalf("invalid JSON %s: %v", e.Bytes(), err)
	}

	wantPaths := []string{
		"SPIMASTER.control.go", "SPIMASTER.control.tip", "SPIMASTER.control.mode", "SPIMASTER.rx.rx",
		"SPIMASTER2.control.go", "SPIMASTER2.control.tip", "SPIMASTER2.control.mode", "SPIMASTER2.rx.rx",
	}
	if diff := cmp.Diff(wantPaths, paths); diff != "" {
		t.Errorf("fields mismatch (-want +got):\n%s", diff)
	}
	wantAddrs := map[string]string{
		"SPIMASTER.control":  "0xf0001000",
		"SPIMASTER.rx":       "0xf000100c",
		"SPIMASTER2.control": "0xf0005000",
		"SPIMASTER2.rx":      "0xf000500c",
	}
	if diff := cmp.Diff(wantAddrs, addrs); diff != "" {
		t.Errorf("addresses mismatch (-want +got):\n%s", diff)
	}
}
