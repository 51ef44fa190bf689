package emu

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/kirsle/configdir"

	"github.com/chaseadam/gateware/emu/log"
	"github.com/chaseadam/gateware/hw"
)

type Config struct {
	SoC     hw.Config     `toml:"soc"`
	Harness HarnessConfig `toml:"harness"`

	// TraceOut, if set, receives every bus access of the programs.
	TraceOut io.Writer `toml:"-"`
}

type HarnessConfig struct {
	// Watchdog is how long a program may run before the simulator halts
	// it.
	Watchdog Duration `toml:"watchdog"`

	// Jobs is the number of programs run concurrently.
	Jobs int `toml:"jobs"`

	// DumpWords is the number of RAM words captured in a verdict.
	DumpWords int `toml:"dump_words"`
}

// Duration is a time.Duration written as a string ("250ms", "5s") in the
// configuration file.
type Duration time.Duration

func (d Duration) D() time.Duration { return time.Duration(d) }

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

const (
	defaultWatchdog  = Duration(5 * time.Second)
	defaultDumpWords = 32
)

// DefaultConfig returns the configuration used when no file is found.
func DefaultConfig() Config {
	return Config{
		Harness: HarnessConfig{
			Watchdog:  defaultWatchdog,
			Jobs:      runtime.NumCPU(),
			DumpWords: defaultDumpWords,
		},
	}
}

// Check validates cfg and fills zero values with defaults.
func (cfg *Config) Check() error {
	def := DefaultConfig()
	if cfg.SoC.SPILatency < 0 {
		return fmt.Errorf("soc.spi_latency: negative value %d", cfg.SoC.SPILatency)
	}
	switch {
	case cfg.Harness.Watchdog < 0:
		return fmt.Errorf("harness.watchdog: negative value %s", cfg.Harness.Watchdog.D())
	case cfg.Harness.Watchdog == 0:
		cfg.Harness.Watchdog = def.Harness.Watchdog
	}
	if cfg.Harness.Jobs <= 0 {
		cfg.Harness.Jobs = def.Harness.Jobs
	}
	switch {
	case cfg.Harness.DumpWords < 0:
		return fmt.Errorf("harness.dump_words: negative value %d", cfg.Harness.DumpWords)
	case cfg.Harness.DumpWords == 0:
		cfg.Harness.DumpWords = def.Harness.DumpWords
	}
	return nil
}

const cfgFilename = "config.toml"

// ConfigPath returns the location of the configuration file in the user
// config directory.
func ConfigPath() string {
	return filepath.Join(configdir.LocalConfig("simbench"), cfgFilename)
}

// LoadConfig loads and checks the configuration at path.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	for _, key := range md.Undecoded() {
		log.ModSim.WarnZ("unknown config key").String("key", key.String()).String("path", path).End()
	}
	if err := cfg.Check(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadConfigOrDefault loads the configuration from the simbench config
// directory, or provide a default one.
func LoadConfigOrDefault() Config {
	path := ConfigPath()
	cfg, err := LoadConfig(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.ModSim.WarnZ("using default config").Error("err", err).End()
		}
		return DefaultConfig()
	}
	return cfg
}

// EncodeConfig returns cfg in TOML.
func EncodeConfig(cfg Config) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// SaveConfig into simbench config directory.
func SaveConfig(cfg Config) error {
	buf, err := EncodeConfig(cfg)
	if err != nil {
		return err
	}

	dir := configdir.LocalConfig("simbench")
	if err := configdir.MakePath(dir); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, cfgFilename), buf, 0644)
}
