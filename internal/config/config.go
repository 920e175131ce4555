// Package config resolves the simulator inputs from defaults, a config file,
// environment variables and flags.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/yassinebenameur/vaccumCleaner/internal/interpreter"
)

// Keys understood in the config file, as CLEANER_* variables and as flags.
const (
	KeyWidth       = "width"
	KeyHeight      = "height"
	KeyPosition    = "position"
	KeySequence    = "sequence"
	KeyDelay       = "delay"
	KeyFormat      = "format"
	KeyInteractive = "interactive"
)

// EnvPrefix prefixes environment overrides, e.g. CLEANER_WIDTH.
const EnvPrefix = "cleaner"

// Config is the raw input of one simulation. Field values are kept as typed
// by the user; validation belongs to interpreter.Environment.
type Config struct {
	Width    string
	Height   string
	Position string
	Sequence string
	Delay    time.Duration
	Format   string

	Interactive bool
}

// SetDefaults registers the demo values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyWidth, "10")
	v.SetDefault(KeyHeight, "10")
	v.SetDefault(KeyPosition, "5,5,N")
	v.SetDefault(KeySequence, "DADADADAA")
	v.SetDefault(KeyDelay, time.Second)
	v.SetDefault(KeyFormat, "text")
	v.SetDefault(KeyInteractive, false)
}

// Bind enables CLEANER_* environment overrides on v.
func Bind(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
}

// Load reads the resolved values out of v.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Width:       v.GetString(KeyWidth),
		Height:      v.GetString(KeyHeight),
		Position:    v.GetString(KeyPosition),
		Sequence:    v.GetString(KeySequence),
		Delay:       v.GetDuration(KeyDelay),
		Format:      strings.ToLower(v.GetString(KeyFormat)),
		Interactive: v.GetBool(KeyInteractive),
	}
	if cfg.Delay < 0 {
		return nil, fmt.Errorf("delay must be non-negative, got %s", cfg.Delay)
	}
	switch cfg.Format {
	case "text", "json", "yaml":
	default:
		return nil, fmt.Errorf("unknown format %q (want text, json or yaml)", cfg.Format)
	}
	return cfg, nil
}

// Fields maps the config onto the simulator's raw inputs.
func (c *Config) Fields() map[interpreter.Field]string {
	return map[interpreter.Field]string{
		interpreter.FieldWidth:    c.Width,
		interpreter.FieldHeight:   c.Height,
		interpreter.FieldPosition: c.Position,
		interpreter.FieldSequence: c.Sequence,
	}
}
