package config

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yassinebenameur/vaccumCleaner/internal/interpreter"
)

func newViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	return v
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(newViper())
	require.NoError(t, err)

	assert.Equal(t, &Config{
		Width:    "10",
		Height:   "10",
		Position: "5,5,N",
		Sequence: "DADADADAA",
		Delay:    time.Second,
		Format:   "text",
	}, cfg)
}

func TestLoad_ConfigFile(t *testing.T) {
	v := newViper()
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(strings.NewReader(`
width: 4
height: 3
position: 0,2,e
sequence: AAG
delay: 250ms
format: JSON
`)))

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "4", cfg.Width)
	assert.Equal(t, "3", cfg.Height)
	assert.Equal(t, "0,2,e", cfg.Position)
	assert.Equal(t, "AAG", cfg.Sequence)
	assert.Equal(t, 250*time.Millisecond, cfg.Delay)
	assert.Equal(t, "json", cfg.Format)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("CLEANER_SEQUENCE", "GGA")
	t.Setenv("CLEANER_DELAY", "0s")

	v := newViper()
	Bind(v)
	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "GGA", cfg.Sequence)
	assert.Equal(t, time.Duration(0), cfg.Delay)
	assert.Equal(t, "10", cfg.Width)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  any
		want string
	}{
		{"negative delay", KeyDelay, -time.Second, "delay must be non-negative"},
		{"unknown format", KeyFormat, "xml", "unknown format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newViper()
			v.Set(tt.key, tt.val)
			_, err := Load(v)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestConfig_Fields(t *testing.T) {
	cfg, err := Load(newViper())
	require.NoError(t, err)

	env := interpreter.NewEnvironment(nil)
	env.SetAll(cfg.Fields())
	assert.True(t, env.Ready())
	assert.Len(t, cfg.Fields(), len(interpreter.Fields))
}
