package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
)

// Runtime holds environment-only switches that never live in a config file.
type Runtime struct {
	NoColor string `env:"NO_COLOR"`
	Term    string `env:"TERM" envDefault:"xterm"`
}

// LoadRuntime reads the runtime switches from the process environment.
func LoadRuntime() (Runtime, error) {
	var r Runtime
	if err := env.Parse(&r); err != nil {
		return Runtime{}, fmt.Errorf("env.Parse: %w", err)
	}
	return r, nil
}

// Colorless reports whether terminal colors should be suppressed.
func (r Runtime) Colorless() bool {
	return r.NoColor != "" || r.Term == "dumb"
}
