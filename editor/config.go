package editor

import (
	"os"
	"strconv"

	"github.com/lixenwraith/termedit/constants"
)

// Config holds editor settings
type Config struct {
	TabStop int
}

// DefaultConfig returns the built-in editor settings
func DefaultConfig() *Config {
	return &Config{
		TabStop: constants.DefaultTabStop,
	}
}

// LoadConfig loads editor configuration from environment variables.
// Invalid values keep the default.
func LoadConfig() *Config {
	cfg := DefaultConfig()

	if tabStop := os.Getenv("TERMEDIT_TAB_STOP"); tabStop != "" {
		if val, err := strconv.Atoi(tabStop); err == nil && val > 0 && val <= constants.MaxTabStop {
			cfg.TabStop = val
		}
	}

	return cfg
}
