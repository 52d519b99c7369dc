package node

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

type fileConfig struct {
	ID     string   `toml:"id"`
	Listen string   `toml:"listen"`
	Peers  []string `toml:"peers"`
}

// LoadConfig reads a TOML config file into a Config. Missing fields keep
// their zero values; the caller applies defaults and flag overrides.
func LoadConfig(path string) (Config, error) {
	var fc fileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return Config{}, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	return Config{
		ID:     fc.ID,
		Listen: fc.Listen,
		Peers:  fc.Peers,
	}, nil
}
