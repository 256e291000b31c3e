package main

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// config holds display defaults, overridable from a TOML file:
//
//	columns = 16
//	little_endian = true
//	no_color = false
type config struct {
	Columns      int  `toml:"columns"`
	LittleEndian bool `toml:"little_endian"`
	NoColor      bool `toml:"no_color"`
}

func defaultConfig() config {
	return config{Columns: 16}
}

// loadConfig reads path, or ~/.viewdump.toml when path is empty. A missing
// default file is not an error; a named file that fails to parse is.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(home, ".viewdump.toml")
		if _, err := os.Stat(path); err != nil {
			return cfg, nil
		}
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, err
	}
	if cfg.Columns <= 0 {
		cfg.Columns = defaultConfig().Columns
	}
	return cfg, nil
}
