package main

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// fileDefaults is the `~/.b000rc`/`--config` TOML shape (§6): a config file
// carries default level/cores/mode, all overridable by explicit flags.
// Mode is one of the mode flag names: mzml-to-b64, mzml-to-b32, b64-to-mzml.
// Field names only need to be exported for the TOML decoder to see them,
// the same way holocm-holo-build's PackageDefinition is structured purely
// to produce readable decode errors.
type fileDefaults struct {
	Level uint8
	Cores int
	Mode  string
}

func loadConfig(path string) (fileDefaults, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fileDefaults{}, nil
		}
		candidate := filepath.Join(home, ".b000rc")
		if _, err := os.Stat(candidate); err != nil {
			return fileDefaults{}, nil
		}
		path = candidate
	}

	var d fileDefaults
	_, err := toml.DecodeFile(path, &d)
	return d, err
}
