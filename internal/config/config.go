// Copyright (C) 2025 Brigham Skarda

// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.

// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.

// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package config loads checkmatier's search defaults from an optional TOML
// file. A missing or malformed file is never an error the caller must
// handle -- Load always returns a usable Config.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// DefaultDepth is the search depth used when neither the config file nor a
// command-line flag specifies one.
const DefaultDepth = 3

// DefaultMaterialWeight and DefaultPositioningWeight are the evaluator
// weights the engine uses when no config file overrides them.
const (
	DefaultMaterialWeight    = 10
	DefaultPositioningWeight = 1
)

// Config holds the tunables the engine reads at startup.
type Config struct {
	Depth             int
	MaterialWeight    int
	PositioningWeight int
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Depth:             DefaultDepth,
		MaterialWeight:    DefaultMaterialWeight,
		PositioningWeight: DefaultPositioningWeight,
	}
}

// fileConfig is the TOML-shaped mirror of Config. Fields are pointers so an
// absent key in the file leaves the corresponding Config field at its
// default rather than zeroing it.
type fileConfig struct {
	Depth             *int `toml:"depth"`
	MaterialWeight    *int `toml:"material_weight"`
	PositioningWeight *int `toml:"positioning_weight"`
}

// Load reads path (a TOML file) and overlays it onto Default(). If path
// does not exist, cannot be read, or cannot be parsed, Load returns
// Default() -- config problems never prevent the engine from starting.
func Load(path string) Config {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}

	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return cfg
	}

	if fc.Depth != nil {
		cfg.Depth = *fc.Depth
	}
	if fc.MaterialWeight != nil {
		cfg.MaterialWeight = *fc.MaterialWeight
	}
	if fc.PositioningWeight != nil {
		cfg.PositioningWeight = *fc.PositioningWeight
	}
	return cfg
}

// DefaultPath returns ~/.config/checkmatier/config.toml, or an empty string
// if the user's home directory cannot be determined.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "checkmatier", "config.toml")
}
