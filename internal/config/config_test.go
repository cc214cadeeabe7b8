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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg := Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	require.Equal(t, Default(), cfg)
}

func TestLoadMalformedFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, path, "this is not valid toml {{{")

	cfg := Load(path)
	require.Equal(t, Default(), cfg)
}

func TestLoadPartialOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, path, "depth = 5\n")

	cfg := Load(path)
	require.Equal(t, 5, cfg.Depth)
	require.Equal(t, DefaultMaterialWeight, cfg.MaterialWeight)
	require.Equal(t, DefaultPositioningWeight, cfg.PositioningWeight)
}

func TestLoadFullOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, path, "depth = 4\nmaterial_weight = 20\npositioning_weight = 2\n")

	cfg := Load(path)
	require.Equal(t, Config{Depth: 4, MaterialWeight: 20, PositioningWeight: 2}, cfg)
}

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("could not write test fixture: %v", err)
	}
}
