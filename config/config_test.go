/*
 * config_test.go, part of gochem.
 *
 * Copyright 2025 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 * Gochem is developed at the laboratory for instruction in Swedish, Department of Chemistry,
 * University of Helsinki, Finland.
 *
 */

package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	O := cfg.Options()
	assert.True(t, O.Normalize())
	assert.Equal(t, 2.0, O.NyquistRate())
	assert.Equal(t, 0, O.MaxGridDim())
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nothere.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "xtal.yaml")
	data := "map:\n  normalize: false\ngrid:\n  nyquistRate: 3\n  maxDimension: 256\nlog:\n  level: debug\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.False(t, cfg.Map.Normalize)
	assert.Equal(t, 3.0, cfg.Grid.NyquistRate)
	assert.Equal(t, 256, cfg.Grid.MaxDimension)
	assert.Equal(t, "text", cfg.Log.Format, "unset values keep their defaults")
	O := cfg.Options()
	assert.False(t, O.Normalize())
	assert.Equal(t, 3.0, O.NyquistRate())
	assert.Equal(t, 256, O.MaxGridDim())
}

func TestInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	for i, data := range []string{
		"grid:\n  nyquistRate: -1\n",
		"grid:\n  maxDimension: -3\n",
		"log:\n  level: loud\n",
		"log:\n  format: xml\n",
		"map: [1, 2\n",
	} {
		path := filepath.Join(dir, "bad"+string(rune('a'+i))+".yaml")
		require.NoError(t, os.WriteFile(path, []byte(data), 0644))
		_, err := LoadConfig(path)
		assert.Error(t, err, "case %d", i)
	}
}

func TestSaveConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "dir", "xtal.yaml")
	require.NoError(t, CreateDefaultConfigFile(path))
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "nyquistRate: 2")
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLogger(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Log.Level = "warn"
	cfg.Log.Format = "json"
	var buf bytes.Buffer
	log := cfg.Logger(&buf)
	log.Info("hidden")
	log.Warn("shown", "axis", 2)
	out := buf.String()
	assert.False(t, strings.Contains(out, "hidden"))
	assert.Contains(t, out, `"msg":"shown"`)
	assert.Contains(t, out, `"axis":2`)
}
