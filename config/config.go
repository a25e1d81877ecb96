/*
 * config.go, part of gochem.
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

//Package config loads the settings for density map calculations from YAML files,
//and turns them into xtal.Options.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	xtal "github.com/pslacerda1/pymol-open-source"
)

//Config contains the settings read from a YAML file.
type Config struct {
	Map struct {
		//Normalize the map to zero mean and unit standard deviation
		Normalize bool `yaml:"normalize"`
	} `yaml:"map"`

	Grid struct {
		//Sampling rate relative to the highest resolution of the data
		NyquistRate float64 `yaml:"nyquistRate"`

		//Largest number of points along any axis. 0 means no limit.
		MaxDimension int `yaml:"maxDimension"`
	} `yaml:"grid"`

	Log struct {
		//debug, info, warn or error
		Level string `yaml:"level"`

		//text or json
		Format string `yaml:"format"`
	} `yaml:"log"`
}

//DefaultConfig returns a configuration with the default values.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.Map.Normalize = true
	cfg.Grid.NyquistRate = 2.0
	cfg.Grid.MaxDimension = 0
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	return cfg
}

//LoadConfig loads the configuration from a YAML file. Values not given in the file
//keep their defaults. If the file doesn't exist, the default configuration is returned.
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return cfg, nil
	}
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", configPath, err)
	}
	return cfg, nil
}

//SaveConfig saves the configuration to a YAML file, creating its directory if needed.
func SaveConfig(cfg *Config, configPath string) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}
	return nil
}

//CreateDefaultConfigFile creates a default configuration file at the specified path.
func CreateDefaultConfigFile(configPath string) error {
	return SaveConfig(DefaultConfig(), configPath)
}

//Validate returns an error if any setting is out of range.
func (cfg *Config) Validate() error {
	if !(cfg.Grid.NyquistRate > 0) {
		return fmt.Errorf("grid.nyquistRate must be positive, got %g", cfg.Grid.NyquistRate)
	}
	if cfg.Grid.MaxDimension < 0 {
		return fmt.Errorf("grid.maxDimension can't be negative, got %d", cfg.Grid.MaxDimension)
	}
	if _, err := cfg.level(); err != nil {
		return err
	}
	switch strings.ToLower(cfg.Log.Format) {
	case "text", "json", "":
	default:
		return fmt.Errorf("log.format must be text or json, got %q", cfg.Log.Format)
	}
	return nil
}

func (cfg *Config) level() (slog.Level, error) {
	var l slog.Level
	if cfg.Log.Level == "" {
		return slog.LevelInfo, nil
	}
	if err := l.UnmarshalText([]byte(cfg.Log.Level)); err != nil {
		return l, fmt.Errorf("log.level: %w", err)
	}
	return l, nil
}

//Logger returns a logger that writes to w with the configured level and format.
func (cfg *Config) Logger(w io.Writer) *slog.Logger {
	l, err := cfg.level()
	if err != nil {
		l = slog.LevelInfo
	}
	hopts := &slog.HandlerOptions{Level: l}
	if strings.ToLower(cfg.Log.Format) == "json" {
		return slog.New(slog.NewJSONHandler(w, hopts))
	}
	return slog.New(slog.NewTextHandler(w, hopts))
}

//Options returns the xtal.Options corresponding to the configuration,
//logging to standard error.
func (cfg *Config) Options() *xtal.Options {
	O := xtal.DefaultOptions()
	O.Normalize(cfg.Map.Normalize)
	O.NyquistRate(cfg.Grid.NyquistRate)
	O.MaxGridDim(cfg.Grid.MaxDimension)
	O.Logger(cfg.Logger(os.Stderr))
	return O
}
