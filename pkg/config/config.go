// Olympus: An OlympusScan content source for manga reader hosts.
// Copyright (C) 2025 Luca M. Schmidt (LuMiSxh)
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program. If not, see <http://www.gnu.org/licenses/>.

// Package config loads the source configuration. Values are layered:
// built-in defaults, then an optional YAML file, then OLYMPUS_* environment
// variables. Command line flags are applied on top by the caller.
package config

import (
	"os"
	"path/filepath"
	"time"

	"Olympus/pkg/errors"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

const (
	DefaultBaseURL   = "https://dashboard.olympusv2.gg/api"
	DefaultSiteURL   = "https://olympusv2.gg"
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"

	envPrefix = "OLYMPUS_"
)

// Config holds all runtime settings of the source and its host harnesses
type Config struct {
	BaseURL           string        `yaml:"base_url" env:"BASE_URL"`
	SiteURL           string        `yaml:"site_url" env:"SITE_URL"`
	RequestsPerSecond float64       `yaml:"requests_per_second" env:"RATE_LIMIT"`
	RequestTimeout    time.Duration `yaml:"request_timeout" env:"TIMEOUT"`
	Retries           int           `yaml:"retries" env:"RETRIES"`
	UserAgent         string        `yaml:"user_agent" env:"USER_AGENT"`
	CloudflareBypass  bool          `yaml:"cloudflare_bypass" env:"CLOUDFLARE"`
	LogFile           string        `yaml:"log_file" env:"LOG_FILE"`
	Debug             bool          `yaml:"debug" env:"DEBUG"`
}

// DefaultConfig returns the settings the source ships with
func DefaultConfig() *Config {
	return &Config{
		BaseURL:           DefaultBaseURL,
		SiteURL:           DefaultSiteURL,
		RequestsPerSecond: 4,
		RequestTimeout:    15 * time.Second,
		Retries:           0,
		UserAgent:         DefaultUserAgent,
		LogFile:           DefaultLogFile(),
	}
}

// DefaultLogFile is ~/.olympus/logs/olympus.log, or empty when there is no home directory
func DefaultLogFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".olympus", "logs", "olympus.log")
}

// DefaultPath is the config file looked up when none is given
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".olympus", "config.yaml")
}

// Load builds the configuration. A missing file at path is not an error;
// an empty path skips the file layer.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		if err := loadYAML(path, cfg); err != nil {
			return nil, err
		}
	}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: envPrefix}); err != nil {
		return nil, errors.Track(err).
			WithMessage("failed to parse OLYMPUS_* environment variables").
			AsCategory(errors.CategoryValidation).
			Error()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the client cannot run with
func (c *Config) Validate() error {
	switch {
	case c.BaseURL == "":
		return invalid("base_url", "must not be empty")
	case c.RequestsPerSecond <= 0:
		return invalid("requests_per_second", "must be positive")
	case c.RequestTimeout <= 0:
		return invalid("request_timeout", "must be positive")
	case c.Retries < 0:
		return invalid("retries", "must not be negative")
	}
	return nil
}

// SaveYAML writes the configuration to path, creating parent directories
func SaveYAML(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.T(err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.T(err)
	}
	return errors.T(os.WriteFile(path, data, 0644))
}

func loadYAML(path string, cfg *Config) error {
	b, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return errors.Track(err).WithContext("path", path).Error()
	}

	if err := yaml.Unmarshal(b, cfg); err != nil {
		return errors.Track(err).
			WithMessagef("invalid config file %s: %v", path, err).
			WithContext("path", path).
			AsParser().
			Error()
	}
	return nil
}

func invalid(field, reason string) error {
	return errors.Track(errors.ErrInvalidInput).
		WithMessagef("config: %s %s", field, reason).
		WithContext("field", field).
		Error()
}
