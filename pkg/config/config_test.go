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

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"Olympus/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, 4.0, cfg.RequestsPerSecond)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
	assert.Zero(t, cfg.Retries)
	assert.False(t, cfg.CloudflareBypass)
}

func TestLoad_FileThenEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
base_url: https://mirror.test/api
requests_per_second: 2
request_timeout: 30s
retries: 1
`), 0644))

	t.Setenv("OLYMPUS_RETRIES", "3")
	t.Setenv("OLYMPUS_CLOUDFLARE", "true")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://mirror.test/api", cfg.BaseURL)
	assert.Equal(t, 2.0, cfg.RequestsPerSecond)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 3, cfg.Retries)
	assert.True(t, cfg.CloudflareBypass)
	assert.Equal(t, DefaultUserAgent, cfg.UserAgent)
}

func TestLoad_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("base_url: [unterminated"), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Equal(t, errors.CategoryParsing, errors.GetCategory(err))
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	t.Setenv("OLYMPUS_RATE_LIMIT", "0")

	_, err := Load("")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidInput))
	assert.Equal(t, "requests_per_second", errors.GetContext(err)["field"])
}

func TestSaveYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.Retries = 2
	cfg.RequestTimeout = 20 * time.Second
	require.NoError(t, SaveYAML(cfg, path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, loaded.Retries)
	assert.Equal(t, 20*time.Second, loaded.RequestTimeout)
}
