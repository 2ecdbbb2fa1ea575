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

package engine

import (
	"bytes"
	"context"
	"testing"

	"Olympus/pkg/config"
	"Olympus/pkg/core"
	"Olympus/pkg/engine/logger"
	"Olympus/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubProvider implements provider.Provider with canned answers
type stubProvider struct {
	id      string
	version string
}

func (s *stubProvider) ID() string          { return s.id }
func (s *stubProvider) Name() string        { return "Stub " + s.id }
func (s *stubProvider) Description() string { return "stub" }
func (s *stubProvider) SiteURL() string     { return "https://stub.test" }

func (s *stubProvider) Info() core.SourceInfo {
	return core.SourceInfo{ID: s.id, Name: s.Name(), Version: s.version}
}

func (s *stubProvider) Initialize(context.Context) error { return nil }

func (s *stubProvider) GetMangaDetails(context.Context, string) (*core.Manga, error) {
	return &core.Manga{}, nil
}

func (s *stubProvider) GetChapters(context.Context, string) ([]core.ChapterInfo, error) {
	return nil, nil
}

func (s *stubProvider) GetChapterDetails(context.Context, string, string) (*core.ChapterDetails, error) {
	return &core.ChapterDetails{}, nil
}

func (s *stubProvider) GetSearchResults(context.Context, core.SearchQuery, *core.Metadata) (*core.PagedResults, error) {
	return &core.PagedResults{}, nil
}

func (s *stubProvider) GetHomePageSections(context.Context, func(core.HomeSection)) error { return nil }

func (s *stubProvider) GetViewMoreItems(context.Context, string, *core.Metadata) (*core.PagedResults, error) {
	return &core.PagedResults{}, nil
}

func (s *stubProvider) GetSearchTags(context.Context) ([]core.TagSection, error) { return nil, nil }
func (s *stubProvider) GetMangaShareURL(id string) string                      { return id }

func TestRegisterProvider(t *testing.T) {
	e := NewWithLogger(config.DefaultConfig(), logger.Nop{})

	require.NoError(t, e.RegisterProvider(&stubProvider{id: "b", version: "1.0.0"}))
	require.NoError(t, e.RegisterProvider(&stubProvider{id: "a", version: "2.1.0"}))

	assert.Error(t, e.RegisterProvider(&stubProvider{id: "a", version: "1.0.0"}), "duplicate id")
	assert.Error(t, e.RegisterProvider(&stubProvider{id: "c", version: "one"}), "invalid version")
	assert.Error(t, e.RegisterProvider(nil))

	assert.Equal(t, 2, e.ProviderCount())
	all := e.AllProviders()
	assert.Equal(t, "a", all[0].ID())
	assert.Equal(t, "b", all[1].ID())
}

func TestGetProvider_Unknown(t *testing.T) {
	e := NewWithLogger(config.DefaultConfig(), logger.Nop{})
	require.NoError(t, e.RegisterProvider(&stubProvider{id: "olympus", version: "1.0.11"}))

	_, err := e.GetProvider("missing")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
	assert.Equal(t, []string{"olympus"}, errors.GetContext(err)["available_providers"])
}

func TestDebugModeRaisesLogLevel(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWriterService(&buf)

	cfg := config.DefaultConfig()
	cfg.Debug = true
	e := NewWithLogger(cfg, log)

	e.Logger.Debug("probe %d", 1)
	assert.Contains(t, buf.String(), "DEBUG")
	assert.Contains(t, buf.String(), "probe 1")
}

func TestMemoryStore(t *testing.T) {
	store, err := MemoryStore("bucket")
	require.NoError(t, err)

	require.NoError(t, store.Set("type:a", "novel"))

	var v string
	found, err := store.Get("type:a", &v)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "novel", v)
}
