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

package rpc

import (
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	netrpc "net/rpc"
	"net/rpc/jsonrpc"
	"testing"

	_ "Olympus/internal/providers"
	"Olympus/pkg/config"
	"Olympus/pkg/core"
	"Olympus/pkg/engine"
	"Olympus/pkg/engine/logger"
	"Olympus/pkg/errors"
	"Olympus/pkg/provider/registry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, routes map[string]string) *netrpc.Client {
	t.Helper()

	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := routes[r.URL.RequestURI()]
		if !ok {
			http.NotFound(w, r)
			return
		}
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(api.Close)

	cfg := config.DefaultConfig()
	cfg.BaseURL = api.URL
	cfg.RequestsPerSecond = 1000

	e := engine.NewWithLogger(cfg, logger.Nop{})
	require.NoError(t, registry.LoadAll(e))

	server, err := NewServer(e, "test")
	require.NoError(t, err)

	clientConn, serverConn := net.Pipe()
	go server.ServeCodec(jsonrpc.NewServerCodec(serverConn))

	client := jsonrpc.NewClient(clientConn)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestVersionAndProviders(t *testing.T) {
	client := newTestClient(t, nil)

	var version VersionResponse
	require.NoError(t, client.Call("Version.Get", &VersionRequest{}, &version))
	assert.Equal(t, "test", version.Version)
	assert.Equal(t, "disabled", version.LogFile)

	var providers ProvidersResponse
	require.NoError(t, client.Call("Providers.List", &ProvidersRequest{}, &providers))
	require.Len(t, providers, 1)
	assert.Equal(t, "olympus", providers[0].ID)
	assert.Equal(t, "OlympusScan", providers[0].Name)
}

func TestSourceChapters(t *testing.T) {
	client := newTestClient(t, map[string]string{
		"/series/sl/chapters?page=1&direction=desc&type=comic": `{"data":[{"id":2,"name":"2"},{"id":1,"name":"1"}],"meta":{"last_page":1}}`,
	})

	var chapters []core.ChapterInfo
	require.NoError(t, client.Call("Source.Chapters", &MangaRequest{MangaID: "sl"}, &chapters))
	require.Len(t, chapters, 2)
	assert.Equal(t, "2", chapters[0].ID)
	assert.Equal(t, "Chapter 1", chapters[1].Title)
}

func TestSourceHomeKeepsEmissionOrder(t *testing.T) {
	client := newTestClient(t, map[string]string{
		"/sf/new-chapters?page=1": `{"data":[{"id":1,"name":"A","slug":"a","cover":"https://x.test/a.jpg"}]}`,
		"/sf/home":                `{"data":{"popular_comics":"[]"}}`,
	})

	var sections []core.HomeSection
	require.NoError(t, client.Call("Source.Home", &ProviderRequest{}, &sections))
	require.Len(t, sections, 2)
	assert.Equal(t, "popular_comics", sections[0].ID)
	assert.Equal(t, "new_chapters", sections[1].ID)
	assert.Len(t, sections[1].Items, 1)
}

func TestSourceViewMore_InvalidSection(t *testing.T) {
	client := newTestClient(t, nil)

	var results core.PagedResults
	err := client.Call("Source.ViewMore", &SectionRequest{SectionID: "popular_comics"}, &results)
	require.Error(t, err)
	assert.Contains(t, err.Error(), fmt.Sprintf("RPC Error %d", ErrCodeInvalidSection))
	assert.Contains(t, err.Error(), "Invalid homepage section ID: popular_comics")
}

func TestSourceDetails_RequiresMangaID(t *testing.T) {
	client := newTestClient(t, nil)

	var manga core.Manga
	err := client.Call("Source.Details", &MangaRequest{}, &manga)
	require.Error(t, err)
	assert.Contains(t, err.Error(), fmt.Sprintf("RPC Error %d", ErrCodeInvalidInput))
}

func TestSourceShare(t *testing.T) {
	client := newTestClient(t, nil)

	var share ShareResponse
	require.NoError(t, client.Call("Source.Share", &MangaRequest{MangaID: "sl"}, &share))
	assert.Contains(t, share.URL, "/series/sl")
}

func TestSourceUnknownProvider(t *testing.T) {
	client := newTestClient(t, nil)

	var tags []core.TagSection
	err := client.Call("Source.Tags", &ProviderRequest{Provider: "nope"}, &tags)
	require.Error(t, err)
	assert.Contains(t, err.Error(), fmt.Sprintf("RPC Error %d", ErrCodeProviderNotFound))
}

func TestDetermineErrorCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"not_found", errors.NotFound("x", "no chapters for %s", "x"), ErrCodeResourceNotFound},
		{"parse", errors.ParseFailure(fmt.Errorf("unexpected end"), "http://x"), ErrCodeJSONError},
		{"invalid_section", errors.InvalidSection("popular_comics"), ErrCodeInvalidSection},
		{"rate_limit", errors.TN(fmt.Errorf("%w: HTTP 429", errors.ErrRateLimit)), ErrCodeRateLimited},
		{"plain", fmt.Errorf("boom"), ErrCodeUnknownError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, NewError(tt.err, "Test", "Run", nil).Code)
		})
	}
}
