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

package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"Olympus/pkg/core"
	"Olympus/pkg/engine"
	"Olympus/pkg/engine/logger"
	"Olympus/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexString(t *testing.T) {
	var c OlyChapter
	require.NoError(t, json.Unmarshal([]byte(`{"id": 42, "name": "7.5"}`), &c))
	assert.Equal(t, flexString("42"), c.ID)
	assert.Equal(t, flexString("7.5"), c.Name)

	require.NoError(t, json.Unmarshal([]byte(`{"id": "abc", "name": null}`), &c))
	assert.Equal(t, flexString("abc"), c.ID)
	assert.Equal(t, flexString(""), c.Name)

	assert.Error(t, json.Unmarshal([]byte(`{"id": {}}`), &c))
}

func TestEmbeddedComics(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		slugs []string
	}{
		{"json_in_string", `{"popular_comics":"[{\"slug\":\"a\"},{\"slug\":\"b\"}]"}`, []string{"a", "b"}},
		{"plain_array", `{"popular_comics":[{"slug":"c"}]}`, []string{"c"}},
		{"empty_string", `{"popular_comics":""}`, nil},
		{"null", `{"popular_comics":null}`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out struct {
				PopularComics embeddedComics `json:"popular_comics"`
			}
			require.NoError(t, json.Unmarshal([]byte(tt.body), &out))

			var slugs []string
			for _, c := range out.PopularComics {
				slugs = append(slugs, c.Slug)
			}
			assert.Equal(t, tt.slugs, slugs)
		})
	}
}

func TestParseChapter_NonNumericName(t *testing.T) {
	info := parseChapter(OlyChapter{ID: "9", Name: "Especial"})

	assert.Equal(t, "9", info.ID)
	assert.Zero(t, info.Number)
	assert.Equal(t, "Chapter Especial", info.Title)
	assert.Nil(t, info.Date)
}

func TestParseComicList_DedupIsPerList(t *testing.T) {
	id := int64(4)
	comics := []OlyComic{
		{ID: &id, Name: "A", Slug: "a"},
		{ID: &id, Name: "A copy", Slug: "a-copy"},
		{Name: "No id", Slug: "no-id"},
		{Name: "No id twin", Slug: "no-id-twin"},
	}

	first := parseComicList(comics)
	second := parseComicList(comics[:1])

	assert.Len(t, first, 3)
	assert.Len(t, second, 1)
}

func TestSearchFilters(t *testing.T) {
	tests := []struct {
		name string
		tags []core.Tag
		want browseFilters
	}{
		{"none", nil, browseFilters{}},
		{"status_prefix_is_stripped", []core.Tag{{ID: "status-id-4"}}, browseFilters{Status: "4"}},
		{"typed_tags", []core.Tag{
			{ID: "status-id-2", Kind: core.TagStatus},
			{ID: "novel", Kind: core.TagType},
			{ID: "3", Kind: core.TagGenre},
		}, browseFilters{Genre: "3", Status: "2", Type: "novel"}},
		{"last_genre_wins", []core.Tag{{ID: "1"}, {ID: "2"}}, browseFilters{Genre: "2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, searchFilters(tt.tags))
		})
	}
}

func TestEndpoints(t *testing.T) {
	e := olympusEndpoints{base: "https://api.test"}

	assert.Equal(t, "https://api.test/series/a?page=1&direction=desc&type=comic", e.series("a", core.ContentComic))
	assert.Equal(t, "https://api.test/series/a/chapters?page=3&direction=desc&type=novel", e.chapters("a", 3, core.ContentNovel))
	assert.Equal(t, "https://api.test/series/a/chapters/9", e.chapter("a", "9", core.ContentComic))
	assert.Equal(t, "https://api.test/series/a/chapters/9?type=novel", e.chapter("a", "9", core.ContentNovel))
	assert.Equal(t, "https://api.test/series?page=2&status=1", e.browse(2, browseFilters{Status: "1"}))
	assert.Equal(t, "https://api.test/sf/new-chapters?page=5", e.newChapters(5))
}

func TestWithContentType_ConcurrentCallersShareOneProbe(t *testing.T) {
	store, err := engine.MemoryStore("test")
	require.NoError(t, err)
	types := newContentTypes(store, logger.Nop{})

	var comicProbes atomic.Int32
	release := make(chan struct{})
	fetch := func(_ context.Context, ct core.ContentType) (string, error) {
		<-release
		if ct == core.ContentComic {
			comicProbes.Add(1)
			return "", fmt.Errorf("not a comic")
		}
		return "ok", nil
	}

	var wg sync.WaitGroup
	results := make([]core.ContentType, 4)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, ct, err := withContentType(context.Background(), types, "test", "series", fetch)
			assert.NoError(t, err)
			results[i] = ct
		}(i)
	}

	// let every goroutine join the in-flight probe before it completes
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	for _, ct := range results {
		assert.Equal(t, core.ContentNovel, ct)
	}
	assert.Equal(t, int32(1), comicProbes.Load())

	cached, ok := types.Get("series")
	assert.True(t, ok)
	assert.Equal(t, core.ContentNovel, cached)
}

func TestWithContentType_CancelledCallerDoesNotFailOthers(t *testing.T) {
	store, err := engine.MemoryStore("test")
	require.NoError(t, err)
	types := newContentTypes(store, logger.Nop{})

	started := make(chan struct{})
	release := make(chan struct{})
	var probeCtxErr atomic.Value
	fetch := func(ctx context.Context, ct core.ContentType) (string, error) {
		close(started)
		<-release
		probeCtxErr.Store(fmt.Sprint(ctx.Err()))
		return string(ct), nil
	}

	firstCtx, cancel := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, _, err := withContentType(firstCtx, types, "details", "series", fetch)
		firstErr <- err
	}()
	<-started

	type outcome struct {
		value string
		ct    core.ContentType
		err   error
	}
	second := make(chan outcome, 1)
	go func() {
		v, ct, err := withContentType(context.Background(), types, "details", "series", fetch)
		second <- outcome{v, ct, err}
	}()

	// let the second caller join the in-flight probe
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-firstErr:
		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, errors.CategoryTimeout, errors.GetCategory(err))
	case <-time.After(time.Second):
		t.Fatal("cancelled caller kept waiting for the probe")
	}

	close(release)

	select {
	case got := <-second:
		require.NoError(t, got.err)
		assert.Equal(t, "comic", got.value)
		assert.Equal(t, core.ContentComic, got.ct)
	case <-time.After(time.Second):
		t.Fatal("second caller never received the probe result")
	}
	assert.Equal(t, "<nil>", probeCtxErr.Load())

	cached, ok := types.Get("series")
	assert.True(t, ok)
	assert.Equal(t, core.ContentComic, cached)
}
