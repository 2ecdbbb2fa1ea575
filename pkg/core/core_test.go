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

package core

import (
	"testing"

	"Olympus/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		label string
		want  MangaStatus
	}{
		{"Activo", StatusOngoing},
		{"Finalizado", StatusCompleted},
		{"FINALIZADO", StatusCompleted},
		{"Abandonado por el scan", StatusAbandoned},
		{"Pausado por el autor (Hiatus)", StatusHiatus},
		{"pausado por el autor (hiatus)", StatusHiatus},
		{"Cancelado", StatusOngoing},
		{"", StatusOngoing},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseStatus(tt.label))
		})
	}
}

func TestParseTagID(t *testing.T) {
	assert.Equal(t, Tag{ID: "status-id-3", Kind: TagStatus}, ParseTagID("status-id-3"))
	assert.Equal(t, Tag{ID: "novel", Kind: TagType}, ParseTagID("novel"))
	assert.Equal(t, Tag{ID: "17", Kind: TagGenre}, ParseTagID("17"))
}

func TestTag_ValueAndResolve(t *testing.T) {
	status := Tag{ID: "status-id-3", Label: "Finalizado"}.Resolve()
	assert.Equal(t, TagStatus, status.Kind)
	assert.Equal(t, "Finalizado", status.Label)
	assert.Equal(t, "3", status.Value())

	explicit := Tag{ID: "status-id-3", Kind: TagGenre}.Resolve()
	assert.Equal(t, TagGenre, explicit.Kind)
	assert.Equal(t, "status-id-3", explicit.Value())
}

func TestParseContentType(t *testing.T) {
	ct, err := ParseContentType(" Novel ")
	require.NoError(t, err)
	assert.Equal(t, ContentNovel, ct)

	_, err = ParseContentType("manhwa")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidInput))
}

func TestSourceInfo_Validate(t *testing.T) {
	info := SourceInfo{ID: "olympus", Name: "OlympusScan", Version: "1.0.11"}
	assert.NoError(t, info.Validate())

	info.Version = "1.0"
	assert.NoError(t, info.Validate())

	info.Version = "latest"
	assert.Error(t, info.Validate())

	assert.Error(t, SourceInfo{Name: "x", Version: "1.0.0"}.Validate())
}

func TestManga_Title(t *testing.T) {
	assert.Equal(t, "", Manga{}.Title())
	assert.Equal(t, "A", Manga{Titles: []string{"A", "B"}}.Title())
}

func TestChapterDetails_PageURLs(t *testing.T) {
	d := ChapterDetails{Pages: []Page{{Index: 0, URL: "a"}, {Index: 1, URL: "b"}}}
	assert.Equal(t, []string{"a", "b"}, d.PageURLs())
}
