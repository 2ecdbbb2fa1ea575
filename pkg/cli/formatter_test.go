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

package cli

import (
	"bytes"
	"testing"

	"Olympus/pkg/core"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func newPlainFormatter(t *testing.T) (*Formatter, *bytes.Buffer) {
	t.Helper()

	noColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = noColor })

	var buf bytes.Buffer
	f := NewFormatter()
	f.Writer = &buf
	return f, &buf
}

func TestFormatCommand(t *testing.T) {
	f, _ := newPlainFormatter(t)

	assert.Equal(t, "olympus more new_chapters", f.FormatCommand("olympus more", "new_chapters"))
	assert.Equal(t, "olympus tags", f.FormatCommand("olympus tags"))
}

func TestPrintHomeSection_HintsAtMoreItems(t *testing.T) {
	f, buf := newPlainFormatter(t)

	f.PrintHomeSection(core.HomeSection{
		ID:                "new_chapters",
		Title:             "Capítulos Recientes",
		ContainsMoreItems: true,
		Items:             []core.PartialManga{{ID: "sl", Title: "Solo Leveling", Subtitle: "Capitulo 3"}},
	})

	out := buf.String()
	assert.Contains(t, out, "Capítulos Recientes [new_chapters]")
	assert.Contains(t, out, "1. Solo Leveling (ID: sl)")
	assert.Contains(t, out, "More: olympus more new_chapters\n")
}

func TestPrintHomeSection_NoHintWithoutMoreItems(t *testing.T) {
	f, buf := newPlainFormatter(t)

	f.PrintHomeSection(core.HomeSection{ID: "popular_comics", Title: "Populares Del Dia"})

	assert.Contains(t, buf.String(), "No manga found.")
	assert.NotContains(t, buf.String(), "More:")
}

func TestPrintPagedResults_NextCursor(t *testing.T) {
	tests := []struct {
		name     string
		metadata *core.Metadata
		want     string
	}{
		{"page", &core.Metadata{Page: 3}, "Next page: --page 3\n"},
		{"offset", &core.Metadata{Offset: 2}, "Next page: --offset 2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, buf := newPlainFormatter(t)
			f.PrintPagedResults("Results", &core.PagedResults{
				Results:  []core.PartialManga{{ID: "a", Title: "A"}},
				Metadata: tt.metadata,
			})
			assert.Contains(t, buf.String(), tt.want)
		})
	}
}
