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

package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrack_ClassifiesSentinels(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		category ErrorCategory
	}{
		{"not_found", fmt.Errorf("%w: HTTP 404", ErrNotFound), CategoryNotFound},
		{"rate_limit", fmt.Errorf("%w: HTTP 429", ErrRateLimit), CategoryRateLimit},
		{"parse", ParseFailure(fmt.Errorf("bad"), "http://x"), CategoryParsing},
		{"invalid_section", InvalidSection("x"), CategoryValidation},
		{"plain", fmt.Errorf("boom"), CategoryUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.category, GetCategory(Track(tt.err).Error()))
		})
	}
}

func TestTrack_ReusesTrackedError(t *testing.T) {
	first := New("upstream failed").AsNetwork().WithContext("url", "http://x").Error()
	second := Track(first).WithContext("page", 2).Error()

	var te *TrackedError
	require.True(t, As(second, &te))
	assert.Same(t, first, second)
	assert.Equal(t, CategoryNetwork, te.Category)
	assert.Equal(t, "http://x", te.Context["url"])
	assert.Equal(t, 2, te.Context["page"])
	assert.Len(t, te.CallChain, 2)
}

func TestDefaultCategory_KeepsDetectedCategory(t *testing.T) {
	err := TN(fmt.Errorf("%w: HTTP 404", ErrNotFound))
	assert.Equal(t, CategoryNotFound, GetCategory(err))

	err = TP(fmt.Errorf("odd"), "olympus")
	assert.Equal(t, CategoryProvider, GetCategory(err))
	assert.Equal(t, "olympus", GetContext(err)["provider_id"])
}

func TestNotFound(t *testing.T) {
	err := NotFound("solo", "Couldn't find any chapters for mangaId: %s!", "solo")

	assert.True(t, IsNotFound(err))
	assert.Equal(t, "Couldn't find any chapters for mangaId: solo!", err.Error())
	assert.Equal(t, "solo", GetContext(err)["manga_id"])
}

func TestParseFailure_MatchesSentinelAndCause(t *testing.T) {
	cause := fmt.Errorf("unexpected end of JSON input")
	err := ParseFailure(cause, "http://x/genres-statuses")

	assert.True(t, IsParseFailure(err))
	assert.True(t, Is(err, cause))
	assert.True(t, IsParsing(err))
	assert.Contains(t, err.Error(), "unexpected end of JSON input")
}

func TestInvalidSection(t *testing.T) {
	err := InvalidSection("popular_comics")

	assert.True(t, IsInvalidSection(err))
	assert.False(t, IsNotFound(err))
	assert.Equal(t, "Invalid homepage section ID: popular_comics", err.Error())
}

func TestFormatters(t *testing.T) {
	err := Track(fmt.Errorf("%w: HTTP 404", ErrNotFound)).WithContext("url", "http://x/series/a").Error()

	assert.Contains(t, FormatCLISimple(err), "[NOT FOUND]")
	assert.Contains(t, FormatCLI(err), "Failed URL")
	assert.Contains(t, FormatCLIDebug(err), "Function Call Chain")
	assert.Contains(t, FormatChain(err), "Category: not_found")
	assert.Equal(t, "boom", FormatCLISimple(fmt.Errorf("boom")))
}

func TestNilHandling(t *testing.T) {
	assert.Nil(t, T(nil))
	assert.Nil(t, TN(nil))
	assert.Nil(t, Track(nil).WithContext("k", "v").Error())
	assert.Equal(t, CategoryUnknown, GetCategory(nil))
}
