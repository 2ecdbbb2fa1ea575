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
	"bytes"
	"encoding/json"
)

// Response schemas of the OlympusScan API. Only fields the source reads are
// declared; optional objects are pointers so absence is distinguishable.

type OlyMangaResp struct {
	Data *OlyManga `json:"data"`
}

type OlyManga struct {
	ID      int64      `json:"id"`
	Name    *string    `json:"name"`
	Summary *string    `json:"summary"`
	Slug    string     `json:"slug"`
	Status  *OlyStatus `json:"status"`
	Genres  []OlyGenre `json:"genres"`
	Cover   string     `json:"cover"`
	Team    *OlyTeam   `json:"team"`
	Type    string     `json:"type"`

	ChapterCount int `json:"chapter_count"`
}

type OlyStatus struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type OlyGenre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type OlyTeam struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type OlyChapterListResp struct {
	Data []OlyChapter `json:"data"`
	Meta *struct {
		CurrentPage int  `json:"current_page"`
		LastPage    *int `json:"last_page"`
	} `json:"meta"`
}

type OlyChapter struct {
	ID          flexString `json:"id"`
	Name        flexString `json:"name"`
	PublishedAt string     `json:"published_at"`
}

type OlyChapterPagesResp struct {
	Chapter *struct {
		Pages []string `json:"pages"`
	} `json:"chapter"`
}

// OlyComic is the summary shape shared by search, browse and the home feeds
type OlyComic struct {
	ID           *int64 `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	Cover        string `json:"cover"`
	Type         string `json:"type"`
	LastChapters []struct {
		ID          int64      `json:"id"`
		Name        flexString `json:"name"`
		PublishedAt string     `json:"published_at"`
	} `json:"last_chapters"`
}

type OlySearchResp struct {
	Data []OlyComic `json:"data"`
}

type OlyBrowseResp struct {
	Data struct {
		Series struct {
			Data []OlyComic `json:"data"`
		} `json:"series"`
	} `json:"data"`
}

type OlyNewChaptersResp struct {
	Data []OlyComic `json:"data"`
}

type OlyHomeResp struct {
	Data struct {
		PopularComics embeddedComics `json:"popular_comics"`
	} `json:"data"`
}

type OlyGenresStatusesResp struct {
	Genres   []OlyGenre  `json:"genres"`
	Statuses []OlyStatus `json:"statuses"`
}

// flexString accepts a JSON string or number. The API is not consistent
// about quoting ids and chapter names.
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}

	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}

// embeddedComics decodes the home page's popular list, which the API sends
// as a JSON array encoded inside a string. A plain array is accepted too.
type embeddedComics []OlyComic

func (e *embeddedComics) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*e = nil
		return nil
	}

	if len(b) > 0 && b[0] == '"' {
		var inner string
		if err := json.Unmarshal(b, &inner); err != nil {
			return err
		}
		if inner == "" {
			*e = nil
			return nil
		}
		b = []byte(inner)
	}

	var comics []OlyComic
	if err := json.Unmarshal(b, &comics); err != nil {
		return err
	}
	*e = comics
	return nil
}
