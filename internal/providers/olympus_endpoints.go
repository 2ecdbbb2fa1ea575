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
	"fmt"
	"net/url"

	"Olympus/pkg/core"
	"Olympus/pkg/util"
)

// olympusEndpoints builds request URLs against the API root
type olympusEndpoints struct {
	base string
}

func (e olympusEndpoints) series(mangaID string, ct core.ContentType) string {
	return fmt.Sprintf("%s/series/%s?page=1&direction=desc&type=%s", e.base, url.PathEscape(mangaID), ct)
}

func (e olympusEndpoints) chapters(mangaID string, page int, ct core.ContentType) string {
	return fmt.Sprintf("%s/series/%s/chapters?page=%d&direction=desc&type=%s", e.base, url.PathEscape(mangaID), page, ct)
}

// chapter has no type parameter for comics; novels need ?type=novel
func (e olympusEndpoints) chapter(mangaID, chapterID string, ct core.ContentType) string {
	u := fmt.Sprintf("%s/series/%s/chapters/%s", e.base, url.PathEscape(mangaID), url.PathEscape(chapterID))
	if ct == core.ContentNovel {
		u += "?type=novel"
	}
	return u
}

func (e olympusEndpoints) search(title string, page int) string {
	return fmt.Sprintf("%s/search?name=%s&page=%d", e.base, util.EncodeURI(title), page)
}

// browseFilters are the optional filter parameters of the catalogue listing
type browseFilters struct {
	Genre  string
	Status string
	Type   string
}

func (e olympusEndpoints) browse(page int, f browseFilters) string {
	u := fmt.Sprintf("%s/series?page=%d", e.base, page)
	if f.Genre != "" {
		u += "&genres=" + url.QueryEscape(f.Genre)
	}
	if f.Status != "" {
		u += "&status=" + url.QueryEscape(f.Status)
	}
	if f.Type != "" {
		u += "&type=" + url.QueryEscape(f.Type)
	}
	return u
}

func (e olympusEndpoints) newChapters(page int) string {
	return fmt.Sprintf("%s/sf/new-chapters?page=%d", e.base, page)
}

func (e olympusEndpoints) home() string {
	return e.base + "/sf/home"
}

func (e olympusEndpoints) genresStatuses() string {
	return e.base + "/genres-statuses"
}

func (e olympusEndpoints) share(mangaID string) string {
	return fmt.Sprintf("%s/series/%s", e.base, mangaID)
}
