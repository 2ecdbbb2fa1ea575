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

import "time"

// Manga represents the full details of a series
type Manga struct {
	ID          string       `json:"id"`
	Titles      []string     `json:"titles"`
	Cover       string       `json:"cover"`
	Author      string       `json:"author"`
	Description string       `json:"description"`
	Status      MangaStatus  `json:"status"`
	ContentType ContentType  `json:"content_type,omitempty"`
	Tags        []TagSection `json:"tags,omitempty"`
}

// Title returns the primary title
func (m Manga) Title() string {
	if len(m.Titles) == 0 {
		return ""
	}
	return m.Titles[0]
}

// PartialManga is the summary shown in search results and home sections
type PartialManga struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Cover    string `json:"cover"`
	Subtitle string `json:"subtitle,omitempty"`
}

// ChapterInfo represents basic chapter information
type ChapterInfo struct {
	ID       string     `json:"id"`
	Title    string     `json:"title"`
	Number   float64    `json:"number"`
	Language string     `json:"language"`
	Date     *time.Time `json:"date,omitempty"`
}

// ChapterDetails holds the ordered page images of a chapter. Degraded is set
// when the real pages could not be served and a placeholder stands in.
type ChapterDetails struct {
	ID       string `json:"id"`
	MangaID  string `json:"manga_id"`
	Pages    []Page `json:"pages"`
	Degraded bool   `json:"degraded,omitempty"`
}

// PageURLs returns the page image URLs in reading order
func (c ChapterDetails) PageURLs() []string {
	urls := make([]string, len(c.Pages))
	for i, p := range c.Pages {
		urls[i] = p.URL
	}
	return urls
}

// Page represents a single page in a chapter
type Page struct {
	Index int    `json:"index"`
	URL   string `json:"url"`
}
