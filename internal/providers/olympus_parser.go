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
	"strconv"
	"strings"

	"Olympus/pkg/core"
	"Olympus/pkg/util"
)

const (
	noDescription = "No description available"

	// novelPlaceholder stands in for the pages of novel chapters, which the
	// API serves as text
	novelPlaceholder = "https://media.discordapp.net/attachments/981559883033870358/1140673174904778872/gomen.webp"

	chapterLanguage = "es"
)

func parseMangaDetails(mangaID string, data *OlyManga, ct core.ContentType) *core.Manga {
	manga := &core.Manga{
		ID:          mangaID,
		Titles:      []string{""},
		Cover:       util.NormalizeImageURL(data.Cover),
		Description: noDescription,
		Status:      core.StatusOngoing,
		ContentType: ct,
	}

	if data.Name != nil {
		manga.Titles[0] = *data.Name
	}
	if data.Team != nil {
		manga.Author = data.Team.Name
	}
	if data.Summary != nil {
		manga.Description = *data.Summary
	}
	if data.Status != nil {
		manga.Status = core.ParseStatus(data.Status.Name)
	}

	genres := make([]core.Tag, 0, len(data.Genres))
	for _, g := range data.Genres {
		genres = append(genres, core.Tag{ID: strconv.FormatInt(g.ID, 10), Label: g.Name, Kind: core.TagGenre})
	}
	manga.Tags = []core.TagSection{{ID: "0", Label: "genres", Tags: genres}}

	return manga
}

func parseChapter(c OlyChapter) core.ChapterInfo {
	name := strings.TrimSpace(string(c.Name))

	info := core.ChapterInfo{
		ID:       string(c.ID),
		Title:    "Chapter " + name,
		Language: chapterLanguage,
		Date:     util.ParseNullableDate(c.PublishedAt),
	}

	if n, err := strconv.ParseFloat(name, 64); err == nil {
		info.Number = n
		info.Title = "Chapter " + strconv.FormatFloat(n, 'f', -1, 64)
	}
	return info
}

func parseChapterPages(chapterID, mangaID string, urls []string) *core.ChapterDetails {
	pages := make([]core.Page, len(urls))
	for i, u := range urls {
		pages[i] = core.Page{Index: i, URL: u}
	}
	return &core.ChapterDetails{ID: chapterID, MangaID: mangaID, Pages: pages}
}

// parseComicList maps summaries, dropping entries without a slug or title
// and entries whose numeric id was already seen in this list
func parseComicList(comics []OlyComic) []core.PartialManga {
	seen := make(map[int64]struct{}, len(comics))
	items := make([]core.PartialManga, 0, len(comics))

	for _, c := range comics {
		if c.Slug == "" || c.Name == "" {
			continue
		}
		if c.ID != nil {
			if _, dup := seen[*c.ID]; dup {
				continue
			}
			seen[*c.ID] = struct{}{}
		}
		items = append(items, parseComic(c))
	}
	return items
}

func parseComic(c OlyComic) core.PartialManga {
	item := core.PartialManga{
		ID:    c.Slug,
		Title: c.Name,
		Cover: util.NormalizeImageURL(c.Cover),
	}
	if len(c.LastChapters) > 0 && c.LastChapters[0].Name != "" {
		item.Subtitle = "Capitulo " + string(c.LastChapters[0].Name)
	}
	return item
}

func parseSearchResults(comics []OlyComic) []core.PartialManga {
	items := make([]core.PartialManga, 0, len(comics))
	for _, c := range comics {
		if c.Slug == "" {
			continue
		}
		items = append(items, core.PartialManga{
			ID:    c.Slug,
			Title: c.Name,
			Cover: util.NormalizeImageURL(c.Cover),
		})
	}
	return items
}

func parseTags(resp *OlyGenresStatusesResp) []core.TagSection {
	genres := make([]core.Tag, 0, len(resp.Genres))
	for _, g := range resp.Genres {
		genres = append(genres, core.Tag{ID: strconv.FormatInt(g.ID, 10), Label: g.Name, Kind: core.TagGenre})
	}

	statuses := make([]core.Tag, 0, len(resp.Statuses))
	for _, s := range resp.Statuses {
		statuses = append(statuses, core.Tag{
			ID:    core.StatusTagPrefix + strconv.FormatInt(s.ID, 10),
			Label: s.Name,
			Kind:  core.TagStatus,
		})
	}

	return []core.TagSection{
		{ID: "0", Label: "genres", Tags: genres},
		{ID: "1", Label: "status", Tags: statuses},
		{ID: "2", Label: "type", Tags: []core.Tag{
			{ID: string(core.ContentComic), Label: "Comic", Kind: core.TagType},
			{ID: string(core.ContentNovel), Label: "Novela (broken)", Kind: core.TagType},
		}},
	}
}

// searchFilters folds the selected tags into the three filter slots; a later
// tag of the same kind replaces an earlier one
func searchFilters(tags []core.Tag) browseFilters {
	var f browseFilters
	for _, t := range tags {
		t = t.Resolve()
		switch t.Kind {
		case core.TagStatus:
			f.Status = t.Value()
		case core.TagType:
			f.Type = t.Value()
		default:
			f.Genre = t.Value()
		}
	}
	return f
}
