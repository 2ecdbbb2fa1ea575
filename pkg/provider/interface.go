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

package provider

import (
	"context"

	"Olympus/pkg/core"
)

// Provider defines the contract between a content source and its host.
// Every method is a single host request; paging state lives in the
// core.Metadata cursor the host passes back.
type Provider interface {
	ID() string
	Name() string
	Description() string
	SiteURL() string
	Info() core.SourceInfo

	Initialize(ctx context.Context) error

	GetMangaDetails(ctx context.Context, mangaID string) (*core.Manga, error)
	GetChapters(ctx context.Context, mangaID string) ([]core.ChapterInfo, error)
	GetChapterDetails(ctx context.Context, mangaID, chapterID string) (*core.ChapterDetails, error)
	GetSearchResults(ctx context.Context, query core.SearchQuery, metadata *core.Metadata) (*core.PagedResults, error)
	GetHomePageSections(ctx context.Context, emit func(core.HomeSection)) error
	GetViewMoreItems(ctx context.Context, sectionID string, metadata *core.Metadata) (*core.PagedResults, error)
	GetSearchTags(ctx context.Context) ([]core.TagSection, error)
	GetMangaShareURL(mangaID string) string
}
