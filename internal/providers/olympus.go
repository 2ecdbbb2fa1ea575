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
	"fmt"
	"strings"

	"Olympus/pkg/core"
	"Olympus/pkg/engine"
	"Olympus/pkg/engine/logger"
	"Olympus/pkg/engine/network"
	"Olympus/pkg/errors"
	"Olympus/pkg/provider"
	"Olympus/pkg/provider/registry"
)

const (
	OlympusID      = "olympus"
	OlympusVersion = "1.0.11"

	SectionPopular     = "popular_comics"
	SectionNewChapters = "new_chapters"
)

func init() {
	registry.Register(NewOlympusProvider)
}

// OlympusProvider serves OlympusScan through its JSON API
type OlympusProvider struct {
	engine    *engine.Engine
	client    *network.Client
	log       logger.Logger
	endpoints olympusEndpoints
	siteURL   string
	types     *contentTypes
}

// NewOlympusProvider creates a new OlympusScan provider
func NewOlympusProvider(e *engine.Engine) provider.Provider {
	store, err := e.OpenStore("olympus")
	if err != nil {
		e.Logger.Warn("Falling back to in-memory content type cache: %v", err)
		store, _ = engine.MemoryStore("olympus")
	}

	return &OlympusProvider{
		engine:    e,
		client:    e.Network,
		log:       e.Logger,
		endpoints: olympusEndpoints{base: strings.TrimSuffix(e.Config.BaseURL, "/")},
		siteURL:   e.Config.SiteURL,
		types:     newContentTypes(store, e.Logger),
	}
}

func (p *OlympusProvider) ID() string      { return OlympusID }
func (p *OlympusProvider) Name() string    { return "OlympusScan" }
func (p *OlympusProvider) SiteURL() string { return p.siteURL }

func (p *OlympusProvider) Description() string {
	return "Extension that pulls manga from OlympusScan"
}

// Info describes the source to the host
func (p *OlympusProvider) Info() core.SourceInfo {
	return core.SourceInfo{
		ID:            OlympusID,
		Name:          p.Name(),
		Version:       OlympusVersion,
		Author:        "Seitenca",
		Description:   p.Description(),
		Language:      "Spanish",
		ContentRating: core.RatingAdult,
		WebsiteURL:    p.siteURL,
		Intents:       []string{"manga_chapters", "homepage_sections"},
	}
}

// Initialize logs the effective connection settings
func (p *OlympusProvider) Initialize(ctx context.Context) error {
	cfg := p.engine.Config
	p.log.Info("OlympusScan source %s using %s (%.1f req/s, timeout %v, cloudflare %t)",
		OlympusVersion, p.endpoints.base, cfg.RequestsPerSecond, cfg.RequestTimeout, cfg.CloudflareBypass)
	return nil
}

func (p *OlympusProvider) fetch(ctx context.Context, url string, v interface{}) error {
	if err := p.client.FetchJSON(ctx, url, v); err != nil {
		return errors.TP(err, OlympusID)
	}
	return nil
}

// GetMangaDetails fetches the full details of a series
func (p *OlympusProvider) GetMangaDetails(ctx context.Context, mangaID string) (*core.Manga, error) {
	data, ct, err := withContentType(ctx, p.types, "details", mangaID,
		func(ctx context.Context, ct core.ContentType) (*OlyManga, error) {
			var resp OlyMangaResp
			url := p.endpoints.series(mangaID, ct)
			if err := p.fetch(ctx, url, &resp); err != nil {
				return nil, err
			}
			if resp.Data == nil {
				return nil, errors.Track(errors.ErrNotFound).
					WithMessagef("no %s series data for %s", ct, mangaID).
					WithContext("manga_id", mangaID).
					WithContext("url", url).
					AsNotFound().
					Error()
			}
			return resp.Data, nil
		})
	if err != nil {
		return nil, err
	}

	return parseMangaDetails(mangaID, data, ct), nil
}

// GetChapters fetches every chapter of a series. Page 1 tells how many pages
// exist; the rest are fetched one after another in page order.
func (p *OlympusProvider) GetChapters(ctx context.Context, mangaID string) ([]core.ChapterInfo, error) {
	first, ct, err := withContentType(ctx, p.types, "chapters", mangaID,
		func(ctx context.Context, ct core.ContentType) (*OlyChapterListResp, error) {
			var resp OlyChapterListResp
			if err := p.fetch(ctx, p.endpoints.chapters(mangaID, 1, ct), &resp); err != nil {
				return nil, err
			}
			return &resp, nil
		})
	if err != nil {
		return nil, err
	}

	lastPage := 1
	if first.Meta != nil && first.Meta.LastPage != nil && *first.Meta.LastPage > 1 {
		lastPage = *first.Meta.LastPage
	}
	p.log.Debug("Fetching %d chapter page(s) of %s (%s)", lastPage, mangaID, ct)

	chapters := make([]core.ChapterInfo, 0, len(first.Data))
	for _, c := range first.Data {
		chapters = append(chapters, parseChapter(c))
	}

	for page := 2; page <= lastPage; page++ {
		var resp OlyChapterListResp
		if err := p.fetch(ctx, p.endpoints.chapters(mangaID, page, ct), &resp); err != nil {
			return nil, errors.Track(err).WithContext("page", page).Error()
		}
		for _, c := range resp.Data {
			chapters = append(chapters, parseChapter(c))
		}
	}

	if len(chapters) == 0 {
		return nil, errors.NotFound(mangaID, "Couldn't find any chapters for mangaId: %s!", mangaID)
	}
	return chapters, nil
}

// GetChapterDetails fetches the page images of a chapter. Novel chapters have
// no images; a single placeholder page is returned and the result is marked
// degraded.
func (p *OlympusProvider) GetChapterDetails(ctx context.Context, mangaID, chapterID string) (*core.ChapterDetails, error) {
	details, ct, err := withContentType(ctx, p.types, "pages", mangaID,
		func(ctx context.Context, ct core.ContentType) (*core.ChapterDetails, error) {
			url := p.endpoints.chapter(mangaID, chapterID, ct)
			var resp OlyChapterPagesResp
			if err := p.fetch(ctx, url, &resp); err != nil {
				return nil, err
			}

			if ct == core.ContentNovel {
				d := parseChapterPages(chapterID, mangaID, []string{novelPlaceholder})
				d.Degraded = true
				return d, nil
			}

			if resp.Chapter == nil {
				return nil, errors.ParseFailure(fmt.Errorf("response has no chapter object"), url)
			}
			return parseChapterPages(chapterID, mangaID, resp.Chapter.Pages), nil
		})
	if err != nil {
		return nil, err
	}

	if details.Degraded {
		p.log.Warn("Chapter %s of %s is a %s chapter; serving placeholder page", chapterID, mangaID, ct)
	}
	return details, nil
}

// GetSearchResults searches by title, or browses the catalogue with the
// selected filters when no title is given
func (p *OlympusProvider) GetSearchResults(ctx context.Context, query core.SearchQuery, metadata *core.Metadata) (*core.PagedResults, error) {
	page := 1
	if metadata != nil && metadata.Page > 0 {
		page = metadata.Page
	}

	var items []core.PartialManga
	if title := strings.TrimSpace(query.Title); title != "" {
		var resp OlySearchResp
		if err := p.fetch(ctx, p.endpoints.search(title, page), &resp); err != nil {
			return nil, err
		}
		items = parseSearchResults(resp.Data)
	} else {
		var resp OlyBrowseResp
		if err := p.fetch(ctx, p.endpoints.browse(page, searchFilters(query.IncludedTags)), &resp); err != nil {
			return nil, err
		}
		items = parseSearchResults(resp.Data.Series.Data)
	}

	return &core.PagedResults{
		Results:  items,
		Metadata: &core.Metadata{Page: page + 1},
	}, nil
}

// GetHomePageSections emits the popular section followed by the recent
// chapters section. Both feeds are fetched before anything is emitted.
func (p *OlympusProvider) GetHomePageSections(ctx context.Context, emit func(core.HomeSection)) error {
	var recent OlyNewChaptersResp
	if err := p.fetch(ctx, p.endpoints.newChapters(1), &recent); err != nil {
		return err
	}

	var home OlyHomeResp
	if err := p.fetch(ctx, p.endpoints.home(), &home); err != nil {
		return err
	}

	emit(core.HomeSection{
		ID:                SectionPopular,
		Title:             "Populares Del Dia",
		Type:              core.SectionFeatured,
		ContainsMoreItems: false,
		Items:             parseComicList(home.Data.PopularComics),
	})
	emit(core.HomeSection{
		ID:                SectionNewChapters,
		Title:             "Capítulos Recientes",
		Type:              core.SectionSingleRowNormal,
		ContainsMoreItems: true,
		Items:             parseComicList(recent.Data),
	})
	return nil
}

// GetViewMoreItems pages through a home section. Only the recent chapters
// section can be paged.
func (p *OlympusProvider) GetViewMoreItems(ctx context.Context, sectionID string, metadata *core.Metadata) (*core.PagedResults, error) {
	if sectionID != SectionNewChapters {
		return nil, errors.InvalidSection(sectionID)
	}

	offset := 0
	if metadata != nil {
		offset = metadata.Offset
	}
	next := offset + 1

	var resp OlyNewChaptersResp
	if err := p.fetch(ctx, p.endpoints.newChapters(next), &resp); err != nil {
		return nil, err
	}

	return &core.PagedResults{
		Results:  parseComicList(resp.Data),
		Metadata: &core.Metadata{Offset: next},
	}, nil
}

// GetSearchTags returns the genre, status and type filters
func (p *OlympusProvider) GetSearchTags(ctx context.Context) ([]core.TagSection, error) {
	var resp OlyGenresStatusesResp
	if err := p.fetch(ctx, p.endpoints.genresStatuses(), &resp); err != nil {
		return nil, err
	}
	return parseTags(&resp), nil
}

// GetMangaShareURL returns the public link of a series
func (p *OlympusProvider) GetMangaShareURL(mangaID string) string {
	return p.endpoints.share(mangaID)
}
