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

package rpc

import (
	"context"
	"net/rpc"
	"time"

	"Olympus/pkg/core"
	"Olympus/pkg/engine"
	"Olympus/pkg/provider"
)

// DefaultProvider is used when a request names no provider
const DefaultProvider = "olympus"

// Server holds what the services share
type Server struct {
	engine  *engine.Engine
	version string
	timeout time.Duration
}

// NewServer creates a net/rpc server with every service registered
func NewServer(e *engine.Engine, version string) (*rpc.Server, error) {
	server := rpc.NewServer()

	services := &Server{
		engine:  e,
		version: version,
		timeout: 2 * time.Minute,
	}

	if err := server.RegisterName("Version", &VersionService{server: services}); err != nil {
		return nil, err
	}
	if err := server.RegisterName("Providers", &ProvidersService{server: services}); err != nil {
		return nil, err
	}
	if err := server.RegisterName("Source", &SourceService{server: services}); err != nil {
		return nil, err
	}

	return server, nil
}

func (s *Server) provider(id string) (provider.Provider, error) {
	if id == "" {
		id = DefaultProvider
	}
	return s.engine.GetProvider(id)
}

func (s *Server) opContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), s.timeout)
}

// --- Version Service ---

type VersionService struct {
	server *Server
}

type VersionRequest struct{}

type VersionResponse struct {
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
	LogFile   string `json:"log_file,omitempty"`
}

func (s *VersionService) Get(req *VersionRequest, resp *VersionResponse) error {
	info := GetRuntimeInfo()
	*resp = VersionResponse{
		Version:   s.server.version,
		GoVersion: info.GoVersion,
		OS:        info.OS,
		Arch:      info.Arch,
		LogFile:   "disabled",
	}

	if logFile := s.server.engine.LogFile(); logFile != "" {
		resp.LogFile = logFile
	}
	return nil
}

// --- Providers Service ---

type ProvidersService struct {
	server *Server
}

type ProvidersRequest struct{}

type ProvidersResponse []core.SourceInfo

func (s *ProvidersService) List(req *ProvidersRequest, resp *ProvidersResponse) error {
	providers := s.server.engine.AllProviders()

	result := make([]core.SourceInfo, len(providers))
	for i, p := range providers {
		result[i] = p.Info()
	}

	*resp = result
	return nil
}

// --- Source Service ---

// SourceService exposes the operations of one content source
type SourceService struct {
	server *Server
}

type MangaRequest struct {
	Provider string `json:"provider,omitempty"`
	MangaID  string `json:"manga_id"`
}

type ChapterRequest struct {
	Provider  string `json:"provider,omitempty"`
	MangaID   string `json:"manga_id"`
	ChapterID string `json:"chapter_id"`
}

type SearchRequest struct {
	Provider string           `json:"provider,omitempty"`
	Query    core.SearchQuery `json:"query"`
	Metadata *core.Metadata   `json:"metadata,omitempty"`
}

type SectionRequest struct {
	Provider  string         `json:"provider,omitempty"`
	SectionID string         `json:"section_id"`
	Metadata  *core.Metadata `json:"metadata,omitempty"`
}

type ProviderRequest struct {
	Provider string `json:"provider,omitempty"`
}

type ShareResponse struct {
	URL string `json:"url"`
}

func (s *SourceService) Details(req *MangaRequest, resp *core.Manga) error {
	if req.MangaID == "" {
		return InvalidInput("SourceService", "Details", "manga_id", req.MangaID)
	}
	p, err := s.server.provider(req.Provider)
	if err != nil {
		return Failed(err, "SourceService", "Details", map[string]interface{}{"provider": req.Provider})
	}

	ctx, cancel := s.server.opContext()
	defer cancel()

	manga, err := p.GetMangaDetails(ctx, req.MangaID)
	if err != nil {
		return Failed(err, "SourceService", "Details", map[string]interface{}{"manga_id": req.MangaID})
	}
	*resp = *manga
	return nil
}

func (s *SourceService) Chapters(req *MangaRequest, resp *[]core.ChapterInfo) error {
	if req.MangaID == "" {
		return InvalidInput("SourceService", "Chapters", "manga_id", req.MangaID)
	}
	p, err := s.server.provider(req.Provider)
	if err != nil {
		return Failed(err, "SourceService", "Chapters", map[string]interface{}{"provider": req.Provider})
	}

	ctx, cancel := s.server.opContext()
	defer cancel()

	chapters, err := p.GetChapters(ctx, req.MangaID)
	if err != nil {
		return Failed(err, "SourceService", "Chapters", map[string]interface{}{"manga_id": req.MangaID})
	}
	*resp = chapters
	return nil
}

func (s *SourceService) Pages(req *ChapterRequest, resp *core.ChapterDetails) error {
	if req.MangaID == "" || req.ChapterID == "" {
		return InvalidInput("SourceService", "Pages", "chapter_id", req.MangaID+"/"+req.ChapterID)
	}
	p, err := s.server.provider(req.Provider)
	if err != nil {
		return Failed(err, "SourceService", "Pages", map[string]interface{}{"provider": req.Provider})
	}

	ctx, cancel := s.server.opContext()
	defer cancel()

	details, err := p.GetChapterDetails(ctx, req.MangaID, req.ChapterID)
	if err != nil {
		return Failed(err, "SourceService", "Pages", map[string]interface{}{
			"manga_id":   req.MangaID,
			"chapter_id": req.ChapterID,
		})
	}
	*resp = *details
	return nil
}

func (s *SourceService) Search(req *SearchRequest, resp *core.PagedResults) error {
	p, err := s.server.provider(req.Provider)
	if err != nil {
		return Failed(err, "SourceService", "Search", map[string]interface{}{"provider": req.Provider})
	}

	ctx, cancel := s.server.opContext()
	defer cancel()

	results, err := p.GetSearchResults(ctx, req.Query, req.Metadata)
	if err != nil {
		return Failed(err, "SourceService", "Search", map[string]interface{}{"query": req.Query.Title})
	}
	*resp = *results
	return nil
}

// Home collects the emitted sections in emission order
func (s *SourceService) Home(req *ProviderRequest, resp *[]core.HomeSection) error {
	p, err := s.server.provider(req.Provider)
	if err != nil {
		return Failed(err, "SourceService", "Home", map[string]interface{}{"provider": req.Provider})
	}

	ctx, cancel := s.server.opContext()
	defer cancel()

	var sections []core.HomeSection
	err = p.GetHomePageSections(ctx, func(section core.HomeSection) {
		sections = append(sections, section)
	})
	if err != nil {
		return Failed(err, "SourceService", "Home", nil)
	}
	*resp = sections
	return nil
}

func (s *SourceService) ViewMore(req *SectionRequest, resp *core.PagedResults) error {
	p, err := s.server.provider(req.Provider)
	if err != nil {
		return Failed(err, "SourceService", "ViewMore", map[string]interface{}{"provider": req.Provider})
	}

	ctx, cancel := s.server.opContext()
	defer cancel()

	results, err := p.GetViewMoreItems(ctx, req.SectionID, req.Metadata)
	if err != nil {
		return Failed(err, "SourceService", "ViewMore", map[string]interface{}{"section_id": req.SectionID})
	}
	*resp = *results
	return nil
}

func (s *SourceService) Tags(req *ProviderRequest, resp *[]core.TagSection) error {
	p, err := s.server.provider(req.Provider)
	if err != nil {
		return Failed(err, "SourceService", "Tags", map[string]interface{}{"provider": req.Provider})
	}

	ctx, cancel := s.server.opContext()
	defer cancel()

	sections, err := p.GetSearchTags(ctx)
	if err != nil {
		return Failed(err, "SourceService", "Tags", nil)
	}
	*resp = sections
	return nil
}

func (s *SourceService) Share(req *MangaRequest, resp *ShareResponse) error {
	if req.MangaID == "" {
		return InvalidInput("SourceService", "Share", "manga_id", req.MangaID)
	}
	p, err := s.server.provider(req.Provider)
	if err != nil {
		return Failed(err, "SourceService", "Share", map[string]interface{}{"provider": req.Provider})
	}

	resp.URL = p.GetMangaShareURL(req.MangaID)
	return nil
}
