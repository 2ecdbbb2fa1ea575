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

// SectionType is the host's rendering hint for a home section
type SectionType string

const (
	SectionFeatured        SectionType = "featured"
	SectionSingleRowNormal SectionType = "singleRowNormal"
)

// HomeSection is one titled row of the landing page
type HomeSection struct {
	ID                string         `json:"id"`
	Title             string         `json:"title"`
	Type              SectionType    `json:"type"`
	ContainsMoreItems bool           `json:"contains_more_items"`
	Items             []PartialManga `json:"items"`
}

// Metadata is the opaque paging cursor handed back to the host. Search
// paging uses Page, section paging uses Offset.
type Metadata struct {
	Page   int `json:"page,omitempty"`
	Offset int `json:"offset,omitempty"`
}

// PagedResults is one page of partial manga plus the cursor for the next
type PagedResults struct {
	Results  []PartialManga `json:"results"`
	Metadata *Metadata      `json:"metadata,omitempty"`
}

// SearchQuery holds a free text title and the selected filter tags
type SearchQuery struct {
	Title        string `json:"title,omitempty"`
	IncludedTags []Tag  `json:"included_tags,omitempty"`
}
