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

import (
	"strings"

	"Olympus/pkg/errors"
)

// StatusTagPrefix marks status filter ids so hosts that only keep the id
// string can still round-trip them.
const StatusTagPrefix = "status-id-"

// TagKind says which search filter slot a tag fills
type TagKind string

const (
	TagGenre  TagKind = "genre"
	TagStatus TagKind = "status"
	TagType   TagKind = "type"
)

// ContentType is the upstream variant a series is published under
type ContentType string

const (
	ContentComic ContentType = "comic"
	ContentNovel ContentType = "novel"
)

// ParseContentType validates a content type string
func ParseContentType(s string) (ContentType, error) {
	switch ContentType(strings.ToLower(strings.TrimSpace(s))) {
	case ContentComic:
		return ContentComic, nil
	case ContentNovel:
		return ContentNovel, nil
	}
	return "", errors.Track(errors.ErrInvalidInput).
		WithMessagef("unknown content type %q", s).
		WithContext("content_type", s).
		Error()
}

// Tag is a single search filter value
type Tag struct {
	ID    string  `json:"id"`
	Label string  `json:"label"`
	Kind  TagKind `json:"kind"`
}

// TagSection groups tags under a heading
type TagSection struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Tags  []Tag  `json:"tags"`
}

// Value returns the id the API expects for this tag's filter parameter
func (t Tag) Value() string {
	if t.Kind == TagStatus {
		return strings.TrimPrefix(t.ID, StatusTagPrefix)
	}
	return t.ID
}

// ParseTagID recovers a tag from a bare id, as sent by hosts that drop the
// kind. Status ids carry the status prefix, content types are the fixed
// vocabulary and everything else is a genre.
func ParseTagID(id string) Tag {
	switch {
	case strings.HasPrefix(id, StatusTagPrefix):
		return Tag{ID: id, Kind: TagStatus}
	case id == string(ContentComic) || id == string(ContentNovel):
		return Tag{ID: id, Kind: TagType}
	default:
		return Tag{ID: id, Kind: TagGenre}
	}
}

// Resolve fills in a missing kind from the id
func (t Tag) Resolve() Tag {
	if t.Kind != "" {
		return t
	}
	parsed := ParseTagID(t.ID)
	parsed.Label = t.Label
	return parsed
}
