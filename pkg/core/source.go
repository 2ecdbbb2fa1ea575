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
	"Olympus/pkg/errors"

	"golang.org/x/mod/semver"
)

// ContentRating of a source
type ContentRating string

const (
	RatingEveryone ContentRating = "everyone"
	RatingMature   ContentRating = "mature"
	RatingAdult    ContentRating = "adult"
)

// SourceInfo describes a source to the host
type SourceInfo struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Version       string        `json:"version"`
	Author        string        `json:"author"`
	Description   string        `json:"description"`
	Language      string        `json:"language"`
	ContentRating ContentRating `json:"content_rating"`
	WebsiteURL    string        `json:"website_url"`
	Intents       []string      `json:"intents,omitempty"`
}

// Validate checks that the info is usable by a host
func (s SourceInfo) Validate() error {
	if s.ID == "" {
		return errors.Track(errors.ErrInvalidInput).WithMessage("source id must not be empty").Error()
	}
	if s.Name == "" {
		return errors.Track(errors.ErrInvalidInput).WithMessage("source name must not be empty").Error()
	}
	if !semver.IsValid("v" + s.Version) {
		return errors.Track(errors.ErrInvalidInput).
			WithMessagef("invalid source version %q", s.Version).
			WithContext("source_id", s.ID).
			Error()
	}
	return nil
}
