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

import "Olympus/pkg/util"

// MangaStatus is the publication state of a series
type MangaStatus string

const (
	StatusOngoing   MangaStatus = "ongoing"
	StatusCompleted MangaStatus = "completed"
	StatusAbandoned MangaStatus = "abandoned"
	StatusHiatus    MangaStatus = "hiatus"
)

// Keys are folded with util.Fold.
var localizedStatus = map[string]MangaStatus{
	"activo":                        StatusOngoing,
	"finalizado":                    StatusCompleted,
	"abandonado por el scan":        StatusAbandoned,
	"pausado por el autor (hiatus)": StatusHiatus,
}

// ParseStatus maps the site's localized status label. Matching ignores case
// and accents. Unknown or empty labels are treated as ongoing.
func ParseStatus(label string) MangaStatus {
	if status, ok := localizedStatus[util.Fold(label)]; ok {
		return status
	}
	return StatusOngoing
}

// String returns a display label
func (s MangaStatus) String() string {
	switch s {
	case StatusCompleted:
		return "Completed"
	case StatusAbandoned:
		return "Abandoned"
	case StatusHiatus:
		return "Hiatus"
	default:
		return "Ongoing"
	}
}
