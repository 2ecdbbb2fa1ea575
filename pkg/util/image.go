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

package util

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

var controlChars = regexp.MustCompile(`[\t\n\r]+`)

// NormalizeImageURL cleans a cover URL as served by the API: surrounding
// whitespace is trimmed, HTML entities are decoded, percent escapes are
// decoded and the result is re-encoded so no literal spaces or entities
// remain. Escapes of URI delimiters such as %3F or %2F stay as they are, so
// a file name containing them keeps its meaning. A URL with malformed
// escapes is encoded as-is.
func NormalizeImageURL(raw string) string {
	s := controlChars.ReplaceAllString(strings.TrimSpace(raw), "")
	if s == "" {
		return ""
	}

	s = html.UnescapeString(s)
	if normalized, ok := reencodeURI(s); ok {
		return normalized
	}
	return EncodeURI(s)
}

// reencodeURI decodes every escape that does not stand for a URI delimiter
// and encodes the result like EncodeURI. Delimiter escapes are copied
// through. It reports false on a malformed escape.
func reencodeURI(s string) (string, bool) {
	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '%' {
			writeURIByte(&b, c)
			continue
		}

		if i+2 >= len(s) || !isHex(s[i+1]) || !isHex(s[i+2]) {
			return "", false
		}

		decoded := unhex(s[i+1])<<4 | unhex(s[i+2])
		if isURIDelimiter(decoded) {
			b.WriteString(s[i : i+3])
		} else {
			writeURIByte(&b, decoded)
		}
		i += 2
	}
	return b.String(), true
}

// EncodeURI percent-encodes every byte outside the URI reserved and
// unreserved sets, leaving an already well-formed URL untouched.
func EncodeURI(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		writeURIByte(&b, s[i])
	}
	return b.String()
}

func writeURIByte(b *strings.Builder, c byte) {
	const hex = "0123456789ABCDEF"
	if keepInURI(c) {
		b.WriteByte(c)
		return
	}
	b.WriteByte('%')
	b.WriteByte(hex[c>>4])
	b.WriteByte(hex[c&0x0F])
}

func keepInURI(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	return strings.IndexByte(";,/?:@&=+$-_.!~*'()#", c) >= 0
}

func isURIDelimiter(c byte) bool {
	return strings.IndexByte(";,/?:@&=+$#", c) >= 0
}

func isHex(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}
