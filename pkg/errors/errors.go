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

package errors

import (
	stderrors "errors"
	"fmt"
)

var (
	As     = stderrors.As
	Is     = stderrors.Is
	Unwrap = stderrors.Unwrap
)

var (
	ErrNotFound       = stderrors.New("resource not found")
	ErrUnauthorized   = stderrors.New("unauthorized")
	ErrBadRequest     = stderrors.New("bad request")
	ErrServerError    = stderrors.New("server error")
	ErrTimeout        = stderrors.New("operation timed out")
	ErrRateLimit      = stderrors.New("rate limit exceeded")
	ErrInvalidInput   = stderrors.New("invalid input")
	ErrNetworkIssue   = stderrors.New("network connection issue")
	ErrParse          = stderrors.New("malformed response")
	ErrInvalidSection = stderrors.New("invalid homepage section")
)

func IsNotFound(err error) bool       { return Is(err, ErrNotFound) }
func IsUnauthorized(err error) bool   { return Is(err, ErrUnauthorized) }
func IsTimeouted(err error) bool      { return Is(err, ErrTimeout) }
func IsRateLimited(err error) bool    { return Is(err, ErrRateLimit) }
func IsParseFailure(err error) bool   { return Is(err, ErrParse) }
func IsInvalidSection(err error) bool { return Is(err, ErrInvalidSection) }

// NotFound reports that a manga produced no usable content.
func NotFound(mangaID, format string, args ...interface{}) error {
	return Track(wrapf(ErrNotFound, format, args...)).
		WithContext("manga_id", mangaID).
		AsNotFound().
		Error()
}

// InvalidSection reports a view-more request for a section that cannot be paged.
func InvalidSection(sectionID string) error {
	return Track(wrapf(ErrInvalidSection, "Invalid homepage section ID: %s", sectionID)).
		WithContext("section_id", sectionID).
		AsCategory(CategoryValidation).
		Error()
}

// ParseFailure reports a body that could not be decoded.
func ParseFailure(cause error, url string) error {
	return Track(&joined{msg: fmt.Sprintf("malformed JSON response: %v", cause), errs: []error{ErrParse, cause}}).
		WithContext("url", url).
		AsParser().
		Error()
}

func wrapf(sentinel error, format string, args ...interface{}) error {
	return &joined{msg: fmt.Sprintf(format, args...), errs: []error{sentinel}}
}

// joined carries its own message while still matching the wrapped errors.
type joined struct {
	msg  string
	errs []error
}

func (j *joined) Error() string   { return j.msg }
func (j *joined) Unwrap() []error { return j.errs }
