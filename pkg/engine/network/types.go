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

package network

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"Olympus/pkg/errors"
)

// Response represents an HTTP response with its body read into memory
type Response struct {
	StatusCode int
	Status     string
	Headers    http.Header
	Body       []byte

	URL    string
	Method string
}

// newResponse reads and closes an http.Response
func newResponse(httpResp *http.Response) (*Response, error) {
	if httpResp == nil {
		return nil, errors.Track(fmt.Errorf("cannot create response from nil http.Response")).
			AsNetwork().Error()
	}
	defer func() { _ = httpResp.Body.Close() }()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, errors.Track(err).
			WithContext("url", httpResp.Request.URL.String()).
			WithMessage("Failed to read response body").
			AsNetwork().Error()
	}

	return &Response{
		StatusCode: httpResp.StatusCode,
		Status:     httpResp.Status,
		Headers:    httpResp.Header,
		Body:       body,
		URL:        httpResp.Request.URL.String(),
		Method:     httpResp.Request.Method,
	}, nil
}

// JSON unmarshals the response body. Empty or malformed bodies yield a
// parsing error that matches errors.ErrParse.
func (r *Response) JSON(v interface{}) error {
	if r == nil {
		return errors.ParseFailure(fmt.Errorf("response is nil"), "")
	}

	if len(r.Body) == 0 {
		return errors.ParseFailure(fmt.Errorf("empty response body"), r.URL)
	}

	if err := json.Unmarshal(r.Body, v); err != nil {
		parseErr := errors.ParseFailure(err, r.URL)
		return errors.Track(parseErr).
			WithContext("response_preview", r.Preview(200)).
			WithContext("body_length", len(r.Body)).
			Error()
	}

	return nil
}

// Preview returns at most n bytes of the body for logs and error context
func (r *Response) Preview(n int) string {
	if len(r.Body) == 0 {
		return "empty response"
	}
	return string(r.Body[:min(len(r.Body), n)])
}

// IsSuccess reports a 2xx status
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}
