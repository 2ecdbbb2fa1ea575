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
	"net/http"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
)

// headerTransport sets default headers on every outgoing request without
// overriding headers the caller set explicitly.
type headerTransport struct {
	base    http.RoundTripper
	headers http.Header
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())
	for k, v := range t.headers {
		if clone.Header.Get(k) == "" {
			clone.Header[k] = v
		}
	}
	return t.base.RoundTrip(clone)
}

// newTransport builds the round tripper chain used by the client
func newTransport(opts Options) http.RoundTripper {
	var base http.RoundTripper = http.DefaultTransport.(*http.Transport).Clone()
	if opts.CloudflareBypass {
		base = cloudflarebp.AddCloudFlareByPass(base)
	}

	headers := http.Header{}
	headers.Set("Accept", "application/json")
	if opts.UserAgent != "" {
		headers.Set("User-Agent", opts.UserAgent)
	}
	if opts.Referer != "" {
		headers.Set("Referer", opts.Referer)
	}

	return &headerTransport{base: base, headers: headers}
}
