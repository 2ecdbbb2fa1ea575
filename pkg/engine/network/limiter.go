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
	"context"
	"net/url"
	"sync"

	"Olympus/pkg/errors"

	"golang.org/x/time/rate"
)

// RateLimiter provides per-domain rate limiting. Every domain gets its own
// token bucket with the same ceiling and a burst of one, so requests to a
// host are spaced evenly.
type RateLimiter struct {
	domains map[string]*rate.Limiter
	limit   rate.Limit
	mu      sync.RWMutex
}

// NewRateLimiter creates a limiter allowing requestsPerSecond per domain
func NewRateLimiter(requestsPerSecond float64) *RateLimiter {
	return &RateLimiter{
		domains: make(map[string]*rate.Limiter),
		limit:   rate.Limit(requestsPerSecond),
	}
}

// Wait blocks until a request to rawURL is allowed or ctx is done
func (r *RateLimiter) Wait(ctx context.Context, rawURL string) error {
	domain, err := extractDomain(rawURL)
	if err != nil {
		return errors.Track(err).WithContext("url", rawURL).AsCategory(errors.CategoryValidation).Error()
	}

	if err := r.getLimiter(domain).Wait(ctx); err != nil {
		return errors.Track(err).
			WithContext("domain", domain).
			AsTimeout().
			Error()
	}
	return nil
}

// Limit returns the configured per-domain ceiling
func (r *RateLimiter) Limit() rate.Limit {
	return r.limit
}

// getLimiter returns or creates a limiter for a domain
func (r *RateLimiter) getLimiter(domain string) *rate.Limiter {
	r.mu.RLock()
	limiter, exists := r.domains[domain]
	r.mu.RUnlock()

	if exists {
		return limiter
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Double-check after acquiring write lock
	if limiter, exists := r.domains[domain]; exists {
		return limiter
	}

	limiter = rate.NewLimiter(r.limit, 1)
	r.domains[domain] = limiter
	return limiter
}

func extractDomain(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	return u.Host, nil
}
