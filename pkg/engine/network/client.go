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
	"fmt"
	"net/http"
	"time"

	"Olympus/pkg/engine/logger"
	"Olympus/pkg/errors"
)

// Options configures a Client
type Options struct {
	RequestsPerSecond float64
	Timeout           time.Duration
	Retries           int
	UserAgent         string
	Referer           string
	CloudflareBypass  bool
}

// Client performs rate-limited GET requests with the standard headers
type Client struct {
	HTTP    *http.Client
	Limiter *RateLimiter
	Retries int
	Logger  logger.Logger
}

// NewClient creates a Client from opts
func NewClient(opts Options, log logger.Logger) *Client {
	if log == nil {
		log = logger.Nop{}
	}
	if opts.RequestsPerSecond <= 0 {
		opts.RequestsPerSecond = 4
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 15 * time.Second
	}

	return &Client{
		HTTP: &http.Client{
			Timeout:   opts.Timeout,
			Transport: newTransport(opts),
		},
		Limiter: NewRateLimiter(opts.RequestsPerSecond),
		Retries: opts.Retries,
		Logger:  log,
	}
}

// Get performs a GET request. Transport failures and 5xx responses are
// retried with exponential backoff up to Retries times; 4xx responses map
// to the matching sentinel errors and are never retried.
func (c *Client) Get(ctx context.Context, url string) (*Response, error) {
	var lastErr error

	for attempt := 0; attempt <= c.Retries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(1<<uint(attempt-1)) * time.Second
			if backoff > 30*time.Second {
				backoff = 30 * time.Second
			}
			c.Logger.Debug("[HTTP] Retrying %s in %v (attempt %d/%d)", url, backoff, attempt+1, c.Retries+1)

			select {
			case <-ctx.Done():
				return nil, errors.FromContext(ctx).WithContext("url", url).Error()
			case <-time.After(backoff):
			}
		}

		resp, err := c.do(ctx, url)
		if err != nil {
			lastErr = err
			if ctx.Err() != nil {
				break
			}
			continue
		}

		if resp.StatusCode >= 500 {
			c.Logger.Debug("[HTTP] Server error %d from %s: %s", resp.StatusCode, url, resp.Preview(500))
			lastErr = errors.Track(errors.ErrServerError).
				WithHTTPContext(http.MethodGet, url, resp.StatusCode).
				AsNetwork().
				Error()
			continue
		}

		if resp.StatusCode >= 400 {
			c.Logger.Debug("[HTTP] Client error %d from %s: %s", resp.StatusCode, url, resp.Preview(500))
			return nil, statusError(url, resp.StatusCode)
		}

		return resp, nil
	}

	return nil, lastErr
}

func (c *Client) do(ctx context.Context, url string) (*Response, error) {
	if err := c.Limiter.Wait(ctx, url); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Track(err).WithContext("url", url).AsCategory(errors.CategoryValidation).Error()
	}

	c.Logger.Debug("[HTTP] GET %s", url)
	started := time.Now()

	httpResp, err := c.HTTP.Do(req)
	if err != nil {
		c.Logger.Debug("[HTTP] Request to %s failed: %v", url, err)
		return nil, errors.Track(fmt.Errorf("%w: %w", errors.ErrNetworkIssue, err)).
			WithContext("url", url).
			DefaultCategory(errors.CategoryNetwork).
			Error()
	}

	resp, err := newResponse(httpResp)
	if err != nil {
		return nil, err
	}

	c.Logger.Debug("[HTTP] %d from %s in %v (%d bytes)", resp.StatusCode, url, time.Since(started), len(resp.Body))
	return resp, nil
}

// FetchJSON performs a GET and decodes the JSON body into result
func (c *Client) FetchJSON(ctx context.Context, url string, result interface{}) error {
	resp, err := c.Get(ctx, url)
	if err != nil {
		return err
	}

	if err := resp.JSON(result); err != nil {
		c.Logger.Warn("[HTTP] Invalid JSON from %s: %s", url, resp.Preview(200))
		return err
	}

	return nil
}

func statusError(url string, status int) error {
	var sentinel error
	switch status {
	case http.StatusNotFound:
		sentinel = errors.ErrNotFound
	case http.StatusUnauthorized, http.StatusForbidden:
		sentinel = errors.ErrUnauthorized
	case http.StatusTooManyRequests:
		sentinel = errors.ErrRateLimit
	default:
		sentinel = errors.ErrBadRequest
	}

	return errors.Track(fmt.Errorf("%w: HTTP %d", sentinel, status)).
		WithHTTPContext(http.MethodGet, url, status).
		DefaultCategory(errors.CategoryNetwork).
		Error()
}
