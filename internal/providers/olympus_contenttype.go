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

package providers

import (
	"context"

	"Olympus/pkg/core"
	"Olympus/pkg/engine/logger"
	"Olympus/pkg/errors"

	"github.com/philippgille/gokv"
	"golang.org/x/sync/singleflight"
)

// contentTypes remembers whether a series is published as a comic or a novel.
// The first request for a series probes comic then novel; later requests go
// straight to the cached variant.
type contentTypes struct {
	store gokv.Store
	group singleflight.Group
	log   logger.Logger
}

func newContentTypes(store gokv.Store, log logger.Logger) *contentTypes {
	return &contentTypes{store: store, log: log}
}

func contentTypeKey(mangaID string) string {
	return "type:" + mangaID
}

// Get returns the cached content type of a series
func (c *contentTypes) Get(mangaID string) (core.ContentType, bool) {
	var raw string
	found, err := c.store.Get(contentTypeKey(mangaID), &raw)
	if err != nil {
		c.log.Warn("Content type cache read failed for %s: %v", mangaID, err)
		return "", false
	}
	if !found {
		return "", false
	}

	ct, err := core.ParseContentType(raw)
	if err != nil {
		return "", false
	}
	return ct, true
}

// Set caches the content type of a series
func (c *contentTypes) Set(mangaID string, ct core.ContentType) {
	if err := c.store.Set(contentTypeKey(mangaID), string(ct)); err != nil {
		c.log.Warn("Content type cache write failed for %s: %v", mangaID, err)
	}
}

type resolved[T any] struct {
	value T
	ct    core.ContentType
}

// withContentType runs fetch with the series' content type. When the type is
// not yet known, fetch is tried as a comic and then as a novel; the variant
// that succeeds is cached. Concurrent callers for the same operation and
// series share one probe. The probe is detached from the cancellation of
// whichever caller started it and stays bounded by the per-request timeout;
// each caller stops waiting when its own ctx ends.
func withContentType[T any](ctx context.Context, c *contentTypes, op, mangaID string,
	fetch func(context.Context, core.ContentType) (T, error)) (T, core.ContentType, error) {
	var zero T

	if ct, ok := c.Get(mangaID); ok {
		v, err := fetch(ctx, ct)
		return v, ct, err
	}

	probeCtx := context.WithoutCancel(ctx)
	ch := c.group.DoChan(op+":"+mangaID, func() (interface{}, error) {
		v, err := fetch(probeCtx, core.ContentComic)
		if err == nil {
			c.Set(mangaID, core.ContentComic)
			return resolved[T]{value: v, ct: core.ContentComic}, nil
		}
		c.log.Debug("%s: %s is not available as comic, trying novel: %v", op, mangaID, err)

		v, err = fetch(probeCtx, core.ContentNovel)
		if err != nil {
			return nil, err
		}
		c.Set(mangaID, core.ContentNovel)
		return resolved[T]{value: v, ct: core.ContentNovel}, nil
	})

	select {
	case <-ctx.Done():
		return zero, "", errors.FromContext(ctx).
			WithContext("manga_id", mangaID).
			WithContext("operation", op).
			Error()
	case res := <-ch:
		if res.Err != nil {
			return zero, "", res.Err
		}
		r := res.Val.(resolved[T])
		return r.value, r.ct, nil
	}
}
