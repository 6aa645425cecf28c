/*
Copyright 2026 Dima Krasner

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package resolver finds the post a reply, a like or a share points to.
package resolver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"path"
	"strings"

	"github.com/dimkr/tootgraph/api"
	"github.com/dimkr/tootgraph/as"
	"github.com/dimkr/tootgraph/data"
	"github.com/dimkr/tootgraph/mapper"
	"github.com/dimkr/tootgraph/mastodon"
)

// Searcher searches for posts by URL.
type Searcher interface {
	Search(ctx context.Context, q string, resolve bool) (*mastodon.SearchResults, error)
}

// Resolver resolves URLs of posts, local or remote, to posts known to the instance.
type Resolver struct {
	Mapper    *mapper.Mapper
	API       Searcher
	BlockList *BlockList
}

func New(m *mapper.Mapper, searcher Searcher, blockList *BlockList) *Resolver {
	return &Resolver{Mapper: m, API: searcher, BlockList: blockList}
}

// localID extracts the status ID from a local URL like https://foo.com/@alice/123.
func localID(u *url.URL) string {
	id := path.Base(strings.TrimSuffix(u.Path, "/"))
	if id == "/" || id == "." {
		return ""
	}
	return id
}

// ResolveBaseObject returns the first candidate URL that points to a post.
//
// Local URLs are converted to an object with the status ID as its ID, without a search.
// Remote URLs are searched for, and the first status found is returned with its own ID
// and URL. A candidate that cannot be found is skipped. ResolveBaseObject returns nil if
// no candidate is found.
func (r *Resolver) ResolveBaseObject(ctx context.Context, candidates []string) (*as.Object, error) {
	for _, candidate := range data.Dedup(candidates) {
		if id, ok := r.Mapper.LocalStatusID(candidate); ok {
			return &as.Object{ID: id, URL: r.Mapper.WebStatusURL(id)}, nil
		} else if strings.HasPrefix(candidate, "tag:") {
			slog.DebugContext(ctx, "Skipping tag URI of another instance", "id", candidate)
			continue
		}

		u, err := url.Parse(candidate)
		if err != nil || u.Host == "" {
			slog.WarnContext(ctx, "Skipping invalid URL", "url", candidate, "error", err)
			continue
		}

		if r.Mapper.IsLocal(u) {
			if id := localID(u); id != "" {
				return &as.Object{ID: id, URL: candidate}, nil
			}

			slog.DebugContext(ctx, "Skipping local URL without ID", "url", candidate)
			continue
		}

		if r.BlockList != nil && r.BlockList.Contains(u.Host) {
			slog.WarnContext(ctx, "Skipping blocked URL", "url", candidate)
			continue
		}

		results, err := r.API.Search(ctx, candidate, true)
		if errors.Is(err, api.ErrNotFound) {
			slog.DebugContext(ctx, "Post not found", "url", candidate)
			continue
		} else if err != nil {
			return nil, fmt.Errorf("failed to resolve %s: %w", candidate, err)
		}

		if len(results.Statuses) == 0 {
			slog.DebugContext(ctx, "No results", "url", candidate)
			continue
		}

		status := &results.Statuses[0]

		obj, err := r.Mapper.StatusToObject(status)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve %s: %w", candidate, err)
		}

		obj.ID = status.ID
		if status.URL != "" {
			obj.URL = status.URL
		}

		return obj, nil
	}

	return nil, nil
}
