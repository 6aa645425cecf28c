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

package aggregate

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dimkr/tootgraph/as"
	"github.com/dimkr/tootgraph/mastodon"
)

// enrich adds replies, likes and shares to the post an activity represents: the reblogged
// post if the status is a reblog.
func (a *Aggregator) enrich(ctx context.Context, opts *Options, status *mastodon.Status, activity *as.Object) error {
	if !opts.FetchReplies && !opts.FetchLikes && !opts.FetchShares {
		return nil
	}

	target := status
	if status.Reblog != nil {
		target = status.Reblog
	}

	obj := activity.Object
	if obj == nil {
		return nil
	}

	slog.DebugContext(ctx, "Enriching activity", "id", activity.ID, "status", target.ID)

	if opts.FetchReplies {
		c, err := a.API.Context(ctx, target.ID)
		if err != nil {
			return fmt.Errorf("failed to fetch replies to %s: %w", target.ID, err)
		}

		replies := as.Collection{Items: make([]*as.Object, 0, len(c.Descendants))}
		for i := range c.Descendants {
			reply, err := a.Mapper.StatusToActivity(&c.Descendants[i])
			if err != nil {
				return err
			}
			replies.Items = append(replies.Items, reply)
		}

		obj.Replies = &replies
	}

	if opts.FetchLikes {
		accounts, err := a.API.FavouritedBy(ctx, target.ID)
		if err != nil {
			return fmt.Errorf("failed to fetch likes of %s: %w", target.ID, err)
		}

		for i := range accounts {
			like, err := a.Mapper.MakeLike(target, &accounts[i])
			if err != nil {
				return err
			}
			obj.Tags = append(obj.Tags, like)
		}
	}

	if opts.FetchShares {
		accounts, err := a.API.RebloggedBy(ctx, target.ID)
		if err != nil {
			return fmt.Errorf("failed to fetch shares of %s: %w", target.ID, err)
		}

		for i := range accounts {
			share, err := a.Mapper.MakeShare(target, &accounts[i])
			if err != nil {
				return err
			}
			obj.Tags = append(obj.Tags, share)
		}
	}

	return nil
}
