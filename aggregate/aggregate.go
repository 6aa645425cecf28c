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

// Package aggregate lists activities and enriches them with replies, likes, shares and mentions.
package aggregate

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dimkr/tootgraph/as"
	"github.com/dimkr/tootgraph/mapper"
	"github.com/dimkr/tootgraph/mastodon"
)

type Group string

const (
	Default Group = ""
	Self    Group = "@self"
	Friends Group = "@friends"
	Search  Group = "@search"
)

// API is the part of the Mastodon API used to list activities.
type API interface {
	HomeTimeline(context.Context) ([]mastodon.Status, error)
	AccountStatuses(ctx context.Context, id string) ([]mastodon.Status, error)
	Status(ctx context.Context, id string) (*mastodon.Status, error)
	Search(ctx context.Context, q string, resolve bool) (*mastodon.SearchResults, error)
	Context(ctx context.Context, id string) (*mastodon.Context, error)
	FavouritedBy(ctx context.Context, id string) ([]mastodon.Account, error)
	RebloggedBy(ctx context.Context, id string) ([]mastodon.Account, error)
	Notifications(ctx context.Context, exclude ...mastodon.NotificationType) ([]mastodon.Notification, error)
}

// Options selects activities and the enrichments applied to them.
type Options struct {
	Group Group

	// UserID is the account listed by [Self]. The current user is listed if empty.
	UserID string

	// ActivityID selects a single status, regardless of Group.
	ActivityID string

	SearchQuery string

	FetchReplies  bool
	FetchLikes    bool
	FetchShares   bool
	FetchMentions bool
}

// Aggregator lists the activities of one user.
type Aggregator struct {
	Mapper *mapper.Mapper
	API    API

	// UserID is the ID of the current user.
	UserID string
}

func New(m *mapper.Mapper, api API, userID string) *Aggregator {
	return &Aggregator{Mapper: m, API: api, UserID: userID}
}

func (a *Aggregator) list(ctx context.Context, opts *Options) ([]mastodon.Status, error) {
	if opts.ActivityID != "" {
		status, err := a.API.Status(ctx, opts.ActivityID)
		if err != nil {
			return nil, err
		}
		return []mastodon.Status{*status}, nil
	}

	switch opts.Group {
	case Self:
		userID := opts.UserID
		if userID == "" {
			userID = a.UserID
		}
		return a.API.AccountStatuses(ctx, userID)

	case Search:
		results, err := a.API.Search(ctx, opts.SearchQuery, false)
		if err != nil {
			return nil, err
		}
		return results.Statuses, nil

	default:
		return a.API.HomeTimeline(ctx)
	}
}

func (a *Aggregator) validate(opts *Options) error {
	switch opts.Group {
	case Default, Self:
		return nil

	case Friends:
		if opts.UserID != "" {
			return fmt.Errorf("%w: %s cannot be combined with a user ID", mapper.ErrInvalidArgument, opts.Group)
		}
		return nil

	case Search:
		if opts.SearchQuery == "" && opts.ActivityID == "" {
			return fmt.Errorf("%w: %s requires a query", mapper.ErrInvalidArgument, opts.Group)
		}
		return nil

	default:
		return fmt.Errorf("%w: unknown group %s", mapper.ErrInvalidArgument, opts.Group)
	}
}

// ListActivities returns activities in the order they're returned by the API, followed by
// mentions of the current user if requested.
//
// Invalid options fail with [mapper.ErrInvalidArgument] before any API call is made.
func (a *Aggregator) ListActivities(ctx context.Context, opts Options) ([]*as.Object, error) {
	if err := a.validate(&opts); err != nil {
		return nil, err
	}

	statuses, err := a.list(ctx, &opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}

	activities := make([]*as.Object, 0, len(statuses))

	for i := range statuses {
		activity, err := a.Mapper.StatusToActivity(&statuses[i])
		if err != nil {
			return nil, err
		}

		if err := a.enrich(ctx, &opts, &statuses[i], activity); err != nil {
			return nil, err
		}

		activities = append(activities, activity)
	}

	if !opts.FetchMentions {
		return activities, nil
	}

	mentions, err := a.mentions(ctx)
	if err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "Fetched mentions", "count", len(mentions))
	return append(activities, mentions...), nil
}

func (a *Aggregator) mentions(ctx context.Context) ([]*as.Object, error) {
	notifications, err := a.API.Notifications(ctx, mastodon.FollowNotification, mastodon.FavouriteNotification, mastodon.ReblogNotification)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch mentions: %w", err)
	}

	var activities []*as.Object
	for _, n := range notifications {
		if n.Type != mastodon.MentionNotification || n.Status == nil {
			continue
		}

		activity, err := a.Mapper.StatusToActivity(n.Status)
		if err != nil {
			return nil, err
		}

		activities = append(activities, activity)
	}

	return activities, nil
}
