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

// Package publish creates posts, replies, likes and shares from activities.
package publish

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dimkr/tootgraph/as"
	"github.com/dimkr/tootgraph/mapper"
	"github.com/dimkr/tootgraph/mastodon"
)

// ErrTargetNotFound is returned when the post a reply, a like or a share points to cannot be found.
var ErrTargetNotFound = errors.New("target not found")

// API is the part of the Mastodon API used to publish.
type API interface {
	CreateStatus(context.Context, *mastodon.NewStatus) (*mastodon.Status, error)
	Favourite(ctx context.Context, id string) (*mastodon.Status, error)
	Reblog(ctx context.Context, id string) (*mastodon.Status, error)
	Download(ctx context.Context, url string) ([]byte, error)
	UploadMedia(ctx context.Context, name string, content []byte, description string) (*mastodon.Attachment, error)
}

// Resolver finds the post a reply, a like or a share points to.
type Resolver interface {
	ResolveBaseObject(ctx context.Context, candidates []string) (*as.Object, error)
}

// Result describes a published activity.
type Result struct {
	// Type is post, comment, like or repost.
	Type string

	// Description is a human-readable name of the action.
	Description string

	ID  string
	URL string

	// Native is the status returned by the API.
	Native *mastodon.Status

	// Activity is Native, converted back to an activity.
	Activity *as.Object
}

// Router publishes activities as the current user.
type Router struct {
	Mapper   *mapper.Mapper
	API      API
	Resolver Resolver

	// Self is the current user. Only its ID is required.
	Self *mastodon.Account
}

func New(m *mapper.Mapper, api API, resolver Resolver, self *mastodon.Account) *Router {
	return &Router{Mapper: m, API: api, Resolver: resolver, Self: self}
}

func (r *Router) resolve(ctx context.Context, plan *mapper.Plan) (*as.Object, error) {
	base, err := r.Resolver.ResolveBaseObject(ctx, plan.Targets)
	if err != nil {
		return nil, err
	}

	if base == nil || base.ID == "" {
		return nil, fmt.Errorf("%w: %v", ErrTargetNotFound, plan.Targets)
	}

	slog.DebugContext(ctx, "Resolved target", "kind", plan.Kind, "id", base.ID, "url", base.URL)
	return base, nil
}

// Publish performs the API calls planned by [mapper.Mapper.ActivityToPublishRequest].
//
// Media attachments are uploaded one by one, in order, and the first failure aborts the
// publish. Nothing is retried.
func (r *Router) Publish(ctx context.Context, activity *as.Object) (*Result, error) {
	plan, err := r.Mapper.ActivityToPublishRequest(activity)
	if err != nil {
		return nil, err
	}

	switch plan.Kind {
	case mapper.KindLike:
		return r.like(ctx, plan)

	case mapper.KindShare:
		return r.share(ctx, plan)

	default:
		return r.post(ctx, plan)
	}
}

func (r *Router) post(ctx context.Context, plan *mapper.Plan) (*Result, error) {
	req := mastodon.NewStatus{Status: plan.Status}

	if plan.Kind == mapper.KindReply {
		base, err := r.resolve(ctx, plan)
		if err != nil {
			return nil, err
		}
		req.InReplyToID = base.ID
	}

	for _, upload := range plan.Media {
		content, err := r.API.Download(ctx, upload.URL)
		if err != nil {
			return nil, fmt.Errorf("failed to download %s: %w", upload.URL, err)
		}

		attachment, err := r.API.UploadMedia(ctx, upload.URL, content, upload.Description)
		if err != nil {
			return nil, fmt.Errorf("failed to upload %s: %w", upload.URL, err)
		}

		req.MediaIDs = append(req.MediaIDs, attachment.ID)
	}

	status, err := r.API.CreateStatus(ctx, &req)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", plan.Kind, err)
	}

	activity, err := r.Mapper.StatusToActivity(status)
	if err != nil {
		return nil, err
	}

	result := Result{
		Type:        "post",
		Description: "toot",
		ID:          status.ID,
		URL:         status.URL,
		Native:      status,
		Activity:    activity,
	}

	if plan.Kind == mapper.KindReply {
		result.Type = "comment"
		result.Description = "reply"
	}

	slog.InfoContext(ctx, "Published", "kind", plan.Kind, "id", status.ID, "media", len(req.MediaIDs))
	return &result, nil
}

func (r *Router) like(ctx context.Context, plan *mapper.Plan) (*Result, error) {
	base, err := r.resolve(ctx, plan)
	if err != nil {
		return nil, err
	}

	status, err := r.API.Favourite(ctx, base.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to like %s: %w", base.ID, err)
	}

	like, err := r.Mapper.MakeLike(status, r.Self)
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "Liked", "id", status.ID)

	return &Result{
		Type:        "like",
		Description: "favorite",
		ID:          status.ID,
		URL:         status.URL,
		Native:      status,
		Activity:    like,
	}, nil
}

func (r *Router) share(ctx context.Context, plan *mapper.Plan) (*Result, error) {
	base, err := r.resolve(ctx, plan)
	if err != nil {
		return nil, err
	}

	status, err := r.API.Reblog(ctx, base.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to share %s: %w", base.ID, err)
	}

	original := status
	if status.Reblog != nil {
		original = status.Reblog
	}

	var share *as.Object
	if status.Reblog != nil {
		share, err = r.Mapper.StatusToActivity(status)
	} else {
		share, err = r.Mapper.MakeShare(original, r.Self)
	}
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "Shared", "id", original.ID)

	return &Result{
		Type:        "repost",
		Description: "boost",
		ID:          original.ID,
		URL:         original.URL,
		Native:      status,
		Activity:    share,
	}, nil
}
