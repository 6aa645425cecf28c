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

// Package toot ties the mapper, the resolver, the aggregator and the publish router to one
// Mastodon account.
package toot

import (
	"context"
	"errors"
	"fmt"
	"html"
	"log/slog"

	"github.com/dimkr/tootgraph/aggregate"
	"github.com/dimkr/tootgraph/api"
	"github.com/dimkr/tootgraph/as"
	"github.com/dimkr/tootgraph/cfg"
	"github.com/dimkr/tootgraph/logcontext"
	"github.com/dimkr/tootgraph/mapper"
	"github.com/dimkr/tootgraph/mastodon"
	"github.com/dimkr/tootgraph/publish"
	"github.com/dimkr/tootgraph/resolver"
	"golang.org/x/oauth2"
)

type Options struct {
	// BaseURL is the instance URL.
	BaseURL string

	Tokens oauth2.TokenSource

	// UserID is the account ID of the token owner. It's looked up if empty.
	UserID string

	Client api.Client

	// Config is optional.
	Config *cfg.Config

	// BlockList is optional.
	BlockList *resolver.BlockList
}

// Source reads and publishes activities as one Mastodon user.
type Source struct {
	Mapper *mapper.Mapper
	API    *api.API

	// Self is the current user. If the user ID was passed to [New], only its ID is set.
	Self *mastodon.Account

	aggregator *aggregate.Aggregator
	router     *publish.Router
}

// New creates a [Source]. It calls the API only if opts.UserID is empty.
func New(ctx context.Context, opts Options) (*Source, error) {
	if opts.Tokens == nil {
		return nil, &mapper.ValidationError{Field: "tokens", Reason: "no access token"}
	}

	if opts.Client == nil {
		return nil, &mapper.ValidationError{Field: "client", Reason: "no HTTP client"}
	}

	config := opts.Config
	if config == nil {
		config = &cfg.Config{}
		config.FillDefaults()
	}

	m, err := mapper.New(opts.BaseURL, config.MaxStatusLength)
	if err != nil {
		return nil, err
	}

	s := Source{
		Mapper: m,
		API:    api.New(m.BaseURL, opts.Tokens, opts.Client, config),
	}

	if opts.UserID == "" {
		self, err := s.API.VerifyCredentials(logcontext.NewRequest(ctx))
		if err != nil {
			return nil, fmt.Errorf("failed to look up user ID: %w", err)
		}

		if self.ID == "" {
			return nil, errors.New("failed to look up user ID: no ID")
		}

		slog.DebugContext(ctx, "Looked up user ID", "id", self.ID, "acct", self.Acct)
		s.Self = self
	} else {
		s.Self = &mastodon.Account{ID: opts.UserID}
	}

	s.aggregator = aggregate.New(m, s.API, s.Self.ID)
	s.router = publish.New(m, s.API, resolver.New(m, s.API, opts.BlockList), s.Self)

	return &s, nil
}

func (s *Source) UserID() string {
	return s.Self.ID
}

func (s *Source) ListActivities(ctx context.Context, opts aggregate.Options) ([]*as.Object, error) {
	return s.aggregator.ListActivities(logcontext.NewRequest(ctx), opts)
}

func (s *Source) Preview(activity *as.Object) (*publish.Preview, error) {
	return s.router.Preview(activity)
}

func (s *Source) Publish(ctx context.Context, activity *as.Object) (*publish.Result, error) {
	return s.router.Publish(logcontext.NewRequest(ctx), activity)
}

// GetActor returns an account. If id is empty, it returns the current user.
func (s *Source) GetActor(ctx context.Context, id string) (*as.Actor, error) {
	if id == "" {
		id = s.Self.ID
	}

	account, err := s.API.Account(logcontext.NewRequest(ctx), id)
	if err != nil {
		return nil, err
	}

	return s.Mapper.AccountToActor(account)
}

// GetComment returns a status, without enrichment.
func (s *Source) GetComment(ctx context.Context, id string) (*as.Object, error) {
	if id == "" {
		return nil, &mapper.ValidationError{Field: "id", Reason: "empty"}
	}

	status, err := s.API.Status(logcontext.NewRequest(ctx), id)
	if err != nil {
		return nil, err
	}

	return s.Mapper.StatusToObject(status)
}

// EmbedPost returns HTML that embeds a post using the instance's embed script.
func (s *Source) EmbedPost(url string) string {
	return fmt.Sprintf(
		`<script src="%s/embed.js" async="async"></script><iframe src="%s/embed" class="mastodon-embed" style="max-width: 100%%; border: 0" width="400" allowfullscreen="allowfullscreen"></iframe>`,
		html.EscapeString(s.Mapper.BaseURL),
		html.EscapeString(url),
	)
}
