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

package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/dimkr/tootgraph/mastodon"
)

func pathOf(format, id string) string {
	return fmt.Sprintf(format, url.PathEscape(id))
}

func (a *API) VerifyCredentials(ctx context.Context) (*mastodon.Account, error) {
	var account mastodon.Account
	if err := a.get(ctx, mastodon.PathVerifyCredentials, nil, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

func (a *API) Account(ctx context.Context, id string) (*mastodon.Account, error) {
	var account mastodon.Account
	if err := a.get(ctx, pathOf(mastodon.PathAccount, id), nil, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

func (a *API) AccountStatuses(ctx context.Context, id string) ([]mastodon.Status, error) {
	var statuses []mastodon.Status
	if err := a.get(ctx, pathOf(mastodon.PathAccountStatuses, id), nil, &statuses); err != nil {
		return nil, err
	}
	return statuses, nil
}

func (a *API) HomeTimeline(ctx context.Context) ([]mastodon.Status, error) {
	var statuses []mastodon.Status
	if err := a.get(ctx, mastodon.PathHomeTimeline, nil, &statuses); err != nil {
		return nil, err
	}
	return statuses, nil
}

func (a *API) Status(ctx context.Context, id string) (*mastodon.Status, error) {
	var status mastodon.Status
	if err := a.get(ctx, pathOf(mastodon.PathStatus, id), nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// Context returns the ancestors and descendants of a status.
func (a *API) Context(ctx context.Context, id string) (*mastodon.Context, error) {
	var c mastodon.Context
	if err := a.get(ctx, pathOf(mastodon.PathContext, id), nil, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (a *API) FavouritedBy(ctx context.Context, id string) ([]mastodon.Account, error) {
	var accounts []mastodon.Account
	if err := a.get(ctx, pathOf(mastodon.PathFavouritedBy, id), nil, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

func (a *API) RebloggedBy(ctx context.Context, id string) ([]mastodon.Account, error) {
	var accounts []mastodon.Account
	if err := a.get(ctx, pathOf(mastodon.PathRebloggedBy, id), nil, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

// Notifications returns notifications, except those of the excluded types.
func (a *API) Notifications(ctx context.Context, exclude ...mastodon.NotificationType) ([]mastodon.Notification, error) {
	query := url.Values{}
	for _, t := range exclude {
		query.Add("exclude_types[]", string(t))
	}

	var notifications []mastodon.Notification
	if err := a.get(ctx, mastodon.PathNotifications, query, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

// Search searches for q. If resolve is true, the instance tries to fetch q if it's a URL it doesn't know.
func (a *API) Search(ctx context.Context, q string, resolve bool) (*mastodon.SearchResults, error) {
	query := url.Values{"q": {q}}
	if resolve {
		query.Set("resolve", strconv.FormatBool(resolve))
	}

	var results mastodon.SearchResults
	if err := a.get(ctx, mastodon.PathSearch, query, &results); err != nil {
		return nil, err
	}
	return &results, nil
}

func (a *API) Favourite(ctx context.Context, id string) (*mastodon.Status, error) {
	var status mastodon.Status
	if err := a.post(ctx, pathOf(mastodon.PathFavourite, id), nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

func (a *API) Reblog(ctx context.Context, id string) (*mastodon.Status, error) {
	var status mastodon.Status
	if err := a.post(ctx, pathOf(mastodon.PathReblog, id), nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

func (a *API) CreateStatus(ctx context.Context, s *mastodon.NewStatus) (*mastodon.Status, error) {
	var status mastodon.Status
	if err := a.post(ctx, mastodon.PathStatuses, s, &status); err != nil {
		return nil, err
	}
	return &status, nil
}
