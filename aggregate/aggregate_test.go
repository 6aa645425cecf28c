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
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/dimkr/tootgraph/api"
	"github.com/dimkr/tootgraph/apitest"
	"github.com/dimkr/tootgraph/as"
	"github.com/dimkr/tootgraph/cfg"
	"github.com/dimkr/tootgraph/mapper"
	"github.com/dimkr/tootgraph/mastodon"
	"github.com/stretchr/testify/assert"
)

func newTestAggregator(t *testing.T, client *apitest.Client) *Aggregator {
	var cfg cfg.Config
	cfg.FillDefaults()

	m, err := mapper.New(apitest.InstanceURL, cfg.MaxStatusLength)
	if err != nil {
		t.Fatalf("Failed to create mapper: %v", err)
	}

	return New(m, api.New(apitest.InstanceURL, apitest.Tokens(), client, &cfg), apitest.Account().ID)
}

func statuses(l ...*mastodon.Status) []*mastodon.Status {
	return l
}

func TestListActivities_Defaults(t *testing.T) {
	assert := assert.New(t)

	client := apitest.NewClient().
		ExpectJSON(http.MethodGet, apitest.URL(mastodon.PathHomeTimeline), statuses(apitest.Status(), apitest.ReplyStatus(), apitest.MediaStatus()))

	activities, err := newTestAggregator(t, client).ListActivities(context.Background(), Options{})
	assert.NoError(err)
	assert.Equal([]*as.Object{apitest.Activity(), apitest.ReplyActivity(), apitest.MediaActivity()}, activities)
	assert.Empty(client.Data)
}

func TestListActivities_Friends(t *testing.T) {
	assert := assert.New(t)

	client := apitest.NewClient().
		ExpectJSON(http.MethodGet, apitest.URL(mastodon.PathHomeTimeline), statuses(apitest.Status(), apitest.ReplyStatus(), apitest.MediaStatus()))

	activities, err := newTestAggregator(t, client).ListActivities(context.Background(), Options{Group: Friends})
	assert.NoError(err)
	assert.Equal([]*as.Object{apitest.Activity(), apitest.ReplyActivity(), apitest.MediaActivity()}, activities)
	assert.Empty(client.Data)
}

func TestListActivities_Reblog(t *testing.T) {
	assert := assert.New(t)

	client := apitest.NewClient().
		ExpectJSON(http.MethodGet, apitest.URL(mastodon.PathHomeTimeline), statuses(apitest.ReblogStatus()))

	activities, err := newTestAggregator(t, client).ListActivities(context.Background(), Options{})
	assert.NoError(err)
	assert.Equal([]*as.Object{apitest.ShareActivity()}, activities)
}

func TestListActivities_FetchReplies(t *testing.T) {
	assert := assert.New(t)

	client := apitest.NewClient().
		ExpectJSON(http.MethodGet, apitest.URL(mastodon.PathHomeTimeline), statuses(apitest.Status())).
		ExpectJSON(http.MethodGet, apitest.URL(fmt.Sprintf(mastodon.PathContext, "123")), &mastodon.Context{
			Ancestors:   []mastodon.Status{},
			Descendants: []mastodon.Status{*apitest.ReplyStatus(), *apitest.ReplyStatus()},
		})

	activities, err := newTestAggregator(t, client).ListActivities(context.Background(), Options{FetchReplies: true})
	assert.NoError(err)
	assert.Empty(client.Data)

	withReplies := apitest.Activity()
	withReplies.Object.Replies = &as.Collection{Items: []*as.Object{apitest.ReplyActivity(), apitest.ReplyActivity()}}
	assert.Equal([]*as.Object{withReplies}, activities)
}

func TestListActivities_FetchLikes(t *testing.T) {
	assert := assert.New(t)

	client := apitest.NewClient().
		ExpectJSON(http.MethodGet, apitest.URL(mastodon.PathHomeTimeline), statuses(apitest.Status())).
		ExpectJSON(http.MethodGet, apitest.URL(fmt.Sprintf(mastodon.PathFavouritedBy, "123")), []*mastodon.Account{apitest.Account(), apitest.Account()})

	activities, err := newTestAggregator(t, client).ListActivities(context.Background(), Options{FetchLikes: true})
	assert.NoError(err)
	assert.Empty(client.Data)

	withLikes := apitest.Activity()
	withLikes.Object.Tags = append(withLikes.Object.Tags, apitest.Like(), apitest.Like())
	assert.Equal([]*as.Object{withLikes}, activities)
}

func TestListActivities_FetchShares(t *testing.T) {
	assert := assert.New(t)

	client := apitest.NewClient().
		ExpectJSON(http.MethodGet, apitest.URL(mastodon.PathHomeTimeline), statuses(apitest.Status())).
		ExpectJSON(http.MethodGet, apitest.URL(fmt.Sprintf(mastodon.PathRebloggedBy, "123")), []*mastodon.Account{apitest.Account(), apitest.RemoteAccount()})

	activities, err := newTestAggregator(t, client).ListActivities(context.Background(), Options{FetchShares: true})
	assert.NoError(err)
	assert.Empty(client.Data)

	withShares := apitest.Activity()
	withShares.Object.Tags = append(withShares.Object.Tags, apitest.Share(), apitest.ShareByRemote())
	assert.Equal([]*as.Object{withShares}, activities)
}

func TestListActivities_FetchLikesOfReblog(t *testing.T) {
	assert := assert.New(t)

	client := apitest.NewClient().
		ExpectJSON(http.MethodGet, apitest.URL(mastodon.PathHomeTimeline), statuses(apitest.ReblogStatus())).
		ExpectJSON(http.MethodGet, apitest.URL(fmt.Sprintf(mastodon.PathFavouritedBy, "123")), []*mastodon.Account{apitest.Account()})

	activities, err := newTestAggregator(t, client).ListActivities(context.Background(), Options{FetchLikes: true})
	assert.NoError(err)
	assert.Empty(client.Data)

	withLikes := apitest.ShareActivity()
	withLikes.Object.Tags = append(withLikes.Object.Tags, apitest.Like())
	assert.Equal([]*as.Object{withLikes}, activities)
}

func TestListActivities_AllEnrichments(t *testing.T) {
	assert := assert.New(t)

	client := apitest.NewClient().
		ExpectJSON(http.MethodGet, apitest.URL(mastodon.PathHomeTimeline), statuses(apitest.Status(), apitest.RemoteStatus())).
		ExpectJSON(http.MethodGet, apitest.URL(fmt.Sprintf(mastodon.PathContext, "123")), &mastodon.Context{}).
		ExpectJSON(http.MethodGet, apitest.URL(fmt.Sprintf(mastodon.PathFavouritedBy, "123")), []*mastodon.Account{}).
		ExpectJSON(http.MethodGet, apitest.URL(fmt.Sprintf(mastodon.PathRebloggedBy, "123")), []*mastodon.Account{}).
		ExpectJSON(http.MethodGet, apitest.URL(fmt.Sprintf(mastodon.PathContext, "999")), &mastodon.Context{}).
		ExpectJSON(http.MethodGet, apitest.URL(fmt.Sprintf(mastodon.PathFavouritedBy, "999")), []*mastodon.Account{apitest.RemoteAccount()}).
		ExpectJSON(http.MethodGet, apitest.URL(fmt.Sprintf(mastodon.PathRebloggedBy, "999")), []*mastodon.Account{})

	activities, err := newTestAggregator(t, client).ListActivities(context.Background(), Options{FetchReplies: true, FetchLikes: true, FetchShares: true})
	assert.NoError(err)
	assert.Empty(client.Data)
	assert.Len(activities, 2)

	assert.Equal(&as.Collection{Items: []*as.Object{}}, activities[0].Object.Replies)
	assert.Len(activities[0].Object.Tags, 2)
	assert.Len(activities[1].Object.Tags, 3)
	assert.Equal("tag:foo.com:999_favorited_by_999", activities[1].Object.Tags[2].ID)
	assert.Equal(apitest.RemoteStatusURL+"#favorited-by-999", activities[1].Object.Tags[2].URL)

	// per-activity enrichment follows listing order
	assert.Equal(apitest.URL(fmt.Sprintf(mastodon.PathContext, "123")), client.Requests[1].URL)
	assert.Equal(apitest.URL(fmt.Sprintf(mastodon.PathContext, "999")), client.Requests[4].URL)
}

func TestListActivities_FetchMentions(t *testing.T) {
	assert := assert.New(t)

	follow := apitest.MentionNotification()
	follow.Type = mastodon.FollowNotification

	noStatus := apitest.MentionNotification()
	noStatus.Status = nil

	client := apitest.NewClient().
		ExpectJSON(http.MethodGet, apitest.URL(mastodon.PathHomeTimeline), statuses(apitest.Status())).
		ExpectJSON(
			http.MethodGet,
			apitest.URL(mastodon.PathNotifications, "exclude_types[]", "follow", "exclude_types[]", "favourite", "exclude_types[]", "reblog"),
			[]*mastodon.Notification{apitest.MentionNotification(), follow, noStatus},
		)

	activities, err := newTestAggregator(t, client).ListActivities(context.Background(), Options{FetchMentions: true})
	assert.NoError(err)
	assert.Empty(client.Data)
	assert.Equal([]*as.Object{apitest.Activity(), apitest.MediaActivity()}, activities)
}

func TestListActivities_ActivityID(t *testing.T) {
	assert := assert.New(t)

	client := apitest.NewClient().
		ExpectJSON(http.MethodGet, apitest.URL(fmt.Sprintf(mastodon.PathStatus, "123")), apitest.Status())

	activities, err := newTestAggregator(t, client).ListActivities(context.Background(), Options{ActivityID: "123"})
	assert.NoError(err)
	assert.Equal([]*as.Object{apitest.Activity()}, activities)
	assert.Empty(client.Data)
}

func TestListActivities_SelfUserID(t *testing.T) {
	assert := assert.New(t)

	client := apitest.NewClient().
		ExpectJSON(http.MethodGet, apitest.URL(fmt.Sprintf(mastodon.PathAccountStatuses, "456")), statuses(apitest.Status()))

	activities, err := newTestAggregator(t, client).ListActivities(context.Background(), Options{Group: Self, UserID: "456"})
	assert.NoError(err)
	assert.Equal([]*as.Object{apitest.Activity()}, activities)
	assert.Empty(client.Data)
}

func TestListActivities_SelfDefaultUser(t *testing.T) {
	assert := assert.New(t)

	client := apitest.NewClient().
		ExpectJSON(http.MethodGet, apitest.URL(fmt.Sprintf(mastodon.PathAccountStatuses, "23507")), statuses(apitest.Status()))

	activities, err := newTestAggregator(t, client).ListActivities(context.Background(), Options{Group: Self})
	assert.NoError(err)
	assert.Equal([]*as.Object{apitest.Activity()}, activities)
	assert.Empty(client.Data)
}

func TestListActivities_Search(t *testing.T) {
	assert := assert.New(t)

	client := apitest.NewClient().
		ExpectJSON(http.MethodGet, apitest.URL(mastodon.PathSearch, "q", "indieweb"), &mastodon.SearchResults{Statuses: []mastodon.Status{*apitest.Status(), *apitest.MediaStatus()}})

	activities, err := newTestAggregator(t, client).ListActivities(context.Background(), Options{Group: Search, SearchQuery: "indieweb"})
	assert.NoError(err)
	assert.Equal([]*as.Object{apitest.Activity(), apitest.MediaActivity()}, activities)
	assert.Empty(client.Data)
}

func TestListActivities_SearchNoQuery(t *testing.T) {
	assert := assert.New(t)

	client := apitest.NewClient()

	_, err := newTestAggregator(t, client).ListActivities(context.Background(), Options{Group: Search})
	assert.ErrorIs(err, mapper.ErrInvalidArgument)
	assert.Empty(client.Requests)
}

func TestListActivities_FriendsUserID(t *testing.T) {
	assert := assert.New(t)

	client := apitest.NewClient()

	_, err := newTestAggregator(t, client).ListActivities(context.Background(), Options{Group: Friends, UserID: "345"})
	assert.ErrorIs(err, mapper.ErrInvalidArgument)
	assert.Empty(client.Requests)
}

func TestListActivities_UnknownGroup(t *testing.T) {
	assert := assert.New(t)

	client := apitest.NewClient()

	_, err := newTestAggregator(t, client).ListActivities(context.Background(), Options{Group: "@all"})
	assert.ErrorIs(err, mapper.ErrInvalidArgument)
	assert.Empty(client.Requests)
}

func TestListActivities_EnrichmentError(t *testing.T) {
	assert := assert.New(t)

	client := apitest.NewClient().
		ExpectJSON(http.MethodGet, apitest.URL(mastodon.PathHomeTimeline), statuses(apitest.Status(), apitest.RemoteStatus())).
		Expect(http.MethodGet, apitest.URL(fmt.Sprintf(mastodon.PathFavouritedBy, "123")), http.StatusForbidden, `{"error":"This action is not allowed"}`)

	activities, err := newTestAggregator(t, client).ListActivities(context.Background(), Options{FetchLikes: true})
	assert.Nil(activities)

	var apiErr *api.APIError
	assert.True(errors.As(err, &apiErr))
	assert.Equal("This action is not allowed", apiErr.Message)
	assert.Empty(client.Data)
}

func TestListActivities_InvalidStatus(t *testing.T) {
	assert := assert.New(t)

	status := apitest.Status()
	status.Account.Username = "eve"

	client := apitest.NewClient().
		ExpectJSON(http.MethodGet, apitest.URL(mastodon.PathHomeTimeline), statuses(status))

	_, err := newTestAggregator(t, client).ListActivities(context.Background(), Options{})
	assert.ErrorIs(err, mapper.ErrInvalidArgument)
}
