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

package apitest

import (
	"net/url"

	"github.com/dimkr/tootgraph/as"
	"github.com/dimkr/tootgraph/mastodon"
	"golang.org/x/oauth2"
)

// Every fixture function returns a new value, so tests can modify it freely.

const (
	InstanceURL = "http://foo.com"
	Host        = "foo.com"
	Token       = "towkin"
)

func tagURI(name string) string {
	return as.TagURI(Host, name)
}

func Account() *mastodon.Account {
	return &mastodon.Account{
		ID:          "23507",
		Username:    "snarfed",
		Acct:        "snarfed",
		URL:         "http://foo.com/@snarfed",
		DisplayName: "Ryan Barrett",
		Avatar:      "http://foo.com/snarfed.png",
		CreatedAt:   "2017-04-19T20:38:19.704Z",
		Note:        "my note",
		Fields: []mastodon.Field{
			{
				Name:       "foo",
				Value:      `<a href="https://snarfed.org" rel="me nofollow noopener" target="_blank"><span class="invisible">https://</span><span class="">snarfed.org</span><span class="invisible"></span></a>`,
				VerifiedAt: "2019-04-03T17:32:24.467+00:00",
			},
		},
	}
}

func Actor() *as.Actor {
	return &as.Actor{
		ObjectType:  as.Person,
		DisplayName: "Ryan Barrett",
		Username:    "snarfed",
		ID:          tagURI("snarfed"),
		NumericID:   "23507",
		URL:         "http://foo.com/@snarfed",
		URLs: []as.Link{
			{Value: "http://foo.com/@snarfed"},
			{Value: "https://snarfed.org"},
		},
		Image:       &as.Media{URL: "http://foo.com/snarfed.png"},
		Description: "my note",
		Published:   "2017-04-19T20:38:19.704Z",
	}
}

func RemoteAccount() *mastodon.Account {
	return &mastodon.Account{
		ID:       "999",
		Username: "bob",
		Acct:     "bob@other.net",
		URL:      "http://other.net/@bob",
	}
}

func RemoteActor() *as.Actor {
	return &as.Actor{
		ObjectType:  as.Person,
		ID:          "tag:other.net:bob",
		NumericID:   "999",
		Username:    "bob",
		DisplayName: "bob@other.net",
		URL:         "http://other.net/@bob",
		URLs:        []as.Link{{Value: "http://other.net/@bob"}},
	}
}

const (
	Content     = `<p>foo ☕ bar <a ...>@alice</a> <a ...>#IndieWeb</a></p>`
	ContentText = "foo ☕ bar @alice #IndieWeb"
	CreatedAt   = "2019-07-29T18:35:53.446Z"
	StatusURL   = "http://foo.com/@snarfed/123"
)

func Status() *mastodon.Status {
	return &mastodon.Status{
		ID:              "123",
		URL:             StatusURL,
		URI:             "http://foo.com/users/snarfed/statuses/123",
		Account:         Account(),
		Content:         Content,
		CreatedAt:       CreatedAt,
		RepliesCount:    1,
		FavouritesCount: 0,
		ReblogsCount:    0,
		Visibility:      mastodon.Public,
		Mentions: []mastodon.Mention{
			{
				Username: "alice",
				URL:      "https://other/@alice",
				ID:       "11018",
				Acct:     "alice@other",
			},
		},
		Tags: []mastodon.Tag{
			{URL: "http://foo.com/tags/indieweb", Name: "indieweb"},
		},
		Application: &mastodon.Application{
			Name:    "my app",
			Website: "http://app",
		},
	}
}

func Object() *as.Object {
	return &as.Object{
		ObjectType: as.Note,
		Author:     Actor(),
		Content:    Content,
		ID:         tagURI("123"),
		Published:  CreatedAt,
		URL:        StatusURL,
		To:         []as.Audience{{ObjectType: as.Group, Alias: as.Public}},
		Tags: []*as.Object{
			{
				ObjectType:  as.Mention,
				ID:          tagURI("11018"),
				URL:         "https://other/@alice",
				DisplayName: "alice",
			},
			{
				ObjectType:  as.Hashtag,
				URL:         "http://foo.com/tags/indieweb",
				DisplayName: "indieweb",
			},
		},
	}
}

func activityOf(obj *as.Object) *as.Object {
	return &as.Object{
		Verb:      as.Post,
		Published: CreatedAt,
		ID:        tagURI("123"),
		URL:       StatusURL,
		Actor:     Actor(),
		Object:    obj,
		Generator: &as.Object{DisplayName: "my app", URL: "http://app"},
	}
}

func Activity() *as.Object {
	return activityOf(Object())
}

const (
	RemoteStatusURL = "http://other.net/@bob/888"
	RemoteStatusURI = "http://other.net/users/bob/statuses/888"
)

func RemoteStatus() *mastodon.Status {
	s := Status()
	s.ID = "999"
	s.Account = RemoteAccount()
	s.URL = RemoteStatusURL
	s.URI = RemoteStatusURI
	return s
}

func RemoteObject() *as.Object {
	o := Object()
	o.ID = tagURI("999")
	o.Author = RemoteActor()
	o.URL = RemoteStatusURL
	return o
}

func ReplyStatus() *mastodon.Status {
	s := Status()
	s.InReplyToID = "456"
	s.InReplyToAccountID = "11018"
	return s
}

func replyTo() []*as.Object {
	return []*as.Object{{URL: "http://foo.com/web/statuses/456", ID: tagURI("456")}}
}

func ReplyObject() *as.Object {
	o := Object()
	o.InReplyTo = replyTo()
	return o
}

func ReplyActivity() *as.Object {
	a := activityOf(ReplyObject())
	a.Context = &as.Context{InReplyTo: replyTo()}
	return a
}

func ReblogStatus() *mastodon.Status {
	return &mastodon.Status{
		ID:      "789",
		URL:     "http://other.net/@bob/789",
		Account: RemoteAccount(),
		Reblog:  Status(),
	}
}

func ShareActivity() *as.Object {
	return &as.Object{
		ObjectType: as.Activity,
		Verb:       as.Share,
		ID:         tagURI("789"),
		URL:        "http://other.net/@bob/789",
		Object:     Object(),
		Actor:      RemoteActor(),
	}
}

func MediaStatus() *mastodon.Status {
	s := Status()
	s.MediaAttachments = []mastodon.MediaAttachment{
		{
			ID:   "222",
			Type: mastodon.Image,
			URL:  "http://foo.com/image.jpg",
			Meta: &mastodon.MediaMeta{
				Small:    &mastodon.MediaSize{Height: 202, Size: "400x202", Width: 400, Aspect: 1.98019801980198},
				Original: &mastodon.MediaSize{Height: 536, Size: "1060x536", Width: 1060, Aspect: 1.97761194029851},
			},
		},
		{
			ID:          "444",
			Type:        mastodon.Gifv,
			URL:         "http://foo.com/video.mp4",
			PreviewURL:  "http://foo.com/poster.png",
			Description: "a fun video",
			Meta: &mastodon.MediaMeta{
				Small:    &mastodon.MediaSize{Width: 400, Height: 300, Aspect: 1.33333333333333, Size: "400x300"},
				Original: &mastodon.MediaSize{Width: 640, Height: 480},
			},
		},
	}
	return s
}

func MediaObject() *as.Object {
	o := Object()
	o.Image = &as.Media{URL: "http://foo.com/image.jpg"}
	o.Attachments = []*as.Object{
		{
			ObjectType: as.Image,
			ID:         tagURI("222"),
			Image:      &as.Media{URL: "http://foo.com/image.jpg"},
		},
		{
			ObjectType:  as.Video,
			ID:          tagURI("444"),
			DisplayName: "a fun video",
			Stream:      &as.Media{URL: "http://foo.com/video.mp4"},
			Image:       &as.Media{URL: "http://foo.com/poster.png"},
		},
	}
	return o
}

func MediaActivity() *as.Object {
	return activityOf(MediaObject())
}

func relation(verb as.Verb, id, url, objectURL string, author *as.Actor) *as.Object {
	return &as.Object{
		ID:         tagURI(id),
		URL:        url,
		ObjectType: as.Activity,
		Verb:       verb,
		Object:     &as.Object{URL: objectURL},
		Author:     author,
	}
}

func Like() *as.Object {
	return relation(as.Like, "123_favorited_by_23507", StatusURL+"#favorited-by-23507", StatusURL, Actor())
}

func RemoteLike() *as.Object {
	return relation(as.Like, "123_favorited_by_23507", StatusURL+"#favorited-by-23507", RemoteStatusURL, Actor())
}

func Share() *as.Object {
	return relation(as.Share, "123_reblogged_by_23507", StatusURL+"#reblogged-by-23507", StatusURL, Actor())
}

func RemoteShare() *as.Object {
	return relation(as.Share, "123_reblogged_by_23507", StatusURL+"#reblogged-by-23507", RemoteStatusURL, Actor())
}

func ShareByRemote() *as.Object {
	return relation(as.Share, "123_reblogged_by_999", StatusURL+"#reblogged-by-999", StatusURL, RemoteActor())
}

func MentionNotification() *mastodon.Notification {
	return &mastodon.Notification{
		ID:        "555",
		Type:      mastodon.MentionNotification,
		Account:   RemoteAccount(),
		Status:    MediaStatus(),
		CreatedAt: "2019-10-15T00:23:37.969Z",
	}
}

// URL returns the URL of a path on the test instance, with query parameters given as key/value pairs.
func URL(format string, kv ...string) string {
	u := InstanceURL + format
	if len(kv) == 0 {
		return u
	}

	q := url.Values{}
	for i := 0; i+1 < len(kv); i += 2 {
		q.Add(kv[i], kv[i+1])
	}

	return u + "?" + q.Encode()
}

// Tokens returns a token source that always returns [Token].
func Tokens() oauth2.TokenSource {
	return oauth2.StaticTokenSource(&oauth2.Token{AccessToken: Token})
}
