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

package mapper

import (
	"fmt"

	"github.com/dimkr/tootgraph/as"
	"github.com/dimkr/tootgraph/data"
	"github.com/dimkr/tootgraph/mastodon"
	"github.com/dimkr/tootgraph/text/plain"
)

// AccountToActor converts an account to an actor.
//
// A local account gets an ID under the instance host, while a remote account gets an ID
// under the host in its acct. If both username and acct are present, they must agree.
func (m *Mapper) AccountToActor(account *mastodon.Account) (*as.Actor, error) {
	if account == nil {
		return nil, &ValidationError{Field: "account", Reason: "missing"}
	}

	h, err := mastodon.ParseHandle(account.Acct)
	if err != nil {
		return nil, &ValidationError{Field: "acct", Reason: fmt.Sprintf("%q: %s", account.Acct, err)}
	}

	username := account.Username
	if username == "" {
		username = h.LocalPart
	} else if h.LocalPart != "" && h.LocalPart != username {
		return nil, &ValidationError{Field: "username", Reason: fmt.Sprintf("%q conflicts with acct %q", username, account.Acct)}
	}

	if username == "" {
		return nil, &ValidationError{Field: "username", Reason: "missing"}
	}

	host := m.Host
	if h.Remote {
		host = h.Host
	}

	actor := as.Actor{
		ObjectType:  as.Person,
		ID:          as.TagURI(host, username),
		NumericID:   account.ID,
		DisplayName: account.DisplayName,
		Username:    username,
		URL:         account.URL,
		Description: account.Note,
		Published:   account.CreatedAt,
	}

	if actor.DisplayName == "" {
		actor.DisplayName = account.Acct
	}
	if actor.DisplayName == "" {
		actor.DisplayName = username
	}

	urls := data.OrderedMap[string, struct{}]{}
	if account.URL != "" {
		urls.Store(account.URL, struct{}{})
	}
	for _, field := range account.Fields {
		_, links := plain.FromHTML(field.Value)
		for link := range links.All() {
			urls.Store(link, struct{}{})
		}
	}
	for u := range urls.All() {
		actor.URLs = append(actor.URLs, as.Link{Value: u})
	}

	if account.Avatar != "" {
		actor.Image = &as.Media{URL: account.Avatar}
	}

	return &actor, nil
}
