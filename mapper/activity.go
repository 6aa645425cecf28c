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
	"github.com/dimkr/tootgraph/mastodon"
)

// StatusToActivity converts a status to a post activity, or a share activity if the status is a reblog.
//
// The object of a share is the reblogged post and its actor is the account that reblogged it.
func (m *Mapper) StatusToActivity(status *mastodon.Status) (*as.Object, error) {
	if status == nil {
		return nil, &ValidationError{Field: "status", Reason: "missing"}
	}

	if status.Reblog != nil {
		return m.reblogToActivity(status)
	}

	obj, err := m.StatusToObject(status)
	if err != nil {
		return nil, err
	}

	activity := as.Object{
		Verb:      as.Post,
		ID:        obj.ID,
		URL:       obj.URL,
		Published: obj.Published,
		Object:    obj,
	}

	if obj.Author != nil {
		actor := *obj.Author
		activity.Actor = &actor
	}

	if status.Application != nil && status.Application.Name != "" {
		activity.Generator = &as.Object{
			DisplayName: status.Application.Name,
			URL:         status.Application.Website,
		}
	}

	if replyTo := m.ReplyTo(status); replyTo != nil {
		activity.Context = &as.Context{InReplyTo: replyTo}
	}

	return &activity, nil
}

func (m *Mapper) reblogToActivity(status *mastodon.Status) (*as.Object, error) {
	if status.ID == "" {
		return nil, &ValidationError{Field: "id", Reason: "missing"}
	}

	original, err := m.StatusToObject(status.Reblog)
	if err != nil {
		return nil, fmt.Errorf("failed to map reblogged status of %s: %w", status.ID, err)
	}

	activity := as.Object{
		ObjectType: as.Activity,
		Verb:       as.Share,
		ID:         as.TagURI(m.Host, status.ID),
		URL:        status.URL,
		Published:  status.CreatedAt,
		Object:     original,
	}

	if status.Account != nil {
		if activity.Actor, err = m.AccountToActor(status.Account); err != nil {
			return nil, fmt.Errorf("failed to map reblogger of %s: %w", status.ID, err)
		}
	}

	return &activity, nil
}

func (m *Mapper) makeRelation(status *mastodon.Status, account *mastodon.Account, verb as.Verb, idInfix, fragment string) (*as.Object, error) {
	if status == nil || status.ID == "" {
		return nil, &ValidationError{Field: "status", Reason: "missing"}
	}

	if account == nil || account.ID == "" {
		return nil, &ValidationError{Field: "account", Reason: "missing"}
	}

	relation := as.Object{
		ObjectType: as.Activity,
		Verb:       verb,
		ID:         as.TagURI(m.Host, status.ID+idInfix+account.ID),
		URL:        status.URL + fragment + account.ID,
		Object:     &as.Object{URL: status.URL},
	}

	// only the ID of the current user may be known
	if account.Username == "" && account.Acct == "" {
		return &relation, nil
	}

	author, err := m.AccountToActor(account)
	if err != nil {
		return nil, err
	}
	relation.Author = author

	return &relation, nil
}

// MakeLike returns a like activity that represents a favourite of status by account.
func (m *Mapper) MakeLike(status *mastodon.Status, account *mastodon.Account) (*as.Object, error) {
	return m.makeRelation(status, account, as.Like, "_favorited_by_", "#favorited-by-")
}

// MakeShare returns a share activity that represents a reblog of status by account.
func (m *Mapper) MakeShare(status *mastodon.Status, account *mastodon.Account) (*as.Object, error) {
	return m.makeRelation(status, account, as.Share, "_reblogged_by_", "#reblogged-by-")
}
