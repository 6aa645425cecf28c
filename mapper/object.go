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

var aliases = map[mastodon.Visibility]as.Alias{
	mastodon.Public:   as.Public,
	mastodon.Unlisted: as.Unlisted,
	mastodon.Private:  as.Private,
	mastodon.Direct:   as.Private,
}

// WebStatusURL returns the URL of a local status in the web interface.
func (m *Mapper) WebStatusURL(id string) string {
	return m.BaseURL + fmt.Sprintf(mastodon.PathWebStatus, id)
}

// LocalStatusID returns the ID of a local status, if ref is a tag URI minted by [Mapper.StatusToObject].
func (m *Mapper) LocalStatusID(ref string) (string, bool) {
	host, id, ok := as.ParseTagURI(ref)
	if !ok || host != m.Host {
		return "", false
	}

	return id, true
}

// TargetURL returns a URL that can be linked to, for a candidate returned by [Candidates].
func (m *Mapper) TargetURL(candidate string) string {
	if id, ok := m.LocalStatusID(candidate); ok {
		return m.WebStatusURL(id)
	}

	return candidate
}

// ReplyTo returns the reference to the post a status replies to, if any.
func (m *Mapper) ReplyTo(status *mastodon.Status) []*as.Object {
	if status.InReplyToID == "" {
		return nil
	}

	return []*as.Object{{
		ID:  as.TagURI(m.Host, status.InReplyToID),
		URL: m.WebStatusURL(status.InReplyToID),
	}}
}

func (m *Mapper) attachmentToObject(media *mastodon.MediaAttachment) *as.Object {
	o := as.Object{
		ID:          as.TagURI(m.Host, media.ID),
		DisplayName: media.Description,
	}

	switch media.Type {
	case mastodon.Image:
		o.ObjectType = as.Image
		o.Image = &as.Media{URL: media.URL}
		return &o

	case mastodon.Video, mastodon.Gifv:
		o.ObjectType = as.Video

	case mastodon.Audio:
		o.ObjectType = as.Audio

	default:
		return nil
	}

	o.Stream = &as.Media{URL: media.URL}
	if media.PreviewURL != "" {
		o.Image = &as.Media{URL: media.PreviewURL}
	}

	return &o
}

// StatusToObject converts a status to a note.
//
// Reblogs are converted as-is: use [Mapper.StatusToActivity] to get the reblogged post.
func (m *Mapper) StatusToObject(status *mastodon.Status) (*as.Object, error) {
	if status == nil {
		return nil, &ValidationError{Field: "status", Reason: "missing"}
	}

	if status.ID == "" {
		return nil, &ValidationError{Field: "id", Reason: "missing"}
	}

	obj := as.Object{
		ObjectType: as.Note,
		ID:         as.TagURI(m.Host, status.ID),
		URL:        status.URL,
		Content:    status.Content,
		Published:  status.CreatedAt,
		InReplyTo:  m.ReplyTo(status),
	}

	if status.Account != nil {
		author, err := m.AccountToActor(status.Account)
		if err != nil {
			return nil, fmt.Errorf("failed to map author of %s: %w", status.ID, err)
		}
		obj.Author = author
	}

	if alias, ok := aliases[status.Visibility]; ok {
		obj.To = []as.Audience{{ObjectType: as.Group, Alias: alias}}
	}

	for _, mention := range status.Mentions {
		obj.Tags = append(obj.Tags, &as.Object{
			ObjectType:  as.Mention,
			ID:          as.TagURI(m.Host, mention.ID),
			URL:         mention.URL,
			DisplayName: mention.Username,
		})
	}

	for _, tag := range status.Tags {
		obj.Tags = append(obj.Tags, &as.Object{
			ObjectType:  as.Hashtag,
			URL:         tag.URL,
			DisplayName: tag.Name,
		})
	}

	for i := range status.MediaAttachments {
		att := m.attachmentToObject(&status.MediaAttachments[i])
		if att == nil {
			continue
		}

		if obj.Image == nil && att.ObjectType == as.Image {
			obj.Image = &as.Media{URL: att.Image.URL}
		}

		obj.Attachments = append(obj.Attachments, att)
	}

	return &obj, nil
}
