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
	"strings"

	"github.com/dimkr/tootgraph/as"
	"github.com/dimkr/tootgraph/data"
	"github.com/dimkr/tootgraph/text/plain"
)

type Kind string

const (
	KindPost  Kind = "post"
	KindReply Kind = "reply"
	KindLike  Kind = "like"
	KindShare Kind = "share"
)

// MediaUpload is an attachment that must be uploaded before the status that contains it is created.
type MediaUpload struct {
	URL         string
	Description string
	Type        as.ObjectType
}

// Plan describes the API calls that publish an activity.
type Plan struct {
	Kind Kind

	// Status is the plain text of a post or a reply.
	Status string

	// Targets are the candidate URLs of the post a reply, like or share points to, best first.
	Targets []string

	// Media are uploaded in order, before the status is created.
	Media []MediaUpload
}

// refOf returns the URL of a referenced post, or its ID if it's a tag URI and the URL is missing.
func refOf(o *as.Object) string {
	if o.URL != "" {
		return o.URL
	}

	if _, _, ok := as.ParseTagURI(o.ID); ok {
		return o.ID
	}

	return ""
}

// Candidates returns the URLs of the post an activity responds to: replied-to posts first,
// then the object of a like or share, then targets. URLs are deduplicated.
func Candidates(activity *as.Object) []string {
	var urls []string

	base := activity.Base()
	for _, ref := range base.InReplyTo {
		urls = append(urls, refOf(ref))
	}

	if base != activity {
		for _, ref := range activity.InReplyTo {
			urls = append(urls, refOf(ref))
		}
	}

	if activity.Context != nil {
		for _, ref := range activity.Context.InReplyTo {
			urls = append(urls, refOf(ref))
		}
	}

	if (activity.Verb == as.Like || activity.Verb == as.Share) && activity.Object != nil {
		urls = append(urls, refOf(activity.Object))
	}

	for _, target := range activity.Target {
		urls = append(urls, refOf(target))
	}

	return data.Dedup(urls)
}

func mediaUploads(obj *as.Object) []MediaUpload {
	uploads := data.OrderedMap[string, MediaUpload]{}

	for _, att := range obj.Attachments {
		upload := MediaUpload{Description: att.DisplayName, Type: att.ObjectType}

		switch att.ObjectType {
		case as.Image:
			if att.Image != nil {
				upload.URL = att.Image.URL
			}

		case as.Video, as.Audio:
			if att.Stream != nil {
				upload.URL = att.Stream.URL
			}
		}

		if upload.URL != "" {
			uploads.Store(upload.URL, upload)
		}
	}

	var l []MediaUpload
	for _, upload := range uploads.All() {
		l = append(l, upload)
	}
	return l
}

// StatusText returns the plain text of a post, truncated to the status length limit.
func (m *Mapper) StatusText(obj *as.Object) string {
	content := obj.Content
	if content == "" {
		content = obj.DisplayName
	}

	text, _ := plain.FromHTML(content)
	return plain.Truncate(strings.TrimSpace(text), m.MaxStatusLength)
}

// ActivityToPublishRequest plans the API calls that publish a post, a reply, a like or a share.
//
// activity may be a post activity or the post itself.
func (m *Mapper) ActivityToPublishRequest(activity *as.Object) (*Plan, error) {
	if activity == nil {
		return nil, &ValidationError{Field: "activity", Reason: "missing"}
	}

	switch activity.Verb {
	case as.Like, as.Share:
		plan := Plan{Kind: KindLike, Targets: Candidates(activity)}
		if activity.Verb == as.Share {
			plan.Kind = KindShare
		}

		if len(plan.Targets) == 0 {
			return nil, &ValidationError{Field: "object", Reason: fmt.Sprintf("%s has no object URL", activity.Verb)}
		}

		return &plan, nil

	case "", as.Post:
		obj := activity.Base()

		plan := Plan{
			Kind:    KindPost,
			Status:  m.StatusText(obj),
			Targets: Candidates(activity),
			Media:   mediaUploads(obj),
		}

		if len(plan.Targets) > 0 {
			plan.Kind = KindReply
		}

		if plan.Status == "" && len(plan.Media) == 0 {
			return nil, &ValidationError{Field: "content", Reason: "post has no content or media"}
		}

		return &plan, nil

	default:
		return nil, &ValidationError{Field: "verb", Reason: fmt.Sprintf("%q is not supported", activity.Verb)}
	}
}
