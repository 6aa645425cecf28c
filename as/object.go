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

// Package as contains the ActivityStreams 1.0 graph produced and consumed by this module.
package as

type ObjectType string

const (
	Person   ObjectType = "person"
	Note     ObjectType = "note"
	Comment  ObjectType = "comment"
	Activity ObjectType = "activity"
	Mention  ObjectType = "mention"
	Hashtag  ObjectType = "hashtag"
	Image    ObjectType = "image"
	Video    ObjectType = "video"
	Audio    ObjectType = "audio"
	Group    ObjectType = "group"
)

type Verb string

const (
	Post  Verb = "post"
	Share Verb = "share"
	Like  Verb = "like"
)

// Alias is the audience of a post.
type Alias string

const (
	Public   Alias = "@public"
	Unlisted Alias = "@unlisted"
	Private  Alias = "@private"
)

// Media points to an image or a stream.
type Media struct {
	URL string `json:"url,omitempty"`
}

// Link is one of the URLs of an [Actor].
type Link struct {
	Value string `json:"value"`
}

// Audience is an entry in the to field of an [Object].
type Audience struct {
	ObjectType ObjectType `json:"objectType"`
	Alias      Alias      `json:"alias"`
}

// Collection is a list of objects, like the replies to a post.
type Collection struct {
	Items []*Object `json:"items"`
}

// Context carries the post an activity responds to.
type Context struct {
	InReplyTo []*Object `json:"inReplyTo,omitempty"`
}

// Object represents notes, attachments, tags and activities.
//
// Activities are objects with a [Verb]: a post, a share of another post, or a like.
// Like and share relations are represented as such activities inside the tags of the
// post they point to. Actors are represented by [Actor].
type Object struct {
	ObjectType  ObjectType  `json:"objectType,omitempty"`
	Verb        Verb        `json:"verb,omitempty"`
	ID          string      `json:"id,omitempty"`
	URL         string      `json:"url,omitempty"`
	DisplayName string      `json:"displayName,omitempty"`
	Content     string      `json:"content,omitempty"`
	Published   string      `json:"published,omitempty"`
	Author      *Actor      `json:"author,omitempty"`
	Actor       *Actor      `json:"actor,omitempty"`
	To          []Audience  `json:"to,omitempty"`
	Tags        []*Object   `json:"tags,omitempty"`
	InReplyTo   []*Object   `json:"inReplyTo,omitempty"`
	Image       *Media      `json:"image,omitempty"`
	Stream      *Media      `json:"stream,omitempty"`
	Attachments []*Object   `json:"attachments,omitempty"`
	Replies     *Collection `json:"replies,omitempty"`
	Object      *Object     `json:"object,omitempty"`
	Target      []*Object   `json:"target,omitempty"`
	Generator   *Object     `json:"generator,omitempty"`
	Context     *Context    `json:"context,omitempty"`
}

// IsActivity determines whether or not an object is an activity.
func (o *Object) IsActivity() bool {
	return o.Verb != "" || o.ObjectType == Activity
}

// Base returns the object an activity is performed on, or o itself if o is not an activity.
func (o *Object) Base() *Object {
	if o.IsActivity() && o.Verb == Post && o.Object != nil {
		return o.Object
	}

	return o
}
