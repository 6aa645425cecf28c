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

// Package mastodon contains the entities returned by the Mastodon REST API.
//
// All fields are optional on the wire; required fields are validated by the code that
// consumes them.
package mastodon

type Visibility string

const (
	Public   Visibility = "public"
	Unlisted Visibility = "unlisted"
	Private  Visibility = "private"
	Direct   Visibility = "direct"
)

type MediaType string

const (
	Image   MediaType = "image"
	Video   MediaType = "video"
	Gifv    MediaType = "gifv"
	Audio   MediaType = "audio"
	Unknown MediaType = "unknown"
)

type NotificationType string

const (
	MentionNotification   NotificationType = "mention"
	ReblogNotification    NotificationType = "reblog"
	FavouriteNotification NotificationType = "favourite"
	FollowNotification    NotificationType = "follow"
)

type Field struct {
	Name       string `json:"name"`
	Value      string `json:"value"`
	VerifiedAt string `json:"verified_at,omitempty"`
}

type Account struct {
	ID          string  `json:"id"`
	Username    string  `json:"username"`
	Acct        string  `json:"acct"`
	DisplayName string  `json:"display_name,omitempty"`
	URL         string  `json:"url,omitempty"`
	Avatar      string  `json:"avatar,omitempty"`
	Note        string  `json:"note,omitempty"`
	CreatedAt   string  `json:"created_at,omitempty"`
	Fields      []Field `json:"fields,omitempty"`
}

type Mention struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Acct     string `json:"acct"`
	URL      string `json:"url"`
}

type Tag struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type Application struct {
	Name    string `json:"name"`
	Website string `json:"website,omitempty"`
}

type MediaSize struct {
	Width  int     `json:"width,omitempty"`
	Height int     `json:"height,omitempty"`
	Size   string  `json:"size,omitempty"`
	Aspect float64 `json:"aspect,omitempty"`
}

type MediaMeta struct {
	Original *MediaSize `json:"original,omitempty"`
	Small    *MediaSize `json:"small,omitempty"`
}

type MediaAttachment struct {
	ID          string     `json:"id"`
	Type        MediaType  `json:"type"`
	URL         string     `json:"url"`
	PreviewURL  string     `json:"preview_url,omitempty"`
	Description string     `json:"description,omitempty"`
	Meta        *MediaMeta `json:"meta,omitempty"`
}

type Status struct {
	ID                 string            `json:"id"`
	URL                string            `json:"url,omitempty"`
	URI                string            `json:"uri,omitempty"`
	Account            *Account          `json:"account,omitempty"`
	Content            string            `json:"content,omitempty"`
	CreatedAt          string            `json:"created_at,omitempty"`
	RepliesCount       int64             `json:"replies_count,omitempty"`
	FavouritesCount    int64             `json:"favourites_count,omitempty"`
	ReblogsCount       int64             `json:"reblogs_count,omitempty"`
	Visibility         Visibility        `json:"visibility,omitempty"`
	Mentions           []Mention         `json:"mentions,omitempty"`
	Tags               []Tag             `json:"tags,omitempty"`
	Reblog             *Status           `json:"reblog,omitempty"`
	InReplyToID        string            `json:"in_reply_to_id,omitempty"`
	InReplyToAccountID string            `json:"in_reply_to_account_id,omitempty"`
	MediaAttachments   []MediaAttachment `json:"media_attachments,omitempty"`
	Application        *Application      `json:"application,omitempty"`
}

type Notification struct {
	ID        string           `json:"id"`
	Type      NotificationType `json:"type"`
	Account   *Account         `json:"account,omitempty"`
	Status    *Status          `json:"status,omitempty"`
	CreatedAt string           `json:"created_at,omitempty"`
}

// Context contains the posts before and after a post in its thread.
type Context struct {
	Ancestors   []Status `json:"ancestors"`
	Descendants []Status `json:"descendants"`
}

type SearchResults struct {
	Accounts []Account `json:"accounts"`
	Statuses []Status  `json:"statuses"`
}

// Attachment is the response to a media upload.
type Attachment struct {
	ID string `json:"id"`
}

// NewStatus is the request body of a status creation.
type NewStatus struct {
	Status      string   `json:"status"`
	InReplyToID string   `json:"in_reply_to_id,omitempty"`
	MediaIDs    []string `json:"media_ids,omitempty"`
}
