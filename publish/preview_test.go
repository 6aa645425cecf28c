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

package publish

import (
	"testing"

	"github.com/dimkr/tootgraph/apitest"
	"github.com/dimkr/tootgraph/as"
	"github.com/dimkr/tootgraph/mapper"
	"github.com/stretchr/testify/assert"
)

func TestPreview_Status(t *testing.T) {
	assert := assert.New(t)

	client := apitest.NewClient()

	preview, err := newTestRouter(t, client).Preview(apitest.Object())
	assert.NoError(err)
	assert.Equal(`<span class="verb">toot</span>:`, preview.Description)
	assert.Equal("foo ☕ bar @alice #IndieWeb", preview.Content)
	assert.Empty(client.Requests)
}

func TestPreview_Reply(t *testing.T) {
	assert := assert.New(t)

	preview, err := newTestRouter(t, apitest.NewClient()).Preview(apitest.ReplyObject())
	assert.NoError(err)
	assert.Equal(`<span class="verb">reply</span> to <a href="http://foo.com/web/statuses/456">this toot</a>: `, preview.Description)
	assert.Equal("foo ☕ bar @alice #IndieWeb", preview.Content)
}

func TestPreview_ReplyRemote(t *testing.T) {
	assert := assert.New(t)

	client := apitest.NewClient()

	preview, err := newTestRouter(t, client).Preview(&as.Object{
		Content:   "foo ☕ bar",
		InReplyTo: []*as.Object{{URL: apitest.RemoteStatusURL}},
	})
	assert.NoError(err)
	assert.Equal(`<span class="verb">reply</span> to <a href="http://other.net/@bob/888">this toot</a>: `, preview.Description)
	assert.Equal("foo ☕ bar", preview.Content)
	assert.Empty(client.Requests)
}

func TestPreview_Favorite(t *testing.T) {
	assert := assert.New(t)

	preview, err := newTestRouter(t, apitest.NewClient()).Preview(apitest.Like())
	assert.NoError(err)
	assert.Equal(`<span class="verb">favorite</span> <a href="http://foo.com/@snarfed/123">this toot</a>: `, preview.Description)
	assert.Empty(preview.Content)
}

func TestPreview_FavoriteRemote(t *testing.T) {
	assert := assert.New(t)

	preview, err := newTestRouter(t, apitest.NewClient()).Preview(apitest.RemoteLike())
	assert.NoError(err)
	assert.Equal(`<span class="verb">favorite</span> <a href="http://other.net/@bob/888">this toot</a>: `, preview.Description)
}

func TestPreview_Reblog(t *testing.T) {
	assert := assert.New(t)

	preview, err := newTestRouter(t, apitest.NewClient()).Preview(apitest.ShareActivity())
	assert.NoError(err)
	assert.Equal(`<span class="verb">boost</span> <a href="http://foo.com/@snarfed/123">this toot</a>: `, preview.Description)
}

func TestPreview_ReblogRemote(t *testing.T) {
	assert := assert.New(t)

	preview, err := newTestRouter(t, apitest.NewClient()).Preview(apitest.RemoteShare())
	assert.NoError(err)
	assert.Equal(`<span class="verb">boost</span> <a href="http://other.net/@bob/888">this toot</a>: `, preview.Description)
}

func TestPreview_WithMedia(t *testing.T) {
	assert := assert.New(t)

	preview, err := newTestRouter(t, apitest.NewClient()).Preview(apitest.MediaObject())
	assert.NoError(err)
	assert.Equal(`<span class="verb">toot</span>:`, preview.Description)
	assert.Equal(`foo ☕ bar @alice #IndieWeb<br /><br /><video controls src="http://foo.com/video.mp4"><a href="http://foo.com/video.mp4">a fun video</a></video> &nbsp; <img src="http://foo.com/image.jpg" alt="" />`, preview.Content)
}

func TestPreview_AudioWithoutDescription(t *testing.T) {
	assert := assert.New(t)

	preview, err := newTestRouter(t, apitest.NewClient()).Preview(&as.Object{
		Content: "<p>listen &amp; enjoy</p>",
		Attachments: []*as.Object{
			{ObjectType: as.Image, Image: &as.Media{URL: "http://foo.com/cover.jpg"}, DisplayName: `a "cover"`},
			{ObjectType: as.Audio, Stream: &as.Media{URL: "http://foo.com/song.mp3"}},
		},
	})
	assert.NoError(err)
	assert.Equal(`listen &amp; enjoy<br /><br /><audio controls src="http://foo.com/song.mp3"><a href="http://foo.com/song.mp3">this audio</a></audio> &nbsp; <img src="http://foo.com/cover.jpg" alt="a &#34;cover&#34;" />`, preview.Content)
}

func TestPreview_Invalid(t *testing.T) {
	assert := assert.New(t)

	_, err := newTestRouter(t, apitest.NewClient()).Preview(&as.Object{Verb: as.Like})
	assert.ErrorIs(err, mapper.ErrInvalidArgument)
}
