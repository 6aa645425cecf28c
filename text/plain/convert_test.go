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

package plain

import (
	"testing"
)

func TestFromHTML_Empty(t *testing.T) {
	t.Parallel()

	raw, links := FromHTML("")

	if raw != "" {
		t.Fatalf("%s != ''", raw)
	}

	if len(links) != 0 {
		t.Fatalf("unexpected links: %v", links.Keys())
	}
}

func TestFromHTML_Paragraphs(t *testing.T) {
	t.Parallel()

	raw, _ := FromHTML(`<p>this is a paragraph</p><p>this is another paragraph</p>`)
	expected := "this is a paragraph\n\nthis is another paragraph"

	if raw != expected {
		t.Fatalf("%s != %s", raw, expected)
	}
}

func TestFromHTML_MentionAndHashtag(t *testing.T) {
	t.Parallel()

	raw, links := FromHTML(`<p>foo ☕ bar <span class="h-card"><a href="https://other/@alice" class="u-url mention">@<span>alice</span></a></span> <a href="http://foo.com/tags/indieweb" class="mention hashtag" rel="tag">#<span>IndieWeb</span></a></p>`)
	expected := "foo ☕ bar @alice #IndieWeb"

	if raw != expected {
		t.Fatalf("%s != %s", raw, expected)
	}

	if len(links) != 0 {
		t.Fatalf("unexpected links: %v", links.Keys())
	}
}

func TestFromHTML_AnchorWithoutHref(t *testing.T) {
	t.Parallel()

	raw, _ := FromHTML(`<p>foo ☕ bar <a ...>@alice</a> <a ...>#IndieWeb</a></p>`)
	expected := "foo ☕ bar @alice #IndieWeb"

	if raw != expected {
		t.Fatalf("%s != %s", raw, expected)
	}
}

func TestFromHTML_InvisibleLinkPrefix(t *testing.T) {
	t.Parallel()

	raw, links := FromHTML(`<a href="https://snarfed.org" rel="me nofollow noopener" target="_blank"><span class="invisible">https://</span><span class="">snarfed.org</span><span class="invisible"></span></a>`)

	if raw != "snarfed.org" {
		t.Fatalf("%s != snarfed.org", raw)
	}

	if keys := links.Keys(); len(keys) != 1 || keys[0] != "https://snarfed.org" {
		t.Fatalf("unexpected links: %v", keys)
	}
}

func TestFromHTML_Ellipsis(t *testing.T) {
	t.Parallel()

	raw, links := FromHTML(`<p>see <a href="https://example.com/a/very/long/path"><span class="invisible">https://</span><span class="ellipsis">example.com/a/very</span><span class="invisible">/long/path</span></a></p>`)
	expected := "see example.com/a/very…"

	if raw != expected {
		t.Fatalf("%s != %s", raw, expected)
	}

	if alt, ok := links.Get("https://example.com/a/very/long/path"); !ok || alt != "example.com/a/very…" {
		t.Fatalf("unexpected link text: %s", alt)
	}
}

func TestFromHTML_LineBreaksAndImages(t *testing.T) {
	t.Parallel()

	raw, links := FromHTML(`<p>a<br>b<br/><img src="http://foo.com/a.png" alt="a cat"></p>`)
	expected := "a\nb\na cat"

	if raw != expected {
		t.Fatalf("%s != %s", raw, expected)
	}

	if alt, ok := links.Get("http://foo.com/a.png"); !ok || alt != "a cat" {
		t.Fatalf("unexpected image alt: %s", alt)
	}
}

func TestFromHTML_List(t *testing.T) {
	t.Parallel()

	raw, _ := FromHTML(`<ul><li>one</li><li>two</li></ul>`)
	expected := "* one\n* two"

	if raw != expected {
		t.Fatalf("%s != %s", raw, expected)
	}
}

func TestFromHTML_Unbalanced(t *testing.T) {
	t.Parallel()

	post := `<p>oops</b>`
	raw, links := FromHTML(post)

	if raw != post {
		t.Fatalf("%s != %s", raw, post)
	}

	if links != nil {
		t.Fatalf("unexpected links: %v", links.Keys())
	}
}

func TestFromHTML_NestedLinks(t *testing.T) {
	t.Parallel()

	post := `<a href="http://a"><a href="http://b">x</a></a>`
	if raw, _ := FromHTML(post); raw != post {
		t.Fatalf("%s != %s", raw, post)
	}
}
