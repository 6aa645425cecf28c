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

// Package plain converts post HTML to plain text.
package plain

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"

	"github.com/dimkr/tootgraph/data"
	"golang.org/x/net/html"
)

var multipleLineBreaksRegex = regexp.MustCompile(`\n{3,}`)

var voidElements = map[string]struct{}{
	"area":  {},
	"br":    {},
	"col":   {},
	"embed": {},
	"hr":    {},
	"img":   {},
	"input": {},
	"meta":  {},
	"wbr":   {},
}

func isMention(class string) bool {
	for c := range strings.FieldsSeq(class) {
		if c == "mention" || c == "hashtag" {
			return true
		}
	}
	return false
}

func isBlock(tag string) bool {
	return tag == "p" || (len(tag) == 2 && tag[0] == 'h' && tag[1] > '0' && tag[1] <= '9')
}

func fromHTML(text string) (string, data.OrderedMap[string, string], error) {
	links := data.OrderedMap[string, string]{}

	var b, linkText strings.Builder
	w := &b

	tok := html.NewTokenizer(strings.NewReader(text))

	var open []string
	hiddenDepth := 0
	ellipsisDepth := 0
	var link string

	for {
		tt := tok.Next()
		switch tt {
		case html.ErrorToken:
			if err := tok.Err(); !errors.Is(err, io.EOF) {
				return "", nil, err
			}

			if len(open) > 0 {
				return "", nil, fmt.Errorf("tag not closed: %s", open[len(open)-1])
			}

			return strings.TrimRight(multipleLineBreaksRegex.ReplaceAllLiteralString(b.String(), "\n\n"), " \n\r\t"), links, nil

		case html.TextToken:
			if hiddenDepth == 0 {
				w.Write(tok.Text())
			}

		case html.EndTagToken:
			name, _ := tok.TagName()
			tag := string(name)

			if _, void := voidElements[tag]; void {
				continue
			}

			if len(open) == 0 || open[len(open)-1] != tag {
				return "", nil, fmt.Errorf("tag not opened: %s", tag)
			}

			if len(open) == ellipsisDepth {
				if hiddenDepth == 0 {
					w.WriteRune('…')
				}
				ellipsisDepth = 0
			}

			if len(open) == hiddenDepth {
				hiddenDepth = 0
			}

			open = open[:len(open)-1]

			switch {
			case isBlock(tag):
				w.WriteString("\n\n")

			case tag == "a" && link != "":
				alt := linkText.String()
				links.Store(link, alt)
				b.WriteString(alt)
				linkText.Reset()
				link = ""
				w = &b

			case tag == "li":
				w.WriteByte('\n')
			}

		case html.StartTagToken, html.SelfClosingTagToken:
			name, hasAttrs := tok.TagName()
			tag := string(name)

			if tag == "br" {
				w.WriteByte('\n')
				continue
			}

			_, void := voidElements[tag]
			if tt == html.StartTagToken && !void {
				open = append(open, tag)
			}

			var alt, src, class, href string
			for hasAttrs {
				var k, v []byte
				k, v, hasAttrs = tok.TagAttr()

				switch string(k) {
				case "alt":
					alt = string(v)
				case "src":
					src = string(v)
				case "class":
					class = string(v)
				case "href":
					href = string(v)
				}
			}

			switch tag {
			case "span":
				if tt != html.StartTagToken {
					break
				}
				if class == "invisible" && hiddenDepth == 0 {
					hiddenDepth = len(open)
				} else if class == "ellipsis" && ellipsisDepth == 0 {
					ellipsisDepth = len(open)
				}

			case "a":
				if link != "" {
					return "", nil, errors.New("links cannot be nested")
				}

				if href != "" && !isMention(class) && tt == html.StartTagToken {
					link = href
					w = &linkText
				}

			case "li":
				w.WriteString("* ")

			case "img":
				if alt != "" {
					w.WriteString(alt)
				} else if src != "" {
					w.WriteString(src)
				}

				if src != "" {
					links.Store(src, alt)
				}
			}
		}
	}
}

// FromHTML converts HTML to plain text and extracts links, mapped to their text.
//
// Mentions and hashtags are reduced to their text and are not returned as links. If text
// is not valid HTML, it is returned as-is.
func FromHTML(text string) (string, data.OrderedMap[string, string]) {
	plain, links, err := fromHTML(text)
	if err != nil {
		slog.Warn("Failed to convert HTML", "error", err)
		return text, nil
	}

	return plain, links
}
