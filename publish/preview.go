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
	"fmt"
	"html"
	"strings"

	"github.com/dimkr/tootgraph/as"
	"github.com/dimkr/tootgraph/mapper"
)

// Preview is a human-readable description of an activity that hasn't been published yet.
type Preview struct {
	Description string `json:"description"`
	Content     string `json:"content"`
}

func mediaPreview(media []mapper.MediaUpload) string {
	var streams, images []string

	for _, m := range media {
		u := html.EscapeString(m.URL)

		switch m.Type {
		case as.Image:
			images = append(images, fmt.Sprintf(`<img src="%s" alt="%s" />`, u, html.EscapeString(m.Description)))

		case as.Video, as.Audio:
			name := m.Description
			if name == "" {
				name = "this " + string(m.Type)
			}

			tag := "video"
			if m.Type == as.Audio {
				tag = "audio"
			}

			streams = append(streams, fmt.Sprintf(`<%s controls src="%s"><a href="%s">%s</a></%s>`, tag, u, u, html.EscapeString(name), tag))
		}
	}

	return strings.Join(append(streams, images...), " &nbsp; ")
}

// Preview describes what [Router.Publish] would do, without any API calls.
//
// The target of a reply, a like or a share is described using its first candidate URL.
func (r *Router) Preview(activity *as.Object) (*Preview, error) {
	plan, err := r.Mapper.ActivityToPublishRequest(activity)
	if err != nil {
		return nil, err
	}

	var target string
	if len(plan.Targets) > 0 {
		target = html.EscapeString(r.Mapper.TargetURL(plan.Targets[0]))
	}

	var p Preview

	switch plan.Kind {
	case mapper.KindLike:
		p.Description = fmt.Sprintf(`<span class="verb">favorite</span> <a href="%s">this toot</a>: `, target)
		return &p, nil

	case mapper.KindShare:
		p.Description = fmt.Sprintf(`<span class="verb">boost</span> <a href="%s">this toot</a>: `, target)
		return &p, nil

	case mapper.KindReply:
		p.Description = fmt.Sprintf(`<span class="verb">reply</span> to <a href="%s">this toot</a>: `, target)

	default:
		p.Description = `<span class="verb">toot</span>:`
	}

	p.Content = html.EscapeString(plan.Status)
	if len(plan.Media) > 0 {
		p.Content += "<br /><br />" + mediaPreview(plan.Media)
	}

	return &p, nil
}
