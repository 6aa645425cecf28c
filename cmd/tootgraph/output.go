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

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
	"github.com/dimkr/tootgraph/as"
	"github.com/dimkr/tootgraph/publish"
	"github.com/dimkr/tootgraph/text/plain"
)

var (
	verbStyle  = lipgloss.NewStyle().Bold(true)
	mediaStyle = lipgloss.NewStyle().Faint(true)
)

// writeJSON writes canonical JSON, or indented JSON if w is a terminal.
func writeJSON(w *os.File, v any) error {
	j, err := as.Marshal(v)
	if err != nil {
		return err
	}

	if term.IsTerminal(w.Fd()) {
		var buf bytes.Buffer
		if err := json.Indent(&buf, j, "", "  "); err != nil {
			return err
		}
		j = buf.Bytes()
	}

	_, err = fmt.Fprintf(w, "%s\n", j)
	return err
}

// writePreview prints a preview as text if w is a terminal, and as JSON otherwise.
func writePreview(w *os.File, p *publish.Preview) error {
	if !term.IsTerminal(w.Fd()) {
		return writeJSON(w, p)
	}

	description, _ := plain.FromHTML(p.Description)
	content, links := plain.FromHTML(p.Content)

	if _, err := fmt.Fprintf(w, "%s\n%s\n", verbStyle.Render(description), content); err != nil {
		return err
	}

	for link, alt := range links.All() {
		if alt == "" || alt == link {
			alt = link
		} else {
			alt = alt + ": " + link
		}

		if _, err := fmt.Fprintln(w, mediaStyle.Render(alt)); err != nil {
			return err
		}
	}

	return nil
}
