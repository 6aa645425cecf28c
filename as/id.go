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

package as

import (
	"fmt"
	"strings"
)

// TagURI returns a tag URI (RFC 4151) for name, minted by host.
func TagURI(host, name string) string {
	return fmt.Sprintf("tag:%s:%s", host, name)
}

// ParseTagURI splits a tag URI returned by [TagURI].
func ParseTagURI(s string) (string, string, bool) {
	rest, ok := strings.CutPrefix(s, "tag:")
	if !ok {
		return "", "", false
	}

	host, name, ok := strings.Cut(rest, ":")
	if !ok || host == "" || name == "" {
		return "", "", false
	}

	// tag:host,2013:name
	if i := strings.IndexByte(host, ','); i > 0 {
		host = host[:i]
	}

	return host, name, true
}
