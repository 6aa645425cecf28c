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

package mastodon

import (
	"errors"
	"strings"
)

// ErrInvalidHandle is returned by [ParseHandle] when a handle has more than one @ or an empty part.
var ErrInvalidHandle = errors.New("invalid handle")

// Handle is a parsed acct field.
type Handle struct {
	Remote    bool
	Host      string
	LocalPart string
}

// ParseHandle parses the acct field of an account: alice is local, alice@other.net is remote.
//
// A leading @ is ignored.
func ParseHandle(acct string) (Handle, error) {
	acct = strings.TrimPrefix(acct, "@")

	local, host, qualified := strings.Cut(acct, "@")
	if !qualified {
		return Handle{LocalPart: local}, nil
	}

	if local == "" || host == "" || strings.ContainsRune(host, '@') {
		return Handle{}, ErrInvalidHandle
	}

	return Handle{Remote: true, Host: host, LocalPart: local}, nil
}
