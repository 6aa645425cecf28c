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

// Package mapper converts Mastodon entities to ActivityStreams 1.0 and back.
//
// All conversions are pure: they never perform I/O and return freshly allocated values.
package mapper

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrInvalidArgument is matched by every error caused by malformed input.
var ErrInvalidArgument = errors.New("invalid argument")

// ValidationError is returned when a field is missing or contradicts another field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// DefaultMaxStatusLength is the status length limit of a default Mastodon instance.
const DefaultMaxStatusLength = 500

// Mapper converts entities returned by one Mastodon instance.
type Mapper struct {
	// Host is the host name of the instance, without a port, used in IDs of local objects.
	Host string

	// Authority is the host of the instance, with a port if there is one.
	Authority string

	// BaseURL is the instance URL, without a trailing slash.
	BaseURL string

	// MaxStatusLength is the maximum length of a status, in characters.
	MaxStatusLength int
}

// IsLocal determines whether or not a URL points to the instance.
func (m *Mapper) IsLocal(u *url.URL) bool {
	return strings.EqualFold(u.Host, m.Authority)
}

// New returns a [Mapper] for the instance at instanceURL.
func New(instanceURL string, maxStatusLength int) (*Mapper, error) {
	u, err := url.Parse(instanceURL)
	if err != nil {
		return nil, fmt.Errorf("invalid instance URL %s: %w", instanceURL, err)
	}

	if u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, &ValidationError{Field: "instance", Reason: fmt.Sprintf("%s is not an HTTP URL", instanceURL)}
	}

	if maxStatusLength <= 0 {
		maxStatusLength = DefaultMaxStatusLength
	}

	return &Mapper{
		Host:            strings.ToLower(u.Hostname()),
		Authority:       strings.ToLower(u.Host),
		BaseURL:         u.Scheme + "://" + u.Host + strings.TrimSuffix(u.Path, "/"),
		MaxStatusLength: maxStatusLength,
	}, nil
}
