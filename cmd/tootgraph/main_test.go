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
	"testing"

	"github.com/dimkr/tootgraph/aggregate"
	"github.com/stretchr/testify/assert"
)

func TestParseActivityOptions_Default(t *testing.T) {
	assert := assert.New(t)

	opts, err := parseActivityOptions([]string{"-replies", "-mentions"})
	assert.NoError(err)
	assert.Equal(aggregate.Options{FetchReplies: true, FetchMentions: true}, opts)
}

func TestParseActivityOptions_Self(t *testing.T) {
	assert := assert.New(t)

	opts, err := parseActivityOptions([]string{"-self", "-user", "456"})
	assert.NoError(err)
	assert.Equal(aggregate.Options{Group: aggregate.Self, UserID: "456"}, opts)
}

func TestParseActivityOptions_Search(t *testing.T) {
	assert := assert.New(t)

	opts, err := parseActivityOptions([]string{"-search", "indieweb"})
	assert.NoError(err)
	assert.Equal(aggregate.Options{Group: aggregate.Search, SearchQuery: "indieweb"}, opts)
}

func TestParseActivityOptions_ConflictingGroups(t *testing.T) {
	assert := assert.New(t)

	for _, args := range [][]string{
		{"-self", "-search", "q"},
		{"-friends", "-search", "q"},
		{"-self", "-friends"},
	} {
		_, err := parseActivityOptions(args)
		assert.Error(err, args)
	}
}
