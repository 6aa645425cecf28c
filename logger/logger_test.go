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

package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/dimkr/tootgraph/logcontext"
	"github.com/stretchr/testify/assert"
)

func TestNew_InvalidLevel(t *testing.T) {
	assert := assert.New(t)

	_, err := New(&bytes.Buffer{}, "LOUD")
	assert.Error(err)
}

func TestNew_Level(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	log, err := New(&buf, "WARN")
	assert.NoError(err)

	log.Info("Dropped")
	assert.Zero(buf.Len())

	ctx := logcontext.Add(context.Background(), "request", "abc")
	log.WarnContext(ctx, "Kept", "url", "http://foo.com")

	var record map[string]any
	assert.NoError(json.Unmarshal(buf.Bytes(), &record))
	assert.Equal("Kept", record["message"])
	assert.Equal("warn", record["level"])
	assert.Equal("abc", record["request"])
	assert.Equal("http://foo.com", record["url"])
}
