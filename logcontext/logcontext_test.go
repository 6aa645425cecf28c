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

package logcontext

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap_ContextFields(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	log := slog.New(Wrap(slog.NewJSONHandler(&buf, nil)))

	ctx := Add(context.Background(), "request", "abc")
	ctx = Add(ctx, "user", "23507")

	log.InfoContext(ctx, "Hello", "x", 1)

	var record map[string]any
	assert.NoError(json.Unmarshal(buf.Bytes(), &record))
	assert.Equal("Hello", record["msg"])
	assert.Equal("abc", record["request"])
	assert.Equal("23507", record["user"])
	assert.Equal(float64(1), record["x"])
}

func TestAdd_DoesNotModifyParent(t *testing.T) {
	assert := assert.New(t)

	parent := Add(context.Background(), "a", 1)
	first := Add(parent, "b", 2)
	second := Add(parent, slog.String("c", "3"))

	assert.Equal([]slog.Attr{slog.Int("a", 1)}, attrsOf(parent))
	assert.Equal([]slog.Attr{slog.Int("a", 1), slog.Int("b", 2)}, attrsOf(first))
	assert.Equal([]slog.Attr{slog.Int("a", 1), slog.String("c", "3")}, attrsOf(second))
}

func TestNewRequest_UniqueIDs(t *testing.T) {
	assert := assert.New(t)

	first := attrsOf(NewRequest(context.Background()))
	second := attrsOf(NewRequest(context.Background()))

	assert.Len(first, 1)
	assert.Equal("request", first[0].Key)
	assert.Len(first[0].Value.String(), 36)
	assert.NotEqual(first[0].Value.String(), second[0].Value.String())
}

func TestWrap_WithAttrsKeepsContext(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	log := slog.New(Wrap(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))).With("component", "resolver")

	ctx := Add(context.Background(), "request", "abc")
	log.InfoContext(ctx, "Dropped")
	assert.Zero(buf.Len())

	log.WarnContext(ctx, "Kept")

	var record map[string]any
	assert.NoError(json.Unmarshal(buf.Bytes(), &record))
	assert.Equal("resolver", record["component"])
	assert.Equal("abc", record["request"])
}
