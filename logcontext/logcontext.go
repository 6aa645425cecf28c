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

// Package logcontext attaches log fields, like the ID of the request being handled, to a
// [context.Context].
package logcontext

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

type (
	keyType int

	handler struct {
		inner slog.Handler
	}
)

var key keyType

func attrsOf(ctx context.Context) []slog.Attr {
	attrs, _ := ctx.Value(key).([]slog.Attr)
	return attrs
}

// Add returns a copy of ctx with additional log fields.
//
// Arguments should be in the same format as [slog.Logger.Log].
func Add(ctx context.Context, args ...any) context.Context {
	parent := attrsOf(ctx)
	return context.WithValue(ctx, key, append(parent[:len(parent):len(parent)], slog.Group("", args...).Value.Group()...))
}

// NewRequest returns a copy of ctx with a new request ID.
//
// Requests are numbered with UUIDv7, so IDs logged by one process sort by time.
func NewRequest(ctx context.Context) context.Context {
	id, err := uuid.NewV7()
	if err != nil {
		return ctx
	}

	return Add(ctx, "request", id.String())
}

func (h *handler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *handler) Handle(ctx context.Context, r slog.Record) error {
	if attrs := attrsOf(ctx); len(attrs) > 0 {
		r.AddAttrs(attrs...)
	}
	return h.inner.Handle(ctx, r)
}

func (h *handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &handler{h.inner.WithAttrs(attrs)}
}

func (h *handler) WithGroup(name string) slog.Handler {
	return &handler{h.inner.WithGroup(name)}
}

// Wrap returns a [slog.Handler] that logs fields added using [Add].
func Wrap(inner slog.Handler) slog.Handler {
	return &handler{inner}
}
