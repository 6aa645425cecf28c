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

// Package logger creates the [slog.Logger] used by tootgraph, backed by zerolog.
package logger

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/dimkr/tootgraph/logcontext"
	"github.com/rs/zerolog"
	slogzerolog "github.com/samber/slog-zerolog/v2"
)

// New returns a logger that writes JSON lines to w and logs fields added to a context with
// [logcontext.Add].
func New(w io.Writer, level string) (*slog.Logger, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %s: %w", level, err)
	}

	zl := zerolog.New(w).With().Timestamp().Logger()

	return slog.New(
		logcontext.Wrap(
			slogzerolog.Option{
				Level:     l,
				Logger:    &zl,
				AddSource: l == slog.LevelDebug,
			}.NewZerologHandler(),
		),
	), nil
}
