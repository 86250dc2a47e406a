// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
)

// levelColors are the ANSI colors used for each level name.
var levelColors = map[slog.Level]termenv.ANSIColor{
	slog.LevelDebug: termenv.ANSIBrightBlack,
	slog.LevelInfo:  termenv.ANSICyan,
	slog.LevelWarn:  termenv.ANSIYellow,
	slog.LevelError: termenv.ANSIRed,
}

// NewHandler returns a text [slog.Handler] writing to w whose level
// names are colored when w is a terminal that supports it. The handler
// filters records using [LevelVar].
func NewHandler(w io.Writer) slog.Handler {
	out := termenv.NewOutput(w)
	opts := &slog.HandlerOptions{
		Level: LevelVar,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) > 0 || a.Key != slog.LevelKey {
				return a
			}
			level, ok := a.Value.Any().(slog.Level)
			if !ok {
				return a
			}
			c, has := levelColors[level]
			if !has || out.Profile == termenv.Ascii {
				return a
			}
			return slog.String(slog.LevelKey, out.String(level.String()).Foreground(c).String())
		},
	}
	return slog.NewTextHandler(w, opts)
}

// SetDefaultLogger sets the default logger to a colored text handler
// on standard error, filtered at [UserLevel].
func SetDefaultLogger() {
	LevelVar.Set(UserLevel)
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
}
