// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides the logging levels and the default
// structured logger used throughout the toolkit.
package logx

import (
	"fmt"
	"log/slog"
	"strings"
)

// UserLevel is the verbosity [slog.Level] that the user has selected.
// It is applied by [SetDefaultLogger] and by [LevelVar].
var UserLevel = defaultUserLevel

// LevelVar is the dynamic level used by the handler installed in
// [SetDefaultLogger], so that settings reloads take effect immediately.
var LevelVar = &slog.LevelVar{}

// LevelFromFlags returns the [slog.Level] object corresponding to the given
// user flag options. The flags are evaluated in the following order:
//   - vv: Debug
//   - v: Info
//   - q: Error
//   - (default: Warn)
func LevelFromFlags(vv, v, q bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// LevelFromString parses a level name as used in settings files:
// debug, info, warn (or warning) and error, in any case.
func LevelFromString(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return UserLevel, fmt.Errorf("logx: unknown level %q", s)
}

// SetLevel sets [UserLevel] and updates [LevelVar] accordingly.
func SetLevel(level slog.Level) {
	UserLevel = level
	LevelVar.Set(level)
}
