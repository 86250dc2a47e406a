// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package indent provides indentation generation methods.
package indent

import (
	"strings"
)

// Character is the type of indentation character to use.
type Character int32

const (
	// Tab indicates to use tabs for indentation.
	Tab Character = iota

	// Space indicates to use spaces for indentation.
	Space
)

// String returns a string of n tabs or n*width spaces depending on the indent character.
func String(ich Character, n, width int) string {
	if ich == Tab {
		return strings.Repeat("\t", n)
	}
	return strings.Repeat(" ", n*width)
}

// Lines indents every non-empty line of s by n levels.
func Lines(s string, ich Character, n, width int) string {
	ind := String(ich, n, width)
	lines := strings.SplitAfter(s, "\n")
	var sb strings.Builder
	for _, ln := range lines {
		if strings.TrimSpace(ln) != "" {
			sb.WriteString(ind)
		}
		sb.WriteString(ln)
	}
	return sb.String()
}
