// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Font is a font description in the form "Face, Style Size", such as
// "Sans, Bold Italic 10". The style is optional. A negative size is
// in pixels rather than points.
type Font struct {
	Face  string
	Style string
	Size  int
}

// ParseFont parses a font description.
func ParseFont(s string) (Font, error) {
	face, rest, ok := strings.Cut(s, ",")
	face = strings.TrimSpace(face)
	if !ok || face == "" {
		return Font{}, fmt.Errorf("core.ParseFont: invalid font %q", s)
	}
	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return Font{}, fmt.Errorf("core.ParseFont: missing size in font %q", s)
	}
	size, err := strconv.Atoi(fields[len(fields)-1])
	if err != nil {
		return Font{}, fmt.Errorf("core.ParseFont: invalid size in font %q", s)
	}
	return Font{Face: face, Style: strings.Join(fields[:len(fields)-1], " "), Size: size}, nil
}

func (f Font) String() string {
	if f.Style == "" {
		return f.Face + ", " + strconv.Itoa(f.Size)
	}
	return f.Face + ", " + f.Style + " " + strconv.Itoa(f.Size)
}
