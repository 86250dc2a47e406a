// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package classinfo

import (
	"fmt"
	"io"
	"strings"

	"github.com/gen2brain/iup-go-sub012/base/indent"
	"github.com/gen2brain/iup-go-sub012/core"
)

// WriteTree writes the element tree of h to w, one handle per line
// indented by depth, with its state, layout box and stored attributes.
func WriteTree(w io.Writer, h *core.Handle) error {
	var sb strings.Builder
	writeNode(&sb, h, 0)
	_, err := io.WriteString(w, sb.String())
	return err
}

func writeNode(sb *strings.Builder, h *core.Handle, depth int) {
	sb.WriteString(indent.String(indent.Space, depth, 2))
	sb.WriteString(h.Class().Name)
	if nm := h.Name(); nm != "" {
		fmt.Fprintf(sb, " %q", nm)
	}
	if h.IsInternal() {
		sb.WriteString(" internal")
	}
	l := h.Layout
	fmt.Fprintf(sb, " [%v] %dx%d at %d,%d", h.State(), l.CurrentWidth, l.CurrentHeight, l.X, l.Y)
	var attrs []string
	for _, name := range h.StoredAttributes() {
		attrs = append(attrs, fmt.Sprintf("%s=%q", name, h.Attribute(name)))
	}
	if len(attrs) > 0 {
		sb.WriteString(" ")
		sb.WriteString(strings.Join(attrs, ", "))
	}
	sb.WriteByte('\n')
	for c := h.FirstChild(); c != nil; c = c.NextSibling() {
		writeNode(sb, c, depth+1)
	}
}
