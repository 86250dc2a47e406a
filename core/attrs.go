// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"fmt"
	"strconv"
	"strings"
)

// SetAttributes sets several attributes from a list of the form
//
//	NAME=value, OTHER="quoted, value", RESETME
//
// Values can be quoted with double quotes to include commas and
// spaces, with \" for a quote inside. A name without a value resets
// the attribute. The attributes are set in order; on a syntax error
// the attributes before it remain set.
func (h *Handle) SetAttributes(list string) error {
	p := attrParser{s: list}
	for {
		name, v, ok, err := p.next()
		if err != nil {
			return fmt.Errorf("core.Handle.SetAttributes: %w", err)
		}
		if !ok {
			return nil
		}
		h.Set(name, v)
	}
}

type attrParser struct {
	s   string
	pos int
}

func (p *attrParser) skipSpace() {
	for p.pos < len(p.s) && (p.s[p.pos] == ' ' || p.s[p.pos] == '\t' || p.s[p.pos] == '\n' || p.s[p.pos] == '\r') {
		p.pos++
	}
}

// next returns the next name and value; ok is false at the end.
func (p *attrParser) next() (name string, v Value, ok bool, err error) {
	p.skipSpace()
	for p.pos < len(p.s) && p.s[p.pos] == ',' {
		p.pos++
		p.skipSpace()
	}
	if p.pos >= len(p.s) {
		return "", Value{}, false, nil
	}
	start := p.pos
	for p.pos < len(p.s) && !strings.ContainsRune("=, \t\n\r", rune(p.s[p.pos])) {
		p.pos++
	}
	name = p.s[start:p.pos]
	if name == "" {
		return "", Value{}, false, fmt.Errorf("empty attribute name at offset %d", start)
	}
	p.skipSpace()
	if p.pos >= len(p.s) || p.s[p.pos] != '=' {
		return name, Value{}, true, nil
	}
	p.pos++
	p.skipSpace()
	if p.pos < len(p.s) && p.s[p.pos] == '"' {
		s, err := p.quoted()
		if err != nil {
			return "", Value{}, false, err
		}
		return name, StringValue(s), true, nil
	}
	start = p.pos
	for p.pos < len(p.s) && p.s[p.pos] != ',' {
		p.pos++
	}
	return name, StringValue(strings.TrimSpace(p.s[start:p.pos])), true, nil
}

func (p *attrParser) quoted() (string, error) {
	start := p.pos
	p.pos++
	var b strings.Builder
	for p.pos < len(p.s) {
		c := p.s[p.pos]
		switch {
		case c == '\\' && p.pos+1 < len(p.s) && (p.s[p.pos+1] == '"' || p.s[p.pos+1] == '\\'):
			b.WriteByte(p.s[p.pos+1])
			p.pos += 2
			continue
		case c == '"':
			p.pos++
			return b.String(), nil
		}
		b.WriteByte(c)
		p.pos++
	}
	return "", fmt.Errorf("unterminated quote at offset %d", start)
}

// SetAttributeHandle sets the named attribute to the name of target,
// binding a new reserved name to target first if it has none.
// A nil target resets the attribute.
func (h *Handle) SetAttributeHandle(name string, target *Handle) {
	if target == nil {
		h.ResetAttribute(name)
		return
	}
	nm := target.Name()
	if nm == "" {
		h.ctx.autoNames++
		nm = InternalPrefix + "_NAME" + strconv.Itoa(h.ctx.autoNames)
		target.SetName(nm)
	}
	h.SetAttribute(name, nm)
}

// AttributeHandle returns the live handle named by the value of the
// named attribute, or nil.
func (h *Handle) AttributeHandle(name string) *Handle {
	v := h.Get(name)
	if !v.Valid {
		return nil
	}
	return h.ctx.Handle(v.String)
}
