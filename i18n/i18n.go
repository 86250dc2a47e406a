// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package i18n provides the language packs of the toolkit: tables of
// translated messages keyed by message name, one table per language,
// and the current-language switch that reloads them.
//
// Languages are named the way the LANGUAGE global attribute names them
// (ENGLISH, PORTUGUESE, SPANISH); BCP 47 tags such as "pt-BR" are also
// accepted and matched to the closest supported language.
package i18n

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Pack is a language pack: its language name, tag and messages.
type Pack struct {
	Name     string
	Tag      language.Tag
	Messages map[string]string
}

// Table holds the registered language packs and the current language.
// It is not safe for concurrent use.
type Table struct {
	packs   map[string]*Pack
	order   []string
	current *Pack

	// user holds messages set at runtime for the current language.
	// They take precedence over the pack until the language changes.
	user map[string]string
}

// fold is the case folder used to compare language names.
var fold = cases.Fold()

// NewTable returns a table with the built-in packs registered and
// English selected.
func NewTable() *Table {
	t := &Table{packs: map[string]*Pack{}, user: map[string]string{}}
	for _, p := range builtinPacks() {
		t.Register(p)
	}
	t.current = t.packs[key(English)]
	return t
}

func key(name string) string {
	return fold.String(strings.TrimSpace(name))
}

// Register adds or replaces a language pack.
func (t *Table) Register(p *Pack) {
	k := key(p.Name)
	if _, has := t.packs[k]; !has {
		t.order = append(t.order, p.Name)
	}
	t.packs[k] = p
	if t.current != nil && key(t.current.Name) == k {
		t.current = p
	}
}

// Languages returns the names of the registered packs in
// registration order.
func (t *Table) Languages() []string {
	return slices.Clone(t.order)
}

// Language returns the name of the current language.
func (t *Table) Language() string {
	if t.current == nil {
		return ""
	}
	return t.current.Name
}

// SameLanguage reports whether a and b name the same language,
// ignoring case.
func SameLanguage(a, b string) bool {
	return key(a) == key(b)
}

// Resolve returns the pack for a language name or BCP 47 tag.
func (t *Table) Resolve(lang string) (*Pack, error) {
	if p, ok := t.packs[key(lang)]; ok {
		return p, nil
	}
	tag, err := language.Parse(strings.TrimSpace(lang))
	if err != nil {
		return nil, fmt.Errorf("i18n: unknown language %q", lang)
	}
	tags := make([]language.Tag, len(t.order))
	for i, nm := range t.order {
		tags[i] = t.packs[key(nm)].Tag
	}
	_, idx, conf := language.NewMatcher(tags).Match(tag)
	if conf == language.No {
		return nil, fmt.Errorf("i18n: no language pack for %q", lang)
	}
	return t.packs[key(t.order[idx])], nil
}

// SetLanguage makes lang the current language and reloads the message
// table, dropping the messages set with [Table.SetMessage]. It returns
// whether the language actually changed; switching to the current
// language (in any case) does nothing and keeps those messages.
func (t *Table) SetLanguage(lang string) (bool, error) {
	p, err := t.Resolve(lang)
	if err != nil {
		return false, err
	}
	if t.current != nil && key(t.current.Name) == key(p.Name) {
		return false, nil
	}
	t.current = p
	clear(t.user)
	return true, nil
}

// Message returns the message with the given name in the current
// language, falling back to English, and "" if there is none.
func (t *Table) Message(name string) string {
	if m, ok := t.user[name]; ok {
		return m
	}
	if t.current != nil {
		if m, ok := t.current.Messages[name]; ok {
			return m
		}
	}
	if en, ok := t.packs[key(English)]; ok {
		return en.Messages[name]
	}
	return ""
}

// SetMessage overrides a message of the current language until the
// next language change. An empty message removes the override.
func (t *Table) SetMessage(name, msg string) {
	if msg == "" {
		delete(t.user, name)
		return
	}
	t.user[name] = msg
}

// MessageNames returns the sorted names of the messages in the
// current pack.
func (t *Table) MessageNames() []string {
	if t.current == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(t.current.Messages))
}
