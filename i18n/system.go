// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package i18n

import (
	"strings"

	"github.com/jeandeaual/go-locale"

	"github.com/gen2brain/iup-go-sub012/base/errors"
)

// SystemLocale returns the locale of the user environment as a BCP 47
// tag such as "pt-BR", or "" if it cannot be determined.
func SystemLocale() string {
	return normalizeLocale(errors.Ignore1(locale.GetLocale()))
}

// SystemLanguage returns the language part of the locale of the user
// environment, such as "pt", or "" if it cannot be determined.
func SystemLanguage() string {
	return normalizeLocale(errors.Ignore1(locale.GetLanguage()))
}

// normalizeLocale turns a POSIX locale such as "pt_BR.UTF-8@euro"
// into a BCP 47 tag. The C and POSIX locales have no language.
func normalizeLocale(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	switch s {
	case "C", "POSIX":
		return ""
	}
	return strings.ReplaceAll(s, "_", "-")
}

// SystemPack returns the name of the registered pack closest to the
// system locale, or [English] if there is none.
func (t *Table) SystemPack() string {
	return t.packFor(SystemLocale())
}

// packFor returns the name of the pack closest to the locale loc,
// or [English].
func (t *Table) packFor(loc string) string {
	if loc == "" {
		return English
	}
	p, err := t.Resolve(loc)
	if err != nil {
		return English
	}
	return p.Name
}
