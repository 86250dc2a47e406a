// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/gen2brain/iup-go-sub012/base/errors"
	"github.com/gen2brain/iup-go-sub012/i18n"
)

// Version is the value of the read-only VERSION global attribute.
const Version = "3.31"

// Global attributes with special handling.
const (
	GlobalLanguage         = "LANGUAGE"
	GlobalDefaultFont      = "DEFAULTFONT"
	GlobalDefaultFontFace  = "DEFAULTFONTFACE"
	GlobalDefaultFontStyle = "DEFAULTFONTSTYLE"
	GlobalDefaultFontSize  = "DEFAULTFONTSIZE"
	GlobalCursorPos        = "CURSORPOS"
	GlobalDriver           = "DRIVER"
	GlobalVersion          = "VERSION"
	GlobalSystemLanguage   = "SYSTEMLANGUAGE"
	GlobalSystemLocale     = "SYSTEMLOCALE"
)

// SetGlobal sets a global attribute of the context.
func (ctx *Context) SetGlobal(name, value string) {
	ctx.setGlobal(name, StringValue(value))
}

// ResetGlobal removes a global attribute.
func (ctx *Context) ResetGlobal(name string) {
	ctx.setGlobal(name, Value{})
}

// Global returns the value of a global attribute, or "".
func (ctx *Context) Global(name string) string {
	return ctx.getGlobal(name).String
}

// LookupGlobal returns the value of a global attribute and whether
// it has one.
func (ctx *Context) LookupGlobal(name string) (string, bool) {
	v := ctx.getGlobal(name)
	return v.String, v.Valid
}

func (ctx *Context) storeGlobal(name string, v Value) {
	if !v.Valid {
		ctx.globals.Delete(name)
		return
	}
	ctx.globals.Set(name, v.String)
}

func (ctx *Context) setGlobal(name string, v Value) {
	switch name {
	case GlobalDriver, GlobalVersion, GlobalSystemLanguage, GlobalSystemLocale:
		return
	case GlobalLanguage:
		ctx.setLanguage(v)
	case GlobalCursorPos:
		if !v.Valid {
			return
		}
		x, y, ok := parseXY(v.String)
		if !ok {
			slog.Debug("core.Context.SetGlobal: invalid position", "name", name, "value", v.String)
			return
		}
		ctx.driver.WarpPointer(x, y)
	case GlobalDefaultFont:
		ctx.storeGlobal(name, v)
	case GlobalDefaultFontFace, GlobalDefaultFontStyle, GlobalDefaultFontSize:
		ctx.setFontPart(name, v)
	default:
		ctx.storeGlobal(name, v)
	}
}

func (ctx *Context) getGlobal(name string) Value {
	switch name {
	case GlobalDriver:
		return StringValue(ctx.driver.Name())
	case GlobalVersion:
		return StringValue(Version)
	case GlobalSystemLanguage:
		return optionalValue(i18n.SystemLanguage())
	case GlobalSystemLocale:
		return optionalValue(i18n.SystemLocale())
	case GlobalCursorPos:
		x, y := ctx.driver.PointerPosition()
		return StringValue(strconv.Itoa(x) + "x" + strconv.Itoa(y))
	case GlobalDefaultFontFace, GlobalDefaultFontStyle, GlobalDefaultFontSize:
		f, ok := ctx.defaultFont()
		if !ok {
			return Value{}
		}
		switch name {
		case GlobalDefaultFontFace:
			return StringValue(f.Face)
		case GlobalDefaultFontStyle:
			return StringValue(f.Style)
		}
		return StringValue(strconv.Itoa(f.Size))
	}
	if s, ok := ctx.globals.Get(name); ok {
		return StringValue(s)
	}
	return Value{}
}

// setLanguage switches the language packs, but only when the new
// language differs from the current one in more than case.
func (ctx *Context) setLanguage(v Value) {
	lang := v.Or(i18n.English)
	if cur, ok := ctx.globals.Get(GlobalLanguage); ok && i18n.SameLanguage(cur, lang) {
		return
	}
	changed, err := ctx.lang.SetLanguage(lang)
	if errors.Log(err) != nil {
		return
	}
	ctx.globals.Set(GlobalLanguage, ctx.lang.Language())
	if changed {
		ctx.driver.LanguageChanged(ctx.lang.Language())
	}
}

// optionalValue returns s as a value, or no value if s is empty.
func optionalValue(s string) Value {
	if s == "" {
		return Value{}
	}
	return StringValue(s)
}

func (ctx *Context) defaultFont() (Font, bool) {
	s, ok := ctx.globals.Get(GlobalDefaultFont)
	if !ok {
		return Font{}, false
	}
	f, err := ParseFont(s)
	if err != nil {
		return Font{}, false
	}
	return f, true
}

// setFontPart recomposes DEFAULTFONT with one of its parts replaced.
func (ctx *Context) setFontPart(name string, v Value) {
	f, _ := ctx.defaultFont()
	switch name {
	case GlobalDefaultFontFace:
		if !v.Valid || strings.TrimSpace(v.String) == "" {
			return
		}
		f.Face = strings.TrimSpace(v.String)
	case GlobalDefaultFontStyle:
		f.Style = strings.TrimSpace(v.String)
	case GlobalDefaultFontSize:
		n, err := strconv.Atoi(strings.TrimSpace(v.String))
		if err != nil {
			slog.Debug("core.Context.SetGlobal: invalid font size", "value", v.String)
			return
		}
		f.Size = n
	}
	if f.Face == "" {
		slog.Debug("core.Context.SetGlobal: no default font face", "name", name)
		return
	}
	ctx.globals.Set(GlobalDefaultFont, f.String())
}

// parseXY parses a position of the form "XxY".
func parseXY(s string) (x, y int, ok bool) {
	xs, ys, found := strings.Cut(strings.ToLower(s), "x")
	if !found {
		return 0, 0, false
	}
	var err error
	if x, err = strconv.Atoi(strings.TrimSpace(xs)); err != nil {
		return 0, 0, false
	}
	if y, err = strconv.Atoi(strings.TrimSpace(ys)); err != nil {
		return 0, 0, false
	}
	return x, y, true
}

// GlobalNames returns the names of the stored global attributes in the
// order they were first set.
func (ctx *Context) GlobalNames() []string {
	return ctx.globals.Keys()
}

func (ctx *Context) String() string {
	return fmt.Sprintf("core.Context(%s)", ctx.driver.Name())
}
