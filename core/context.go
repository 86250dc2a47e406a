// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"github.com/gen2brain/iup-go-sub012/base/errors"
	"github.com/gen2brain/iup-go-sub012/base/logx"
	"github.com/gen2brain/iup-go-sub012/base/ordmap"
	"github.com/gen2brain/iup-go-sub012/config"
	"github.com/gen2brain/iup-go-sub012/i18n"
	"github.com/gen2brain/iup-go-sub012/names"
)

// Context is one instance of the toolkit. It owns the class registry,
// the handle name registry, the global attributes, the language packs
// and the driver. Several contexts can exist in one process; the
// handles of each must only be used on the goroutine that owns it.
type Context struct {
	classes  *Registry
	names    *names.Registry
	globals  ordmap.Map[string, string]
	lang     *i18n.Table
	driver   Driver
	settings *config.Settings

	// dialogs are the live dialogs, in creation order.
	dialogs []*Handle

	// autoNames counts the names bound by [Handle.SetAttributeHandle].
	autoNames int

	closed bool
}

// Open opens a new toolkit context with the given driver and settings.
// A nil driver is a headless driver without native elements, and nil
// settings are [config.Default]. Settings with an empty Language start
// in the language pack closest to the system locale.
func Open(drv Driver, s *config.Settings) (*Context, error) {
	if drv == nil {
		drv = &headless{}
	}
	ctx := &Context{
		classes:  NewRegistry(),
		names:    names.New(),
		lang:     i18n.NewTable(),
		driver:   drv,
		settings: config.Default(),
	}
	if s != nil {
		if err := ctx.Apply(s); err != nil {
			return nil, err
		}
		if s.Language == "" {
			ctx.SetGlobal(GlobalLanguage, ctx.lang.SystemPack())
		}
	} else {
		errors.Log(ctx.Apply(ctx.settings))
	}
	return ctx, nil
}

// Apply applies settings to the context: the log level, the language,
// the default font and the extra global attributes, in key order.
func (ctx *Context) Apply(s *config.Settings) error {
	if s.LogLevel != "" {
		lvl, err := logx.LevelFromString(s.LogLevel)
		if err != nil {
			return fmt.Errorf("core.Context.Apply: %w", err)
		}
		logx.SetLevel(lvl)
	}
	if s.Language != "" {
		if _, err := ctx.lang.Resolve(s.Language); err != nil {
			return fmt.Errorf("core.Context.Apply: %w", err)
		}
		ctx.SetGlobal("LANGUAGE", s.Language)
	}
	if s.DefaultFont != "" {
		if _, err := ParseFont(s.DefaultFont); err != nil {
			return fmt.Errorf("core.Context.Apply: %w", err)
		}
		ctx.SetGlobal("DEFAULTFONT", s.DefaultFont)
	}
	for _, k := range slices.Sorted(maps.Keys(s.Globals)) {
		ctx.SetGlobal(k, s.Globals[k])
	}
	ctx.settings = s
	return nil
}

// Settings returns the settings last applied.
func (ctx *Context) Settings() *config.Settings {
	return ctx.settings
}

// Close destroys the remaining dialogs, releases every registered
// class and clears the name registry and the global attributes.
// Closing a closed context does nothing.
func (ctx *Context) Close() {
	if ctx.closed {
		return
	}
	for _, d := range slices.Clone(ctx.dialogs) {
		if d.state != Destroyed {
			d.Destroy()
		}
	}
	ctx.dialogs = nil
	ctx.classes.Close()
	ctx.names.Reset()
	ctx.globals.Reset()
	ctx.closed = true
	slog.Debug("core.Context: closed", "driver", ctx.driver.Name())
}

// Classes returns the class registry of the context.
func (ctx *Context) Classes() *Registry {
	return ctx.classes
}

// Names returns the handle name registry of the context.
func (ctx *Context) Names() *names.Registry {
	return ctx.names
}

// Driver returns the driver of the context.
func (ctx *Context) Driver() Driver {
	return ctx.driver
}

// Languages returns the language pack table of the context.
func (ctx *Context) Languages() *i18n.Table {
	return ctx.lang
}

// Dialogs returns the live dialogs in creation order.
func (ctx *Context) Dialogs() []*Handle {
	return slices.Clone(ctx.dialogs)
}

// Handle returns the handle bound to name, or nil if the name is not
// bound or is bound to something other than a live handle.
func (ctx *Context) Handle(name string) *Handle {
	h, ok := ctx.names.Lookup(name).(*Handle)
	if !ok || !h.IsAlive() {
		return nil
	}
	return h
}

// LanguageString returns the message with the given name in the
// current language.
func (ctx *Context) LanguageString(name string) string {
	return ctx.lang.Message(name)
}

// SetLanguageString overrides the message with the given name.
func (ctx *Context) SetLanguageString(name, msg string) {
	ctx.lang.SetMessage(name, msg)
}
