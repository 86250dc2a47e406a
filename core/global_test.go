// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core_test

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gen2brain/iup-go-sub012/config"
	. "github.com/gen2brain/iup-go-sub012/core"
	"github.com/gen2brain/iup-go-sub012/driver/offscreen"
	"github.com/gen2brain/iup-go-sub012/i18n"
)

func TestLanguage(t *testing.T) {
	ctx, drv := newContext(t)
	assert.Equal(t, i18n.English, ctx.Global(GlobalLanguage))
	assert.Equal(t, "Cancel", ctx.LanguageString("IUP_CANCEL"))
	assert.Empty(t, drv.EventsOf(offscreen.Language))

	ctx.SetGlobal(GlobalLanguage, "portuguese")
	assert.Equal(t, i18n.Portuguese, ctx.Global(GlobalLanguage))
	assert.Equal(t, "Cancelar", ctx.LanguageString("IUP_CANCEL"))
	assert.Equal(t, i18n.Portuguese, drv.CurrentLanguage())

	// the same language in another case or as a tag changes nothing
	ctx.SetGlobal(GlobalLanguage, "Portuguese")
	ctx.SetGlobal(GlobalLanguage, "pt-BR")
	assert.Len(t, drv.EventsOf(offscreen.Language), 1)

	ctx.SetGlobal(GlobalLanguage, "klingon")
	assert.Equal(t, i18n.Portuguese, ctx.Global(GlobalLanguage))

	ctx.SetLanguageString("IUP_CANCEL", "Abortar")
	assert.Equal(t, "Abortar", ctx.LanguageString("IUP_CANCEL"))
	ctx.SetLanguageString("IUP_CANCEL", "")

	ctx.ResetGlobal(GlobalLanguage)
	assert.Equal(t, i18n.English, ctx.Global(GlobalLanguage))
	assert.Equal(t, "Cancel", ctx.LanguageString("IUP_CANCEL"))
	evs := drv.EventsOf(offscreen.Language)
	require.Len(t, evs, 2)
	assert.Equal(t, i18n.English, evs[1].Detail)
}

func TestDefaultFont(t *testing.T) {
	ctx, _ := newContext(t)
	assert.Equal(t, "Sans, 10", ctx.Global(GlobalDefaultFont))
	assert.Equal(t, "Sans", ctx.Global(GlobalDefaultFontFace))
	assert.Equal(t, "10", ctx.Global(GlobalDefaultFontSize))

	ctx.SetGlobal(GlobalDefaultFontStyle, "Bold")
	assert.Equal(t, "Sans, Bold 10", ctx.Global(GlobalDefaultFont))
	ctx.SetGlobal(GlobalDefaultFontSize, "12")
	assert.Equal(t, "Sans, Bold 12", ctx.Global(GlobalDefaultFont))
	ctx.SetGlobal(GlobalDefaultFontSize, "big")
	assert.Equal(t, "Sans, Bold 12", ctx.Global(GlobalDefaultFont))
	ctx.SetGlobal(GlobalDefaultFontFace, "Mono")
	assert.Equal(t, "Mono, Bold 12", ctx.Global(GlobalDefaultFont))
	assert.Equal(t, "Bold", ctx.Global(GlobalDefaultFontStyle))

	ctx.SetGlobal(GlobalDefaultFont, "Serif, 9")
	assert.Equal(t, "", ctx.Global(GlobalDefaultFontStyle))
	assert.Equal(t, "Serif", ctx.Global(GlobalDefaultFontFace))
}

func TestCursorPos(t *testing.T) {
	ctx, drv := newContext(t)
	ctx.SetGlobal(GlobalCursorPos, "10x20")
	assert.Equal(t, "10x20", ctx.Global(GlobalCursorPos))
	ctx.SetGlobal(GlobalCursorPos, "nowhere")
	evs := drv.EventsOf(offscreen.Warp)
	require.Len(t, evs, 1)
	assert.Equal(t, "(10,20)", evs[0].Detail)
	assert.NotContains(t, ctx.GlobalNames(), GlobalCursorPos)
}

func TestReadOnlyGlobals(t *testing.T) {
	ctx, _ := newContext(t)
	ctx.SetGlobal(GlobalDriver, "other")
	assert.Equal(t, "offscreen", ctx.Global(GlobalDriver))
	ctx.SetGlobal(GlobalVersion, "0")
	assert.Equal(t, Version, ctx.Global(GlobalVersion))
}

func TestSystemLanguage(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("locale environment variables are only read on linux")
	}
	for _, v := range []string{"LANGUAGE", "LC_ALL", "LC_MESSAGES", "LANG"} {
		t.Setenv(v, "pt_BR.UTF-8")
	}
	s := config.Default()
	s.Language = ""
	ctx, drv := newContextSettings(t, s)
	assert.Equal(t, i18n.Portuguese, ctx.Global(GlobalLanguage))
	assert.Equal(t, "Cancelar", ctx.LanguageString("IUP_CANCEL"))
	assert.Len(t, drv.EventsOf(offscreen.Language), 1)
	assert.Equal(t, "pt-BR", ctx.Global(GlobalSystemLocale))
	assert.Equal(t, "pt", ctx.Global(GlobalSystemLanguage))

	ctx.SetGlobal(GlobalSystemLocale, "en-US")
	assert.Equal(t, "pt-BR", ctx.Global(GlobalSystemLocale))

	// an explicit language wins over the system locale
	ctx, _ = newContext(t)
	assert.Equal(t, i18n.English, ctx.Global(GlobalLanguage))

	for _, v := range []string{"LANGUAGE", "LC_ALL", "LC_MESSAGES", "LANG"} {
		t.Setenv(v, "C")
	}
	s = config.Default()
	s.Language = ""
	ctx, _ = newContextSettings(t, s)
	assert.Equal(t, i18n.English, ctx.Global(GlobalLanguage))
}

func TestFreeGlobals(t *testing.T) {
	ctx, _ := newContext(t)
	_, ok := ctx.LookupGlobal("MYAPP")
	assert.False(t, ok)
	ctx.SetGlobal("MYAPP", "")
	v, ok := ctx.LookupGlobal("MYAPP")
	assert.True(t, ok)
	assert.Equal(t, "", v)
	ctx.SetGlobal("MYAPP", "1")
	assert.Equal(t, "1", ctx.Global("MYAPP"))
	ctx.ResetGlobal("MYAPP")
	_, ok = ctx.LookupGlobal("MYAPP")
	assert.False(t, ok)
}

func TestApplySettings(t *testing.T) {
	s := config.Default()
	s.Language = "spanish"
	s.Globals = map[string]string{"B": "2", "A": "1"}
	ctx, _ := newContextSettings(t, s)
	assert.Equal(t, i18n.Spanish, ctx.Global(GlobalLanguage))
	assert.Equal(t, []string{GlobalLanguage, GlobalDefaultFont, "A", "B"}, ctx.GlobalNames())
	assert.Same(t, s, ctx.Settings())

	for _, bad := range []func(s *config.Settings){
		func(s *config.Settings) { s.Language = "klingon" },
		func(s *config.Settings) { s.DefaultFont = "10" },
		func(s *config.Settings) { s.LogLevel = "loud" },
	} {
		s := config.Default()
		bad(s)
		_, err := Open(offscreen.New(), s)
		assert.Error(t, err)
	}
}

func TestHeadless(t *testing.T) {
	ctx, err := Open(nil, nil)
	require.NoError(t, err)
	defer ctx.Close()
	assert.Equal(t, "headless", ctx.Global(GlobalDriver))
	ctx.SetGlobal(GlobalCursorPos, "3x4")
	assert.Equal(t, "3x4", ctx.Global(GlobalCursorPos))

	register(t, ctx.Classes(), "window", func(c *Class) {
		c.NativeKind = NativeDialog
	})
	h := ctx.MustCreate("window")
	require.NoError(t, h.Map())
	assert.NotNil(t, h.Native())
	assert.Contains(t, ctx.String(), "headless")
}
