// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package i18n

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLanguage(t *testing.T) {
	tb := NewTable()
	assert.Equal(t, English, tb.Language())
	assert.Equal(t, "Cancel", tb.Message("IUP_CANCEL"))
	assert.Equal(t, []string{English, Portuguese, Spanish}, tb.Languages())
}

func TestSetLanguageCaseInsensitive(t *testing.T) {
	tb := NewTable()
	changed, err := tb.SetLanguage("portuguese")
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, Portuguese, tb.Language())
	assert.Equal(t, "Cancelar", tb.Message("IUP_CANCEL"))

	changed, err = tb.SetLanguage("PORTUGUESE")
	require.NoError(t, err)
	assert.False(t, changed)
	assert.True(t, SameLanguage("Spanish", "SPANISH"))
}

func TestSetLanguageByTag(t *testing.T) {
	tb := NewTable()
	changed, err := tb.SetLanguage("pt-BR")
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, Portuguese, tb.Language())

	_, err = tb.SetLanguage("KLINGON")
	assert.Error(t, err)
	assert.Equal(t, Portuguese, tb.Language())
}

func TestMessageOverrides(t *testing.T) {
	tb := NewTable()
	tb.SetMessage("IUP_OK", "Okay")
	assert.Equal(t, "Okay", tb.Message("IUP_OK"))
	tb.SetMessage("IUP_OK", "")
	assert.Equal(t, "OK", tb.Message("IUP_OK"))
	assert.Equal(t, "", tb.Message("NOPE"))
}

func TestMessageOverridesLanguageChange(t *testing.T) {
	tb := NewTable()
	tb.SetMessage("IUP_CANCEL", "Abort")

	// switching to the current language keeps the override
	changed, err := tb.SetLanguage("english")
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, "Abort", tb.Message("IUP_CANCEL"))

	changed, err = tb.SetLanguage(Portuguese)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, "Cancelar", tb.Message("IUP_CANCEL"))

	tb.SetMessage("IUP_CANCEL", "Abortar")
	_, err = tb.SetLanguage("KLINGON")
	require.Error(t, err)
	assert.Equal(t, "Abortar", tb.Message("IUP_CANCEL"))

	_, err = tb.SetLanguage(English)
	require.NoError(t, err)
	assert.Equal(t, "Cancel", tb.Message("IUP_CANCEL"))
}

func TestPackForLocale(t *testing.T) {
	tb := NewTable()
	for loc, want := range map[string]string{
		"pt-BR":            Portuguese,
		"es-AR":            Spanish,
		"en-GB":            English,
		"":                 English,
		"qaa":              English,
		"not a locale tag": English,
	} {
		assert.Equal(t, want, tb.packFor(loc), loc)
	}
	assert.Equal(t, "pt-BR", normalizeLocale("pt_BR.UTF-8"))
	assert.Equal(t, "de-DE", normalizeLocale(" de_DE@euro "))
	assert.Equal(t, "", normalizeLocale("C"))
	assert.Equal(t, "", normalizeLocale("POSIX.UTF-8"))
}

func TestSystemPack(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("locale environment variables are only read on linux")
	}
	for _, v := range []string{"LANGUAGE", "LC_ALL", "LC_MESSAGES", "LANG"} {
		t.Setenv(v, "es_ES.UTF-8")
	}
	assert.Equal(t, "es-ES", SystemLocale())
	assert.Equal(t, "es", SystemLanguage())
	assert.Equal(t, Spanish, NewTable().SystemPack())
}
