// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gen2brain/iup-go-sub012/classinfo"
	"github.com/gen2brain/iup-go-sub012/core"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--no-color", "-q"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestList(t *testing.T) {
	out, err := run(t, "list")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 12)
	assert.True(t, strings.HasPrefix(lines[0], "box "), lines[0])
	assert.Contains(t, out, "vbox       none     vbox < box\n")
	assert.Contains(t, out, "dialog     dialog   dialog\n")
}

func TestDescribe(t *testing.T) {
	out, err := run(t, "describe", "label", "hbox")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "label (built-in)\n"), out)
	assert.Contains(t, out, "\nhbox (built-in)\n  chain: hbox < box\n")

	out, err = run(t, "describe", "--format", "yaml", "button")
	require.NoError(t, err)
	infos, err := classinfo.Decode(strings.NewReader(out), classinfo.YAML)
	require.NoError(t, err)
	require.Len(t, infos, 1)
	assert.Equal(t, "button", infos[0].Name)

	_, err = run(t, "describe", "buton")
	assert.ErrorIs(t, err, core.ErrUnknownClass)
	assert.ErrorContains(t, err, "did you mean button?")

	_, err = run(t, "describe", "-f", "xml", "label")
	assert.Error(t, err)

	_, err = run(t, "describe")
	assert.Error(t, err)
}

func TestTree(t *testing.T) {
	out, err := run(t, "tree")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 6)
	assert.True(t, strings.HasPrefix(lines[0], `dialog "sample" [mapped]`), lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "  vbox [mapped]"), lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "    label [mapped]"), lines[2])
	assert.True(t, strings.HasPrefix(lines[3], "    hbox [mapped]"), lines[3])
	assert.True(t, strings.HasPrefix(lines[4], "      button [mapped]"), lines[4])
	assert.Contains(t, lines[4], `TITLE="OK"`)

	out, err = run(t, "tree", "--no-map")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, `dialog "sample" [constructed]`), out)
}

func TestGlobals(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
log_level = "error"
language = "PORTUGUESE"
default_font = "Mono, Bold 12"

[globals]
UTF8MODE = "YES"
`), 0o644))
	out, err := run(t, "--config", path, "globals")
	require.NoError(t, err)
	assert.Equal(t, "DRIVER=offscreen\nVERSION="+core.Version+"\nLANGUAGE=PORTUGUESE\nDEFAULTFONT=Mono, Bold 12\nUTF8MODE=YES\n", out)

	_, err = run(t, "--config", filepath.Join(dir, "missing.toml"), "globals")
	assert.Error(t, err)
}

func TestWatchRequiresConfig(t *testing.T) {
	_, err := run(t, "watch")
	assert.ErrorContains(t, err, "--config")
}
