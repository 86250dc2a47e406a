// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package classes_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gen2brain/iup-go-sub012/classes"
	"github.com/gen2brain/iup-go-sub012/core"
	"github.com/gen2brain/iup-go-sub012/driver/offscreen"
)

func newContext(t *testing.T) *core.Context {
	t.Helper()
	ctx, err := core.Open(offscreen.New(), nil)
	require.NoError(t, err)
	require.NoError(t, classes.Register(ctx.Classes()))
	t.Cleanup(ctx.Close)
	return ctx
}

func TestRegister(t *testing.T) {
	ctx := newContext(t)
	r := ctx.Classes()
	assert.Equal(t, []string{"box", "vbox", "hbox", "user", "dialog", "label", "button",
		"spin", "spinbox", "list", "grid", "image"}, r.Names())
	for _, nm := range r.Names() {
		assert.True(t, r.Find(nm).IsInternal(), nm)
	}
	vbox := r.Find("vbox")
	assert.Equal(t, []string{"vbox", "box"}, vbox.Chain())
	assert.True(t, vbox.Match("box"))
	assert.Equal(t, []core.Param{{Kind: core.ParamHandleArray}}, vbox.Params())
	assert.NotNil(t, vbox.AttributeInfo("GAP"))
	assert.Contains(t, r.Find("label").Callbacks(), core.MapCallback)
}

func TestBaseAttributes(t *testing.T) {
	ctx := newContext(t)
	label := ctx.MustCreate("label", "text")
	box := ctx.MustCreate("vbox", label)
	dlg := ctx.MustCreate("dialog", box)
	dlg.SetAttribute("BGCOLOR", "9 9 9")
	assert.Equal(t, "", classes.CommonOf(label).BgColor)

	require.NoError(t, dlg.Map())
	assert.Equal(t, "9 9 9", classes.CommonOf(label).BgColor)
	assert.Equal(t, "9 9 9", classes.CommonOf(box).BgColor)

	dlg.SetAttribute("BGCOLOR", "1 2 3")
	assert.Equal(t, "1 2 3", classes.CommonOf(label).BgColor)

	label.SetAttribute("FONT", "bad")
	_, ok := label.LookupAttribute("FONT")
	assert.False(t, ok)
	label.SetAttribute("FONT", "Sans, Bold 12")
	assert.Equal(t, core.Font{Face: "Sans", Style: "Bold", Size: 12}, classes.CommonOf(label).Font)
	assert.Equal(t, "Sans, Bold 12", label.Attribute("FONT"))

	label.SetAttribute("NAME", "caption")
	assert.Same(t, label, ctx.Handle("caption"))

	assert.NotEmpty(t, label.Attribute("WID"))
	dlg.Unmap()
	assert.Empty(t, label.Attribute("WID"))

	h := ctx.MustCreate("user")
	h.Data = "other"
	assert.Nil(t, classes.CommonOf(h))
}

func TestActive(t *testing.T) {
	ctx := newContext(t)
	btn := ctx.MustCreate("button", "OK", "do_it")
	dlg := ctx.MustCreate("dialog", btn)
	assert.Equal(t, "do_it", btn.Attribute("ACTIONNAME"))
	assert.Equal(t, "OK", btn.Attribute("TITLE"))
	assert.False(t, btn.CanFocus())

	require.NoError(t, dlg.Map())
	assert.True(t, btn.CanFocus())

	dlg.SetAttribute("ACTIVE", "NO")
	assert.False(t, classes.CommonOf(btn).Active)
	assert.False(t, btn.CanFocus())

	btn.SetAttribute("ACTIVE", "YES")
	assert.True(t, btn.CanFocus())
	assert.Equal(t, "YES", btn.Attribute("ACTIVE"))
}

func TestList(t *testing.T) {
	ctx := newContext(t)
	l := ctx.MustCreate("list")
	l.SetAttribute("APPENDITEM", "a")
	l.SetAttribute("1", "b")
	l.SetAttribute("2", "c")
	l.SetAttribute("INSERTITEM1", "z")
	assert.Equal(t, "3", l.Attribute("COUNT"))
	assert.Equal(t, "z", l.Attribute("1"))
	assert.Equal(t, "b", l.Attribute("IDVALUE2"))
	assert.Equal(t, "c", l.AttributeID("", 3))
	_, ok := l.LookupAttribute("4")
	assert.False(t, ok)
	assert.Empty(t, l.StoredAttributes())

	l.SetAttribute("REMOVEITEM", "2")
	assert.Equal(t, []string{"z", "c"}, l.Data.(*classes.List).Items)

	l.SetAttribute("VALUE", "2")
	assert.Equal(t, "2", l.Attribute("VALUE"))
	dlg := ctx.MustCreate("dialog", l)
	require.NoError(t, dlg.Map())
	assert.Equal(t, 2, l.Data.(*classes.List).Value)
	assert.Equal(t, "2", l.Attribute("VALUE"))

	l.ResetAttribute("2")
	assert.Equal(t, "1", l.Attribute("COUNT"))
	l.SetAttribute("REMOVEITEM", "ALL")
	assert.Equal(t, "0", l.Attribute("COUNT"))
	assert.Zero(t, l.Data.(*classes.List).Value)
}

func TestGrid(t *testing.T) {
	ctx := newContext(t)
	g := ctx.MustCreate("grid")
	g.SetAttribute("NUMLIN", "3")
	g.SetAttribute("NUMCOL", "2")
	g.SetAttribute("2:1", "x")
	g.SetAttributeID2("CELLBGCOLOR", 1, 2, "255 0 0")
	g.SetAttribute("WIDTH2", "100")

	assert.Equal(t, "x", g.Attribute("IDVALUE2:1"))
	assert.Equal(t, "255 0 0", g.Attribute("CELLBGCOLOR1:2"))
	assert.Equal(t, []string{"IDVALUE2:1", "CELLBGCOLOR1:2"}, g.StoredAttributes())
	assert.Equal(t, "80", g.Attribute("WIDTH1"))
	assert.Equal(t, "100", g.AttributeID("WIDTH", 2))
	assert.Equal(t, "", g.Attribute("WIDTH3"))
	assert.Equal(t, "3", g.Attribute("NUMLIN"))

	g.Refresh()
	assert.Equal(t, 180, g.Layout.NaturalWidth)
	assert.Equal(t, 60, g.Layout.NaturalHeight)
}

func TestImage(t *testing.T) {
	ctx := newContext(t)
	img := ctx.MustCreate("image", 2, 1, []byte{0, 1})
	assert.Equal(t, "2", img.Attribute("WIDTH"))
	assert.Equal(t, "1", img.Attribute("HEIGHT"))
	img.SetAttribute("WIDTH", "5")
	assert.Equal(t, "2", img.Attribute("WIDTH"))

	img.SetAttribute("1", "255 0 0")
	assert.Equal(t, "255 0 0", img.Attribute("IDVALUE1"))
	assert.Equal(t, []byte{0, 1}, img.Data.(*classes.Image).Pixels)

	_, err := ctx.Create("image", 0, 1, []byte{})
	assert.Error(t, err)
}

func TestBoxLayout(t *testing.T) {
	ctx := newContext(t)
	ab := ctx.MustCreate("label", "ab")
	c := ctx.MustCreate("label", "c")
	hbox := ctx.MustCreate("hbox", ab, c)
	assert.Equal(t, "HORIZONTAL", hbox.Attribute("ORIENTATION"))
	assert.Equal(t, "VERTICAL", ctx.MustCreate("vbox").Attribute("ORIENTATION"))

	hbox.SetAttribute("GAP", "2")
	assert.Equal(t, "2", hbox.Attribute("GAP"))
	hbox.SetAttribute("GAP", "-1")
	assert.Equal(t, "2", hbox.Attribute("GAP"))

	hbox.Refresh()
	assert.Equal(t, 26, hbox.Layout.NaturalWidth)
	assert.Equal(t, 16, hbox.Layout.NaturalHeight)
	assert.Equal(t, 0, ab.Layout.X)
	assert.Equal(t, 18, c.Layout.X)
	assert.Equal(t, 16, c.Layout.CurrentHeight)

	user := ctx.MustCreate("user", hbox)
	assert.Same(t, hbox, user.FirstChild())
	assert.Equal(t, core.NativeNone, user.Class().NativeKind)
}

func TestSpinbox(t *testing.T) {
	ctx := newContext(t)
	text := ctx.MustCreate("label", "abc")
	sb := ctx.MustCreate("spinbox", text)
	spin := sb.FirstChild()
	require.NotNil(t, spin)
	assert.Equal(t, "spin", spin.Class().Name)

	sb.Refresh()
	assert.Equal(t, 40, sb.Layout.NaturalWidth)
	assert.Equal(t, 24, sb.Layout.NaturalHeight)
	assert.Equal(t, 0, text.Layout.X)
	assert.Equal(t, 24, spin.Layout.X)
}

func TestDialogSize(t *testing.T) {
	ctx := newContext(t)
	dlg := ctx.MustCreate("dialog", ctx.MustCreate("label", "ab"))
	dlg.SetAttribute("TITLE", "a long title")
	dlg.Refresh()
	assert.Equal(t, 96, dlg.Layout.NaturalWidth)
	assert.Equal(t, 40, dlg.Layout.NaturalHeight)
	assert.Equal(t, 96, dlg.FirstChild().Layout.CurrentWidth)

	dlg.SetAttribute("RASTERSIZE", "200x100")
	dlg.Refresh()
	assert.Equal(t, 200, dlg.Layout.NaturalWidth)
	assert.Equal(t, 76, dlg.FirstChild().Layout.CurrentHeight)
}
