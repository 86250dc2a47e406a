// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gen2brain/iup-go-sub012/callback"
	. "github.com/gen2brain/iup-go-sub012/core"
)

func TestSharedAttributeTable(t *testing.T) {
	r := NewRegistry()
	register(t, r, "widget", func(c *Class) {})
	b := derive(t, r, "widget", "button", nil)
	a := b.Parent
	require.NotNil(t, a)
	assert.Equal(t, "widget", a.Name)

	require.NoError(t, a.RegisterAttribute("X", nil, nil, "from-widget", ""))
	assert.Same(t, a.AttributeInfo("X"), b.AttributeInfo("X"))
	assert.Equal(t, "from-widget", b.AttributeInfo("X").Default)

	require.NoError(t, b.RegisterAttribute("X", nil, nil, "from-button", ""))
	assert.Same(t, a.AttributeInfo("X"), b.AttributeInfo("X"))
	assert.Equal(t, "from-button", a.AttributeInfo("X").Default)
	assert.Equal(t, []string{"X"}, a.Attributes())
}

func TestNewClassUsesNew(t *testing.T) {
	r := NewRegistry()
	var made int
	var build func(r *Registry) *Class
	build = func(r *Registry) *Class {
		made++
		c, err := r.NewClass("")
		require.NoError(t, err)
		c.Name = "widget"
		c.Arity = ChildMany
		c.Methods.New = build
		require.NoError(t, c.RegisterAttribute("COLOR", nil, nil, "white", ""))
		return c
	}
	w := build(r)
	require.NoError(t, r.Register(w))
	b, err := r.NewClass("widget")
	require.NoError(t, err)
	assert.Equal(t, 2, made)
	assert.NotSame(t, w, b.Parent)
	assert.Equal(t, ChildMany, b.Arity)
	assert.Equal(t, "widget", b.Name)

	// the derived hierarchy has its own table
	require.NoError(t, b.RegisterAttribute("COLOR", nil, nil, "red", ""))
	assert.Equal(t, "white", w.AttributeInfo("COLOR").Default)
	assert.Equal(t, "red", b.Parent.AttributeInfo("COLOR").Default)
}

func TestNewClassWithoutNew(t *testing.T) {
	r := NewRegistry()
	c, err := r.NewClass("")
	require.NoError(t, err)
	c.Name = "plain"
	c.Format = "s"
	require.NoError(t, c.RegisterAttribute("A", nil, nil, "1", ""))
	require.NoError(t, r.Register(c))

	d, err := r.NewClass("plain")
	require.NoError(t, err)
	d.Name = "derived"
	require.NoError(t, d.RegisterAttribute("A", nil, nil, "2", ""))
	assert.Equal(t, "1", c.AttributeInfo("A").Default)
	assert.Equal(t, "2", d.AttributeInfo("A").Default)
	assert.Equal(t, "s", d.Format)

	_, err = r.NewClass("missing")
	assert.ErrorIs(t, err, ErrUnknownClass)
}

func TestNewClassWithoutNewChain(t *testing.T) {
	r := NewRegistry()
	var released []*Class
	c, err := r.NewClass("")
	require.NoError(t, err)
	c.Name = "plain"
	c.Methods.Release = func(cl *Class) { released = append(released, cl) }
	require.NoError(t, c.RegisterAttribute("A", nil, nil, "1", ""))
	require.NoError(t, r.Register(c))

	mid, err := r.NewClass("plain")
	require.NoError(t, err)
	mid.Name = "mid"
	require.NoError(t, r.Register(mid))

	d, err := r.NewClass("mid")
	require.NoError(t, err)
	d.Name = "derived"
	assert.Equal(t, []string{"derived", "mid", "plain"}, d.Chain())
	require.NotNil(t, d.Parent.Parent)
	assert.NotSame(t, c, d.Parent.Parent)
	assert.NotSame(t, mid, d.Parent)
	require.NoError(t, d.RegisterAttribute("B", nil, nil, "2", ""))
	for cl := d; cl != nil; cl = cl.Parent {
		assert.NotNil(t, cl.AttributeInfo("B"), cl.Name)
	}
	assert.Nil(t, mid.AttributeInfo("B"))
	assert.Nil(t, c.AttributeInfo("B"))

	d.Release()
	assert.Len(t, released, 3)
	assert.NotContains(t, released, c)
	assert.NotContains(t, released, mid)
	assert.NotContains(t, released, mid.Parent)
	assert.Nil(t, d.Parent.Parent.AttributeInfo("A"))
	assert.Equal(t, "1", c.AttributeInfo("A").Default)
	assert.Equal(t, "1", mid.AttributeInfo("A").Default)
}

func TestMethodOverride(t *testing.T) {
	r := NewRegistry()
	register(t, r, "widget", func(c *Class) {
		c.Methods.LayoutUpdate = func(h *Handle) {}
		c.Methods.Map = func(h *Handle) error { return nil }
	})
	d := derive(t, r, "widget", "derived", func(c *Class) {
		c.Methods.LayoutUpdate = nil
	})
	assert.Nil(t, d.Methods.LayoutUpdate)
	assert.NotNil(t, d.Methods.Map)
	assert.NotNil(t, d.Parent.Methods.LayoutUpdate)
}

func TestClassMatch(t *testing.T) {
	r := NewRegistry()
	register(t, r, "control", func(c *Class) {})
	derive(t, r, "control", "text", nil)
	sp := derive(t, r, "text", "spin", nil)
	assert.True(t, sp.Match("spin"))
	assert.True(t, sp.Match("text"))
	assert.True(t, sp.Match("control"))
	assert.False(t, sp.Match("dialog"))
	assert.Equal(t, []string{"spin", "text", "control"}, sp.Chain())
}

func TestReservedAttributeName(t *testing.T) {
	r := NewRegistry()
	c := register(t, r, "widget", func(c *Class) {})
	err := c.RegisterAttribute(InternalPrefix+"_X", nil, nil, "", "")
	assert.ErrorIs(t, err, ErrReservedName)
	assert.Nil(t, c.AttributeInfo(InternalPrefix+"_X"))
	assert.ErrorIs(t, c.RegisterCallback("_IUPCB", ""), ErrReservedName)
}

func TestAttributeAdjust(t *testing.T) {
	r := NewRegistry()
	c := register(t, r, "widget", func(c *Class) {
		require.NoError(t, c.RegisterAttribute("A", nil, nil, "1", "2", NoInherit))
		require.NoError(t, c.RegisterAttributeID("B", nil, nil))
	})
	c.SetAttributeDefault("A", SameAsSystem, "3")
	assert.Equal(t, StringValue("3"), c.AttributeInfo("A").DefaultValue())

	c.SetAttributeFlags("A", NoDefaultValue)
	assert.Equal(t, Value{}, c.AttributeInfo("A").DefaultValue())
	assert.True(t, c.AttributeInfo("A").Inheritable())

	c.SetAttributeFlags("B", ReadOnly)
	assert.True(t, c.AttributeInfo("B").Flags.Has(HasID))
	assert.True(t, c.AttributeInfo("B").Flags.Has(ReadOnly))
	assert.Equal(t, "HAS_ID|READONLY", c.AttributeInfo("B").Flags.String())

	called := false
	c.SetAttributeFunc("A", nil, func(h *Handle, v Value) bool { called = true; return true })
	assert.NotNil(t, c.AttributeInfo("A").Set)
	assert.False(t, called)

	// adjusting a missing attribute does nothing
	c.SetAttributeDefault("MISSING", "x", "")
	assert.Nil(t, c.AttributeInfo("MISSING"))
}

func TestCallbacks(t *testing.T) {
	r := NewRegistry()
	c := register(t, r, "widget", func(c *Class) {
		require.NoError(t, c.RegisterAttribute("TITLE", nil, nil, "", ""))
		require.NoError(t, c.RegisterCallback("ACTION", ""))
		require.NoError(t, c.RegisterCallback("MOTION_CB", "iis"))
	})
	assert.Error(t, c.RegisterCallback("BAD_CB", "q"))
	assert.Equal(t, []string{"TITLE"}, c.Attributes())
	assert.Equal(t, []string{"ACTION", "MOTION_CB"}, c.Callbacks())

	sig, ok := c.CallbackSignature("MOTION_CB")
	require.True(t, ok)
	assert.Equal(t, []callback.Kind{callback.Int, callback.Int, callback.String}, sig.Params)
	assert.Equal(t, callback.Int, sig.Return)
	_, ok = c.CallbackSignature("TITLE")
	assert.False(t, ok)
}

func TestRegistryReplace(t *testing.T) {
	r := NewRegistry()
	released := 0
	old := register(t, r, "widget", func(c *Class) {
		c.Methods.Release = func(c *Class) { released++ }
		require.NoError(t, c.RegisterAttribute("A", nil, nil, "", ""))
	})
	assert.Same(t, old, r.Find("widget"))

	repl := register(t, r, "widget", func(c *Class) {})
	assert.Equal(t, 1, released)
	assert.Same(t, repl, r.Find("widget"))
	assert.Nil(t, old.AttributeInfo("A"))
	assert.Equal(t, 1, r.Count())

	// releasing again does nothing
	old.Release()
	assert.Equal(t, 1, released)
}

func TestRegistryInternal(t *testing.T) {
	r := NewRegistry()
	c, err := r.NewClass("")
	require.NoError(t, err)
	c.Name = "label"
	c.Constructor = "Label"
	require.NoError(t, r.RegisterInternal(c))
	assert.True(t, r.Find("label").IsInternal())
	assert.Same(t, c, r.Find("Label"))
	assert.Nil(t, r.Find("LABEL"))

	u, err := r.NewClass("")
	require.NoError(t, err)
	u.Name = "label"
	require.NoError(t, r.Register(u))
	assert.False(t, r.Find("label").IsInternal())
}

func TestRegistryList(t *testing.T) {
	r := NewRegistry()
	for _, nm := range []string{"a", "b", "c"} {
		register(t, r, nm, func(c *Class) {})
	}
	assert.Equal(t, 3, r.List(nil))
	buf := make([]string, 2)
	assert.Equal(t, 2, r.List(buf))
	assert.Equal(t, []string{"a", "b"}, buf)
	assert.Equal(t, []string{"a", "b", "c"}, r.Names())
}

func TestRegistryFormat(t *testing.T) {
	r := NewRegistry()
	c, err := r.NewClass("")
	require.NoError(t, err)
	c.Name = "bad"
	c.Format = "gs"
	assert.ErrorIs(t, r.Register(c), ErrParams)
	assert.Nil(t, r.Find("bad"))

	c.Format = "sIg"
	require.NoError(t, r.Register(c))
	assert.Equal(t, []Param{{Kind: ParamString}, {Kind: ParamInt, Optional: true}, {Kind: ParamHandleArray}}, c.Params())
}

func TestRegistryClose(t *testing.T) {
	r := NewRegistry()
	released := 0
	register(t, r, "widget", func(c *Class) {
		c.Methods.Release = func(c *Class) { released++ }
	})
	// the derived chain releases each level once
	derive(t, r, "widget", "button", nil)
	r.Close()
	assert.Equal(t, 0, r.Count())
	assert.Equal(t, 3, released)
}
