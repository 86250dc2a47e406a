// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package classes

import (
	"strconv"

	"github.com/gen2brain/iup-go-sub012/base/errors"
	"github.com/gen2brain/iup-go-sub012/core"
)

// Box is the state of box, vbox and hbox handles.
type Box struct {
	Common
	Gap int

	// Horizontal is whether children are laid out in a row.
	Horizontal bool
}

func boxOf(h *core.Handle) *Box {
	if b, ok := h.Data.(*Box); ok {
		return b
	}
	b := &Box{Common: Common{Active: true}}
	h.Data = b
	return b
}

// newBoxClass returns the box class: a structural container without
// a native element that stacks its children vertically.
func newBoxClass(r *core.Registry) (*core.Class, error) {
	c, err := newRoot(r, "box")
	if err != nil {
		return nil, err
	}
	c.Format = "g"
	c.NativeKind = core.NativeNone
	c.Arity = core.ChildMany
	c.Methods.New = func(r *core.Registry) *core.Class {
		return errors.Must1(newBoxClass(r))
	}
	c.Methods.Create = createBox
	c.Methods.ComputeNaturalSize = boxNaturalSize
	c.Methods.SetChildrenCurrentSize = boxChildrenSize
	c.Methods.SetChildrenPosition = boxChildrenPosition
	errors.Must(c.RegisterAttribute("GAP", getGap, setGap, "0", "0", core.NotMapped, core.NoInherit))
	errors.Must(c.RegisterAttribute("ORIENTATION", getOrientation, nil, "", "", core.ReadOnly, core.NoInherit, core.NotMapped))
	return c, nil
}

func createBox(h *core.Handle, params []any) error {
	boxOf(h)
	for _, child := range core.HandleArgs(params) {
		if err := h.Append(child); err != nil {
			return err
		}
	}
	return nil
}

// newVboxClass returns vbox, a box derived class.
func newVboxClass(r *core.Registry) (*core.Class, error) {
	c, err := r.NewClass("box")
	if err != nil {
		return nil, err
	}
	c.Name = "vbox"
	c.Methods.New = func(r *core.Registry) *core.Class {
		return errors.Must1(newVboxClass(r))
	}
	return c, nil
}

// newHboxClass returns hbox, a box derived class that lays out its
// children in a row.
func newHboxClass(r *core.Registry) (*core.Class, error) {
	c, err := r.NewClass("box")
	if err != nil {
		return nil, err
	}
	c.Name = "hbox"
	c.Methods.New = func(r *core.Registry) *core.Class {
		return errors.Must1(newHboxClass(r))
	}
	c.Methods.Create = func(h *core.Handle, params []any) error {
		boxOf(h).Horizontal = true
		return createBox(h, params)
	}
	return c, nil
}

// newUserClass returns the user class: a structural element without
// a native element or methods, that any other element can contain.
func newUserClass(r *core.Registry) (*core.Class, error) {
	c, err := newRoot(r, "user")
	if err != nil {
		return nil, err
	}
	c.Format = "g"
	c.Arity = core.ChildMany
	c.Methods.New = func(r *core.Registry) *core.Class {
		return errors.Must1(newUserClass(r))
	}
	return c, nil
}

func getGap(h *core.Handle) core.Value {
	return core.StringValue(strconv.Itoa(boxOf(h).Gap))
}

func setGap(h *core.Handle, v core.Value) bool {
	n, err := strconv.Atoi(v.Or("0"))
	if err != nil || n < 0 {
		return false
	}
	boxOf(h).Gap = n
	return false
}

func getOrientation(h *core.Handle) core.Value {
	if boxOf(h).Horizontal {
		return core.StringValue("HORIZONTAL")
	}
	return core.StringValue("VERTICAL")
}

func boxNaturalSize(h *core.Handle) (int, int) {
	b := boxOf(h)
	w, hh, n := 0, 0, 0
	for c := h.FirstChild(); c != nil; c = c.NextSibling() {
		cw, ch := c.Layout.NaturalWidth, c.Layout.NaturalHeight
		if b.Horizontal {
			w += cw
			hh = max(hh, ch)
		} else {
			hh += ch
			w = max(w, cw)
		}
		n++
	}
	if n > 1 {
		if b.Horizontal {
			w += b.Gap * (n - 1)
		} else {
			hh += b.Gap * (n - 1)
		}
	}
	return naturalSize(h, w, hh)
}

// boxChildrenSize gives every child its natural size, stretched
// across the box.
func boxChildrenSize(h *core.Handle, shrink bool) {
	b := boxOf(h)
	for c := h.FirstChild(); c != nil; c = c.NextSibling() {
		c.Layout.CurrentWidth = c.Layout.NaturalWidth
		c.Layout.CurrentHeight = c.Layout.NaturalHeight
		if b.Horizontal {
			c.Layout.CurrentHeight = h.Layout.CurrentHeight
		} else {
			c.Layout.CurrentWidth = h.Layout.CurrentWidth
		}
	}
}

func boxChildrenPosition(h *core.Handle, x, y int) {
	b := boxOf(h)
	for c := h.FirstChild(); c != nil; c = c.NextSibling() {
		c.Layout.X, c.Layout.Y = x, y
		if b.Horizontal {
			x += c.Layout.CurrentWidth + b.Gap
		} else {
			y += c.Layout.CurrentHeight + b.Gap
		}
	}
}
