// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package classes

import (
	"github.com/gen2brain/iup-go-sub012/base/errors"
	"github.com/gen2brain/iup-go-sub012/core"
)

// actionKey is where a button keeps the callback name it was created
// with.
const actionKey = core.InternalPrefix + "_ACTIONNAME"

// Text is the state of label and button handles.
type Text struct {
	Common
	Title string
}

func textOf(h *core.Handle) *Text {
	if t, ok := h.Data.(*Text); ok {
		return t
	}
	t := &Text{Common: Common{Active: true}}
	h.Data = t
	return t
}

// textNaturalSize measures the TITLE attribute, which is set before
// the handle is mapped.
func textNaturalSize(h *core.Handle) (int, int) {
	w, hh := textSize(h.Attribute("TITLE"))
	return naturalSize(h, w, hh)
}

func setTitle(h *core.Handle, v core.Value) bool {
	textOf(h).Title = v.String
	return true
}

// createText sets the title from an optional first string parameter.
func createText(h *core.Handle, params []any) error {
	textOf(h)
	if len(params) > 0 {
		if s, ok := params[0].(string); ok {
			h.SetAttribute("TITLE", s)
		}
	}
	return nil
}

func newLabelClass(r *core.Registry) (*core.Class, error) {
	c, err := newRoot(r, "label")
	if err != nil {
		return nil, err
	}
	c.Format = "S"
	c.NativeKind = core.NativeControl
	c.Methods.New = func(r *core.Registry) *core.Class {
		return errors.Must1(newLabelClass(r))
	}
	c.Methods.Create = createText
	c.Methods.ComputeNaturalSize = textNaturalSize
	errors.Must(c.RegisterAttribute("TITLE", nil, setTitle, "", "", core.NoInherit))
	return c, nil
}

// newButtonClass returns the button class. Its creation parameters are
// an optional title and an optional action callback name.
func newButtonClass(r *core.Registry) (*core.Class, error) {
	c, err := newRoot(r, "button")
	if err != nil {
		return nil, err
	}
	c.Format = "SA"
	c.NativeKind = core.NativeControl
	c.Interactive = true
	c.Methods.New = func(r *core.Registry) *core.Class {
		return errors.Must1(newButtonClass(r))
	}
	c.Methods.Create = func(h *core.Handle, params []any) error {
		if err := createText(h, params); err != nil {
			return err
		}
		if len(params) > 1 {
			if s, ok := params[1].(string); ok && s != "" {
				h.SetAttribute(actionKey, s)
			}
		}
		return nil
	}
	c.Methods.ComputeNaturalSize = func(h *core.Handle) (int, int) {
		w, hh := textSize(h.Attribute("TITLE"))
		return naturalSize(h, w+10, hh+8)
	}
	errors.Must(c.RegisterAttribute("TITLE", nil, setTitle, "", "", core.NoInherit))
	errors.Must(c.RegisterAttribute("ACTIONNAME", getActionName, nil, "", "", core.ReadOnly, core.NoInherit, core.NotMapped))
	errors.Must(c.RegisterCallback("ACTION", ""))
	errors.Must(c.RegisterCallback("BUTTON_CB", "iiiis"))
	return c, nil
}

func getActionName(h *core.Handle) core.Value {
	return h.Get(actionKey)
}

// newSpinClass returns the spin class, the internal spinner child of
// spin boxes.
func newSpinClass(r *core.Registry) (*core.Class, error) {
	c, err := newRoot(r, "spin")
	if err != nil {
		return nil, err
	}
	c.NativeKind = core.NativeControl
	c.Interactive = true
	c.Methods.New = func(r *core.Registry) *core.Class {
		return errors.Must1(newSpinClass(r))
	}
	c.Methods.ComputeNaturalSize = func(h *core.Handle) (int, int) {
		return naturalSize(h, 16, 24)
	}
	errors.Must(c.RegisterCallback("SPIN_CB", "i"))
	return c, nil
}

// newSpinboxClass returns the spinbox class, a container that creates
// an internal spin child and takes one more child.
func newSpinboxClass(r *core.Registry) (*core.Class, error) {
	c, err := newRoot(r, "spinbox")
	if err != nil {
		return nil, err
	}
	c.Format = "H"
	c.NativeKind = core.NativeControl
	c.Arity = core.ChildExactly(2)
	c.Methods.New = func(r *core.Registry) *core.Class {
		return errors.Must1(newSpinboxClass(r))
	}
	c.Methods.Create = func(h *core.Handle, params []any) error {
		if _, err := h.Context().CreateInternal(h, "spin"); err != nil {
			return err
		}
		if len(params) > 0 {
			if child, ok := params[0].(*core.Handle); ok && child != nil {
				return h.Append(child)
			}
		}
		return nil
	}
	c.Methods.ComputeNaturalSize = func(h *core.Handle) (int, int) {
		w, hh := 0, 0
		for ch := h.FirstChild(); ch != nil; ch = ch.NextSibling() {
			w += ch.Layout.NaturalWidth
			hh = max(hh, ch.Layout.NaturalHeight)
		}
		return naturalSize(h, w, hh)
	}
	c.Methods.SetChildrenCurrentSize = func(h *core.Handle, shrink bool) {
		for ch := h.FirstChild(); ch != nil; ch = ch.NextSibling() {
			ch.Layout.CurrentWidth = ch.Layout.NaturalWidth
			ch.Layout.CurrentHeight = h.Layout.CurrentHeight
		}
	}
	c.Methods.SetChildrenPosition = func(h *core.Handle, x, y int) {
		// the spinner goes after the other child
		spin := h.FirstChild()
		if spin == nil {
			return
		}
		cx := x
		for ch := spin.NextSibling(); ch != nil; ch = ch.NextSibling() {
			ch.Layout.X, ch.Layout.Y = cx, y
			cx += ch.Layout.CurrentWidth
		}
		spin.Layout.X, spin.Layout.Y = cx, y
	}
	return c, nil
}
