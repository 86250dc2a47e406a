// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package classes

import (
	"strconv"

	"github.com/gen2brain/iup-go-sub012/base/errors"
	"github.com/gen2brain/iup-go-sub012/core"
)

// Dialog is the state of dialog handles.
type Dialog struct {
	Common
	Title string
	Shown bool
	X, Y  int
}

func dialogOf(h *core.Handle) *Dialog {
	if d, ok := h.Data.(*Dialog); ok {
		return d
	}
	d := &Dialog{Common: Common{Active: true}}
	h.Data = d
	return d
}

// newDialogClass returns the dialog class: a top-level element with
// a single child.
func newDialogClass(r *core.Registry) (*core.Class, error) {
	c, err := newRoot(r, "dialog")
	if err != nil {
		return nil, err
	}
	c.Format = "H"
	c.NativeKind = core.NativeDialog
	c.Arity = core.ChildExactly(1)
	c.Methods.New = func(r *core.Registry) *core.Class {
		return errors.Must1(newDialogClass(r))
	}
	c.Methods.Create = func(h *core.Handle, params []any) error {
		dialogOf(h)
		if len(params) > 0 {
			if child, ok := params[0].(*core.Handle); ok && child != nil {
				return h.Append(child)
			}
		}
		return nil
	}
	c.Methods.UnMap = func(h *core.Handle) {
		dialogOf(h).Shown = false
	}
	c.Methods.ComputeNaturalSize = func(h *core.Handle) (int, int) {
		w, hh := 0, 0
		if child := h.FirstChild(); child != nil {
			w, hh = child.Layout.NaturalWidth, child.Layout.NaturalHeight
		}
		tw, _ := textSize(h.Attribute("TITLE"))
		return naturalSize(h, max(w, tw), hh+24)
	}
	c.Methods.SetChildrenCurrentSize = func(h *core.Handle, shrink bool) {
		if child := h.FirstChild(); child != nil {
			child.Layout.CurrentWidth = h.Layout.CurrentWidth
			child.Layout.CurrentHeight = h.Layout.CurrentHeight - 24
		}
	}
	c.Methods.SetChildrenPosition = func(h *core.Handle, x, y int) {
		if child := h.FirstChild(); child != nil {
			child.Layout.X, child.Layout.Y = 0, 0
		}
	}
	c.Methods.DlgPopup = func(h *core.Handle, x, y int) error {
		d := dialogOf(h)
		d.Shown, d.X, d.Y = true, x, y
		h.Call("SHOW_CB")
		return nil
	}
	errors.Must(c.RegisterAttribute("TITLE", nil, setDialogTitle, "", "", core.NoInherit))
	errors.Must(c.RegisterAttribute("VISIBLE", getDialogVisible, nil, "", "", core.ReadOnly, core.NoInherit))
	errors.Must(c.RegisterAttribute("X", getDialogX, nil, "", "", core.ReadOnly, core.NoInherit))
	errors.Must(c.RegisterAttribute("Y", getDialogY, nil, "", "", core.ReadOnly, core.NoInherit))
	errors.Must(c.RegisterAttribute("DEFAULTENTER", nil, nil, "", "", core.IhandleName, core.NoInherit))
	errors.Must(c.RegisterCallback("SHOW_CB", ""))
	errors.Must(c.RegisterCallback("CLOSE_CB", ""))
	return c, nil
}

func setDialogTitle(h *core.Handle, v core.Value) bool {
	dialogOf(h).Title = v.String
	return true
}

func getDialogVisible(h *core.Handle) core.Value {
	if dialogOf(h).Shown {
		return core.StringValue("YES")
	}
	return core.StringValue("NO")
}

func getDialogX(h *core.Handle) core.Value {
	return core.StringValue(strconv.Itoa(dialogOf(h).X))
}

func getDialogY(h *core.Handle) core.Value {
	return core.StringValue(strconv.Itoa(dialogOf(h).Y))
}
