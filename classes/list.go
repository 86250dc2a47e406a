// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package classes

import (
	"slices"
	"strconv"
	"strings"

	"github.com/gen2brain/iup-go-sub012/base/errors"
	"github.com/gen2brain/iup-go-sub012/core"
)

// List is the state of list handles. Items are addressed from 1, as
// the ID attributes "1", "2" and so on.
type List struct {
	Common
	Items []string

	// Value is the selected item, 0 for none.
	Value int
}

func listOf(h *core.Handle) *List {
	if l, ok := h.Data.(*List); ok {
		return l
	}
	l := &List{Common: Common{Active: true}}
	h.Data = l
	return l
}

// newListClass returns the list class, whose items are the IDVALUE
// attribute family.
func newListClass(r *core.Registry) (*core.Class, error) {
	c, err := newRoot(r, "list")
	if err != nil {
		return nil, err
	}
	c.Format = "A"
	c.NativeKind = core.NativeControl
	c.Interactive = true
	c.AttribID = 1
	c.Methods.New = func(r *core.Registry) *core.Class {
		return errors.Must1(newListClass(r))
	}
	c.Methods.Create = func(h *core.Handle, params []any) error {
		listOf(h)
		if len(params) > 0 {
			if s, ok := params[0].(string); ok && s != "" {
				h.SetAttribute(actionKey, s)
			}
		}
		return nil
	}
	c.Methods.ComputeNaturalSize = func(h *core.Handle) (int, int) {
		l := listOf(h)
		w := 0
		for _, it := range l.Items {
			w = max(w, len([]rune(it)))
		}
		return naturalSize(h, 8*w+20, 16*max(1, len(l.Items)))
	}
	errors.Must(c.RegisterAttributeID(core.IDValue, getListItem, setListItem, core.NotMapped, core.NoInherit))
	errors.Must(c.RegisterAttributeID("INSERTITEM", nil, insertListItem, core.NotMapped, core.WriteOnly, core.NoInherit))
	errors.Must(c.RegisterAttribute("APPENDITEM", nil, appendListItem, "", "", core.NotMapped, core.WriteOnly, core.NoInherit))
	errors.Must(c.RegisterAttribute("REMOVEITEM", nil, removeListItem, "", "", core.NotMapped, core.WriteOnly, core.NoInherit))
	errors.Must(c.RegisterAttribute("COUNT", getListCount, nil, "", "", core.NotMapped, core.ReadOnly, core.NoInherit))
	errors.Must(c.RegisterAttribute("VALUE", getListValue, setListValue, "", "", core.NoInherit))
	errors.Must(c.RegisterCallback("ACTION", "sii"))
	return c, nil
}

func getListItem(h *core.Handle, id int) core.Value {
	l := listOf(h)
	if id < 1 || id > len(l.Items) {
		return core.Value{}
	}
	return core.StringValue(l.Items[id-1])
}

// setListItem sets item id; setting the item after the last appends,
// and resetting an item truncates the list there.
func setListItem(h *core.Handle, id int, v core.Value) bool {
	l := listOf(h)
	switch {
	case id < 1 || id > len(l.Items)+1:
	case !v.Valid:
		if id <= len(l.Items) {
			l.Items = l.Items[:id-1]
		}
	case id == len(l.Items)+1:
		l.Items = append(l.Items, v.String)
	default:
		l.Items[id-1] = v.String
	}
	return false
}

func insertListItem(h *core.Handle, id int, v core.Value) bool {
	l := listOf(h)
	if v.Valid && id >= 1 && id <= len(l.Items)+1 {
		l.Items = slices.Insert(l.Items, id-1, v.String)
	}
	return false
}

func appendListItem(h *core.Handle, v core.Value) bool {
	if v.Valid {
		l := listOf(h)
		l.Items = append(l.Items, v.String)
	}
	return false
}

// removeListItem removes one item by number, or all of them.
func removeListItem(h *core.Handle, v core.Value) bool {
	l := listOf(h)
	if !v.Valid || strings.EqualFold(v.String, "ALL") {
		l.Items = nil
		l.Value = 0
		return false
	}
	id, err := strconv.Atoi(v.String)
	if err != nil || id < 1 || id > len(l.Items) {
		return false
	}
	l.Items = slices.Delete(l.Items, id-1, id)
	if l.Value == id {
		l.Value = 0
	} else if l.Value > id {
		l.Value--
	}
	return false
}

func getListCount(h *core.Handle) core.Value {
	return core.StringValue(strconv.Itoa(len(listOf(h).Items)))
}

func getListValue(h *core.Handle) core.Value {
	if v := listOf(h).Value; v > 0 {
		return core.StringValue(strconv.Itoa(v))
	}
	return core.Value{}
}

func setListValue(h *core.Handle, v core.Value) bool {
	l := listOf(h)
	if !v.Valid {
		l.Value = 0
		return false
	}
	n, err := strconv.Atoi(v.String)
	if err != nil || n < 0 || n > len(l.Items) {
		return false
	}
	l.Value = n
	return false
}
