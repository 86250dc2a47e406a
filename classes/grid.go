// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package classes

import (
	"strconv"

	"github.com/gen2brain/iup-go-sub012/base/errors"
	"github.com/gen2brain/iup-go-sub012/core"
)

// Grid is the state of grid handles. Cell values are plain stored
// attributes "L:C"; column widths are kept here.
type Grid struct {
	Common
	NumLin, NumCol int
	Widths         map[int]int
}

func gridOf(h *core.Handle) *Grid {
	if g, ok := h.Data.(*Grid); ok {
		return g
	}
	g := &Grid{Common: Common{Active: true}, Widths: map[int]int{}}
	h.Data = g
	return g
}

// newGridClass returns the grid class, a canvas addressed by line and
// column: "2:3" is the value of a cell, CELLBGCOLOR2:3 its color and
// WIDTH3 the width of a column.
func newGridClass(r *core.Registry) (*core.Class, error) {
	c, err := newRoot(r, "grid")
	if err != nil {
		return nil, err
	}
	c.NativeKind = core.NativeCanvas
	c.Interactive = true
	c.AttribID = 2
	c.Methods.New = func(r *core.Registry) *core.Class {
		return errors.Must1(newGridClass(r))
	}
	c.Methods.Create = func(h *core.Handle, params []any) error {
		gridOf(h)
		return nil
	}
	c.Methods.ComputeNaturalSize = func(h *core.Handle) (int, int) {
		g := gridOf(h)
		w := 0
		for col := 1; col <= g.NumCol; col++ {
			w += g.width(col)
		}
		return naturalSize(h, w, 20*g.NumLin)
	}
	errors.Must(c.RegisterAttributeID2(core.IDValue, nil, nil, core.NoInherit))
	errors.Must(c.RegisterAttributeID2("CELLBGCOLOR", nil, nil, core.NoInherit))
	errors.Must(c.RegisterAttributeID("WIDTH", getGridWidth, setGridWidth, core.NotMapped, core.NoInherit))
	errors.Must(c.RegisterAttribute("NUMLIN", getNumLin, setNumLin, "0", "0", core.NotMapped, core.NoInherit))
	errors.Must(c.RegisterAttribute("NUMCOL", getNumCol, setNumCol, "0", "0", core.NotMapped, core.NoInherit))
	errors.Must(c.RegisterCallback("CLICK_CB", "iis"))
	return c, nil
}

// width returns the width of a column, 80 by default.
func (g *Grid) width(col int) int {
	if w, ok := g.Widths[col]; ok {
		return w
	}
	return 80
}

func getGridWidth(h *core.Handle, col int) core.Value {
	g := gridOf(h)
	if col < 1 || col > g.NumCol {
		return core.Value{}
	}
	return core.StringValue(strconv.Itoa(g.width(col)))
}

func setGridWidth(h *core.Handle, col int, v core.Value) bool {
	g := gridOf(h)
	if !v.Valid {
		delete(g.Widths, col)
		return false
	}
	n, err := strconv.Atoi(v.String)
	if err != nil || n < 0 {
		return false
	}
	g.Widths[col] = n
	return false
}

func getNumLin(h *core.Handle) core.Value {
	return core.StringValue(strconv.Itoa(gridOf(h).NumLin))
}

func setNumLin(h *core.Handle, v core.Value) bool {
	if n, err := strconv.Atoi(v.Or("0")); err == nil && n >= 0 {
		gridOf(h).NumLin = n
	}
	return false
}

func getNumCol(h *core.Handle) core.Value {
	return core.StringValue(strconv.Itoa(gridOf(h).NumCol))
}

func setNumCol(h *core.Handle, v core.Value) bool {
	if n, err := strconv.Atoi(v.Or("0")); err == nil && n >= 0 {
		gridOf(h).NumCol = n
	}
	return false
}
