// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package classes provides the built-in element classes: layout boxes,
// dialogs, labels, buttons, spin boxes, lists, grids and images.
// They hold no rendering code; their methods keep the element state
// and the layout boxes that a driver would realize natively.
package classes

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gen2brain/iup-go-sub012/base/errors"
	"github.com/gen2brain/iup-go-sub012/core"
)

// Register registers every built-in class in r as an internal class.
func Register(r *core.Registry) error {
	builders := []func(r *core.Registry) (*core.Class, error){
		newBoxClass, newVboxClass, newHboxClass, newUserClass,
		newDialogClass, newLabelClass, newButtonClass,
		newSpinClass, newSpinboxClass, newListClass,
		newGridClass, newImageClass,
	}
	for _, b := range builders {
		c, err := b(r)
		if err != nil {
			return err
		}
		if err := r.RegisterInternal(c); err != nil {
			return err
		}
	}
	return nil
}

// Common is the state that every built-in class keeps for the base
// attributes.
type Common struct {
	BgColor string
	FgColor string
	Active  bool
	Font    core.Font

	// RasterWidth and RasterHeight are the user size in pixels,
	// zero when not set.
	RasterWidth  int
	RasterHeight int
}

type commoner interface {
	common() *Common
}

func (c *Common) common() *Common { return c }

// CommonOf returns the base attribute state of h.
func CommonOf(h *core.Handle) *Common {
	if h.Data == nil {
		h.Data = &Common{Active: true}
	}
	if c, ok := h.Data.(commoner); ok {
		return c.common()
	}
	return nil
}

// newRoot returns a root class with the base attributes and callbacks.
func newRoot(r *core.Registry, name string) (*core.Class, error) {
	c, err := r.NewClass("")
	if err != nil {
		return nil, err
	}
	c.Name = name
	registerBase(c)
	return c, nil
}

func registerBase(c *core.Class) {
	errors.Must(c.RegisterAttribute("BGCOLOR", nil, setBgColor, core.SameAsSystem, "240 240 240"))
	errors.Must(c.RegisterAttribute("FGCOLOR", nil, setFgColor, "0 0 0", "0 0 0"))
	errors.Must(c.RegisterAttribute("ACTIVE", getActive, setActive, "YES", "YES"))
	errors.Must(c.RegisterAttribute("FONT", nil, setFont, "", "", core.NotMapped))
	errors.Must(c.RegisterAttribute("NAME", nil, setName, "", "", core.NotMapped, core.NoInherit))
	errors.Must(c.RegisterAttribute("RASTERSIZE", nil, setRasterSize, "", "", core.NotMapped, core.NoInherit))
	errors.Must(c.RegisterAttribute("WID", getWid, nil, "", "", core.ReadOnly, core.NoInherit, core.NoDefaultValue, core.NoSave))
	errors.Must(c.RegisterCallback(core.MapCallback, ""))
	errors.Must(c.RegisterCallback(core.UnmapCallback, ""))
	errors.Must(c.RegisterCallback(core.DestroyCallback, ""))
}

func setBgColor(h *core.Handle, v core.Value) bool {
	if c := CommonOf(h); c != nil {
		c.BgColor = v.String
	}
	return true
}

func setFgColor(h *core.Handle, v core.Value) bool {
	if c := CommonOf(h); c != nil {
		c.FgColor = v.String
	}
	return true
}

// setActive keeps the state itself; the value is still stored, as
// ACTIVE is inheritable.
func setActive(h *core.Handle, v core.Value) bool {
	if c := CommonOf(h); c != nil {
		c.Active = !strings.EqualFold(v.Or("YES"), "NO")
	}
	return false
}

func getActive(h *core.Handle) core.Value {
	c := CommonOf(h)
	if c == nil || c.Active {
		return core.Value{}
	}
	return core.StringValue("NO")
}

// setFont only stores valid fonts.
func setFont(h *core.Handle, v core.Value) bool {
	c := CommonOf(h)
	if !v.Valid {
		if c != nil {
			c.Font = core.Font{}
		}
		return true
	}
	f, err := core.ParseFont(v.String)
	if err != nil {
		return false
	}
	if c != nil {
		c.Font = f
	}
	return true
}

func setName(h *core.Handle, v core.Value) bool {
	if v.Valid {
		h.SetName(v.String)
	}
	return true
}

func setRasterSize(h *core.Handle, v core.Value) bool {
	c := CommonOf(h)
	if c == nil {
		return true
	}
	if !v.Valid {
		c.RasterWidth, c.RasterHeight = 0, 0
		return true
	}
	w, hh, ok := parseSize(v.String)
	if !ok {
		return false
	}
	c.RasterWidth, c.RasterHeight = w, hh
	return true
}

func getWid(h *core.Handle) core.Value {
	if h.Native() == nil {
		return core.Value{}
	}
	return core.StringValue(fmt.Sprintf("%p", h.Native()))
}

// parseSize parses a size of the form "WxH"; either part may be empty.
func parseSize(s string) (w, h int, ok bool) {
	ws, hs, found := strings.Cut(strings.ToLower(s), "x")
	if !found {
		return 0, 0, false
	}
	var err error
	if ws = strings.TrimSpace(ws); ws != "" {
		if w, err = strconv.Atoi(ws); err != nil {
			return 0, 0, false
		}
	}
	if hs = strings.TrimSpace(hs); hs != "" {
		if h, err = strconv.Atoi(hs); err != nil {
			return 0, 0, false
		}
	}
	return w, h, true
}

// naturalSize applies the user size of h over a computed size.
func naturalSize(h *core.Handle, w, hh int) (int, int) {
	if c := CommonOf(h); c != nil {
		if c.RasterWidth > 0 {
			w = c.RasterWidth
		}
		if c.RasterHeight > 0 {
			hh = c.RasterHeight
		}
	}
	return w, hh
}

// textSize is the size of a single line of text in pixels.
func textSize(s string) (int, int) {
	if s == "" {
		return 0, 16
	}
	return 8 * len([]rune(s)), 16
}
