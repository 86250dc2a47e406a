// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package classes

import (
	"fmt"
	"strconv"

	"github.com/gen2brain/iup-go-sub012/base/errors"
	"github.com/gen2brain/iup-go-sub012/core"
)

// Image is the state of image handles: an indexed color image with
// one byte per pixel.
type Image struct {
	Common
	Width, Height int
	Pixels        []byte
}

func newImageClass(r *core.Registry) (*core.Class, error) {
	c, err := newRoot(r, "image")
	if err != nil {
		return nil, err
	}
	c.Format = "iib"
	c.NativeKind = core.NativeImage
	c.AttribID = 1
	c.Methods.New = func(r *core.Registry) *core.Class {
		return errors.Must1(newImageClass(r))
	}
	c.Methods.Create = createImage
	c.Methods.ComputeNaturalSize = func(h *core.Handle) (int, int) {
		img := h.Data.(*Image)
		return img.Width, img.Height
	}
	errors.Must(c.RegisterAttribute("WIDTH", getImageWidth, nil, "", "", core.ReadOnly, core.NotMapped, core.NoInherit))
	errors.Must(c.RegisterAttribute("HEIGHT", getImageHeight, nil, "", "", core.ReadOnly, core.NotMapped, core.NoInherit))
	// palette entries are stored as given, "0" to "255"
	errors.Must(c.RegisterAttributeID(core.IDValue, nil, nil, core.NoInherit))
	return c, nil
}

func createImage(h *core.Handle, params []any) error {
	w, hh := params[0].(int), params[1].(int)
	pixels := params[2].([]byte)
	if w <= 0 || hh <= 0 {
		return fmt.Errorf("classes: invalid image size %dx%d", w, hh)
	}
	if len(pixels) != w*hh {
		return fmt.Errorf("classes: image of %dx%d needs %d pixels, not %d", w, hh, w*hh, len(pixels))
	}
	h.Data = &Image{Common: Common{Active: true}, Width: w, Height: hh, Pixels: pixels}
	return nil
}

func getImageWidth(h *core.Handle) core.Value {
	return core.StringValue(strconv.Itoa(h.Data.(*Image).Width))
}

func getImageHeight(h *core.Handle) core.Value {
	return core.StringValue(strconv.Itoa(h.Data.(*Image).Height))
}
