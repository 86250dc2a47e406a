// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/gen2brain/iup-go-sub012/base/errors"
)

// Lifecycle callbacks, of type [CallbackFunc].
const (
	MapCallback     = "MAP_CB"
	UnmapCallback   = "UNMAP_CB"
	DestroyCallback = "DESTROY_CB"
)

// Create creates a new handle of the named class. The parameters are
// checked against the format of the class, and then only the Create
// method of the class itself runs; it is not chained to the Create of
// the parent class. A class without a Create method appends the
// handles of a handle array parameter as children.
func (ctx *Context) Create(className string, params ...any) (*Handle, error) {
	c := ctx.classes.Find(className)
	if c == nil {
		return nil, errors.Log(fmt.Errorf("core.Context.Create: %w: %q", ErrUnknownClass, className))
	}
	if err := checkParams(c.params, params); err != nil {
		return nil, fmt.Errorf("core.Context.Create %q: %w", className, err)
	}
	h := &Handle{class: c, ctx: ctx}
	if c.Methods.Create != nil {
		if err := c.Methods.Create(h, params); err != nil {
			h.Destroy()
			return nil, fmt.Errorf("core.Context.Create %q: %w", className, err)
		}
	} else if len(c.params) > 0 && c.params[len(c.params)-1].Kind == ParamHandleArray {
		for _, child := range HandleArgs(params) {
			if err := h.Append(child); err != nil {
				h.Destroy()
				return nil, fmt.Errorf("core.Context.Create %q: %w", className, err)
			}
		}
	}
	if c.NativeKind == NativeDialog {
		ctx.dialogs = append(ctx.dialogs, h)
	}
	return h, nil
}

// MustCreate is like [Context.Create] but panics on error.
// It is intended for building fixed element trees.
func (ctx *Context) MustCreate(className string, params ...any) *Handle {
	return errors.Must1(ctx.Create(className, params...))
}

// CreateInternal creates a handle of the named class as an internal
// child of parent. It is meant to be called from the Create method of
// the class of parent, for the children that are part of the element
// itself. Internal children are pinned before the other children.
func (ctx *Context) CreateInternal(parent *Handle, className string, params ...any) (*Handle, error) {
	h, err := ctx.Create(className, params...)
	if err != nil {
		return nil, err
	}
	h.SetInternal(true)
	if err := parent.Insert(nil, h); err != nil {
		h.Destroy()
		return nil, err
	}
	return h, nil
}

// Map creates the native element of h and then maps its children.
// h must have a mapped parent, unless its class is of a top-level
// native kind. Mapping a mapped handle does nothing. Once the native
// element exists the class defaults, inherited values and stored
// values of h are applied, in that order, and MAP_CB is called.
func (h *Handle) Map() error {
	switch h.state {
	case Destroyed:
		return ErrDestroyed
	case Mapped:
		return nil
	}
	c := h.class
	if h.parent == nil && !c.NativeKind.IsTopLevel() {
		return fmt.Errorf("%w: %v has no parent", ErrParentNotMapped, h)
	}
	if h.parent != nil && h.parent.state != Mapped {
		return fmt.Errorf("%w: parent of %v is %v", ErrParentNotMapped, h, h.parent.state)
	}
	if c.NativeKind != NativeNone {
		nat, err := h.ctx.driver.CreateNative(h, h.NativeParent())
		if err != nil {
			return fmt.Errorf("core.Handle.Map %v: %w", h, err)
		}
		h.native = nat
	}
	if c.Methods.Map != nil {
		if err := c.Methods.Map(h); err != nil {
			if h.native != nil {
				h.ctx.driver.DestroyNative(h)
				h.native = nil
			}
			return fmt.Errorf("core.Handle.Map %v: %w", h, err)
		}
	}
	h.state = Mapped
	h.applyDefaults()
	h.applyDeferred()
	h.Call(MapCallback)
	for ch := h.firstChild; ch != nil; ch = ch.next {
		if err := ch.Map(); err != nil {
			return err
		}
	}
	return nil
}

// Unmap destroys the native element of h after unmapping its
// children. The attribute values stored on h are kept, so mapping it
// again reproduces them. Unmapping a handle that is not mapped does
// nothing.
func (h *Handle) Unmap() {
	if h.state != Mapped {
		return
	}
	for ch := h.firstChild; ch != nil; ch = ch.next {
		ch.Unmap()
	}
	h.Call(UnmapCallback)
	if f := h.class.Methods.UnMap; f != nil {
		f(h)
	}
	if h.class.NativeKind != NativeNone {
		h.ctx.driver.DestroyNative(h)
	}
	h.native = nil
	h.state = Unmapped
}

// Destroy destroys h: it is detached from its parent, unmapped, its
// children are destroyed, the Destroy method of its class runs, and
// the names bound to it are removed. Destroying a destroyed handle
// only logs a warning.
func (h *Handle) Destroy() {
	if h.state == Destroyed {
		slog.Warn("core.Handle.Destroy: handle already destroyed", "handle", h)
		return
	}
	h.Call(DestroyCallback)
	if h.parent != nil {
		h.Detach()
	}
	h.Unmap()
	for h.firstChild != nil {
		h.firstChild.Destroy()
	}
	if f := h.class.Methods.Destroy; f != nil {
		f(h)
	}
	ctx := h.ctx
	ctx.names.Forget(h, h.name, !ctx.settings.Names.KeepStaleAliases)
	if i := slices.Index(ctx.dialogs, h); i >= 0 {
		ctx.dialogs = slices.Delete(ctx.dialogs, i, i+1)
	}
	h.state = Destroyed
	h.attrs = nil
	h.callbacks = nil
	h.Data = nil
}

// NativeParent returns the native element into which the native
// element of h is placed: that of the nearest ancestor with one,
// skipping ancestors without a native element, or the inner container
// returned by the InnerNativeContainer method of that ancestor.
func (h *Handle) NativeParent() any {
	child := h
	for p := h.parent; p != nil; p = p.parent {
		if f := p.class.Methods.InnerNativeContainer; f != nil {
			if c := f(p, child); c != nil {
				return c
			}
		}
		if p.class.NativeKind != NativeNone {
			return p.native
		}
		child = p
	}
	return nil
}

// Popup maps the dialog h if needed and shows it at the given
// position with the DlgPopup method of its class.
func (h *Handle) Popup(x, y int) error {
	if err := h.Map(); err != nil {
		return err
	}
	f := h.class.Methods.DlgPopup
	if f == nil {
		return fmt.Errorf("%w: class %q cannot pop up", ErrNoMethod, h.class.Name)
	}
	return f(h, x, y)
}

// Refresh computes the layout of the element tree of h: the natural
// sizes bottom-up, then the current sizes and positions top-down from
// the root, and finally calls the LayoutUpdate method of every mapped
// handle.
func (h *Handle) Refresh() {
	root := h.Root()
	root.WalkDownPost(nil, func(d *Handle) bool {
		d.ComputeNaturalSize()
		return Continue
	})
	root.Layout.CurrentWidth = root.Layout.NaturalWidth
	root.Layout.CurrentHeight = root.Layout.NaturalHeight
	root.SetChildrenCurrentSize(false)
	root.SetChildrenPosition(0, 0)
	root.LayoutUpdate()
}

// ComputeNaturalSize sets the natural size of h with the
// ComputeNaturalSize method of its class.
func (h *Handle) ComputeNaturalSize() {
	if f := h.class.Methods.ComputeNaturalSize; f != nil {
		h.Layout.NaturalWidth, h.Layout.NaturalHeight = f(h)
	}
}

// SetChildrenCurrentSize sets the current sizes of the children of h
// from its own, recursively.
func (h *Handle) SetChildrenCurrentSize(shrink bool) {
	if f := h.class.Methods.SetChildrenCurrentSize; f != nil {
		f(h, shrink)
	}
	for c := h.firstChild; c != nil; c = c.next {
		c.SetChildrenCurrentSize(shrink)
	}
}

// SetChildrenPosition sets the position of h and then that of its
// children, recursively.
func (h *Handle) SetChildrenPosition(x, y int) {
	h.Layout.X, h.Layout.Y = x, y
	if f := h.class.Methods.SetChildrenPosition; f != nil {
		f(h, x, y)
	}
	for c := h.firstChild; c != nil; c = c.next {
		c.SetChildrenPosition(c.Layout.X, c.Layout.Y)
	}
}

// LayoutUpdate calls the LayoutUpdate method of every mapped handle
// of the tree of h.
func (h *Handle) LayoutUpdate() {
	h.WalkDown(func(d *Handle) bool {
		if d.state != Mapped {
			return Break
		}
		if f := d.class.Methods.LayoutUpdate; f != nil {
			f(d)
		}
		return Continue
	})
}
