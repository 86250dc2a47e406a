// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"fmt"
	"log/slog"

	"github.com/gen2brain/iup-go-sub012/base/ordmap"
	"github.com/gen2brain/iup-go-sub012/bitflag"
)

// Handle is one live element created from a [Class]. It holds its own
// attribute values, its position in the element tree and, while it is
// mapped, the native value created for it by the [Driver].
//
// Handles are created with [Context.Create] and must be destroyed with
// [Handle.Destroy]. They are not safe for concurrent use: every
// operation on the handles of one [Context] must run on one goroutine.
type Handle struct {
	class *Class
	ctx   *Context

	// attrs holds the attribute values set on this handle, created
	// on the first set.
	attrs *ordmap.Map[string, string]

	// tree links; there is no previous sibling link.
	parent     *Handle
	firstChild *Handle
	next       *Handle

	native any
	flags  int64
	state  State

	// name is the last name bound to the handle.
	name string

	callbacks map[string]any

	// Layout is the layout box of the handle, filled by the layout
	// methods of its class during [Handle.Refresh].
	Layout Layout

	// Data is per-instance data owned by the class of the handle.
	Data any
}

// Layout is the layout box of a handle.
type Layout struct {
	NaturalWidth  int
	NaturalHeight int
	CurrentWidth  int
	CurrentHeight int
	X             int
	Y             int
}

// CallbackFunc is the basic callback type, receiving only the handle.
// Callbacks with other signatures are stored and retrieved as any.
type CallbackFunc func(h *Handle) int

// Callback return values.
const (
	ReturnIgnore   = -1
	ReturnDefault  = -2
	ReturnClose    = -3
	ReturnContinue = -4
)

func (h *Handle) String() string {
	if h == nil {
		return "<nil handle>"
	}
	if h.name != "" {
		return h.class.Name + " " + h.name
	}
	return fmt.Sprintf("%s %p", h.class.Name, h)
}

// Class returns the class the handle was created from.
func (h *Handle) Class() *Class {
	return h.class
}

// Context returns the toolkit context that owns the handle.
func (h *Handle) Context() *Context {
	return h.ctx
}

// State returns the lifecycle state of the handle.
func (h *Handle) State() State {
	return h.state
}

// IsMapped returns whether the handle currently has a native element.
func (h *Handle) IsMapped() bool {
	return h != nil && h.state == Mapped
}

// Native returns the native value created by the driver for the
// handle, or nil when the handle is not mapped or its class has no
// native element.
func (h *Handle) Native() any {
	return h.native
}

// IsInternal returns whether the handle was created implicitly by the
// Create method of its parent.
func (h *Handle) IsInternal() bool {
	return bitflag.Has(h.flags, Internal)
}

// SetInternal sets whether the handle is an internal child.
func (h *Handle) SetInternal(internal bool) {
	bitflag.SetState(&h.flags, internal, Internal)
}

// CanFocus returns whether the handle can receive the keyboard focus:
// its class is interactive and it is not inactive.
func (h *Handle) CanFocus() bool {
	return h.class.Interactive && h.state == Mapped && h.Attribute("ACTIVE") != "NO"
}

// CachedName implements [names.Namer].
func (h *Handle) CachedName() string {
	return h.name
}

// SetCachedName implements [names.Namer].
func (h *Handle) SetCachedName(name string) {
	h.name = name
}

// IsAlive implements [names.Namer].
func (h *Handle) IsAlive() bool {
	return h != nil && h.state != Destroyed
}

// SetName binds name to the handle in the name registry of its
// context. A handle can have any number of names.
func (h *Handle) SetName(name string) {
	if h.state == Destroyed {
		return
	}
	h.ctx.names.Bind(name, h)
}

// Name returns a name bound to the handle, or "".
func (h *Handle) Name() string {
	return h.ctx.names.Name(h)
}

// SetCallback sets the function called for the named callback and
// returns the previous one. A nil fn removes the callback.
func (h *Handle) SetCallback(name string, fn any) any {
	if h.state == Destroyed {
		return nil
	}
	old := h.callbacks[name]
	if fn == nil {
		delete(h.callbacks, name)
		return old
	}
	if h.callbacks == nil {
		h.callbacks = map[string]any{}
	}
	h.callbacks[name] = fn
	return old
}

// Callback returns the function set for the named callback, or nil.
func (h *Handle) Callback(name string) any {
	return h.callbacks[name]
}

// Call calls the named callback if it is a [CallbackFunc] and returns its
// result. It returns [ReturnDefault] when there is no such callback.
func (h *Handle) Call(name string) int {
	fn, ok := h.callbacks[name].(CallbackFunc)
	if !ok {
		if f, isFunc := h.callbacks[name].(func(*Handle) int); isFunc {
			fn = f
		} else {
			if h.callbacks[name] != nil {
				slog.Debug("core.Handle.Call: callback has another signature", "handle", h, "callback", name)
			}
			return ReturnDefault
		}
	}
	return fn(h)
}
