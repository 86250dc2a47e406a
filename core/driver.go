// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

// Driver is the native layer of a [Context]: it creates and destroys
// the native elements of handles and serves the global attributes
// that act on the platform directly. All methods are called on the
// goroutine that owns the context.
type Driver interface {

	// Name returns the name of the driver, the value of the
	// read-only DRIVER global attribute.
	Name() string

	// CreateNative creates the native element of h inside the native
	// element parent, which is nil for top-level handles, and returns it.
	CreateNative(h *Handle, parent any) (any, error)

	// DestroyNative destroys the native element of h.
	DestroyNative(h *Handle)

	// Reparent moves the native element of h into the native element
	// parent.
	Reparent(h *Handle, parent any) error

	// WarpPointer moves the pointer to the given screen position.
	WarpPointer(x, y int)

	// PointerPosition returns the screen position of the pointer.
	PointerPosition() (x, y int)

	// LanguageChanged is called when the LANGUAGE global attribute
	// changes, with the name of the new language.
	LanguageChanged(lang string)
}

// headless is the driver of contexts opened without one. Its native
// elements are plain tokens and it keeps only the pointer position.
type headless struct {
	x, y int
}

type headlessNative struct {
	class string
}

func (d *headless) Name() string { return "headless" }

func (d *headless) CreateNative(h *Handle, parent any) (any, error) {
	return &headlessNative{class: h.class.Name}, nil
}

func (d *headless) DestroyNative(h *Handle) {}

func (d *headless) Reparent(h *Handle, parent any) error { return nil }

func (d *headless) WarpPointer(x, y int) { d.x, d.y = x, y }

func (d *headless) PointerPosition() (x, y int) { return d.x, d.y }

func (d *headless) LanguageChanged(lang string) {}
