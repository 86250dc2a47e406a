// Copyright 2023 The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package offscreen

import "github.com/gen2brain/iup-go-sub012/core"

// Window is a native element on the offscreen platform.
type Window struct {
	app    *App
	class  string
	handle *core.Handle
	parent *Window
	closed bool
}

// Class returns the class name of the handle the element was made for.
func (w *Window) Class() string {
	return w.class
}

// Handle returns the handle the element was made for.
func (w *Window) Handle() *core.Handle {
	return w.handle
}

// Parent returns the native parent element, or nil for a top-level one.
func (w *Window) Parent() *Window {
	w.app.mu.Lock()
	defer w.app.mu.Unlock()
	return w.parent
}

// IsClosed returns whether the element has been destroyed.
func (w *Window) IsClosed() bool {
	w.app.mu.Lock()
	defer w.app.mu.Unlock()
	return w.closed
}

func (w *Window) className() string {
	if w == nil {
		return ""
	}
	return w.class
}
