// Copyright 2023 The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package offscreen provides an in-memory implementation of the
// [core.Driver] interface, for testing and for tools that build
// element trees without a display. Its native elements are [Window]
// values that record their native parent, and every driver call is
// recorded as an [Event].
package offscreen

import (
	"fmt"
	"image"
	"log/slog"
	"slices"
	"sync"

	"github.com/gen2brain/iup-go-sub012/core"
)

// App is the [core.Driver] implementation on the offscreen platform.
type App struct {

	// mu protects the recorded state, so that it can be inspected
	// from another goroutine than the one driving the context.
	mu sync.Mutex

	windows  []*Window
	events   []Event
	pointer  image.Point
	language string

	// fail maps class names to the error returned when creating
	// their native elements.
	fail map[string]error
}

var _ core.Driver = &App{}

// New returns a new offscreen driver.
func New() *App {
	return &App{}
}

// EventKind is the kind of a recorded driver call.
type EventKind int32

const (
	Create EventKind = iota
	Destroy
	Reparent
	Warp
	Language
)

var eventKindNames = [...]string{"create", "destroy", "reparent", "warp", "language"}

func (k EventKind) String() string {
	if k < 0 || int(k) >= len(eventKindNames) {
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
	return eventKindNames[k]
}

// Event is a recorded driver call.
type Event struct {
	Kind EventKind

	// Class is the class name of the handle, for element events.
	Class string

	// Detail is the new language, the pointer position or the class
	// of the native parent.
	Detail string
}

func (e Event) String() string {
	s := e.Kind.String()
	if e.Class != "" {
		s += " " + e.Class
	}
	if e.Detail != "" {
		s += " " + e.Detail
	}
	return s
}

func (app *App) record(e Event) {
	app.events = append(app.events, e)
}

func (app *App) Name() string {
	return "offscreen"
}

// FailCreate makes the creation of the native elements of the named
// class fail with err; a nil err clears the failure.
func (app *App) FailCreate(className string, err error) {
	app.mu.Lock()
	defer app.mu.Unlock()
	if err == nil {
		delete(app.fail, className)
		return
	}
	if app.fail == nil {
		app.fail = map[string]error{}
	}
	app.fail[className] = err
}

func (app *App) CreateNative(h *core.Handle, parent any) (any, error) {
	app.mu.Lock()
	defer app.mu.Unlock()
	cls := h.Class().Name
	if err := app.fail[cls]; err != nil {
		return nil, err
	}
	pw, _ := parent.(*Window)
	w := &Window{app: app, class: cls, handle: h, parent: pw}
	app.windows = append(app.windows, w)
	app.record(Event{Kind: Create, Class: cls, Detail: pw.className()})
	return w, nil
}

func (app *App) DestroyNative(h *core.Handle) {
	app.mu.Lock()
	defer app.mu.Unlock()
	w, ok := h.Native().(*Window)
	if !ok {
		slog.Warn("offscreen: destroying an unknown native element", "handle", h)
		return
	}
	w.closed = true
	app.windows = slices.DeleteFunc(app.windows, func(o *Window) bool { return o == w })
	app.record(Event{Kind: Destroy, Class: w.class})
}

func (app *App) Reparent(h *core.Handle, parent any) error {
	app.mu.Lock()
	defer app.mu.Unlock()
	w, ok := h.Native().(*Window)
	if !ok {
		return fmt.Errorf("offscreen: %v has no native element", h)
	}
	pw, _ := parent.(*Window)
	w.parent = pw
	app.record(Event{Kind: Reparent, Class: w.class, Detail: pw.className()})
	return nil
}

func (app *App) WarpPointer(x, y int) {
	app.mu.Lock()
	defer app.mu.Unlock()
	app.pointer = image.Pt(x, y)
	app.record(Event{Kind: Warp, Detail: app.pointer.String()})
}

func (app *App) PointerPosition() (x, y int) {
	app.mu.Lock()
	defer app.mu.Unlock()
	return app.pointer.X, app.pointer.Y
}

func (app *App) LanguageChanged(lang string) {
	app.mu.Lock()
	defer app.mu.Unlock()
	app.language = lang
	app.record(Event{Kind: Language, Detail: lang})
}

// CurrentLanguage returns the language last notified.
func (app *App) CurrentLanguage() string {
	app.mu.Lock()
	defer app.mu.Unlock()
	return app.language
}

// Windows returns the live native elements in creation order.
func (app *App) Windows() []*Window {
	app.mu.Lock()
	defer app.mu.Unlock()
	return slices.Clone(app.windows)
}

// Events returns the recorded events.
func (app *App) Events() []Event {
	app.mu.Lock()
	defer app.mu.Unlock()
	return slices.Clone(app.events)
}

// EventsOf returns the recorded events of the given kind.
func (app *App) EventsOf(kind EventKind) []Event {
	app.mu.Lock()
	defer app.mu.Unlock()
	var evs []Event
	for _, e := range app.events {
		if e.Kind == kind {
			evs = append(evs, e)
		}
	}
	return evs
}

// ClearEvents forgets the recorded events.
func (app *App) ClearEvents() {
	app.mu.Lock()
	defer app.mu.Unlock()
	app.events = nil
}
