// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package names maps arbitrary string names to handles or other opaque
// pointers, so that one element can be referenced from the attribute
// values of another. A value may have any number of names.
//
// Values that implement [Namer] keep a cached "last known name", which
// makes the common pointer-to-name lookup direct. Bindings are kept in
// the order they were made, so a scan for the names of a value always
// returns them in binding order.
package names

import (
	"log/slog"

	"github.com/gen2brain/iup-go-sub012/base/keylist"
)

// Namer is implemented by values that cache their last bound name,
// such as toolkit handles.
type Namer interface {

	// CachedName returns the cached name, or "" for none.
	CachedName() string

	// SetCachedName sets the cached name; "" clears it.
	SetCachedName(name string)

	// IsAlive returns whether the value is still live. Caches of
	// values that are no longer alive are not updated.
	IsAlive() bool
}

// Registry is a table of name bindings. The zero value is ready to use.
// A Registry is not safe for concurrent use.
type Registry struct {
	bindings keylist.List[string, any]
}

// New returns a new empty [Registry].
func New() *Registry {
	return &Registry{}
}

// Bind binds name to value, overwriting any existing binding for the
// name. If value is a live [Namer] its cached name becomes name.
// Binding to nil is the same as [Registry.Unbind].
func (r *Registry) Bind(name string, value any) {
	if name == "" {
		return
	}
	if value == nil {
		r.Unbind(name)
		return
	}
	old, had := r.bindings.Set(name, value)
	if had && old != value {
		r.refresh(old, name)
	}
	if nm, ok := value.(Namer); ok && nm.IsAlive() {
		nm.SetCachedName(name)
	}
}

// Unbind removes the binding for name. If that name was the cached name
// of a live [Namer], the cache is refreshed with another name bound to
// the same value, if any.
func (r *Registry) Unbind(name string) {
	old, ok := r.bindings.AtTry(name)
	if !ok {
		return
	}
	r.bindings.DeleteByKey(name)
	r.refresh(old, name)
}

// refresh updates the cached name of value after name stopped
// referring to it.
func (r *Registry) refresh(value any, name string) {
	nm, ok := value.(Namer)
	if !ok || !nm.IsAlive() || nm.CachedName() != name {
		return
	}
	nm.SetCachedName("")
	for i := len(r.bindings.Values) - 1; i >= 0; i-- {
		if r.bindings.Values[i] == value {
			nm.SetCachedName(r.bindings.Keys[i])
			return
		}
	}
}

// Lookup returns the value bound to name, or nil.
func (r *Registry) Lookup(name string) any {
	return r.bindings.At(name)
}

// Name returns a name bound to value, or "" if there is none.
// For a [Namer] the cached name is returned when it is still bound;
// otherwise the first binding found is returned. Which of several
// names is returned is not guaranteed to be stable.
func (r *Registry) Name(value any) string {
	if value == nil {
		return ""
	}
	if nm, ok := value.(Namer); ok {
		if c := nm.CachedName(); c != "" && r.bindings.At(c) == value {
			return c
		}
	}
	for i, v := range r.bindings.Values {
		if v == value {
			return r.bindings.Keys[i]
		}
	}
	return ""
}

// AllNames returns every name bound to value, in binding order.
func (r *Registry) AllNames(value any) []string {
	var all []string
	for i, v := range r.bindings.Values {
		if v == value {
			all = append(all, r.bindings.Keys[i])
		}
	}
	return all
}

// List copies up to len(buf) names into buf, in binding order, and
// returns the number copied. With a nil buf it returns the total
// number of names without copying.
func (r *Registry) List(buf []string) int {
	if buf == nil {
		return r.bindings.Len()
	}
	return copy(buf, r.bindings.Keys)
}

// Len returns the number of bindings.
func (r *Registry) Len() int {
	return r.bindings.Len()
}

// Forget removes the bindings of a value that is going away. When all
// is true every alias is removed; otherwise only the given cached name
// is removed, leaving other aliases bound to the stale value.
// It returns the names removed.
func (r *Registry) Forget(value any, cached string, all bool) []string {
	if !all {
		if cached == "" || r.bindings.At(cached) != value {
			return nil
		}
		r.bindings.DeleteByKey(cached)
		if rest := r.AllNames(value); len(rest) > 0 {
			slog.Debug("names.Forget: stale aliases remain", "names", rest)
		}
		return []string{cached}
	}
	return r.bindings.DeleteFunc(func(_ string, v any) bool { return v == value })
}

// Reset removes every binding.
func (r *Registry) Reset() {
	r.bindings.Reset()
}
