// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gen2brain/iup-go-sub012/classes"
	"github.com/gen2brain/iup-go-sub012/config"
	. "github.com/gen2brain/iup-go-sub012/core"
	"github.com/gen2brain/iup-go-sub012/driver/offscreen"
)

// newContext opens a context with the offscreen driver and the
// built-in classes.
func newContext(t *testing.T) (*Context, *offscreen.App) {
	return newContextSettings(t, nil)
}

func newContextSettings(t *testing.T, s *config.Settings) (*Context, *offscreen.App) {
	t.Helper()
	drv := offscreen.New()
	ctx, err := Open(drv, s)
	require.NoError(t, err)
	require.NoError(t, classes.Register(ctx.Classes()))
	t.Cleanup(ctx.Close)
	return ctx, drv
}

// register registers a root class built by setup, with a New method
// that builds it again.
func register(t *testing.T, r *Registry, name string, setup func(c *Class)) *Class {
	t.Helper()
	var build func(r *Registry) *Class
	build = func(r *Registry) *Class {
		c, err := r.NewClass("")
		require.NoError(t, err)
		c.Name = name
		setup(c)
		c.Methods.New = build
		return c
	}
	c := build(r)
	require.NoError(t, r.Register(c))
	return c
}

// derive registers a class derived from parent.
func derive(t *testing.T, r *Registry, parent, name string, setup func(c *Class)) *Class {
	t.Helper()
	var build func(r *Registry) *Class
	build = func(r *Registry) *Class {
		c, err := r.NewClass(parent)
		require.NoError(t, err)
		c.Name = name
		if setup != nil {
			setup(c)
		}
		c.Methods.New = build
		return c
	}
	c := build(r)
	require.NoError(t, r.Register(c))
	return c
}

// recorder records the calls made by attribute functions and methods.
type recorder struct {
	calls []string
}

func (rc *recorder) add(s string) {
	rc.calls = append(rc.calls, s)
}

func (rc *recorder) reset() {
	rc.calls = nil
}

// setter returns a set function recording "name=value" that returns store.
func (rc *recorder) setter(name string, store bool) SetFunc {
	return func(h *Handle, v Value) bool {
		rc.add(name + "=" + v.Or("<none>"))
		return store
	}
}

// getter returns a get function recording name and returning none.
func (rc *recorder) getter(name string) GetFunc {
	return func(h *Handle) Value {
		rc.add("get " + name)
		return Value{}
	}
}
