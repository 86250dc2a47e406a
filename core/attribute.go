// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"github.com/gen2brain/iup-go-sub012/base/ordmap"
	"github.com/gen2brain/iup-go-sub012/callback"
)

// GetFunc returns the value of an attribute of h. A none value lets
// the resolver fall back to the stored, default and inherited values.
type GetFunc func(h *Handle) Value

// SetFunc applies an attribute value to h. A none value asks for the
// default behavior to be restored. The result decides whether the
// string is also stored in the instance table.
type SetFunc func(h *Handle, v Value) bool

// GetIDFunc is the [GetFunc] of a one-ID attribute family.
type GetIDFunc func(h *Handle, id int) Value

// SetIDFunc is the [SetFunc] of a one-ID attribute family.
type SetIDFunc func(h *Handle, id int, v Value) bool

// GetID2Func is the [GetFunc] of a two-ID attribute family.
type GetID2Func func(h *Handle, lin, col int) Value

// SetID2Func is the [SetFunc] of a two-ID attribute family.
type SetID2Func func(h *Handle, lin, col int, v Value) bool

// SameAsSystem is the default value meaning "the same as the system
// default" of the descriptor.
const SameAsSystem = "\x00SAMEASSYSTEM"

// Attribute is an attribute descriptor. There is exactly one
// descriptor per name in a class hierarchy.
type Attribute struct {
	Name string

	Get    GetFunc
	Set    SetFunc
	GetID  GetIDFunc
	SetID  SetIDFunc
	GetID2 GetID2Func
	SetID2 SetID2Func

	// Default is the default value; "" means none, and
	// [SameAsSystem] resolves to SystemDefault.
	Default string

	// SystemDefault is the default of the underlying driver.
	SystemDefault string

	Flags AttrFlags

	// Signature is the callback signature of Callback descriptors.
	Signature callback.Signature
}

// DefaultValue returns the effective default of the descriptor.
func (a *Attribute) DefaultValue() Value {
	if a.Flags.Has(NoDefaultValue) {
		return Value{}
	}
	def := a.Default
	if def == SameAsSystem {
		def = a.SystemDefault
	}
	if def == "" {
		return Value{}
	}
	return StringValue(def)
}

// Inheritable returns whether values of the attribute are inherited
// from ancestors in the tree.
func (a *Attribute) Inheritable() bool {
	return !a.Flags.HasAny(NoInherit, NoString, Callback)
}

// ids returns the number of IDs the family takes.
func (a *Attribute) ids() int {
	switch {
	case a.Flags.Has(HasID2):
		return 2
	case a.Flags.Has(HasID):
		return 1
	}
	return 0
}

// attrTable is the descriptor table shared by every class of one
// hierarchy. Registration order is kept.
type attrTable struct {
	descs    ordmap.Map[string, *Attribute]
	released bool
}

func (t *attrTable) get(name string) *Attribute {
	if t == nil || t.released {
		return nil
	}
	a, _ := t.descs.Get(name)
	return a
}

func (t *attrTable) set(a *Attribute) {
	t.descs.Set(a.Name, a)
}

// clone returns a private copy of the table, used when a parent class
// has no New method to produce a fresh table.
func (t *attrTable) clone() *attrTable {
	c := &attrTable{}
	if t == nil {
		return c
	}
	for name, a := range t.descs.All() {
		ac := *a
		c.descs.Set(name, &ac)
	}
	return c
}

func (t *attrTable) release() {
	if t == nil || t.released {
		return
	}
	t.descs.Reset()
	t.released = true
}
