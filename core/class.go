// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"fmt"
	"strings"

	"github.com/gen2brain/iup-go-sub012/callback"
)

// InternalPrefix is the prefix of attribute names reserved for the
// bookkeeping values the toolkit itself stores on handles. Classes
// cannot register attributes with this prefix, and sets and gets of
// such names bypass attribute resolution.
const InternalPrefix = "_IUP"

// Methods is the method table of a class. Every method is optional:
// a nil method is absent behavior. A class created with
// [Registry.NewClass] starts with a copy of its parent's methods and
// may replace any of them, including setting one to nil.
type Methods struct {

	// New returns a fresh descriptor of the same shape as the class
	// that owns this method. It is what [Registry.NewClass] calls to
	// build the parent of a derived class.
	New func(r *Registry) *Class

	// Release frees class-level resources. It is called once for
	// each level of the class chain when the class is released.
	Release func(c *Class)

	// Create initializes a new handle from its creation parameters,
	// which have already been checked against the class format. Only
	// the Create of the most specific class runs.
	Create func(h *Handle, params []any) error

	// Map creates the native element of the handle. The native value
	// created by the driver is already set.
	Map func(h *Handle) error

	UnMap   func(h *Handle)
	Destroy func(h *Handle)

	// ChildAdded is called on a parent after child was added to it.
	ChildAdded func(h, child *Handle)

	// ChildRemoved is called on a parent after child was removed from
	// it; pos is the position the child had.
	ChildRemoved func(h, child *Handle, pos int)

	// InnerNativeContainer returns the native container into which
	// the native element of child is placed, when it is not the
	// native element of h itself.
	InnerNativeContainer func(h, child *Handle) any

	LayoutUpdate           func(h *Handle)
	ComputeNaturalSize     func(h *Handle) (w, hh int)
	SetChildrenCurrentSize func(h *Handle, shrink bool)
	SetChildrenPosition    func(h *Handle, x, y int)

	// DlgPopup shows a dialog at the given position.
	DlgPopup func(h *Handle, x, y int) error
}

// Class is a runtime descriptor of a kind of element. Classes form
// single-inheritance chains through Parent, composed at startup from
// class names, and every class of one chain shares a single attribute
// descriptor table.
type Class struct {

	// Name is the unique name of the class.
	Name string

	// Constructor is an optional alias name for the class.
	Constructor string

	// Format is the creation parameter format, as parsed by [ParseFormat].
	Format string

	NativeKind NativeKind

	// Arity governs how many children instances can have.
	Arity ChildArity

	// Interactive is whether instances can receive the keyboard focus.
	Interactive bool

	// AttribID is the number of trailing numeric IDs attribute names
	// of this class can carry: 0, 1 or 2.
	AttribID int

	// Parent is the parent class, or nil for a root class.
	Parent *Class

	Methods Methods

	params   []Param
	attrs    *attrTable
	internal bool
}

// Params returns the parsed creation parameters of the class.
// They are available once the class is registered.
func (c *Class) Params() []Param {
	return c.params
}

// IsInternal returns whether the class was registered by the toolkit
// itself with [Registry.RegisterInternal].
func (c *Class) IsInternal() bool {
	return c.internal
}

func (c *Class) String() string {
	if c == nil {
		return "<nil class>"
	}
	return c.Name
}

// Match returns whether name is the name of the class or of one of
// its ancestors.
func (c *Class) Match(name string) bool {
	for cl := c; cl != nil; cl = cl.Parent {
		if cl.Name == name {
			return true
		}
	}
	return false
}

// Chain returns the class names from c up to the root class.
func (c *Class) Chain() []string {
	var nms []string
	for cl := c; cl != nil; cl = cl.Parent {
		nms = append(nms, cl.Name)
	}
	return nms
}

func (c *Class) table() *attrTable {
	if c.attrs == nil {
		c.attrs = &attrTable{}
	}
	return c.attrs
}

func (c *Class) register(a *Attribute) error {
	if strings.HasPrefix(a.Name, InternalPrefix) {
		return fmt.Errorf("%w: %q in class %q", ErrReservedName, a.Name, c.Name)
	}
	if a.Name == "" {
		return fmt.Errorf("core.Class.RegisterAttribute: empty attribute name in class %q", c.Name)
	}
	c.table().set(a)
	return nil
}

// RegisterAttribute registers the descriptor of a plain attribute in
// the table shared by the whole class chain, replacing any descriptor
// of the same name, whichever class of the chain registered it.
// def and sysdef are the default and system default values; "" means
// none, and def may be [SameAsSystem].
func (c *Class) RegisterAttribute(name string, get GetFunc, set SetFunc, def, sysdef string, flags ...AttrFlag) error {
	return c.register(&Attribute{Name: name, Get: get, Set: set, Default: def, SystemDefault: sysdef, Flags: Flags(flags...)})
}

// RegisterAttributeID registers a one-ID attribute family, such as
// TITLE for TITLE1, TITLE2 and so on.
func (c *Class) RegisterAttributeID(name string, get GetIDFunc, set SetIDFunc, flags ...AttrFlag) error {
	return c.register(&Attribute{Name: name, GetID: get, SetID: set, Flags: Flags(flags...).With(HasID)})
}

// RegisterAttributeID2 registers a two-ID attribute family, such as
// BGCOLOR for BGCOLOR1:2.
func (c *Class) RegisterAttributeID2(name string, get GetID2Func, set SetID2Func, flags ...AttrFlag) error {
	return c.register(&Attribute{Name: name, GetID2: get, SetID2: set, Flags: Flags(flags...).With(HasID2)})
}

// RegisterCallback registers the name and signature code of a
// callback, as parsed by [callback.Parse].
func (c *Class) RegisterCallback(name, sig string) error {
	s, err := callback.Parse(sig)
	if err != nil {
		return fmt.Errorf("core.Class.RegisterCallback %q: %w", name, err)
	}
	return c.register(&Attribute{Name: name, Flags: Flags(Callback, NoInherit, NoString), Signature: s})
}

// AttributeInfo returns the descriptor registered for name, or nil.
func (c *Class) AttributeInfo(name string) *Attribute {
	return c.attrs.get(name)
}

// SetAttributeFunc replaces the get and set functions of a registered
// plain attribute. It does nothing if name is not registered.
func (c *Class) SetAttributeFunc(name string, get GetFunc, set SetFunc) {
	if a := c.AttributeInfo(name); a != nil {
		a.Get, a.Set = get, set
	}
}

// SetAttributeDefault replaces the default and system default values of
// a registered attribute.
func (c *Class) SetAttributeDefault(name, def, sysdef string) {
	if a := c.AttributeInfo(name); a != nil {
		a.Default, a.SystemDefault = def, sysdef
	}
}

// SetAttributeFlags replaces the flags of a registered attribute.
// The ID flags the attribute was registered with are kept.
func (c *Class) SetAttributeFlags(name string, flags ...AttrFlag) {
	if a := c.AttributeInfo(name); a != nil {
		ids := a.Flags & Flags(HasID, HasID2)
		a.Flags = Flags(flags...) | ids
	}
}

// Attributes returns the names of the registered attributes that are
// not callbacks, in registration order.
func (c *Class) Attributes() []string {
	return c.names(false)
}

// Callbacks returns the names of the registered callbacks, in
// registration order.
func (c *Class) Callbacks() []string {
	return c.names(true)
}

func (c *Class) names(callbacks bool) []string {
	if c.attrs == nil || c.attrs.released {
		return nil
	}
	var nms []string
	for name, a := range c.attrs.descs.All() {
		if a.Flags.Has(Callback) == callbacks {
			nms = append(nms, name)
		}
	}
	return nms
}

// CallbackSignature returns the signature of a registered callback.
func (c *Class) CallbackSignature(name string) (callback.Signature, bool) {
	a := c.AttributeInfo(name)
	if a == nil || !a.Flags.Has(Callback) {
		return callback.Signature{}, false
	}
	return a.Signature, true
}

// Release releases the class: the Release method of each level of the
// class chain is called, and then the shared attribute table is freed.
// Releasing a class twice does nothing.
func (c *Class) Release() {
	if c.attrs == nil {
		return
	}
	for cl := c; cl != nil; cl = cl.Parent {
		if cl.Methods.Release != nil {
			cl.Methods.Release(cl)
		}
	}
	t := c.attrs
	t.release()
	for cl := c; cl != nil; cl = cl.Parent {
		if cl.attrs == t {
			cl.attrs = nil
		}
	}
}
