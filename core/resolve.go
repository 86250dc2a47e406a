// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"log/slog"
	"strings"

	"github.com/gen2brain/iup-go-sub012/base/ordmap"
)

// attrRef is an attribute name resolved against the class of a handle.
// IDs are parsed from the name exactly once, here, before dispatch.
type attrRef struct {

	// key is the canonical storage key, ID suffix included.
	key string

	// desc is the descriptor, or nil for a free-form attribute.
	desc *Attribute

	// ids is the number of IDs the key carries.
	ids      int
	lin, col int

	// invalid is set for malformed IDs; such calls do nothing.
	invalid bool
}

// internal returns whether the key is a reserved bookkeeping name.
func (r *attrRef) internal() bool {
	return strings.HasPrefix(r.key, InternalPrefix)
}

// inheritable returns whether the value of the attribute is looked
// up on ancestors. Free-form attributes without IDs are inheritable.
func (r *attrRef) inheritable() bool {
	if r.internal() || r.ids > 0 {
		return false
	}
	return r.desc == nil || r.desc.Inheritable()
}

// lookup resolves name for the class of h.
func (h *Handle) lookup(name string) attrRef {
	if strings.HasPrefix(name, InternalPrefix) {
		return attrRef{key: name}
	}
	t := h.class.attrs
	if d := t.get(name); d != nil && d.ids() == 0 {
		return attrRef{key: name, desc: d}
	}
	if h.class.AttribID >= 2 && strings.IndexByte(name, ':') >= 0 {
		if base, lin, col, ok := SplitID2(name); ok && h.idDescriptor(base, HasID2) != nil {
			return h.refID2(base, lin, col)
		}
	}
	if h.class.AttribID >= 1 {
		if base, id := SplitID(name); id != noID && h.idDescriptor(base, HasID) != nil {
			return h.refID(base, id)
		}
	}
	// names outside a registered ID family, and a family addressed
	// without an ID, are free-form and stored under the exact name
	return attrRef{key: name}
}

// idDescriptor returns the descriptor of the ID family base, or nil
// if base is not registered with the given ID flag.
func (h *Handle) idDescriptor(base string, flag AttrFlag) *Attribute {
	if d := h.class.attrs.get(base); d != nil && d.Flags.Has(flag) {
		return d
	}
	return nil
}

// refID returns the reference of a one-ID attribute.
func (h *Handle) refID(base string, id int) attrRef {
	if base == "" {
		base = IDValue
	}
	if id == InvalidID || id < 0 {
		return attrRef{key: base, invalid: true}
	}
	r := attrRef{key: IDName(base, id), ids: 1, lin: id}
	if h.class.AttribID >= 1 {
		r.desc = h.idDescriptor(base, HasID)
	}
	return r
}

// refID2 returns the reference of a two-ID attribute.
func (h *Handle) refID2(base string, lin, col int) attrRef {
	if base == "" {
		base = IDValue
	}
	if lin == InvalidID || col == InvalidID || lin < 0 || col < 0 {
		return attrRef{key: base, invalid: true}
	}
	r := attrRef{key: ID2Name(base, lin, col), ids: 2, lin: lin, col: col}
	if h.class.AttribID >= 2 {
		r.desc = h.idDescriptor(base, HasID2)
	}
	return r
}

// callSet calls the set function matching the reference, if any.
// has is false when there is no such function.
func (h *Handle) callSet(r *attrRef, v Value) (store, has bool) {
	d := r.desc
	if d == nil {
		return false, false
	}
	switch r.ids {
	case 0:
		if d.Set != nil {
			return d.Set(h, v), true
		}
	case 1:
		if d.SetID != nil {
			return d.SetID(h, r.lin, v), true
		}
	case 2:
		if d.SetID2 != nil {
			return d.SetID2(h, r.lin, r.col, v), true
		}
	}
	return false, false
}

// callGet calls the get function matching the reference, if any.
func (h *Handle) callGet(r *attrRef) Value {
	d := r.desc
	switch r.ids {
	case 0:
		if d.Get != nil {
			return d.Get(h)
		}
	case 1:
		if d.GetID != nil {
			return d.GetID(h, r.lin)
		}
	case 2:
		if d.GetID2 != nil {
			return d.GetID2(h, r.lin, r.col)
		}
	}
	return Value{}
}

// canRun returns whether the get and set functions of d can run on h
// in its current state.
func (h *Handle) canRun(d *Attribute) bool {
	return h.state == Mapped || d.Flags.Has(NotMapped)
}

func (h *Handle) store(key string, v Value) {
	if !v.Valid {
		if h.attrs != nil {
			h.attrs.Delete(key)
		}
		return
	}
	if h.attrs == nil {
		h.attrs = ordmap.New[string, string]()
	}
	h.attrs.Set(key, v.String)
}

func (h *Handle) stored(key string) (string, bool) {
	if h.attrs == nil {
		return "", false
	}
	return h.attrs.Get(key)
}

// set applies v to the referenced attribute. A none v resets it.
func (h *Handle) set(r attrRef, v Value) {
	if h.state == Destroyed {
		slog.Debug("core.Handle: set on destroyed handle", "attribute", r.key)
		return
	}
	if r.invalid {
		return
	}
	if r.internal() {
		h.store(r.key, v)
		return
	}
	d := r.desc
	if d != nil {
		if d.Flags.HasAny(ReadOnly, NotSupported) {
			return
		}
		if h.canRun(d) {
			store, has := h.callSet(&r, v)
			if has {
				store = store || (d.Inheritable() && r.ids == 0 && !d.Flags.Has(NotMapped))
				if store {
					h.store(r.key, v)
				} else {
					h.store(r.key, Value{})
				}
				h.propagate(&r, v)
				return
			}
		} else if r.hasSetter() {
			// deferred until the handle is mapped
			h.store(r.key, v)
			h.propagate(&r, v)
			return
		}
		if d.Flags.HasAny(NoString, Callback) {
			return
		}
	}
	h.store(r.key, v)
	h.propagate(&r, v)
}

func (r *attrRef) hasSetter() bool {
	d := r.desc
	switch r.ids {
	case 0:
		return d.Set != nil
	case 1:
		return d.SetID != nil
	case 2:
		return d.SetID2 != nil
	}
	return false
}

// propagate notifies the descendants of h that inherit the attribute
// of a new value.
func (h *Handle) propagate(r *attrRef, v Value) {
	if !r.inheritable() {
		return
	}
	for c := h.firstChild; c != nil; c = c.next {
		c.notifyInherited(r.key, v)
	}
}

// notifyInherited calls the set function of an attribute that h
// inherits, without storing the value. Handles that have their own
// value stop the propagation to their subtree.
func (h *Handle) notifyInherited(name string, v Value) {
	if h.state == Destroyed {
		return
	}
	if _, own := h.stored(name); own {
		return
	}
	r := h.lookup(name)
	if d := r.desc; d != nil && d.Inheritable() && !d.Flags.HasAny(ReadOnly, NotSupported) && h.canRun(d) {
		if !v.Valid {
			v = h.get(r)
		}
		h.callSet(&r, v)
	}
	for c := h.firstChild; c != nil; c = c.next {
		c.notifyInherited(name, v)
	}
}

// get returns the effective value of the referenced attribute.
func (h *Handle) get(r attrRef) Value {
	if h.state == Destroyed || r.invalid {
		return Value{}
	}
	if r.internal() {
		if s, ok := h.stored(r.key); ok {
			return StringValue(s)
		}
		return Value{}
	}
	d := r.desc
	if d != nil {
		if d.Flags.HasAny(WriteOnly, NotSupported) {
			return Value{}
		}
		if h.canRun(d) {
			if v := h.callGet(&r); v.Valid {
				return v
			}
		}
		if d.Flags.HasAny(NoString, Callback) {
			return Value{}
		}
	}
	if s, ok := h.stored(r.key); ok {
		return StringValue(s)
	}
	if r.inheritable() {
		if v := h.inherited(r.key); v.Valid {
			return v
		}
	}
	if d != nil {
		return d.DefaultValue()
	}
	return Value{}
}

// inherited returns the nearest value of the attribute stored on an
// ancestor of h.
func (h *Handle) inherited(name string) Value {
	for p := h.parent; p != nil; p = p.parent {
		if s, ok := p.stored(name); ok {
			return StringValue(s)
		}
	}
	return Value{}
}

// Set sets the named attribute to v; a none v resets the attribute
// to its default. Names can carry trailing IDs when the class of h
// has ID attributes. Rejected sets, such as of read-only attributes,
// do nothing.
func (h *Handle) Set(name string, v Value) {
	h.set(h.lookup(name), v)
}

// Get returns the effective value of the named attribute: the value
// of its get function, or else the value stored on h, the value stored
// on the nearest ancestor for inheritable attributes, and finally the
// default value of the attribute. It returns none if there is no value.
func (h *Handle) Get(name string) Value {
	return h.get(h.lookup(name))
}

// SetAttribute sets the named attribute to value.
func (h *Handle) SetAttribute(name, value string) {
	h.Set(name, StringValue(value))
}

// ResetAttribute resets the named attribute to its default.
func (h *Handle) ResetAttribute(name string) {
	h.Set(name, Value{})
}

// Attribute returns the effective value of the named attribute,
// or "" if it has none. Use [Handle.LookupAttribute] to tell an
// empty value from no value.
func (h *Handle) Attribute(name string) string {
	return h.Get(name).String
}

// LookupAttribute returns the effective value of the named attribute
// and whether it has one.
func (h *Handle) LookupAttribute(name string) (string, bool) {
	v := h.Get(name)
	return v.String, v.Valid
}

// SetAttributeID sets the attribute with the given ID of the family
// base; an empty base is [IDValue].
func (h *Handle) SetAttributeID(base string, id int, value string) {
	h.set(h.refID(base, id), StringValue(value))
}

// AttributeID returns the value of the attribute with the given ID of
// the family base.
func (h *Handle) AttributeID(base string, id int) string {
	return h.get(h.refID(base, id)).String
}

// SetAttributeID2 sets the attribute with the given line and column
// of the family base.
func (h *Handle) SetAttributeID2(base string, lin, col int, value string) {
	h.set(h.refID2(base, lin, col), StringValue(value))
}

// AttributeID2 returns the value of the attribute with the given line
// and column of the family base.
func (h *Handle) AttributeID2(base string, lin, col int) string {
	return h.get(h.refID2(base, lin, col)).String
}

// StoredAttributes returns the names of the attributes stored on h,
// in the order they were first set, without the reserved bookkeeping
// names.
func (h *Handle) StoredAttributes() []string {
	if h.attrs == nil {
		return nil
	}
	var nms []string
	for k := range h.attrs.All() {
		if !strings.HasPrefix(k, InternalPrefix) {
			nms = append(nms, k)
		}
	}
	return nms
}

// applyDefaults applies the class defaults and inherited values of
// the attributes that have no value on h, in registration order.
// Defaults equal to the system default are skipped, as the native
// element already has them.
func (h *Handle) applyDefaults() {
	if h.class.attrs == nil {
		return
	}
	for name, d := range h.class.attrs.descs.All() {
		if d.Set == nil || d.ids() > 0 || d.Flags.HasAny(Callback, ReadOnly, NotSupported, NotMapped) {
			continue
		}
		if _, own := h.stored(name); own {
			continue
		}
		if d.Inheritable() {
			if v := h.inherited(name); v.Valid {
				d.Set(h, v)
				continue
			}
		}
		if d.Default == "" || d.Default == SameAsSystem || d.Flags.Has(NoDefaultValue) || d.Default == d.SystemDefault {
			continue
		}
		d.Set(h, StringValue(d.Default))
	}
}

// applyDeferred calls the set functions of the values stored on h,
// in the order they were first set. The values stay stored, so a
// later mapping applies them again.
func (h *Handle) applyDeferred() {
	if h.attrs == nil {
		return
	}
	for key, val := range h.attrs.All() {
		r := h.lookup(key)
		d := r.desc
		if d == nil || r.invalid || d.Flags.HasAny(NotMapped, ReadOnly, NotSupported) {
			continue
		}
		h.callSet(&r, StringValue(val))
	}
}
