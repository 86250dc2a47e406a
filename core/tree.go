// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"fmt"
	"log/slog"

	"github.com/gen2brain/iup-go-sub012/base/errors"
)

// Parent returns the parent of h, or nil.
func (h *Handle) Parent() *Handle {
	return h.parent
}

// FirstChild returns the first child of h, or nil.
func (h *Handle) FirstChild() *Handle {
	return h.firstChild
}

// NextSibling returns the next sibling of h, or nil.
func (h *Handle) NextSibling() *Handle {
	return h.next
}

// PreviousSibling returns the previous sibling of h, or nil.
// It scans the children of the parent.
func (h *Handle) PreviousSibling() *Handle {
	if h.parent == nil {
		return nil
	}
	var prev *Handle
	for c := h.parent.firstChild; c != nil; c = c.next {
		if c == h {
			return prev
		}
		prev = c
	}
	return nil
}

// LastChild returns the last child of h, or nil.
func (h *Handle) LastChild() *Handle {
	c := h.firstChild
	for c != nil && c.next != nil {
		c = c.next
	}
	return c
}

// Child returns the child at position pos, or nil.
func (h *Handle) Child(pos int) *Handle {
	if pos < 0 {
		return nil
	}
	i := 0
	for c := h.firstChild; c != nil; c = c.next {
		if i == pos {
			return c
		}
		i++
	}
	return nil
}

// ChildCount returns the number of children of h, internal children
// included.
func (h *Handle) ChildCount() int {
	n := 0
	for c := h.firstChild; c != nil; c = c.next {
		n++
	}
	return n
}

// ChildPosition returns the position of child among the children of
// h, or -1 if it is not a child of h.
func (h *Handle) ChildPosition(child *Handle) int {
	i := 0
	for c := h.firstChild; c != nil; c = c.next {
		if c == child {
			return i
		}
		i++
	}
	return -1
}

// Children returns the children of h in order.
func (h *Handle) Children() []*Handle {
	var cs []*Handle
	for c := h.firstChild; c != nil; c = c.next {
		cs = append(cs, c)
	}
	return cs
}

// IsAncestorOf returns whether h is d or one of its ancestors.
func (h *Handle) IsAncestorOf(d *Handle) bool {
	for p := d; p != nil; p = p.parent {
		if p == h {
			return true
		}
	}
	return false
}

// Root returns the topmost ancestor of h, which is h itself if it has
// no parent.
func (h *Handle) Root() *Handle {
	r := h
	for r.parent != nil {
		r = r.parent
	}
	return r
}

// Dialog returns the nearest dialog ancestor of h, h included, or nil.
func (h *Handle) Dialog() *Handle {
	for p := h; p != nil; p = p.parent {
		if p.class.NativeKind == NativeDialog {
			return p
		}
	}
	return nil
}

// checkAdd checks that child can be added to h as a new child.
func (h *Handle) checkAdd(child *Handle) error {
	if h.state == Destroyed || child.state == Destroyed {
		return ErrDestroyed
	}
	if child.parent != nil {
		return fmt.Errorf("%w: %v is a child of %v", ErrHasParent, child, child.parent)
	}
	if child.IsAncestorOf(h) {
		return fmt.Errorf("%w: %v is %v or one of its ancestors", ErrCycle, child, h)
	}
	return h.checkArity()
}

func (h *Handle) checkArity() error {
	if !h.class.Arity.Accepts(h.ChildCount()) {
		return fmt.Errorf("%w: class %q takes %v children", ErrArity, h.class.Name, h.class.Arity)
	}
	return nil
}

// link inserts child before ref among the children of h; a nil ref
// appends.
func (h *Handle) link(ref, child *Handle) {
	child.parent = h
	if h.firstChild == nil || h.firstChild == ref {
		child.next = h.firstChild
		h.firstChild = child
		return
	}
	prev := h.firstChild
	for prev.next != nil && prev.next != ref {
		prev = prev.next
	}
	child.next = prev.next
	prev.next = child
}

// unlink removes h from the children of its parent and returns the
// position it had.
func (h *Handle) unlink() int {
	p := h.parent
	pos := 0
	if p.firstChild == h {
		p.firstChild = h.next
	} else {
		prev := p.firstChild
		pos = 1
		for prev.next != h {
			prev = prev.next
			pos++
		}
		prev.next = h.next
	}
	h.parent = nil
	h.next = nil
	return pos
}

func (h *Handle) childAdded(child *Handle) {
	if f := h.class.Methods.ChildAdded; f != nil {
		f(h, child)
	}
}

func (h *Handle) childRemoved(child *Handle, pos int) {
	if f := h.class.Methods.ChildRemoved; f != nil {
		f(h, child, pos)
	}
}

// Append adds child as the last child of h. It fails, leaving the tree
// unchanged, if child already has a parent, if it is h or one of its
// ancestors, or if the class of h takes no more children. Appending
// does not map child.
func (h *Handle) Append(child *Handle) error {
	if err := h.checkAdd(child); err != nil {
		slog.Debug("core.Handle.Append: rejected", "parent", h, "child", child, "err", err)
		return err
	}
	h.link(nil, child)
	h.childAdded(child)
	return nil
}

// Insert adds child to h before ref, or before the first child if ref
// is nil. Internal children are pinned first: an insertion before the
// first child of h when it is internal happens after the leading
// internal children instead. It fails like [Handle.Append], and also
// if ref is not a child of h.
func (h *Handle) Insert(ref, child *Handle) error {
	if ref != nil && ref.parent != h {
		return fmt.Errorf("%w: %v is not a child of %v", ErrNotChild, ref, h)
	}
	if err := h.checkAdd(child); err != nil {
		slog.Debug("core.Handle.Insert: rejected", "parent", h, "child", child, "err", err)
		return err
	}
	h.link(h.pinnedRef(ref), child)
	h.childAdded(child)
	return nil
}

// pinnedRef returns the child before which an insertion before ref
// takes place, skipping the leading internal children.
func (h *Handle) pinnedRef(ref *Handle) *Handle {
	if ref == nil {
		ref = h.firstChild
	}
	if h.firstChild == nil || !h.firstChild.IsInternal() {
		return ref
	}
	c := h.firstChild
	for c != nil && c.IsInternal() {
		if c == ref {
			ref = c.next
		}
		c = c.next
	}
	return ref
}

// Detach removes h from its parent, unmapping it first if it is
// mapped. The ChildRemoved method of the parent is called with the
// position h had. Detaching does not destroy h.
func (h *Handle) Detach() error {
	if h.parent == nil {
		return fmt.Errorf("%w: %v has no parent", ErrNotChild, h)
	}
	if h.state == Mapped {
		h.Unmap()
	}
	p := h.parent
	pos := h.unlink()
	p.childRemoved(h, pos)
	return nil
}

// Reparent moves h to newParent, before ref, or last if ref is nil.
// Like [Handle.Insert] it never places h before the leading internal
// children of newParent.
// It fails, leaving the tree unchanged, if newParent is h or one of
// its descendants, if ref is not a child of newParent, if h is already
// at the requested position, if exactly one of h and newParent is
// mapped, or if the class of newParent takes no more children.
// When both are mapped the driver moves the native elements of h.
func (h *Handle) Reparent(newParent, ref *Handle) error {
	if h.state == Destroyed || newParent.state == Destroyed {
		return ErrDestroyed
	}
	var err error
	switch {
	case h.IsAncestorOf(newParent):
		err = fmt.Errorf("%w: %v is an ancestor of %v", ErrCycle, h, newParent)
	case ref != nil && ref.parent != newParent:
		err = fmt.Errorf("%w: %v is not a child of %v", ErrNotChild, ref, newParent)
	case ref == h || (h.parent == newParent && h.next == ref):
		err = fmt.Errorf("%w: %v", ErrSamePosition, h)
	case h.IsMapped() != newParent.IsMapped():
		err = fmt.Errorf("%w: %v is %v, %v is %v", ErrMappedMismatch, h, h.state, newParent, newParent.state)
	case h.parent != newParent:
		err = newParent.checkArity()
	}
	if err != nil {
		slog.Debug("core.Handle.Reparent: rejected", "child", h, "parent", newParent, "err", err)
		return err
	}
	if old := h.parent; old != nil {
		pos := h.unlink()
		old.childRemoved(h, pos)
	}
	if ref != nil {
		ref = newParent.pinnedRef(ref)
	}
	newParent.link(ref, h)
	newParent.childAdded(h)
	if h.IsMapped() {
		return h.reparentNative()
	}
	return nil
}

// reparentNative asks the driver to move the native elements of h,
// or of its nearest native descendants when h has none.
func (h *Handle) reparentNative() error {
	var errs []error
	h.WalkDown(func(d *Handle) bool {
		if d.class.NativeKind == NativeNone {
			return Continue
		}
		if err := h.ctx.driver.Reparent(d, d.NativeParent()); err != nil {
			errs = append(errs, err)
		}
		return Break
	})
	return errors.Join(errs...)
}
