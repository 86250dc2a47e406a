// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import "github.com/gen2brain/iup-go-sub012/base/errors"

// Structural and lifecycle rejections. Operations that fail with one of
// these leave the tree unchanged; they are wrapped with context, so use
// [errors.Is] to test for them.
var (
	// ErrArity is returned when adding a child would exceed the
	// child arity of the parent class.
	ErrArity = errors.New("child arity exceeded")

	// ErrCycle is returned when an operation would make a handle
	// its own ancestor.
	ErrCycle = errors.New("parent/child cycle")

	// ErrHasParent is returned when adding a child that already
	// has a parent.
	ErrHasParent = errors.New("child already has a parent")

	// ErrNotChild is returned when a reference child is not a child
	// of the given parent, or when detaching a root.
	ErrNotChild = errors.New("not a child of the parent")

	// ErrSamePosition is returned by Reparent when the child is
	// already at the requested position.
	ErrSamePosition = errors.New("child already at the requested position")

	// ErrMappedMismatch is returned by Reparent when the child and
	// the new parent are not both mapped or both unmapped.
	ErrMappedMismatch = errors.New("mapped state of child and new parent differ")

	// ErrParentNotMapped is returned by Map when the parent is not
	// mapped, or when a non top-level handle has no parent.
	ErrParentNotMapped = errors.New("parent not mapped")

	// ErrDestroyed is returned for operations on destroyed handles.
	ErrDestroyed = errors.New("handle destroyed")

	// ErrUnknownClass is returned when a class name is not registered.
	ErrUnknownClass = errors.New("unknown class")

	// ErrReservedName is returned when registering an attribute whose
	// name has the [InternalPrefix].
	ErrReservedName = errors.New("reserved attribute name")

	// ErrParams is returned when creation parameters do not match
	// the format of the class.
	ErrParams = errors.New("invalid creation parameters")

	// ErrNoMethod is returned when an operation needs a class method
	// that the class does not have.
	ErrNoMethod = errors.New("class method not available")
)
