// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"strconv"

	"github.com/gen2brain/iup-go-sub012/bitflag"
)

// NativeKind describes what native entity, if any, backs the
// instances of a class.
type NativeKind int32

const (
	// NativeNone is a purely structural class without a native
	// entity, such as a layout box.
	NativeNone NativeKind = iota
	NativeControl
	NativeCanvas
	NativeDialog
	NativeImage
	NativeMenu
	NativeOther
)

var nativeKindNames = [...]string{"none", "control", "canvas", "dialog", "image", "menu", "other"}

func (k NativeKind) String() string {
	if k < 0 || int(k) >= len(nativeKindNames) {
		return "NativeKind(" + strconv.Itoa(int(k)) + ")"
	}
	return nativeKindNames[k]
}

// IsTopLevel returns whether instances of this kind can be mapped
// without a mapped parent.
func (k NativeKind) IsTopLevel() bool {
	return k == NativeDialog || k == NativeMenu || k == NativeImage
}

type arityKind uint8

const (
	arityNone arityKind = iota
	arityMany
	arityExactly
)

// ChildArity governs whether and how many children may be attached to
// the instances of a class. The zero value is [ChildNone].
type ChildArity struct {
	kind arityKind
	n    int
}

var (
	// ChildNone rejects every child.
	ChildNone = ChildArity{}

	// ChildMany accepts any number of children.
	ChildMany = ChildArity{kind: arityMany}
)

// ChildExactly accepts at most n children, internal children included.
func ChildExactly(n int) ChildArity {
	if n <= 0 {
		return ChildNone
	}
	return ChildArity{kind: arityExactly, n: n}
}

// Max returns the maximum number of children, or -1 for no limit.
func (a ChildArity) Max() int {
	switch a.kind {
	case arityMany:
		return -1
	case arityExactly:
		return a.n
	}
	return 0
}

// Accepts returns whether a parent with count children can take one more.
func (a ChildArity) Accepts(count int) bool {
	m := a.Max()
	return m < 0 || count < m
}

func (a ChildArity) String() string {
	switch a.kind {
	case arityMany:
		return "many"
	case arityExactly:
		return "exactly " + strconv.Itoa(a.n)
	}
	return "none"
}

// State is the lifecycle state of a [Handle].
type State int32

const (
	// Constructed is the state after Create and before the first Map.
	Constructed State = iota
	Mapped
	Unmapped
	Destroyed
)

var stateNames = [...]string{"constructed", "mapped", "unmapped", "destroyed"}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "State(" + strconv.Itoa(int(s)) + ")"
	}
	return stateNames[s]
}

// HandleFlags are the ordinal bit positions of handle flags.
type HandleFlags int32

const (
	// Internal marks a child created implicitly by its parent's
	// Create method. Internal children are pinned first among their
	// siblings and skipped by generic structural operations.
	Internal HandleFlags = iota
)

// AttrFlag is an ordinal attribute descriptor flag.
type AttrFlag int32

const (
	// NoInherit disables inheritance of the attribute from ancestors.
	NoInherit AttrFlag = iota

	// NoDefaultValue suppresses the descriptor default on get.
	NoDefaultValue

	// NoString marks values that are not strings; they are never
	// stored in the instance table.
	NoString

	// NotMapped allows the get and set functions to run before the
	// handle is mapped.
	NotMapped

	// HasID marks a one-ID attribute family, such as TITLE3.
	HasID

	// HasID2 marks a two-ID attribute family, such as BGCOLOR2:5.
	HasID2

	// ReadOnly attributes never call a set function.
	ReadOnly

	// WriteOnly attributes never call a get function.
	WriteOnly

	// Callback marks a callback descriptor.
	Callback

	// NoSave marks attributes that should not be saved by tooling.
	NoSave

	// NotSupported marks attributes the current driver does not
	// support; get and set are ignored.
	NotSupported

	// IhandleName marks attributes whose value is the name of a handle.
	IhandleName

	// Ihandle marks attributes whose value is a handle.
	Ihandle
)

var attrFlagNames = []string{
	"NO_INHERIT", "NO_DEFAULTVALUE", "NO_STRING", "NOT_MAPPED", "HAS_ID", "HAS_ID2",
	"READONLY", "WRITEONLY", "CALLBACK", "NO_SAVE", "NOT_SUPPORTED", "IHANDLENAME", "IHANDLE",
}

func (f AttrFlag) String() string {
	if f < 0 || int(f) >= len(attrFlagNames) {
		return "AttrFlag(" + strconv.Itoa(int(f)) + ")"
	}
	return attrFlagNames[f]
}

// AttrFlags is a set of [AttrFlag] values.
type AttrFlags int64

// Flags returns the set holding the given flags.
func Flags(flags ...AttrFlag) AttrFlags {
	return AttrFlags(bitflag.Mask(flags...))
}

// Has returns whether f is in the set.
func (fs AttrFlags) Has(f AttrFlag) bool {
	return bitflag.Has(int64(fs), f)
}

// HasAny returns whether any of the flags is in the set.
func (fs AttrFlags) HasAny(flags ...AttrFlag) bool {
	return bitflag.HasAny(int64(fs), flags...)
}

// With returns the set with the given flags added.
func (fs AttrFlags) With(flags ...AttrFlag) AttrFlags {
	bits := int64(fs)
	bitflag.Set(&bits, flags...)
	return AttrFlags(bits)
}

// Names returns the names of the flags in the set, in ordinal order.
func (fs AttrFlags) Names() []string {
	var nms []string
	for i, nm := range attrFlagNames {
		if fs.Has(AttrFlag(i)) {
			nms = append(nms, nm)
		}
	}
	return nms
}

func (fs AttrFlags) String() string {
	return bitflag.String(int64(fs), attrFlagNames)
}
