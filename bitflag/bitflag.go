// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bitflag provides simple bit flag setting, checking and clearing
// for integer flag types whose constants are ordinal bit positions
// (const iota lists). Keeping ordinal lists of bit positions makes
// the flag types easy to enumerate and print; the shifting is done here.
package bitflag

import "strings"

// Flag is the constraint satisfied by ordinal bit flag types.
type Flag interface {
	~int | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32
}

// Mask makes a mask for checking multiple different flags.
func Mask[F Flag](flags ...F) int64 {
	var mask int64
	for _, f := range flags {
		mask |= 1 << uint32(f)
	}
	return mask
}

// Set sets bit value(s) for ordinal bit position flags.
func Set[F Flag](bits *int64, flags ...F) {
	*bits |= Mask(flags...)
}

// Clear clears bit value(s) for ordinal bit position flags.
func Clear[F Flag](bits *int64, flags ...F) {
	*bits &^= Mask(flags...)
}

// SetState sets or clears bit value(s) depending on state (on / off)
// for ordinal bit position flags.
func SetState[F Flag](bits *int64, state bool, flags ...F) {
	if state {
		Set(bits, flags...)
	} else {
		Clear(bits, flags...)
	}
}

// Has checks if the given ordinal bit position flag is set.
func Has[F Flag](bits int64, flag F) bool {
	return bits&(1<<uint32(flag)) != 0
}

// HasAny checks if any of the given ordinal bit position flags are set.
func HasAny[F Flag](bits int64, flags ...F) bool {
	return bits&Mask(flags...) != 0
}

// HasAll checks if all of the given ordinal bit position flags are set.
func HasAll[F Flag](bits int64, flags ...F) bool {
	mask := Mask(flags...)
	return bits&mask == mask
}

// String returns the names of the set flags joined by "|",
// using names indexed by bit position. Unnamed bits are skipped.
func String(bits int64, names []string) string {
	var sb strings.Builder
	for i, nm := range names {
		if bits&(1<<uint32(i)) == 0 {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte('|')
		}
		sb.WriteString(nm)
	}
	return sb.String()
}
