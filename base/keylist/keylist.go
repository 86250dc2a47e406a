// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package keylist implements an ordered list of values with an index
// from keys to positions. It is the storage of the toolkit registries:
// registered classes and handle name bindings. Keys and values live in
// parallel slices, so scans over the values, such as the reverse
// lookup of a name by pointer, are direct.
package keylist

import (
	"slices"
)

// List is an ordered list of Values with a key index.
// The zero value is ready to use.
type List[K comparable, V any] struct {

	// Values are the values, in insertion order.
	Values []V

	// Keys are the keys, parallel to Values.
	Keys []K

	indexes map[K]int
}

// New returns a new empty [List].
func New[K comparable, V any]() *List[K, V] {
	return &List[K, V]{}
}

// Reset removes every item.
func (kl *List[K, V]) Reset() {
	kl.Values = nil
	kl.Keys = nil
	kl.indexes = nil
}

// Set binds key to val. A new key goes to the end of the list; an
// existing key keeps its position and the previous value is returned.
func (kl *List[K, V]) Set(key K, val V) (old V, had bool) {
	if kl.indexes == nil {
		kl.indexes = make(map[K]int)
	}
	if i, ok := kl.indexes[key]; ok {
		old, kl.Values[i] = kl.Values[i], val
		return old, true
	}
	kl.indexes[key] = len(kl.Values)
	kl.Values = append(kl.Values, val)
	kl.Keys = append(kl.Keys, key)
	return old, false
}

// At returns the value of key, or the zero value.
func (kl *List[K, V]) At(key K) V {
	v, _ := kl.AtTry(key)
	return v
}

// AtTry returns the value of key and whether it is present.
func (kl *List[K, V]) AtTry(key K) (V, bool) {
	if kl != nil {
		if i, ok := kl.indexes[key]; ok {
			return kl.Values[i], true
		}
	}
	var zv V
	return zv, false
}

// IndexByKey returns the position of key, or -1.
func (kl *List[K, V]) IndexByKey(key K) int {
	if kl == nil {
		return -1
	}
	if i, ok := kl.indexes[key]; ok {
		return i
	}
	return -1
}

// Len returns the number of items.
func (kl *List[K, V]) Len() int {
	if kl == nil {
		return 0
	}
	return len(kl.Values)
}

// DeleteByKey removes the item of key and reports whether it was
// present. The items after it are renumbered.
func (kl *List[K, V]) DeleteByKey(key K) bool {
	if kl == nil {
		return false
	}
	i, ok := kl.indexes[key]
	if !ok {
		return false
	}
	delete(kl.indexes, key)
	kl.Keys = slices.Delete(kl.Keys, i, i+1)
	kl.Values = slices.Delete(kl.Values, i, i+1)
	for j := i; j < len(kl.Keys); j++ {
		kl.indexes[kl.Keys[j]] = j
	}
	return true
}

// DeleteFunc removes every item for which del returns true and returns
// their keys in list order.
func (kl *List[K, V]) DeleteFunc(del func(key K, val V) bool) []K {
	var gone []K
	for i := 0; i < kl.Len(); i++ {
		if del(kl.Keys[i], kl.Values[i]) {
			gone = append(gone, kl.Keys[i])
		}
	}
	for _, k := range gone {
		kl.DeleteByKey(k)
	}
	return gone
}
