// Copyright (c) 2022, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package ordmap implements an ordered map that retains the order in which
keys were first added, while also providing fast key-based lookup.

It backs the attribute tables of the toolkit: instance attribute storage,
the shared attribute descriptor table of a class hierarchy and the global
attribute table. Insertion order matters there, because deferred attribute
values are re-applied in the order they were set and descriptors are
enumerated in registration order.

Replacing the value of an existing key keeps its position. Deleting
is linear in the number of entries, which is fine for the small
tables it is used for.
*/
package ordmap

import (
	"iter"
	"slices"
)

// KeyValue represents a key-value pair.
type KeyValue[K comparable, V any] struct {
	Key   K
	Value V
}

// Map is a generic ordered map. The zero value is an empty map
// ready to use.
type Map[K comparable, V any] struct {

	// Order is the list of entries, in the order their keys were added.
	Order []KeyValue[K, V]

	// index maps a key to its position in Order.
	index map[K]int
}

// New returns a new ordered map.
func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{index: make(map[K]int)}
}

// Set sets the value for the given key. An existing key keeps its
// position; a new key is added at the end.
func (om *Map[K, V]) Set(key K, val V) {
	if om.index == nil {
		om.index = make(map[K]int)
	}
	if idx, has := om.index[key]; has {
		om.Order[idx].Value = val
		return
	}
	om.index[key] = len(om.Order)
	om.Order = append(om.Order, KeyValue[K, V]{Key: key, Value: val})
}

// Get returns the value for the given key, with false for a missing key.
func (om *Map[K, V]) Get(key K) (V, bool) {
	if om != nil {
		if idx, ok := om.index[key]; ok {
			return om.Order[idx].Value, true
		}
	}
	var zv V
	return zv, false
}

// Has returns whether the given key is in the map.
func (om *Map[K, V]) Has(key K) bool {
	if om == nil {
		return false
	}
	_, ok := om.index[key]
	return ok
}

// Delete removes the given key, returning false if it was not present.
// Entries after it keep their relative order.
func (om *Map[K, V]) Delete(key K) bool {
	if om == nil {
		return false
	}
	idx, ok := om.index[key]
	if !ok {
		return false
	}
	delete(om.index, key)
	om.Order = slices.Delete(om.Order, idx, idx+1)
	for i := idx; i < len(om.Order); i++ {
		om.index[om.Order[i].Key] = i
	}
	return true
}

// Len returns the number of entries in the map.
func (om *Map[K, V]) Len() int {
	if om == nil {
		return 0
	}
	return len(om.Order)
}

// Reset removes all entries.
func (om *Map[K, V]) Reset() {
	om.Order = nil
	om.index = nil
}

// Keys returns the keys in order.
func (om *Map[K, V]) Keys() []K {
	kl := make([]K, om.Len())
	for i := range kl {
		kl[i] = om.Order[i].Key
	}
	return kl
}

// All returns an iterator over the entries in order. The iteration
// runs over a snapshot, so the map can be modified while iterating.
func (om *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if om == nil {
			return
		}
		for _, kv := range slices.Clone(om.Order) {
			if !yield(kv.Key, kv.Value) {
				return
			}
		}
	}
}
