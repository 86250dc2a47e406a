// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package keylist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestList(t *testing.T) {
	kl := New[string, int]()
	kl.Set("key0", 0)
	kl.Set("key1", 1)
	kl.Set("key2", 2)

	assert.Equal(t, 1, kl.At("key1"))
	assert.Equal(t, 2, kl.IndexByKey("key2"))
	assert.Equal(t, 3, kl.Len())

	old, had := kl.Set("key1", 10)
	assert.True(t, had)
	assert.Equal(t, 1, old)
	assert.Equal(t, []string{"key0", "key1", "key2"}, kl.Keys)

	_, had = kl.Set("key3", 3)
	assert.False(t, had)

	assert.True(t, kl.DeleteByKey("key0"))
	assert.Equal(t, 0, kl.IndexByKey("key1"))
	assert.Equal(t, 2, kl.IndexByKey("key3"))
	_, ok := kl.AtTry("key0")
	assert.False(t, ok)
}

func TestListDeleteFunc(t *testing.T) {
	var kl List[string, int]
	kl.Set("a", 1)
	kl.Set("b", 2)
	kl.Set("c", 1)
	gone := kl.DeleteFunc(func(k string, v int) bool { return v == 1 })
	assert.Equal(t, []string{"a", "c"}, gone)
	assert.Equal(t, []string{"b"}, kl.Keys)
	assert.Equal(t, 0, kl.IndexByKey("b"))
}
