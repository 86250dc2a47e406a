// Copyright (c) 2020, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

const (
	// Continue = true can be returned from tree iteration functions to continue
	// processing down the tree, as compared to Break = false which stops this branch.
	Continue = true

	// Break = false can be returned from tree iteration functions to stop processing
	// this branch of the tree.
	Break = false
)

// WalkUp calls the given function on the handle and all of its
// parents, sequentially in the current goroutine (generally
// necessary for going up, which is typically quite fast anyway).
// It stops walking if the function returns [Break] and keeps walking
// if it returns [Continue]. It returns whether walking was finished
// (false if it was aborted with [Break]).
func (h *Handle) WalkUp(fun func(h *Handle) bool) bool {
	for cur := h; cur != nil; cur = cur.parent {
		if !fun(cur) {
			return false
		}
	}
	return true
}

// WalkUpParent is like [Handle.WalkUp] but starts at the parent of h.
func (h *Handle) WalkUpParent(fun func(h *Handle) bool) bool {
	if h.parent == nil {
		return true
	}
	return h.parent.WalkUp(fun)
}

// WalkDown calls the given function on the handle and all of its
// children in a depth-first manner over all of the children,
// sequentially in the current goroutine. It stops walking the current
// branch of the tree if the function returns [Break] and keeps walking
// if it returns [Continue]. The function may not modify the tree
// structure.
func (h *Handle) WalkDown(fun func(h *Handle) bool) {
	if !fun(h) {
		return
	}
	for c := h.firstChild; c != nil; c = c.next {
		c.WalkDown(fun)
	}
}

// WalkDownPost iterates in a depth-first manner over the children,
// calling doChildTest on each handle to test if processing should
// proceed (if it returns [Break] then that branch of the tree is not
// further processed), and then calls the given function after all of
// a handle's children have been iterated over ("post-order" traversal).
func (h *Handle) WalkDownPost(doChildTest func(h *Handle) bool, fun func(h *Handle) bool) {
	if doChildTest != nil && !doChildTest(h) {
		return
	}
	for c := h.firstChild; c != nil; c = c.next {
		c.WalkDownPost(doChildTest, fun)
	}
	fun(h)
}
