// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package indent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	assert.Equal(t, "\t\t", String(Tab, 2, 4))
	assert.Equal(t, "    ", String(Space, 2, 2))
	assert.Equal(t, "", String(Space, 0, 2))
}

func TestLines(t *testing.T) {
	assert.Equal(t, "  a\n\n  b", Lines("a\n\nb", Space, 1, 2))
	assert.Equal(t, "\tx\n", Lines("x\n", Tab, 1, 0))
}
