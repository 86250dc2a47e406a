// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package callback

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefault(t *testing.T) {
	sig, err := Parse("")
	require.NoError(t, err)
	assert.Empty(t, sig.Params)
	assert.Equal(t, Int, sig.Return)
	assert.Equal(t, "", sig.Code())
	assert.Equal(t, "func(*core.Handle) int", sig.String())
}

func TestParseParamsAndReturn(t *testing.T) {
	sig, err := Parse("ff=s")
	require.NoError(t, err)
	assert.Equal(t, []Kind{Float, Float}, sig.Params)
	assert.Equal(t, String, sig.Return)
	assert.Equal(t, "ff=s", sig.Code())
	assert.Equal(t, "func(*core.Handle, float32, float32) string", sig.String())

	sig, err = Parse("iinV")
	require.NoError(t, err)
	assert.Equal(t, "func(*core.Handle, int, int, *core.Handle, any) int", sig.String())
	assert.True(t, sig.Equal(MustParse("iinV=i")))
}

func TestParseErrors(t *testing.T) {
	_, err := Parse("ix")
	assert.Error(t, err)
	_, err = Parse("i=")
	assert.Error(t, err)
	_, err = Parse("i=ss")
	assert.Error(t, err)
	assert.Panics(t, func() { MustParse("q") })
}
