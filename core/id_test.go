// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/gen2brain/iup-go-sub012/core"
)

func TestSplitID(t *testing.T) {
	tests := []struct {
		name string
		base string
		id   int
	}{
		{"WIDTH3", "WIDTH", 3},
		{"A007", "A", 7},
		{"3", IDValue, 3},
		{"TITLE", "TITLE", -1},
		{"", "", -1},
	}
	for _, tt := range tests {
		base, id := SplitID(tt.name)
		assert.Equal(t, tt.base, base, tt.name)
		assert.Equal(t, tt.id, id, tt.name)
	}
}

func TestSplitID2(t *testing.T) {
	tests := []struct {
		name     string
		base     string
		lin, col int
		ok       bool
	}{
		{"BGCOLOR2:5", "BGCOLOR", 2, 5, true},
		{"2:5", IDValue, 2, 5, true},
		{"X:5", "X", InvalidID, 5, true},
		{"A1:b", "A", 1, InvalidID, true},
		{"A1:", "A", 1, InvalidID, true},
		{"NONE", "NONE", -1, -1, false},
	}
	for _, tt := range tests {
		base, lin, col, ok := SplitID2(tt.name)
		assert.Equal(t, tt.ok, ok, tt.name)
		assert.Equal(t, tt.base, base, tt.name)
		assert.Equal(t, tt.lin, lin, tt.name)
		assert.Equal(t, tt.col, col, tt.name)
	}
	assert.Equal(t, "TITLE3", IDName("TITLE", 3))
	assert.Equal(t, "BGCOLOR2:5", ID2Name("BGCOLOR", 2, 5))
}

func TestParseFont(t *testing.T) {
	f, err := ParseFont("Times New Roman, Bold Italic 12")
	assert.NoError(t, err)
	assert.Equal(t, Font{Face: "Times New Roman", Style: "Bold Italic", Size: 12}, f)
	assert.Equal(t, "Times New Roman, Bold Italic 12", f.String())

	f, err = ParseFont(" Sans ,-16")
	assert.NoError(t, err)
	assert.Equal(t, Font{Face: "Sans", Size: -16}, f)
	assert.Equal(t, "Sans, -16", f.String())

	for _, bad := range []string{"Sans", ", 10", "Sans,", "Sans, Bold", "Sans, Bold x"} {
		_, err := ParseFont(bad)
		assert.Error(t, err, bad)
	}
}

func TestParseFormat(t *testing.T) {
	ps, err := ParseFormat("sAg")
	assert.NoError(t, err)
	assert.Equal(t, []Param{
		{Kind: ParamString},
		{Kind: ParamCallbackName, Optional: true},
		{Kind: ParamHandleArray},
	}, ps)

	_, err = ParseFormat("gs")
	assert.ErrorIs(t, err, ErrParams)
	_, err = ParseFormat("z")
	assert.ErrorIs(t, err, ErrParams)

	assert.Equal(t, []*Handle(nil), HandleArgs([]any{nil, "x"}))
}
