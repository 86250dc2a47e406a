// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"strconv"
	"strings"
)

const (
	// IDValue is the base name that pure numeric attribute names
	// address: "3" is the same attribute as "IDVALUE3".
	IDValue = "IDVALUE"

	// InvalidID is the result of parsing a malformed ID. Calls that
	// resolve to an invalid ID do nothing.
	InvalidID = -10

	// noID is the result of parsing a name without an ID suffix.
	noID = -1
)

// IDName returns the name of attribute base with the given ID,
// for example IDName("TITLE", 3) is "TITLE3".
func IDName(base string, id int) string {
	return base + strconv.Itoa(id)
}

// ID2Name returns the name of two-ID attribute base with the given
// line and column, for example ID2Name("BGCOLOR", 2, 5) is "BGCOLOR2:5".
func ID2Name(base string, lin, col int) string {
	return base + strconv.Itoa(lin) + ":" + strconv.Itoa(col)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// trailingDigits splits s into its prefix and trailing decimal digits.
func trailingDigits(s string) (prefix, digits string) {
	i := len(s)
	for i > 0 && s[i-1] >= '0' && s[i-1] <= '9' {
		i--
	}
	return s[:i], s[i:]
}

func atoiID(s string) int {
	if !isDigits(s) {
		return InvalidID
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return InvalidID
	}
	return n
}

// SplitID splits a one-ID attribute name into its base and ID,
// scanning digits from the end. A pure numeric name has the base
// [IDValue]. A name without trailing digits returns the name and -1.
func SplitID(name string) (base string, id int) {
	if isDigits(name) {
		return IDValue, atoiID(name)
	}
	prefix, digits := trailingDigits(name)
	if digits == "" {
		return name, noID
	}
	return prefix, atoiID(digits)
}

// SplitID2 splits a two-ID attribute name of the form BASE<lin>:<col>
// into its base, line and column. ok is false if the name has no ':'
// delimiter. A missing or malformed ID is returned as [InvalidID]. A
// name that is only IDs has the base [IDValue].
func SplitID2(name string) (base string, lin, col int, ok bool) {
	i := strings.LastIndexByte(name, ':')
	if i < 0 {
		return name, noID, noID, false
	}
	prefix, digits := trailingDigits(name[:i])
	if prefix == "" {
		prefix = IDValue
	}
	lin = InvalidID
	if digits != "" {
		lin = atoiID(digits)
	}
	return prefix, lin, atoiID(name[i+1:]), true
}
