// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

// Value is an attribute value that may be absent, in the manner of
// [database/sql.NullString]. The zero Value is "none", which is
// distinct from a valid empty string. Setting a none Value resets an
// attribute to its default.
type Value struct {
	String string
	Valid  bool
}

// StringValue returns a valid Value holding s.
func StringValue(s string) Value {
	return Value{String: s, Valid: true}
}

// Or returns the string of v if it is valid and def otherwise.
func (v Value) Or(def string) string {
	if v.Valid {
		return v.String
	}
	return def
}
