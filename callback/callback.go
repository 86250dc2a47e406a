// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package callback describes the type signatures of the callbacks
// a class registers. A signature is written as a compact code string
// with one character per parameter after the implicit handle, and an
// optional "=<code>" suffix that overrides the default int return kind.
// For example "ff=s" is a callback receiving two float32 values and
// returning a string. Signatures are descriptive metadata for
// introspection tooling; they are not enforced when a callback runs.
package callback

import (
	"fmt"
	"strings"
)

// Kind is the kind of a callback parameter or return value.
type Kind byte

const (
	Int     Kind = 'i'
	Byte    Kind = 'c'
	Float   Kind = 'f'
	Double  Kind = 'd'
	String  Kind = 's'
	Pointer Kind = 'V'
	Handle  Kind = 'n'
	Canvas  Kind = 'C'
)

// goTypes are the Go types used to describe each kind.
var goTypes = map[Kind]string{
	Int:     "int",
	Byte:    "byte",
	Float:   "float32",
	Double:  "float64",
	String:  "string",
	Pointer: "any",
	Handle:  "*core.Handle",
	Canvas:  "any",
}

// IsValid returns whether k is a known kind code.
func (k Kind) IsValid() bool {
	_, ok := goTypes[k]
	return ok
}

// GoType returns the Go type name describing values of this kind.
func (k Kind) GoType() string {
	if t, ok := goTypes[k]; ok {
		return t
	}
	return "invalid"
}

func (k Kind) String() string {
	return string(k)
}

// Signature is a parsed callback signature.
type Signature struct {

	// Params are the parameter kinds, not including the handle
	// that every callback receives first.
	Params []Kind

	// Return is the kind of the return value.
	Return Kind
}

// Parse parses a signature code string. The empty string is the
// default callback taking only the handle and returning an int.
func Parse(code string) (Signature, error) {
	sig := Signature{Return: Int}
	params := code
	if i := strings.IndexByte(code, '='); i >= 0 {
		params = code[:i]
		ret := code[i+1:]
		if len(ret) != 1 || !Kind(ret[0]).IsValid() {
			return Signature{}, fmt.Errorf("callback.Parse: invalid return code %q in %q", ret, code)
		}
		sig.Return = Kind(ret[0])
	}
	for i := 0; i < len(params); i++ {
		k := Kind(params[i])
		if !k.IsValid() {
			return Signature{}, fmt.Errorf("callback.Parse: invalid parameter code %q in %q", params[i], code)
		}
		sig.Params = append(sig.Params, k)
	}
	return sig, nil
}

// MustParse is like [Parse] but panics on error. It is meant for
// class registration code with constant signatures.
func MustParse(code string) Signature {
	sig, err := Parse(code)
	if err != nil {
		panic(err)
	}
	return sig
}

// Code returns the compact code string of the signature;
// Parse(sig.Code()) yields an equal signature.
func (sig Signature) Code() string {
	var sb strings.Builder
	for _, k := range sig.Params {
		sb.WriteByte(byte(k))
	}
	if sig.Return != Int && sig.Return != 0 {
		sb.WriteByte('=')
		sb.WriteByte(byte(sig.Return))
	}
	return sb.String()
}

// String returns the signature as a Go function type, for example
// "func(*core.Handle, float32, float32) string".
func (sig Signature) String() string {
	var sb strings.Builder
	sb.WriteString("func(*core.Handle")
	for _, k := range sig.Params {
		sb.WriteString(", ")
		sb.WriteString(k.GoType())
	}
	sb.WriteString(") ")
	ret := sig.Return
	if ret == 0 {
		ret = Int
	}
	sb.WriteString(ret.GoType())
	return sb.String()
}

// Equal returns whether two signatures describe the same type.
func (sig Signature) Equal(o Signature) bool {
	return sig.Code() == o.Code()
}
