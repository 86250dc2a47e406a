// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"fmt"
	"unicode"
)

// ParamKind is the semantic kind of a creation parameter. The kinds
// are written as one lower-case character each in a class format
// string; an upper-case character marks an optional parameter.
type ParamKind byte

const (
	ParamString       ParamKind = 's'
	ParamInt          ParamKind = 'i'
	ParamHandle       ParamKind = 'h'
	ParamHandleArray  ParamKind = 'g'
	ParamCallbackName ParamKind = 'a'
	ParamBytes        ParamKind = 'b'
)

func (k ParamKind) String() string {
	switch k {
	case ParamString:
		return "string"
	case ParamInt:
		return "int"
	case ParamHandle:
		return "handle"
	case ParamHandleArray:
		return "handle-array"
	case ParamCallbackName:
		return "callback-name"
	case ParamBytes:
		return "bytes"
	}
	return fmt.Sprintf("ParamKind(%q)", byte(k))
}

// Param is one creation parameter of a class.
type Param struct {
	Kind     ParamKind
	Optional bool
}

// ParseFormat parses a class format string such as "sA" (a required
// string followed by an optional callback name). A handle array must
// be the last parameter, as it takes every remaining argument.
func ParseFormat(format string) ([]Param, error) {
	var ps []Param
	for i, r := range format {
		p := Param{Kind: ParamKind(unicode.ToLower(r)), Optional: unicode.IsUpper(r)}
		switch p.Kind {
		case ParamString, ParamInt, ParamHandle, ParamCallbackName, ParamBytes:
		case ParamHandleArray:
			if i != len(format)-1 {
				return nil, fmt.Errorf("%w: handle array must be last in format %q", ErrParams, format)
			}
		default:
			return nil, fmt.Errorf("%w: invalid code %q in format %q", ErrParams, r, format)
		}
		ps = append(ps, p)
	}
	return ps, nil
}

// checkParams validates creation arguments against the parameters.
// Missing trailing optional parameters are allowed; a handle array
// accepts any number of handles, given either as a []*Handle or as
// individual handles.
func checkParams(ps []Param, args []any) error {
	ai := 0
	for _, p := range ps {
		if p.Kind == ParamHandleArray {
			for ; ai < len(args); ai++ {
				switch a := args[ai].(type) {
				case *Handle:
					if a == nil {
						return fmt.Errorf("%w: nil handle in handle array", ErrParams)
					}
				case []*Handle:
				default:
					return fmt.Errorf("%w: argument %d is %T, not a handle", ErrParams, ai, args[ai])
				}
			}
			return nil
		}
		if ai >= len(args) {
			if p.Optional {
				continue
			}
			return fmt.Errorf("%w: missing %v argument %d", ErrParams, p.Kind, ai)
		}
		if !paramMatches(p, args[ai]) {
			return fmt.Errorf("%w: argument %d is %T, not %v", ErrParams, ai, args[ai], p.Kind)
		}
		ai++
	}
	if ai < len(args) {
		return fmt.Errorf("%w: %d arguments given, at most %d accepted", ErrParams, len(args), ai)
	}
	return nil
}

func paramMatches(p Param, arg any) bool {
	if arg == nil {
		return p.Optional
	}
	switch p.Kind {
	case ParamString, ParamCallbackName:
		_, ok := arg.(string)
		return ok
	case ParamInt:
		_, ok := arg.(int)
		return ok
	case ParamHandle:
		h, ok := arg.(*Handle)
		return ok && (h != nil || p.Optional)
	case ParamBytes:
		_, ok := arg.([]byte)
		return ok
	}
	return false
}

// HandleArgs collects the handles of a handle array argument list,
// flattening []*Handle arguments. Class Create methods use it for
// their trailing children.
func HandleArgs(args []any) []*Handle {
	var hs []*Handle
	for _, a := range args {
		switch a := a.(type) {
		case *Handle:
			if a != nil {
				hs = append(hs, a)
			}
		case []*Handle:
			hs = append(hs, a...)
		}
	}
	return hs
}
