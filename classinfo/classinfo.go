// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package classinfo describes registered classes for tooling: their
// creation parameters, class chain, attributes and callbacks. The
// descriptions can be written as text, JSON, YAML or TOML.
package classinfo

import (
	"github.com/gen2brain/iup-go-sub012/core"
)

// Info describes a class.
type Info struct {
	Name        string          `json:"name" yaml:"name" toml:"name"`
	Constructor string          `json:"constructor,omitempty" yaml:"constructor,omitempty" toml:"constructor,omitempty"`
	Chain       []string        `json:"chain" yaml:"chain" toml:"chain"`
	Format      string          `json:"format,omitempty" yaml:"format,omitempty" toml:"format,omitempty"`
	Params      []string        `json:"params,omitempty" yaml:"params,omitempty" toml:"params,omitempty"`
	NativeKind  string          `json:"native_kind" yaml:"native_kind" toml:"native_kind"`
	Children    string          `json:"children" yaml:"children" toml:"children"`
	Interactive bool            `json:"interactive,omitempty" yaml:"interactive,omitempty" toml:"interactive,omitempty"`
	AttribID    int             `json:"attrib_id,omitempty" yaml:"attrib_id,omitempty" toml:"attrib_id,omitempty"`
	Internal    bool            `json:"internal,omitempty" yaml:"internal,omitempty" toml:"internal,omitempty"`
	Attributes  []AttributeInfo `json:"attributes,omitempty" yaml:"attributes,omitempty" toml:"attributes,omitempty"`
	Callbacks   []CallbackInfo  `json:"callbacks,omitempty" yaml:"callbacks,omitempty" toml:"callbacks,omitempty"`
}

// AttributeInfo describes an attribute of a class.
type AttributeInfo struct {
	Name string `json:"name" yaml:"name" toml:"name"`

	// Default is the effective default value; SameAsSystem is set
	// when it comes from the system default.
	Default      string   `json:"default,omitempty" yaml:"default,omitempty" toml:"default,omitempty"`
	SameAsSystem bool     `json:"same_as_system,omitempty" yaml:"same_as_system,omitempty" toml:"same_as_system,omitempty"`
	IDs          int      `json:"ids,omitempty" yaml:"ids,omitempty" toml:"ids,omitempty"`
	Flags        []string `json:"flags,omitempty" yaml:"flags,omitempty" toml:"flags,omitempty"`
	Get          bool     `json:"get,omitempty" yaml:"get,omitempty" toml:"get,omitempty"`
	Set          bool     `json:"set,omitempty" yaml:"set,omitempty" toml:"set,omitempty"`
}

// CallbackInfo describes a callback of a class.
type CallbackInfo struct {
	Name string `json:"name" yaml:"name" toml:"name"`

	// Code is the signature code, as given at registration.
	Code string `json:"code,omitempty" yaml:"code,omitempty" toml:"code,omitempty"`

	// Type is the signature as a Go function type.
	Type string `json:"type" yaml:"type" toml:"type"`
}

// Describe returns the description of c.
func Describe(c *core.Class) Info {
	info := Info{
		Name:        c.Name,
		Constructor: c.Constructor,
		Chain:       c.Chain(),
		Format:      c.Format,
		NativeKind:  c.NativeKind.String(),
		Children:    c.Arity.String(),
		Interactive: c.Interactive,
		AttribID:    c.AttribID,
		Internal:    c.IsInternal(),
	}
	for _, p := range c.Params() {
		s := p.Kind.String()
		if p.Optional {
			s += "?"
		}
		info.Params = append(info.Params, s)
	}
	for _, name := range c.Attributes() {
		info.Attributes = append(info.Attributes, describeAttribute(c.AttributeInfo(name)))
	}
	for _, name := range c.Callbacks() {
		sig, _ := c.CallbackSignature(name)
		info.Callbacks = append(info.Callbacks, CallbackInfo{Name: name, Code: sig.Code(), Type: sig.String()})
	}
	return info
}

func describeAttribute(a *core.Attribute) AttributeInfo {
	ai := AttributeInfo{
		Name:         a.Name,
		Default:      a.DefaultValue().String,
		SameAsSystem: a.Default == core.SameAsSystem,
		Flags:        a.Flags.Names(),
	}
	switch {
	case a.Flags.Has(core.HasID2):
		ai.IDs = 2
		ai.Get, ai.Set = a.GetID2 != nil, a.SetID2 != nil
	case a.Flags.Has(core.HasID):
		ai.IDs = 1
		ai.Get, ai.Set = a.GetID != nil, a.SetID != nil
	default:
		ai.Get, ai.Set = a.Get != nil, a.Set != nil
	}
	return ai
}

// DescribeAll returns the descriptions of every class of r, in
// registration order.
func DescribeAll(r *core.Registry) []Info {
	var infos []Info
	for _, name := range r.Names() {
		infos = append(infos, Describe(r.Find(name)))
	}
	return infos
}
