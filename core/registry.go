// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"fmt"
	"log/slog"

	"github.com/jinzhu/copier"

	"github.com/gen2brain/iup-go-sub012/base/keylist"
)

// Registry maps class names to registered classes. Registering a class
// under a name that is already taken replaces the previous class,
// which is released. A Registry is not safe for concurrent use.
type Registry struct {
	classes keylist.List[string, *Class]
}

// NewRegistry returns a new empty class registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// NewClass returns a new unregistered class. With an empty parentName
// the class is a root class with its own empty attribute table.
// Otherwise the New method of the named parent class is called to make
// a fresh parent descriptor; the new class starts as a copy of it, has
// it as Parent, and shares its attribute table. A parent without a New
// method is cloned with its whole chain, every level sharing one
// private copy of the attribute table.
func (r *Registry) NewClass(parentName string) (*Class, error) {
	if parentName == "" {
		return &Class{attrs: &attrTable{}}, nil
	}
	p := r.Find(parentName)
	if p == nil {
		return nil, fmt.Errorf("core.Registry.NewClass: %w: %q", ErrUnknownClass, parentName)
	}
	var parent *Class
	if p.Methods.New != nil {
		parent = p.Methods.New(r)
	} else {
		var err error
		if parent, err = cloneChain(p, p.attrs.clone()); err != nil {
			return nil, fmt.Errorf("core.Registry.NewClass: copying %q: %w", parentName, err)
		}
	}
	if parent.attrs == nil {
		parent.attrs = &attrTable{}
	}
	c := &Class{}
	if err := copier.Copy(c, parent); err != nil {
		return nil, fmt.Errorf("core.Registry.NewClass: copying %q: %w", parentName, err)
	}
	c.Parent = parent
	c.attrs = parent.attrs
	return c, nil
}

// cloneChain copies every level of the class chain of p, linking the
// copies and giving them the table t.
func cloneChain(p *Class, t *attrTable) (*Class, error) {
	cl := &Class{}
	if err := copier.Copy(cl, p); err != nil {
		return nil, err
	}
	cl.params = p.params
	cl.attrs = t
	cl.Parent = nil
	if p.Parent != nil {
		pp, err := cloneChain(p.Parent, t)
		if err != nil {
			return nil, err
		}
		cl.Parent = pp
	}
	return cl, nil
}

// Register registers c under its name, replacing and releasing any
// class already registered under that name. The creation format of c
// is parsed here.
func (r *Registry) Register(c *Class) error {
	return r.register(c, false)
}

// RegisterInternal registers a class owned by the toolkit itself.
// User classes registered later under the same name replace it.
func (r *Registry) RegisterInternal(c *Class) error {
	return r.register(c, true)
}

func (r *Registry) register(c *Class, internal bool) error {
	if c == nil || c.Name == "" {
		return fmt.Errorf("core.Registry.Register: class has no name")
	}
	ps, err := ParseFormat(c.Format)
	if err != nil {
		return fmt.Errorf("core.Registry.Register %q: %w", c.Name, err)
	}
	c.params = ps
	c.internal = internal
	if c.attrs == nil {
		c.attrs = &attrTable{}
	}
	old, had := r.classes.Set(c.Name, c)
	if had && old != c {
		if old.internal && !internal {
			slog.Debug("core.Registry: user class replaces built-in class", "class", c.Name)
		}
		old.Release()
	}
	return nil
}

// Find returns the class registered under name, or nil. Constructor
// aliases are matched when no class has the exact name.
func (r *Registry) Find(name string) *Class {
	if c, ok := r.classes.AtTry(name); ok {
		return c
	}
	for _, c := range r.classes.Values {
		if c.Constructor != "" && c.Constructor == name {
			return c
		}
	}
	return nil
}

// Names returns the names of the registered classes in registration order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.classes.Keys...)
}

// Count returns the number of registered classes.
func (r *Registry) Count() int {
	return r.classes.Len()
}

// List copies up to len(buf) class names into buf and returns the
// number copied. With a nil buf it returns the count without copying.
func (r *Registry) List(buf []string) int {
	if buf == nil {
		return r.classes.Len()
	}
	return copy(buf, r.classes.Keys)
}

// Close releases every registered class and empties the registry.
func (r *Registry) Close() {
	for _, c := range r.classes.Values {
		c.Release()
	}
	r.classes.Reset()
}
