// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the settings of a toolkit instance and the
// functions to load them from TOML or YAML files and to watch those
// files for changes.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/gen2brain/iup-go-sub012/base/errors"
)

// Settings are the settings applied when a toolkit context is opened,
// and re-applied whenever a watched settings file changes.
type Settings struct {

	// LogLevel is the slog level name: debug, info, warn or error.
	LogLevel string `toml:"log_level" yaml:"log_level" default:"info"`

	// Language is the initial value of the LANGUAGE global attribute.
	Language string `toml:"language" yaml:"language" default:"ENGLISH"`

	// DefaultFont is the initial value of the DEFAULTFONT global
	// attribute, in the form "Face, Style Size".
	DefaultFont string `toml:"default_font" yaml:"default_font" default:"Sans, 10"`

	// Globals are additional global attributes set at open time,
	// in key order.
	Globals map[string]string `toml:"globals" yaml:"globals"`

	// Names configures the handle name registry.
	Names Names `toml:"names" yaml:"names"`
}

// Names configures the handle name registry.
type Names struct {

	// KeepStaleAliases keeps the aliases of a destroyed handle other
	// than its cached name bound to the stale handle, instead of
	// purging every alias.
	KeepStaleAliases bool `toml:"keep_stale_aliases" yaml:"keep_stale_aliases" default:"false"`
}

// Default returns the default settings, taken from the default struct
// tags of [Settings].
func Default() *Settings {
	s := &Settings{}
	errors.Must(setFromDefaultTags(s))
	return s
}

// setFromDefaultTags sets the fields of the struct pointed to by obj,
// and of its nested structs, to the values of their default tags.
// Fields without a default tag are left alone.
func setFromDefaultTags(obj any) error {
	v := reflect.ValueOf(obj)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("config: %T is not a pointer to a struct", obj)
	}
	return setStructDefaults(v.Elem())
}

func setStructDefaults(v reflect.Value) error {
	typ := v.Type()
	for i := range typ.NumField() {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		fv := v.Field(i)
		if fv.Kind() == reflect.Struct {
			if err := setStructDefaults(fv); err != nil {
				return err
			}
			continue
		}
		def, ok := f.Tag.Lookup("default")
		if !ok {
			continue
		}
		if err := setFromString(fv, def); err != nil {
			return fmt.Errorf("config: default of %s.%s: %w", typ.Name(), f.Name, err)
		}
	}
	return nil
}

func setFromString(fv reflect.Value, s string) error {
	switch fv.Kind() {
	case reflect.String:
		fv.SetString(s)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		fv.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 10, fv.Type().Bits())
		if err != nil {
			return err
		}
		fv.SetInt(n)
	default:
		return fmt.Errorf("unsupported kind %s", fv.Kind())
	}
	return nil
}

// Format is a settings file format.
type Format int

const (
	// TOML is the default format.
	TOML Format = iota
	YAML
)

// FormatOf returns the format of a settings file from its extension.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML
	}
	return TOML
}

// Decode decodes settings in the given format into s. Fields that are
// not present keep their current values.
func (s *Settings) Decode(data []byte, f Format) error {
	var err error
	switch f {
	case YAML:
		err = yaml.Unmarshal(data, s)
	default:
		err = toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields().Decode(s)
	}
	if err != nil {
		return fmt.Errorf("config: decode: %w", err)
	}
	return nil
}

// Encode encodes s in the given format.
func (s *Settings) Encode(f Format) ([]byte, error) {
	switch f {
	case YAML:
		return yaml.Marshal(s)
	default:
		return toml.Marshal(s)
	}
}

// Open reads the settings file at path on top of the defaults.
func Open(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s := Default()
	if err := s.Decode(data, FormatOf(path)); err != nil {
		return nil, fmt.Errorf("%w (%s)", err, path)
	}
	return s, nil
}

// Save writes the settings to path in the format of its extension.
func (s *Settings) Save(path string) error {
	data, err := s.Encode(FormatOf(path))
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
