// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package classinfo

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/gen2brain/iup-go-sub012/base/indent"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is an output format for class descriptions.
type Format int32

const (
	Text Format = iota
	JSON
	YAML
	TOML
)

var formatNames = [...]string{"text", "json", "yaml", "toml"}

func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return formatNames[f]
}

// ParseFormat returns the format with the given name.
func ParseFormat(s string) (Format, error) {
	for i, nm := range formatNames {
		if strings.EqualFold(s, nm) {
			return Format(i), nil
		}
	}
	if strings.EqualFold(s, "yml") {
		return YAML, nil
	}
	return Text, fmt.Errorf("classinfo: unknown format %q; use one of %s", s, strings.Join(formatNames[:], ", "))
}

// Document is the top-level value of the encoded descriptions.
type Document struct {
	Classes []Info `json:"classes" yaml:"classes" toml:"classes"`
}

// Encode writes the descriptions to w in the given format.
func Encode(w io.Writer, f Format, infos ...Info) error {
	doc := Document{Classes: infos}
	switch f {
	case Text:
		for i, info := range infos {
			if i > 0 {
				fmt.Fprintln(w)
			}
			if err := writeText(w, info); err != nil {
				return err
			}
		}
		return nil
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	case TOML:
		return toml.NewEncoder(w).Encode(doc)
	}
	return fmt.Errorf("classinfo: unknown format %v", f)
}

// Decode reads descriptions written by [Encode] in a structured format.
func Decode(r io.Reader, f Format) ([]Info, error) {
	var doc Document
	var err error
	switch f {
	case JSON:
		err = json.NewDecoder(r).Decode(&doc)
	case YAML:
		err = yaml.NewDecoder(r).Decode(&doc)
	case TOML:
		err = toml.NewDecoder(r).Decode(&doc)
	default:
		return nil, fmt.Errorf("classinfo: cannot decode format %v", f)
	}
	if err != nil {
		return nil, fmt.Errorf("classinfo: decoding %v: %w", f, err)
	}
	return doc.Classes, nil
}

func writeText(w io.Writer, info Info) error {
	var sb strings.Builder
	sb.WriteString(info.Name)
	if info.Internal {
		sb.WriteString(" (built-in)")
	}
	sb.WriteByte('\n')
	line := func(level int, format string, args ...any) {
		sb.WriteString(indent.String(indent.Space, level, 2))
		fmt.Fprintf(&sb, format, args...)
		sb.WriteByte('\n')
	}
	line(1, "chain: %s", strings.Join(info.Chain, " < "))
	if info.Constructor != "" {
		line(1, "constructor: %s", info.Constructor)
	}
	if len(info.Params) > 0 {
		line(1, "params: %s (%s)", strings.Join(info.Params, ", "), info.Format)
	}
	line(1, "native: %s, children: %s", info.NativeKind, info.Children)
	if info.AttribID > 0 {
		line(1, "IDs: %d", info.AttribID)
	}
	if len(info.Attributes) > 0 {
		line(1, "attributes:")
		for _, a := range info.Attributes {
			s := a.Name
			if a.Default != "" {
				s += fmt.Sprintf(" = %q", a.Default)
			}
			if len(a.Flags) > 0 {
				s += " [" + strings.Join(a.Flags, " ") + "]"
			}
			line(2, "%s", s)
		}
	}
	if len(info.Callbacks) > 0 {
		line(1, "callbacks:")
		for _, cb := range info.Callbacks {
			line(2, "%s %s", cb.Name, cb.Type)
		}
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
