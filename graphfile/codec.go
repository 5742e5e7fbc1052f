// SPDX-License-Identifier: MIT
//
// codec.go — decoding and encoding of graph documents.
//
// Policy:
//   • Unknown keys are errors in every format (yaml KnownFields, toml
//     Undecoded keys, json DisallowUnknownFields).
//   • Every decode path ends in Spec.Validate.

package graphfile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Load reads and validates the document at path; the format comes from the
// file extension.
func Load(path string) (*Spec, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}
	defer fh.Close()

	return Decode(fh, f)
}

// Parse decodes and validates data in format f.
func Parse(data []byte, f Format) (*Spec, error) {
	return Decode(bytes.NewReader(data), f)
}

// Decode reads one document in format f from r and validates it.
func Decode(r io.Reader, f Format) (*Spec, error) {
	var s Spec
	switch f {
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&s); err != nil {
			return nil, fmt.Errorf("%w: yaml: %w", ErrInvalidSpec, err)
		}
	case FormatTOML:
		md, err := toml.NewDecoder(r).Decode(&s)
		if err != nil {
			return nil, fmt.Errorf("%w: toml: %w", ErrInvalidSpec, err)
		}
		if keys := md.Undecoded(); len(keys) > 0 {
			names := make([]string, len(keys))
			for i, k := range keys {
				names[i] = k.String()
			}
			return nil, fmt.Errorf("%w: toml: unknown keys %s", ErrInvalidSpec, strings.Join(names, ", "))
		}
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&s); err != nil {
			return nil, fmt.Errorf("%w: json: %w", ErrInvalidSpec, err)
		}
	default:
		return nil, fmt.Errorf("Decode: %w: %s", ErrUnknownFormat, f)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// Encode validates s and writes it to w in format f.
func Encode(w io.Writer, s *Spec, f Format) error {
	if err := s.Validate(); err != nil {
		return err
	}
	switch f {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return fmt.Errorf("Encode: yaml: %w", err)
		}
		return enc.Close()
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(s); err != nil {
			return fmt.Errorf("Encode: toml: %w", err)
		}
		return nil
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(s); err != nil {
			return fmt.Errorf("Encode: json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("Encode: %w: %s", ErrUnknownFormat, f)
	}
}
