package graphfile

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

var (
	// ErrUnknownFormat is returned for format names or file extensions
	// other than yaml, yml, toml and json.
	ErrUnknownFormat = errors.New("graphfile: unknown format")

	// ErrInvalidSpec is returned when a document fails validation or decoding.
	ErrInvalidSpec = errors.New("graphfile: invalid graph document")
)

// Format is a document encoding.
type Format int

const (
	// FormatYAML decodes with gopkg.in/yaml.v3; unknown keys are rejected.
	FormatYAML Format = iota

	// FormatTOML decodes with BurntSushi/toml; undecoded keys are rejected.
	FormatTOML

	// FormatJSON decodes with encoding/json; unknown fields are rejected.
	FormatJSON
)

// String returns the canonical lower-case name.
func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	case FormatJSON:
		return "json"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// Formats lists every supported format.
func Formats() []Format { return []Format{FormatYAML, FormatTOML, FormatJSON} }

// ParseFormat maps a name ("yaml", "yml", "toml", "json"; case-insensitive,
// an optional leading dot is ignored) to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.TrimPrefix(strings.ToLower(strings.TrimSpace(name)), ".") {
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatYAML, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return FormatYAML, fmt.Errorf("%w: %s has no extension", ErrUnknownFormat, path)
	}

	return ParseFormat(ext)
}

// Edge is one weighted undirected edge.
type Edge struct {
	From   int   `yaml:"from" toml:"from" json:"from" validate:"gte=0"`
	To     int   `yaml:"to" toml:"to" json:"to" validate:"gte=0,nefield=From"`
	Weight int64 `yaml:"weight" toml:"weight" json:"weight" validate:"gt=0"`
}

// Spec is a decoded graph document.
type Spec struct {
	Name     string `yaml:"name,omitempty" toml:"name,omitempty" json:"name,omitempty" validate:"max=128"`
	Vertices int    `yaml:"vertices" toml:"vertices" json:"vertices" validate:"required,gt=0"`
	Start    int    `yaml:"start,omitempty" toml:"start,omitempty" json:"start,omitempty" validate:"gte=0"`
	Edges    []Edge `yaml:"edges" toml:"edges" json:"edges" validate:"dive"`
}
