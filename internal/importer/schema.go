package importer

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"
)

// ImportSchema is the top-level structure of an import or export file.
// The users key must be present; an empty list imports nothing.
type ImportSchema struct {
	Users []UserImport `json:"users" yaml:"users" validate:"required,dive"`
}

// UserImport holds one user's items.
type UserImport struct {
	ID    string       `json:"id" yaml:"id" validate:"required"`
	Items []ItemImport `json:"items" yaml:"items" validate:"dive"`
}

// ItemImport is the on-disk shape of a review item. Topic may be empty.
type ItemImport struct {
	Topic string `json:"topic" yaml:"topic"`
	Date  string `json:"date" yaml:"date" validate:"required,datetime=2006-01-02"`
}

// Format selects the file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts "json", "yaml" or "yml" in any case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported format %q (use json or yaml)", s)
	}
}

// FormatForPath picks the format from a file extension, defaulting to JSON.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// LoadImportSchema reads and parses an import file, choosing the decoder by
// file extension.
func LoadImportSchema(path string) (*ImportSchema, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodeImportSchema(f, FormatForPath(path))
}

func DecodeImportSchema(r io.Reader, format Format) (*ImportSchema, error) {
	var schema ImportSchema
	switch format {
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&schema); err != nil && err != io.EOF {
			return nil, fmt.Errorf("parsing import file: %w", err)
		}
	default:
		if err := json.NewDecoder(r).Decode(&schema); err != nil {
			return nil, fmt.Errorf("parsing import file: %w", err)
		}
	}
	return &schema, nil
}

// EncodeSchema writes schema to w in the given format.
func EncodeSchema(w io.Writer, schema *ImportSchema, format Format) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(schema); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(schema); err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
		return nil
	}
}
