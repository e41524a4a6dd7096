package task

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/JaskiratSingh1/Verto/internal/utils"
)

// Format is an export encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ParseFormat normalizes a format name. "yml" is accepted for YAML.
func ParseFormat(s string) (Format, error) {
	switch utils.NormalizeName(s) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unsupported format %q, must be one of: json, yaml, toml", s)
	}
}

// Export writes every day and task to w in the given format. The JSON form
// is identical to the tasks file.
func (s *Store) Export(w io.Writer, format Format) error {
	switch format {
	case FormatJSON:
		data, err := s.encode()
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s.document()); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(s.document()); err != nil {
			return fmt.Errorf("encode toml: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}
