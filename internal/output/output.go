// Package output renders command results as text, JSON or YAML.
package output

import (
	"encoding/json"
	"io"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tphakala/birdgroups/internal/errors"
)

// Supported formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Formats lists the accepted values of an --output flag.
var Formats = []string{FormatText, FormatJSON, FormatYAML}

// ValidateFormat checks a user supplied format name.
func ValidateFormat(format string) error {
	if slices.Contains(Formats, format) {
		return nil
	}
	return errors.Newf("unsupported output format %q, use one of %s", format, strings.Join(Formats, ", ")).
		Component("output").
		Category(errors.CategoryValidation).
		Build()
}

// Write encodes v in the requested format. Text rendering is delegated to
// text, which receives the same writer.
func Write(w io.Writer, format string, v any, text func(io.Writer) error) error {
	switch format {
	case FormatText:
		return text(w)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return ValidateFormat(format)
	}
}
