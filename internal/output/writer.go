// Package output renders batch reports in machine-readable formats.
package output

import (
	"fmt"
	"io"
	"strings"
)

// Format represents report format types.
type Format string

const (
	FormatText  Format = "text"
	FormatJSON  Format = "json"
	FormatJSONL Format = "jsonl"
	FormatYAML  Format = "yaml"
)

// Formats lists every supported format.
var Formats = []Format{FormatText, FormatJSON, FormatJSONL, FormatYAML}

// ParseFormat converts a user-supplied name into a Format.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unsupported output format: %s", s)
}

// Streaming reports whether items are written as they arrive rather than
// collected into a single document.
func (f Format) Streaming() bool {
	return f == FormatJSONL
}

// Writer handles report serialization.
type Writer interface {
	// Write outputs a single item.
	Write(data any) error

	// Flush ensures all data is written.
	Flush() error

	// Close releases resources.
	Close() error
}

// Option configures a Writer.
type Option func(*options)

type options struct {
	comment string
}

// WithComment heads each YAML document with comment. JSON formats have no
// comments and ignore it.
func WithComment(comment string) Option {
	return func(o *options) {
		o.comment = comment
	}
}

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// NewWriter creates a writer for the specified format.
// FormatText has no writer; text reports are rendered by the CLI.
func NewWriter(w io.Writer, format Format, opts ...Option) (Writer, error) {
	switch format {
	case FormatJSON:
		return NewJSONWriter(w), nil
	case FormatJSONL:
		return NewJSONLWriter(w), nil
	case FormatYAML:
		return NewYAMLWriter(w, opts...), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}
