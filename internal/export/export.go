// Package export writes a rendered task view as JSON or YAML.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/amonks/tasklist/internal/validation"
	"github.com/amonks/tasklist/task"
	"gopkg.in/yaml.v3"
)

// Format is an export encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrInvalidFormat is returned for an unknown export format.
var ErrInvalidFormat = errors.New("invalid export format")

// ValidFormats returns all export formats.
func ValidFormats() []Format {
	return []Format{FormatJSON, FormatYAML}
}

// ParseFormat parses a format name. Empty input selects JSON.
func ParseFormat(value string) (Format, error) {
	format, ok := validation.Choose(value, ValidFormats(), FormatJSON)
	if !ok {
		return "", validation.FormatInvalidValueError(ErrInvalidFormat, Format(value), ValidFormats())
	}
	return format, nil
}

// Document is the exported shape of a view.
type Document struct {
	Filter  string   `json:"filter" yaml:"filter"`
	Total   int      `json:"total" yaml:"total"`
	Count   int      `json:"count" yaml:"count"`
	Density string   `json:"density" yaml:"density"`
	Tasks   []Record `json:"tasks" yaml:"tasks"`
}

// Record is one exported task.
type Record struct {
	ID        int64  `json:"id" yaml:"id"`
	Text      string `json:"text" yaml:"text"`
	Datetime  string `json:"datetime,omitempty" yaml:"datetime,omitempty"`
	Completed bool   `json:"completed" yaml:"completed"`
}

// NewDocument converts a view for export.
func NewDocument(view task.View) Document {
	records := make([]Record, 0, len(view.Tasks))
	for _, t := range view.Tasks {
		records = append(records, Record{
			ID:        t.ID,
			Text:      t.Text,
			Datetime:  t.Datetime,
			Completed: t.Completed,
		})
	}
	return Document{
		Filter:  string(view.Filter),
		Total:   view.Total,
		Count:   len(records),
		Density: view.Density.String(),
		Tasks:   records,
	}
}

// Write encodes view to w in format.
func Write(w io.Writer, view task.View, format Format) error {
	doc := NewDocument(view)
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrInvalidFormat, format)
	}
}
