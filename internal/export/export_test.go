package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/amonks/tasklist/task"
	"gopkg.in/yaml.v3"
)

func sampleView() task.View {
	return task.Render([]task.Task{
		{ID: 3, Text: "Call mom", Datetime: "2099-01-02T09:30"},
		{ID: 2, Text: "Buy milk", Completed: true},
		{ID: 1, Text: "Water plants"},
	}, task.FilterActive)
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, sampleView(), FormatJSON); err != nil {
		t.Fatalf("write: %v", err)
	}

	var doc Document
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if doc.Filter != "active" || doc.Total != 3 || doc.Count != 2 || doc.Density != "compact" {
		t.Fatalf("unexpected header %+v", doc)
	}
	if doc.Tasks[0].ID != 3 || doc.Tasks[1].ID != 1 {
		t.Fatalf("expected collection order, got %+v", doc.Tasks)
	}
	if strings.Contains(buf.String(), `"datetime": ""`) {
		t.Fatalf("expected empty datetime omitted, got %s", buf.String())
	}
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, sampleView(), FormatYAML); err != nil {
		t.Fatalf("write: %v", err)
	}

	if !strings.Contains(buf.String(), "filter: active\n") {
		t.Fatalf("expected filter key, got:\n%s", buf.String())
	}

	var doc Document
	if err := yaml.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(doc.Tasks) != 2 || doc.Tasks[0].Datetime != "2099-01-02T09:30" {
		t.Fatalf("unexpected tasks %+v", doc.Tasks)
	}
}

func TestWriteEmptyView(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, task.Render(nil, task.FilterAll), FormatJSON); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !strings.Contains(buf.String(), `"tasks": []`) {
		t.Fatalf("expected empty task array, got %s", buf.String())
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{input: "", want: FormatJSON},
		{input: "YAML", want: FormatYAML},
		{input: " json ", want: FormatJSON},
		{input: "csv", wantErr: true},
	}

	for _, tc := range tests {
		got, err := ParseFormat(tc.input)
		if tc.wantErr {
			if !errors.Is(err, ErrInvalidFormat) {
				t.Fatalf("input %q: expected ErrInvalidFormat, got %v", tc.input, err)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Fatalf("input %q: expected %q, got %q (%v)", tc.input, tc.want, got, err)
		}
	}
}

func TestWriteUnknownFormat(t *testing.T) {
	if err := Write(&bytes.Buffer{}, sampleView(), Format("csv")); !errors.Is(err, ErrInvalidFormat) {
		t.Fatalf("expected ErrInvalidFormat, got %v", err)
	}
}
