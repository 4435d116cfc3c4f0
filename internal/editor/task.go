package editor

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/BurntSushi/toml"
	internalstrings "github.com/amonks/tasklist/internal/strings"
	"github.com/amonks/tasklist/task"
)

// TaskData represents the data used to render the TOML template.
type TaskData struct {
	// IsUpdate is true when editing an existing task.
	IsUpdate bool
	// ID is the task ID (only for updates).
	ID int64
	// Text is the task text.
	Text string
	// Datetime is the reminder in task.DatetimeLayout, or empty.
	Datetime string
	// Completed is shown for reference; the editor does not change it.
	Completed bool
}

// DataFromTask creates TaskData from an existing task for editing.
func DataFromTask(t task.Task) TaskData {
	return TaskData{
		IsUpdate:  true,
		ID:        t.ID,
		Text:      t.Text,
		Datetime:  t.Datetime,
		Completed: t.Completed,
	}
}

var taskTemplate = template.Must(template.New("task").Parse(`
{{- if .IsUpdate -}}
# task {{ .ID }}{{ if .Completed }} (completed){{ end }}
{{ end -}}
datetime = {{ printf "%q" .Datetime }} # reminder as YYYY-MM-DDTHH:MM, empty for none
---
{{ .Text }}
`))

// RenderTaskTOML renders the task data as a TOML string for editing.
func RenderTaskTOML(data TaskData) (string, error) {
	var buf bytes.Buffer
	if err := taskTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render template: %w", err)
	}
	return buf.String(), nil
}

// ParsedTask represents the parsed result from the TOML editor output.
// Values are returned as typed; the store validates them.
type ParsedTask struct {
	Datetime string `toml:"datetime"`
	Text     string
}

// ParseTaskTOML parses the TOML content from the editor.
func ParseTaskTOML(content string) (*ParsedTask, error) {
	frontmatter, body := splitFrontmatter(internalstrings.NormalizeNewlines(content))

	var parsed ParsedTask
	meta, err := toml.Decode(frontmatter, &parsed)
	if err != nil {
		return nil, fmt.Errorf("parse TOML: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("parse TOML: unknown field %q", undecoded[0].String())
	}
	parsed.Datetime = strings.TrimSpace(parsed.Datetime)
	parsed.Text = strings.TrimSpace(body)
	return &parsed, nil
}

func splitFrontmatter(content string) (string, string) {
	content = internalstrings.TrimLeadingNewlines(content)
	if content == "" {
		return "", ""
	}

	lines := strings.Split(content, "\n")
	separatorIndex := -1
	for i, line := range lines {
		if strings.TrimSpace(line) == "---" {
			separatorIndex = i
			break
		}
	}
	if separatorIndex == -1 {
		return content, ""
	}

	frontmatter := strings.Join(lines[:separatorIndex], "\n")
	body := strings.Join(lines[separatorIndex+1:], "\n")
	return frontmatter, body
}

func createTaskTempFile() (*os.File, error) {
	return os.CreateTemp("", "tl-task-*.md")
}

// EditTask opens the editor for an existing task and returns the parsed result.
func EditTask(existing task.Task) (*ParsedTask, error) {
	return EditTaskWithData(DataFromTask(existing))
}

// EditTaskWithData opens the editor with pre-populated data and returns the parsed result.
func EditTaskWithData(data TaskData) (*ParsedTask, error) {
	content, err := RenderTaskTOML(data)
	if err != nil {
		return nil, err
	}

	tmpfile, err := createTaskTempFile()
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpfile.Name()
	defer os.Remove(tmpPath)

	if _, err := tmpfile.WriteString(content); err != nil {
		tmpfile.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	if err := tmpfile.Close(); err != nil {
		return nil, fmt.Errorf("close temp file: %w", err)
	}

	if err := Edit(tmpPath); err != nil {
		return nil, err
	}

	edited, err := os.ReadFile(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("read edited file: %w", err)
	}

	return ParseTaskTOML(string(edited))
}
