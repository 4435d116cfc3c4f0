package editor

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/amonks/tasklist/task"
)

func TestRenderTaskTOML_Update(t *testing.T) {
	data := DataFromTask(task.Task{
		ID:        1760000000123,
		Text:      "Buy milk",
		Datetime:  "2099-01-02T09:30",
		Completed: true,
	})

	content, err := RenderTaskTOML(data)
	if err != nil {
		t.Fatalf("RenderTaskTOML failed: %v", err)
	}

	if !strings.HasPrefix(content, "# task 1760000000123 (completed)\n") {
		t.Errorf("expected header comment, got %q", content)
	}
	if !strings.Contains(content, `datetime = "2099-01-02T09:30"`) {
		t.Error("expected datetime in frontmatter")
	}
	if !strings.Contains(content, "---\nBuy milk\n") {
		t.Error("expected text in body")
	}
}

func TestRenderTaskTOML_Blank(t *testing.T) {
	content, err := RenderTaskTOML(TaskData{})
	if err != nil {
		t.Fatalf("RenderTaskTOML failed: %v", err)
	}
	if strings.Contains(content, "# task") {
		t.Error("expected no header for a new task")
	}
	if !strings.HasPrefix(content, `datetime = ""`) {
		t.Errorf("expected empty datetime first, got %q", content)
	}
}

func TestParseTaskTOML_RoundTrip(t *testing.T) {
	original := task.Task{ID: 7, Text: "Call mom", Datetime: "2099-05-06T18:00"}
	content, err := RenderTaskTOML(DataFromTask(original))
	if err != nil {
		t.Fatalf("RenderTaskTOML failed: %v", err)
	}

	parsed, err := ParseTaskTOML(content)
	if err != nil {
		t.Fatalf("ParseTaskTOML failed: %v", err)
	}
	if parsed.Text != original.Text {
		t.Errorf("Text = %q, expected %q", parsed.Text, original.Text)
	}
	if parsed.Datetime != original.Datetime {
		t.Errorf("Datetime = %q, expected %q", parsed.Datetime, original.Datetime)
	}
}

func TestParseTaskTOML_TrimsAndNormalizes(t *testing.T) {
	parsed, err := ParseTaskTOML("\r\ndatetime = \" 2099-05-06 18:00 \"\r\n---\r\n\r\n  Water plants  \r\n\r\n")
	if err != nil {
		t.Fatalf("ParseTaskTOML failed: %v", err)
	}
	if parsed.Text != "Water plants" {
		t.Errorf("Text = %q", parsed.Text)
	}
	if parsed.Datetime != "2099-05-06 18:00" {
		t.Errorf("Datetime = %q", parsed.Datetime)
	}
}

func TestParseTaskTOML_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "bad toml", content: "datetime = \n---\ntext"},
		{name: "unknown field", content: "priority = 1\n---\ntext"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseTaskTOML(tc.content); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestParseTaskTOML_NoSeparator(t *testing.T) {
	parsed, err := ParseTaskTOML(`datetime = ""`)
	if err != nil {
		t.Fatalf("ParseTaskTOML failed: %v", err)
	}
	if parsed.Text != "" {
		t.Errorf("expected empty text, got %q", parsed.Text)
	}
}

func TestEditTaskUsesEditor(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "fake-editor")
	body := "#!/bin/sh\nprintf 'datetime = \"2099-01-01T08:00\"\\n---\\nEdited text\\n' > \"$1\"\n"
	if err := os.WriteFile(script, []byte(body), 0o755); err != nil {
		t.Fatalf("write editor script: %v", err)
	}
	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", script)

	parsed, err := EditTask(task.Task{ID: 1, Text: "Original"})
	if err != nil {
		t.Fatalf("EditTask failed: %v", err)
	}
	if parsed.Text != "Edited text" || parsed.Datetime != "2099-01-01T08:00" {
		t.Fatalf("unexpected parse result %+v", parsed)
	}
}

func TestEditTaskReportsEditorFailure(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "failing-editor")
	if err := os.WriteFile(script, []byte("#!/bin/sh\nexit 3\n"), 0o755); err != nil {
		t.Fatalf("write editor script: %v", err)
	}
	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", script)

	_, err := EditTask(task.Task{ID: 1, Text: "Original"})
	if err == nil || !strings.Contains(err.Error(), "status 3") || !strings.Contains(err.Error(), "editing tl-task-") {
		t.Fatalf("expected exit status error naming the task file, got %v", err)
	}
}

func TestCreateTaskTempFileExtension(t *testing.T) {
	file, err := createTaskTempFile()
	if err != nil {
		t.Fatalf("create temp file: %v", err)
	}
	defer os.Remove(file.Name())
	file.Close()

	if !strings.HasSuffix(file.Name(), ".md") {
		t.Fatalf("expected .md extension, got %s", file.Name())
	}
}

func TestEditorCommand(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
		want string
	}{
		{name: "fallback", env: map[string]string{}, want: "vi"},
		{name: "editor", env: map[string]string{"EDITOR": "nano"}, want: "nano"},
		{name: "visual wins", env: map[string]string{"VISUAL": "code --wait", "EDITOR": "nano"}, want: "code|--wait"},
		{name: "blank visual ignored", env: map[string]string{"VISUAL": "  ", "EDITOR": "vim -n"}, want: "vim|-n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := editorCommand(func(name string) string { return tc.env[name] })
			if strings.Join(got, "|") != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}
