package strings

import "testing"

func TestNormalizeWhitespaceTaskText(t *testing.T) {
	cases := map[string]string{
		"":                          "",
		"  \n\t ":                   "",
		"Call mom":                  "Call mom",
		"Buy milk\nand eggs":        "Buy milk and eggs",
		"  Water\t\tthe   plants  ": "Water the plants",
		"Pay rent\r\n\r\nby Friday": "Pay rent by Friday",
	}
	for input, want := range cases {
		if got := NormalizeWhitespace(input); got != want {
			t.Fatalf("NormalizeWhitespace(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestNormalizeLowerTrimSpaceChoices(t *testing.T) {
	cases := map[string]string{
		" Active ":   "active",
		"COMPLETED":  "completed",
		"\tsqlite\n": "sqlite",
		"clear all":  "clear all",
	}
	for input, want := range cases {
		if got := NormalizeLowerTrimSpace(input); got != want {
			t.Fatalf("NormalizeLowerTrimSpace(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestIsBlankReminderAndText(t *testing.T) {
	for _, value := range []string{"", " ", "\t\n", "\r\n  "} {
		if !IsBlank(value) {
			t.Fatalf("expected %q to be blank", value)
		}
	}
	for _, value := range []string{"x", " 2026-10-18T09:30 ", "\nnote"} {
		if IsBlank(value) {
			t.Fatalf("expected %q not to be blank", value)
		}
	}
}

func TestNormalizeNewlinesEditorBuffer(t *testing.T) {
	input := "datetime = \"2026-10-18T09:30\"\r\n---\r\nCall mom\rtoday"
	want := "datetime = \"2026-10-18T09:30\"\n---\nCall mom\ntoday"
	if got := NormalizeNewlines(input); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
	if got := NormalizeNewlines(""); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
}

func TestTrimNewlinesAroundBody(t *testing.T) {
	body := "\n\nBuy milk\nand eggs\n\r\n"
	if got := TrimLeadingNewlines(body); got != "Buy milk\nand eggs\n\r\n" {
		t.Fatalf("unexpected leading trim %q", got)
	}
	if got := TrimTrailingNewlines(body); got != "\n\nBuy milk\nand eggs" {
		t.Fatalf("unexpected trailing trim %q", got)
	}
	if got := TrimTrailingNewlines("  Call mom  \n"); got != "  Call mom  " {
		t.Fatalf("expected spaces kept, got %q", got)
	}
}

func TestIndentBlockMarkdown(t *testing.T) {
	if got := IndentBlock("Buy milk\n- eggs", 2); got != "  Buy milk\n  - eggs" {
		t.Fatalf("unexpected indent %q", got)
	}
	if got := IndentBlock("Buy milk", 0); got != "Buy milk" {
		t.Fatalf("expected zero indent to be a no-op, got %q", got)
	}
	if got := IndentBlock("", 4); got != "    " {
		t.Fatalf("expected single prefixed line, got %q", got)
	}
}
