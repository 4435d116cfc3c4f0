package ui

import (
	"strings"
	"testing"
)

func TestTruncateTableCellCountsCells(t *testing.T) {
	value := strings.Repeat("a", tableCellMaxWidth-1) + "é"

	got := TruncateTableCell(value)

	if got != value {
		t.Fatalf("expected value to remain untruncated, got %q", got)
	}
}

func TestTruncateTableCellCountsWideRunesTwice(t *testing.T) {
	value := strings.Repeat("牛", tableCellMaxWidth/2+1)

	got := TruncateTableCell(value)

	if !strings.HasSuffix(got, tableCellEllipsis) {
		t.Fatalf("expected wide value to be truncated, got %q", got)
	}
	if width := displayWidth(got); width > tableCellMaxWidth {
		t.Fatalf("expected at most %d cells, got %d", tableCellMaxWidth, width)
	}
}

func TestTruncateTableCellNormalizesLineBreaks(t *testing.T) {
	value := "Hello\nWorld\r\nAgain\tTab"

	got := TruncateTableCell(value)

	if got != "Hello World Again Tab" {
		t.Fatalf("expected line breaks to normalize, got %q", got)
	}
}

func TestTruncateTableCellIgnoresANSICodes(t *testing.T) {
	value := "\x1b[1m\x1b[36m" + strings.Repeat("a", tableCellMaxWidth) + "\x1b[0m"

	got := TruncateTableCell(value)

	if got != value {
		t.Fatalf("expected value to remain untruncated, got %q", got)
	}
}

func TestFormatTableNormalizesLineBreaks(t *testing.T) {
	headers := []string{"COL"}
	rows := [][]string{{"Hello\nWorld\r\nAgain\tTab"}}

	got := FormatTable(headers, rows)

	expected := "COL\nHello World Again Tab\n"
	if got != expected {
		t.Fatalf("expected normalized table output, got %q", got)
	}
}

func TestFormatTableAlignsColumns(t *testing.T) {
	builder := NewTableBuilder([]string{"ID", "TEXT"}, 2)
	builder.AddRow([]string{"1", "Buy milk"})
	builder.AddRow([]string{"1234", "Call mom"})

	got := builder.String()

	expected := "ID    TEXT\n1     Buy milk\n1234  Call mom\n"
	if got != expected {
		t.Fatalf("expected aligned table, got %q", got)
	}
}
