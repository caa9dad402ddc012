package ui

import (
	"strings"
	"testing"
)

func TestFormatTable_Alignment(t *testing.T) {
	output := FormatTable(
		[]string{"ID", "TITLE"},
		[][]string{
			{"1", "Buy milk"},
			{"12", "Write report"},
		},
	)

	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d:\n%s", len(lines), output)
	}

	titleCol := strings.Index(lines[0], "TITLE")
	if titleCol < 0 {
		t.Fatalf("missing TITLE header in %q", lines[0])
	}
	if strings.Index(lines[1], "Buy milk") != titleCol {
		t.Errorf("row 1 not aligned with header:\n%s", output)
	}
	if strings.Index(lines[2], "Write report") != titleCol {
		t.Errorf("row 2 not aligned with header:\n%s", output)
	}
}

func TestFormatTable_StyledCellsStillAlign(t *testing.T) {
	styled := "\x1b[1m\x1b[36m1\x1b[0m"
	output := FormatTable(
		[]string{"ID", "TITLE"},
		[][]string{
			{styled, "Styled row"},
			{"22", "Plain row"},
		},
	)

	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")
	stripANSI := func(s string) string {
		for {
			start := strings.IndexByte(s, '\x1b')
			if start < 0 {
				return s
			}
			end := strings.IndexByte(s[start:], 'm')
			if end < 0 {
				return s[:start]
			}
			s = s[:start] + s[start+end+1:]
		}
	}

	if strings.Index(stripANSI(lines[1]), "Styled row") != strings.Index(lines[2], "Plain row") {
		t.Errorf("styled cell broke alignment:\n%s", output)
	}
}

func TestTableBuilder(t *testing.T) {
	builder := NewTableBuilder([]string{"A"}, 1)
	builder.AddRow([]string{"value"})

	output := builder.String()
	if !strings.HasPrefix(output, "A\n") {
		t.Errorf("expected header line, got %q", output)
	}
	if !strings.Contains(output, "value") {
		t.Errorf("expected row, got %q", output)
	}
}

func TestTruncateTableCell(t *testing.T) {
	short := "short value"
	if got := TruncateTableCell(short); got != short {
		t.Errorf("expected %q unchanged, got %q", short, got)
	}

	long := strings.Repeat("x", 80)
	got := TruncateTableCell(long)
	if !strings.HasSuffix(got, "...") {
		t.Errorf("expected ellipsis suffix, got %q", got)
	}
	if len(got) > tableCellMaxWidth {
		t.Errorf("expected at most %d characters, got %d", tableCellMaxWidth, len(got))
	}
}

func TestTruncateTableCell_FlattensNewlines(t *testing.T) {
	if got := TruncateTableCell("line one\nline two"); strings.Contains(got, "\n") {
		t.Errorf("expected newlines flattened, got %q", got)
	}
}
