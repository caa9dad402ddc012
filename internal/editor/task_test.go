package editor

import (
	"strings"
	"testing"
	"time"

	"github.com/mkern/taskbook/task"
)

func TestRenderTaskTOML_Add(t *testing.T) {
	content, err := RenderTaskTOML(DefaultAddData())
	if err != nil {
		t.Fatalf("failed to render: %v", err)
	}
	if !strings.Contains(content, `title = ""`) {
		t.Errorf("expected empty title field, got %q", content)
	}
	if !strings.Contains(content, `priority = "medium"`) {
		t.Errorf("expected default priority, got %q", content)
	}
	if strings.Contains(content, "completed") {
		t.Errorf("expected no completed field for new tasks, got %q", content)
	}
	if !strings.Contains(content, "\n---\n") {
		t.Errorf("expected frontmatter separator, got %q", content)
	}
}

func TestRenderTaskTOML_Update(t *testing.T) {
	due := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	item := &task.Task{
		ID:          7,
		Title:       "Write report",
		Description: "Quarterly numbers.",
		Priority:    task.PriorityHigh,
		DueDate:     &due,
		Completed:   true,
	}

	content, err := RenderTaskTOML(DataFromTask(item))
	if err != nil {
		t.Fatalf("failed to render: %v", err)
	}
	if !strings.Contains(content, `title = "Write report"`) {
		t.Errorf("expected title field, got %q", content)
	}
	if !strings.Contains(content, `due = "2026-09-15"`) {
		t.Errorf("expected formatted due date, got %q", content)
	}
	if !strings.Contains(content, "completed = true") {
		t.Errorf("expected completed field, got %q", content)
	}
	if !strings.Contains(content, "Quarterly numbers.") {
		t.Errorf("expected description body, got %q", content)
	}
}

func TestParseTaskTOML_RoundTrip(t *testing.T) {
	data := TaskData{
		IsUpdate:    true,
		ID:          3,
		Title:       "Buy milk",
		Priority:    "high",
		Due:         "2026-09-01",
		Completed:   false,
		Description: "Whole milk.\n\n- two liters",
	}

	content, err := RenderTaskTOML(data)
	if err != nil {
		t.Fatalf("failed to render: %v", err)
	}
	parsed, err := ParseTaskTOML(content)
	if err != nil {
		t.Fatalf("failed to parse: %v", err)
	}

	if parsed.Title != data.Title {
		t.Errorf("expected title %q, got %q", data.Title, parsed.Title)
	}
	if parsed.Priority != data.Priority {
		t.Errorf("expected priority %q, got %q", data.Priority, parsed.Priority)
	}
	if parsed.Due != data.Due {
		t.Errorf("expected due %q, got %q", data.Due, parsed.Due)
	}
	if parsed.Completed == nil || *parsed.Completed {
		t.Errorf("expected completed false, got %v", parsed.Completed)
	}
	if parsed.Description != data.Description {
		t.Errorf("expected description %q, got %q", data.Description, parsed.Description)
	}
}

func TestParseTaskTOML_NormalizesPriority(t *testing.T) {
	parsed, err := ParseTaskTOML("title = \"x\"\npriority = \" HIGH \"\n---\n")
	if err != nil {
		t.Fatalf("failed to parse: %v", err)
	}
	if parsed.Priority != "high" {
		t.Errorf("expected normalized priority, got %q", parsed.Priority)
	}
}

func TestParseTaskTOML_InvalidPriority(t *testing.T) {
	if _, err := ParseTaskTOML("title = \"x\"\npriority = \"urgent\"\n---\n"); err == nil {
		t.Error("expected error for invalid priority")
	}
}

func TestParseTaskTOML_InvalidDue(t *testing.T) {
	if _, err := ParseTaskTOML("title = \"x\"\npriority = \"low\"\ndue = \"tomorrow\"\n---\n"); err == nil {
		t.Error("expected error for invalid due date")
	}
}

func TestParseTaskTOML_MissingCompletedField(t *testing.T) {
	parsed, err := ParseTaskTOML("title = \"x\"\npriority = \"low\"\n---\n")
	if err != nil {
		t.Fatalf("failed to parse: %v", err)
	}
	if parsed.Completed != nil {
		t.Errorf("expected nil completed when omitted, got %v", *parsed.Completed)
	}
}

func TestParsedTaskDueDate(t *testing.T) {
	parsed := &ParsedTask{Due: "2026-09-01"}
	due, err := parsed.DueDate()
	if err != nil {
		t.Fatalf("failed to parse due date: %v", err)
	}
	want := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	if due == nil || !due.Equal(want) {
		t.Errorf("expected %v, got %v", want, due)
	}

	empty := &ParsedTask{}
	due, err = empty.DueDate()
	if err != nil || due != nil {
		t.Errorf("expected nil due date for empty field, got %v, %v", due, err)
	}
}

func TestSplitFrontmatter(t *testing.T) {
	frontmatter, body := splitFrontmatter("a = 1\n---\nbody text")
	if frontmatter != "a = 1" {
		t.Errorf("expected frontmatter 'a = 1', got %q", frontmatter)
	}
	if body != "body text" {
		t.Errorf("expected body 'body text', got %q", body)
	}

	frontmatter, body = splitFrontmatter("no separator here")
	if frontmatter != "no separator here" || body != "" {
		t.Errorf("expected everything in frontmatter, got %q / %q", frontmatter, body)
	}

	frontmatter, body = splitFrontmatter("")
	if frontmatter != "" || body != "" {
		t.Errorf("expected empty results, got %q / %q", frontmatter, body)
	}
}
