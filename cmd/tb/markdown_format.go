package main

import "github.com/mkern/taskbook/internal/markdown"

func renderMarkdownOrDash(value string, width int) string {
	if width < 1 {
		width = 1
	}
	formatted := markdown.Render(width, value)
	if formatted == "" {
		return "-"
	}
	return formatted
}
