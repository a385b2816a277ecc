package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// markdownFormatter formats the session state as Markdown
type markdownFormatter struct{}

// NewMarkdown creates a new Markdown formatter
func NewMarkdown() Formatter {
	return &markdownFormatter{}
}

func (f *markdownFormatter) Format(snap *ScreenSnapshot) ([]byte, error) {
	var b strings.Builder

	b.WriteString("# Session Screen\n\n")

	b.WriteString("| Field | Value |\n")
	b.WriteString("|-------|-------|\n")
	b.WriteString(fmt.Sprintf("| Screen | %s |\n", snap.Screen))
	b.WriteString(fmt.Sprintf("| Authenticated | %t |\n", snap.Authenticated))
	if snap.Display != "" {
		b.WriteString(fmt.Sprintf("| Analysis Result | %s |\n", escapeCell(snap.Display)))
	}
	b.WriteString("\n")

	// Markdown has no use for terminal escapes
	b.WriteString("```text\n")
	b.WriteString(ansi.Strip(snap.Rendered))
	b.WriteString("\n```\n")

	return []byte(b.String()), nil
}

// escapeCell keeps s inside a single table cell
func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\n", "<br>")
}
