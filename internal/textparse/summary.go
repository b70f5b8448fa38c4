package textparse

import "strings"

const summaryWindowLines = 4

// Summary joins up to four lines following a summary/profile/objective
// heading. Returns empty when no such section exists or the window holds no
// text.
func Summary(text string, sections map[string]Span) string {
	span, ok := firstSpan(sections, "summary", "profile", "objective")
	if !ok {
		return ""
	}

	lines := splitLines(text)
	start := span.Start + 1
	end := start + summaryWindowLines
	if start > len(lines) {
		return ""
	}
	if end > len(lines) {
		end = len(lines)
	}

	kept := make([]string, 0, summaryWindowLines)
	for _, line := range lines[start:end] {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			kept = append(kept, trimmed)
		}
	}
	return strings.Join(kept, " ")
}
