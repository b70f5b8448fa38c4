package textparse

import "strings"

const skillsWindowLines = 10

// SkillGroup is a labeled set of skills, e.g. "Languages: Go, Python".
type SkillGroup struct {
	Category string
	Items    []string
}

// Skills reads up to ten lines after the skills heading. A line with a colon
// becomes a named category with comma-separated items; a bare line becomes an
// unlabeled "Technical Skills" group. Empty items are dropped.
func Skills(text string, sections map[string]Span) []SkillGroup {
	span, ok := firstSpan(sections, "skills", "technical skills", "core competencies")
	if !ok {
		return []SkillGroup{}
	}

	lines := splitLines(text)
	start := span.Start + 1
	if start > len(lines) {
		return []SkillGroup{}
	}
	end := start + skillsWindowLines
	if end > len(lines) {
		end = len(lines)
	}

	out := []SkillGroup{}
	for _, line := range lines[start:end] {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		category := "Technical Skills"
		itemsText := trimmed
		if idx := strings.Index(trimmed, ":"); idx >= 0 {
			category = strings.TrimSpace(trimmed[:idx])
			itemsText = trimmed[idx+1:]
		}

		items := splitItems(itemsText)
		if len(items) > 0 {
			out = append(out, SkillGroup{Category: category, Items: items})
		}
	}
	return out
}

func splitItems(raw string) []string {
	parts := strings.Split(raw, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}
